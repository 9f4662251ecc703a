// Package scenario loads a seat search request from a YAML file.
//
// A scenario names the hall (availability and prices), the two endpoint
// seats and the search knobs. Availability can be inlined as a 0/1 matrix
// or read from a grayscale PGM bitmap where dark pixels are sold seats:
//
//	availability_image: hall.pgm
//	occupied_thresh: 0.65
//	prices:
//	  - [50, 20, 40, 50]
//	  - [20, 30, 30, 40]
//	start: {row: 3, col: 0}
//	goal:  {row: 0, col: 2}
//	strict: false
//	max_cost: 0
//
// Relative image paths are resolved against the YAML file's directory.
// An omitted occupied_thresh means DefaultOccupiedThresh; an explicit value
// must lie in (0, 1].
package scenario
