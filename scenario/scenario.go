package scenario

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"

	"github.com/katalvlaran/seatpath/seatgrid"
	"github.com/katalvlaran/seatpath/seatsearch"
)

// DefaultOccupiedThresh is the pixel darkness above which a seat is sold
// when occupied_thresh is omitted.
const DefaultOccupiedThresh = 0.65

var (
	// ErrNoAvailability indicates neither availability nor availability_image is set.
	ErrNoAvailability = errors.New("scenario: availability or availability_image is required")
	// ErrBothAvailability indicates both availability sources are set.
	ErrBothAvailability = errors.New("scenario: availability and availability_image are mutually exclusive")
	// ErrNoPrices indicates an empty prices matrix.
	ErrNoPrices = errors.New("scenario: prices are required")
	// ErrBadThreshold indicates occupied_thresh outside (0, 1].
	ErrBadThreshold = errors.New("scenario: occupied_thresh must be in (0, 1]")
	// ErrBadMaxCost indicates a negative max_cost.
	ErrBadMaxCost = errors.New("scenario: max_cost must be non-negative")
)

// Seat is a YAML endpoint.
type Seat struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// Cell converts s into a seatgrid.Cell with no cost attached.
func (s Seat) Cell() seatgrid.Cell {
	return seatgrid.At(s.Row, s.Col)
}

// Scenario is one search request as written in YAML.
type Scenario struct {
	Name              string   `yaml:"name"`
	Availability      [][]int  `yaml:"availability"`
	AvailabilityImage string   `yaml:"availability_image"`
	OccupiedThresh    *float64 `yaml:"occupied_thresh"`
	Prices            [][]int  `yaml:"prices"`
	Start             Seat     `yaml:"start"`
	Goal              Seat     `yaml:"goal"`
	Strict            bool     `yaml:"strict"`
	MaxCost           int64    `yaml:"max_cost"`
}

// Load reads and parses the YAML scenario at path.
func Load(path string) (*Scenario, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	sc, err := Parse(buf, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return sc, nil
}

// Parse decodes a YAML scenario. If the scenario references an
// availability image, it is read relative to baseDir and replaces the
// Availability matrix; AvailabilityImage is rewritten to the resolved path.
func Parse(data []byte, baseDir string) (*Scenario, error) {
	sc := &Scenario{}
	if err := yaml.UnmarshalStrict(data, sc); err != nil {
		return nil, fmt.Errorf("scenario: decode yaml: %w", err)
	}
	if sc.OccupiedThresh == nil {
		thresh := DefaultOccupiedThresh
		sc.OccupiedThresh = &thresh
	}
	if err := sc.validate(); err != nil {
		return nil, err
	}

	if sc.AvailabilityImage != "" {
		img := sc.AvailabilityImage
		if !filepath.IsAbs(img) {
			img = filepath.Join(baseDir, img)
		}
		avail, err := ReadAvailabilityImage(img, sc.Threshold())
		if err != nil {
			return nil, err
		}
		sc.AvailabilityImage = img
		sc.Availability = avail
	}

	return sc, nil
}

func (sc *Scenario) validate() error {
	switch {
	case len(sc.Availability) == 0 && sc.AvailabilityImage == "":
		return ErrNoAvailability
	case len(sc.Availability) > 0 && sc.AvailabilityImage != "":
		return ErrBothAvailability
	case len(sc.Prices) == 0:
		return ErrNoPrices
	case sc.Threshold() <= 0 || sc.Threshold() > 1:
		return fmt.Errorf("%w: got %g", ErrBadThreshold, sc.Threshold())
	case sc.MaxCost < 0:
		return fmt.Errorf("%w: got %d", ErrBadMaxCost, sc.MaxCost)
	}

	return nil
}

// Threshold returns occupied_thresh, or DefaultOccupiedThresh when it was not set.
func (sc *Scenario) Threshold() float64 {
	if sc.OccupiedThresh == nil {
		return DefaultOccupiedThresh
	}

	return *sc.OccupiedThresh
}

// Grid validates the scenario's matrices into a seatgrid.Grid.
func (sc *Scenario) Grid() (*seatgrid.Grid, error) {
	return seatgrid.From2D(sc.Availability, sc.Prices)
}

// Options translates the scenario knobs into search options.
// max_cost == 0 means no ceiling.
func (sc *Scenario) Options() []seatsearch.Option {
	var opts []seatsearch.Option
	if sc.Strict {
		opts = append(opts, seatsearch.WithStrictEndpoints())
	}
	if sc.MaxCost > 0 {
		opts = append(opts, seatsearch.WithMaxCost(sc.MaxCost))
	}

	return opts
}
