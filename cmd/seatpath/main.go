// Command seatpath searches a seat hall for a cheap route of adjacent seats
// and prints it.
//
// Usage:
//
//	seatpath [-scenario hall.yaml] [-png route.png] [-scale 32] [-v] [-log-format text|json]
//
// Without -scenario the built-in 4×4 demo hall is searched from (3, 0) to (0, 2).
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/seatpath/render"
	"github.com/katalvlaran/seatpath/scenario"
	"github.com/katalvlaran/seatpath/seatgrid"
	"github.com/katalvlaran/seatpath/seatsearch"
)

var log = logrus.New()

type config struct {
	scenario  string
	png       string
	scale     int
	verbose   bool
	logFormat string
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("seatpath", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.scenario, "scenario", "", "YAML scenario file (default: built-in demo hall)")
	fs.StringVar(&cfg.png, "png", "", "write a PNG rendering of the hall and route to this file")
	fs.IntVar(&cfg.scale, "scale", 32, "pixels per seat in the PNG rendering")
	fs.BoolVar(&cfg.verbose, "v", false, "log every expansion and frontier push")
	fs.StringVar(&cfg.logFormat, "log-format", "text", "log format: text or json")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func setupLogging(cfg config, w io.Writer) error {
	log.SetOutput(w)
	switch cfg.logFormat {
	case "text":
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("unknown log format %q", cfg.logFormat)
	}
	if cfg.verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}

	return nil
}

// demoScenario is the hall the command searches when no file is given.
func demoScenario() *scenario.Scenario {
	return &scenario.Scenario{
		Name: "demo",
		Availability: [][]int{
			{1, 1, 1, 1},
			{1, 0, 1, 1},
			{1, 1, 1, 1},
			{1, 1, 1, 1},
		},
		Prices: [][]int{
			{50, 20, 40, 50},
			{20, 30, 30, 40},
			{10, 20, 30, 40},
			{10, 20, 30, 40},
		},
		Start: scenario.Seat{Row: 3, Col: 0},
		Goal:  scenario.Seat{Row: 0, Col: 2},
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if err := setupLogging(cfg, stderr); err != nil {
		return err
	}

	sc := demoScenario()
	if cfg.scenario != "" {
		if sc, err = scenario.Load(cfg.scenario); err != nil {
			return err
		}
	}
	g, err := sc.Grid()
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"scenario": sc.Name,
		"rows":     g.Rows,
		"cols":     g.Cols,
		"start":    sc.Start.Cell().String(),
		"goal":     sc.Goal.Cell().String(),
	}).Info("searching")

	opts := append(sc.Options(),
		seatsearch.WithOnExpand(func(c seatgrid.Cell, cost int64) {
			log.WithFields(logrus.Fields{"seat": c.String(), "cost": cost}).Debug("expand")
		}),
		seatsearch.WithOnPush(func(c seatgrid.Cell, cost, priority int64) {
			log.WithFields(logrus.Fields{"seat": c.String(), "cost": cost, "priority": priority}).Debug("push")
		}),
	)
	res, err := seatsearch.Search(g, sc.Start.Cell(), sc.Goal.Cell(), opts...)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"found":    res.Found,
		"cost":     res.Cost,
		"expanded": res.Expanded,
		"pushed":   res.Pushed,
	}).Info("search finished")

	if res.Found {
		fmt.Fprintln(stdout, "Optimal seats found:")
		for _, seat := range res.Path {
			fmt.Fprintf(stdout, "%s with price %d\n", seat, seat.Cost)
		}
	} else {
		fmt.Fprintln(stdout, "No optimal seats found.")
		explainMiss(g, sc)
	}

	if cfg.png != "" {
		if err := render.SavePNG(cfg.png, g, res.Path, cfg.scale); err != nil {
			return err
		}
		log.WithField("file", cfg.png).Info("rendered hall")
	}

	return nil
}

// explainMiss logs the most likely reason a search came back empty.
func explainMiss(g *seatgrid.Grid, sc *scenario.Scenario) {
	start, goal := sc.Start.Cell(), sc.Goal.Cell()
	switch {
	case !g.Available(start.Row, start.Col):
		log.WithField("seat", start.String()).Warn("start seat is taken")
	case !g.Available(goal.Row, goal.Col):
		log.WithField("seat", goal.String()).Warn("goal seat is taken")
	case !g.Connected(start, goal):
		log.Warn("start and goal are not in the same block of free seats")
	case sc.MaxCost > 0:
		log.WithField("max_cost", sc.MaxCost).Warn("no route within max_cost")
	default:
		log.Warn("no route without overflowing the total price")
	}
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.WithError(err).Error("seatpath failed")
		os.Exit(1)
	}
}
