package app

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"toboggan/internal/grid"
	"toboggan/internal/slope"
)

type App struct {
	out io.Writer
	log *zap.Logger
}

func New(cfg Config) *App {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &App{out: cfg.Out, log: log}
}

// Run surveys the map stored at path.
func (a *App) Run(path string) error {
	g, err := grid.Load(path)
	if err != nil {
		return fmt.Errorf("load map: %w", err)
	}
	a.log.Debug("map loaded", zap.String("path", path), zap.Int("rows", g.Rows()))

	return a.Survey(g)
}

// Survey writes the tree count for slope.First and the product over
// slope.Survey for g.
func (a *App) Survey(g *grid.Grid) error {
	trees, err := a.count(g, slope.First)
	if err != nil {
		return err
	}

	product, err := slope.Product(g, slope.Survey())
	if err != nil {
		return fmt.Errorf("survey: %w", err)
	}
	a.log.Debug("survey complete", zap.Uint64("product", product))

	if _, err := fmt.Fprintf(a.out, "You encounter %d trees\n", trees); err != nil {
		return err
	}
	_, err = fmt.Fprintf(a.out, "The product of encountered trees is %d\n", product)
	return err
}

func (a *App) count(g *grid.Grid, v slope.Vector) (int, error) {
	n, err := slope.CountTrees(g, v)
	if err != nil {
		return 0, fmt.Errorf("count trees (%v): %w", v, err)
	}
	a.log.Debug("slope walked", zap.Stringer("vector", v), zap.Int("trees", n))
	return n, nil
}
