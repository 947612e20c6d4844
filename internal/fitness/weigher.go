// Package fitness turns metric bundles into a single score for ranking
// generated levels.
package fitness

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/vovakirdan/litetux-lab/internal/metrics"
)

// ErrMissingMetric is returned when a weigher names a metric the bundle lacks.
var ErrMissingMetric = errors.New("fitness: metric not in bundle")

// Evaluator scores a metric bundle. Higher is fitter.
type Evaluator interface {
	Evaluate(ctx context.Context, b metrics.Bundle) (float64, error)
}

// Weigher scores one metric by its distance from a target value.
type Weigher struct {
	Target float64 `yaml:"target"`
	Base   float64 `yaml:"base"`
	Rate   float64 `yaml:"rate"`
	Mult   float64 `yaml:"mult"`
}

// Evaluate returns (Base - |v-Target|*Rate) * Mult.
func (w Weigher) Evaluate(v float64) float64 {
	return (w.Base - math.Abs(v-w.Target)*w.Rate) * w.Mult
}

// DefaultWeighers returns the weighers used by the level generator.
func DefaultWeighers() map[string]Weigher {
	unit := Weigher{Target: 1, Base: 1, Rate: 1, Mult: 1}
	return map[string]Weigher{
		metrics.KeyInterest:    unit,
		metrics.KeyEnemies:     unit,
		metrics.KeyHazards:     unit,
		metrics.KeyRewards:     unit,
		metrics.KeyLeniency:    unit,
		metrics.KeyAdjLeniency: {Target: 1, Base: 1, Rate: 1, Mult: 2},
		metrics.KeyReachable:   {Target: 18, Base: 1, Rate: 1, Mult: 10},
		metrics.KeyReqJumps:    unit,
	}
}

// Calculator sums the scores of a set of named weighers.
type Calculator struct {
	weighers map[string]Weigher
	names    []string
}

// NewCalculator builds a calculator over a copy of ws. A nil map uses the defaults.
func NewCalculator(ws map[string]Weigher) *Calculator {
	if ws == nil {
		ws = DefaultWeighers()
	}
	c := &Calculator{weighers: make(map[string]Weigher, len(ws))}
	for name, w := range ws {
		c.Set(name, w)
	}
	return c
}

// Set adds or replaces the weigher for a metric.
func (c *Calculator) Set(name string, w Weigher) {
	if _, ok := c.weighers[name]; !ok {
		c.names = append(c.names, name)
		sort.Strings(c.names)
	}
	c.weighers[name] = w
}

// Names lists the weighted metrics in sorted order.
func (c *Calculator) Names() []string {
	return append([]string(nil), c.names...)
}

// Weigher returns the weigher for a metric.
func (c *Calculator) Weigher(name string) (Weigher, bool) {
	w, ok := c.weighers[name]
	return w, ok
}

// Evaluate implements Evaluator. Metrics are summed in name order so the
// result does not depend on map iteration.
func (c *Calculator) Evaluate(ctx context.Context, b metrics.Bundle) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	total := 0.0
	for _, name := range c.names {
		v, ok := b[name]
		if !ok {
			return 0, fmt.Errorf("%w: %s", ErrMissingMetric, name)
		}
		total += c.weighers[name].Evaluate(v)
	}
	return total, nil
}
