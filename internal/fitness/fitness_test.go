package fitness_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/litetux-lab/internal/fitness"
	"github.com/vovakirdan/litetux-lab/internal/metrics"
)

func TestWeigher(t *testing.T) {
	w := fitness.Weigher{Target: 100, Base: 50, Rate: 2, Mult: 2}

	tests := []struct {
		v    float64
		want float64
	}{
		{100, 100},
		{80, 20},
		{120, 20},
		{70, -20},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, w.Evaluate(tt.v), 1e-9, "value %v", tt.v)
	}
}

func TestDefaultCalculator(t *testing.T) {
	c := fitness.NewCalculator(nil)
	assert.Equal(t, []string{
		"adjleniency", "enemies", "hazards", "interest",
		"leniency", "reachable", "reqJumps", "rewards",
	}, c.Names())

	b := metrics.Bundle{
		metrics.KeyInterest:    1,
		metrics.KeyEnemies:     1,
		metrics.KeyHazards:     1,
		metrics.KeyRewards:     1,
		metrics.KeyLeniency:    1,
		metrics.KeyAdjLeniency: 1,
		metrics.KeyReachable:   18,
		metrics.KeyReqJumps:    1,
	}
	got, err := c.Evaluate(context.Background(), b)
	require.NoError(t, err)
	// 6 unit weighers, adjleniency x2, reachable x10.
	assert.InDelta(t, 18.0, got, 1e-9)

	b[metrics.KeyReachable] = 10
	got, err = c.Evaluate(context.Background(), b)
	require.NoError(t, err)
	assert.InDelta(t, 18.0-80.0, got, 1e-9)
}

func TestCalculatorMissingMetric(t *testing.T) {
	c := fitness.NewCalculator(map[string]fitness.Weigher{"nope": {}})
	_, err := c.Evaluate(context.Background(), metrics.Bundle{})
	require.ErrorIs(t, err, fitness.ErrMissingMetric)
}

func TestCalculatorCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := fitness.NewCalculator(nil).Evaluate(ctx, metrics.Bundle{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestPoolKeepsFittest(t *testing.T) {
	p := fitness.NewPool(3)

	assert.True(t, p.Add(fitness.Entry{Name: "a", Fitness: 1}))
	assert.True(t, p.Add(fitness.Entry{Name: "b", Fitness: 5}))
	assert.True(t, p.Add(fitness.Entry{Name: "c", Fitness: 3}))
	assert.True(t, p.Full())

	assert.False(t, p.Add(fitness.Entry{Name: "d", Fitness: 0}))
	assert.True(t, p.Add(fitness.Entry{Name: "e", Fitness: 4}))
	assert.False(t, p.Add(fitness.Entry{Name: "f", Fitness: 3}), "ties lose to earlier entries")

	var names []string
	for _, e := range p.Entries() {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"b", "e", "c"}, names)

	best, ok := p.Best()
	require.True(t, ok)
	assert.Equal(t, "b", best.Name)
}

func TestPoolStableTies(t *testing.T) {
	p := fitness.NewPool(4)
	for _, n := range []string{"x", "y", "z"} {
		p.Add(fitness.Entry{Name: n, Fitness: 2})
	}
	e := p.Entries()
	require.Len(t, e, 3)
	assert.Equal(t, "x", e[0].Name)
	assert.Equal(t, "z", e[2].Name)
}

func TestEmptyPool(t *testing.T) {
	p := fitness.NewPool(0)
	assert.False(t, p.Add(fitness.Entry{Fitness: 100}))
	_, ok := p.Best()
	assert.False(t, ok)
}

func TestScriptEvaluator(t *testing.T) {
	src := []byte(`
math := import("math")
fitness = 10 - math.abs(metrics.reachable - 18)
if metrics.completable > 0 {
	fitness += 5
}
`)
	s, err := fitness.NewScriptEvaluator(src)
	require.NoError(t, err)

	got, err := s.Evaluate(context.Background(), metrics.Bundle{
		metrics.KeyReachable:   15,
		metrics.KeyCompletable: 1,
	})
	require.NoError(t, err)
	assert.InDelta(t, 12.0, got, 1e-9)

	got, err = s.Evaluate(context.Background(), metrics.Bundle{
		metrics.KeyReachable:   18,
		metrics.KeyCompletable: 0,
	})
	require.NoError(t, err)
	assert.InDelta(t, 10.0, got, 1e-9)
}

func TestScriptErrors(t *testing.T) {
	_, err := fitness.NewScriptEvaluator([]byte(`fitness = (`))
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "fitness: "), err.Error())

	s, err := fitness.NewScriptEvaluator([]byte(`fitness = "high"`))
	require.NoError(t, err)
	_, err = s.Evaluate(context.Background(), metrics.Bundle{})
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "fitness: "), err.Error())
}

func TestScriptDeclaresGlobals(t *testing.T) {
	// Neither global is assigned by the script; both must still exist.
	s, err := fitness.NewScriptEvaluator([]byte(`x := len(metrics)`))
	require.NoError(t, err)

	got, err := s.Evaluate(context.Background(), metrics.Bundle{metrics.KeyGaps: 3})
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestEvaluatorsShareInterface(t *testing.T) {
	s, err := fitness.NewScriptEvaluator([]byte(`fitness = metrics.reachable`))
	require.NoError(t, err)

	for _, ev := range []fitness.Evaluator{s, fitness.NewCalculator(map[string]fitness.Weigher{
		metrics.KeyReachable: {Base: 0, Rate: -1, Mult: 1},
	})} {
		got, err := ev.Evaluate(context.Background(), metrics.Bundle{metrics.KeyReachable: 7})
		require.NoError(t, err)
		assert.InDelta(t, 7.0, got, 1e-9)
	}
}
