package fitness

import (
	"context"
	"fmt"
	"os"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/vovakirdan/litetux-lab/internal/metrics"
)

// ScriptEvaluator scores bundles with a tengo script. The script sees the
// bundle as the map `metrics` and must assign a number to `fitness`.
//
//	fitness = 10 - math.abs(metrics.reachable - 18)
type ScriptEvaluator struct {
	compiled *tengo.Compiled
}

// NewScriptEvaluator compiles src. The whole tengo stdlib is importable.
func NewScriptEvaluator(src []byte) (*ScriptEvaluator, error) {
	script := tengo.NewScript(src)
	if err := script.Add("metrics", map[string]interface{}{}); err != nil {
		return nil, fmt.Errorf("fitness: declare metrics: %w", err)
	}
	if err := script.Add("fitness", 0.0); err != nil {
		return nil, fmt.Errorf("fitness: declare fitness: %w", err)
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("fitness: compile script: %w", err)
	}
	return &ScriptEvaluator{compiled: compiled}, nil
}

// LoadScript reads and compiles a script file.
func LoadScript(path string) (*ScriptEvaluator, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fitness: read script %s: %w", path, err)
	}
	return NewScriptEvaluator(src)
}

// Evaluate implements Evaluator. Each call runs on a fresh clone of the
// compiled script, so globals do not leak between levels.
func (s *ScriptEvaluator) Evaluate(ctx context.Context, b metrics.Bundle) (float64, error) {
	c := s.compiled.Clone()

	values := make(map[string]interface{}, len(b))
	for k, v := range b {
		values[k] = v
	}
	if err := c.Set("metrics", values); err != nil {
		return 0, fmt.Errorf("fitness: set metrics: %w", err)
	}
	if err := c.Set("fitness", 0.0); err != nil {
		return 0, fmt.Errorf("fitness: reset result: %w", err)
	}
	if err := c.RunContext(ctx); err != nil {
		return 0, fmt.Errorf("fitness: run script: %w", err)
	}

	v := c.Get("fitness")
	switch v.ValueType() {
	case "float", "int":
		return v.Float(), nil
	default:
		return 0, fmt.Errorf("fitness: script set fitness to %s, want a number", v.ValueType())
	}
}
