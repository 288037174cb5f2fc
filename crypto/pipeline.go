package crypto

import (
	"context"
	"fmt"
)

// Step is one operation of a pipeline with its own parameters.
type Step struct {
	Name string `json:"name" yaml:"name"`
	Params `yaml:",inline"`
}

// Pipeline is an ordered chain of operations, e.g. simple_encrypt with one
// key followed by poly_encrypt with another.
type Pipeline struct {
	Steps []Step `json:"steps" yaml:"steps"`
}

// Run applies every step in order, feeding each output to the next step.
func (r *Registry) Run(ctx context.Context, p Pipeline, input string) (string, error) {
	result := input
	for i, step := range p.Steps {
		op, ok := r.Get(step.Name)
		if !ok {
			return "", fmt.Errorf("step %d: %w: %s", i, ErrUnknownOperation, step.Name)
		}

		var err error
		result, err = op.Execute(ctx, result, step.Params)
		if err != nil {
			return "", fmt.Errorf("operation %s failed at step %d: %w", step.Name, i, err)
		}
	}
	return result, nil
}

// Reverse builds the pipeline that undoes p: inverse operations in reverse
// order with the same parameters.
func (r *Registry) Reverse(p Pipeline) (Pipeline, error) {
	reversed := Pipeline{Steps: make([]Step, len(p.Steps))}

	for i, step := range p.Steps {
		op, ok := r.Get(step.Name)
		if !ok {
			return Pipeline{}, fmt.Errorf("%w: %s", ErrUnknownOperation, step.Name)
		}

		inverse, ok := op.Inverse()
		if !ok {
			return Pipeline{}, fmt.Errorf("%w: %s", ErrNotReversible, step.Name)
		}
		if _, ok := r.Get(inverse); !ok {
			return Pipeline{}, fmt.Errorf("%w: inverse %s of %s", ErrUnknownOperation, inverse, step.Name)
		}

		reversed.Steps[len(p.Steps)-1-i] = Step{Name: inverse, Params: step.Params}
	}

	return reversed, nil
}
