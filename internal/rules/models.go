package rules

// Assertion is a named condition a built scene is expected to satisfy.
type Assertion struct {
	Name string `yaml:"name"`
	Expr string `yaml:"expr"`
}

// Outcome is the verdict on one assertion.
type Outcome struct {
	Assertion
	Passed bool
	Err    error
}

// CheckAll evaluates every assertion against the same context. Errors are
// reported per assertion and do not stop the others.
func (r *Registry) CheckAll(assertions []Assertion, context map[string]any) []Outcome {
	out := make([]Outcome, 0, len(assertions))
	for _, a := range assertions {
		passed, err := r.Check(a.Expr, context)
		out = append(out, Outcome{Assertion: a, Passed: passed, Err: err})
	}
	return out
}
