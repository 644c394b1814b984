package rules

import (
	"fmt"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"
)

// Registry compiles and runs CEL expressions over a built scene.
type Registry struct {
	env *cel.Env
}

// CountFunc returns how many live objects have the named type.
type CountFunc func(typeName string) int

// NewRegistry declares the scene variables and the count() helper.
func NewRegistry(count CountFunc) (*Registry, error) {
	if count == nil {
		count = func(string) int { return 0 }
	}
	env, err := cel.NewEnv(
		// Variable declarations
		cel.Variable("world", cel.MapType(cel.StringType, cel.AnyType)),
		cel.Variable("objects", cel.ListType(cel.MapType(cel.StringType, cel.AnyType))),
		cel.Variable("scores", cel.ListType(cel.MapType(cel.StringType, cel.AnyType))),
		cel.Variable("teams", cel.ListType(cel.IntType)),

		// Scene functions
		cel.Function("count",
			cel.Overload("count_string",
				[]*cel.Type{cel.StringType},
				cel.IntType,
				cel.UnaryBinding(func(arg ref.Val) ref.Val {
					s, ok := arg.Value().(string)
					if !ok {
						return types.NewErr("count expects an object type name")
					}
					return types.Int(count(s))
				}),
			),
		),
	)
	if err != nil {
		return nil, err
	}
	return &Registry{env: env}, nil
}

// Eval executes a CEL expression against the provided context.
func (r *Registry) Eval(expression string, context map[string]any) (any, error) {
	ast, iss := r.env.Compile(expression)
	if iss.Err() != nil {
		return nil, iss.Err()
	}
	prog, err := r.env.Program(ast)
	if err != nil {
		return nil, err
	}
	out, _, err := prog.Eval(context)
	if err != nil {
		return nil, err
	}
	return out.Value(), nil
}

// Check evaluates an expression that must produce a bool.
func (r *Registry) Check(expression string, context map[string]any) (bool, error) {
	out, err := r.Eval(expression, context)
	if err != nil {
		return false, err
	}
	ok, isBool := out.(bool)
	if !isBool {
		return false, fmt.Errorf("expression %q is not a condition, it returned %T", expression, out)
	}
	return ok, nil
}
