package levels

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// RunScript executes a tengo level script. Scripts describe geometry by
// calling floor(x, width, y), spike(x, y) and start(x, y).
func RunScript(name string, src []byte, seed int64) (*Level, error) {
	lvl := &Level{Start: defaultStart}

	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("math", "rand"))
	if err := script.Add("seed", seed); err != nil {
		return nil, err
	}
	for fnName, fn := range map[string]tengo.CallableFunc{
		"floor": func(args ...tengo.Object) (tengo.Object, error) {
			v, err := floatArgs("floor", args, 3)
			if err != nil {
				return nil, err
			}
			lvl.Floors = append(lvl.Floors, Floor{X: v[0], Width: v[1], Y: v[2]})
			return tengo.UndefinedValue, nil
		},
		"spike": func(args ...tengo.Object) (tengo.Object, error) {
			v, err := floatArgs("spike", args, 2)
			if err != nil {
				return nil, err
			}
			lvl.Spikes = append(lvl.Spikes, Spike{X: v[0], Y: v[1]})
			return tengo.UndefinedValue, nil
		},
		"start": func(args ...tengo.Object) (tengo.Object, error) {
			v, err := floatArgs("start", args, 2)
			if err != nil {
				return nil, err
			}
			lvl.Start = Point{X: v[0], Y: v[1]}
			return tengo.UndefinedValue, nil
		},
	} {
		if err := script.Add(fnName, &tengo.UserFunction{Name: fnName, Value: fn}); err != nil {
			return nil, err
		}
	}

	if _, err := script.Run(); err != nil {
		return nil, fmt.Errorf("run script %s: %w", name, err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return lvl, nil
}

func floatArgs(fn string, args []tengo.Object, n int) ([]float64, error) {
	if len(args) != n {
		return nil, tengo.ErrWrongNumArguments
	}
	out := make([]float64, n)
	for i, arg := range args {
		v, ok := tengo.ToFloat64(arg)
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{
				Name:     fmt.Sprintf("%s argument %d", fn, i+1),
				Expected: "int or float",
				Found:    arg.TypeName(),
			}
		}
		out[i] = v
	}
	return out, nil
}
