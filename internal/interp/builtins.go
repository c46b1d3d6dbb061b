package interp

import "time"

// registerBuiltins installs the two native bindings every program starts
// with: pf, which appends one output line per call, and clock, which
// returns the current wall-clock time in seconds.
func (i *Interpreter) registerBuiltins() {
	i.globals.Define("pf", &NativeFunc{
		Name: "pf",
		Fn: func(args []Value) (Value, error) {
			i.output = append(i.output, joinArgs(args))
			return Null, nil
		},
	})
	i.globals.Define("clock", &NativeFunc{
		Name: "clock",
		Fn: func(args []Value) (Value, error) {
			return FloatValue{Value: float64(time.Now().UnixNano()) / 1e9}, nil
		},
	})
}

func joinArgs(args []Value) string {
	out := ""
	for idx, a := range args {
		if idx > 0 {
			out += " "
		}
		out += a.String()
	}
	return out
}
