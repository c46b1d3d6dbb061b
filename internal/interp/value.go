package interp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Byron-voldigoad/AST/internal/ast"
)

// Value is the tagged union of every runtime value LNG programs can
// produce. All concrete value types implement it; value() is unexported
// so no type outside this package can add a new case.
type Value interface {
	Type() string
	String() string
	value()
}

// NullValue is the single null value.
type NullValue struct{}

func (NullValue) Type() string   { return "null" }
func (NullValue) String() string { return "null" }
func (NullValue) value()         {}

// Null is the one shared null instance.
var Null = NullValue{}

// BoolValue wraps a boolean.
type BoolValue struct{ Value bool }

func (b BoolValue) Type() string { return "bool" }
func (b BoolValue) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}
func (BoolValue) value() {}

// IntValue wraps a 64-bit integer.
type IntValue struct{ Value int64 }

func (i IntValue) Type() string   { return "int" }
func (i IntValue) String() string { return strconv.FormatInt(i.Value, 10) }
func (IntValue) value()           {}

// FloatValue wraps a 64-bit float.
type FloatValue struct{ Value float64 }

func (f FloatValue) Type() string   { return "float" }
func (f FloatValue) String() string { return strconv.FormatFloat(f.Value, 'g', -1, 64) }
func (FloatValue) value()           {}

// StringValue wraps a string.
type StringValue struct{ Value string }

func (s StringValue) Type() string   { return "string" }
func (s StringValue) String() string { return s.Value }
func (StringValue) value()           {}

// ArrayValue is an ordered, mutable element list.
type ArrayValue struct{ Elements []Value }

func (a *ArrayValue) Type() string { return "array" }
func (a *ArrayValue) String() string {
	parts := make([]string, len(a.Elements))
	for i, e := range a.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
func (*ArrayValue) value() {}

// MapValue is an ordered string-keyed mapping, the runtime form of an
// object literal. Keys preserves declaration/insertion order so
// iteration and string rendering are deterministic.
type MapValue struct {
	Keys   []string
	Values map[string]Value
}

// NewMapValue creates an empty ordered map.
func NewMapValue() *MapValue {
	return &MapValue{Values: map[string]Value{}}
}

// Set inserts or overwrites key, appending to Keys only on first write.
func (m *MapValue) Set(key string, val Value) {
	if _, exists := m.Values[key]; !exists {
		m.Keys = append(m.Keys, key)
	}
	m.Values[key] = val
}

func (m *MapValue) Type() string { return "map" }
func (m *MapValue) String() string {
	parts := make([]string, len(m.Keys))
	for i, k := range m.Keys {
		parts[i] = fmt.Sprintf("%s: %s", k, m.Values[k])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
func (*MapValue) value() {}

// NativeFunc is a function implemented in Go and exposed as a global
// binding (pf, clock).
type NativeFunc struct {
	Name string
	Fn   func(args []Value) (Value, error)
}

func (n *NativeFunc) Type() string   { return "native-function" }
func (n *NativeFunc) String() string { return "<native fn " + n.Name + ">" }
func (*NativeFunc) value()           {}

// FunctionValue is a user-defined function (methods are produced as
// BoundMethod instead), paired with the
// environment it closed over at definition time. This is what makes
// FunctionDecl a proper closure: Env is captured once, at the moment the
// declaration statement executes, not re-read at call time.
type FunctionValue struct {
	Decl *ast.FunctionDecl
	Env  *Environment
}

func (f *FunctionValue) Type() string   { return "function" }
func (f *FunctionValue) String() string { return "<function " + f.Decl.Name + ">" }
func (*FunctionValue) value()           {}

// BoundMethod pairs a method's FunctionDecl with the receiving instance;
// calling it creates an environment with `this` bound to Receiver.
type BoundMethod struct {
	Method   *ast.FunctionDecl
	Receiver *InstanceValue
	Env      *Environment
}

func (m *BoundMethod) Type() string   { return "bound-method" }
func (m *BoundMethod) String() string { return "<bound method " + m.Method.Name + ">" }
func (*BoundMethod) value()           {}

// ClassValue is a class descriptor: its name, optional superclass chain,
// the methods and field initializers declared on it, and the
// environment active when the class was declared (methods close over
// this environment just like top-level functions do).
type ClassValue struct {
	Name        string
	Super       *ClassValue
	Constructor *ast.ConstructorDecl
	Methods     map[string]*ast.FunctionDecl
	Fields      []*ast.VariableDecl
	Env         *Environment
}

func (c *ClassValue) Type() string   { return "class" }
func (c *ClassValue) String() string { return "<class " + c.Name + ">" }
func (*ClassValue) value()           {}

// findMethod walks the superclass chain looking for name, returning the
// class that declares it so methods resolve the same way single
// inheritance resolves everywhere else in the language.
func (c *ClassValue) findMethod(name string) (*ast.FunctionDecl, *ClassValue) {
	for cls := c; cls != nil; cls = cls.Super {
		if m, ok := cls.Methods[name]; ok {
			return m, cls
		}
	}
	return nil, nil
}

// InstanceValue is a live object: a pointer to its class descriptor plus
// a field table whose entries come from declared field initializers at
// instantiation and from first writes.
type InstanceValue struct {
	Class  *ClassValue
	Fields map[string]Value
}

// NewInstance allocates a zero-field instance of class.
func NewInstance(class *ClassValue) *InstanceValue {
	return &InstanceValue{Class: class, Fields: map[string]Value{}}
}

func (i *InstanceValue) Type() string   { return i.Class.Name }
func (i *InstanceValue) String() string { return "<" + i.Class.Name + " instance>" }
func (*InstanceValue) value()           {}

// IsTruthy implements the language's truthiness rule: null is false,
// booleans are themselves, numbers are truthy iff non-zero, everything
// else (strings, arrays, maps, instances, functions) is truthy.
func IsTruthy(v Value) bool {
	switch val := v.(type) {
	case NullValue:
		return false
	case BoolValue:
		return val.Value
	case IntValue:
		return val.Value != 0
	case FloatValue:
		return val.Value != 0
	default:
		return true
	}
}

// ValuesEqual implements `==`/`!=` value equality across the value set.
func ValuesEqual(a, b Value) bool {
	switch av := a.(type) {
	case NullValue:
		_, ok := b.(NullValue)
		return ok
	case BoolValue:
		bv, ok := b.(BoolValue)
		return ok && av.Value == bv.Value
	case IntValue:
		switch bv := b.(type) {
		case IntValue:
			return av.Value == bv.Value
		case FloatValue:
			return float64(av.Value) == bv.Value
		}
		return false
	case FloatValue:
		switch bv := b.(type) {
		case FloatValue:
			return av.Value == bv.Value
		case IntValue:
			return av.Value == float64(bv.Value)
		}
		return false
	case StringValue:
		bv, ok := b.(StringValue)
		return ok && av.Value == bv.Value
	default:
		return a == b
	}
}
