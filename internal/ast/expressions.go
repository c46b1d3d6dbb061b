package ast

import (
	"fmt"
	"strings"
)

// Literal is a direct value: 10, 3.14, "text", true, null.
type Literal struct {
	LineNo  int
	Value   any
	RawType string // "int" | "float" | "string" | "bool" | "null"
}

func (l *Literal) expressionNode() {}
func (l *Literal) Line() int       { return l.LineNo }
func (l *Literal) String() string  { return fmt.Sprintf("%v", l.Value) }

// Identifier is a bare name reference: x, add, Point.
type Identifier struct {
	LineNo int
	Name   string
}

func (i *Identifier) expressionNode() {}
func (i *Identifier) Line() int       { return i.LineNo }
func (i *Identifier) String() string  { return i.Name }

// BinaryOp is a two-operand operator expression: a + b, x > y.
type BinaryOp struct {
	LineNo int
	Left   Expression
	Op     string
	Right  Expression
}

func (b *BinaryOp) expressionNode() {}
func (b *BinaryOp) Line() int       { return b.LineNo }
func (b *BinaryOp) String() string  { return fmt.Sprintf("(%s %s %s)", b.Left, b.Op, b.Right) }

// UnaryOp is a prefix operator expression: -x, !done.
type UnaryOp struct {
	LineNo  int
	Op      string
	Operand Expression
}

func (u *UnaryOp) expressionNode() {}
func (u *UnaryOp) Line() int       { return u.LineNo }
func (u *UnaryOp) String() string  { return fmt.Sprintf("(%s%s)", u.Op, u.Operand) }

// FunctionCall is a call expression: add(10, 20).
type FunctionCall struct {
	LineNo    int
	Callee    Expression
	Arguments []Expression
}

func (f *FunctionCall) expressionNode() {}
func (f *FunctionCall) Line() int       { return f.LineNo }
func (f *FunctionCall) String() string {
	args := make([]string, len(f.Arguments))
	for i, a := range f.Arguments {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", f.Callee, strings.Join(args, ", "))
}

// MemberAccess is a dotted property/method reference: obj.field.
type MemberAccess struct {
	LineNo int
	Target Expression
	Member *Identifier
}

func (m *MemberAccess) expressionNode() {}
func (m *MemberAccess) Line() int       { return m.LineNo }
func (m *MemberAccess) String() string  { return fmt.Sprintf("%s.%s", m.Target, m.Member) }

// IndexAccess is a bracketed index reference: arr[i].
type IndexAccess struct {
	LineNo int
	Target Expression
	Index  Expression
}

func (ix *IndexAccess) expressionNode() {}
func (ix *IndexAccess) Line() int       { return ix.LineNo }
func (ix *IndexAccess) String() string  { return fmt.Sprintf("%s[%s]", ix.Target, ix.Index) }

// ArrayLiteral is a bracketed element list: [1, 2, 3].
type ArrayLiteral struct {
	LineNo   int
	Elements []Expression
}

func (a *ArrayLiteral) expressionNode() {}
func (a *ArrayLiteral) Line() int       { return a.LineNo }
func (a *ArrayLiteral) String() string {
	elems := make([]string, len(a.Elements))
	for i, e := range a.Elements {
		elems[i] = e.String()
	}
	return "[" + strings.Join(elems, ", ") + "]"
}

// ObjectProperty is one name: expression pair inside an ObjectLiteral,
// kept in declaration order.
type ObjectProperty struct {
	Name  string
	Value Expression
}

// ObjectLiteral is a braced property list: { x: 1, y: 2 }.
type ObjectLiteral struct {
	LineNo     int
	Properties []ObjectProperty
}

func (o *ObjectLiteral) expressionNode() {}
func (o *ObjectLiteral) Line() int       { return o.LineNo }
func (o *ObjectLiteral) String() string {
	parts := make([]string, len(o.Properties))
	for i, p := range o.Properties {
		parts[i] = fmt.Sprintf("%s: %s", p.Name, p.Value)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Assignment is `target op value`, where target is an Identifier,
// MemberAccess, or IndexAccess and op is one of = += -= *= /= %=.
type Assignment struct {
	LineNo int
	Target Expression
	Op     string
	Value  Expression
}

func (a *Assignment) expressionNode() {}
func (a *Assignment) Line() int       { return a.LineNo }
func (a *Assignment) String() string  { return fmt.Sprintf("%s %s %s", a.Target, a.Op, a.Value) }
