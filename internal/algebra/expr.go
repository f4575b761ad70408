// Package algebra implements a small symbolic expression tree with constant
// folding and tree pattern matching, independent of the sat package.
package algebra

import (
	"fmt"
	"strings"
)

// Kind discriminates an Expr's payload, mirroring the original C source's
// ExprKind/union pairing: one struct, only the fields relevant to Kind
// populated, rather than an interface{} type-switch per node. That keeps
// Simplify (which rebuilds these trees constantly) allocation-stable.
type Kind int

const (
	KindConst Kind = iota
	KindVar
	KindSum
	KindProduct
	KindPower
)

func (k Kind) String() string {
	switch k {
	case KindConst:
		return "const"
	case KindVar:
		return "var"
	case KindSum:
		return "sum"
	case KindProduct:
		return "product"
	case KindPower:
		return "power"
	default:
		return "unknown"
	}
}

// Expr is a node of a symbolic expression tree.
type Expr struct {
	Kind Kind

	Value float64 // KindConst
	Name  string  // KindVar

	Args []*Expr // KindSum, KindProduct (n-ary)

	Base, Exp *Expr // KindPower
}

// Const returns a constant leaf node.
func Const(v float64) *Expr {
	return &Expr{Kind: KindConst, Value: v}
}

// Var returns a variable leaf node named name. Unlike the original C
// source's fixed 31-byte name buffer, name is an ordinary Go string with no
// length limit.
func Var(name string) *Expr {
	return &Expr{Kind: KindVar, Name: name}
}

// SumN returns an n-ary sum node over args.
func SumN(args ...*Expr) *Expr {
	return &Expr{Kind: KindSum, Args: args}
}

// ProductN returns an n-ary product node over args.
func ProductN(args ...*Expr) *Expr {
	return &Expr{Kind: KindProduct, Args: args}
}

// Power returns base raised to exp.
func Power(base, exp *Expr) *Expr {
	return &Expr{Kind: KindPower, Base: base, Exp: exp}
}

func (e *Expr) String() string {
	if e == nil {
		return "<nil>"
	}
	switch e.Kind {
	case KindConst:
		return fmt.Sprintf("%g", e.Value)
	case KindVar:
		return e.Name
	case KindSum:
		return joinArgs(e.Args, " + ")
	case KindProduct:
		return joinArgs(e.Args, " * ")
	case KindPower:
		return e.Base.String() + "^" + e.Exp.String()
	default:
		return "<invalid>"
	}
}

func joinArgs(args []*Expr, sep string) string {
	sb := strings.Builder{}
	sb.WriteByte('(')
	for i, a := range args {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(a.String())
	}
	sb.WriteByte(')')
	return sb.String()
}
