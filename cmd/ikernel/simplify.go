package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rhartert/yass/internal/algebra"
)

var simplifyCmd = &cobra.Command{
	Use:   "simplify <expr>",
	Short: "fold the constant subtrees of a prefix s-expression",
	Long: `simplify parses a small s-expression grammar and prints the
result of constant-folding it:

  NUMBER           a constant, e.g. 3 or -1.5
  SYMBOL           a variable, e.g. x
  (+ a b ...)      a sum of one or more sub-expressions
  (* a b ...)      a product of one or more sub-expressions
  (^ base exp)     a power

Example: ikernel simplify "(+ 1 2 (* 3 x))"`,
	Args: cobra.ExactArgs(1),
	RunE: runSimplify,
}

func runSimplify(cmd *cobra.Command, args []string) error {
	tokens := tokenize(args[0])
	e, rest, err := parseExpr(tokens)
	if err != nil {
		return err
	}
	if len(rest) != 0 {
		return fmt.Errorf("unexpected trailing input: %q", strings.Join(rest, " "))
	}
	fmt.Fprintln(cmd.OutOrStdout(), algebra.Simplify(e))
	return nil
}

func tokenize(s string) []string {
	s = strings.ReplaceAll(s, "(", " ( ")
	s = strings.ReplaceAll(s, ")", " ) ")
	return strings.Fields(s)
}

// parseExpr parses a single expression off the front of tokens, returning
// the parsed node and the unconsumed remainder.
func parseExpr(tokens []string) (*algebra.Expr, []string, error) {
	if len(tokens) == 0 {
		return nil, nil, fmt.Errorf("unexpected end of input")
	}

	head, rest := tokens[0], tokens[1:]
	if head != "(" {
		return parseAtom(head), rest, nil
	}

	if len(rest) == 0 {
		return nil, nil, fmt.Errorf("unterminated expression")
	}
	op, rest := rest[0], rest[1:]

	var args []*algebra.Expr
	for {
		if len(rest) == 0 {
			return nil, nil, fmt.Errorf("unterminated expression")
		}
		if rest[0] == ")" {
			rest = rest[1:]
			break
		}
		var arg *algebra.Expr
		var err error
		arg, rest, err = parseExpr(rest)
		if err != nil {
			return nil, nil, err
		}
		args = append(args, arg)
	}

	switch op {
	case "+":
		if len(args) < 1 {
			return nil, nil, fmt.Errorf("(+ ...) needs at least one argument")
		}
		return algebra.SumN(args...), rest, nil
	case "*":
		if len(args) < 1 {
			return nil, nil, fmt.Errorf("(* ...) needs at least one argument")
		}
		return algebra.ProductN(args...), rest, nil
	case "^":
		if len(args) != 2 {
			return nil, nil, fmt.Errorf("(^ base exp) needs exactly two arguments, got %d", len(args))
		}
		return algebra.Power(args[0], args[1]), rest, nil
	default:
		return nil, nil, fmt.Errorf("unknown operator %q", op)
	}
}

func parseAtom(tok string) *algebra.Expr {
	if v, err := strconv.ParseFloat(tok, 64); err == nil {
		return algebra.Const(v)
	}
	return algebra.Var(tok)
}
