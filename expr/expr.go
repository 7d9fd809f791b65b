// Package expr implements the recursive-descent integer/logical/
// comparison/short-string expression grammar of section 4.5: a small
// infix language with C-style precedence (logical, comparison,
// additive, multiplicative, unary, primary) evaluated to an int64.
package expr

import "strings"

// Eval parses and evaluates s, bounding parenthesis nesting to maxDepth
// (section 4.5's recursion guard, normally shellcfg.Options.MaxExpressionDepth).
func Eval(s string, maxDepth int) (int64, error) {
	p, err := newParser(s, maxDepth)
	if err != nil {
		return 0, err
	}

	n, err := p.parseExpr()
	if err != nil {
		return 0, err
	}

	return eval(n)
}

// IsExpression reports whether s looks like a parenthesized expression
// rather than plain text, the check "print" and "assign" use to decide
// between evaluating and echoing an argument. It only tests that s
// contains both '(' and ')'; it does not check that they balance.
func IsExpression(s string) bool {
	return strings.ContainsRune(s, '(') && strings.ContainsRune(s, ')')
}
