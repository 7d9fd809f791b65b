package expr_test

import (
	"testing"

	"github.com/nabbar/cmdshell/expr"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestExpr(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "expr Suite")
}

var _ = Describe("Eval", func() {
	DescribeTable("arithmetic and precedence",
		func(src string, want int64) {
			v, err := expr.Eval(src, 64)
			Expect(err).ToNot(HaveOccurred())
			Expect(v).To(Equal(want))
		},
		Entry("addition", "(1 + 2)", int64(3)),
		Entry("precedence of * over +", "(2 + 3 * 4)", int64(14)),
		Entry("parenthesization overrides precedence", "((2 + 3) * 4)", int64(20)),
		Entry("integer division truncates", "(7 / 2)", int64(3)),
		Entry("unary negation", "(-5 + 2)", int64(-3)),
		Entry("double negation is identity", "(- -5)", int64(5)),
		Entry("double logical not is boolean identity", "(!!3)", int64(1)),
	)

	DescribeTable("comparisons",
		func(src string, want int64) {
			v, err := expr.Eval(src, 64)
			Expect(err).ToNot(HaveOccurred())
			Expect(v).To(Equal(want))
		},
		Entry("numeric equal", "(1 == 1)", int64(1)),
		Entry("numeric not equal", "(1 == 2)", int64(0)),
		Entry("less than", "(1 < 2)", int64(1)),
		Entry("greater or equal false", "(1 >= 2)", int64(0)),
		Entry("exact string equality", `("abc" == "abc")`, int64(1)),
		Entry("strings differing past three bytes are still distinct", `("abcd" == "abce")`, int64(0)),
		Entry("bareword identifiers compare as strings", "(foo == foo)", int64(1)),
	)

	It("short-circuits && without evaluating the right operand", func() {
		// division by zero on the right would error if evaluated
		v, err := expr.Eval("(0 && (1 / 0))", 64)
		Expect(err).ToNot(HaveOccurred())
		Expect(v).To(Equal(int64(0)))
	})

	It("short-circuits || without evaluating the right operand", func() {
		v, err := expr.Eval("(1 || (1 / 0))", 64)
		Expect(err).ToNot(HaveOccurred())
		Expect(v).To(Equal(int64(1)))
	})

	It("reports division by zero as an invalid expression, not a panic", func() {
		_, err := expr.Eval("(1 / 0)", 64)
		Expect(err).To(HaveOccurred())
	})

	It("rejects unbalanced parentheses", func() {
		_, err := expr.Eval("(1 + 2", 64)
		Expect(err).To(HaveOccurred())
	})

	It("rejects an unterminated string literal", func() {
		_, err := expr.Eval(`("abc)`, 64)
		Expect(err).To(HaveOccurred())
	})

	It("enforces the nesting depth guard", func() {
		src := "("
		for i := 0; i < 70; i++ {
			src += "("
		}
		src += "1"
		for i := 0; i < 71; i++ {
			src += ")"
		}
		_, err := expr.Eval(src, 64)
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("IsExpression", func() {
	It("recognizes a parenthesized term", func() {
		Expect(expr.IsExpression("(1 + 2)")).To(BeTrue())
	})

	It("rejects plain command text", func() {
		Expect(expr.IsExpression("help routine")).To(BeFalse())
	})
})
