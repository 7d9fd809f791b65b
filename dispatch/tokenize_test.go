package dispatch_test

import (
	"strings"
	"testing"

	"github.com/nabbar/cmdshell/dispatch"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestDispatch(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "dispatch Suite")
}

var _ = Describe("Tokenize", func() {
	It("splits plain words on whitespace", func() {
		Expect(dispatch.Tokenize("print hello world")).To(Equal([]string{"print", "hello", "world"}))
	})

	It("keeps whitespace inside a quoted token intact", func() {
		Expect(dispatch.Tokenize(`print "hello world"`)).To(Equal([]string{"print", `"hello world"`}))
	})

	It("keeps whitespace inside parentheses intact", func() {
		Expect(dispatch.Tokenize("while ({i} < 3)")).To(Equal([]string{"while", "({i} < 3)"}))
	})

	It("strips a comment outside any encapsulation pair", func() {
		Expect(dispatch.Tokenize("print 1 # trailing comment")).To(Equal([]string{"print", "1"}))
	})

	It("does not treat # inside parentheses as a comment", func() {
		Expect(dispatch.Tokenize(`print ("a#b")`)).To(Equal([]string{"print", `("a#b")`}))
	})

	// P1
	It("is idempotent under rejoining with single spaces", func() {
		original := []string{"assign", "x", `"hello world"`, "(1+2)"}
		rejoined := strings.Join(original, " ")
		Expect(dispatch.Tokenize(rejoined)).To(Equal(original))
	})

	It("returns no tokens for an empty or blank line", func() {
		Expect(dispatch.Tokenize("")).To(BeEmpty())
		Expect(dispatch.Tokenize("   ")).To(BeEmpty())
	})
})
