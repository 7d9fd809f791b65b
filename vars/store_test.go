package vars_test

import (
	"testing"

	"github.com/nabbar/cmdshell/vars"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestVars(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "vars Suite")
}

var _ = Describe("Store", func() {
	var s *vars.Store

	BeforeEach(func() {
		s = vars.New()
	})

	Describe("Substitute", func() {
		// P2 (substitution fidelity)
		It("replaces a known variable", func() {
			s.Set("x", "hello")
			out, err := s.Substitute("a {x} b")
			Expect(err).ToNot(HaveOccurred())
			Expect(out).To(Equal("a hello b"))
		})

		It("errors on an unknown variable without partially rewriting", func() {
			out, err := s.Substitute("a {missing} b")
			Expect(err).To(HaveOccurred())
			Expect(out).To(BeEmpty())
		})

		It("does not rescan a substituted value", func() {
			s.Set("x", "{y}")
			s.Set("y", "oops")
			out, err := s.Substitute("{x}")
			Expect(err).ToNot(HaveOccurred())
			Expect(out).To(Equal("{y}"))
		})

		It("passes text with no braces through unchanged", func() {
			out, err := s.Substitute("plain text")
			Expect(err).ToNot(HaveOccurred())
			Expect(out).To(Equal("plain text"))
		})
	})

	Describe("StoreArgs", func() {
		// invariant: if %N = k, then %0..%k-1 exist and %k does not
		It("writes positional args and the count", func() {
			s.StoreArgs([]string{"greet", "world"})
			v, _ := s.Get(vars.ArgCountName)
			Expect(v).To(Equal("2"))

			v0, ok0 := s.Get(vars.ArgName(0))
			Expect(ok0).To(BeTrue())
			Expect(v0).To(Equal("greet"))

			_, ok2 := s.Get(vars.ArgName(2))
			Expect(ok2).To(BeFalse())
		})

		It("clears stale positional args from a longer previous call", func() {
			s.StoreArgs([]string{"a", "b", "c"})
			s.StoreArgs([]string{"x"})

			_, ok := s.Get(vars.ArgName(1))
			Expect(ok).To(BeFalse())
		})
	})

	Describe("SetResult / SetResultMarker", func() {
		It("writes the decimal result", func() {
			s.SetResult(42)
			v, _ := s.Get(vars.ResultName)
			Expect(v).To(Equal("42"))
		})

		It("writes the error marker", func() {
			s.SetResultMarker()
			v, _ := s.Get(vars.ResultName)
			Expect(v).To(Equal("-2147483648"))
		})
	})
})
