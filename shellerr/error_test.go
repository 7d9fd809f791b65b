package shellerr_test

import (
	"errors"
	"testing"

	"github.com/nabbar/cmdshell/shellerr"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestShellErr(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "shellerr Suite")
}

var _ = Describe("Error", func() {
	Describe("New", func() {
		It("carries the code and message", func() {
			e := shellerr.New(shellerr.UnknownCommand, "boom")
			Expect(e.Code()).To(Equal(shellerr.UnknownCommand))
			Expect(e.Error()).To(Equal("boom"))
		})

		It("falls back to the registered message when none is given", func() {
			e := shellerr.New(shellerr.InvalidExpression, "")
			Expect(e.Error()).To(Equal(shellerr.InvalidExpression.String()))
		})
	})

	Describe("Newf", func() {
		It("formats the message", func() {
			e := shellerr.Newf(shellerr.UnknownVariable, "unknown variable %q", "x")
			Expect(e.Error()).To(Equal(`unknown variable "x"`))
		})
	})

	Describe("Wrap", func() {
		It("unwraps to the parent", func() {
			parent := errors.New("root cause")
			e := shellerr.Wrap(shellerr.Usage, parent, "bad args")
			Expect(errors.Unwrap(e)).To(Equal(parent))
		})
	})

	Describe("Trace", func() {
		It("reports a non-empty file:line", func() {
			e := shellerr.New(shellerr.FrameUnderflow, "")
			Expect(e.Trace()).To(ContainSubstring(".go:"))
		})
	})

	Describe("Marker", func() {
		It("sits outside plausible handler return values", func() {
			Expect(shellerr.Marker).To(BeNumerically("<", -1000000))
			Expect(shellerr.MarkerString()).To(Equal("-2147483648"))
		})
	})
})
