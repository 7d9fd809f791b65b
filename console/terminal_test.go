package console_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nabbar/cmdshell/console"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestConsole(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "console Suite")
}

var _ = Describe("Terminal", func() {
	It("reads lines from a sourced file and reports EOF afterward", func() {
		path := filepath.Join(GinkgoT().TempDir(), "script.txt")
		Expect(os.WriteFile(path, []byte("one\ntwo\n"), 0o644)).To(Succeed())

		term := console.NewTerminal()
		prev, err := term.SetInputf(path)
		Expect(err).ToNot(HaveOccurred())
		Expect(prev).To(Equal(""))
		Expect(term.GetInputf()).To(Equal(path))

		line, ok := term.GetLine("", false)
		Expect(ok).To(BeTrue())
		Expect(line).To(Equal("one"))
		Expect(term.InputfEOF()).To(BeFalse())

		line, ok = term.GetLine("", false)
		Expect(ok).To(BeTrue())
		Expect(line).To(Equal("two"))

		_, ok = term.GetLine("", false)
		Expect(ok).To(BeFalse())
		Expect(term.InputfEOF()).To(BeTrue())
	})

	It("records history", func() {
		term := console.NewTerminal()
		term.AddHistory("help")
		term.AddHistory("quit")
		Expect(term.History()).To(Equal([]string{"help", "quit"}))
	})
})
