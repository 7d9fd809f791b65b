package tty_test

import (
	"os"
	"testing"

	"github.com/nabbar/cmdshell/tty"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestTTY(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "tty Suite")
}

var _ = Describe("New", func() {
	It("succeeds against a non-terminal reader with a no-op saver", func() {
		f, err := os.CreateTemp(GinkgoT().TempDir(), "tty")
		Expect(err).ToNot(HaveOccurred())
		defer f.Close()

		saver, err := tty.New(f, false)
		Expect(err).ToNot(HaveOccurred())
		Expect(saver).ToNot(BeNil())
		Expect(saver.Restore()).ToNot(HaveOccurred())
	})

	It("tolerates a nil reader by falling back to stdin", func() {
		saver, err := tty.New(nil, false)
		Expect(err).ToNot(HaveOccurred())
		Expect(saver).ToNot(BeNil())
	})
})

var _ = Describe("Restore", func() {
	It("tolerates a nil TTYSaver", func() {
		Expect(func() { tty.Restore(nil) }).ToNot(Panic())
	})

	It("tolerates being called twice", func() {
		saver, err := tty.New(nil, false)
		Expect(err).ToNot(HaveOccurred())
		tty.Restore(saver)
		tty.Restore(saver)
	})
})
