package shelllog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nabbar/cmdshell/shelllog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestShellLog(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "shelllog Suite")
}

var _ = Describe("Logger", func() {
	It("accepts level changes across the full 0-5 range", func() {
		l := shelllog.New(0, false)
		for i := 0; i <= 5; i++ {
			Expect(func() { l.SetLevel(i) }).ToNot(Panic())
		}
	})

	It("writes to a file sink when configured", func() {
		dir := GinkgoT().TempDir()
		path := filepath.Join(dir, "shell.log")

		l := shelllog.New(5, false)
		Expect(l.SetFile(path)).To(Succeed())
		l.Warnf("hello %s", "world")
		Expect(l.SetFile("")).To(Succeed())

		data, err := os.ReadFile(path)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(data)).To(ContainSubstring("hello world"))
	})
})
