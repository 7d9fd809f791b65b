package shellcfg_test

import (
	"testing"

	"github.com/nabbar/cmdshell/shellcfg"
	"github.com/spf13/viper"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestShellCfg(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "shellcfg Suite")
}

var _ = Describe("Options", func() {
	It("defaults match the spec's literal bounds", func() {
		o := shellcfg.Defaults()
		Expect(o.MaxDispatchDepth).To(Equal(64))
		Expect(o.MaxExpressionDepth).To(Equal(64))
		Expect(o.MaxConsecutiveInterrupts).To(Equal(5))
	})

	It("returns defaults for a nil viper", func() {
		Expect(shellcfg.Load(nil)).To(Equal(shellcfg.Defaults()))
	})

	It("overrides only the keys that are set", func() {
		v := viper.New()
		v.Set("prompt", "myapp")
		v.Set("max-interrupts", 3)

		o := shellcfg.Load(v)
		Expect(o.PromptBase).To(Equal("myapp"))
		Expect(o.MaxConsecutiveInterrupts).To(Equal(3))
		Expect(o.MaxDispatchDepth).To(Equal(64))
	})
})
