package dispatch_test

import (
	"github.com/nabbar/cmdshell/construct"
	"github.com/nabbar/cmdshell/dispatch"
	"github.com/nabbar/cmdshell/registry"
	"github.com/nabbar/cmdshell/vars"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type fakeSink struct {
	errors []string
}

func (f *fakeSink) Errorf(format string, args ...interface{}) {
	f.errors = append(f.errors, format)
}

var _ = Describe("Dispatcher", func() {
	var (
		root *registry.Command
		st   *construct.Stack
		v    *vars.Store
		sink *fakeSink
		d    *dispatch.Dispatcher
	)

	BeforeEach(func() {
		root = registry.NewRoot()
		st = construct.NewStack()
		v = vars.New()
		sink = &fakeSink{}
		d = dispatch.New(root, st, v, sink, nil, nil, 64)
	})

	// P7
	It("propagates the handler's return value into %?", func() {
		registry.Register(root, registry.New("ok", "", "", 0, func(self *registry.Command, host interface{}, argv []string) (int64, error) {
			return 7, nil
		}))

		Expect(d.Dispatch("ok")).ToNot(HaveOccurred())
		result, _ := v.Get(vars.ResultName)
		Expect(result).To(Equal("7"))
	})

	It("sets the error marker on an unknown command", func() {
		Expect(d.Dispatch("bogus")).To(HaveOccurred())
		result, _ := v.Get(vars.ResultName)
		Expect(result).To(Equal("-2147483648"))
		Expect(sink.errors).ToNot(BeEmpty())
	})

	It("ignores an empty line without touching %?", func() {
		Expect(d.Dispatch("   ")).ToNot(HaveOccurred())
		_, ok := v.Get(vars.ResultName)
		Expect(ok).To(BeFalse())
	})

	// P8
	It("bounds self-recursive dispatch at the configured depth", func() {
		registry.Register(root, registry.New("loop", "", "", 0, func(self *registry.Command, host interface{}, argv []string) (int64, error) {
			return 0, d.Dispatch("loop")
		}))

		err := d.Dispatch("loop")
		Expect(err).To(HaveOccurred())
	})

	It("routes lines to an open declaration's line handler instead of executing them", func() {
		var captured []string
		st.Push(&construct.Frame{
			Name: "r",
			LineHandler: func(raw string) error {
				captured = append(captured, raw)
				return nil
			},
		})
		registry.Register(root, registry.New("print", "", "", 0, func(self *registry.Command, host interface{}, argv []string) (int64, error) {
			return 0, nil
		}))

		Expect(d.Dispatch("print hello")).ToNot(HaveOccurred())
		Expect(captured).To(Equal([]string{"print hello"}))
	})
})
