package construct_test

import (
	"testing"

	"github.com/nabbar/cmdshell/construct"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestConstruct(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "construct Suite")
}

var _ = Describe("Stack", func() {
	It("reports frame underflow popping an empty stack", func() {
		s := construct.NewStack()
		Expect(s.Pop()).To(HaveOccurred())
	})

	It("runs the pop handler after removing the frame", func() {
		s := construct.NewStack()
		var lenAtPop int
		s.Push(&construct.Frame{
			Name: "r",
			PopHandler: func() error {
				lenAtPop = s.Len()
				return nil
			},
		})
		Expect(s.Pop()).ToNot(HaveOccurred())
		Expect(lenAtPop).To(Equal(0))
	})

	It("tracks outermost vs top distinctly when nested", func() {
		s := construct.NewStack()
		s.Push(&construct.Frame{Name: "outer"})
		s.Push(&construct.Frame{Name: "inner"})

		Expect(s.Outermost().Name).To(Equal("outer"))
		Expect(s.Top().Name).To(Equal("inner"))
		Expect(s.Names()).To(Equal([]string{"outer", "inner"}))
	})
})

var _ = Describe("Conditional", func() {
	It("appends to Then until SwitchToElse", func() {
		c := &construct.Conditional{Condition: "(1)"}
		c.Append("print 1")
		c.SwitchToElse()
		c.Append("print 2")

		Expect(c.Then).To(Equal([]string{"print 1"}))
		Expect(c.Else).To(Equal([]string{"print 2"}))
	})
})
