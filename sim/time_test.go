package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Clock", func() {
	var clock *Clock

	BeforeEach(func() {
		clock = NewClock()
	})

	It("should start at zero", func() {
		Expect(clock.Now()).To(Equal(VTime(0)))
	})

	It("should advance to later times", func() {
		clock.AdvanceTo(3)
		clock.AdvanceTo(3)
		clock.AdvanceTo(8)

		Expect(clock.Now()).To(Equal(VTime(8)))
	})

	It("should panic when moving backward", func() {
		clock.AdvanceTo(5)

		Expect(func() { clock.AdvanceTo(4) }).To(Panic())
	})

	It("should reset for a new run", func() {
		clock.AdvanceTo(100)
		clock.Reset(0)

		Expect(clock.Now()).To(Equal(VTime(0)))
	})
})
