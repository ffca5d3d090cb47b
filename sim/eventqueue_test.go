package sim

import (
	"math/rand"

	gomock "go.uber.org/mock/gomock"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("EventQueueImpl", func() {
	var (
		mockCtrl *gomock.Controller
		queue    *EventQueueImpl
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		queue = NewEventQueue()
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should pop in order", func() {
		numEvents := 100
		for i := 0; i < numEvents; i++ {
			event := NewMockEvent(mockCtrl)
			event.EXPECT().
				Time().
				Return(VTime(rand.Intn(1000))).
				AnyTimes()
			queue.Push(event)
		}

		now := VTime(-1)
		for i := 0; i < numEvents; i++ {
			event := queue.Pop()
			Expect(event.Time() >= now).To(BeTrue())
			now = event.Time()
		}
	})

	It("should pop same-time events in push order", func() {
		events := make([]Event, 0, 10)
		for i := 0; i < 10; i++ {
			event := NewMockEvent(mockCtrl)
			event.EXPECT().Time().Return(VTime(7)).AnyTimes()
			events = append(events, event)
			queue.Push(event)
		}

		for i := 0; i < 10; i++ {
			Expect(queue.Pop()).To(BeIdenticalTo(events[i]))
		}
	})

	It("should return nil when empty", func() {
		Expect(queue.Pop()).To(BeNil())
		Expect(queue.Peek()).To(BeNil())
	})

	It("should peek without removing", func() {
		event := NewMockEvent(mockCtrl)
		event.EXPECT().Time().Return(VTime(3)).AnyTimes()
		queue.Push(event)

		Expect(queue.Peek()).To(BeIdenticalTo(event))
		Expect(queue.Len()).To(Equal(1))
	})

	It("should dump pending times without mutating", func() {
		times := []VTime{5, 1, 3}
		for _, t := range times {
			event := NewMockEvent(mockCtrl)
			event.EXPECT().Time().Return(t).AnyTimes()
			queue.Push(event)
		}

		Expect(queue.String()).To(Equal("[1 3 5]"))
		Expect(queue.Len()).To(Equal(3))
	})
})

var _ = Describe("InsertionQueue", func() {
	var (
		mockCtrl *gomock.Controller
		queue    *InsertionQueue
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		queue = NewInsertionQueue()
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should pop in order", func() {
		numEvents := 100
		for i := 0; i < numEvents; i++ {
			event := NewMockEvent(mockCtrl)
			event.EXPECT().
				Time().
				Return(VTime(rand.Intn(1000))).
				AnyTimes()
			queue.Push(event)
		}

		now := VTime(-1)
		for i := 0; i < numEvents; i++ {
			event := queue.Pop()
			Expect(event.Time() >= now).To(BeTrue())
			now = event.Time()
		}
	})

	It("should pop same-time events in push order", func() {
		events := make([]Event, 0, 10)
		for i := 0; i < 10; i++ {
			event := NewMockEvent(mockCtrl)
			event.EXPECT().Time().Return(VTime(7)).AnyTimes()
			events = append(events, event)
			queue.Push(event)
		}

		for i := 0; i < 10; i++ {
			Expect(queue.Pop()).To(BeIdenticalTo(events[i]))
		}
	})

	It("should return nil when empty", func() {
		Expect(queue.Pop()).To(BeNil())
		Expect(queue.Peek()).To(BeNil())
	})

	It("should dump pending times without mutating", func() {
		times := []VTime{5, 1, 3}
		for _, t := range times {
			event := NewMockEvent(mockCtrl)
			event.EXPECT().Time().Return(t).AnyTimes()
			queue.Push(event)
		}

		Expect(queue.String()).To(Equal("[1 3 5]"))
		Expect(queue.Len()).To(Equal(3))
	})
})
