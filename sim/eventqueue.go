package sim

import (
	"container/heap"
	"container/list"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// EventQueue is a queue of events ordered by the time of events. Events
// with equal times leave the queue in the order they entered it.
type EventQueue interface {
	Push(evt Event)
	Pop() Event
	Len() int
	Peek() Event
}

// EventQueueImpl provides a thread safe event queue.
type EventQueueImpl struct {
	sync.Mutex
	events  eventHeap
	nextSeq uint64
}

// NewEventQueue creates and returns a newly created EventQueueImpl.
func NewEventQueue() *EventQueueImpl {
	q := new(EventQueueImpl)
	q.events = make(eventHeap, 0)
	heap.Init(&q.events)
	return q
}

// Push adds an event to the event queue.
func (q *EventQueueImpl) Push(evt Event) {
	q.Lock()
	heap.Push(&q.events, queuedEvent{evt: evt, seq: q.nextSeq})
	q.nextSeq++
	q.Unlock()
}

// Pop removes and returns the earliest event, or nil if the queue is
// empty. An empty queue is the normal termination signal, not an error.
func (q *EventQueueImpl) Pop() Event {
	q.Lock()
	defer q.Unlock()
	if q.events.Len() == 0 {
		return nil
	}
	return heap.Pop(&q.events).(queuedEvent).evt
}

// Len returns the number of events in the queue.
func (q *EventQueueImpl) Len() int {
	q.Lock()
	l := q.events.Len()
	q.Unlock()
	return l
}

// Peek returns the earliest event without removing it from the queue, or
// nil if the queue is empty.
func (q *EventQueueImpl) Peek() Event {
	q.Lock()
	defer q.Unlock()
	if q.events.Len() == 0 {
		return nil
	}
	return q.events[0].evt
}

// String lists the pending event times, earliest first. It does not
// modify the queue. The format is for human consumption only.
func (q *EventQueueImpl) String() string {
	q.Lock()
	times := make([]VTime, 0, len(q.events))
	for _, qe := range q.events {
		times = append(times, qe.evt.Time())
	}
	q.Unlock()

	sort.Slice(times, func(i, j int) bool { return times[i] < times[j] })

	b := strings.Builder{}
	b.WriteString("[")
	for i, t := range times {
		if i > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%d", t)
	}
	b.WriteString("]")
	return b.String()
}

// queuedEvent tags an event with its insertion sequence number so that
// same-time events pop in FIFO order.
type queuedEvent struct {
	evt Event
	seq uint64
}

type eventHeap []queuedEvent

// Len returns the length of the event queue.
func (h eventHeap) Len() int {
	return len(h)
}

// Less determines the order between two events. Less returns true if the
// i-th event must be popped before the j-th event. Equal times fall back
// to insertion order.
func (h eventHeap) Less(i, j int) bool {
	if h[i].evt.Time() != h[j].evt.Time() {
		return h[i].evt.Time() < h[j].evt.Time()
	}
	return h[i].seq < h[j].seq
}

// Swap changes the position of two events in the event queue.
func (h eventHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

// Push adds an event into the event queue.
func (h *eventHeap) Push(x any) {
	*h = append(*h, x.(queuedEvent))
}

// Pop removes and returns the next event to happen.
func (h *eventHeap) Pop() any {
	old := *h
	n := len(old)
	evt := old[n-1]
	*h = old[:n-1]
	return evt
}

// InsertionQueue is a queue that is based on insertion sort. Insertion
// after equal-time events keeps the FIFO order naturally.
type InsertionQueue struct {
	lock sync.RWMutex
	l    *list.List
}

// NewInsertionQueue returns a new InsertionQueue.
func NewInsertionQueue() *InsertionQueue {
	q := new(InsertionQueue)
	q.l = list.New()
	return q
}

// Push adds an event to the event queue.
func (q *InsertionQueue) Push(evt Event) {
	q.lock.Lock()
	defer q.lock.Unlock()

	for ele := q.l.Front(); ele != nil; ele = ele.Next() {
		if ele.Value.(Event).Time() > evt.Time() {
			q.l.InsertBefore(evt, ele)
			return
		}
	}
	q.l.PushBack(evt)
}

// Pop returns the event with the smallest time and removes it from the
// queue. It returns nil if the queue is empty.
func (q *InsertionQueue) Pop() Event {
	q.lock.Lock()
	defer q.lock.Unlock()

	front := q.l.Front()
	if front == nil {
		return nil
	}
	return q.l.Remove(front).(Event)
}

// Len returns the number of events in the queue.
func (q *InsertionQueue) Len() int {
	q.lock.RLock()
	l := q.l.Len()
	q.lock.RUnlock()
	return l
}

// Peek returns the event at the front of the queue without removing it
// from the queue. It returns nil if the queue is empty.
func (q *InsertionQueue) Peek() Event {
	q.lock.RLock()
	defer q.lock.RUnlock()

	front := q.l.Front()
	if front == nil {
		return nil
	}
	return front.Value.(Event)
}

// String lists the pending event times, earliest first, without
// modifying the queue.
func (q *InsertionQueue) String() string {
	q.lock.RLock()
	defer q.lock.RUnlock()

	b := strings.Builder{}
	b.WriteString("[")
	first := true
	for ele := q.l.Front(); ele != nil; ele = ele.Next() {
		if !first {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%d", ele.Value.(Event).Time())
		first = false
	}
	b.WriteString("]")
	return b.String()
}
