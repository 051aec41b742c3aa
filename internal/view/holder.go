package view

import (
	"errors"
	"sync"
)

var (
	ErrBusy   = errors.New("a request is already in flight")
	ErrClosed = errors.New("view is closed")
)

// Phase is the lifecycle stage of a view's current request.
type Phase int

const (
	Idle Phase = iota
	Loading
	Success
	Failure
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Failure:
		return "failure"
	default:
		return "unknown"
	}
}

// State is a snapshot of a Holder. Data is only meaningful in Success and
// Err only in Failure.
type State[T any] struct {
	Phase Phase
	Data  T
	Err   error
}

// Ticket identifies one request started with Begin.
type Ticket uint64

// Holder keeps the single active state of one view. A request is started
// with Begin and finished with Resolve or Reject using the returned ticket;
// completions carrying an outdated ticket, or arriving after Close, are
// dropped.
type Holder[T any] struct {
	mu     sync.Mutex
	state  State[T]
	gen    uint64
	closed bool
}

func NewHolder[T any]() *Holder[T] {
	return &Holder[T]{}
}

// Begin moves the holder to Loading. It refuses with ErrBusy while another
// request is in flight.
func (h *Holder[T]) Begin() (Ticket, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return 0, ErrClosed
	}
	if h.state.Phase == Loading {
		return 0, ErrBusy
	}
	h.gen++
	h.state = State[T]{Phase: Loading}
	return Ticket(h.gen), nil
}

// Resolve records a successful result. It reports false when the result was
// discarded.
func (h *Holder[T]) Resolve(t Ticket, data T) bool {
	return h.finish(t, State[T]{Phase: Success, Data: data})
}

// Reject records a failure and clears any previous data.
func (h *Holder[T]) Reject(t Ticket, err error) bool {
	return h.finish(t, State[T]{Phase: Failure, Err: err})
}

// Reset returns to Idle. A request still in flight is orphaned and its
// completion will be dropped.
func (h *Holder[T]) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.gen++
	h.state = State[T]{}
}

// Close tears the holder down. Later completions are dropped and Begin fails.
func (h *Holder[T]) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	h.gen++
}

func (h *Holder[T]) State() State[T] {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

func (h *Holder[T]) finish(t Ticket, next State[T]) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed || uint64(t) != h.gen || h.state.Phase != Loading {
		return false
	}
	h.state = next
	return true
}
