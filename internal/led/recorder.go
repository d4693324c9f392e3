package led

import (
	"sync"

	"github.com/coreman2200/moodlight/model"
)

type Sent struct {
	Frame model.Frame
	Pin   string
}

// Recorder keeps every frame sent to it. When Err is set, Send fails with it
// and records nothing.
type Recorder struct {
	mu     sync.Mutex
	Err    error
	sent   []Sent
	closed bool
}

func (r *Recorder) Send(frame model.Frame, pin string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrClosed
	}
	if r.Err != nil {
		return r.Err
	}
	r.sent = append(r.sent, Sent{Frame: append(model.Frame(nil), frame...), Pin: pin})
	return nil
}

func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}

func (r *Recorder) Closed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}

func (r *Recorder) SetErr(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Err = err
}

func (r *Recorder) Sent() []Sent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Sent(nil), r.sent...)
}

// Last returns the most recent frame, or nil.
func (r *Recorder) Last() model.Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.sent) == 0 {
		return nil
	}
	return r.sent[len(r.sent)-1].Frame
}
