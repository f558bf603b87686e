package render

import (
	"errors"
	"fmt"
	"time"
)

// DefaultRate is the default number of render ticks per second.
const DefaultRate = 24

// ErrRate is returned for non-positive frame rates.
var ErrRate = errors.New("render: frame rate must be positive")

// Loop is a dirty-flag render scheduler. Input handlers call MarkDirty as
// often as they like; each Tick renders at most once, and only when
// something changed since the previous tick.
//
// Loop is not safe for concurrent use. It runs on the goroutine that owns
// the scene and camera.
type Loop struct {
	rate    int
	dirty   bool
	render  func()
	renders uint64
}

// NewLoop returns a loop calling render at most rate times per second.
func NewLoop(rate int, render func()) (*Loop, error) {
	l := &Loop{render: render}
	if err := l.SetRate(rate); err != nil {
		return nil, err
	}
	return l, nil
}

// SetRate changes the tick rate.
func (l *Loop) SetRate(rate int) error {
	if rate <= 0 {
		return fmt.Errorf("%w: %d", ErrRate, rate)
	}
	l.rate = rate
	return nil
}

func (l *Loop) Rate() int { return l.rate }

// Period is the time between ticks.
func (l *Loop) Period() time.Duration {
	return time.Second / time.Duration(l.rate)
}

func (l *Loop) MarkDirty()  { l.dirty = true }
func (l *Loop) Dirty() bool { return l.dirty }

// Renders counts the renders performed so far.
func (l *Loop) Renders() uint64 { return l.renders }

// Tick renders if the dirty flag is set and reports whether it did.
func (l *Loop) Tick() bool {
	if !l.dirty {
		return false
	}
	l.dirty = false
	l.renders++
	if l.render != nil {
		l.render()
	}
	return true
}
