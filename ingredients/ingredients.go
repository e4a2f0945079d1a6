// Package ingredients contains the hot-dog ingredient actors and the store
// that issues fresh instances of them.
//
// Bread and Sausage are small state machines (ready → starting → cooking →
// done). Starting is asynchronous: the actor claims a burner on the shared
// gas cooker and notifies the caller once cooking has actually begun.
// Stopping is synchronous and releases the burner. Each transition is legal
// exactly once; out-of-order calls return an error.
package ingredients

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/KavunVP/cafeteria/cooker"
)

// Transition errors returned by the ingredient actors.
var (
	ErrAlreadyStarted = errors.New("cooking already started")
	ErrNotCooking     = errors.New("not cooking")
	ErrAlreadyDone    = errors.New("cooking already finished")
)

type state int

const (
	stateReady state = iota
	stateStarting
	stateCooking
	stateDone
)

// ingredient holds the state shared by Bread and Sausage.
type ingredient struct {
	id   int
	kind string

	mu        sync.Mutex
	state     state
	cooker    *cooker.GasCooker
	startedAt time.Time
	stoppedAt time.Time
}

// start claims a burner and invokes onStarted once cooking has begun.
// Fails synchronously if the ingredient was already started.
func (i *ingredient) start(gc *cooker.GasCooker, onStarted func()) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.state != stateReady {
		return fmt.Errorf("%s #%d: %w", i.kind, i.id, ErrAlreadyStarted)
	}
	i.state = stateStarting
	i.cooker = gc

	gc.UseBurner(func() {
		i.mu.Lock()
		i.state = stateCooking
		i.startedAt = time.Now()
		i.mu.Unlock()
		onStarted()
	})
	return nil
}

// stop finishes cooking and releases the burner.
// Legal only while cooking; safe to call from a different goroutine than the
// one that observed the started notification.
func (i *ingredient) stop() error {
	i.mu.Lock()
	defer i.mu.Unlock()

	switch i.state {
	case stateCooking:
		i.state = stateDone
		i.stoppedAt = time.Now()
		i.cooker.ReleaseBurner()
		return nil
	case stateDone:
		return fmt.Errorf("%s #%d: %w", i.kind, i.id, ErrAlreadyDone)
	default:
		return fmt.Errorf("%s #%d: %w", i.kind, i.id, ErrNotCooking)
	}
}

// ID returns the ingredient's unique identifier.
func (i *ingredient) ID() int { return i.id }

// IsCooked reports whether the ingredient has finished cooking.
func (i *ingredient) IsCooked() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.state == stateDone
}

// CookDuration returns how long the ingredient actually spent on the burner.
// Zero until the ingredient is done.
func (i *ingredient) CookDuration() time.Duration {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.state != stateDone {
		return 0
	}
	return i.stoppedAt.Sub(i.startedAt)
}

// Bread is one of the two hot-dog ingredients.
type Bread struct {
	ingredient
}

// StartBake claims a burner on gc and begins baking. onStarted is invoked
// asynchronously, at most once, after baking has verifiably begun.
func (b *Bread) StartBake(gc *cooker.GasCooker, onStarted func()) error {
	return b.start(gc, onStarted)
}

// StopBaking finishes baking and releases the burner.
func (b *Bread) StopBaking() error {
	return b.stop()
}

// Sausage is one of the two hot-dog ingredients.
type Sausage struct {
	ingredient
}

// StartFry claims a burner on gc and begins frying. onStarted is invoked
// asynchronously, at most once, after frying has verifiably begun.
func (s *Sausage) StartFry(gc *cooker.GasCooker, onStarted func()) error {
	return s.start(gc, onStarted)
}

// StopFry finishes frying and releases the burner.
func (s *Sausage) StopFry() error {
	return s.stop()
}

// Store issues fresh ingredient instances with unique IDs.
//
// The store is NOT safe for concurrent use; callers must serialize access
// (the cafeteria's intake path does this).
type Store struct {
	nextID int
}

// NewStore creates an empty ingredient store.
func NewStore() *Store {
	return &Store{}
}

// GetBread returns a fresh bread instance.
func (s *Store) GetBread() *Bread {
	s.nextID++
	return &Bread{ingredient{id: s.nextID, kind: "bread"}}
}

// GetSausage returns a fresh sausage instance.
func (s *Store) GetSausage() *Sausage {
	s.nextID++
	return &Sausage{ingredient{id: s.nextID, kind: "sausage"}}
}
