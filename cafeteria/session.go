package cafeteria

import (
	"log/slog"
	"time"
)

type ingredientKind int

const (
	kindBread ingredientKind = iota
	kindSausage
)

func (k ingredientKind) String() string {
	if k == kindBread {
		return "bread"
	}
	return "sausage"
}

var bothKinds = [...]ingredientKind{kindBread, kindSausage}

// ingredientActor is the slice of the ingredient surface the session drives:
// an asynchronous start that notifies once cooking has begun, and a
// synchronous stop that releases the burner. Both may fail.
type ingredientActor interface {
	Start(onStarted func()) error
	Stop() error
}

type eventKind int

const (
	evStarted eventKind = iota
	evTimerFired
)

type sessionEvent struct {
	ev   eventKind
	ingr ingredientKind
}

// cookingSession coordinates one order: both ingredients are started
// independently, each runs for at least its minimum cook duration, and once
// both have stopped the hot dog is assembled and the handler invoked.
// The handler fires exactly once, on success or failure.
//
// All session state is owned by a single goroutine draining the mailbox, so
// the started/stopped/terminal flags need no locking. Ingredient-started
// notifications and timer expiries are posted as events; a late event
// arriving after the session went terminal is consumed as a no-op.
//
// The goroutine stays alive until every posted-but-unconsumed event has been
// drained (tracked by the pending counter), so an in-flight timer or start
// callback can never observe torn-down state. The mailbox buffer holds the
// worst case of two started events plus two timer events, so posting never
// blocks.
type cookingSession struct {
	orderID  int
	logger   *slog.Logger
	actors   [2]ingredientActor
	cookTime [2]time.Duration
	assemble func() (*HotDog, error)
	handler  Handler

	mailbox chan sessionEvent
	timers  [2]*time.Timer

	started     [2]bool
	stopInvoked [2]bool
	stopped     [2]bool
	terminal    bool
	pending     int
}

func newCookingSession(
	orderID int,
	bread, sausage ingredientActor,
	breadTime, sausageTime time.Duration,
	assemble func() (*HotDog, error),
	handler Handler,
	logger *slog.Logger,
) *cookingSession {
	return &cookingSession{
		orderID:  orderID,
		logger:   logger,
		actors:   [2]ingredientActor{kindBread: bread, kindSausage: sausage},
		cookTime: [2]time.Duration{kindBread: breadTime, kindSausage: sausageTime},
		assemble: assemble,
		handler:  handler,
		mailbox:  make(chan sessionEvent, 4),
	}
}

// Start begins the session. Runs exactly once; returns immediately.
func (s *cookingSession) Start() {
	go s.run()
}

func (s *cookingSession) run() {
	s.startIngredients()
	for !s.terminal || s.pending > 0 {
		ev := <-s.mailbox
		s.pending--
		switch ev.ev {
		case evStarted:
			s.onIngredientStarted(ev.ingr)
		case evTimerFired:
			s.onTimerExpired(ev.ingr)
		}
	}
}

// startIngredients invokes both start calls in order. A synchronous failure
// on the first call means the second is never attempted; a failure on the
// second must account for the first possibly having already started.
func (s *cookingSession) startIngredients() {
	for _, k := range bothKinds {
		k := k
		err := s.actors[k].Start(func() {
			s.mailbox <- sessionEvent{ev: evStarted, ingr: k}
		})
		if err != nil {
			s.fail(&StartError{Ingredient: k.String(), Err: err})
			return
		}
		s.pending++ // a started event will arrive
	}
}

func (s *cookingSession) onIngredientStarted(k ingredientKind) {
	if s.terminal {
		// A sibling already failed the order while this ingredient was
		// still claiming its burner. Release it and move on.
		s.stopDiscarding(k)
		return
	}

	s.started[k] = true
	s.timers[k] = time.AfterFunc(s.cookTime[k], func() {
		s.mailbox <- sessionEvent{ev: evTimerFired, ingr: k}
	})
	s.pending++ // a timer event will arrive unless the timer is cancelled

	s.logger.Debug("ingredient started", "order_id", s.orderID, "ingredient", k.String())
}

func (s *cookingSession) onTimerExpired(k ingredientKind) {
	if s.terminal {
		// Timer lost the cancellation race; nothing to do.
		return
	}

	s.stopInvoked[k] = true
	if err := s.actors[k].Stop(); err != nil {
		s.fail(&ProcessingError{Ingredient: k.String(), Err: err})
		return
	}
	s.stopped[k] = true
	s.logger.Debug("ingredient cooked", "order_id", s.orderID, "ingredient", k.String())

	if s.stopped[kindBread] && s.stopped[kindSausage] {
		s.deliver(s.assemble())
	}
}

// fail latches the terminal state and delivers the failure outcome.
// Idempotent: the first failure wins, later ones are discarded.
func (s *cookingSession) fail(cause error) {
	if s.terminal {
		return
	}
	s.terminal = true

	for _, timer := range s.timers {
		if timer != nil && timer.Stop() {
			s.pending-- // expiry callback will never post
		}
	}

	// Release burners held by ingredients that started but never stopped.
	for _, k := range bothKinds {
		if s.started[k] && !s.stopped[k] && !s.stopInvoked[k] {
			s.stopDiscarding(k)
		}
	}

	s.logger.Warn("order failed", "order_id", s.orderID, "error", cause)
	s.handler(nil, cause)
}

// deliver latches the terminal state and invokes the handler with the
// success outcome, or with the assembly error if the hot dog could not be
// put together.
func (s *cookingSession) deliver(hd *HotDog, err error) {
	s.terminal = true
	if err != nil {
		s.logger.Warn("order failed", "order_id", s.orderID, "error", err)
		s.handler(nil, err)
		return
	}
	s.logger.Info("order ready", "order_id", s.orderID,
		"sausage_id", hd.Sausage().ID(), "bread_id", hd.Bread().ID())
	s.handler(hd, nil)
}

// stopDiscarding performs a best-effort stop during failure unwinding.
// Its own failure never overrides the primary outcome; it is logged and
// dropped to bound burner leakage, nothing more.
func (s *cookingSession) stopDiscarding(k ingredientKind) {
	s.stopInvoked[k] = true
	if err := s.actors[k].Stop(); err != nil {
		s.logger.Warn("cleanup stop failed",
			"order_id", s.orderID, "ingredient", k.String(), "error", err)
	}
}
