// Package reactor implements the runtime primitives the translator
// targets: a Reactor is a node in a dataflow graph whose value is
// driven by a Trigger, and a Builder is the factory that materializes
// one. The compiler packages only ever talk to this contract; nothing
// here is consulted by the parser or checker.
package reactor

// Update reports what happened to a Reactor on its most recent tick.
type Update int

const (
	// NoUpdate means the reactor's value did not change this tick.
	NoUpdate Update = iota
	// Eval means the reactor produced a new value and may produce
	// further values on later ticks.
	Eval
	// CompleteEval means the reactor produced its final value; it
	// keeps reporting CompleteEval (with the same value) on every later
	// tick.
	CompleteEval
)

func (u Update) String() string {
	switch u {
	case NoUpdate:
		return "NONE"
	case Eval:
		return "EVAL"
	case CompleteEval:
		return "COMPLETE_EVAL"
	default:
		return "UNKNOWN"
	}
}

// Reactor is a dataflow node with a current value and the Update that
// produced it.
type Reactor interface {
	Value() any
	LastUpdate() Update
}

// stepper is implemented by reactors that need to recompute on every
// Trigger.Fire call. Reactors whose value can never change again
// (constants) don't implement it and are never registered.
type stepper interface {
	step()
}

// Trigger is the single scheduling authority: it drives every
// reactor's update by stepping registered reactors, in registration
// order. Builders register their reactor with the
// Trigger inside Build, and Build always builds a node's children
// before the node itself, so registration order is always
// children-before-parents — Fire can therefore step in a single flat
// pass without a separate topological sort.
type Trigger struct {
	steppers []stepper
	tick     int
}

// NewTrigger constructs an empty Trigger.
func NewTrigger() *Trigger {
	return &Trigger{}
}

// register is called by Build implementations for any reactor whose
// value can change after construction.
func (t *Trigger) register(s stepper) {
	t.steppers = append(t.steppers, s)
}

// Fire advances every registered reactor by one tick.
func (t *Trigger) Fire() {
	t.tick++
	for _, s := range t.steppers {
		s.step()
	}
}

// Tick returns the number of times Fire has been called.
func (t *Trigger) Tick() int { return t.tick }

// Builder materializes a Reactor. A Builder is pure with respect to
// its captured environment: calling Build twice yields two independent
// reactor instances, both registered with trigger.
type Builder interface {
	Build(trigger *Trigger) Reactor
}

// Invoker is implemented by builders representing a function value:
// CallBuilder dispatches to it rather than to plain Build, passing the
// call's argument builders through.
type Invoker interface {
	Invoke(args []Builder, trigger *Trigger) Reactor
}
