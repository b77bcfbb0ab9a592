package reactor

// constantReactor never changes after construction.
type constantReactor struct {
	value any
}

func (c *constantReactor) Value() any         { return c.value }
func (c *constantReactor) LastUpdate() Update { return CompleteEval }

// ConstantBuilder builds a reactor whose value is fixed at
// construction.
type ConstantBuilder struct {
	value any
}

// Constant returns a builder for a fixed value.
func Constant(v any) *ConstantBuilder {
	return &ConstantBuilder{value: v}
}

func (b *ConstantBuilder) Build(*Trigger) Reactor {
	return &constantReactor{value: b.value}
}

// First builds a single-value reactor directly, without a Builder
// indirection.
func First(v any) Reactor {
	return &constantReactor{value: v}
}

// ParamProxy is a mutable indirection installed for a function's
// parameter: the function builder's closure calls Set before
// delegating to the body builder, so the proxy forwards to whatever
// argument builder was supplied for this particular invocation. A
// proxy is only ever mutated by its owning FunctionReactorBuilder's
// closure, and only during one Build call.
type ParamProxy struct {
	target Builder
}

// NewParamProxy constructs an unbound parameter proxy.
func NewParamProxy() *ParamProxy { return &ParamProxy{} }

// Set installs the builder this proxy forwards to.
func (p *ParamProxy) Set(b Builder) { p.target = b }

func (p *ParamProxy) Build(trigger *Trigger) Reactor {
	if p.target == nil {
		panic("reactor: parameter proxy built with no argument assigned")
	}
	return p.target.Build(trigger)
}

// Invoke lets a proxy stand in for a function-typed parameter: calling
// it forwards to whatever builder was bound, provided that builder is
// itself invokable (a translator precondition when the parameter's
// declared type is a function type).
func (p *ParamProxy) Invoke(args []Builder, trigger *Trigger) Reactor {
	if p.target == nil {
		panic("reactor: parameter proxy invoked with no argument assigned")
	}
	inv, ok := p.target.(Invoker)
	if !ok {
		panic("reactor: parameter proxy's bound argument is not invokable")
	}
	return inv.Invoke(args, trigger)
}

// FunctionReactorBuilder wraps a closure from (argument builders,
// trigger) to a reactor. Build with no arguments invokes the closure
// with a nil argument slice, for the zero-parameter case (e.g. a
// function value never actually called).
type FunctionReactorBuilder struct {
	fn func(args []Builder, trigger *Trigger) Reactor
}

// NewFunctionReactorBuilder wraps fn as a Builder/Invoker.
func NewFunctionReactorBuilder(fn func(args []Builder, trigger *Trigger) Reactor) *FunctionReactorBuilder {
	return &FunctionReactorBuilder{fn: fn}
}

func (f *FunctionReactorBuilder) Build(trigger *Trigger) Reactor {
	return f.fn(nil, trigger)
}

func (f *FunctionReactorBuilder) Invoke(args []Builder, trigger *Trigger) Reactor {
	return f.fn(args, trigger)
}

// CallBuilder lowers a Call expression: building it builds the callee
// (which must be an Invoker — a translator precondition) and delegates
// to Invoke with the call's argument builders.
type CallBuilder struct {
	Callee Builder
	Args   []Builder
}

// NewCallBuilder constructs a CallBuilder.
func NewCallBuilder(callee Builder, args []Builder) *CallBuilder {
	return &CallBuilder{Callee: callee, Args: args}
}

func (c *CallBuilder) Build(trigger *Trigger) Reactor {
	inv, ok := c.Callee.(Invoker)
	if !ok {
		// A non-invokable callee at this point means an earlier stage
		// mistyped the program; the checker is supposed to have ruled
		// this out.
		panic("reactor: call builder's callee is not invokable")
	}
	return inv.Invoke(c.Args, trigger)
}

// compositeReactor recomputes a value from N already-built child
// reactors every tick — the shared machinery behind arithmetic,
// comparison, boolean and other pure combinators.
type compositeReactor struct {
	children []Reactor
	combine  func([]any) any
	value    any
	update   Update
}

func (c *compositeReactor) Value() any         { return c.value }
func (c *compositeReactor) LastUpdate() Update { return c.update }

func (c *compositeReactor) step() { c.recompute() }

// recompute derives this tick's update from the children's: any child
// still Eval-ing keeps the composite Eval-ing; once every child has
// gone quiet (CompleteEval or NoUpdate, with at least one
// CompleteEval ever observed) the composite completes too; if nothing
// has changed at all yet it stays NoUpdate.
func (c *compositeReactor) recompute() {
	vals := make([]any, len(c.children))
	sawEval, sawComplete := false, false
	for i, ch := range c.children {
		vals[i] = ch.Value()
		switch ch.LastUpdate() {
		case Eval:
			sawEval = true
		case CompleteEval:
			sawComplete = true
		}
	}
	c.value = c.combine(vals)
	switch {
	case sawEval:
		c.update = Eval
	case sawComplete:
		c.update = CompleteEval
	default:
		c.update = NoUpdate
	}
}

// NewComposite builds and registers a composite reactor over already
// built children, computing its tick-0 value immediately.
func NewComposite(trigger *Trigger, children []Reactor, combine func([]any) any) Reactor {
	c := &compositeReactor{children: children, combine: combine}
	c.recompute()
	trigger.register(c)
	return c
}

// chainReactor cycles through its children's values one per tick.
type chainReactor struct {
	children []Reactor
	idx      int
	value    any
	update   Update
}

func (c *chainReactor) Value() any         { return c.value }
func (c *chainReactor) LastUpdate() Update { return c.update }

func (c *chainReactor) step() {
	if c.idx < len(c.children)-1 {
		c.idx++
	}
	c.refresh()
}

func (c *chainReactor) refresh() {
	c.value = c.children[c.idx].Value()
	if c.idx == len(c.children)-1 {
		c.update = CompleteEval
	} else {
		c.update = Eval
	}
}

// NewChain builds and registers a chain reactor over already-built
// children, advancing to the first child's value at tick 0.
func NewChain(trigger *Trigger, children []Reactor) Reactor {
	if len(children) == 0 {
		panic("reactor: chain requires at least one child")
	}
	c := &chainReactor{children: children}
	c.refresh()
	trigger.register(c)
	return c
}
