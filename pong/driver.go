package pong

// EventSource delivers queued input events. Pending returns everything
// queued since the last call and must not block.
type EventSource interface {
	Pending() []Event
}

// MultiSource drains several sources in order.
type MultiSource []EventSource

func (m MultiSource) Pending() []Event {
	var events []Event
	for _, src := range m {
		events = append(events, src.Pending()...)
	}
	return events
}

// Observer is notified with a copy of the state at the end of every tick.
// Implementations must not block.
type Observer interface {
	Observe(s GameState)
}

// Driver runs one tick per host frame: input, then simulation, then render.
type Driver struct {
	state     *GameState
	source    EventSource
	input     *InputHandler
	sim       *Simulator
	renderer  *Renderer
	observers []Observer
}

func NewDriver(source EventSource, input *InputHandler, sim *Simulator, renderer *Renderer, observers ...Observer) *Driver {
	return &Driver{
		state:     NewGameState(),
		source:    source,
		input:     input,
		sim:       sim,
		renderer:  renderer,
		observers: observers,
	}
}

// State returns the state owned by the driver.
func (d *Driver) State() *GameState {
	return d.state
}

// Tick drains pending input, steps the simulation and renders to c.
func (d *Driver) Tick(c Canvas) {
	for _, ev := range d.source.Pending() {
		d.input.Handle(ev, d.state)
	}

	d.sim.Step(d.state)
	d.renderer.Render(d.state, c)

	for _, o := range d.observers {
		o.Observe(*d.state)
	}
}
