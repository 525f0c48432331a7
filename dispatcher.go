package hjkl

// Action is a side-effecting callback run when a Binding fires.
type Action func()

// Binding associates a trigger with an action.
type Binding struct {
	Sequence Sequence
	Action   Action
	Help     string // optional description shown in key help
}

// PanicHandler receives the binding whose action panicked and the recovered value.
type PanicHandler func(b Binding, v any)

// Dispatcher tracks the last two keys and runs every binding they match.
// It is not safe for concurrent use; hosts deliver events one at a time.
type Dispatcher struct {
	history  KeyHistory
	bindings []Binding
	onPanic  PanicHandler
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithPanicHandler sets the function called when an action panics.
// Without one, panics are recovered and dropped.
func WithPanicHandler(h PanicHandler) DispatcherOption {
	return func(d *Dispatcher) {
		d.onPanic = h
	}
}

// NewDispatcher creates a Dispatcher with an empty history and no bindings.
func NewDispatcher(opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Register appends a binding for keys (see ParseSequence) and returns d.
// It panics if keys is not a valid sequence.
func (d *Dispatcher) Register(keys string, action Action) *Dispatcher {
	return d.Bind(Binding{Sequence: MustParseSequence(keys), Action: action})
}

// Bind appends b and returns d.
func (d *Dispatcher) Bind(b Binding) *Dispatcher {
	d.bindings = append(d.bindings, b)
	return d
}

// Handle processes one key event and runs every matching action in
// registration order. Events on editable targets and events without a key
// leave the dispatcher untouched.
//
// Handle always returns true: the host's default handling of the key
// should proceed.
func (d *Dispatcher) Handle(ev Event) bool {
	// Hosts report pastes and multi-rune input with no key. Recording them
	// would break a pending two-key sequence with text that was never typed.
	if IsEditable(ev.Target) || ev.Key == NoSymbol {
		return true
	}

	d.history.Put(ev.Symbol())
	prev, cur := d.history.Previous(), d.history.Current()
	for _, b := range d.bindings {
		if b.Sequence.Matches(prev, cur) {
			d.run(b)
		}
	}
	return true
}

func (d *Dispatcher) run(b Binding) {
	defer func() {
		if v := recover(); v != nil && d.onPanic != nil {
			d.onPanic(b, v)
		}
	}()
	if b.Action != nil {
		b.Action()
	}
}

// History returns a copy of the current key window.
func (d *Dispatcher) History() KeyHistory {
	return d.history
}

// Bindings returns the registered bindings in registration order.
func (d *Dispatcher) Bindings() []Binding {
	out := make([]Binding, len(d.bindings))
	copy(out, d.bindings)
	return out
}

// Pending returns the current key when it is the first key of a registered
// two-key sequence, and NoSymbol otherwise.
func (d *Dispatcher) Pending() Symbol {
	cur := d.history.Current()
	if cur == NoSymbol {
		return NoSymbol
	}
	for _, b := range d.bindings {
		if b.Sequence.Len() == 2 && b.Sequence.first == cur {
			return cur
		}
	}
	return NoSymbol
}

// Reset forgets both remembered keys.
func (d *Dispatcher) Reset() {
	d.history = KeyHistory{}
}
