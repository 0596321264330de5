package dom

import "strings"

// Handler is an event listener.
type Handler func(Event)

// Event is the interface every event type implements.
type Event interface {
	Type() string
	Target() Element
	PreventDefault()
	StopPropagation()
	DefaultPrevented() bool
	PropagationStopped() bool
	Base() *BaseEvent
}

// BaseEvent holds the properties common to all events. Concrete event types
// embed it.
type BaseEvent struct {
	EventType   string
	EventTarget Element
	Cancelable  bool
	prevented   bool
	stopped     bool
	passive     bool
}

func (e *BaseEvent) Type() string             { return e.EventType }
func (e *BaseEvent) Target() Element          { return e.EventTarget }
func (e *BaseEvent) StopPropagation()         { e.stopped = true }
func (e *BaseEvent) DefaultPrevented() bool   { return e.prevented }
func (e *BaseEvent) PropagationStopped() bool { return e.stopped }
func (e *BaseEvent) Base() *BaseEvent         { return e }

// PreventDefault cancels the default action. It has no effect within
// passive listeners or for events which are not cancelable.
func (e *BaseEvent) PreventDefault() {
	if e.Cancelable && !e.passive {
		e.prevented = true
	}
}

// SetPassive is called by dispatchers while invoking a passive listener.
func (e *BaseEvent) SetPassive(passive bool) {
	e.passive = passive
}

// PointerEvent is a pointer (mouse, pen, touch) event.
type PointerEvent struct {
	BaseEvent
	PointerID   int
	PointerType string // "mouse", "pen" or "touch"
	IsPrimary   bool
	Button      int // 0 = primary button
	ClientX     float64
	ClientY     float64
	ShiftKey    bool
}

// Client returns the pointer coordinate along one axis.
func (e *PointerEvent) Client(horizontal bool) float64 {
	if horizontal {
		return e.ClientX
	}
	return e.ClientY
}

// Wheel delta modes.
const (
	DeltaPixel = 0
	DeltaLine  = 1
	DeltaPage  = 2
)

// WheelEvent is a mouse wheel or touchpad scroll event.
type WheelEvent struct {
	BaseEvent
	DeltaX    float64
	DeltaY    float64
	DeltaMode int
}

// NewEvent creates a plain cancelable event of a given type.
func NewEvent(typ string) *BaseEvent {
	return &BaseEvent{EventType: typ, Cancelable: true}
}

// --- Listener options ------------------------------------------------------

// ListenOptions are the options of an event listener.
type ListenOptions struct {
	Capture bool // listen during the capture phase
	Passive bool // listener will not call PreventDefault
	Once    bool // remove after the first invocation
}

// ListenOption configures a listener.
type ListenOption func(*ListenOptions)

// Capture registers the listener for the capture phase.
func Capture() ListenOption {
	return func(o *ListenOptions) { o.Capture = true }
}

// Passive flags the listener as passive. Listeners are passive by default
// for scroll-blocking events (wheel, touch); NotPassive overrides this.
func Passive() ListenOption {
	return func(o *ListenOptions) { o.Passive = true }
}

// NotPassive allows a listener to prevent the default action.
func NotPassive() ListenOption {
	return func(o *ListenOptions) { o.Passive = false }
}

// Once removes the listener after its first invocation.
func Once() ListenOption {
	return func(o *ListenOptions) { o.Once = true }
}

// MakeListenOptions evaluates listener options for an event type.
func MakeListenOptions(typ string, opts ...ListenOption) ListenOptions {
	o := ListenOptions{Passive: typ == "wheel" || strings.HasPrefix(typ, "touch")}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// SplitTypes splits a space separated list of event types.
func SplitTypes(types string) []string {
	return strings.Fields(types)
}
