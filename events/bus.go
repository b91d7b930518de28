package events

// Bus is a synchronous publish/subscribe registry keyed by EventType.
//
// Architecture:
//   - Single-threaded dispatch on the caller's goroutine
//   - Handlers run in registration order
//   - A handler may publish; the nested event is dispatched before Publish returns
type Bus struct {
	handlers map[EventType][]func(Payload)
}

func NewBus() *Bus {
	return &Bus{handlers: make(map[EventType][]func(Payload))}
}

// Subscribe registers fn for payloads of type T.
func Subscribe[T Payload](b *Bus, fn func(T)) {
	var zero T
	t := zero.EventType()
	b.handlers[t] = append(b.handlers[t], func(p Payload) {
		fn(p.(T))
	})
}

func (b *Bus) Publish(p Payload) {
	for _, h := range b.handlers[p.EventType()] {
		h(p)
	}
}

// HandlerCount returns the number of handlers registered for the given type
func (b *Bus) HandlerCount(t EventType) int {
	return len(b.handlers[t])
}
