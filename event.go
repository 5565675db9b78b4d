package brush

const (
	RESERVE EventType = iota
	CLEAR
	PUSH_BACK
	POP_BACK
	ERASE
	CONNECTIVITY_CHANGED
	EDGE_CLEAR
	EDGE_PUSH_BACK
	VERTEX_CLEAR
	VERTEX_PUSH_BACK
	VERIFY
)

type EventType uint8

func (t EventType) String() string {
	switch t {
	case RESERVE:
		return "reserve"
	case CLEAR:
		return "clear"
	case PUSH_BACK:
		return "push_back"
	case POP_BACK:
		return "pop_back"
	case ERASE:
		return "erase"
	case CONNECTIVITY_CHANGED:
		return "connectivity_changed"
	case EDGE_CLEAR:
		return "edge_clear"
	case EDGE_PUSH_BACK:
		return "edge_push_back"
	case VERTEX_CLEAR:
		return "vertex_clear"
	case VERTEX_PUSH_BACK:
		return "vertex_push_back"
	case VERIFY:
		return "verify"
	}
	return "unknown"
}

// Event interface - all events implement this
type Event interface {
	Type() EventType
}

// Face list events
type ReserveEvent struct {
	Size int
}

func (e ReserveEvent) Type() EventType { return RESERVE }

type ClearEvent struct{}

func (e ClearEvent) Type() EventType { return CLEAR }

type PushBackEvent struct {
	Face *Face
}

func (e PushBackEvent) Type() EventType { return PUSH_BACK }

type PopBackEvent struct{}

func (e PopBackEvent) Type() EventType { return POP_BACK }

type EraseEvent struct {
	Index int
}

func (e EraseEvent) Type() EventType { return ERASE }

// B-Rep events
type ConnectivityChangedEvent struct{}

func (e ConnectivityChangedEvent) Type() EventType { return CONNECTIVITY_CHANGED }

type EdgeClearEvent struct{}

func (e EdgeClearEvent) Type() EventType { return EDGE_CLEAR }

type EdgePushBackEvent struct {
	Edge FaceVertexID
}

func (e EdgePushBackEvent) Type() EventType { return EDGE_PUSH_BACK }

type VertexClearEvent struct{}

func (e VertexClearEvent) Type() EventType { return VERTEX_CLEAR }

type VertexPushBackEvent struct {
	Vertex FaceVertexID
}

func (e VertexPushBackEvent) Type() EventType { return VERTEX_PUSH_BACK }

type VerifyEvent struct {
	Brush *Brush
}

func (e VerifyEvent) Type() EventType { return VERIFY }

// EventListener - callback for events
type EventListener func(event Event)

// Subscription identifies one Subscribe call
type Subscription uint64

type subscriber struct {
	id       Subscription
	listener EventListener
	mask     uint32
}

// Events dispatches brush events synchronously, in subscription order until
// a listener is removed.
type Events struct {
	subscribers []subscriber
	index       map[Subscription]int
	next        Subscription

	dispatching int
}

// Subscribe adds a listener for the given event types, or for every type
// when none is given.
func (e *Events) Subscribe(listener EventListener, types ...EventType) Subscription {
	if e.index == nil {
		e.index = make(map[Subscription]int)
	}

	mask := ^uint32(0)
	if len(types) > 0 {
		mask = 0
		for _, t := range types {
			mask |= 1 << t
		}
	}

	e.next++
	e.index[e.next] = len(e.subscribers)
	e.subscribers = append(e.subscribers, subscriber{id: e.next, listener: listener, mask: mask})

	return e.next
}

// Unsubscribe removes a listener. The last subscriber takes its place.
func (e *Events) Unsubscribe(id Subscription) {
	k, ok := e.index[id]
	if !ok {
		return
	}

	last := len(e.subscribers) - 1
	if k != last {
		e.subscribers[k] = e.subscribers[last]
		e.index[e.subscribers[k].id] = k
	}
	e.subscribers[last] = subscriber{}
	e.subscribers = e.subscribers[:last]
	delete(e.index, id)
}

// Subscribers returns the number of registered listeners
func (e *Events) Subscribers() int {
	return len(e.subscribers)
}

// emit sends event to every interested listener
func (e *Events) emit(event Event) {
	if len(e.subscribers) == 0 {
		return
	}

	bit := uint32(1) << event.Type()
	e.dispatching++
	defer func() { e.dispatching-- }()

	for i := 0; i < len(e.subscribers); i++ {
		if s := e.subscribers[i]; s.mask&bit != 0 {
			s.listener(event)
		}
	}
}

// guard panics when called from inside a listener
func (e *Events) guard() {
	if e.dispatching > 0 {
		panic(ErrReentrantMutation)
	}
}
