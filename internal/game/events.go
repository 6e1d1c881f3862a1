package game

import "fmt"

type EventType int

const (
	EventFoodEaten EventType = iota
	EventSpecialEaten
	EventSpecialSpawned
	EventSpecialExpired
	EventSelfCollision
)

func (t EventType) String() string {
	switch t {
	case EventFoodEaten:
		return "food_eaten"
	case EventSpecialEaten:
		return "special_eaten"
	case EventSpecialSpawned:
		return "special_spawned"
	case EventSpecialExpired:
		return "special_expired"
	case EventSelfCollision:
		return "self_collision"
	}
	return fmt.Sprintf("EventType(%d)", int(t))
}

type Event struct {
	Type EventType
	Tick int
	X, Y float64
	Data int // Score after the event.
}

type EventHandler func(Event)

// EventBus delivers events synchronously, inside the tick that raised them.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

// SubscribeAll registers fn for every event type.
func (eb *EventBus) SubscribeAll(fn EventHandler) {
	for t := EventFoodEaten; t <= EventSelfCollision; t++ {
		eb.Subscribe(t, fn)
	}
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
