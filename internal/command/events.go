package command

import (
	"context"
	"fmt"
	"slices"
	"sort"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/stream-hub/internal/config"
	"github.com/s21platform/stream-hub/internal/model"
)

const DefaultPriority = 1000

// Gateway message types.
const (
	EventNewMessage         = "new_message"
	EventEnterStream        = "enter_stream"
	EventLeaveStream        = "leave_stream"
	EventStarted            = "Started"
	EventEnded              = "Ended"
	EventStreamResuming     = "StreamResuming"
	EventFollowed           = "Followed"
	EventSubscribed         = "Subscribed"
	EventTipped             = "Tipped"
	EventTipGoalIncreased   = "TipGoalIncreased"
	EventMilestoneCompleted = "MilestoneCompleted"
	EventTipGoalMet         = "TipGoalMet"
	EventStreamDroppedIn    = "StreamDroppedIn"
)

// Event is a gateway message as seen by the event handlers.
type Event struct {
	Type      string
	ChannelID string
	Username  string
	Text      string
	Emotes    []string

	Bus Bus
}

func (e *Event) Warudo(action string, data any) {
	e.Bus.Enqueue(model.PeerJoystickTV, model.PeerWarudo, "action", model.WarudoAction{Action: action, Data: data})
}

// HandleEventFunc returns false to stop the handlers after it and the command lookup.
type HandleEventFunc func(ctx context.Context, ev *Event) (bool, error)

type EventHandler struct {
	Key      string
	Title    string
	Types    []string
	Priority int
	Handle   HandleEventFunc
}

type EventOption func(*EventHandler)

func WithPriority(priority int) EventOption {
	return func(h *EventHandler) {
		h.Priority = priority
	}
}

func WithTitle(title string) EventOption {
	return func(h *EventHandler) {
		h.Title = title
	}
}

func NewEventHandler(key string, types []string, handle HandleEventFunc, opts ...EventOption) EventHandler {
	h := EventHandler{
		Key:      key,
		Types:    types,
		Priority: DefaultPriority,
		Handle:   handle,
	}
	for _, opt := range opts {
		opt(&h)
	}
	return h
}

// Events is the ordered set of event handlers. Lower priorities run first, ties keep
// registration order.
type Events struct {
	handlers []EventHandler
}

func NewEvents() *Events {
	return &Events{}
}

func (e *Events) Add(h EventHandler) error {
	if h.Key == "" || h.Handle == nil {
		return fmt.Errorf("%w: %q", ErrInvalidCommand, h.Key)
	}
	for _, other := range e.handlers {
		if other.Key == h.Key {
			return fmt.Errorf("%w: %s", ErrDuplicateCommand, h.Key)
		}
	}
	e.handlers = append(e.handlers, h)
	sort.SliceStable(e.handlers, func(i, j int) bool {
		return e.handlers[i].Priority < e.handlers[j].Priority
	})
	return nil
}

func (e *Events) ByType(eventType string) []EventHandler {
	var res []EventHandler
	for _, h := range e.handlers {
		if slices.Contains(h.Types, eventType) {
			res = append(res, h)
		}
	}
	return res
}

// Run invokes the handlers of ev.Type in order. It reports false when a handler stopped the chain.
// A failing handler is logged and the chain goes on.
func (e *Events) Run(ctx context.Context, ev *Event) bool {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	for _, h := range e.ByType(ev.Type) {
		cont, err := h.Handle(ctx, ev)
		if err != nil {
			logger.Error(fmt.Sprintf("event handler %s failed: %v", h.Key, err))
			continue
		}
		if !cont {
			return false
		}
	}
	return true
}

// RegisterEvents adds handlers in order, logging the rejected ones.
func RegisterEvents(ctx context.Context, e *Events, handlers []EventHandler) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	for _, h := range handlers {
		if err := e.Add(h); err != nil {
			logger.Warn(fmt.Sprintf("skipping event handler: %v", err))
		}
	}
}
