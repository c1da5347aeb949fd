package connector

import (
	"encoding/json"
	"fmt"
	"sync/atomic"
)

var messageSeq atomic.Uint64

// Message is an addressed value routed by the Manager. Messages are immutable once created.
type Message struct {
	ID       uint64
	Sender   string
	Receiver string
	Action   string
	Payload  any
}

func NewMessage(sender, receiver, action string, payload any) Message {
	return Message{
		ID:       messageSeq.Add(1),
		Sender:   sender,
		Receiver: receiver,
		Action:   action,
		Payload:  payload,
	}
}

func (m Message) String() string {
	return fmt.Sprintf("<Message #%d %s from %s to %s>", m.ID, m.Action, m.Sender, m.Receiver)
}

// PayloadAs returns the payload as T. Payloads that arrive as raw JSON or as generic JSON values,
// such as those posted over HTTP, are decoded into T.
func PayloadAs[T any](msg Message) (T, error) {
	var res T
	switch p := msg.Payload.(type) {
	case T:
		return p, nil
	case nil:
		return res, fmt.Errorf("%s: empty payload", msg)
	case json.RawMessage:
		if err := json.Unmarshal(p, &res); err != nil {
			return res, fmt.Errorf("%s: failed to decode payload: %w", msg, err)
		}
		return res, nil
	}

	data, err := json.Marshal(msg.Payload)
	if err != nil {
		return res, fmt.Errorf("%s: failed to encode payload: %w", msg, err)
	}
	if err = json.Unmarshal(data, &res); err != nil {
		return res, fmt.Errorf("%s: failed to decode payload: %w", msg, err)
	}
	return res, nil
}
