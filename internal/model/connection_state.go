package model

import (
	"time"
)

const ConnectionStateID = 1

type ConnectionState struct {
	ID                  int64      `db:"id"`
	LastEventReceivedAt *time.Time `db:"last_event_received_at"`
}
