package model

// Peer names as registered in the connector manager.
const (
	PeerJoystickTV  = "JoystickTV"
	PeerWarudo      = "Warudo"
	PeerOBS         = "OBS"
	PeerStreamerBot = "StreamerBot"
	PeerButtplug    = "Buttplug"
	PeerPiShock     = "PiShock"
	PeerVRChat      = "VRChat"
)

// ChatMessage is the payload of the JoystickTV "chat" action. When At is set the first line
// mentions that user.
type ChatMessage struct {
	ChannelID string `json:"channel_id"`
	Text      string `json:"text"`
	At        string `json:"at,omitempty"`
}

// WarudoAction is sent verbatim to Warudo.
type WarudoAction struct {
	Action string `json:"action"`
	Data   any    `json:"data"`
}

// StreamerBotRequest names an action or a trigger together with its arguments.
type StreamerBotRequest struct {
	Name string         `json:"name"`
	Args map[string]any `json:"args,omitempty"`
}

// OSCMessage is the payload of the VRChat "osc" action.
type OSCMessage struct {
	Address string `json:"address"`
	Args    []any  `json:"args"`
}

// SenderAdmin is the sender of messages enqueued through the admin HTTP endpoint.
const SenderAdmin = "Admin"
