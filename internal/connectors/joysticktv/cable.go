package joysticktv

import "encoding/json"

type cableCommand struct {
	Command    string `json:"command"`
	Identifier string `json:"identifier"`
	Data       string `json:"data,omitempty"`
}

type cableFrame struct {
	Type       string          `json:"type"`
	Identifier string          `json:"identifier"`
	Message    json.RawMessage `json:"message"`
}

type author struct {
	Slug         string `json:"slug"`
	Username     string `json:"username"`
	IsStreamer   bool   `json:"isStreamer"`
	IsModerator  bool   `json:"isModerator"`
	IsSubscriber bool   `json:"isSubscriber"`
}

type gatewayMessage struct {
	ID            string  `json:"id"`
	Event         string  `json:"event"`
	Type          string  `json:"type"`
	Text          string  `json:"text"`
	BotCommand    string  `json:"botCommand"`
	BotCommandArg string  `json:"botCommandArg"`
	ChannelID     string  `json:"channelId"`
	Metadata      string  `json:"metadata"`
	Author        *author `json:"author"`
	Streamer      *author `json:"streamer"`
}

// metadata is the JSON document carried as a string by stream events.
type metadata struct {
	Who               string  `json:"who"`
	What              string  `json:"what"`
	HowMuch           float64 `json:"how_much"`
	TipMenuItem       string  `json:"tip_menu_item"`
	NumberOfFollowers int     `json:"number_of_followers"`
	NumberOfViewers   int     `json:"number_of_viewers"`
	Current           int     `json:"current"`
	Previous          int     `json:"previous"`
	Amount            float64 `json:"amount"`
}

type sendMessage struct {
	Action    string `json:"action"`
	Text      string `json:"text"`
	ChannelID string `json:"channelId"`
}

type sendWhisper struct {
	Action    string `json:"action"`
	Username  string `json:"username"`
	Text      string `json:"text"`
	ChannelID string `json:"channelId"`
}
