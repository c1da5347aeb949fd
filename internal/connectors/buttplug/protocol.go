package buttplug

import (
	"encoding/json"
	"fmt"
)

// Intiface speaks Buttplug protocol v3: every frame is a JSON array of
// single-key objects, the key naming the message type.
const messageVersion = 3

type serverInfo struct {
	ID             uint32 `json:"Id"`
	ServerName     string `json:"ServerName"`
	MessageVersion int    `json:"MessageVersion"`
	MaxPingTime    int64  `json:"MaxPingTime"`
}

type actuator struct {
	StepCount         int    `json:"StepCount"`
	FeatureDescriptor string `json:"FeatureDescriptor"`
	ActuatorType      string `json:"ActuatorType"`
}

type deviceInfo struct {
	DeviceName     string `json:"DeviceName"`
	DeviceIndex    int    `json:"DeviceIndex"`
	DeviceMessages struct {
		ScalarCmd []actuator `json:"ScalarCmd"`
	} `json:"DeviceMessages"`
}

type deviceList struct {
	ID      uint32       `json:"Id"`
	Devices []deviceInfo `json:"Devices"`
}

type deviceRemoved struct {
	DeviceIndex int `json:"DeviceIndex"`
}

type errorMessage struct {
	ID           uint32 `json:"Id"`
	ErrorMessage string `json:"ErrorMessage"`
	ErrorCode    int    `json:"ErrorCode"`
}

type idOnly struct {
	ID uint32 `json:"Id"`
}

type requestServerInfo struct {
	ID             uint32 `json:"Id"`
	ClientName     string `json:"ClientName"`
	MessageVersion int    `json:"MessageVersion"`
}

type scalar struct {
	Index        int     `json:"Index"`
	Scalar       float64 `json:"Scalar"`
	ActuatorType string  `json:"ActuatorType"`
}

type scalarCmd struct {
	ID          uint32   `json:"Id"`
	DeviceIndex int      `json:"DeviceIndex"`
	Scalars     []scalar `json:"Scalars"`
}

// envelope wraps one outgoing message in its frame.
func envelope(kind string, body any) []map[string]any {
	return []map[string]any{{kind: body}}
}

type inbound struct {
	Kind string
	Body json.RawMessage
}

func decodeFrame(data []byte) ([]inbound, error) {
	var raw []map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode frame: %w", err)
	}

	res := make([]inbound, 0, len(raw))
	for _, item := range raw {
		for kind, body := range item {
			res = append(res, inbound{Kind: kind, Body: body})
		}
	}
	return res, nil
}
