package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/counter-backend/internal/changefeed"
	"github.com/rocketscienceinc/counter-backend/internal/entity"
)

const (
	ActionSubscribe    = "game:subscribe"
	ActionUnsubscribe  = "game:unsubscribe"
	ActionSubscribed   = "game:subscribed"
	ActionUnsubscribed = "game:unsubscribed"
	ActionUpdate       = "game:update"
	ActionError        = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type Payload struct {
	GameID string               `json:"game_id,omitempty"`
	Type   changefeed.EventType `json:"type,omitempty"`
	Game   *entity.Game         `json:"game,omitempty"`

	// set on error replies
	Action string `json:"action,omitempty"`
	Error  string `json:"error,omitempty"`
	Code   string `json:"code,omitempty"`
}

func NewMessage(action string, payload Payload) (Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}

	return Message{Action: action, Payload: data}, nil
}

func (that Message) Decode() (Payload, error) {
	var payload Payload
	if len(that.Payload) == 0 {
		return payload, nil
	}

	err := json.Unmarshal(that.Payload, &payload)

	return payload, err
}
