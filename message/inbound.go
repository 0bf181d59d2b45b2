package message

import (
	json "github.com/goccy/go-json"
)

// Inbound message types, as they appear on the wire.
const (
	TypeParamChange = "param_change"
	TypeSizeUpdate  = "set_size"
)

// Inbound is a message pushed from the host to the panel.
type Inbound interface {
	Type() string
	inbound()
}

// ParamChange reports a parameter's value and display text.
// Param is sent by the host but the panel does not act on it.
type ParamChange struct {
	Param string  `json:"param,omitempty"`
	Value float64 `json:"value"`
	Text  string  `json:"text"`
}

// SizeUpdate reports the host's idea of the panel size.
type SizeUpdate struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (ParamChange) Type() string { return TypeParamChange }
func (SizeUpdate) Type() string  { return TypeSizeUpdate }

func (ParamChange) inbound() {}
func (SizeUpdate) inbound()  {}

func (msg ParamChange) MarshalJSON() ([]byte, error) {
	return json.Marshal(changed{
		Type:  msg.Type(),
		Param: msg.Param,
		Value: msg.Value,
		Text:  msg.Text,
	})
}

func (msg SizeUpdate) MarshalJSON() ([]byte, error) {
	return json.Marshal(sized{Type: msg.Type(), Width: msg.Width, Height: msg.Height})
}

type changed struct {
	Type  string  `json:"type"`
	Param string  `json:"param,omitempty"`
	Value float64 `json:"value"`
	Text  string  `json:"text"`
}
