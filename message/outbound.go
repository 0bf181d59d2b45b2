package message

import (
	json "github.com/goccy/go-json"
)

// Outbound message types, as they appear on the wire.
const (
	TypeInit      = "Init"
	TypeSetSize   = "SetSize"
	TypeSetGain   = "SetGain"
	TypeSetLength = "SetLength"
	TypeSetPow    = "SetPow"
	TypeSetAmount = "SetAmount"
)

// Outbound is a message sent from the panel to the host.
type Outbound interface {
	Type() string
	outbound()
}

// Init announces the panel to the host.
type Init struct{}

// SetSize requests a new panel size.
type SetSize struct {
	Width  int
	Height int
}

// SetGain carries the gain slider's value.
type SetGain struct{ Value float64 }

// SetLength carries the length slider's value.
type SetLength struct{ Value float64 }

// SetPow carries the pow slider's value.
type SetPow struct{ Value float64 }

// SetAmount carries the amount slider's value.
type SetAmount struct{ Value float64 }

func (Init) Type() string      { return TypeInit }
func (SetSize) Type() string   { return TypeSetSize }
func (SetGain) Type() string   { return TypeSetGain }
func (SetLength) Type() string { return TypeSetLength }
func (SetPow) Type() string    { return TypeSetPow }
func (SetAmount) Type() string { return TypeSetAmount }

func (Init) outbound()      {}
func (SetSize) outbound()   {}
func (SetGain) outbound()   {}
func (SetLength) outbound() {}
func (SetPow) outbound()    {}
func (SetAmount) outbound() {}

func (msg Init) MarshalJSON() ([]byte, error) {
	return json.Marshal(bare{Type: msg.Type()})
}

func (msg SetSize) MarshalJSON() ([]byte, error) {
	return json.Marshal(sized{Type: msg.Type(), Width: msg.Width, Height: msg.Height})
}

func (msg SetGain) MarshalJSON() ([]byte, error) {
	return json.Marshal(valued{Type: msg.Type(), Value: msg.Value})
}

func (msg SetLength) MarshalJSON() ([]byte, error) {
	return json.Marshal(valued{Type: msg.Type(), Value: msg.Value})
}

func (msg SetPow) MarshalJSON() ([]byte, error) {
	return json.Marshal(valued{Type: msg.Type(), Value: msg.Value})
}

func (msg SetAmount) MarshalJSON() ([]byte, error) {
	return json.Marshal(valued{Type: msg.Type(), Value: msg.Value})
}

// ValueOf returns an outbound message for the named parameter.
func ValueOf(param string, value float64) (Outbound, bool) {
	switch param {
	case "gain":
		return SetGain{Value: value}, true
	case "length":
		return SetLength{Value: value}, true
	case "pow":
		return SetPow{Value: value}, true
	case "amount":
		return SetAmount{Value: value}, true
	}
	return nil, false
}

// unexported

type bare struct {
	Type string `json:"type"`
}

type sized struct {
	Type   string `json:"type"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type valued struct {
	Type  string  `json:"type"`
	Value float64 `json:"value"`
}
