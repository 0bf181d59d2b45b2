package message

import (
	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

var (
	// ErrMalformed is returned for frames that are not a JSON object.
	ErrMalformed = errors.New("malformed message")
	// ErrUnknownAction is returned by DecodeAction for unrecognized types.
	ErrUnknownAction = errors.New("unknown action")
)

// Encode marshals an outbound or inbound message to its wire form.
func Encode(msg any) (data []byte, err error) {

	data, err = json.Marshal(msg)
	err = errors.Wrapf(err, "failed to encode %T", msg)
	return
}

// Decode unmarshals a host message.
// Unrecognized types yield a nil message and no error.
func Decode(data []byte) (msg Inbound, err error) {

	kind, err := peekType(data)
	if err != nil {
		return
	}

	switch kind {
	case TypeParamChange:
		var pc ParamChange
		err = unmarshal(data, &pc)
		msg = pc
	case TypeSizeUpdate:
		var su SizeUpdate
		err = unmarshal(data, &su)
		msg = su
	}
	if err != nil {
		msg = nil
	}
	return
}

// DecodeAction unmarshals a panel message on the host side.
func DecodeAction(data []byte) (msg Outbound, err error) {

	kind, err := peekType(data)
	if err != nil {
		return
	}

	switch kind {
	case TypeInit:
		msg = Init{}
	case TypeSetSize:
		var sz sized
		err = unmarshal(data, &sz)
		msg = SetSize{Width: sz.Width, Height: sz.Height}
	case TypeSetGain, TypeSetLength, TypeSetPow, TypeSetAmount:
		var vl valued
		err = unmarshal(data, &vl)
		msg, _ = ValueOf(paramOf[kind], vl.Value)
	default:
		err = errors.Wrapf(ErrUnknownAction, "type %q", kind)
	}
	if err != nil {
		msg = nil
	}
	return
}

// unexported

var paramOf = map[string]string{
	TypeSetGain:   "gain",
	TypeSetLength: "length",
	TypeSetPow:    "pow",
	TypeSetAmount: "amount",
}

func peekType(data []byte) (kind string, err error) {

	if !gjson.ValidBytes(data) {
		err = errors.Wrapf(ErrMalformed, "invalid json: %.40q", data)
		return
	}

	result := gjson.ParseBytes(data)
	if !result.IsObject() {
		err = errors.Wrapf(ErrMalformed, "not an object: %.40q", data)
		return
	}

	kind = result.Get("type").String()
	return
}

func unmarshal(data []byte, v any) (err error) {

	err = json.Unmarshal(data, v)
	err = errors.Wrapf(err, "failed to decode %T", v)
	return
}
