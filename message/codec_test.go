package message

import (
	"testing"

	"github.com/pkg/errors"
)

func TestEncodeOutbound(t *testing.T) {
	tests := []struct {
		name string
		msg  Outbound
		want string
	}{
		{"init", Init{}, `{"type":"Init"}`},
		{"size", SetSize{Width: 400, Height: 300}, `{"type":"SetSize","width":400,"height":300}`},
		{"gain", SetGain{Value: 0.73}, `{"type":"SetGain","value":0.73}`},
		{"length", SetLength{Value: 2}, `{"type":"SetLength","value":2}`},
		{"pow", SetPow{Value: 12.5}, `{"type":"SetPow","value":12.5}`},
		{"amount", SetAmount{Value: 0}, `{"type":"SetAmount","value":0}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Encode(tt.msg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("got %s, want %s", data, tt.want)
			}
		})
	}
}

func TestEncodeInbound(t *testing.T) {
	data, err := Encode(ParamChange{Param: "gain", Value: 0.5, Text: "0.00 dB"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"type":"param_change","param":"gain","value":0.5,"text":"0.00 dB"}`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}

	data, err = Encode(SizeUpdate{Width: 200, Height: 150})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want = `{"type":"set_size","width":200,"height":150}`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    Inbound
		wantErr bool
	}{
		{
			name: "param change",
			data: `{"type":"param_change","value":0.73,"text":"0.73"}`,
			want: ParamChange{Value: 0.73, Text: "0.73"},
		},
		{
			name: "param change with param",
			data: `{"type":"param_change","param":"gain","value":0.5,"text":"0.00 dB"}`,
			want: ParamChange{Param: "gain", Value: 0.5, Text: "0.00 dB"},
		},
		{
			name: "set size",
			data: `{"type":"set_size","width":640,"height":480}`,
			want: SizeUpdate{Width: 640, Height: 480},
		},
		{
			name: "unknown type ignored",
			data: `{"type":"unknown_type"}`,
			want: nil,
		},
		{
			name: "missing type ignored",
			data: `{"value":1}`,
			want: nil,
		},
		{
			name:    "not json",
			data:    `{"type":`,
			wantErr: true,
		},
		{
			name:    "not an object",
			data:    `[1,2]`,
			wantErr: true,
		},
		{
			name:    "wrong field type",
			data:    `{"type":"set_size","width":"wide","height":1}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode([]byte(tt.data))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %#v", got)
				}
				if got != nil {
					t.Errorf("expected nil message on error, got %#v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestDecodeAction(t *testing.T) {
	tests := []struct {
		data string
		want Outbound
	}{
		{`{"type":"Init"}`, Init{}},
		{`{"type":"SetSize","width":120,"height":100}`, SetSize{Width: 120, Height: 100}},
		{`{"type":"SetGain","value":0.25}`, SetGain{Value: 0.25}},
		{`{"type":"SetLength","value":3}`, SetLength{Value: 3}},
		{`{"type":"SetPow","value":7.5}`, SetPow{Value: 7.5}},
		{`{"type":"SetAmount","value":1}`, SetAmount{Value: 1}},
	}

	for _, tt := range tests {
		got, err := DecodeAction([]byte(tt.data))
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.data, err)
		}
		if got != tt.want {
			t.Errorf("%s: got %#v, want %#v", tt.data, got, tt.want)
		}
	}
}

func TestDecodeActionUnknown(t *testing.T) {
	_, err := DecodeAction([]byte(`{"type":"SetVolume","value":1}`))
	if !errors.Is(err, ErrUnknownAction) {
		t.Errorf("expected ErrUnknownAction, got %v", err)
	}

	_, err = DecodeAction([]byte(`nope`))
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("expected ErrMalformed, got %v", err)
	}
}

func TestRoundTripThroughWire(t *testing.T) {
	data, err := Encode(SetSize{Width: 100, Height: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := DecodeAction(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != (SetSize{Width: 100, Height: 100}) {
		t.Errorf("got %#v", got)
	}
}
