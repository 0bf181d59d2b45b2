package host

import (
	"context"
	"testing"

	"github.com/pkg/errors"

	nt "exgain/entity"
	"exgain/message"
)

type nopLogger struct{}

func (nopLogger) Info(ctx context.Context, msg string, kv ...any)              {}
func (nopLogger) Error(ctx context.Context, msg string, err error, kv ...any) {}

type fakeJournal struct {
	changes []nt.Change
	err     error
}

func (fj *fakeJournal) Record(ctx context.Context, change nt.Change) error {
	fj.changes = append(fj.changes, change)
	return fj.err
}

func newHost(jrnl Journal) *Host {
	return DefaultConfig().New(jrnl, nopLogger{})
}

func decodeReply(t *testing.T, data []byte) message.Inbound {
	t.Helper()

	msg, err := message.Decode(data)
	if err != nil {
		t.Fatalf("bad reply %s: %v", data, err)
	}
	return msg
}

func TestInitRepliesSize(t *testing.T) {
	hst := newHost(nil)

	replies, err := hst.Handle(context.Background(), "s1", []byte(`{"type":"Init"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(replies) != 2 {
		t.Fatalf("got %d replies, want 2", len(replies))
	}

	got := decodeReply(t, replies[0])
	if got != (message.SizeUpdate{Width: 200, Height: 200}) {
		t.Errorf("got %#v", got)
	}

	pc, ok := decodeReply(t, replies[1]).(message.ParamChange)
	if !ok {
		t.Fatalf("expected param change, got %s", replies[1])
	}
	if pc.Param != "gain" || !near(pc.Value, 0.5) || pc.Text != "0.00 dB" {
		t.Errorf("got %#v", pc)
	}
}

func TestSetSizeThenInit(t *testing.T) {
	hst := newHost(nil)
	ctx := context.Background()

	replies, err := hst.Apply(ctx, "s1", message.SetSize{Width: 400, Height: 300})
	if err != nil || len(replies) != 0 {
		t.Fatalf("got %d replies, err %v", len(replies), err)
	}
	if hst.Size() != (nt.Size{Width: 400, Height: 300}) {
		t.Errorf("got %v", hst.Size())
	}

	replies, _ = hst.Apply(ctx, "s1", message.Init{})
	got := decodeReply(t, replies[0])
	if got != (message.SizeUpdate{Width: 400, Height: 300}) {
		t.Errorf("got %#v", got)
	}
}

func TestSetGainRepliesParamChange(t *testing.T) {
	jrnl := &fakeJournal{}
	hst := newHost(jrnl)

	replies, err := hst.Handle(context.Background(), "s1", []byte(`{"type":"SetGain","value":1}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(replies) != 1 {
		t.Fatalf("got %d replies, want 1", len(replies))
	}

	got, ok := decodeReply(t, replies[0]).(message.ParamChange)
	if !ok {
		t.Fatalf("expected param change, got %s", replies[0])
	}
	if got.Param != "gain" || !near(got.Value, 1) || got.Text != "30.00 dB" {
		t.Errorf("got %#v", got)
	}

	if len(jrnl.changes) != 1 {
		t.Fatalf("got %d journal entries, want 1", len(jrnl.changes))
	}
	change := jrnl.changes[0]
	if change.Session != "s1" || change.Param != "gain" || change.Text != "30.00 dB" {
		t.Errorf("unexpected change %#v", change)
	}
}

func TestSetOtherParams(t *testing.T) {
	jrnl := &fakeJournal{}
	hst := newHost(jrnl)
	ctx := context.Background()

	actions := []message.Outbound{
		message.SetLength{Value: 3.9},
		message.SetPow{Value: 12.5},
		message.SetAmount{Value: 0.25},
	}
	for _, act := range actions {
		replies, err := hst.Apply(ctx, "s1", act)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", act.Type(), err)
		}
		if len(replies) != 0 {
			t.Errorf("%s: expected no reply, got %d", act.Type(), len(replies))
		}
	}

	tests := []struct {
		id    string
		plain float64
		text  string
	}{
		{"length", 3, "3 bar"},
		{"pow", 12.5, "12.50"},
		{"amount", 0.25, "0.25"},
	}
	for _, tt := range tests {
		plain, text, ok := hst.Param(tt.id)
		if !ok {
			t.Fatalf("%s: missing", tt.id)
		}
		if !near(plain, tt.plain) || text != tt.text {
			t.Errorf("%s: got %v %q, want %v %q", tt.id, plain, text, tt.plain, tt.text)
		}
	}

	if len(jrnl.changes) != 3 {
		t.Errorf("got %d journal entries, want 3", len(jrnl.changes))
	}
}

func TestJournalErrorDoesNotFail(t *testing.T) {
	hst := newHost(&fakeJournal{err: errors.New("disk full")})

	_, err := hst.Apply(context.Background(), "s1", message.SetPow{Value: 1})
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestHandleRejects(t *testing.T) {
	hst := newHost(nil)
	ctx := context.Background()

	_, err := hst.Handle(ctx, "s1", []byte(`{"type":"Explode"}`))
	if !errors.Is(err, message.ErrUnknownAction) {
		t.Errorf("got %v, want ErrUnknownAction", err)
	}

	_, err = hst.Handle(ctx, "s1", []byte(`garbage`))
	if !errors.Is(err, message.ErrMalformed) {
		t.Errorf("got %v, want ErrMalformed", err)
	}
}

func TestRestore(t *testing.T) {
	hst := newHost(nil)

	restored := hst.Restore([]nt.Change{
		{Param: "pow", Plain: 4},
		{Param: "length", Plain: 2},
		{Param: "volume", Plain: 11},
	})
	if restored != 2 {
		t.Errorf("got %d restored, want 2", restored)
	}

	plain, _, _ := hst.Param("pow")
	if plain != 4 {
		t.Errorf("got pow %v, want 4", plain)
	}
	plain, _, _ = hst.Param("length")
	if plain != 2 {
		t.Errorf("got length %v, want 2", plain)
	}
}

func TestRestoredGainReachesPanelOnInit(t *testing.T) {
	hst := newHost(nil)

	restored := hst.Restore([]nt.Change{{Param: "gain", Plain: DbToGain(6)}})
	if restored != 1 {
		t.Fatalf("got %d restored, want 1", restored)
	}
	_, text, _ := hst.Param("gain")
	if text != "6.00 dB" {
		t.Fatalf("got gain %q, want 6.00 dB", text)
	}

	replies, err := hst.Apply(context.Background(), "s1", message.Init{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(replies) != 2 {
		t.Fatalf("got %d replies, want 2", len(replies))
	}

	pc, ok := decodeReply(t, replies[1]).(message.ParamChange)
	if !ok {
		t.Fatalf("expected param change, got %s", replies[1])
	}
	if pc.Param != "gain" || pc.Text != "6.00 dB" || pc.Value <= 0.5 {
		t.Errorf("got %#v", pc)
	}
}
