// Package host is a reference plugin host for the control panel.
// It applies panel actions to the plugin parameters and pushes state back.
package host

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/tidwall/sjson"

	nt "exgain/entity"
	"exgain/message"
)

// Journal records applied parameter changes.
type Journal interface {
	Record(ctx context.Context, change nt.Change) error
}

// Config sets the host window and listeners.
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Addr   string `yaml:"addr"`
	Socket string `yaml:"socket,omitempty"`
}

// DefaultConfig matches the editor's initial window.
func DefaultConfig() Config {
	return Config{
		Width:  200,
		Height: 200,
		Addr:   "127.0.0.1:8417",
	}
}

// Host owns the plugin parameters and window size.
type Host struct {
	mu      sync.Mutex
	params  Params
	size    nt.Size
	journal Journal
	logger  nt.Logger
	now     func() time.Time
}

// New creates a host; journal may be nil.
func (cfg Config) New(jrnl Journal, lgr nt.Logger) *Host {

	return &Host{
		params:  DefaultParams(),
		size:    nt.Size{Width: cfg.Width, Height: cfg.Height},
		journal: jrnl,
		logger:  lgr,
		now:     time.Now,
	}
}

// Size returns the current window size.
func (hst *Host) Size() nt.Size {

	hst.mu.Lock()
	defer hst.mu.Unlock()

	return hst.size
}

// Param returns a copy of the named parameter's plain value and display text.
func (hst *Host) Param(id string) (plain float64, text string, ok bool) {

	hst.mu.Lock()
	defer hst.mu.Unlock()

	for _, prm := range hst.params.All() {
		if prm.ID == id {
			return prm.Plain(), prm.String(), true
		}
	}
	return
}

// Restore sets parameters from previously journaled changes.
// Changes to unknown params are skipped.
func (hst *Host) Restore(changes []nt.Change) (restored int) {

	hst.mu.Lock()
	defer hst.mu.Unlock()

	for _, change := range changes {
		for _, prm := range hst.params.All() {
			if prm.ID == change.Param {
				prm.SetPlain(change.Plain)
				restored++
			}
		}
	}
	return
}

// Handle decodes and applies one frame from the panel, returning reply frames.
func (hst *Host) Handle(ctx context.Context, session string, data []byte) (replies [][]byte, err error) {

	action, err := message.DecodeAction(data)
	if err != nil {
		return
	}

	return hst.Apply(ctx, session, action)
}

// Apply applies an action, returning reply frames.
func (hst *Host) Apply(ctx context.Context, session string, action message.Outbound) (replies [][]byte, err error) {

	hst.mu.Lock()
	defer hst.mu.Unlock()

	switch act := action.(type) {
	case message.Init:
		var reply []byte
		reply, err = sizeReply(hst.size)
		if err != nil {
			return
		}
		replies = append(replies, reply)

		// the panel learns a restored gain here
		reply, err = gainReply(hst.params.Gain)
		if err != nil {
			return
		}
		replies = append(replies, reply)

	case message.SetSize:
		hst.size = nt.Size{Width: act.Width, Height: act.Height}
		hst.logger.Info(ctx, "resized", "session", session, "size", hst.size.String())

	case message.SetGain:
		if err = finite(act.Value); err != nil {
			return
		}
		hst.params.Gain.SetNormalized(act.Value)
		hst.record(ctx, session, hst.params.Gain)

		var reply []byte
		reply, err = gainReply(hst.params.Gain)
		if err != nil {
			return
		}
		replies = append(replies, reply)

	case message.SetLength:
		if err = finite(act.Value); err != nil {
			return
		}
		hst.params.Length.SetPlain(math.Trunc(act.Value))
		hst.record(ctx, session, hst.params.Length)

	case message.SetPow:
		if err = finite(act.Value); err != nil {
			return
		}
		hst.params.Pow.SetPlain(act.Value)
		hst.record(ctx, session, hst.params.Pow)

	case message.SetAmount:
		if err = finite(act.Value); err != nil {
			return
		}
		hst.params.Amount.SetPlain(act.Value)
		hst.record(ctx, session, hst.params.Amount)

	default:
		err = errors.Wrapf(message.ErrUnknownAction, "%T", action)
	}
	return
}

// unexported

func (hst *Host) record(ctx context.Context, session string, prm *Param) {

	if hst.journal == nil {
		return
	}

	err := hst.journal.Record(ctx, nt.Change{
		Session:    session,
		Param:      prm.ID,
		Plain:      prm.Plain(),
		Normalized: prm.Normalized(),
		Text:       prm.String(),
		At:         hst.now(),
	})
	if err != nil {
		hst.logger.Error(ctx, "failed to journal change", err, "param", prm.ID)
	}
}

func finite(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return errors.Errorf("value is not finite: %v", v)
	}
	return nil
}

func sizeReply(size nt.Size) ([]byte, error) {
	return message.Encode(message.SizeUpdate{Width: size.Width, Height: size.Height})
}

// gainReply builds the param_change notice for gain.
func gainReply(gain *Param) (data []byte, err error) {

	data = []byte(`{}`)
	for _, kv := range []struct {
		path  string
		value any
	}{
		{"type", message.TypeParamChange},
		{"param", gain.ID},
		{"value", gain.Normalized()},
		{"text", gain.String()},
	} {
		data, err = sjson.SetBytes(data, kv.path, kv.value)
		if err != nil {
			err = errors.Wrapf(err, "failed to set %s", kv.path)
			return
		}
	}
	return
}
