// Package bridge carries messages between the panel and its plugin host.
package bridge

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	nt "exgain/entity"
	"exgain/message"
)

var (
	// ErrClosed is returned by Send after the link is closed.
	ErrClosed = errors.New("bridge closed")
	// ErrBackedUp is returned by Send when the outbound queue is full.
	ErrBackedUp = errors.New("bridge backed up")
)

// Link is a fire-and-forget message bridge over a Framer.
// Sends are queued and written in order by a single goroutine.
type Link struct {
	framer Framer
	logger nt.Logger
	name   string

	queue   chan []byte
	handler func(message.Inbound)

	mu     sync.Mutex
	closed bool

	cancel context.CancelFunc
	once   sync.Once
	done   chan struct{}
}

// NewLink starts reading from and writing to framer until ctx is done or Close is called.
func NewLink(ctx context.Context, name string, framer Framer, depth int, lgr nt.Logger) *Link {

	if depth <= 0 {
		depth = defaultDepth
	}

	ctx, cancel := context.WithCancel(ctx)
	lnk := &Link{
		framer: framer,
		logger: lgr,
		name:   name,
		queue:  make(chan []byte, depth),
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go lnk.write(ctx)
	go lnk.read(ctx)

	return lnk
}

// Name returns the transport name.
func (lnk *Link) Name() string {
	return lnk.name
}

// Send queues msg for the host.
func (lnk *Link) Send(msg message.Outbound) (err error) {

	data, err := message.Encode(msg)
	if err != nil {
		return
	}

	lnk.mu.Lock()
	defer lnk.mu.Unlock()

	if lnk.closed {
		return ErrClosed
	}

	select {
	case lnk.queue <- data:
	default:
		err = errors.Wrapf(ErrBackedUp, "dropped %s", msg.Type())
	}
	return
}

// OnReceive registers the handler for host messages, replacing any prior one.
// The handler is called from the link's read goroutine.
func (lnk *Link) OnReceive(handler func(message.Inbound)) {

	lnk.mu.Lock()
	defer lnk.mu.Unlock()

	lnk.handler = handler
}

// Done is closed when the link stops reading, after which Send returns ErrClosed.
func (lnk *Link) Done() <-chan struct{} {
	return lnk.done
}

// Close stops the link and closes its framer.
func (lnk *Link) Close() (err error) {

	lnk.shut()
	lnk.once.Do(func() {
		lnk.cancel()
		err = lnk.framer.Close()
		<-lnk.done
	})
	return
}

// unexported

const defaultDepth = 256

func (lnk *Link) write(ctx context.Context) {

	for data := range lnk.queue {
		err := lnk.framer.WriteFrame(ctx, data)
		if err != nil {
			lnk.logger.Error(ctx, "bridge write failed", err, "transport", lnk.name)
		}
	}
}

// shut refuses further sends and lets the writer drain.
func (lnk *Link) shut() {

	lnk.mu.Lock()
	defer lnk.mu.Unlock()

	if lnk.closed {
		return
	}
	lnk.closed = true
	close(lnk.queue)
}

func (lnk *Link) read(ctx context.Context) {

	defer close(lnk.done)
	defer lnk.shut()

	for {
		data, err := lnk.framer.ReadFrame(ctx)
		if err != nil {
			if ctx.Err() == nil {
				lnk.logger.Info(ctx, "bridge read stopped", "transport", lnk.name, "reason", err.Error())
			}
			return
		}

		msg, err := message.Decode(data)
		if err != nil {
			lnk.logger.Error(ctx, "dropping host message", err, "transport", lnk.name)
			continue
		}
		if msg == nil {
			continue
		}

		lnk.mu.Lock()
		handler := lnk.handler
		lnk.mu.Unlock()

		if handler != nil {
			handler(msg)
		}
	}
}
