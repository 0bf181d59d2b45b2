package bridge

import (
	"context"
	"net"
	"time"

	"github.com/coder/websocket"
	"github.com/pkg/errors"

	nt "exgain/entity"
)

// Transport names.
const (
	Socket = "ws"
	Unix   = "unix"
)

// Config selects and addresses the host transport.
type Config struct {
	Transport string        `yaml:"transport"`
	URL       string        `yaml:"url,omitempty"`
	Path      string        `yaml:"path,omitempty"`
	Depth     int           `yaml:"depth,omitempty"`
	Timeout   time.Duration `yaml:"timeout,omitempty"`
}

// DefaultConfig dials a host on localhost.
func DefaultConfig() Config {
	return Config{
		Transport: Socket,
		URL:       "ws://127.0.0.1:8417/bridge",
		Path:      "/tmp/exgain.sock",
		Depth:     defaultDepth,
		Timeout:   5 * time.Second,
	}
}

// Dial connects to the host and starts a link.
func (cfg Config) Dial(ctx context.Context, lgr nt.Logger) (lnk *Link, err error) {

	dialCtx := ctx
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		dialCtx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	var framer Framer
	switch cfg.Transport {
	case Socket:
		var conn *websocket.Conn
		conn, _, err = websocket.Dial(dialCtx, cfg.URL, nil)
		if err != nil {
			err = errors.Wrapf(err, "failed to dial %s", cfg.URL)
			return
		}
		framer = NewSocketFramer(conn)

	case Unix:
		var conn net.Conn
		var dialer net.Dialer
		conn, err = dialer.DialContext(dialCtx, "unix", cfg.Path)
		if err != nil {
			err = errors.Wrapf(err, "failed to dial %s", cfg.Path)
			return
		}
		framer = NewLineFramer(conn)

	default:
		err = errors.Errorf("unknown transport %q", cfg.Transport)
		return
	}

	lgr.Info(ctx, "bridge connected", "transport", cfg.Transport)
	lnk = NewLink(ctx, cfg.Transport, framer, cfg.Depth, lgr)
	return
}
