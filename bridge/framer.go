package bridge

import (
	"bufio"
	"context"
	"io"

	"github.com/coder/websocket"
	"github.com/pkg/errors"
)

// Framer reads and writes whole message frames.
type Framer interface {
	ReadFrame(ctx context.Context) ([]byte, error)
	WriteFrame(ctx context.Context, data []byte) error
	Close() error
}

// LineFramer frames messages as newline-delimited json.
type LineFramer struct {
	rwc     io.ReadWriteCloser
	scanner *bufio.Scanner
}

// NewLineFramer wraps rwc, such as a unix socket connection.
func NewLineFramer(rwc io.ReadWriteCloser) *LineFramer {

	scanner := bufio.NewScanner(rwc)
	scanner.Buffer(make([]byte, 0, 4096), maxFrame)

	return &LineFramer{
		rwc:     rwc,
		scanner: scanner,
	}
}

// ReadFrame returns the next non-empty line.
// Blocks until one arrives; close the framer to unblock.
func (lf *LineFramer) ReadFrame(ctx context.Context) (data []byte, err error) {

	for lf.scanner.Scan() {
		line := lf.scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		data = append([]byte(nil), line...)
		return
	}

	err = lf.scanner.Err()
	if err == nil {
		err = io.EOF
	}
	return
}

func (lf *LineFramer) WriteFrame(ctx context.Context, data []byte) (err error) {

	frame := make([]byte, 0, len(data)+1)
	frame = append(append(frame, data...), '\n')

	_, err = lf.rwc.Write(frame)
	err = errors.Wrapf(err, "failed to write frame")
	return
}

func (lf *LineFramer) Close() error {
	return lf.rwc.Close()
}

// SocketFramer frames messages as websocket text messages.
type SocketFramer struct {
	conn *websocket.Conn
}

// NewSocketFramer wraps an open websocket connection.
func NewSocketFramer(conn *websocket.Conn) *SocketFramer {

	conn.SetReadLimit(maxFrame)
	return &SocketFramer{conn: conn}
}

func (sf *SocketFramer) ReadFrame(ctx context.Context) (data []byte, err error) {

	_, data, err = sf.conn.Read(ctx)
	return
}

func (sf *SocketFramer) WriteFrame(ctx context.Context, data []byte) (err error) {

	err = sf.conn.Write(ctx, websocket.MessageText, data)
	err = errors.Wrapf(err, "failed to write frame")
	return
}

func (sf *SocketFramer) Close() error {
	return sf.conn.Close(websocket.StatusNormalClosure, "")
}

// unexported

const maxFrame = 64 * 1024
