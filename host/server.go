package host

import (
	"context"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"exgain/bridge"
	nt "exgain/entity"
)

// BridgePath is where the websocket endpoint is mounted.
const BridgePath = "/bridge"

// Server exposes a Host to panels over websocket and unix socket.
type Server struct {
	host   *Host
	cfg    Config
	logger nt.Logger
}

// NewServer creates a server for hst.
func NewServer(hst *Host, cfg Config, lgr nt.Logger) *Server {

	return &Server{
		host:   hst,
		cfg:    cfg,
		logger: lgr,
	}
}

// Handler returns the http handler for the websocket endpoint.
func (srv *Server) Handler() http.Handler {

	mux := http.NewServeMux()
	mux.HandleFunc("GET "+BridgePath, srv.handleSocket)
	return mux
}

// Run serves until ctx is done.
func (srv *Server) Run(ctx context.Context) (err error) {

	grp, ctx := errgroup.WithContext(ctx)

	httpSrv := &http.Server{
		Addr:              srv.cfg.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	grp.Go(func() error {
		srv.logger.Info(ctx, "listening", "addr", srv.cfg.Addr)
		err := httpSrv.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrapf(err, "failed to serve on %s", srv.cfg.Addr)
	})

	grp.Go(func() error {
		<-ctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutCtx)
	})

	if srv.cfg.Socket != "" {
		grp.Go(func() error {
			return srv.serveUnix(ctx)
		})
	}

	err = grp.Wait()
	return
}

// Serve handles one panel connection until it closes or ctx is done.
func (srv *Server) Serve(ctx context.Context, framer bridge.Framer) (err error) {

	session := uuid.NewString()
	srv.logger.Info(ctx, "panel connected", "session", session)
	defer srv.logger.Info(ctx, "panel disconnected", "session", session)

	for {
		var data []byte
		data, err = framer.ReadFrame(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil ||
				websocket.CloseStatus(err) == websocket.StatusNormalClosure {
				err = nil
			}
			return
		}

		replies, herr := srv.host.Handle(ctx, session, data)
		if herr != nil {
			srv.logger.Error(ctx, "invalid action from panel", herr, "session", session)
			continue
		}

		for _, reply := range replies {
			err = framer.WriteFrame(ctx, reply)
			if err != nil {
				return
			}
		}
	}
}

// unexported

func (srv *Server) handleSocket(writer http.ResponseWriter, request *http.Request) {

	conn, err := websocket.Accept(writer, request, nil)
	if err != nil {
		srv.logger.Error(request.Context(), "failed to accept websocket", err)
		return
	}

	framer := bridge.NewSocketFramer(conn)
	defer framer.Close()

	err = srv.Serve(request.Context(), framer)
	if err != nil {
		srv.logger.Error(request.Context(), "websocket session ended", err)
	}
}

func (srv *Server) serveUnix(ctx context.Context) (err error) {

	path := srv.cfg.Socket
	_ = os.Remove(path)

	var lc net.ListenConfig
	listener, err := lc.Listen(ctx, "unix", path)
	if err != nil {
		err = errors.Wrapf(err, "failed to listen on %s", path)
		return
	}
	srv.logger.Info(ctx, "listening", "socket", path)

	go func() {
		<-ctx.Done()
		listener.Close()
	}()

	for {
		var conn net.Conn
		conn, err = listener.Accept()
		if err != nil {
			if ctx.Err() != nil {
				err = nil
			}
			return
		}

		go func() {
			framer := bridge.NewLineFramer(conn)
			defer framer.Close()

			stop := context.AfterFunc(ctx, func() { framer.Close() })
			defer stop()

			err := srv.Serve(ctx, framer)
			if err != nil {
				srv.logger.Error(ctx, "unix session ended", err)
			}
		}()
	}
}
