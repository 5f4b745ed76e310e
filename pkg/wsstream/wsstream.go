package wsstream

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/gorilla/websocket"

	"github.com/vango-dev/htgo/pkg/middleware"
	"github.com/vango-dev/htgo/pkg/node"
	"github.com/vango-dev/htgo/pkg/stream"
)

// maxCloseReason is the room left for the reason in a close frame.
const maxCloseReason = 123

// Config holds the websocket streaming settings.
type Config struct {
	ReadBufferSize  int
	WriteBufferSize int
	WriteTimeout    time.Duration
	CheckOrigin     func(r *http.Request) bool
	Observer        middleware.Observer
	Logger          *slog.Logger
	Values          node.Values
}

// DefaultConfig returns the settings used when no option overrides them.
// Origins are checked by gorilla's same-origin default.
func DefaultConfig() *Config {
	return &Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
		WriteTimeout:    10 * time.Second,
		Observer:        middleware.Nop,
		Logger:          slog.Default(),
	}
}

// Option configures the websocket handler.
type Option func(*Config)

// WithBufferSizes sets the connection read and write buffer sizes.
func WithBufferSizes(read, write int) Option {
	return func(c *Config) {
		c.ReadBufferSize = read
		c.WriteBufferSize = write
	}
}

// WithWriteTimeout bounds the time spent writing a single frame.
func WithWriteTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.WriteTimeout = d
	}
}

// WithCheckOrigin replaces the origin check of the upgrade.
func WithCheckOrigin(fn func(r *http.Request) bool) Option {
	return func(c *Config) {
		c.CheckOrigin = fn
	}
}

// WithObserver reports every render to o.
func WithObserver(o middleware.Observer) Option {
	return func(c *Config) {
		c.Observer = o
	}
}

// WithLogger sets the logger for upgrade and render failures.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithValues sets the context values each render starts with.
func WithValues(vals node.Values) Option {
	return func(c *Config) {
		c.Values = vals
	}
}

// Handler upgrades the request and streams the node built by fn.
func Handler(fn stream.PageFunc, opts ...Option) http.Handler {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	upgrader := websocket.Upgrader{
		ReadBufferSize:  cfg.ReadBufferSize,
		WriteBufferSize: cfg.WriteBufferSize,
		CheckOrigin:     cfg.CheckOrigin,
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade has already replied with an HTTP error.
			cfg.Logger.Debug("websocket upgrade failed", "path", r.URL.Path, "error", err)
			return
		}
		defer conn.Close()

		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()
		go watch(conn, cancel)

		_ = cfg.stream(ctx, conn, r.URL.Path, fn(r))
	})
}

// Stream renders n on an established connection, one text frame per chunk,
// and closes the session with a close frame. It does not close conn.
func Stream(ctx context.Context, conn *websocket.Conn, n node.Node, opts ...Option) error {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg.stream(ctx, conn, "websocket", n)
}

// watch drains incoming frames so control messages are processed, and
// cancels the render once the client goes away.
func watch(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()
	for {
		if _, _, err := conn.NextReader(); err != nil {
			return
		}
	}
}

func (c *Config) stream(ctx context.Context, conn *websocket.Conn, page string, n node.Node) (err error) {
	ctx = c.Observer.Start(ctx, page)
	start := time.Now()
	var stats middleware.Stats
	defer func() {
		stats.Duration = time.Since(start)
		c.Observer.Finish(ctx, page, stats, err)
	}()

	for chunk, renderErr := range node.AIterChunks(ctx, n, c.Values) {
		if renderErr != nil {
			err = renderErr
			break
		}
		if c.WriteTimeout > 0 {
			conn.SetWriteDeadline(time.Now().Add(c.WriteTimeout))
		}
		if writeErr := conn.WriteMessage(websocket.TextMessage, []byte(chunk)); writeErr != nil {
			err = fmt.Errorf("wsstream: write frame: %w", writeErr)
			c.Logger.Debug("websocket write failed", "page", page, "error", writeErr)
			return err
		}
		stats.Chunks++
		stats.Bytes += int64(len(chunk))
	}

	code, reason := websocket.CloseNormalClosure, ""
	switch {
	case err != nil && ctx.Err() != nil:
		c.Logger.Debug("client went away", "page", page, "chunks", stats.Chunks)
		return err
	case err != nil:
		c.Logger.Error("render failed", "page", page, "chunks", stats.Chunks, "error", err)
		code, reason = websocket.CloseInternalServerErr, closeReason(err)
	}
	deadline := time.Now().Add(time.Second)
	if c.WriteTimeout > 0 {
		deadline = time.Now().Add(c.WriteTimeout)
	}
	conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, reason), deadline)
	return err
}

func closeReason(err error) string {
	s := err.Error()
	if len(s) <= maxCloseReason {
		return s
	}
	s = s[:maxCloseReason-3]
	for !utf8.ValidString(s) {
		s = s[:len(s)-1]
	}
	return s + "..."
}
