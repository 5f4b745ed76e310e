package stream

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vango-dev/htgo/pkg/middleware"
	"github.com/vango-dev/htgo/pkg/node"
)

// DefaultMediaType is the Content-Type of streamed responses.
const DefaultMediaType = "text/html; charset=utf-8"

// PageFunc builds the node for a request.
type PageFunc func(r *http.Request) node.Node

type config struct {
	status    int
	header    http.Header
	mediaType string
	observer  middleware.Observer
	logger    *slog.Logger
	values    node.Values
	page      string
}

// Option configures a streamed response.
type Option func(*config)

// WithStatus sets the response status code (default 200).
func WithStatus(code int) Option {
	return func(c *config) {
		c.status = code
	}
}

// WithHeader adds a response header.
func WithHeader(key, value string) Option {
	return func(c *config) {
		c.header.Add(key, value)
	}
}

// WithMediaType sets the Content-Type (default DefaultMediaType).
func WithMediaType(mediaType string) Option {
	return func(c *config) {
		c.mediaType = mediaType
	}
}

// WithObserver reports every render to o.
func WithObserver(o middleware.Observer) Option {
	return func(c *config) {
		c.observer = o
	}
}

// WithLogger sets the logger for failures after the response has started.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithValues sets the context values the render starts with.
func WithValues(vals node.Values) Option {
	return func(c *config) {
		c.values = vals
	}
}

// WithPage sets the page name reported to the observer. By default the chi
// route pattern is used, or the request path outside of chi.
func WithPage(name string) Option {
	return func(c *config) {
		c.page = name
	}
}

func newConfig(opts []Option) *config {
	c := &config{
		status:    http.StatusOK,
		header:    make(http.Header),
		mediaType: DefaultMediaType,
		observer:  middleware.Nop,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Handler returns a handler streaming n on every request. n must be
// reusable: a one-shot generator would fail from the second request on.
func Handler(n node.Node, opts ...Option) http.Handler {
	return HandlerFunc(func(*http.Request) node.Node { return n }, opts...)
}

// HandlerFunc returns a handler streaming the node built by fn.
func HandlerFunc(fn PageFunc, opts ...Option) http.Handler {
	c := newConfig(opts)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = c.write(w, r, fn(r))
	})
}

// Mount registers a GET route streaming the node built by fn.
func Mount(r chi.Router, pattern string, fn PageFunc, opts ...Option) {
	r.Method(http.MethodGet, pattern, HandlerFunc(fn, opts...))
}

// Write streams n as the response to r. It returns the render error, if
// any, after reporting it.
func Write(w http.ResponseWriter, r *http.Request, n node.Node, opts ...Option) error {
	return newConfig(opts).write(w, r, n)
}

func (c *config) pageName(r *http.Request) string {
	if c.page != "" {
		return c.page
	}
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}

func (c *config) write(w http.ResponseWriter, r *http.Request, n node.Node) (err error) {
	page := c.pageName(r)
	ctx := c.observer.Start(r.Context(), page)
	start := time.Now()
	var stats middleware.Stats
	defer func() {
		stats.Duration = time.Since(start)
		c.observer.Finish(ctx, page, stats, err)
	}()

	flusher, _ := w.(http.Flusher)
	started := false
	for chunk, renderErr := range node.AIterChunks(ctx, n, c.values) {
		if renderErr != nil {
			err = renderErr
			break
		}
		if !started {
			c.writeHeader(w)
			started = true
		}
		written, writeErr := io.WriteString(w, chunk)
		stats.Chunks++
		stats.Bytes += int64(written)
		if writeErr != nil {
			err = fmt.Errorf("stream: write %s: %w", page, writeErr)
			break
		}
		if flusher != nil {
			flusher.Flush()
		}
	}

	switch {
	case err == nil && !started:
		c.writeHeader(w)
	case err != nil && !started:
		if ctx.Err() == nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		c.logger.ErrorContext(ctx, "render failed", "page", page, "error", err)
	case err != nil && ctx.Err() != nil:
		c.logger.DebugContext(ctx, "client went away", "page", page, "chunks", stats.Chunks)
	case err != nil:
		c.logger.ErrorContext(ctx, "render failed after response started",
			"page", page, "chunks", stats.Chunks, "error", err)
	}
	return err
}

func (c *config) writeHeader(w http.ResponseWriter) {
	h := w.Header()
	for k, v := range c.header {
		h[k] = append(h[k], v...)
	}
	h.Set("Content-Type", c.mediaType)
	w.WriteHeader(c.status)
}
