package middleware

import (
	"context"
	stderrors "errors"
	"log/slog"
	"time"

	"github.com/vango-dev/htgo/internal/errors"
)

// Stats describes one finished render.
type Stats struct {
	Chunks   int
	Bytes    int64
	Duration time.Duration
}

// Observer is notified around every render.
type Observer interface {
	// Start is called before rendering. The returned context is used for the
	// render.
	Start(ctx context.Context, page string) context.Context

	// Finish is called once rendering has stopped.
	Finish(ctx context.Context, page string, stats Stats, err error)
}

type chain []Observer

// Chain combines observers. Start runs in order and Finish in reverse order.
func Chain(observers ...Observer) Observer {
	var c chain
	for _, o := range observers {
		if o != nil {
			c = append(c, o)
		}
	}
	return c
}

func (c chain) Start(ctx context.Context, page string) context.Context {
	for _, o := range c {
		ctx = o.Start(ctx, page)
	}
	return ctx
}

func (c chain) Finish(ctx context.Context, page string, stats Stats, err error) {
	for i := len(c) - 1; i >= 0; i-- {
		c[i].Finish(ctx, page, stats, err)
	}
}

// Nop is an Observer that does nothing.
var Nop Observer = chain(nil)

type logging struct {
	logger *slog.Logger
}

// Logging creates an Observer that logs finished renders.
func Logging(logger *slog.Logger) Observer {
	if logger == nil {
		logger = slog.Default()
	}
	return logging{logger: logger}
}

func (l logging) Start(ctx context.Context, page string) context.Context {
	return ctx
}

func (l logging) Finish(ctx context.Context, page string, stats Stats, err error) {
	attrs := []any{
		"page", page,
		"chunks", stats.Chunks,
		"bytes", stats.Bytes,
		"duration", stats.Duration,
	}
	switch {
	case err == nil:
		l.logger.DebugContext(ctx, "render finished", attrs...)
	case isCanceled(err):
		l.logger.InfoContext(ctx, "render canceled", append(attrs, "error", err)...)
	default:
		l.logger.ErrorContext(ctx, "render failed", append(attrs, "error", err)...)
	}
}

// ErrorKind returns a low-cardinality label for err.
func ErrorKind(err error) string {
	var e *errors.Error
	switch {
	case err == nil:
		return ""
	case isCanceled(err):
		return "canceled"
	case stderrors.As(err, &e) && e.Kind != "":
		return string(e.Kind)
	default:
		return "internal"
	}
}

func isCanceled(err error) bool {
	return stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded)
}
