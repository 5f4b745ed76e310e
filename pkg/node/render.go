package node

import (
	"bytes"
	"context"
	"io"
	"iter"
	"strings"

	"github.com/vango-dev/htgo/pkg/markup"
)

// IterChunks renders n lazily. Chunks are produced as the caller pulls them;
// lazy children are resolved only when reached. A failure is reported as the
// final pair with an empty chunk; chunks already yielded remain valid.
// Construction errors recorded on n are reported before any chunk.
func IterChunks(n Node, vals Values) iter.Seq2[string, error] {
	return chunks(nil, n, vals)
}

// AIterChunks renders n lazily under ctx. Besides everything IterChunks
// accepts, futures and channels are resolved. The context is checked before
// every chunk and while waiting on channels.
func AIterChunks(ctx context.Context, n Node, vals Values) iter.Seq2[string, error] {
	if ctx == nil {
		ctx = context.Background()
	}
	return chunks(ctx, n, vals)
}

func chunks(ctx context.Context, n Node, vals Values) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		if e, ok := n.(interface{ Err() error }); ok && Classify(n) != KindEmpty {
			if err := e.Err(); err != nil {
				yield("", err)
				return
			}
		}
		r := &renderer{ctx: ctx}
		err := r.walk(n, vals, func(s string) bool {
			return yield(s, nil)
		})
		if err != nil && err != errStopped {
			yield("", err)
		}
	}
}

// Render renders n to a string.
func Render(n Node, vals Values) (markup.Safe, error) {
	var b strings.Builder
	for chunk, err := range IterChunks(n, vals) {
		if err != nil {
			return "", err
		}
		b.WriteString(chunk)
	}
	return markup.Safe(b.String()), nil
}

// RenderContext renders n to a string in asynchronous mode.
func RenderContext(ctx context.Context, n Node, vals Values) (markup.Safe, error) {
	var b strings.Builder
	for chunk, err := range AIterChunks(ctx, n, vals) {
		if err != nil {
			return "", err
		}
		b.WriteString(chunk)
	}
	return markup.Safe(b.String()), nil
}

// Bytes renders n to UTF-8 bytes.
func Bytes(n Node, vals Values) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := WriteTo(&buf, n, vals); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteTo writes the chunks of n to w as they are produced.
func WriteTo(w io.Writer, n Node, vals Values) (int64, error) {
	return write(w, IterChunks(n, vals))
}

// StreamTo writes the chunks of n to w in asynchronous mode.
func StreamTo(ctx context.Context, w io.Writer, n Node, vals Values) (int64, error) {
	return write(w, AIterChunks(ctx, n, vals))
}

func write(w io.Writer, chunks iter.Seq2[string, error]) (int64, error) {
	var total int64
	for chunk, err := range chunks {
		if err != nil {
			return total, err
		}
		n, err := io.WriteString(w, chunk)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
