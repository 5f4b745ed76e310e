package main

import (
	"context"
	"errors"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/vango-dev/htgo/el"
	"github.com/vango-dev/htgo/internal/config"
	"github.com/vango-dev/htgo/internal/demo"
	"github.com/vango-dev/htgo/pkg/backend"
	"github.com/vango-dev/htgo/pkg/middleware"
	"github.com/vango-dev/htgo/pkg/node"
	"github.com/vango-dev/htgo/pkg/stream"
	"github.com/vango-dev/htgo/pkg/wsstream"
)

func serveCmd(c *cli) *cobra.Command {
	var (
		addr      string
		metrics   bool
		tracing   bool
		websocket bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the demo pages",
		Long: `Serve the demo pages over HTTP, streaming every response.

Routes:
  /                    the index page
  /pages/{name}        the other demo pages
  /ws/{name}           the same pages streamed over a WebSocket
  /templates/{name}    template backend, query parameters as data
  /legacy              html/template page embedding htgo nodes
  /templ               htgo table served through templ
  /metrics             Prometheus metrics

Examples:
  htgo serve
  htgo serve --addr localhost:3000 --tracing`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc := &c.cfg.Serve
			flags := cmd.Flags()
			if flags.Changed("addr") {
				sc.Addr = addr
			}
			if flags.Changed("metrics") {
				sc.Metrics = metrics
			}
			if flags.Changed("tracing") {
				sc.Tracing = tracing
			}
			if flags.Changed("websocket") {
				sc.WebSocket = websocket
			}
			if err := c.cfg.Validate(); err != nil {
				return err
			}
			return c.serve(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (default from config)")
	cmd.Flags().BoolVar(&metrics, "metrics", true, "Expose Prometheus metrics")
	cmd.Flags().BoolVar(&tracing, "tracing", false, "Record OpenTelemetry spans")
	cmd.Flags().BoolVar(&websocket, "websocket", true, "Serve pages over WebSocket")

	return cmd
}

func (c *cli) serve(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	sc := c.cfg.Serve
	srv := &http.Server{
		Addr:              sc.Addr,
		Handler:           newServer(sc, c.logger, prometheus.NewRegistry()),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      sc.WriteTimeout,
		ErrorLog:          slog.NewLogLogger(c.logger.Handler(), slog.LevelError),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	c.logger.Info("serving demo pages", "addr", sc.Addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	c.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

var legacyTemplate = template.Must(template.New("legacy").Funcs(backend.FuncMap()).Parse(`<!doctype html>
<html lang="en">
<head><meta charset="utf-8"><title>{{ .Title }}</title></head>
<body>
<h1>{{ .Title }}</h1>
{{ htgo .Table }}
{{ htgo .Footer }}
</body>
</html>
`))

// newServer builds the demo router. Metrics are registered on reg.
func newServer(sc config.ServeConfig, logger *slog.Logger, reg *prometheus.Registry) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID, chimw.RealIP, chimw.Recoverer)

	observers := []middleware.Observer{middleware.Logging(logger)}
	if sc.Metrics {
		observers = append(observers, middleware.Prometheus(middleware.WithRegistry(reg)))
		r.Method(http.MethodGet, sc.MetricsPath, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}
	if sc.Tracing {
		observers = append(observers, middleware.OpenTelemetry())
	}
	observer := middleware.Chain(observers...)
	opts := []stream.Option{stream.WithObserver(observer), stream.WithLogger(logger)}

	for _, p := range demo.Pages() {
		stream.Mount(r, p.Path(), p.Build, opts...)
	}

	if sc.WebSocket {
		handlers := make(map[string]http.Handler)
		for _, p := range demo.Pages() {
			handlers[p.Name] = wsstream.Handler(p.Build,
				wsstream.WithObserver(observer),
				wsstream.WithLogger(logger),
			)
		}
		r.Get("/ws/{page}", func(w http.ResponseWriter, req *http.Request) {
			h, ok := handlers[chi.URLParam(req, "page")]
			if !ok {
				http.NotFound(w, req)
				return
			}
			h.ServeHTTP(w, req)
		})
	}

	templates := backend.New()
	demo.Register(templates)
	r.Get("/templates/{name}", func(w http.ResponseWriter, req *http.Request) {
		t, err := templates.Template(chi.URLParam(req, "name"))
		if err != nil {
			http.NotFound(w, req)
			return
		}
		data := make(map[string]any)
		for k := range req.URL.Query() {
			data[k] = req.URL.Query().Get(k)
		}
		_ = stream.Write(w, req, t.Node(req, data), opts...)
	})

	r.Get("/legacy", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", stream.DefaultMediaType)
		err := legacyTemplate.Execute(w, map[string]any{
			"Title":  "html/template",
			"Table":  demo.Table(demo.FakeRows(5, 1)),
			"Footer": el.Footer.Children(backend.FromTempl(poweredBy)),
		})
		if err != nil {
			logger.Error("legacy template failed", "error", err)
		}
	})

	r.Handle("/templ", templ.Handler(backend.ToTempl(
		demo.Layout("templ", demo.Table(demo.FakeRows(5, 1))), node.Values{},
	)))

	r.NotFound(stream.Handler(
		demo.Layout("Not found", el.P.Children("There is no page here. ", el.A.With(el.Href("/")).Children("Go home"))),
		append(opts, stream.WithStatus(http.StatusNotFound), stream.WithPage("not_found"))...,
	).ServeHTTP)

	return r
}

// poweredBy is a plain templ component embedded in htgo markup.
var poweredBy = templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
	_, err := io.WriteString(w, `<small class="powered-by">Powered by templ and htgo</small>`)
	return err
})
