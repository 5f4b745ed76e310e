package main

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vango-dev/htgo/internal/demo"
	"github.com/vango-dev/htgo/pkg/node"
	"github.com/vango-dev/htgo/pkg/publish"
)

func renderCmd(c *cli) *cobra.Command {
	var (
		output string
		minify bool
		params map[string]string
	)

	cmd := &cobra.Command{
		Use:   "render [page]",
		Short: "Render a demo page",
		Long: `Render a demo page to stdout or a file.

The page is rendered as a stream: with no output file the markup is
written as each chunk is produced.

Examples:
  htgo render
  htgo render table --param rows=500 -o table.html
  htgo render index --param theme=dark --minify`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := c.cfg.Render.Page
			if len(args) == 1 {
				name = args[0]
			}
			path := c.cfg.OutputPath()
			if cmd.Flags().Changed("output") {
				path = output
			}
			if cmd.Flags().Changed("minify") {
				c.cfg.Render.Minify = minify
			}
			return c.render(cmd.Context(), name, params, path)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	cmd.Flags().BoolVarP(&minify, "minify", "m", false, "Minify the output")
	cmd.Flags().StringToStringVarP(&params, "param", "p", nil, "Query parameters passed to the page")

	return cmd
}

func (c *cli) render(ctx context.Context, name string, params map[string]string, path string) error {
	page, err := demo.Lookup(name)
	if err != nil {
		return err
	}
	req, err := pageRequest(ctx, page, params)
	if err != nil {
		return err
	}

	w := c.stdout
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return err
		}
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	n, err := c.writePage(ctx, w, page.Build(req))
	if err != nil {
		return err
	}
	c.logger.Debug("page rendered", "page", name, "bytes", n)
	if path != "" {
		c.success("Wrote %d bytes to %s", n, path)
	}
	return nil
}

func (c *cli) writePage(ctx context.Context, w io.Writer, n node.Node) (int64, error) {
	if !c.cfg.Render.Minify {
		return node.StreamTo(ctx, w, n, node.Values{})
	}
	html, err := node.RenderContext(ctx, n, node.Values{})
	if err != nil {
		return 0, err
	}
	body, err := publish.Minify([]byte(html))
	if err != nil {
		return 0, err
	}
	written, err := w.Write(body)
	return int64(written), err
}

// pageRequest builds the request a page is rendered for outside a server.
func pageRequest(ctx context.Context, page demo.Page, params map[string]string) (*http.Request, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	q := url.Values{}
	for k, v := range params {
		q.Set(k, v)
	}
	u := &url.URL{Path: page.Path(), RawQuery: q.Encode()}
	return http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
}
