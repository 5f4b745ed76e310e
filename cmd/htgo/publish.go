package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/vango-dev/htgo/internal/config"
	"github.com/vango-dev/htgo/internal/demo"
	"github.com/vango-dev/htgo/internal/errors"
	"github.com/vango-dev/htgo/pkg/publish"
)

func publishCmd(c *cli) *cobra.Command {
	var (
		bucket   string
		prefix   string
		region   string
		endpoint string
		minify   bool
		dryRun   bool
	)

	cmd := &cobra.Command{
		Use:   "publish [page...]",
		Short: "Render demo pages and upload them to S3",
		Long: `Render demo pages and upload them to an S3 bucket. With no page
names, every page is published. Credentials are read from the standard
AWS environment variables.

Examples:
  htgo publish --bucket my-site
  htgo publish index table --bucket my-site --prefix preview/
  htgo publish --dry-run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			pc := &c.cfg.Publish
			flags := cmd.Flags()
			if flags.Changed("bucket") {
				pc.Bucket = bucket
			}
			if flags.Changed("prefix") {
				pc.Prefix = prefix
			}
			if flags.Changed("region") {
				pc.Region = region
			}
			if flags.Changed("endpoint") {
				pc.Endpoint = endpoint
			}
			if flags.Changed("minify") {
				pc.Minify = minify
			}
			if err := c.cfg.Validate(); err != nil {
				return err
			}
			if pc.Bucket == "" && !dryRun {
				return errors.New("H080").
					WithDetail("publish.bucket is required").
					WithSuggestion("Pass --bucket or set publish.bucket in " + config.ConfigFileName)
			}

			var client publish.PutObjectAPI = dryRunClient{w: c.stdout}
			if !dryRun {
				client = publish.NewS3Client(publish.ClientConfig{
					Region:    pc.Region,
					Endpoint:  pc.Endpoint,
					PathStyle: pc.PathStyle,
				})
			}
			return c.publish(cmd.Context(), client, args)
		},
	}

	cmd.Flags().StringVar(&bucket, "bucket", "", "Target bucket")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix")
	cmd.Flags().StringVar(&region, "region", "", "Bucket region (default $AWS_REGION)")
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "S3-compatible endpoint URL")
	cmd.Flags().BoolVar(&minify, "minify", true, "Minify pages before upload")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print what would be uploaded")

	return cmd
}

func (c *cli) publish(ctx context.Context, client publish.PutObjectAPI, names []string) error {
	pages := demo.Pages()
	if len(names) > 0 {
		pages = pages[:0:0]
		for _, name := range names {
			p, err := demo.Lookup(name)
			if err != nil {
				return err
			}
			pages = append(pages, p)
		}
	}

	pc := c.cfg.Publish
	p := publish.New(client, pc.Bucket,
		publish.WithPrefix(pc.Prefix),
		publish.WithMinify(pc.Minify),
		publish.WithCacheControl(pc.CacheControl),
		publish.WithLogger(c.logger),
	)

	batch := make([]publish.Page, 0, len(pages))
	for _, page := range pages {
		req, err := pageRequest(ctx, page, nil)
		if err != nil {
			return err
		}
		key := page.Path()
		if !strings.HasSuffix(key, "/") {
			key += "/"
		}
		batch = append(batch, publish.Page{Key: key, Node: page.Build(req)})
	}

	results, err := p.PublishAll(ctx, batch)
	for _, res := range results {
		c.success("s3://%s/%s (%d bytes)", res.Bucket, res.Key, res.Size)
	}
	return err
}

// dryRunClient prints uploads instead of performing them.
type dryRunClient struct {
	w io.Writer
}

func (d dryRunClient) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	size, err := io.Copy(io.Discard, in.Body)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(d.w, "would upload s3://%s/%s (%d bytes, %s)\n",
		aws.ToString(in.Bucket), aws.ToString(in.Key), size, aws.ToString(in.ContentType))
	return &s3.PutObjectOutput{}, nil
}
