package publish

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/htgo/pkg/node"
)

// ContentType is stored with every published page.
const ContentType = "text/html; charset=utf-8"

// PutObjectAPI is the part of the S3 client the publisher needs.
type PutObjectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Page is a node stored under a key.
type Page struct {
	Key  string
	Node node.Node
}

// Result describes an uploaded page.
type Result struct {
	Bucket   string
	Key      string
	Size     int
	Original int
	ETag     string
}

// Publisher renders and uploads pages.
type Publisher struct {
	client       PutObjectAPI
	bucket       string
	prefix       string
	minify       bool
	cacheControl string
	values       node.Values
	logger       *slog.Logger
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithPrefix prepends prefix to every key.
func WithPrefix(prefix string) Option {
	return func(p *Publisher) {
		p.prefix = prefix
	}
}

// WithMinify minifies pages before upload.
func WithMinify(enabled bool) Option {
	return func(p *Publisher) {
		p.minify = enabled
	}
}

// WithCacheControl sets the Cache-Control metadata of uploaded pages.
func WithCacheControl(value string) Option {
	return func(p *Publisher) {
		p.cacheControl = value
	}
}

// WithValues sets the context values pages are rendered with.
func WithValues(vals node.Values) Option {
	return func(p *Publisher) {
		p.values = vals
	}
}

// WithLogger sets the logger reporting each upload.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

// New returns a publisher writing to bucket.
func New(client PutObjectAPI, bucket string, opts ...Option) *Publisher {
	p := &Publisher{
		client: client,
		bucket: bucket,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Key returns the object key a page key is stored under.
func (p *Publisher) Key(key string) string {
	key = strings.TrimPrefix(key, "/")
	if key == "" || strings.HasSuffix(key, "/") {
		key += "index.html"
	}
	if p.prefix == "" {
		return key
	}
	return path.Join(p.prefix, key)
}

// Publish renders n and uploads it under key.
func (p *Publisher) Publish(ctx context.Context, key string, n node.Node) (*Result, error) {
	html, err := node.RenderContext(ctx, n, p.values)
	if err != nil {
		return nil, fmt.Errorf("publish: render %s: %w", key, err)
	}
	body := []byte(html)
	original := len(body)
	if p.minify {
		if body, err = Minify(body); err != nil {
			return nil, fmt.Errorf("publish: minify %s: %w", key, err)
		}
	}

	objectKey := p.Key(key)
	in := &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(ContentType),
		Metadata:    map[string]string{"generator": "htgo"},
	}
	if p.cacheControl != "" {
		in.CacheControl = aws.String(p.cacheControl)
	}
	out, err := p.client.PutObject(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("publish: upload s3://%s/%s: %w", p.bucket, objectKey, err)
	}

	res := &Result{Bucket: p.bucket, Key: objectKey, Size: len(body), Original: original}
	if out != nil && out.ETag != nil {
		res.ETag = *out.ETag
	}
	p.logger.Info("page published", "bucket", p.bucket, "key", objectKey, "bytes", res.Size)
	return res, nil
}

// PublishAll uploads pages in order and stops at the first failure. The
// results of the pages uploaded before it are returned with the error.
func (p *Publisher) PublishAll(ctx context.Context, pages []Page) ([]*Result, error) {
	results := make([]*Result, 0, len(pages))
	for _, page := range pages {
		res, err := p.Publish(ctx, page.Key, page.Node)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}
