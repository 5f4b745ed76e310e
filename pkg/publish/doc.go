// Package publish renders pages and uploads them to S3-compatible storage.
//
// Pages are rendered with the asynchronous renderer, optionally minified
// with tdewolff/minify, and stored with an HTML content type:
//
//	client := publish.NewS3Client(publish.ClientConfig{Region: "eu-west-1"})
//	p := publish.New(client, "my-site", publish.WithPrefix("www/"), publish.WithMinify(true))
//	res, err := p.Publish(ctx, "index.html", pages.Index())
package publish
