package publish

import (
	"sync"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
)

var (
	minifier     *minify.M
	minifierOnce sync.Once
)

func getMinifier() *minify.M {
	minifierOnce.Do(func() {
		minifier = minify.New()
		minifier.AddFunc("text/css", css.Minify)
		minifier.Add("text/html", &html.Minifier{
			KeepDocumentTags: true,
			KeepEndTags:      true,
		})
	})
	return minifier
}

// Minify removes insignificant whitespace and comments from an HTML page,
// including its inline style sheets.
// Document and end tags are kept so the output stays parseable by strict
// consumers.
func Minify(page []byte) ([]byte, error) {
	return getMinifier().Bytes("text/html", page)
}
