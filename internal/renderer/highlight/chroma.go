package highlight

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// ChromaRenderer renders markup with the chroma tokenizer. The language
// identifier is supplied externally (derived from the file extension) and
// passed through opaquely; unknown languages fall back to the plaintext
// lexer so the output still aligns with the input surface.
type ChromaRenderer struct {
	style     *chroma.Style
	formatter *html.Formatter
}

// NewChromaRenderer creates a renderer using the named chroma style.
// An unknown style name falls back to chroma's default.
func NewChromaRenderer(styleName string) *ChromaRenderer {
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}
	return &ChromaRenderer{
		style: style,
		// Inline styles, no surrounding <pre>: the markup is positioned by
		// the caller with the shared layout metrics.
		formatter: html.New(html.PreventSurroundingPre(true)),
	}
}

// Render produces pre-escaped HTML markup for content.
func (r *ChromaRenderer) Render(content, language string) (string, error) {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, content)
	if err != nil {
		return "", fmt.Errorf("tokenise %q: %w", language, err)
	}

	var buf strings.Builder
	if err := r.formatter.Format(&buf, r.style, iterator); err != nil {
		return "", fmt.Errorf("format %q: %w", language, err)
	}
	return buf.String(), nil
}
