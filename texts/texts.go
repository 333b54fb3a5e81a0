package texts

import (
	"embed"
	"fmt"
	"html"
	"strings"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_texts.go -package mocks timeline_cache/texts ITexts

//go:embed snippets
var fs embed.FS

type ITexts interface {
	Get(id string) string
	WithVals(id string, vals map[string]string) string
}

func NewTexts() ITexts {
	return &texts{}
}

type texts struct {
}

func (t *texts) Get(id string) string {
	fn := fmt.Sprintf("snippets/%s", id)
	bytes, err := fs.ReadFile(fn)
	if err != nil {
		return ""
	}
	return string(bytes)
}

// WithVals fills {{placeholders}} in one pass, so substituted values are never expanded again.
// Values going into .html snippets are escaped.
func (t *texts) WithVals(id string, vals map[string]string) string {
	res := t.Get(id)
	isHtml := strings.HasSuffix(id, ".html")
	pairs := make([]string, 0, 2*len(vals))
	for ph, val := range vals {
		if isHtml {
			val = html.EscapeString(val)
		}
		pairs = append(pairs, fmt.Sprintf("{{%s}}", ph), val)
	}
	return strings.NewReplacer(pairs...).Replace(res)
}
