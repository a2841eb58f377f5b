// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"strings"

	"github.com/jonahbd1/jonahbd1.github.io/internal/authors"
	"github.com/jonahbd1/jonahbd1.github.io/pkg/types"
)

// htmlEscaper escapes text nodes and link text. Raw href URLs are left
// untouched.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// EscapeHTML escapes &, < and > for embedding in HTML text content.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// HTML renders the publication card grid spliced into index.html: one
// card per record, in input order, with an escaped title heading, an
// optional link line, and the truncated author line.
func HTML(pubs []types.Publication, owner authors.Owner) string {
	lines := []string{`      <div class="grid">`}
	for _, p := range pubs {
		url, text := Link(p)
		lines = append(lines,
			`        <div class="card">`,
			fmt.Sprintf("          <h3>%s</h3>", EscapeHTML(p.Title)),
		)
		if url != "" {
			lines = append(lines, fmt.Sprintf(
				`          <p><em><a href="%s" target="_blank" rel="noreferrer">%s</a></em></p>`,
				url, EscapeHTML(text)))
		}
		lines = append(lines,
			fmt.Sprintf(`          <p class="subtle">%s</p>`, authors.HTMLList(p.Authors, owner)),
			`        </div>`,
		)
	}
	lines = append(lines, `      </div>`)
	return strings.Join(lines, "\n")
}
