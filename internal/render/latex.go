// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"strings"

	"github.com/jonahbd1/jonahbd1.github.io/internal/authors"
	"github.com/jonahbd1/jonahbd1.github.io/pkg/types"
)

// latexEscaper escapes LaTeX special characters. $ is deliberately left
// alone: INSPIRE titles use $...$ for intentional math-mode markup.
var latexEscaper = strings.NewReplacer(
	"&", `\&`,
	"%", `\%`,
	"#", `\#`,
	"_", `\_`,
	"~", `\textasciitilde{}`,
)

// EscapeLaTeX escapes &, %, #, _ and ~ for embedding in LaTeX text.
func EscapeLaTeX(s string) string {
	return latexEscaper.Replace(s)
}

// LaTeX renders the publication itemize list spliced into the CV: one
// \item per record, in input order. Linked titles are wrapped in the
// CV's hyperlink+color macros; the coauthor \with{...} clause is only
// emitted when coauthors remain after excluding the owner; a trailing
// "journal / year" or "Preprint / year" clause is added via \sep when
// the data exists.
func LaTeX(pubs []types.Publication, owner authors.Owner) string {
	lines := []string{`\begin{itemize}`}
	for _, p := range pubs {
		url, _ := Link(p)
		title := EscapeLaTeX(p.Title)

		var item string
		if url != "" {
			item = fmt.Sprintf(`\item \href{%s}{\textcolor{DodgerBlue4}{%s}}`, url, title)
		} else {
			item = `\item ` + title
		}

		if co, ok := authors.LaTeXList(p.Authors, owner); ok {
			item += fmt.Sprintf(` \with{%s}`, co)
		}

		switch {
		case p.Journal != "":
			item += fmt.Sprintf(` \sep \textit{%s} \sep %s`, EscapeLaTeX(p.Journal), p.Year)
		case p.Year != "":
			item += ` \sep Preprint \sep ` + p.Year
		}

		lines = append(lines, item)
	}
	lines = append(lines, `\end{itemize}`)
	return strings.Join(lines, "\n")
}
