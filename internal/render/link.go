// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns publication records into the two markup fragments
// spliced into the site: an HTML card grid and a LaTeX itemize list.
package render

import "github.com/jonahbd1/jonahbd1.github.io/pkg/types"

// Link returns the single outbound link for a record and its display
// text. Link fields are consulted in fixed priority order: arXiv, then
// DOI, then the INSPIRE record page. Both values are empty when the
// record has no link at all.
func Link(p types.Publication) (url, text string) {
	switch {
	case p.ArxivID != "":
		return "https://arxiv.org/abs/" + p.ArxivID, "arXiv:" + p.ArxivID
	case p.DOI != "":
		return "https://doi.org/" + p.DOI, "doi:" + p.DOI
	case p.InspireID != "":
		return "https://inspirehep.net/literature/" + p.InspireID, "INSPIRE"
	}
	return "", ""
}
