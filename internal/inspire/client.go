// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package inspire fetches the owner's publication records from the
// INSPIRE-HEP literature API and normalizes them into Publication values.
package inspire

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/jonahbd1/jonahbd1.github.io/internal/httputil"
	"github.com/jonahbd1/jonahbd1.github.io/pkg/types"
)

// literatureBase is the INSPIRE-HEP literature search endpoint. Declared
// as a var so tests can substitute an httptest server.
var literatureBase = "https://inspirehep.net/api/literature"

// docTypeThesis marks records dropped from the publication list.
const docTypeThesis = "thesis"

// Client queries the INSPIRE-HEP literature API.
type Client struct {
	HTTP *http.Client
}

// Fetch performs one literature query for the configured author and
// returns the normalized records, in API order, with theses filtered out.
//
// Network failures, non-2xx responses, and malformed JSON are returned
// as errors with no retry. An empty result set is not an error; the
// caller decides whether "nothing to do" aborts the run.
func (c *Client) Fetch(ctx context.Context, cfg types.InspireConfig) ([]types.Publication, error) {
	if cfg.BAI == "" {
		return nil, fmt.Errorf("no INSPIRE author identifier configured")
	}

	params := url.Values{
		"sort": {cfg.Sort},
		"size": {strconv.Itoa(cfg.Size)},
		"q":    {"a " + cfg.BAI},
	}
	if len(cfg.Fields) > 0 {
		params.Set("fields", strings.Join(cfg.Fields, ","))
	}
	reqURL := literatureBase + "?" + params.Encode()

	var lr literatureResponse
	if err := httputil.GetJSON(ctx, c.HTTP, reqURL, cfg.UserAgent, &lr); err != nil {
		return nil, fmt.Errorf("INSPIRE literature query: %w", err)
	}

	var pubs []types.Publication
	for _, h := range lr.Hits.Hits {
		if isThesis(h.Metadata.DocumentType) {
			continue
		}
		pubs = append(pubs, extract(h))
	}
	return pubs, nil
}

func isThesis(docTypes []string) bool {
	for _, dt := range docTypes {
		if dt == docTypeThesis {
			return true
		}
	}
	return false
}

// extract maps one API hit onto the internal record shape, with a named
// default for every optional field. The messy external shape stays
// confined to this package.
func extract(h literatureHit) types.Publication {
	m := h.Metadata

	p := types.Publication{
		Title:     "Untitled",
		InspireID: h.ID,
	}

	if len(m.Titles) > 0 && m.Titles[0].Title != "" {
		p.Title = m.Titles[0].Title
	}

	for _, a := range m.Authors {
		p.Authors = append(p.Authors, a.FullName)
	}

	if len(m.ArxivEprints) > 0 {
		p.ArxivID = m.ArxivEprints[0].Value
	}

	if len(m.PublicationInfo) > 0 {
		pi := m.PublicationInfo[0]
		p.Journal = pi.JournalTitle
		if pi.Year > 0 {
			p.Year = strconv.Itoa(pi.Year)
		}
	}
	if p.Year == "" && m.EarliestDate != "" {
		p.Year = yearPrefix(m.EarliestDate)
	}

	if len(m.DOIs) > 0 {
		p.DOI = m.DOIs[0].Value
	}

	return p
}

// yearPrefix returns the leading 4 characters of an earliest-date string
// such as "2023-05-17", or the whole string when shorter.
func yearPrefix(date string) string {
	if len(date) > 4 {
		return date[:4]
	}
	return date
}

// INSPIRE-HEP API JSON structures.
type literatureResponse struct {
	Hits struct {
		Hits []literatureHit `json:"hits"`
	} `json:"hits"`
}

type literatureHit struct {
	ID       string             `json:"id"`
	Metadata literatureMetadata `json:"metadata"`
}

type literatureMetadata struct {
	Titles          []literatureTitle  `json:"titles"`
	Authors         []literatureAuthor `json:"authors"`
	ArxivEprints    []valueEntry       `json:"arxiv_eprints"`
	PublicationInfo []publicationInfo  `json:"publication_info"`
	DOIs            []valueEntry       `json:"dois"`
	EarliestDate    string             `json:"earliest_date"`
	DocumentType    []string           `json:"document_type"`
}

type literatureTitle struct {
	Title string `json:"title"`
}

type literatureAuthor struct {
	FullName string `json:"full_name"`
}

type valueEntry struct {
	Value string `json:"value"`
}

type publicationInfo struct {
	JournalTitle string `json:"journal_title"`
	Year         int    `json:"year"`
}
