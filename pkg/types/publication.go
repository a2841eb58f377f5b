// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the pubsync pipeline.
package types

// Publication is one publication record fetched from the INSPIRE-HEP
// literature API, normalized from the API's loosely-shaped hit into an
// explicit struct. Records are immutable after extraction: the fetch
// stage creates them, the renderers consume them, and nothing persists
// them across runs.
type Publication struct {
	// Title is the publication title ("Untitled" when INSPIRE has none).
	Title string `json:"title" yaml:"title"`

	// Authors lists the raw full names in source order, each in
	// "Last, First Middle" form as INSPIRE reports them.
	Authors []string `json:"authors" yaml:"authors"`

	// ArxivID is the first arXiv eprint identifier, if any.
	ArxivID string `json:"arxiv_id,omitempty" yaml:"arxiv_id,omitempty"`

	// Journal is the journal title from the first publication_info entry.
	Journal string `json:"journal,omitempty" yaml:"journal,omitempty"`

	// Year is a 4-character year string, or empty. It comes from the
	// explicit publication year when present, otherwise from the leading
	// characters of earliest_date.
	Year string `json:"year,omitempty" yaml:"year,omitempty"`

	// DOI is the first DOI value, if any.
	DOI string `json:"doi,omitempty" yaml:"doi,omitempty"`

	// InspireID is the hit's own record identifier, used to build a
	// fallback link into INSPIRE when no arXiv ID or DOI exists.
	InspireID string `json:"inspire_id,omitempty" yaml:"inspire_id,omitempty"`
}
