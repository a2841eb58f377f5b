// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "pubsync/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// InspireConfig holds the fixed INSPIRE-HEP literature query. The original
// site script hard-coded all of these; they are configuration here so tests
// and other owners can substitute them.
type InspireConfig struct {
	HTTPConfig `yaml:",inline"`

	// BAI is the owner's INSPIRE author identifier
	// (e.g. "Jonah.Berean.Dutcher.1").
	BAI string `json:"bai" yaml:"bai"`

	// Sort is the result ordering (default "mostrecent").
	Sort string `json:"sort" yaml:"sort"`

	// Size is the requested page size (default 250).
	Size int `json:"size" yaml:"size"`

	// Fields lists the metadata fields requested from the API.
	Fields []string `json:"fields" yaml:"fields"`
}

// OwnerConfig identifies the person whose publication list is rendered.
// Owner detection is deliberately fuzzy: INSPIRE is inconsistent about
// name variants across records.
type OwnerConfig struct {
	// KnownNames is the exact-match set of self-identifying name strings
	// (e.g. "Berean-Dutcher, Jonah", "Berean, J.").
	KnownNames []string `json:"known_names" yaml:"known_names"`

	// FamilySubstring matches the last-name segment of a full name
	// (e.g. "Berean").
	FamilySubstring string `json:"family_substring" yaml:"family_substring"`

	// DisplayHTML is the fixed bolded form used for the owner in HTML
	// output, never abbreviated.
	DisplayHTML string `json:"display_html" yaml:"display_html"`
}

// SiteConfig names the two target files and their marker pairs.
type SiteConfig struct {
	// HTMLPath is the web page containing the HTML marker pair.
	HTMLPath string `json:"html_path" yaml:"html_path"`

	// HTMLStartMarker and HTMLEndMarker delimit the replaceable region
	// in HTMLPath.
	HTMLStartMarker string `json:"html_start_marker" yaml:"html_start_marker"`
	HTMLEndMarker   string `json:"html_end_marker" yaml:"html_end_marker"`

	// TexPath is the LaTeX document containing the TeX marker pair.
	TexPath string `json:"tex_path" yaml:"tex_path"`

	// TexStartMarker and TexEndMarker delimit the replaceable region
	// in TexPath.
	TexStartMarker string `json:"tex_start_marker" yaml:"tex_start_marker"`
	TexEndMarker   string `json:"tex_end_marker" yaml:"tex_end_marker"`
}

// LatexConfig holds settings for the document compilation step.
type LatexConfig struct {
	// Bin is the LaTeX compiler executable (default "pdflatex").
	Bin string `json:"bin" yaml:"bin"`

	// Passes is how many times the compiler runs; two passes let
	// cross-references converge (default 2).
	Passes int `json:"passes" yaml:"passes"`

	// TailLines is how many trailing output lines to show when a pass
	// exits non-zero (default 20).
	TailLines int `json:"tail_lines" yaml:"tail_lines"`
}

// Config groups all stage configurations for the pipeline.
type Config struct {
	Inspire InspireConfig `json:"inspire" yaml:"inspire"`
	Owner   OwnerConfig   `json:"owner" yaml:"owner"`
	Site    SiteConfig    `json:"site" yaml:"site"`
	Latex   LatexConfig   `json:"latex" yaml:"latex"`
}
