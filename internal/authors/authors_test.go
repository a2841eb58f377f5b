// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package authors

import (
	"testing"

	"github.com/jonahbd1/jonahbd1.github.io/pkg/types"
)

const boldOwner = "<strong>J. Berean-Dutcher</strong>"

func testOwner() Owner {
	return NewOwner(types.OwnerConfig{
		KnownNames: []string{
			"Berean-Dutcher, Jonah",
			"Berean-Dutcher, J.",
			"Berean, Jonah",
			"Berean, J.",
		},
		FamilySubstring: "Berean",
		DisplayHTML:     boldOwner,
	})
}

// --- FormatShort ---

func TestFormatShort(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"last and first", "Smith, Alice", "A. Smith"},
		{"middle name dropped", "Smith, Alice Beth", "A. Smith"},
		{"initial with dot", "Smith, A.", "A. Smith"},
		{"hyphenated last name", "Berean-Dutcher, Jonah", "J. Berean-Dutcher"},
		{"no comma unchanged", "The ATLAS Collaboration", "The ATLAS Collaboration"},
		{"empty first part", "Smith,", ". Smith"},
		{"surrounding spaces", "Smith,   Alice", "A. Smith"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatShort(tt.in); got != tt.want {
				t.Errorf("FormatShort(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// --- Owner.Matches ---

func TestOwnerMatches(t *testing.T) {
	owner := testOwner()
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"known exact", "Berean-Dutcher, Jonah", true},
		{"known initial variant", "Berean, J.", true},
		{"known with surrounding space", "  Berean-Dutcher, J.  ", true},
		{"family substring in last name", "Berean-Dutcher, Jonah A.", true},
		{"family substring without comma", "Berean", true},
		{"coauthor", "Smith, Alice", false},
		{"family string in first name only", "Smith, Berean", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := owner.Matches(tt.in); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestOwnerEmptyFamilySubstring(t *testing.T) {
	owner := NewOwner(types.OwnerConfig{KnownNames: []string{"Doe, Jane"}})
	if owner.Matches("Smith, Alice") {
		t.Error("empty family substring must not match every name")
	}
	if !owner.Matches("Doe, Jane") {
		t.Error("known name should still match")
	}
}

// --- HTMLList ---

func TestHTMLList(t *testing.T) {
	owner := testOwner()
	tests := []struct {
		name  string
		names []string
		want  string
	}{
		{
			"owner alone",
			[]string{"Berean-Dutcher, Jonah"},
			boldOwner,
		},
		{
			"owner plus one coauthor keeps input order",
			[]string{"Smith, Alice", "Berean-Dutcher, Jonah"},
			"A. Smith & " + boldOwner,
		},
		{
			"owner first plus one coauthor",
			[]string{"Berean-Dutcher, Jonah", "Smith, Alice"},
			boldOwner + " & A. Smith",
		},
		{
			"two coauthors plus owner uses comma and ampersand",
			[]string{"Smith, Alice", "Berean-Dutcher, Jonah", "Jones, Bob"},
			"A. Smith, " + boldOwner + " & B. Jones",
		},
		{
			"four coauthors truncates to three names plus et al.",
			[]string{"Smith, Alice", "Jones, Bob", "Berean-Dutcher, Jonah", "Lee, Carol", "Park, Dan"},
			"A. Smith, B. Jones, " + boldOwner + " et al.",
		},
		{
			"owner leads truncated list when first in input",
			[]string{"Berean-Dutcher, Jonah", "Smith, Alice", "Jones, Bob", "Lee, Carol"},
			boldOwner + ", A. Smith, B. Jones et al.",
		},
		{
			"owner second in truncated list",
			[]string{"Smith, Alice", "Berean-Dutcher, Jonah", "Jones, Bob", "Lee, Carol"},
			"A. Smith, " + boldOwner + ", B. Jones et al.",
		},
		{
			"owner absent defaults to front of truncated list",
			[]string{"Smith, Alice", "Jones, Bob", "Lee, Carol"},
			boldOwner + ", A. Smith, B. Jones et al.",
		},
		{
			"no authors",
			nil,
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTMLList(tt.names, owner); got != tt.want {
				t.Errorf("HTMLList(%v) = %q, want %q", tt.names, got, tt.want)
			}
		})
	}
}

// --- LaTeXList ---

func TestLaTeXList(t *testing.T) {
	owner := testOwner()
	tests := []struct {
		name   string
		names  []string
		want   string
		wantOK bool
	}{
		{
			"owner only is omitted",
			[]string{"Berean-Dutcher, Jonah"},
			"", false,
		},
		{
			"no authors is omitted",
			nil,
			"", false,
		},
		{
			"single coauthor gets non-breaking space",
			[]string{"Berean-Dutcher, Jonah", "Smith, Alice"},
			"A.~Smith", true,
		},
		{
			"two coauthors joined with escaped ampersand",
			[]string{"Smith, Alice", "Berean-Dutcher, Jonah", "Jones, Bob"},
			`A.~Smith \& B.~Jones`, true,
		},
		{
			"three coauthors truncate to two plus et al.",
			[]string{"Smith, Alice", "Jones, Bob", "Lee, Carol", "Berean-Dutcher, Jonah"},
			"A.~Smith, B.~Jones et al.", true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := LaTeXList(tt.names, owner)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("LaTeXList(%v) = (%q, %v), want (%q, %v)", tt.names, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
