// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package authors formats author names and builds the truncated author
// lists used by the HTML and LaTeX renderers. The document owner is
// detected by name-matching heuristics and treated specially in both.
package authors

import (
	"slices"
	"strings"

	"github.com/jonahbd1/jonahbd1.github.io/pkg/types"
)

// FormatShort converts "Last, First Middle" to "F. Last". Names without
// a comma are returned unchanged.
func FormatShort(fullName string) string {
	last, first, found := strings.Cut(fullName, ",")
	if !found {
		return fullName
	}
	first = strings.TrimSpace(first)
	initial := ""
	if first != "" {
		initial = string([]rune(first)[0])
	}
	return initial + ". " + strings.TrimSpace(last)
}

// Owner matches the document owner among raw author names. INSPIRE is
// inconsistent about name variants, so matching is deliberately fuzzy:
// an exact-match set of known spellings plus a family-name substring
// check on the last-name segment.
type Owner struct {
	known   map[string]bool
	family  string
	display string
}

// NewOwner builds an Owner from configuration.
func NewOwner(cfg types.OwnerConfig) Owner {
	known := make(map[string]bool, len(cfg.KnownNames))
	for _, n := range cfg.KnownNames {
		known[strings.TrimSpace(n)] = true
	}
	return Owner{known: known, family: cfg.FamilySubstring, display: cfg.DisplayHTML}
}

// Matches reports whether fullName denotes the owner.
func (o Owner) Matches(fullName string) bool {
	name := strings.TrimSpace(fullName)
	if o.known[name] {
		return true
	}
	last := name
	if i := strings.Index(name, ","); i >= 0 {
		last = strings.TrimSpace(name[:i])
	}
	return o.family != "" && strings.Contains(last, o.family)
}

// DisplayHTML returns the fixed bolded form used for the owner in HTML
// output.
func (o Owner) DisplayHTML() string { return o.display }

// HTMLList renders an author list for HTML. The owner always appears as
// the bold display string, never abbreviated. With more than two
// coauthors the list is truncated to the first two plus the owner, the
// owner keeping its relative position among the leading authors, and
// " et al." is appended.
func HTMLList(names []string, owner Owner) string {
	var coauthors []string
	ownerIdx := -1
	for i, n := range names {
		if owner.Matches(n) {
			ownerIdx = i
		} else {
			coauthors = append(coauthors, FormatShort(n))
		}
	}

	if len(coauthors) <= 2 {
		// Short enough to show everyone in original order.
		shown := make([]string, 0, len(names))
		for _, n := range names {
			if owner.Matches(n) {
				shown = append(shown, owner.display)
			} else {
				shown = append(shown, FormatShort(n))
			}
		}
		if len(shown) <= 2 {
			return strings.Join(shown, " & ")
		}
		return strings.Join(shown[:len(shown)-1], ", ") + " & " + shown[len(shown)-1]
	}

	shown := slices.Clone(coauthors[:2])
	pos := 0
	if ownerIdx >= 0 {
		pos = min(ownerIdx, 2)
	}
	shown = slices.Insert(shown, pos, owner.display)
	return strings.Join(shown, ", ") + " et al."
}

// LaTeXList renders the coauthor list for the CV's \with{...} clause.
// The owner is excluded: the CV template already names them. Spaces in
// short names become non-breaking so typeset lines wrap between names,
// not inside them. The second return value is false when no coauthors
// remain and the clause should be omitted entirely.
func LaTeXList(names []string, owner Owner) (string, bool) {
	var coauthors []string
	for _, n := range names {
		if owner.Matches(n) {
			continue
		}
		coauthors = append(coauthors, strings.ReplaceAll(FormatShort(n), " ", "~"))
	}
	if len(coauthors) == 0 {
		return "", false
	}
	if len(coauthors) <= 2 {
		return strings.Join(coauthors, ` \& `), true
	}
	return strings.Join(coauthors[:2], ", ") + " et al.", true
}
