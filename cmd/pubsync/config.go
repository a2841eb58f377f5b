// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/jonahbd1/jonahbd1.github.io/pkg/types"
)

// setDefaults registers the values the original site script hard-coded.
// Every one can be overridden via pubsync.yaml or PUBSYNC_* env vars.
func setDefaults() {
	viper.SetDefault("inspire.bai", "Jonah.Berean.Dutcher.1")
	viper.SetDefault("inspire.sort", "mostrecent")
	viper.SetDefault("inspire.size", 250)
	viper.SetDefault("inspire.fields", []string{
		"titles", "authors", "arxiv_eprints", "publication_info",
		"dois", "earliest_date", "document_type",
	})
	viper.SetDefault("inspire.timeout", "30s")
	viper.SetDefault("inspire.user_agent", "pubsync/"+version)

	viper.SetDefault("owner.known_names", []string{
		"Berean-Dutcher, Jonah",
		"Berean-Dutcher, J.",
		"Berean, Jonah",
		"Berean, J.",
	})
	viper.SetDefault("owner.family_substring", "Berean")
	viper.SetDefault("owner.display_html", "<strong>J. Berean-Dutcher</strong>")

	viper.SetDefault("site.html_path", "index.html")
	viper.SetDefault("site.html_start_marker", "<!-- PUBLICATIONS-START -->")
	viper.SetDefault("site.html_end_marker", "<!-- PUBLICATIONS-END -->")
	viper.SetDefault("site.tex_path", filepath.Join("cv", "cv.tex"))
	viper.SetDefault("site.tex_start_marker", "% PUBLICATIONS-START")
	viper.SetDefault("site.tex_end_marker", "% PUBLICATIONS-END")

	viper.SetDefault("latex.bin", "pdflatex")
	viper.SetDefault("latex.passes", 2)
	viper.SetDefault("latex.tail_lines", 20)
}

// loadConfig materializes the typed pipeline configuration from viper.
func loadConfig() types.Config {
	return types.Config{
		Inspire: types.InspireConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("inspire.timeout"),
				UserAgent: viper.GetString("inspire.user_agent"),
			},
			BAI:    viper.GetString("inspire.bai"),
			Sort:   viper.GetString("inspire.sort"),
			Size:   viper.GetInt("inspire.size"),
			Fields: viper.GetStringSlice("inspire.fields"),
		},
		Owner: types.OwnerConfig{
			KnownNames:      viper.GetStringSlice("owner.known_names"),
			FamilySubstring: viper.GetString("owner.family_substring"),
			DisplayHTML:     viper.GetString("owner.display_html"),
		},
		Site: types.SiteConfig{
			HTMLPath:        viper.GetString("site.html_path"),
			HTMLStartMarker: viper.GetString("site.html_start_marker"),
			HTMLEndMarker:   viper.GetString("site.html_end_marker"),
			TexPath:         viper.GetString("site.tex_path"),
			TexStartMarker:  viper.GetString("site.tex_start_marker"),
			TexEndMarker:    viper.GetString("site.tex_end_marker"),
		},
		Latex: types.LatexConfig{
			Bin:       viper.GetString("latex.bin"),
			Passes:    viper.GetInt("latex.passes"),
			TailLines: viper.GetInt("latex.tail_lines"),
		},
	}
}
