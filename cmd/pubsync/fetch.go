package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/jonahbd1/jonahbd1.github.io/internal/authors"
	"github.com/jonahbd1/jonahbd1.github.io/internal/inspire"
	"github.com/jonahbd1/jonahbd1.github.io/internal/render"
	"github.com/jonahbd1/jonahbd1.github.io/pkg/types"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch publications from INSPIRE-HEP and print them",
	Long: `Fetch performs the INSPIRE-HEP literature query and prints the normalized
records without modifying any file, for checking what an update run would
see. Output is a table by default, or JSON/YAML with --json/--yaml.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		asJSON, _ := cmd.Flags().GetBool("json")
		asYAML, _ := cmd.Flags().GetBool("yaml")

		client := &inspire.Client{HTTP: &http.Client{Timeout: cfg.Inspire.Timeout}}
		pubs, err := client.Fetch(cmd.Context(), cfg.Inspire)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		switch {
		case asJSON:
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(pubs)
		case asYAML:
			data, err := yaml.Marshal(pubs)
			if err != nil {
				return err
			}
			_, err = w.Write(data)
			return err
		default:
			printTable(pubs, w)
			return nil
		}
	},
}

func init() {
	fetchCmd.Flags().Bool("json", false, "output records as JSON")
	fetchCmd.Flags().Bool("yaml", false, "output records as YAML")

	rootCmd.AddCommand(fetchCmd)
}

// printTable writes records as a human-readable table.
func printTable(pubs []types.Publication, w io.Writer) {
	if len(pubs) == 0 {
		fmt.Fprintln(w, "No publications found.")
		return
	}

	fmt.Fprintf(w, "%-60s  %-24s  %-4s  %s\n", "Title", "Authors", "Year", "Link")
	fmt.Fprintln(w, strings.Repeat("-", 110))

	for _, p := range pubs {
		title := p.Title
		if len(title) > 60 {
			title = title[:57] + "..."
		}
		url, _ := render.Link(p)
		fmt.Fprintf(w, "%-60s  %-24s  %-4s  %s\n", title, tableAuthors(p.Authors), p.Year, url)
	}

	fmt.Fprintf(w, "\n%d publications (excluding theses)\n", len(pubs))
}

func tableAuthors(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return truncate(authors.FormatShort(names[0]), 24)
	default:
		return truncate(authors.FormatShort(names[0]), 17) + " et al."
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
