package main

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/jonahbd1/jonahbd1.github.io/internal/inspire"
	"github.com/jonahbd1/jonahbd1.github.io/internal/pipeline"
	"github.com/jonahbd1/jonahbd1.github.io/internal/texbuild"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Fetch publications and regenerate index.html and the CV",
	Long: `Update fetches the owner's publication records from INSPIRE-HEP, renders
the HTML card list and the LaTeX itemize list, splices each into the
marker-delimited region of its target file, and runs pdflatex twice to
rebuild the CV PDF.

A fetch returning zero records aborts before any file is touched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		skipCompile, _ := cmd.Flags().GetBool("skip-compile")

		fetcher := &inspire.Client{HTTP: &http.Client{Timeout: cfg.Inspire.Timeout}}
		compiler := texbuild.New(cfg.Latex)

		return pipeline.Run(cmd.Context(), cfg, fetcher, compiler,
			pipeline.Options{DryRun: dryRun, SkipCompile: skipCompile},
			cmd.OutOrStdout())
	},
}

func init() {
	updateCmd.Flags().Bool("dry-run", false, "print both fragments without touching any file")
	updateCmd.Flags().Bool("skip-compile", false, "splice the files but skip the pdflatex rebuild")

	rootCmd.AddCommand(updateCmd)
}
