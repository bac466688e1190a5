/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"

	"github.com/gnames/gn"
	"github.com/gnames/gnsyn/internal/ioarchive"
	"github.com/gnames/gnsyn/pkg/config"
	"github.com/spf13/cobra"
)

// getArchiveCmd returns the archive command.
func getArchiveCmd() *cobra.Command {
	archiveCmd := &cobra.Command{
		Use:   "archive TAXA_FILE SYNONYMY_FILE [CLADE]",
		Short: "Store joined synonymy in a SQLite database",
		Long: `Store taxa and their chronologically ordered synonyms in a
SQLite database.

Tables 'taxa' and 'synonyms' are recreated on every run. The database
file defaults to the lowercased clade name (or "synonymy") with the
.sqlite extension.

Examples:
  gnsyn archive taxa.tsv synonymy.tsv Ichthyosauria -b refs.bib
  gnsyn archive taxa.tsv synonymy.tsv -o synonymy.sqlite`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runArchive(cmd, args)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	flags := archiveCmd.Flags()
	flags.StringP("bib", "b", "", "BibTeX/BibLaTeX file to date references")
	flags.StringP("output", "o", "", "database file")
	flags.StringP("delimiter", "d", "", "field delimiter of input files")
	flags.StringP("unmatched", "u", "",
		"policy for synonyms without taxon: warn, skip, fail")

	return archiveCmd
}

func runArchive(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	opts := documentOpts(cmd, args)
	opts = stringOpt(cmd, opts, "unmatched", config.OptRenderUnmatched)
	cfg.Update(opts)

	return ioarchive.New(cfg).Archive(ctx, args[0], args[1])
}
