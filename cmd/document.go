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
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnsyn/internal/iobuild"
	"github.com/gnames/gnsyn/pkg/config"
	"github.com/spf13/cobra"
)

var documentDescriptions = map[string]string{
	config.FormatLaTeX: "Write synonymy lists as LaTeX",
	config.FormatXML:   "Write synonymy lists as XML",
	config.FormatJSON:  "Write synonymy lists as JSON",
}

// getDocumentCmd returns a command that builds a document in the given
// format. All document commands share arguments and flags.
func getDocumentCmd(format string) *cobra.Command {
	docCmd := &cobra.Command{
		Use:   format + " TAXA_FILE SYNONYMY_FILE [CLADE]",
		Short: documentDescriptions[format],
		Long: fmt.Sprintf(`%s.

Taxa of the CLADE (all taxa if CLADE is omitted) get their synonyms in
chronological order. Dates come from the bibliography given by --bib;
without it synonyms keep the order of the synonymy file.

The output file defaults to the lowercased clade name (or "synonymy")
with the %s extension.

Examples:
  gnsyn %s taxa.tsv synonymy.tsv Ichthyosauria -b refs.bib
  gnsyn %s taxa.tsv synonymy.tsv -b refs.bib -o out/all%s`,
			documentDescriptions[format],
			config.Extension(format),
			format, format, config.Extension(format),
		),
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runDocument(cmd, format, args)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	flags := docCmd.Flags()
	flags.StringP("bib", "b", "", "BibTeX/BibLaTeX file to date references")
	flags.StringP("output", "o", "", "output file")
	flags.StringP("delimiter", "d", "", "field delimiter of input files")
	flags.StringP("unmatched", "u", "",
		"policy for synonyms without taxon: warn, skip, fail")
	flags.BoolP("quiet", "q", false, "do not show progress bar")
	if format == config.FormatLaTeX {
		flags.StringP("templates", "t", "", "YAML file with LaTeX templates")
	}

	return docCmd
}

func runDocument(cmd *cobra.Command, format string, args []string) error {
	ctx := context.Background()
	quiet, _ := cmd.Flags().GetBool("quiet")

	opts := []config.Option{
		config.OptDocumentFormat(format),
		config.OptDocumentWithProgress(!quiet),
	}
	opts = append(opts, documentOpts(cmd, args)...)
	opts = stringOpt(cmd, opts, "unmatched", config.OptRenderUnmatched)
	opts = stringOpt(cmd, opts, "templates", config.OptRenderTemplatesFile)
	cfg.Update(opts)

	return iobuild.New(cfg).Build(ctx, args[0], args[1])
}

// documentOpts converts arguments and flags shared by document and
// archive commands to options.
func documentOpts(cmd *cobra.Command, args []string) []config.Option {
	var opts []config.Option
	if len(args) > 2 {
		opts = append(opts, config.OptDocumentClade(args[2]))
	}
	opts = stringOpt(cmd, opts, "bib", config.OptDocumentBibPath)
	opts = stringOpt(cmd, opts, "output", config.OptDocumentOutputPath)
	opts = stringOpt(cmd, opts, "delimiter", config.OptInputDelimiter)
	return opts
}
