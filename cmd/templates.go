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
	"io"

	"github.com/gnames/gn"
	"github.com/gnames/gnsyn/internal/iofs"
	"github.com/gnames/gnsyn/internal/iotemplates"
	"github.com/spf13/cobra"
)

// getTemplatesCmd returns the templates command.
func getTemplatesCmd() *cobra.Command {
	var output string

	templatesCmd := &cobra.Command{
		Use:   "templates",
		Short: "Print LaTeX templates as YAML",
		Long: `Print LaTeX templates in effect as YAML.

Templates come from render.templates_file of the config, or from the
built-in defaults. The output is a starting point for a custom templates
file used with 'gnsyn latex --templates'.

Examples:
  gnsyn templates
  gnsyn templates -o my-templates.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := writeTemplates(
				cmd.OutOrStdout(), cfg.Render.TemplatesFile, output,
			)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	templatesCmd.Flags().StringVarP(&output, "output", "o", "",
		"write templates to a file instead of STDOUT")

	return templatesCmd
}

// writeTemplates loads templates from path (defaults if empty) and writes
// them as YAML to the output file, or to w if output is empty.
func writeTemplates(w io.Writer, path, output string) error {
	tmpls, err := iotemplates.Load(path)
	if err != nil {
		return err
	}
	bs, err := iotemplates.Marshal(tmpls)
	if err != nil {
		return err
	}
	if output != "" {
		return iofs.WriteFile(output, bs)
	}
	_, err = w.Write(bs)
	return err
}
