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
	"github.com/gnames/gn"
	"github.com/gnames/gnsyn/internal/iomatrix"
	"github.com/spf13/cobra"
)

// getMatrixCmd returns the matrix command.
func getMatrixCmd() *cobra.Command {
	var outDir string

	matrixCmd := &cobra.Command{
		Use:   "matrix CSV_FILE...",
		Short: "Pivot character-state tables into matrices",
		Long: `Pivot comma-separated character-state tables into taxon by
character matrices.

Every input has columns Taxon, Number and State. The matrix has one row
per taxon (sorted by name) and one column per character number (in
ascending order). Missing states are empty. Each input FILE.csv is
written to FILE.nex.

Examples:
  gnsyn matrix skull.csv postcranium.csv
  gnsyn matrix skull.csv -o matrices`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := iomatrix.New(outDir).Pivot(args...)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	matrixCmd.Flags().StringVarP(&outDir, "output-dir", "o", "",
		"directory for matrix files")

	return matrixCmd
}
