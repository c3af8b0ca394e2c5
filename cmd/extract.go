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
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gngenes/internal/iocatalog"
	"github.com/gnames/gngenes/internal/ioextract"
	"github.com/gnames/gngenes/internal/iospecies"
	"github.com/gnames/gngenes/pkg/config"
	"github.com/gnames/gngenes/pkg/species"
	"github.com/spf13/cobra"
)

// getExtractCmd returns the extract command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getExtractCmd() *cobra.Command {
	var speciesCode, inputDir, outputDir, catalogFile string

	extractCmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract genes per GO term from the input directory",
		Long: `Extract genes per GO term from expression-result files.

This command:
  1. Resolves the species profile (annotation table, GO legend,
     locus rule); prompts for a species code when none is given
  2. Loads the GO-term catalog spreadsheet ('names' column)
  3. For every input file and every GO term, joins the GO legend
     with the expression table and the annotations by locus and
     writes a merged report
  4. Writes one grouped table per input file, one column of gene
     identifiers per GO term

Examples:
  gngenes extract -s S
  gngenes extract -s A -i results -o reports
  gngenes extract --species SW --catalog my_go_terms.xlsx`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, speciesCode, inputDir,
				outputDir, catalogFile)
		},
	}

	extractCmd.Flags().StringVarP(&speciesCode, "species", "s", "",
		"species profile code (S, SW or A); prompted when omitted")
	extractCmd.Flags().StringVarP(&inputDir, "input", "i", "",
		"directory with expression-result files")
	extractCmd.Flags().StringVarP(&outputDir, "output", "o", "",
		"directory for report subfolders")
	extractCmd.Flags().StringVarP(&catalogFile, "catalog", "c", "",
		"spreadsheet listing GO terms in its 'names' column")

	return extractCmd
}

func runExtract(
	_ *cobra.Command,
	speciesCode, inputDir, outputDir, catalogFile string,
) error {
	ctx := context.Background()

	// Flags override config file and env settings; unset flags keep them.
	var runOpts []config.Option
	if speciesCode != "" {
		runOpts = append(runOpts, config.OptSpecies(speciesCode))
	}
	if inputDir != "" {
		runOpts = append(runOpts, config.OptInputDir(inputDir))
	}
	if outputDir != "" {
		runOpts = append(runOpts, config.OptOutputDir(outputDir))
	}
	if catalogFile != "" {
		runOpts = append(runOpts, config.OptCatalogFile(catalogFile))
	}
	cfg.Update(runOpts)

	printWelcome()

	registry, err := iospecies.New(cfg).Load()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	profile, err := resolveSpecies(registry)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	gn.Info("Selected species: <em>%s</em> (%s)",
		profile.Code, profile.Name)

	terms, err := iocatalog.New(cfg).Load()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	gn.Info("GO terms to process: %d", len(terms))

	ext := ioextract.New(cfg, profile, terms)
	if err = ext.Extract(ctx); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	return nil
}

// printWelcome narrates the expected input layout, as the reports'
// users work from spreadsheets rather than man pages.
func printWelcome() {
	gn.Info("#######")
	gn.Info("Welcome to the Gene-per-GO extractor")
	gn.Info("")
	gn.Info("• Open: %s", cfg.Extract.CatalogFile)
	gn.Info("  - Put the GO terms you want to process in the " +
		"'names' column (e.g., GO:0009535)")
	gn.Info("• Place all expression result files in the '%s' folder.",
		cfg.Extract.InputDir)
	gn.Info("• Outputs will be written to '%s/<file_basename>/'.",
		cfg.Extract.OutputDir)
	gn.Info("########")
}

// resolveSpecies returns the profile for the configured species
// code, prompting interactively when no code was provided.
func resolveSpecies(registry *species.Registry) (species.Profile, error) {
	code := cfg.Species
	if code == "" {
		var err error
		code, err = promptForSpecies(registry)
		if err != nil {
			return species.Profile{}, err
		}
	}
	return registry.Resolve(code)
}

func promptForSpecies(registry *species.Registry) (string, error) {
	fmt.Println("Select species:")
	for _, p := range registry.Profiles {
		fmt.Printf("  - Type '%s' for %s\n", p.Code, p.Name)
	}
	fmt.Print("Your choice: ")

	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		gn.Warn("Failed to read user input")
		return "", err
	}

	return strings.TrimSpace(response), nil
}
