package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcosta-dev/portfolio/internal/i18n"
	"github.com/mcosta-dev/portfolio/internal/locale"
)

//nolint:gochecknoglobals // Cobra boilerplate
var validateContentDir string

//nolint:gochecknoglobals // Cobra boilerplate
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the content datasets and translations",
	Long: `Load every locale's content partition, run the load-time checks and
report what each locale contains. Exits non-zero on the first invalid dataset.

Example:
  portfolio validate
  portfolio validate --content-dir ./content`,
	RunE: runValidate,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().StringVar(&validateContentDir, "content-dir", "", "Content directory (default: embedded datasets)")
}

func runValidate(cmd *cobra.Command, args []string) error {
	store, err := loadContent(validateContentDir)
	if err != nil {
		return err
	}
	bundle, err := i18n.LoadEmbedded()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, l := range locale.Supported() {
		p := store.Partition(l)
		fmt.Fprintf(out, "%s: %d featured, %d open source, %d work, %d education, %d skill categories, %d contact methods\n",
			l, len(p.Projects.Featured), len(p.Projects.OpenSource), len(p.Experience.Work),
			len(p.Experience.Education), len(p.Skills.Categories), len(p.Contact.Methods))
		if missing := bundle.Missing(l); len(missing) > 0 {
			fmt.Fprintf(out, "%s: %d untranslated keys fall back to %s: %v\n", l, len(missing), bundle.Fallback(), missing)
		}
	}
	fmt.Fprintln(out, "content ok")
	return nil
}
