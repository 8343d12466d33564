package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/triage/internal/catalog"
	"github.com/abhisek/triage/internal/scoring"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect, validate and export question catalogs",
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a catalog file (defaults to --catalog or the built-in catalog)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if len(args) == 1 {
			cfg.CatalogPath = args[0]
		}

		p := catalog.Default()
		source := "built-in catalog"
		if cfg.CatalogPath != "" {
			if p, err = catalog.LoadFile(cfg.CatalogPath); err != nil {
				return err
			}
			source = cfg.CatalogPath
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s: ok (version %s, %d categories, languages %v)\n",
			source, p.Version(), len(p.CategoryKeys()), p.Languages())

		langs := p.Languages()
		if len(langs) == 0 {
			return nil
		}
		reach, err := scoring.CheckCatalog(p, langs[0])
		if err != nil {
			return err
		}
		for _, r := range reach {
			if !r.OK() {
				fmt.Fprintf(out, "warning: %s/%s cannot reach %v (scores %d..%d)\n",
					r.Category, r.Condition, r.Unreachable, r.Min, r.Max)
			}
		}
		return nil
	},
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories, their questions and conditions",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		p, err := loadCatalog(cfg)
		if err != nil {
			return err
		}
		lang := catalog.Language(cfg.Language)
		showQuestions, _ := cmd.Flags().GetBool("questions")

		cats, err := p.Categories(lang)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, c := range cats {
			fmt.Fprintf(out, "%-10s  %s\n", c.Key, c.Label)
			if showQuestions {
				for i, q := range c.Questions {
					fmt.Fprintf(out, "    %2d. %s\n", i+1, q.Text)
				}
			}
			conds, err := p.Conditions(lang, c.Key)
			if err != nil {
				return err
			}
			for _, cond := range conds {
				fmt.Fprintf(out, "    - %-22s %s\n", cond.Name, cond.Label)
			}
		}
		fmt.Fprintf(out, "\n%d categories\n", len(cats))
		return nil
	},
}

var catalogReachabilityCmd = &cobra.Command{
	Use:   "reachability",
	Short: "Report which severity labels each condition can produce",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		p, err := loadCatalog(cfg)
		if err != nil {
			return err
		}
		strict, _ := cmd.Flags().GetBool("strict")

		reach, err := scoring.CheckCatalog(p, catalog.Language(cfg.Language))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-10s  %-20s  %9s  %s\n", "Category", "Condition", "Range", "Unreachable")
		fmt.Fprintln(out, strings.Repeat("─", 64))
		bad := 0
		for _, r := range reach {
			un := "-"
			if !r.OK() {
				bad++
				names := make([]string, len(r.Unreachable))
				for i, s := range r.Unreachable {
					names[i] = s.String()
				}
				un = strings.Join(names, ", ")
			}
			fmt.Fprintf(out, "%-10s  %-20s  %4d..%-3d  %s\n", r.Category, r.Condition, r.Min, r.Max, un)
		}
		fmt.Fprintf(out, "\n%d conditions, %d with unreachable labels\n", len(reach), bad)

		if strict && bad > 0 {
			return fmt.Errorf("%d conditions have unreachable labels", bad)
		}
		return nil
	},
}

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the built-in catalog as a starting point for a custom one",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")

		data, err := catalog.Marshal(catalog.SeedDefinition(), format)
		if err != nil {
			return err
		}
		if output == "" {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		if err := os.WriteFile(output, data, 0o644); err != nil {
			return fmt.Errorf("write catalog: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Catalog written to %s\n", output)
		return nil
	},
}

var catalogLanguagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List the languages of the active catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		// The configured language may be the one missing, so skip loadCatalog's check.
		p := catalog.Default()
		if cfg.CatalogPath != "" {
			if p, err = catalog.LoadFile(cfg.CatalogPath); err != nil {
				return err
			}
		}
		for _, l := range p.Languages() {
			marker := " "
			if string(l) == cfg.Language {
				marker = "*"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, l)
		}
		return nil
	},
}

func init() {
	catalogListCmd.Flags().Bool("questions", false, "Also print each category's questions")
	catalogReachabilityCmd.Flags().Bool("strict", false, "Exit non-zero when any label is unreachable")
	catalogExportCmd.Flags().String("format", "yaml", "Output format: yaml or json")
	catalogExportCmd.Flags().StringP("output", "o", "", "Write to this file instead of stdout")

	catalogCmd.AddCommand(catalogValidateCmd)
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogReachabilityCmd)
	catalogCmd.AddCommand(catalogExportCmd)
	catalogCmd.AddCommand(catalogLanguagesCmd)
}
