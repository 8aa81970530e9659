package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"propfilter/adapters/excel"
	"propfilter/app"
	"propfilter/domain/project"
	"propfilter/internal/config"
	"propfilter/internal/logger"
	"propfilter/internal/testkit"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load()
	logCfg := config.LoadLogging()
	logger.Init(logger.Options{Level: logCfg.Level, Format: logCfg.Format, Writer: os.Stderr, Service: "propfilter-cli"})

	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	var sheet string

	rootCmd := &cobra.Command{
		Use:           "propfilter-cli",
		Short:         "Normalize and filter wide real-estate project workbooks",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(out)
	rootCmd.PersistentFlags().StringVar(&sheet, "sheet", "", "Source sheet name (default: first sheet)")

	rootCmd.AddCommand(
		newNormalizeCmd(&sheet),
		newFilterCmd(&sheet),
		newOptionsCmd(&sheet),
		newGenerateCmd(),
	)
	return rootCmd
}

func newNormalizeCmd(sheet *string) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "normalize [source]",
		Short: "Flatten the five project groups into one row per project",
		Long: `Read a wide workbook (one row per developer, up to five project groups)
and write one row per project.

Example: propfilter-cli normalize FF_modified.xlsx --out projects.xlsx`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := loadRecords(cmd.Context(), args[0], *sheet)
			if err != nil {
				return err
			}
			fmt.Fprintf(summaryWriter(cmd, outPath), "Normalized projects: %d\n", len(records))
			return writeRecords(cmd.OutOrStdout(), outPath, records)
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "Write records to an .xlsx or .csv file instead of stdout")
	return cmd
}

func newFilterCmd(sheet *string) *cobra.Command {
	var (
		developers []string
		areas      []string
		dates      []string
		outPath    string
	)

	cmd := &cobra.Command{
		Use:   "filter [source]",
		Short: "Filter normalized projects by developer, area and delivery date",
		Long: `Filter the normalized projects. Each flag may be repeated; values within a
flag are alternatives, different flags must all match. Omitted flags match everything.

Example: propfilter-cli filter FF_modified.xlsx --area Cairo --area Zayed --out Filtered_Projects.xlsx`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := loadRecords(cmd.Context(), args[0], *sheet)
			if err != nil {
				return err
			}

			result := project.Apply(records, project.NewCriteria(developers, areas, dates))
			fmt.Fprintf(summaryWriter(cmd, outPath), "Projects after filtering: %d\n", result.Count)
			return writeRecords(cmd.OutOrStdout(), outPath, result.Records)
		},
	}

	cmd.Flags().StringArrayVar(&developers, "developer", nil, "Developer to include (repeatable)")
	cmd.Flags().StringArrayVar(&areas, "area", nil, "Area to include (repeatable)")
	cmd.Flags().StringArrayVar(&dates, "date", nil, "Delivery date to include, as listed by 'options' (repeatable)")
	cmd.Flags().StringVar(&outPath, "out", "", "Write matches to an .xlsx or .csv file instead of stdout")
	return cmd
}

func newOptionsCmd(sheet *string) *cobra.Command {
	var collation string

	cmd := &cobra.Command{
		Use:   "options [source]",
		Short: "List the selectable developers, areas and delivery dates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := loadRecords(cmd.Context(), args[0], *sheet)
			if err != nil {
				return err
			}
			collator, err := app.NewCollator(collation)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(project.Options(records, collator))
		},
	}

	cmd.Flags().StringVar(&collation, "collation", os.Getenv("OPTIONS_COLLATION"), "BCP 47 language used to sort options")
	return cmd
}

func newGenerateCmd() *cobra.Command {
	cfg := testkit.DefaultGeneratorConfig()

	cmd := &cobra.Command{
		Use:   "generate [dest.xlsx]",
		Short: "Write a synthetic wide workbook for demos and load testing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := testkit.NewProjectGenerator(cfg).WriteWorkbook(args[0]); err != nil {
				return fmt.Errorf("failed to generate workbook: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Generated %d developer rows in %s\n", cfg.Developers, args[0])
			return nil
		},
	}

	cmd.Flags().IntVar(&cfg.Developers, "developers", cfg.Developers, "Number of developer rows")
	cmd.Flags().Float64Var(&cfg.FillRate, "fill-rate", cfg.FillRate, "Chance that a project group is populated")
	cmd.Flags().Float64Var(&cfg.NullRate, "null-rate", cfg.NullRate, "Chance that a developer, area or date is blank")
	cmd.Flags().Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed")
	return cmd
}

func loadRecords(ctx context.Context, path, sheet string) ([]project.ProjectRecord, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	table, err := excel.NewDataReader(excel.ReaderConfig{FilePath: path, Sheet: sheet}).Read(ctx)
	if err != nil {
		return nil, err
	}
	return project.Normalize(table)
}

// summaryWriter keeps status lines off stdout while stdout carries the CSV body
func summaryWriter(cmd *cobra.Command, outPath string) io.Writer {
	if outPath == "" {
		return cmd.ErrOrStderr()
	}
	return cmd.OutOrStdout()
}

// writeRecords writes to outPath by extension, or CSV to stdout when outPath is empty
func writeRecords(stdout io.Writer, outPath string, records []project.ProjectRecord) error {
	if outPath == "" {
		return excel.WriteCSV(stdout, records)
	}

	format := excel.FormatXLSX
	if strings.EqualFold(filepath.Ext(outPath), ".csv") {
		format = excel.FormatCSV
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outPath, err)
	}
	if err := excel.Write(f, format, records); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Wrote %d records to %s\n", len(records), outPath)
	return nil
}
