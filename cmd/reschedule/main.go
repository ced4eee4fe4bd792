// Package main provides the CLI entry point for reschedule-go.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/ukaji3/reschedule-go/internal/config"
	"github.com/ukaji3/reschedule-go/internal/logger"
	"github.com/ukaji3/reschedule-go/pkg/reschedule"
	"github.com/ukaji3/reschedule-go/pkg/reschedule/i18n"
	"github.com/ukaji3/reschedule-go/pkg/reschedule/output"
)

var errFileNotFound = errors.New("file not found")

var (
	outputPath string
	configPath string
	lang       string
	holidayDay int
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "reschedule [input.xlsx]",
		Short: "Move deliveries off a holiday in a logistics calendar",
		Long: `reschedule finds the delivery column of a holiday in a scheduling
workbook, moves its tasks to the previous delivery day, annotates each
moved row and saves a copy of the workbook.`,
		Args:         cobra.ExactArgs(1),
		RunE:         run,
		SilenceUsage: true,
	}

	rootCmd.Flags().IntVarP(&holidayDay, "day", "d", 0, "Day of the month that is a holiday (1-31)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: <input>_<suffix>.xlsx next to the input)")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Layout configuration file (YAML or JSON)")
	rootCmd.Flags().StringVar(&lang, "lang", "", "Report language: en or es (default from config)")
	_ = rootCmd.MarkFlagRequired("day")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if holidayDay < 1 || holidayDay > 31 {
		return fmt.Errorf("invalid day: %d (must be between 1 and 31)", holidayDay)
	}

	// Optional .env feeding RESCHEDULE_* overrides
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if lang != "" {
		cfg.Lang = lang
	}

	opts := reschedule.Options{
		Layout: cfg.Layout,
		Lang:   cfg.Lang,
		Logger: logger.New("reschedule"),
	}
	return execute(cmd.OutOrStdout(), inputPath, outputPath, holidayDay, opts)
}

// execute reschedules day in inputPath and prints the report to w.
// The workbook is written only when rescheduling succeeded.
func execute(w io.Writer, inputPath, outPath string, day int, opts reschedule.Options) error {
	p := i18n.NewPrinter(opts.Lang)

	file, err := os.Open(inputPath)
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", errFileNotFound, inputPath)
	}
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer file.Close()

	f, logs, procErr := reschedule.Process(file, filepath.Base(inputPath), day, opts)

	fmt.Fprintln(w, p.Sprintf(i18n.ReportHeader))
	for _, line := range logs {
		fmt.Fprintln(w, line)
	}
	if f == nil {
		fmt.Fprintln(w, p.Sprintf(i18n.NothingToDownload))
		return procErr
	}
	defer f.Close()

	if outPath == "" {
		name := output.FileName(inputPath, p.Sprintf(i18n.DownloadFileSuffix))
		outPath = filepath.Join(filepath.Dir(inputPath), name)
	}
	if err := output.WriteFile(outPath, f); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	fmt.Fprintln(w, p.Sprintf(i18n.SuccessMessage))
	fmt.Fprintln(w, p.Sprintf(i18n.SavedSpreadsheet, outPath))
	return nil
}
