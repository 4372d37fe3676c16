package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/SubFearix/khl-results/internal/config"
	"github.com/SubFearix/khl-results/internal/export"
	"github.com/SubFearix/khl-results/internal/extract"
	"github.com/SubFearix/khl-results/internal/logger"
	"github.com/SubFearix/khl-results/internal/scraper"
)

const (
	ExitSuccess   = 0
	ExitError     = 1
	ExitNoMatches = 2
)

var (
	flagURL     string
	flagTeam    string
	flagOutput  string
	flagFormat  string
	flagVerbose bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "khl-results",
		Short: "Export a KHL team's season results to a spreadsheet",
		Long: `Downloads the KHL calendar page for one team, extracts per-match results
(date, opponent, venue, outcome, goals) and writes them to a styled xlsx file.
All flags have defaults, so running without arguments exports the tracked
team's current season.`,
		RunE:          runExport,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&flagURL, "url", "", "Calendar page URL (overrides config)")
	cmd.Flags().StringVar(&flagTeam, "team", "", "Tracked team name (overrides config)")
	cmd.Flags().StringVar(&flagOutput, "output", "", "Output xlsx path (overrides config)")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Match listing format: text or json")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	return cmd
}

// runExport is the main command logic
func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if flagURL != "" {
		cfg.URL = flagURL
	}
	if flagTeam != "" {
		cfg.Team = flagTeam
	}
	if flagOutput != "" {
		cfg.OutputFile = flagOutput
	}

	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	level := logger.ParseLevel(cfg.LogLevel)
	if flagVerbose {
		level = logger.LevelDebug
	}
	logger.SetDefault(logger.New(level, os.Stderr))

	fmt.Printf("Загрузка страницы: %s\n", cfg.URL)
	sc := scraper.New(cfg.URL, cfg.Timeout())
	start := time.Now()
	page, err := sc.FetchPage()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка при загрузке страницы: %v\n", err)
		os.Exit(ExitError)
	}
	logger.Debug("page fetched", logger.Fields{
		"bytes":   len(page),
		"elapsed": time.Since(start).String(),
	})

	fmt.Println("Разбор данных...")
	matches, err := extract.NewPipeline(cfg.Team).Run(page)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка разбора страницы: %v\n", err)
		os.Exit(ExitError)
	}
	if len(matches) == 0 {
		fmt.Fprintln(os.Stderr, "Матчи не найдены. Возможно, структура сайта изменилась.")
		fmt.Fprintln(os.Stderr, "Проверьте HTML-код страницы и при необходимости обновите парсер.")
		os.Exit(ExitNoMatches)
	}

	fmt.Printf("Найдено матчей: %d\n", len(matches))
	if err := WriteOutput(os.Stdout, matches, format); err != nil {
		return fmt.Errorf("writing match listing: %w", err)
	}

	if err := export.WriteFile(matches, cfg.OutputFile); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка записи файла: %v\n", err)
		os.Exit(ExitError)
	}
	fmt.Printf("Файл сохранён: %s\n", cfg.OutputFile)
	fmt.Println("Готово!")

	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
