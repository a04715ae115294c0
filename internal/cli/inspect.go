package cli

import (
	"context"
	"fmt"
	"net/url"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pcouzin/murscan/internal/model"
	"github.com/pcouzin/murscan/internal/pipeline"
)

var (
	inspectCity string
	showAll     bool
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect <url>",
	Short: "Scan a single listing page and print what the engine sees",
	Long: `Inspect fetches one listing page, runs the full extraction and
qualification engine on it, and prints the resulting record as YAML.

By default only a qualifying listing produces a record; --all prints
the extracted fields even when the listing fails the filter, which is
the quickest way to see why a page was rejected.

Example:
  murscan inspect https://www.example.fr/annonce-12345
  murscan inspect https://www.example.fr/annonce-12345 --city Lyon --all`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringVar(&inspectCity, "city", "", "fallback city when the page text names none")
	inspectCmd.Flags().BoolVar(&showAll, "all", false, "print the record even when the listing does not qualify")
}

func runInspect(cmd *cobra.Command, args []string) error {
	rawURL := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return fmt.Errorf("not an absolute URL: %s", rawURL)
	}

	if showAll {
		// Disarm the filter so Qualify always assembles a record
		cfg.Filter = model.FilterConfig{MinYieldPct: 0, PriceMinEUR: 0, PriceMaxEUR: 1e12}
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.Timeout)
	defer cancel()

	src := model.Source{Name: "inspect", Domain: parsed.Host}
	p := pipeline.New(cfg)

	rec, err := p.ScanPage(ctx, src, rawURL, inspectCity)
	if err != nil {
		return fmt.Errorf("inspect failed: %w", err)
	}
	if rec == nil {
		fmt.Fprintln(os.Stderr, "Listing does not qualify (rerun with --all to see the extracted fields)")
		return nil
	}

	out, err := yaml.Marshal(rec)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	fmt.Print(string(out))
	return nil
}
