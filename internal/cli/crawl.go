package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pcouzin/murscan/internal/output"
	"github.com/pcouzin/murscan/internal/pipeline"
)

var (
	outCSV   string
	minYield float64
	priceMin float64
	priceMax float64
	workers  int
	cities   []string
	queries  []string
	noCache  bool
	noRobots bool
)

// crawlCmd represents the crawl command
var crawlCmd = &cobra.Command{
	Use:   "crawl",
	Short: "Crawl the configured sources and write the ranked CSV report",
	Long: `Crawl walks every configured source's search URLs across the
configured cities and queries, scans the discovered listing pages, and
writes the qualifying listings to a CSV report, ranked by location tier
and net yield.

Sources are defined in the config file; 'murscan config init' writes a
template to start from.

Example:
  murscan crawl
  murscan crawl --min-yield 9 --price-min 500000 --price-max 2000000
  murscan crawl --city Lyon --city Bordeaux --out lyon-bordeaux.csv`,
	Args: cobra.NoArgs,
	RunE: runCrawl,
}

func init() {
	rootCmd.AddCommand(crawlCmd)

	crawlCmd.Flags().StringVar(&outCSV, "out", "", "output CSV path (default: derived from the filter)")
	crawlCmd.Flags().Float64Var(&minYield, "min-yield", -1, "minimum gross or net yield, percent")
	crawlCmd.Flags().Float64Var(&priceMin, "price-min", -1, "minimum sale price, EUR")
	crawlCmd.Flags().Float64Var(&priceMax, "price-max", -1, "maximum sale price, EUR")
	crawlCmd.Flags().IntVar(&workers, "workers", 0, "concurrent page scans per search")
	crawlCmd.Flags().StringArrayVar(&cities, "city", nil, "restrict the crawl to these cities (repeatable)")
	crawlCmd.Flags().StringArrayVar(&queries, "query", nil, "search queries (repeatable)")
	crawlCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the page cache (force fresh fetches)")
	crawlCmd.Flags().BoolVar(&noRobots, "no-robots", false, "skip robots.txt checks")
}

func runCrawl(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Flag overrides on top of the merged config
	if minYield >= 0 {
		cfg.Filter.MinYieldPct = minYield
	}
	if priceMin >= 0 {
		cfg.Filter.PriceMinEUR = priceMin
	}
	if priceMax >= 0 {
		cfg.Filter.PriceMaxEUR = priceMax
	}
	if workers > 0 {
		cfg.Crawl.Workers = workers
	}
	if len(cities) > 0 {
		cfg.Cities = cities
	}
	if len(queries) > 0 {
		cfg.Queries = queries
	}
	if noCache {
		cfg.Cache.Enabled = false
	}
	if noRobots {
		cfg.Crawl.RespectRobots = false
	}

	if len(cfg.Sources) == 0 {
		return fmt.Errorf("no sources configured; run 'murscan config init' and fill in the sources list")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if verbose {
		fmt.Fprintf(os.Stderr, "Sources: %d, cities: %d, queries: %d\n", len(cfg.Sources), len(cfg.Cities), len(cfg.Queries))
		fmt.Fprintf(os.Stderr, "Filter: yield >= %.2f%%, price %.0f-%.0f EUR\n",
			cfg.Filter.MinYieldPct, cfg.Filter.PriceMinEUR, cfg.Filter.PriceMaxEUR)
	}

	p := pipeline.New(cfg)
	records, err := p.Run(ctx)
	if err != nil {
		// An interrupted crawl still reports what it found
		fmt.Fprintf(os.Stderr, "Crawl stopped early: %v\n", err)
	}

	path := outCSV
	if path == "" {
		path = cfg.Output.CSVPath
	}
	if path == "" {
		path = output.DefaultPath(cfg.Filter)
	}

	w, err := output.NewCSVWriter(path)
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.WriteRecords(records); err != nil {
		return err
	}

	fmt.Printf("%d qualifying listing(s) -> %s\n", len(records), path)
	return nil
}
