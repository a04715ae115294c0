// Package pipeline orchestrates the crawl: search pages in, ranked
// listing records out.
package pipeline

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/pcouzin/murscan/internal/cache"
	"github.com/pcouzin/murscan/internal/extract"
	"github.com/pcouzin/murscan/internal/locate"
	"github.com/pcouzin/murscan/internal/model"
	"github.com/pcouzin/murscan/internal/rank"
	"github.com/pcouzin/murscan/internal/score"
	"github.com/pcouzin/murscan/internal/util"
	"github.com/pcouzin/murscan/internal/worker"
)

// Pipeline wires the fetch layer to the extraction and qualification
// engine. The engine itself (extract/locate/score/rank) is pure; all
// I/O lives here.
type Pipeline struct {
	cfg        *model.Config
	fetcher    *Fetcher
	extractor  *extract.FieldExtractor
	classifier *locate.Classifier
	assembler  *rank.Assembler
	limiter    *worker.Limiter
	robots     *util.RobotsChecker
	pages      cache.PageCache
}

// New builds a pipeline from configuration.
func New(cfg *model.Config) *Pipeline {
	var pages cache.PageCache
	if cfg.Cache.Enabled {
		pages = cache.NewMemoryPages(cfg.Cache.TTL, 10*time.Minute)
	}

	var robots *util.RobotsChecker
	if cfg.Crawl.RespectRobots {
		robots = util.NewRobotsChecker(cfg.HTTP.UserAgent, cfg.HTTP.Timeout)
	}

	return &Pipeline{
		cfg:        cfg,
		fetcher:    NewFetcher(cfg.HTTP.Timeout, cfg.HTTP.UserAgent, cfg.HTTP.MaxBodyBytes),
		extractor:  extract.NewFieldExtractor(cfg.Extract),
		classifier: locate.NewClassifier(cfg.Cities, cfg.Locate.PrimeAxes, cfg.Locate.PrimeKeywords),
		assembler:  rank.NewAssembler(),
		limiter:    worker.NewLimiter(cfg.Crawl.RequestsPerSecond, cfg.Crawl.Burst),
		robots:     robots,
		pages:      pages,
	}
}

// Run crawls every configured source and returns the deduplicated,
// ranked listing set.
func (p *Pipeline) Run(ctx context.Context) ([]model.ListingRecord, error) {
	for _, src := range p.cfg.Sources {
		if err := ctx.Err(); err != nil {
			return p.assembler.Ranked(), err
		}
		p.crawlSource(ctx, src)
	}
	return p.assembler.Ranked(), nil
}

// crawlSource walks one source's search URL patterns across the
// configured cities and queries, bounded by the per-source page cap.
func (p *Pipeline) crawlSource(ctx context.Context, src model.Source) {
	budget := p.cfg.Crawl.MaxPagesPerSource

	cities := p.cfg.Cities
	if len(cities) == 0 {
		cities = []string{""}
	}
	queries := p.cfg.Queries
	if len(queries) == 0 {
		queries = []string{""}
	}

	for _, pattern := range src.SearchURLs {
		for _, city := range cities {
			for _, query := range queries {
				if ctx.Err() != nil {
					return
				}
				if budget <= 0 {
					p.logf("[%s] page budget exhausted (%d)", src.Name, p.cfg.Crawl.MaxPagesPerSource)
					return
				}

				searchURL := expandSearchURL(pattern, city, query)
				page, err := p.fetchPage(ctx, searchURL)
				if err != nil {
					p.logf("[%s] search fetch failed: %v", src.Name, err)
					continue
				}

				links := DiscoverLinks(page, searchURL, src.Domain, p.cfg.Crawl.MaxLinksPerSearch)
				p.logf("[%s] %s / %s -> %d links", src.Name, orDash(city), orDash(query), len(links))
				if len(links) > budget {
					links = links[:budget]
				}

				// The budget counts pages actually processed; a failed
				// fetch does not burn it.
				outcomes := worker.ScanPages(ctx, p, src, links, city, p.cfg.Crawl.Workers)
				for _, o := range outcomes {
					if o.Err != nil {
						p.logf("[%s] scan failed: %s: %v", src.Name, o.URL, o.Err)
						continue
					}
					budget--
					if o.Record != nil {
						p.assembler.Add(*o.Record)
					}
				}
			}
		}
	}
}

// ScanPage fetches one detail page and runs it through the engine.
// A nil record with nil error means the candidate did not qualify.
func (p *Pipeline) ScanPage(ctx context.Context, src model.Source, rawURL, fallbackCity string) (*model.ListingRecord, error) {
	page, err := p.fetchPage(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	return p.Qualify(src, rawURL, fallbackCity, page), nil
}

// Qualify is the pure half of a page scan: extract fields, compute
// yields, filter, classify the location and assemble the record. It
// has no I/O and is safe to call concurrently.
func (p *Pipeline) Qualify(src model.Source, rawURL, fallbackCity, page string) *model.ListingRecord {
	fields := p.extractor.Extract(page)

	gross, net := score.ComputeYields(fields.Price, fields.Rent, fields.Charges, fields.Tax)
	if !score.Qualifies(fields.Price, gross, net, p.cfg.Filter) {
		return nil
	}

	city := p.classifier.DetectCity(fields.RawText, fallbackCity)
	tier := p.classifier.Score(city, fields.RawText)

	return &model.ListingRecord{
		Source:      src.Name,
		Domain:      src.Domain,
		URL:         rawURL,
		City:        city,
		Tier:        string(tier),
		Price:       fields.Price,
		Rent:        fields.Rent,
		Charges:     fields.Charges,
		Tax:         fields.Tax,
		GrossYield:  gross,
		NetYield:    net,
		StatedYield: fields.StatedYield,
		Lease:       fields.Lease,
		Tenant:      fields.Tenant,
		Activity:    fields.Activity,
	}
}

// fetchPage retrieves a page through the cache, robots check and
// per-domain limiter.
func (p *Pipeline) fetchPage(ctx context.Context, rawURL string) (string, error) {
	if p.pages != nil {
		if cached, ok := p.pages.Get(rawURL); ok {
			return cached, nil
		}
	}

	if p.robots != nil {
		allowed, crawlDelay, err := p.robots.CanFetch(ctx, rawURL)
		if err != nil {
			return "", fmt.Errorf("robots check: %w", err)
		}
		if !allowed {
			return "", fmt.Errorf("disallowed by robots.txt: %s", rawURL)
		}
		if crawlDelay > 0 {
			if host, err := hostOf(rawURL); err == nil {
				p.limiter.SetDomainRate(host, 1/crawlDelay.Seconds(), 1)
			}
		}
	}

	if err := p.limiter.Wait(ctx, rawURL); err != nil {
		return "", fmt.Errorf("rate limit: %w", err)
	}

	result, err := p.fetcher.FetchWithRetry(ctx, rawURL)
	if err != nil {
		return "", err
	}

	if p.pages != nil {
		p.pages.Set(rawURL, result.HTML)
	}
	return result.HTML, nil
}

// expandSearchURL fills a search URL template's {city} and {query}
// placeholders with escaped values.
func expandSearchURL(pattern, city, query string) string {
	r := strings.NewReplacer(
		"{city}", url.QueryEscape(city),
		"{query}", url.QueryEscape(query),
	)
	return r.Replace(pattern)
}

func hostOf(rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	return parsed.Host, nil
}

func (p *Pipeline) logf(format string, args ...interface{}) {
	if p.cfg.Output.Verbose {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
