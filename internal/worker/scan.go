package worker

import (
	"context"

	"github.com/pcouzin/murscan/internal/model"
)

// PageScanner turns one detail-page URL into a candidate record.
// A nil record with a nil error means the page was fetched and parsed
// but did not qualify.
type PageScanner interface {
	ScanPage(ctx context.Context, src model.Source, url, fallbackCity string) (*model.ListingRecord, error)
}

// ScanJob scans one discovered detail page.
type ScanJob struct {
	Source       model.Source
	URL          string
	FallbackCity string
	Scanner      PageScanner

	// ctx is the crawl context; it outranks the pool's own context so
	// an interrupted crawl aborts in-flight fetches too.
	ctx context.Context
}

// Execute runs the scan.
func (j *ScanJob) Execute(ctx context.Context) Result {
	if j.ctx != nil {
		ctx = j.ctx
	}
	rec, err := j.Scanner.ScanPage(ctx, j.Source, j.URL, j.FallbackCity)
	return &ScanOutcome{URL: j.URL, Record: rec, Err: err}
}

// ScanOutcome is the result of one page scan.
type ScanOutcome struct {
	URL    string
	Record *model.ListingRecord // nil when rejected or failed
	Err    error
}

// GetError returns the scan error, if any.
func (r *ScanOutcome) GetError() error {
	return r.Err
}

// ScanPages fans a set of detail URLs out over a worker pool and
// returns one outcome per URL, in completion order. Submission runs in
// its own goroutine while the caller drains results, so a batch larger
// than the pool's bounded buffers cannot wedge Submit against a full
// result stream.
func ScanPages(ctx context.Context, scanner PageScanner, src model.Source, urls []string, fallbackCity string, workers int) []*ScanOutcome {
	if len(urls) == 0 {
		return nil
	}

	pool := NewPool(workers)
	pool.Start()

	go func() {
		for _, u := range urls {
			pool.Submit(&ScanJob{
				Source:       src,
				URL:          u,
				FallbackCity: fallbackCity,
				Scanner:      scanner,
				ctx:          ctx,
			})
		}
		pool.Close()
	}()

	outcomes := make([]*ScanOutcome, 0, len(urls))
	for r := range pool.Results() {
		outcomes = append(outcomes, r.(*ScanOutcome))
	}
	return outcomes
}
