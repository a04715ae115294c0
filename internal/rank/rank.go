// Package rank collects qualified listings, deduplicates them by URL
// and orders the final set by location tier and yield.
package rank

import (
	"math"
	"sort"
	"sync"

	"github.com/pcouzin/murscan/internal/locate"
	"github.com/pcouzin/murscan/internal/model"
)

// Assembler accumulates ListingRecords keyed by canonical URL.
// The first record seen for a URL wins; later duplicates are dropped.
// Safe for concurrent Add from crawl workers.
type Assembler struct {
	mu      sync.Mutex
	seen    map[string]struct{}
	records []model.ListingRecord
}

// NewAssembler creates an empty assembler.
func NewAssembler() *Assembler {
	return &Assembler{seen: make(map[string]struct{})}
}

// Add appends a record unless its URL is already present. Returns
// whether the record was kept.
func (a *Assembler) Add(rec model.ListingRecord) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, dup := a.seen[rec.URL]; dup {
		return false
	}
	a.seen[rec.URL] = struct{}{}
	a.records = append(a.records, rec)
	return true
}

// Len reports how many unique records have been assembled.
func (a *Assembler) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.records)
}

// Ranked returns the records ordered by location tier ascending
// (N°1, 1bis, 2, unscored), then net yield descending, then gross
// yield descending. A missing yield sorts below any present value
// within its tier. Remaining ties break by URL ascending so the order
// is a deterministic total order.
func (a *Assembler) Ranked() []model.ListingRecord {
	a.mu.Lock()
	out := make([]model.ListingRecord, len(a.records))
	copy(out, a.records)
	a.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := locate.Tier(out[i].Tier).Rank(), locate.Tier(out[j].Tier).Rank()
		if ri != rj {
			return ri < rj
		}
		if ni, nj := yieldKey(out[i].NetYield), yieldKey(out[j].NetYield); ni != nj {
			return ni > nj
		}
		if gi, gj := yieldKey(out[i].GrossYield), yieldKey(out[j].GrossYield); gi != gj {
			return gi > gj
		}
		return out[i].URL < out[j].URL
	})
	return out
}

// yieldKey maps a missing yield to -Inf so it sorts last in a
// descending comparison.
func yieldKey(v *float64) float64 {
	if v == nil {
		return math.Inf(-1)
	}
	return *v
}
