// Package output renders the qualified listing set for human review.
package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/pcouzin/murscan/internal/model"
)

// Header columns, matching the historical report layout downstream
// spreadsheets expect: identity, financials, yields, qualitative
// fields, location score last.
var csvHeader = []string{
	"Source",
	"Domaine",
	"URL",
	"Ville (détectée)",
	"Prix de vente (€)",
	"Loyer annuel HT-HC (€)",
	"Charges locatives (€)",
	"Taxe foncière (€)",
	"Rendement brut (%)",
	"Rendement net (%)",
	"Rendement annoncé (%)",
	"Bail",
	"Locataire",
	"Activité",
	"Emplacement (score)",
}

// CSVWriter writes ranked listing records to a CSV file.
// It is safe for concurrent use.
type CSVWriter struct {
	mu     sync.Mutex
	file   *os.File
	writer *csv.Writer
}

// NewCSVWriter creates (or truncates) the CSV file at the given path and
// writes the header row. Intermediate directories are created automatically.
func NewCSVWriter(path string) (*CSVWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv: create file %q: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("csv: write header: %w", err)
	}
	w.Flush()

	return &CSVWriter{file: f, writer: w}, nil
}

// WriteRecords appends one row per record, in the order given. Absent
// numeric fields render as empty cells, never as zero.
func (c *CSVWriter) WriteRecords(records []model.ListingRecord) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, r := range records {
		row := []string{
			r.Source,
			r.Domain,
			r.URL,
			r.City,
			numCell(r.Price),
			numCell(r.Rent),
			numCell(r.Charges),
			numCell(r.Tax),
			numCell(r.GrossYield),
			numCell(r.NetYield),
			numCell(r.StatedYield),
			r.Lease,
			r.Tenant,
			r.Activity,
			r.Tier,
		}
		if err := c.writer.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	c.writer.Flush()
	return c.writer.Error()
}

// Close flushes and closes the underlying file.
func (c *CSVWriter) Close() error {
	c.writer.Flush()
	return c.file.Close()
}

// DefaultPath derives a report filename from the active filter so runs
// with different thresholds never clobber each other.
func DefaultPath(filter model.FilterConfig) string {
	name := fmt.Sprintf("murs_ge_%s", numString(filter.MinYieldPct))
	if filter.PriceMinEUR > 0 || filter.PriceMaxEUR < 1e12 {
		name += fmt.Sprintf("_band_%s-%s", numString(filter.PriceMinEUR), numString(filter.PriceMaxEUR))
	}
	return filepath.Join("output", name+".csv")
}

func numCell(v *float64) string {
	if v == nil {
		return ""
	}
	return numString(*v)
}

func numString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
