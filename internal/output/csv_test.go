package output

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/pcouzin/murscan/internal/model"
)

func f(v float64) *float64 { return &v }

func readAll(t *testing.T, path string) [][]string {
	t.Helper()
	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open output: %v", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse output: %v", err)
	}
	return rows
}

func TestCSVWriter_WritesHeaderAndRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "report.csv")

	w, err := NewCSVWriter(path)
	if err != nil {
		t.Fatalf("NewCSVWriter failed: %v", err)
	}

	records := []model.ListingRecord{
		{
			Source:     "cessionsite",
			Domain:     "cessionsite.fr",
			URL:        "https://cessionsite.fr/annonce-1",
			City:       "Lyon",
			Tier:       "N°1",
			Price:      f(1_250_000),
			Rent:       f(112_000),
			Charges:    f(4_500),
			Tax:        f(6_200),
			GrossYield: f(8.96),
			NetYield:   f(8.1),
			Lease:      "Bail : 3/6/9",
			Tenant:     "Locataire : enseigne nationale",
		},
		{
			Source: "cessionsite",
			Domain: "cessionsite.fr",
			URL:    "https://cessionsite.fr/annonce-2",
		},
	}

	if err := w.WriteRecords(records); err != nil {
		t.Fatalf("WriteRecords failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	rows := readAll(t, path)
	if len(rows) != 3 {
		t.Fatalf("Expected header + 2 rows, got %d rows", len(rows))
	}

	// The layout is the historical one: city in column 4, financials
	// and yields in the middle, the location score in the last column.
	if rows[0][0] != "Source" || rows[0][3] != "Ville (détectée)" || rows[0][8] != "Rendement brut (%)" || rows[0][14] != "Emplacement (score)" {
		t.Errorf("Unexpected header: %v", rows[0])
	}

	full := rows[1]
	if full[3] != "Lyon" || full[14] != "N°1" {
		t.Errorf("Unexpected location cells: city %q, score %q", full[3], full[14])
	}
	if full[4] != "1250000" {
		t.Errorf("Expected price cell 1250000, got %q", full[4])
	}
	if full[8] != "8.96" || full[9] != "8.1" {
		t.Errorf("Unexpected yield cells: %q %q", full[8], full[9])
	}

	// Absent numerics must render empty, not as zero.
	sparse := rows[2]
	for i := 4; i <= 10; i++ {
		if sparse[i] != "" {
			t.Errorf("Expected empty cell at column %d, got %q", i, sparse[i])
		}
	}
}

func TestCSVWriter_TruncatesPreviousRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")

	for i := 0; i < 2; i++ {
		w, err := NewCSVWriter(path)
		if err != nil {
			t.Fatalf("NewCSVWriter failed: %v", err)
		}
		if err := w.WriteRecords([]model.ListingRecord{{URL: "https://a.fr/1"}}); err != nil {
			t.Fatalf("WriteRecords failed: %v", err)
		}
		if err := w.Close(); err != nil {
			t.Fatalf("Close failed: %v", err)
		}
	}

	if rows := readAll(t, path); len(rows) != 2 {
		t.Errorf("Expected second run to truncate the first, got %d rows", len(rows))
	}
}

func TestDefaultPath(t *testing.T) {
	got := DefaultPath(model.FilterConfig{MinYieldPct: 8, PriceMinEUR: 1_000_000, PriceMaxEUR: 3_000_000})
	want := filepath.Join("output", "murs_ge_8_band_1000000-3000000.csv")
	if got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}

	got = DefaultPath(model.FilterConfig{MinYieldPct: 8.5, PriceMaxEUR: 1e12})
	want = filepath.Join("output", "murs_ge_8.5.csv")
	if got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}
}
