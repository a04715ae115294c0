package extract

import (
	"strings"
	"testing"

	"github.com/pcouzin/murscan/internal/model"
)

const listingHTML = `
<html>
<head>
	<script>var price = "9 999 999 €";</script>
	<style>.price { color: red; }</style>
	<title>Murs commerciaux Lyon</title>
</head>
<body>
	<h1>Murs commerciaux loués - Lyon 2ème</h1>
	<p>Prix de vente : <strong>1 250 000 €</strong> FAI</p>
	<p>Loyer annuel HT : 112 000 €</p>
	<p>Charges locatives : 4 500 € / an</p>
	<p>Taxe foncière : 6 200 €</p>
	<p>Rendement : 8,9 %</p>
	<p>Bail : 3/6/9 renouvelé en 2022, échéance 2031</p>
	<p>Locataire : enseigne nationale de restauration rapide</p>
	<p>Emplacement Rue de la République, fort flux piéton</p>
</body>
</html>
`

func newTestExtractor() *FieldExtractor {
	return NewFieldExtractor(model.ExtractConfig{})
}

func TestFieldExtractor_FullListing(t *testing.T) {
	e := newTestExtractor()
	f := e.Extract(listingHTML)

	checks := []struct {
		name string
		got  *float64
		want float64
	}{
		{"price", f.Price, 1250000},
		{"rent", f.Rent, 112000},
		{"charges", f.Charges, 4500},
		{"tax", f.Tax, 6200},
		{"stated yield", f.StatedYield, 8.9},
	}
	for _, c := range checks {
		if c.got == nil {
			t.Errorf("Expected %s to be extracted, got nil", c.name)
			continue
		}
		if *c.got != c.want {
			t.Errorf("Expected %s = %v, got %v", c.name, c.want, *c.got)
		}
	}

	if !strings.Contains(f.Lease, "3/6/9") {
		t.Errorf("Expected lease span to contain '3/6/9', got %q", f.Lease)
	}
	if !strings.HasPrefix(strings.ToLower(f.Lease), "bail") {
		t.Errorf("Expected lease span to keep its label, got %q", f.Lease)
	}
	if !strings.Contains(strings.ToLower(f.Tenant), "locataire") {
		t.Errorf("Expected tenant span to keep its label, got %q", f.Tenant)
	}
	if f.Activity != "Restauration" && strings.ToLower(f.Activity) != "restauration" {
		t.Errorf("Expected activity 'Restauration', got %q", f.Activity)
	}
	if f.RawText == "" {
		t.Error("Expected raw text to be retained")
	}
}

func TestFieldExtractor_SkipsScriptAndStyle(t *testing.T) {
	e := newTestExtractor()
	f := e.Extract(listingHTML)

	if f.Price != nil && *f.Price == 9999999 {
		t.Error("Extracted price from script content")
	}
	if strings.Contains(f.RawText, "color: red") {
		t.Error("Raw text contains style content")
	}
}

func TestFieldExtractor_PriceFallbackOnWholePage(t *testing.T) {
	e := newTestExtractor()
	// No price label anywhere; the lone euro amount is still taken as
	// price, the one field with a whole-page fallback.
	f := e.Extract(`<html><body><p>Local commercial, 780 000 €, quartier vivant</p></body></html>`)

	if f.Price == nil {
		t.Fatal("Expected fallback price, got nil")
	}
	if *f.Price != 780000 {
		t.Errorf("Expected fallback price 780000, got %v", *f.Price)
	}
	if f.Rent != nil {
		t.Errorf("Rent must not use the whole-page fallback, got %v", *f.Rent)
	}
}

func TestFieldExtractor_WindowBoundsPairing(t *testing.T) {
	// The amount sits ~200 chars after the label: outside every window,
	// so the rent must stay absent instead of pairing at a distance.
	filler := strings.Repeat("lorem ipsum ", 20)
	page := `<html><body><p>Loyer annuel ` + filler + ` 50 000 €</p></body></html>`

	e := newTestExtractor()
	f := e.Extract(page)
	if f.Rent != nil {
		t.Errorf("Expected no rent for out-of-window amount, got %v", *f.Rent)
	}
}

func TestFieldExtractor_CustomWindows(t *testing.T) {
	// Widen the rent window and the same distant pairing succeeds.
	filler := strings.Repeat("lorem ipsum ", 20)
	page := `<html><body><p>Loyer annuel ` + filler + ` 50 000 €</p></body></html>`

	e := NewFieldExtractor(model.ExtractConfig{RentWindow: 400})
	f := e.Extract(page)
	if f.Rent == nil {
		t.Fatal("Expected rent with widened window, got nil")
	}
	if *f.Rent != 50000 {
		t.Errorf("Expected rent 50000, got %v", *f.Rent)
	}
}

func TestFieldExtractor_GarbageInput(t *testing.T) {
	e := newTestExtractor()

	inputs := []string{
		"",
		"not html at all \x00\x01\x02",
		"<<<>>><html<body",
		strings.Repeat("<div>", 200),
	}
	for _, page := range inputs {
		f := e.Extract(page) // must never panic
		if f.Price != nil || f.Rent != nil || f.Charges != nil || f.Tax != nil {
			t.Errorf("Expected all-absent fields for garbage input %q", page[:min(len(page), 20)])
		}
	}
}

func TestFieldExtractor_Idempotent(t *testing.T) {
	e := newTestExtractor()

	a := e.Extract(listingHTML)
	b := e.Extract(listingHTML)

	if a.RawText != b.RawText {
		t.Error("Raw text differs between runs")
	}
	same := func(name string, x, y *float64) {
		if (x == nil) != (y == nil) || (x != nil && *x != *y) {
			t.Errorf("Field %s differs between runs", name)
		}
	}
	same("price", a.Price, b.Price)
	same("rent", a.Rent, b.Rent)
	same("charges", a.Charges, b.Charges)
	same("tax", a.Tax, b.Tax)
	same("stated yield", a.StatedYield, b.StatedYield)
	if a.Lease != b.Lease || a.Tenant != b.Tenant || a.Activity != b.Activity {
		t.Error("Qualitative fields differ between runs")
	}
}

func TestNormalizeHTML_CollapsesWhitespace(t *testing.T) {
	text := NormalizeHTML("<html><body><p>un\n\n   deux\t\ttrois</p></body></html>")
	if text != "un deux trois" {
		t.Errorf("Expected collapsed text, got %q", text)
	}
}
