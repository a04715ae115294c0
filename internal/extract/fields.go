package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pcouzin/murscan/internal/model"
)

// Label synonym sets for the monetary fields. Listing sites disagree on
// wording, so each field carries the spellings seen in the wild.
const (
	priceLabels   = `Prix(?: de vente)?|Prix net vendeur|Price`
	rentLabels    = `Loyer annuel(?: HT)?|Revenu locatif|Loyers? nets?`
	chargesLabels = `Charges(?: locatives)?`
	taxLabels     = `Taxe fonci(?:e|è)re|TF`
)

// FieldExtractor locates labeled financial and descriptive fields in
// normalized listing text using proximity-bounded label matching: the
// amount must sit within a per-field character window of its label,
// tight enough to avoid pairing with unrelated numbers elsewhere on
// the page, loose enough to survive markup artifacts in between.
type FieldExtractor struct {
	price   *regexp.Regexp
	rent    *regexp.Regexp
	charges *regexp.Regexp
	tax     *regexp.Regexp

	statedYield *regexp.Regexp
	lease       *regexp.Regexp
	tenant      *regexp.Regexp
	activity    *regexp.Regexp
}

// NewFieldExtractor compiles the field patterns for the configured
// windows. Zero or negative window values fall back to the tuned
// defaults, so a zero-value ExtractConfig is usable.
func NewFieldExtractor(cfg model.ExtractConfig) *FieldExtractor {
	defaults := model.DefaultConfig().Extract
	priceWin := orDefault(cfg.PriceWindow, defaults.PriceWindow)
	rentWin := orDefault(cfg.RentWindow, defaults.RentWindow)
	chargesWin := orDefault(cfg.ChargesWindow, defaults.ChargesWindow)
	taxWin := orDefault(cfg.TaxWindow, defaults.TaxWindow)
	qualWin := orDefault(cfg.QualitativeWindow, defaults.QualitativeWindow)

	return &FieldExtractor{
		price:   labelledAmount(priceLabels, priceWin),
		rent:    labelledAmount(rentLabels, rentWin),
		charges: labelledAmount(chargesLabels, chargesWin),
		tax:     labelledAmount(taxLabels, taxWin),

		statedYield: regexp.MustCompile(`(?i)Rendement\s*[:\-]?\s*(\d+(?:[.,]\d+)?)\s*%`),
		lease: regexp.MustCompile(fmt.Sprintf(
			`(?i)(?:Bail|Type de bail|Échéance bail)\s*[:\-]?\s*[A-Za-z0-9/\-.,\s]{3,%d}`, qualWin)),
		tenant: regexp.MustCompile(fmt.Sprintf(
			`(?i)(?:Locataire|Enseigne|Occupant)\s*[:\-]?\s*[A-Za-z0-9\-.,\s]{2,%d}`, qualWin)),
		activity: regexp.MustCompile(
			`(?i)(Restauration|Pharmacie|Boulangerie|Banque|Sant[ée]|Supermarch[ée]|Retail)`),
	}
}

// labelledAmount builds "label [:|-]? <up to window chars> €".
// ParseMoney is then applied to the matched span only.
func labelledAmount(labels string, window int) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(`(?i)(?:%s)\s*[:\-]?\s*.{0,%d}€`, labels, window))
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

// Extract turns one raw listing page into a field set. It never fails:
// a field whose label or amount cannot be located stays nil, and
// unparseable markup yields an all-absent field set with empty raw
// text. Identical input always produces identical output.
func (e *FieldExtractor) Extract(page string) model.Fields {
	text := NormalizeHTML(page)
	if text == "" {
		return model.Fields{}
	}

	f := model.Fields{RawText: text}

	f.Price = e.amountNear(e.price, text)
	if f.Price == nil {
		// Last-resort heuristic for the price only: search the whole
		// page for any euro amount. Too error-prone for other fields.
		f.Price = ParseMoney(text)
	}
	f.Rent = e.amountNear(e.rent, text)
	f.Charges = e.amountNear(e.charges, text)
	f.Tax = e.amountNear(e.tax, text)

	// The site's own claimed yield, kept for diagnostics only.
	if m := e.statedYield.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64); err == nil {
			f.StatedYield = &v
		}
	}

	// Qualitative fields keep the whole matched span, label included.
	// The contract is best-effort raw signal, not structured data.
	f.Lease = strings.TrimSpace(e.lease.FindString(text))
	f.Tenant = strings.TrimSpace(e.tenant.FindString(text))
	if m := e.activity.FindStringSubmatch(text); m != nil {
		f.Activity = m[1]
	}

	return f
}

// amountNear finds the label-window span and parses the amount in it.
func (e *FieldExtractor) amountNear(re *regexp.Regexp, text string) *float64 {
	span := re.FindString(text)
	if span == "" {
		return nil
	}
	return ParseMoney(span)
}
