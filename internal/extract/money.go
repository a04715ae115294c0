package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// amountPattern matches a euro amount: at least one leading digit, then
// two or more digits/spaces/punctuation before the currency symbol.
// The length floor rejects bare single digits, which pair with € far
// too easily on listing pages ("2 €/m²" footnotes and the like).
// \x{00A0} and \x{202F} are the non-breaking space variants French
// sites use as thousands separators.
var amountPattern = regexp.MustCompile(`([0-9][0-9\s\x{00A0}\x{202F}.,]{2,})\s*€`)

// separatorCleaner strips thousands separators: space variants and
// periods. Commas are handled separately as the decimal mark.
var separatorCleaner = strings.NewReplacer(
	" ", "",
	"\u00a0", "",
	"\u202f", "",
	"\t", "",
	"\n", "",
	"\r", "",
	".", "",
)

// ParseMoney extracts the first euro-marked amount from a free-text
// fragment and returns its value, or nil when no parseable amount is
// present. It never fails: parse failures are "field absent".
//
//	ParseMoney("Prix : 1 250 000 €")  -> 1250000
//	ParseMoney("1.250.000,50 €")      -> 1250000.50
//	ParseMoney("no amount here")      -> nil
func ParseMoney(text string) *float64 {
	if text == "" {
		return nil
	}

	m := amountPattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}

	raw := separatorCleaner.Replace(m[1])
	raw = strings.ReplaceAll(raw, ",", ".")

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return nil
	}
	return &v
}
