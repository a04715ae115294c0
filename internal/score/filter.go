package score

import "github.com/pcouzin/murscan/internal/model"

// Qualifies applies the configured price band and minimum-yield
// threshold to a candidate.
//
// A present price outside [PriceMinEUR, PriceMaxEUR] rejects. A
// candidate whose gross AND net yields (nil counted as 0, for this
// comparison only) both sit below MinYieldPct rejects. Everything else
// passes — including a candidate with no price at all: an unextracted
// price is not itself disqualifying.
func Qualifies(price, gross, net *float64, cfg model.FilterConfig) bool {
	if price != nil && (*price < cfg.PriceMinEUR || *price > cfg.PriceMaxEUR) {
		return false
	}
	if orZero(gross) < cfg.MinYieldPct && orZero(net) < cfg.MinYieldPct {
		return false
	}
	return true
}
