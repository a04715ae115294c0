// Package cache holds fetched pages for the duration of a run, so a
// detail URL discovered under several city/query combinations is
// fetched once. Nothing here persists across runs.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// PageCache is the page-cache contract used by the crawl pipeline.
// Pages are keyed by their URL; the TTL is fixed at construction.
type PageCache interface {
	Get(url string) (html string, found bool)
	Set(url, html string)
	Delete(url string)
	Clear()
}

// pageKey hashes a URL so arbitrarily long query strings stay a
// fixed-size key.
func pageKey(url string) string {
	hash := sha256.Sum256([]byte(url))
	return "murscan:page:" + hex.EncodeToString(hash[:])
}
