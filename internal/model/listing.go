package model

// Fields holds the raw attributes extracted from one listing page.
// Monetary fields are pointers: nil means the label was never located,
// which is a normal outcome, not an error.
type Fields struct {
	Price   *float64 `json:"price,omitempty"`   // sale price, EUR
	Rent    *float64 `json:"rent,omitempty"`    // annual rent, EUR
	Charges *float64 `json:"charges,omitempty"` // annual rental charges, EUR
	Tax     *float64 `json:"tax,omitempty"`     // annual property tax, EUR

	// StatedYield is the yield the site itself claims. Kept for
	// cross-checking against the computed yields, never used in
	// filtering or ranking.
	StatedYield *float64 `json:"stated_yield,omitempty"`

	Lease    string `json:"lease,omitempty"`    // raw matched span, e.g. "Bail : 3/6/9 ..."
	Tenant   string `json:"tenant,omitempty"`   // raw matched span
	Activity string `json:"activity,omitempty"` // matched sector keyword

	// RawText is the normalized visible page text. It feeds the
	// location classifier and is dropped before output.
	RawText string `json:"-"`
}

// ListingRecord is one qualifying listing, immutable after assembly.
type ListingRecord struct {
	Source string `json:"source" yaml:"source"`
	Domain string `json:"domain" yaml:"domain"`
	URL    string `json:"url" yaml:"url"` // canonical URL, deduplication key

	City string `json:"city" yaml:"city"` // detected city, "" when undetected
	Tier string `json:"tier" yaml:"tier"` // location tier, see internal/locate

	Price   *float64 `json:"price,omitempty" yaml:"price,omitempty"`
	Rent    *float64 `json:"rent,omitempty" yaml:"rent,omitempty"`
	Charges *float64 `json:"charges,omitempty" yaml:"charges,omitempty"`
	Tax     *float64 `json:"tax,omitempty" yaml:"tax,omitempty"`

	GrossYield  *float64 `json:"gross_yield,omitempty" yaml:"gross_yield,omitempty"`
	NetYield    *float64 `json:"net_yield,omitempty" yaml:"net_yield,omitempty"`
	StatedYield *float64 `json:"stated_yield,omitempty" yaml:"stated_yield,omitempty"`

	Lease    string `json:"lease,omitempty" yaml:"lease,omitempty"`
	Tenant   string `json:"tenant,omitempty" yaml:"tenant,omitempty"`
	Activity string `json:"activity,omitempty" yaml:"activity,omitempty"`
}

// Source describes one listing site to crawl.
type Source struct {
	Name   string `json:"name" yaml:"name" mapstructure:"name"`
	Domain string `json:"domain" yaml:"domain" mapstructure:"domain"`

	// SearchURLs are templates with {city} and {query} placeholders,
	// filled with URL-escaped values.
	SearchURLs []string `json:"search_urls" yaml:"search_urls" mapstructure:"search_urls"`
}
