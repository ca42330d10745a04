// Package bloom provides approximate URL de-duplication using Bloom filters.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter records URLs that have already been seen. A URL that was never
// added may occasionally be reported as seen; an added URL never is.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected URLs
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records a URL.
func (f *Filter) Add(url string) {
	f.f.AddString(url)
}

// Test returns true if the URL might have been recorded.
func (f *Filter) Test(url string) bool {
	return f.f.TestString(url)
}

// Seen records a URL and reports whether it might have been recorded before.
func (f *Filter) Seen(url string) bool {
	return f.f.TestAndAddString(url)
}

// EstimatedCount returns the approximate number of URLs recorded.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
