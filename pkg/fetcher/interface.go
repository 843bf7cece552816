// Package fetcher defines the boundary the VDP checker uses to retrieve and
// hash a single URL. Implementations classify every failure into one of the
// serrors kinds ErrTLS, ErrConnection, ErrTimeout or ErrInternal.
package fetcher

import "context"

// Result describes a successful fetch.
type Result struct {
	FinalURL   string // FinalURL is the URL reached after following redirects.
	IsRedirect bool   // IsRedirect reports whether FinalURL differs from the requested URL.
	Status     int    // Status is the HTTP status code of the final response.
	Hash       string // Hash is the hex encoded content hash of the final response.
}

// Client performs a single GET of a URL and hashes the response content.
//
//go:generate mockgen -package mockfetcher -source=interface.go -destination=mock/mockfetcher.go *
type Client interface {
	// Fetch retrieves URL. When verifyTLS is false certificate verification is
	// skipped. Any HTTP status is a successful fetch; only transport level
	// failures are returned as errors.
	Fetch(ctx context.Context, URL string, verifyTLS bool) (Result, error)
}
