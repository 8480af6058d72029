// Package resolver looks up canonical track metadata for a title and artist
// pair via an external service.
package resolver

import (
	"context"
	"errors"
)

// Track holds the canonical attributes of a resolved track.
type Track struct {
	Title      string
	ArtistName string
	Genre      string
	Rating     int
}

// ErrNoMatch is returned when the lookup service has no track for the given
// title and artist. Any other error from Resolve is a transport or provider
// failure.
var ErrNoMatch = errors.New("no matching track found")

// TrackResolver resolves a (title, artist) pair into track metadata.
type TrackResolver interface {
	Resolve(ctx context.Context, title, artistName string) (*Track, error)
}
