package domain

import "favorites-svc/pkg/apperrors"

// Predefined errors with the user-facing messages the API returns. The
// favorite not-found message differs between the favorites routes and the
// association routes, so both variants exist.
var (
	// Validation
	ErrMissingArtistName       = apperrors.Validation("Bad Request! Did you send an artist name?")
	ErrMissingTrackTitle       = apperrors.Validation("Bad Request! Did you send a song title?")
	ErrMissingTrackFields      = apperrors.Validation("Bad Request! Did you send an artist name and song title?")
	ErrMissingPlaylistTitle    = apperrors.Validation("Bad Request! Did you send a playlist title?")
	ErrMissingNewPlaylistTitle = apperrors.Validation("Bad Request! Did you send a new playlist title?")

	// Not found
	ErrFavoriteTrackNotFound      = apperrors.NotFound("No favorite track with given ID was found. Please check the ID and try again.")
	ErrFavoriteNotFound           = apperrors.NotFound("No favorite with given ID was found. Please check the ID and try again.")
	ErrPlaylistNotFound           = apperrors.NotFound("No playlist with given ID was found. Please check the ID and try again.")
	ErrPlaylistOrFavoriteNotFound = apperrors.NotFound("No playlist or favorite with given IDs were found. Please check the IDs and try again.")
	ErrPlaylistFavoriteNotFound   = apperrors.NotFound("No playlist favorite was found. Please check the ID and try again.")
	ErrTrackNotFound              = apperrors.NotFound("No track found. Please check track title and artist name and try again.")

	// Conflict
	ErrFavoriteExists         = apperrors.Conflict("That track has already been added to your favorites!")
	ErrPlaylistExists         = apperrors.Conflict("A playlist with that title has already been added to your playlists!")
	ErrPlaylistFavoriteExists = apperrors.Conflict("That favorite has already been added to that playlist!")

	// External lookup
	ErrTrackLookupFailed = apperrors.Resolution("Track lookup failed. Please try again.")

	// Fallback
	ErrUnexpected = apperrors.Unexpected("Unexpected error. Please try again.")
)
