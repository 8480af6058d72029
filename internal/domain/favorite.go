package domain

// Favorite is a saved track record.
type Favorite struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	ArtistName string `json:"artistName"`
	Genre      string `json:"genre"`
	Rating     int    `json:"rating"`
}

// DefaultGenre is stored when the lookup service returns no genre
// classification for a track.
const DefaultGenre = "Unknown"
