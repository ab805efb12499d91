package lastfm

import (
	"time"
)

// Track represents a music track for scrobbling or now playing updates.
type Track struct {
	Artist      string // Required: Artist name
	Track       string // Required: Track name
	Album       string // Optional: Album name
	AlbumArtist string // Optional: Album artist (if different from track artist)
	Duration    int    // Optional: Track duration in seconds
	TrackNumber int    // Optional: Track number on album
	MBTrackID   string // Optional: MusicBrainz track ID
}

// Scrobble represents a single scrobble with timestamp.
type Scrobble struct {
	Track     Track     // The track being scrobbled
	Timestamp time.Time // When the track was played
}

// ScrobbleResult summarizes a track.scrobble submission.
type ScrobbleResult struct {
	Accepted int // Number of scrobbles accepted
	Ignored  int // Number of scrobbles ignored
}

// UserInfo holds the profile fields from user.getInfo.
type UserInfo struct {
	Name      string // Username
	RealName  string // Display name, may be empty
	URL       string // Profile page URL
	Country   string // Country, may be empty
	PlayCount int    // Total scrobble count
}

// RecentTrack is one entry from user.getRecentTracks.
type RecentTrack struct {
	Artist string
	Track  string
	Album  string
}
