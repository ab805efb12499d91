package lastfm

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

// TrackService provides scrobbling and track operations.
//
// All operations here are session-bearing: the underlying client must
// hold a session key, and every request is signed.
type TrackService struct {
	client *Client
}

const (
	// MaxBatchSize is the maximum number of scrobbles allowed in a single batch.
	MaxBatchSize = 50
)

// UpdateNowPlaying updates the "now playing" status on Last.fm.
//
// This should be called when a track starts playing. It does not count
// as a scrobble and does not affect play counts.
func (s *TrackService) UpdateNowPlaying(ctx context.Context, track Track) error {
	if s.client.sessionKey == "" {
		return ErrNoSessionKey
	}

	params := Params{
		"artist": track.Artist,
		"track":  track.Track,
	}
	addOptionalTrackParams(params, track, "")

	_, err := s.client.call(ctx, "track.updateNowPlaying", params, callOptions{session: true})
	return err
}

// ScrobbleTrack submits a single scrobble.
//
// A track should only be scrobbled when it is longer than 30 seconds
// and has been played for at least half its duration or 4 minutes,
// whichever comes first; that policy is the caller's to enforce.
func (s *TrackService) ScrobbleTrack(ctx context.Context, track Track, timestamp time.Time) (*ScrobbleResult, error) {
	return s.ScrobbleBatch(ctx, []Scrobble{{Track: track, Timestamp: timestamp}})
}

// ScrobbleBatch submits up to MaxBatchSize scrobbles in one request.
//
// Batches larger than MaxBatchSize are rejected rather than silently
// truncated; the caller decides how to split.
func (s *TrackService) ScrobbleBatch(ctx context.Context, scrobbles []Scrobble) (*ScrobbleResult, error) {
	if s.client.sessionKey == "" {
		return nil, ErrNoSessionKey
	}
	if len(scrobbles) == 0 {
		return &ScrobbleResult{}, nil
	}
	if len(scrobbles) > MaxBatchSize {
		return nil, fmt.Errorf("lastfm: batch of %d exceeds the %d scrobble limit", len(scrobbles), MaxBatchSize)
	}

	params := NewParams()
	for i, scrobble := range scrobbles {
		idx := fmt.Sprintf("[%d]", i)
		params["artist"+idx] = scrobble.Track.Artist
		params["track"+idx] = scrobble.Track.Track
		params["timestamp"+idx] = strconv.FormatInt(scrobble.Timestamp.Unix(), 10)
		addOptionalTrackParams(params, scrobble.Track, idx)
	}

	doc, err := s.client.call(ctx, "track.scrobble", params, callOptions{session: true})
	if err != nil {
		return nil, err
	}

	return scrobbleResult(doc)
}

// Love marks a track as loved on the authenticated user's profile.
func (s *TrackService) Love(ctx context.Context, artist, track string) error {
	if s.client.sessionKey == "" {
		return ErrNoSessionKey
	}
	params := Params{"artist": artist, "track": track}
	_, err := s.client.call(ctx, "track.love", params, callOptions{session: true})
	return err
}

// Unlove removes the loved mark from a track.
func (s *TrackService) Unlove(ctx context.Context, artist, track string) error {
	if s.client.sessionKey == "" {
		return ErrNoSessionKey
	}
	params := Params{"artist": artist, "track": track}
	_, err := s.client.call(ctx, "track.unlove", params, callOptions{session: true})
	return err
}

// addOptionalTrackParams fills in the optional track fields, with an
// index suffix for batch submissions.
func addOptionalTrackParams(params Params, track Track, idx string) {
	if track.Album != "" {
		params["album"+idx] = track.Album
	}
	if track.AlbumArtist != "" {
		params["albumArtist"+idx] = track.AlbumArtist
	}
	if track.Duration > 0 {
		params["duration"+idx] = strconv.Itoa(track.Duration)
	}
	if track.TrackNumber > 0 {
		params["trackNumber"+idx] = strconv.Itoa(track.TrackNumber)
	}
	if track.MBTrackID != "" {
		params["mbid"+idx] = track.MBTrackID
	}
}

// scrobbleResult reads the accepted/ignored counters off the
// <scrobbles> envelope element.
func scrobbleResult(doc *Document) (*ScrobbleResult, error) {
	el, err := doc.ExtractElement("scrobbles", 0)
	if err != nil {
		return nil, err
	}

	result := &ScrobbleResult{}
	if v := el.Attr("accepted"); v != "" {
		if result.Accepted, err = strconv.Atoi(v); err != nil {
			return nil, fmt.Errorf("lastfm: bad accepted count %q: %w", v, err)
		}
	}
	if v := el.Attr("ignored"); v != "" {
		if result.Ignored, err = strconv.Atoi(v); err != nil {
			return nil, fmt.Errorf("lastfm: bad ignored count %q: %w", v, err)
		}
	}
	return result, nil
}
