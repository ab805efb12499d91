package lastfm

import (
	"context"
	"strconv"
)

// UserService provides read-only user operations. These methods do not
// require a session key or a signature.
type UserService struct {
	client *Client
}

// GetInfo fetches a user's public profile.
func (s *UserService) GetInfo(ctx context.Context, user string) (*UserInfo, error) {
	params := Params{"user": user}
	doc, err := s.client.call(ctx, "user.getInfo", params, callOptions{})
	if err != nil {
		return nil, err
	}

	name, err := doc.Extract("name", 0)
	if err != nil {
		return nil, err
	}

	info := &UserInfo{Name: name}
	if v, err := doc.Extract("realname", 0); err == nil {
		info.RealName = v
	}
	if v, err := doc.Extract("url", 0); err == nil {
		info.URL = v
	}
	if v, err := doc.Extract("country", 0); err == nil {
		info.Country = v
	}
	if v, err := doc.Extract("playcount", 0); err == nil {
		info.PlayCount, _ = strconv.Atoi(v)
	}
	return info, nil
}

// RecentTracks fetches a user's listening history, most recent first.
//
// A limit <= 0 returns one page at the service's default size. The
// repeated <track> siblings in the response are walked positionally;
// each entry's artist, name and album are the i-th elements of their
// kind in document order.
func (s *UserService) RecentTracks(ctx context.Context, user string, limit int) ([]RecentTrack, error) {
	params := Params{"user": user}
	if limit > 0 {
		params["limit"] = strconv.Itoa(limit)
	}

	doc, err := s.client.call(ctx, "user.getRecentTracks", params, callOptions{})
	if err != nil {
		return nil, err
	}

	n := doc.Count("track")
	tracks := make([]RecentTrack, 0, n)
	for i := 0; i < n; i++ {
		el, err := doc.ExtractElement("track", i)
		if err != nil {
			return nil, err
		}
		entry := RecentTrack{}
		for _, c := range el.Children {
			switch c.Name {
			case "artist":
				entry.Artist = c.Text
			case "name":
				entry.Track = c.Text
			case "album":
				entry.Album = c.Text
			}
		}
		tracks = append(tracks, entry)
	}
	return tracks, nil
}
