package lastfm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestTrackService_RequiresSession(t *testing.T) {
	client := newTestClient(t, "")
	ctx := context.Background()
	track := Track{Artist: "The Beatles", Track: "Yesterday"}

	tests := []struct {
		name string
		call func() error
	}{
		{name: "UpdateNowPlaying", call: func() error {
			return client.Track().UpdateNowPlaying(ctx, track)
		}},
		{name: "ScrobbleTrack", call: func() error {
			_, err := client.Track().ScrobbleTrack(ctx, track, time.Now())
			return err
		}},
		{name: "Love", call: func() error {
			return client.Track().Love(ctx, "The Beatles", "Yesterday")
		}},
		{name: "Unlove", call: func() error {
			return client.Track().Unlove(ctx, "The Beatles", "Yesterday")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); !errors.Is(err, ErrNoSessionKey) {
				t.Errorf("expected ErrNoSessionKey, got %v", err)
			}
		})
	}
}

func TestTrackService_UpdateNowPlaying(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatalf("failed to parse form: %v", err)
		}
		if method := r.FormValue("method"); method != "track.updateNowPlaying" {
			t.Errorf("method = %q", method)
		}
		if artist := r.FormValue("artist"); artist != "The Beatles" {
			t.Errorf("artist = %q", artist)
		}
		if album := r.FormValue("album"); album != "Help!" {
			t.Errorf("album = %q", album)
		}
		if duration := r.FormValue("duration"); duration != "125" {
			t.Errorf("duration = %q", duration)
		}
		if sk := r.FormValue("sk"); sk != "session-key" {
			t.Errorf("sk = %q", sk)
		}
		if sig := r.FormValue("api_sig"); sig == "" {
			t.Error("expected api_sig to be present")
		}
		writeXML(t, w, `<lfm status="ok"><nowplaying><artist>The Beatles</artist><track>Yesterday</track></nowplaying></lfm>`)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	client.SetSessionKey("session-key")

	track := Track{Artist: "The Beatles", Track: "Yesterday", Album: "Help!", Duration: 125}
	if err := client.Track().UpdateNowPlaying(context.Background(), track); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTrackService_ScrobbleTrack(t *testing.T) {
	ts := time.Unix(1700000000, 0)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatalf("failed to parse form: %v", err)
		}
		if method := r.FormValue("method"); method != "track.scrobble" {
			t.Errorf("method = %q", method)
		}
		if artist := r.FormValue("artist[0]"); artist != "The Beatles" {
			t.Errorf("artist[0] = %q", artist)
		}
		if stamp := r.FormValue("timestamp[0]"); stamp != "1700000000" {
			t.Errorf("timestamp[0] = %q", stamp)
		}
		writeXML(t, w, `<lfm status="ok"><scrobbles accepted="1" ignored="0"><scrobble><track>Yesterday</track></scrobble></scrobbles></lfm>`)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	client.SetSessionKey("session-key")

	resp, err := client.Track().ScrobbleTrack(context.Background(), Track{Artist: "The Beatles", Track: "Yesterday"}, ts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Accepted != 1 || resp.Ignored != 0 {
		t.Errorf("result = %+v, want accepted 1 ignored 0", resp)
	}
}

func TestTrackService_ScrobbleBatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatalf("failed to parse form: %v", err)
		}
		for i := 0; i < 3; i++ {
			if v := r.FormValue(fmt.Sprintf("artist[%d]", i)); v == "" {
				t.Errorf("missing artist[%d]", i)
			}
		}
		writeXML(t, w, `<lfm status="ok"><scrobbles accepted="2" ignored="1"/></lfm>`)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	client.SetSessionKey("session-key")

	scrobbles := []Scrobble{
		{Track: Track{Artist: "A", Track: "1"}, Timestamp: time.Now()},
		{Track: Track{Artist: "B", Track: "2"}, Timestamp: time.Now()},
		{Track: Track{Artist: "C", Track: "3"}, Timestamp: time.Now()},
	}
	resp, err := client.Track().ScrobbleBatch(context.Background(), scrobbles)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Accepted != 2 || resp.Ignored != 1 {
		t.Errorf("result = %+v, want accepted 2 ignored 1", resp)
	}
}

func TestTrackService_ScrobbleBatch_Limits(t *testing.T) {
	client := newTestClient(t, "")
	client.SetSessionKey("session-key")
	ctx := context.Background()

	resp, err := client.Track().ScrobbleBatch(ctx, nil)
	if err != nil {
		t.Fatalf("empty batch: unexpected error: %v", err)
	}
	if resp.Accepted != 0 || resp.Ignored != 0 {
		t.Errorf("empty batch result = %+v", resp)
	}

	_, err = client.Track().ScrobbleBatch(ctx, make([]Scrobble, MaxBatchSize+1))
	if err == nil {
		t.Fatal("oversized batch should be rejected")
	}
	if !strings.Contains(err.Error(), "51") {
		t.Errorf("error should name the offending batch size, got %v", err)
	}
}

func TestTrackService_Love(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatalf("failed to parse form: %v", err)
		}
		if method := r.FormValue("method"); method != "track.love" {
			t.Errorf("method = %q", method)
		}
		writeXML(t, w, `<lfm status="ok"/>`)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	client.SetSessionKey("session-key")

	if err := client.Track().Love(context.Background(), "The Kinks", "Waterloo Sunset"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
