package lastfm

import (
	"errors"
	"reflect"
	"testing"
)

const recentTracksXML = `<?xml version="1.0" encoding="utf-8"?>
<lfm status="ok">
	<recenttracks user="testuser">
		<track>
			<artist>The Beatles</artist>
			<name>Yesterday</name>
			<album>Help!</album>
		</track>
		<track>
			<artist>The Kinks</artist>
			<name>Waterloo Sunset</name>
			<album>Something Else</album>
		</track>
	</recenttracks>
</lfm>`

func mustParse(t *testing.T, body string) *Document {
	t.Helper()
	doc, err := parseDocument([]byte(body))
	if err != nil {
		t.Fatalf("parseDocument: %v", err)
	}
	return doc
}

func TestDocument_Extract(t *testing.T) {
	doc := mustParse(t, recentTracksXML)

	tests := []struct {
		name    string
		tag     string
		index   int
		want    string
		wantErr bool
	}{
		{name: "first artist", tag: "artist", index: 0, want: "The Beatles"},
		{name: "second artist", tag: "artist", index: 1, want: "The Kinks"},
		{name: "second track element text is nested", tag: "name", index: 1, want: "Waterloo Sunset"},
		{name: "index past end", tag: "artist", index: 2, wantErr: true},
		{name: "negative index", tag: "artist", index: -1, wantErr: true},
		{name: "unknown tag", tag: "mbid", index: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := doc.Extract(tt.tag, tt.index)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				var nfErr *NotFoundError
				if !errors.As(err, &nfErr) {
					t.Fatalf("expected *NotFoundError, got %T: %v", err, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Extract(%q, %d) = %q, want %q", tt.tag, tt.index, got, tt.want)
			}
		})
	}
}

// TestDocument_Extract_RepeatedSiblings covers the positional-index
// contract for same-named sibling tags.
func TestDocument_Extract_RepeatedSiblings(t *testing.T) {
	doc := mustParse(t, `<lfm status="ok"><tracks><track>one</track><track>two</track></tracks></lfm>`)

	got, err := doc.Extract("track", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "two" {
		t.Errorf("Extract(track, 1) = %q, want %q", got, "two")
	}

	if _, err := doc.Extract("track", 2); err == nil {
		t.Error("Extract(track, 2) on a two-track document should fail")
	}
}

func TestDocument_ExtractAll(t *testing.T) {
	doc := mustParse(t, recentTracksXML)

	tests := []struct {
		name    string
		tag     string
		limit   int
		want    []string
		wantErr bool
	}{
		{name: "all artists", tag: "artist", limit: 0, want: []string{"The Beatles", "The Kinks"}},
		{name: "negative limit means all", tag: "artist", limit: -1, want: []string{"The Beatles", "The Kinks"}},
		{name: "limited", tag: "artist", limit: 1, want: []string{"The Beatles"}},
		{name: "exact limit", tag: "artist", limit: 2, want: []string{"The Beatles", "The Kinks"}},
		{name: "limit past available fails rather than truncating", tag: "artist", limit: 3, wantErr: true},
		{name: "unknown tag without limit is empty", tag: "mbid", limit: 0, want: []string{}},
		{name: "unknown tag with limit fails", tag: "mbid", limit: 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := doc.ExtractAll(tt.tag, tt.limit)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				var nfErr *NotFoundError
				if !errors.As(err, &nfErr) {
					t.Fatalf("expected *NotFoundError, got %T: %v", err, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractAll(%q, %d) = %v, want %v", tt.tag, tt.limit, got, tt.want)
			}
		})
	}
}

func TestDocument_ExtractElement(t *testing.T) {
	doc := mustParse(t, `<lfm status="failed"><error code="4">Invalid authentication token</error></lfm>`)

	el, err := doc.ExtractElement("error", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if el.Attr("code") != "4" {
		t.Errorf("error code attr = %q, want %q", el.Attr("code"), "4")
	}
	if el.Text != "Invalid authentication token" {
		t.Errorf("error text = %q", el.Text)
	}
}

func TestParseDocument_Malformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not xml", body: "That's not even XML"},
		{name: "unclosed tag", body: "<lfm status=\"ok\"><token>abc</lfm>"},
		{name: "empty", body: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseDocument([]byte(tt.body)); err == nil {
				t.Error("expected parse error, got nil")
			}
		})
	}
}

func TestParseDocument_TrimsWhitespace(t *testing.T) {
	doc := mustParse(t, "<lfm status=\"ok\">\n\t<token>\n\t\ttabbed-token\n\t</token>\n</lfm>")

	got, err := doc.Extract("token", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "tabbed-token" {
		t.Errorf("Extract(token, 0) = %q, want %q", got, "tabbed-token")
	}
}
