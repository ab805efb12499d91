// Package lastfm provides a client library for the Last.fm API 2.0.
//
// # Overview
//
// This package implements the authenticated core of the Last.fm web
// API: deterministic request signing, the two authentication flows the
// service supports, and a small extraction layer for reading typed
// values out of the XML responses. Higher-level method groups (tracks,
// users) are thin services composed over the same request pipeline.
//
// # Quick Start
//
// Create a session with your API credentials:
//
//	import "github.com/rrenner/lfmkit/pkg/lastfm"
//
//	session, err := lastfm.NewSession(lastfm.Config{
//	    APIKey:    "your-api-key",
//	    APISecret: "your-api-secret",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Authentication
//
// Last.fm supports two flows. The browser-delegated flow obtains a
// short-lived token, has the user approve it, then exchanges it for a
// session key:
//
//	url, err := session.WebAuthURL(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("Please visit:", url)
//	fmt.Print("Press enter after authorizing...")
//	fmt.Scanln()
//
//	if err := session.CompleteWebAuth(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// The direct flow exchanges a username and pre-hashed password in a
// single call:
//
//	err := session.AuthenticateDirect(ctx, "username", md5HexOfPassword)
//
// Either way, the resulting session key is long-lived. Persist it via
// Export and rebuild the session later with ResumeSession:
//
//	rec := session.Export()
//	// ... store rec ...
//	session, err = lastfm.ResumeSession(rec)
//
// # Making Requests
//
// Authenticated method groups hang off the session's client:
//
//	track := lastfm.Track{
//	    Artist: "The Beatles",
//	    Track:  "Yesterday",
//	    Album:  "Help!",
//	}
//	err := session.Client().Track().UpdateNowPlaying(ctx, track)
//
//	resp, err := session.Client().Track().ScrobbleTrack(ctx, track, time.Now())
//
// Methods not wrapped by a service can be called directly; the
// returned Document exposes Extract and ExtractAll for pulling fields
// out of the response:
//
//	doc, err := session.Client().Request(ctx, "artist.getInfo",
//	    lastfm.Params{"artist": "The Beatles"}, false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	listeners, err := doc.Extract("listeners", 0)
//
// # Error Handling
//
// Service-reported failures surface as *Error with the service's own
// code and message; everything below the envelope (network failures,
// unexpected HTTP statuses, unparseable bodies) surfaces as
// *TransportError. The client never retries on its own, so callers can
// build their own policy:
//
//	err := session.Client().Track().UpdateNowPlaying(ctx, track)
//	var svcErr *lastfm.Error
//	if errors.As(err, &svcErr) && svcErr.Temporary() {
//	    // worth retrying later
//	}
//
// # Context Support
//
// All API methods accept a context.Context for cancellation and
// timeouts. Each call performs exactly one network round trip; timeout
// policy otherwise belongs to the configured http.Client.
//
// # Concurrency
//
// Independent sessions and read-only request execution are safe to use
// from multiple goroutines. A single Session's auth state (session
// key, pending token) assumes one writer at a time; serialize
// concurrent auth attempts yourself.
//
// # Last.fm API Documentation
//
// For more information about the Last.fm API:
// https://www.last.fm/api
package lastfm
