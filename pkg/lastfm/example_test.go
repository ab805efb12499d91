package lastfm

import (
	"context"
	"fmt"
	"log"
	"time"
)

// Example_webAuthFlow demonstrates the browser-delegated
// authentication flow.
func Example_webAuthFlow() {
	session, err := NewSession(Config{
		APIKey:    "your-api-key",
		APISecret: "your-api-secret",
	})
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	// Step 1: Obtain a token and the consent URL
	authURL, err := session.WebAuthURL(ctx)
	if err != nil {
		log.Fatal(err)
	}

	// Step 2: Direct the user to authorize the token
	fmt.Println("Please visit this URL to authorize the application:")
	fmt.Println(authURL)

	// Step 3: After the user authorizes, exchange the token for a
	// session key. In a real application you would wait for user
	// authorization here.
	if err := session.CompleteWebAuth(ctx); err != nil {
		log.Fatal(err)
	}

	// Step 4: Save the session for future use
	rec := session.Export()
	_ = rec // store rec somewhere durable

	fmt.Printf("Authenticated as: %s\n", session.Username())
}

// Example_directAuthFlow demonstrates the direct credential flow. The
// password must already be MD5-hashed; the raw password never enters
// the exchange.
func Example_directAuthFlow() {
	session, err := NewSession(Config{
		APIKey:    "your-api-key",
		APISecret: "your-api-secret",
	})
	if err != nil {
		log.Fatal(err)
	}

	passwordHash := "md5-hex-of-the-password"
	if err := session.AuthenticateDirect(context.Background(), "username", passwordHash); err != nil {
		log.Fatal(err)
	}

	fmt.Println("Session key:", session.SessionKey())
}

// ExampleResumeSession demonstrates resuming a stored session.
func ExampleResumeSession() {
	session, err := ResumeSession(Record{
		APIKey:     "your-api-key",
		APISecret:  "your-api-secret",
		SessionKey: "stored-session-key",
	})
	if err != nil {
		log.Fatal(err)
	}

	track := Track{
		Artist: "The Beatles",
		Track:  "Yesterday",
		Album:  "Help!",
	}
	ctx := context.Background()

	if err := session.Client().Track().UpdateNowPlaying(ctx, track); err != nil {
		log.Fatal(err)
	}
	if _, err := session.Client().Track().ScrobbleTrack(ctx, track, time.Now()); err != nil {
		log.Fatal(err)
	}
}

// ExampleDocument_Extract demonstrates reading fields from a raw API
// response.
func ExampleDocument_Extract() {
	session, err := ResumeSession(Record{
		APIKey:    "your-api-key",
		APISecret: "your-api-secret",
	})
	if err != nil {
		log.Fatal(err)
	}

	doc, err := session.Client().Request(context.Background(), "artist.getInfo",
		Params{"artist": "The Beatles"}, false)
	if err != nil {
		log.Fatal(err)
	}

	listeners, err := doc.Extract("listeners", 0)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("Listeners:", listeners)
}
