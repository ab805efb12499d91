package cmd

import (
	"context"
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/rrenner/lfmkit/internal/config"
	"github.com/rrenner/lfmkit/pkg/lastfm"
)

var (
	recentLimit int
	recentWidth int
)

var recentCmd = &cobra.Command{
	Use:   "recent [username]",
	Short: "Show a user's recently played tracks",
	Long: `Show recently played tracks for a Last.fm user.

Without a username argument, the stored account's username is used.
Reading listening history is a public API call, so any username works
even without authentication for it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRecent,
}

func init() {
	rootCmd.AddCommand(recentCmd)
	recentCmd.Flags().IntVarP(&recentLimit, "limit", "n", 10, "Number of tracks to show")
	recentCmd.Flags().IntVarP(&recentWidth, "width", "w", 0, "Truncate lines to this display width (0=disabled)")
}

func runRecent(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	var username string
	if len(args) == 1 {
		username = args[0]
	} else {
		acc, err := st.Load(ctx, accountName(cmd, cfg))
		if err != nil || acc.Username == "" {
			return fmt.Errorf("no username given and none stored; pass one: lfm recent <username>")
		}
		username = acc.Username
	}

	client, err := lastfm.NewClient(lastfm.Config{
		APIKey:    cfg.LastFM.APIKey,
		APISecret: cfg.LastFM.APISecret,
		Logger:    &apiLogger{logger: setupLogger()},
	})
	if err != nil {
		return err
	}

	tracks, err := client.User().RecentTracks(ctx, username, recentLimit)
	if err != nil {
		return fmt.Errorf("failed to fetch recent tracks: %w", err)
	}

	for _, track := range tracks {
		line := fmt.Sprintf("%s - %s", track.Artist, track.Track)
		if track.Album != "" {
			line += fmt.Sprintf(" (%s)", track.Album)
		}
		if recentWidth > 0 {
			line = runewidth.Truncate(line, recentWidth, "…")
		}
		fmt.Println(line)
	}
	return nil
}
