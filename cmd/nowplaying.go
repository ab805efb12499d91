package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rrenner/lfmkit/internal/config"
	"github.com/rrenner/lfmkit/pkg/lastfm"
)

var nowPlayingAlbum string

var nowPlayingCmd = &cobra.Command{
	Use:   "nowplaying <artist> <track>",
	Short: "Update the now playing status for the stored account",
	Args:  cobra.ExactArgs(2),
	RunE:  runNowPlaying,
}

func init() {
	rootCmd.AddCommand(nowPlayingCmd)
	nowPlayingCmd.Flags().StringVar(&nowPlayingAlbum, "album", "", "Album name")
}

func runNowPlaying(cmd *cobra.Command, args []string) error {
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

	session, err := resumeSession(ctx, cmd, cfg, st)
	if err != nil {
		return err
	}

	track := lastfm.Track{
		Artist: args[0],
		Track:  args[1],
		Album:  nowPlayingAlbum,
	}
	if err := session.Client().Track().UpdateNowPlaying(ctx, track); err != nil {
		return fmt.Errorf("failed to update now playing: %w", err)
	}

	fmt.Printf("Now playing: %s - %s\n", track.Artist, track.Track)
	return nil
}
