package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rrenner/lfmkit/internal/config"
	"github.com/rrenner/lfmkit/internal/store"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove a stored account",
	Long: `Remove a stored account and its session key.

This only deletes the local record; the session key itself stays valid
on Last.fm's side until the user revokes the application there.`,
	RunE: runLogout,
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

func runLogout(cmd *cobra.Command, args []string) error {
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

	name := accountName(cmd, cfg)
	if err := st.Delete(ctx, name); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("no stored account %q", name)
		}
		return err
	}

	fmt.Printf("Removed account %q\n", name)
	return nil
}
