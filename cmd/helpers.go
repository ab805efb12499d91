package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rrenner/lfmkit/internal/config"
	"github.com/rrenner/lfmkit/internal/store"
	"github.com/rrenner/lfmkit/pkg/lastfm"
)

// accountName resolves the account to operate on: the --account flag
// when given, otherwise the configured default.
func accountName(cmd *cobra.Command, cfg *config.Config) string {
	if name, _ := cmd.Flags().GetString("account"); name != "" {
		return name
	}
	return cfg.Account
}

// openStore opens the configured account store.
func openStore(cfg *config.Config) (*store.Store, error) {
	st, err := store.Open(cfg.StorePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open account store: %w", err)
	}
	return st, nil
}

// resumeSession loads the named account from the store and resumes an
// authenticated session for it.
func resumeSession(ctx context.Context, cmd *cobra.Command, cfg *config.Config, st *store.Store) (*lastfm.Session, error) {
	name := accountName(cmd, cfg)
	acc, err := st.Load(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("no stored account %q; run 'lfm auth' or 'lfm login' first: %w", name, err)
	}

	session, err := lastfm.NewSession(lastfm.Config{
		APIKey:     acc.Record.APIKey,
		APISecret:  acc.Record.APISecret,
		SessionKey: acc.Record.SessionKey,
		Logger:     &apiLogger{logger: setupLogger()},
	})
	if err != nil {
		return nil, err
	}
	if !session.IsAuthenticated() {
		return nil, fmt.Errorf("account %q holds no session key; run 'lfm auth' or 'lfm login' first", name)
	}
	return session, nil
}
