package cmd

import (
	"bufio"
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rrenner/lfmkit/internal/config"
	"github.com/rrenner/lfmkit/pkg/lastfm"
)

var loginPasswordHash string

var loginCmd = &cobra.Command{
	Use:   "login <username>",
	Short: "Authenticate with Last.fm username and password",
	Long: `Authenticate with Last.fm using the direct credential flow.

The password is hashed locally before anything is sent; only the hash
enters the signed exchange. If you already hold the MD5 hex digest of
the password, pass it with --password-hash to avoid the prompt.

Prefer 'lfm auth' (the browser flow) when possible; the direct flow
exists for accounts and tooling where a browser hand-off is not an
option.`,
	Args: cobra.ExactArgs(1),
	RunE: runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVar(&loginPasswordHash, "password-hash", "", "MD5 hex digest of the password (skips the prompt)")
}

func runLogin(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)
	username := args[0]

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	apiKey, apiSecret, err := promptCredentials(reader, cfg)
	if err != nil {
		return err
	}

	passwordHash := loginPasswordHash
	if passwordHash == "" {
		fmt.Printf("Password for %s: ", username)
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		sum := md5.Sum([]byte(strings.TrimRight(line, "\r\n")))
		passwordHash = hex.EncodeToString(sum[:])
	}

	session, err := lastfm.NewSession(lastfm.Config{
		APIKey:    apiKey,
		APISecret: apiSecret,
		Logger:    &apiLogger{logger: setupLogger()},
	})
	if err != nil {
		return err
	}

	if err := session.AuthenticateDirect(ctx, username, passwordHash); err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}

	return saveSession(ctx, cmd, cfg, session, apiKey, apiSecret)
}
