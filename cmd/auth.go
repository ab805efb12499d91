package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rrenner/lfmkit/internal/config"
	"github.com/rrenner/lfmkit/pkg/lastfm"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authenticate with Last.fm via the browser flow",
	Long: `Authenticate with Last.fm using the browser-delegated flow.

This command will guide you through the Last.fm authentication process:
1. You'll be prompted to enter your Last.fm API key and secret
2. A browser URL will be provided for you to authorize the application
3. After authorization, the session is stored under the account name

You can get API credentials from: https://www.last.fm/api/account/create`,
	RunE: runAuth,
}

func init() {
	rootCmd.AddCommand(authCmd)
}

func runAuth(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	// Load existing config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Println("Last.fm Authentication")
	fmt.Println("======================")
	fmt.Println()

	apiKey, apiSecret, err := promptCredentials(reader, cfg)
	if err != nil {
		return err
	}

	session, err := lastfm.NewSession(lastfm.Config{
		APIKey:    apiKey,
		APISecret: apiSecret,
		Logger:    &apiLogger{logger: setupLogger()},
	})
	if err != nil {
		return err
	}

	// Step 2: Obtain a token and hand the consent URL to the user
	fmt.Println("\nGenerating authentication token...")
	authURL, err := session.WebAuthURL(ctx)
	if err != nil {
		return fmt.Errorf("failed to generate auth token: %w", err)
	}

	fmt.Println("\nPlease visit this URL to authorize lfm:")
	fmt.Printf("\n  %s\n\n", authURL)
	fmt.Println("After authorizing, press Enter to continue...")
	_, _ = reader.ReadString('\n')

	// Step 3: Exchange the approved token for a session key
	fmt.Println("Retrieving session key...")
	if err := session.CompleteWebAuth(ctx); err != nil {
		return fmt.Errorf("failed to get session key: %w", err)
	}

	return saveSession(ctx, cmd, cfg, session, apiKey, apiSecret)
}

// promptCredentials returns the API key and secret, offering any
// configured values first.
func promptCredentials(reader *bufio.Reader, cfg *config.Config) (string, string, error) {
	apiKey := cfg.LastFM.APIKey
	apiSecret := cfg.LastFM.APISecret

	fmt.Println("You can get API credentials from: https://www.last.fm/api/account/create")
	fmt.Println()

	if apiKey != "" && apiSecret != "" {
		fmt.Printf("Found existing API credentials.\n")
		fmt.Printf("API Key: %s\n", apiKey)
		fmt.Print("\nUse existing credentials? [Y/n]: ")
		response, err := reader.ReadString('\n')
		if err != nil {
			response = "y"
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "" && response != "y" && response != "yes" {
			apiKey = ""
			apiSecret = ""
		}
	}

	if apiKey == "" {
		fmt.Print("Enter your Last.fm API Key: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", "", fmt.Errorf("failed to read API key: %w", err)
		}
		apiKey = strings.TrimSpace(line)
	}

	if apiSecret == "" {
		fmt.Print("Enter your Last.fm API Secret: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", "", fmt.Errorf("failed to read API secret: %w", err)
		}
		apiSecret = strings.TrimSpace(line)
	}

	if apiKey == "" || apiSecret == "" {
		return "", "", fmt.Errorf("API key and secret are required")
	}
	return apiKey, apiSecret, nil
}

// saveSession persists an authenticated session into the account store
// and keeps the credentials in the config file for next time.
func saveSession(ctx context.Context, cmd *cobra.Command, cfg *config.Config, session *lastfm.Session, apiKey, apiSecret string) error {
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	name := accountName(cmd, cfg)
	if err := st.Save(ctx, name, session.Username(), session.Export()); err != nil {
		return err
	}

	cfg.LastFM.APIKey = apiKey
	cfg.LastFM.APISecret = apiSecret
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Printf("\n✓ Authentication successful!\n")
	if session.Username() != "" {
		fmt.Printf("✓ Authenticated as %s\n", session.Username())
	}
	fmt.Printf("✓ Session stored as account %q in %s\n", name, cfg.StorePath)

	return nil
}
