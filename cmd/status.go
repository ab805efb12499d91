package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/rrenner/lfmkit/internal/config"
	"github.com/rrenner/lfmkit/internal/store"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "List stored accounts and their session state",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
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

	accounts, err := st.List(ctx)
	if err != nil {
		return err
	}

	if len(accounts) == 0 {
		fmt.Println("No stored accounts. Run 'lfm auth' or 'lfm login' first.")
		return nil
	}

	fmt.Print(formatAccountTable(accounts, cfg.Account))
	return nil
}

// formatAccountTable renders accounts as aligned columns. Widths are
// display widths, not byte counts, so wide characters in usernames
// keep the columns straight.
func formatAccountTable(accounts []store.Account, defaultName string) string {
	headers := []string{"ACCOUNT", "USERNAME", "SESSION", "CREATED"}
	rows := make([][]string, 0, len(accounts))
	for _, acc := range accounts {
		name := acc.Name
		if name == defaultName {
			name += " *"
		}
		state := "none"
		if acc.Record.SessionKey != "" {
			state = "authenticated"
		}
		username := acc.Username
		if username == "" {
			username = "-"
		}
		rows = append(rows, []string{
			name,
			username,
			state,
			acc.CreatedAt.Format("2006-01-02"),
		})
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		for i, cell := range cells {
			b.WriteString(cell)
			if i < len(cells)-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-runewidth.StringWidth(cell)+2))
			}
		}
		b.WriteString("\n")
	}

	writeRow(headers)
	for _, row := range rows {
		writeRow(row)
	}
	return b.String()
}
