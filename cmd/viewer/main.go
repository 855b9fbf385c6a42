package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"search-bot/infrastructure/storage"
	"search-bot/internal"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

// Viewer dumps the stored messages of a team as a table, newest first.
// It opens the store read-only so it can run next to the bot.
func main() {
	// 1. Load config
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		log.Fatalf("Config error: %v", err)
	}

	// 2. Open Badger in Read-Only mode
	// Note: BypassLockGuard allows opening if another process (the bot) holds the lock
	opts := badger.DefaultOptions(config.BadgerFilepath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	logger := logs.GetLoggerFromString(config.LogLevel)
	repository := storage.NewMessageRepository(db, logger, config.LimitMessages)

	header := fmt.Sprintf("  ====== Messages for team %s ======", config.BotTeam)
	fmt.Println(color.New(color.BgBlack, color.FgGreen).Render(header))

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "At", "Channel", "Author", "Lang", "Content"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	total := 0
	var cursor *string
	for {
		messages, next, err := repository.Recent(config.BotTeam, cursor)
		if err != nil {
			log.Fatalf("Failed to read messages: %v", err)
		}
		if len(messages) == 0 {
			break
		}

		table.AppendBulk(lo.Map(messages, func(m storage.StoredMessage, _ int) []string {
			return []string{
				m.ID.String()[:8],
				m.At.Format(time.RFC3339),
				m.Channel,
				m.Author,
				m.Language,
				m.Content,
			}
		}))
		total += len(messages)

		if next == nil {
			break
		}
		cursor = next
	}

	table.Render()
	fmt.Printf("\n%d message(s)\n", total)
}
