// Package console is a local stand-in for a real chat platform: replies go
// to a writer and uploaded artifacts land in a directory. It keeps the bot
// runnable and testable without platform credentials.
package console

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"search-bot/contract"
	"search-bot/domain/chat"
)

type Adapter struct {
	log          *slog.Logger
	out          io.Writer
	artifactsDir string
}

func NewAdapter(log *slog.Logger, out io.Writer, artifactsDir string) *Adapter {
	return &Adapter{log: log, out: out, artifactsDir: artifactsDir}
}

func (a *Adapter) Reply(msg chat.Message, text string) error {
	_, err := fmt.Fprintf(a.out, "[%s] %s\n", msg.Channel, text)
	return err
}

func (a *Adapter) Upload(artifact contract.Artifact) error {
	if err := os.MkdirAll(a.artifactsDir, 0o755); err != nil {
		return err
	}

	path := filepath.Join(a.artifactsDir, safeFilename(artifact.Filename)+"."+artifact.Filetype)
	if err := os.WriteFile(path, []byte(artifact.Content), 0o644); err != nil {
		return err
	}

	_, err := fmt.Fprintf(a.out, "[%s] uploaded %q -> %s\n", artifact.Channel, artifact.Filename, path)
	return err
}

// safeFilename keeps artifact titles usable as filenames.
func safeFilename(title string) string {
	replacer := strings.NewReplacer(
		"/", "_",
		"\\", "_",
		"`", "",
		":", "",
		" ", "_",
	)
	return replacer.Replace(title)
}
