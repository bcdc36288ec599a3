// Package source acquires the text to read and tokenizes it.
package source

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"golang.org/x/term"
)

// Text is an acquired document together with a label describing where
// it came from.
type Text struct {
	Raw   string
	Label string
}

// Load acquires raw text. A non-empty path reads that file and any
// failure is fatal. Without a path the clipboard is tried first, then
// standard input.
func Load(path string) (Text, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Text{}, fmt.Errorf("failed to read %s: %w", path, err)
		}
		return Text{Raw: string(data), Label: path}, nil
	}
	return loadFallback(os.Stdin, readClipboard)
}

func loadFallback(stdin *os.File, fromClipboard func() (string, error)) (Text, error) {
	if text, err := fromClipboard(); err == nil && strings.TrimSpace(text) != "" {
		return Text{Raw: text, Label: "clipboard"}, nil
	}
	if term.IsTerminal(int(stdin.Fd())) {
		return Text{}, fmt.Errorf("no file given, clipboard is empty, and stdin is a terminal; pipe text in or pass a file")
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return Text{}, fmt.Errorf("failed to read stdin: %w", err)
	}
	return Text{Raw: string(data), Label: "stdin"}, nil
}

func readClipboard() (string, error) {
	return clipboard.ReadAll()
}

// Tokenize splits text on whitespace. The returned tokens alias the
// source string and are never mutated.
func Tokenize(text string) []string {
	return strings.Fields(text)
}
