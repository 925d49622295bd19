// Package input finds and reads puzzle input files.
package input

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/crypto/blake2b"

	"github.com/aledsdavies/advent/internal/config"
	adverrors "github.com/aledsdavies/advent/internal/errors"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// Source is a puzzle input read into memory.
type Source struct {
	Path   string
	Text   string
	Digest string
}

// Size returns the length of the input in bytes.
func (s Source) Size() int {
	return len(s.Text)
}

// Candidates returns the paths tried for day n, in order: the configured
// pattern under the input directory, then dayNN/input.txt and day-NN/input.txt
// next to the working directory.
func Candidates(cfg *config.Config, n int) []string {
	return []string{
		filepath.Join(cfg.InputDir, cfg.InputFile(n)),
		filepath.Join(fmt.Sprintf("day%02d", n), "input.txt"),
		filepath.Join(fmt.Sprintf("day-%02d", n), "input.txt"),
	}
}

// Locate returns the first candidate for day n that exists.
func Locate(cfg *config.Config, n int) (string, error) {
	tried := Candidates(cfg, n)
	for _, path := range tried {
		info, err := os.Stat(path)
		if err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", adverrors.NewFileNotFoundError(n, tried)
}

// Read loads path, or stdin when path is "-". The whole input is read at
// once.
func Read(path string, stdin io.Reader) (Source, error) {
	var (
		data []byte
		err  error
	)
	if path == Stdin {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return Source{}, adverrors.NewInputError(path, err)
	}
	text := string(data)
	return Source{Path: path, Text: text, Digest: Digest(text)}, nil
}

// Digest returns the hex BLAKE2b-256 digest of text, used to tell inputs
// apart in logs without printing them.
func Digest(text string) string {
	sum := blake2b.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
