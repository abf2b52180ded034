package core

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/rs/zerolog"
)

var ErrUnrepresentableName = errors.New("name cannot be represented in a transcript")

// Recorder writes the transcript a shell session exploring a real directory
// would have produced. Parsing the output rebuilds the same tree.
type Recorder struct {
	logger *zerolog.Logger
}

func NewRecorder(logger *zerolog.Logger) *Recorder {
	return &Recorder{logger: logger}
}

// Record writes a transcript of dir, treated as the root, to w.
func (r *Recorder) Record(w io.Writer, dir string) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintln(bw, "$ cd /"); err != nil {
		return fmt.Errorf("failed to write transcript: %w", err)
	}
	if err := r.recordDir(bw, dir); err != nil {
		return err
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write transcript: %w", err)
	}
	return nil
}

func (r *Recorder) recordDir(w io.Writer, dirPath string) error {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("failed to read directory %s: %w", dirPath, err)
	}

	var listing []string
	var subdirs []string

	for _, entry := range entries {
		childPath := filepath.Join(dirPath, entry.Name())
		if !representable(entry.Name()) {
			return fmt.Errorf("%w: %q", ErrUnrepresentableName, childPath)
		}

		switch {
		case entry.IsDir():
			listing = append(listing, "dir "+entry.Name())
			subdirs = append(subdirs, entry.Name())
		case entry.Type().IsRegular():
			info, err := entry.Info()
			if err != nil {
				return fmt.Errorf("failed to stat %s: %w", childPath, err)
			}
			listing = append(listing, fmt.Sprintf("%d %s", info.Size(), entry.Name()))
		default:
			r.logger.Debug().
				Str("path", childPath).
				Str("mode", entry.Type().String()).
				Msg("skipping irregular file")
		}
	}

	if _, err := fmt.Fprintln(w, "$ ls"); err != nil {
		return fmt.Errorf("failed to write transcript: %w", err)
	}
	for _, line := range listing {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write transcript: %w", err)
		}
	}

	for _, name := range subdirs {
		if _, err := fmt.Fprintf(w, "$ cd %s\n", name); err != nil {
			return fmt.Errorf("failed to write transcript: %w", err)
		}
		if err := r.recordDir(w, filepath.Join(dirPath, name)); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, "$ cd .."); err != nil {
			return fmt.Errorf("failed to write transcript: %w", err)
		}
	}

	r.logger.Debug().
		Str("dir", dirPath).
		Int("entries", len(listing)).
		Msg("recorded directory")
	return nil
}

func representable(name string) bool {
	return name != "" && !strings.ContainsFunc(name, unicode.IsSpace)
}
