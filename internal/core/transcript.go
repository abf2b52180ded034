package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

var (
	ErrUnknownDirectory = errors.New("unknown directory")
	ErrNotADirectory    = errors.New("not a directory")
	ErrRootHasNoParent  = errors.New("root has no parent")
	ErrAlreadyListed    = errors.New("directory already listed")
	ErrInvalidSize      = errors.New("invalid file size")
	ErrUnrecognizedLine = errors.New("unrecognized line")
)

// TranscriptError reports the transcript line that could not be replayed.
type TranscriptError struct {
	Line int // 1-based
	Text string
	Err  error
}

func (e *TranscriptError) Error() string {
	return fmt.Sprintf("transcript line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *TranscriptError) Unwrap() error {
	return e.Err
}

// Parser replays a shell transcript of cd and ls commands into a Filesystem.
type Parser struct {
	logger *zerolog.Logger
}

func NewParser(logger *zerolog.Logger) *Parser {
	return &Parser{logger: logger}
}

// Parse builds the tree described by lines. Directory sizes are left unset;
// call AggregateSizes before querying.
func (p *Parser) Parse(lines []string) (*Filesystem, error) {
	fs := newFilesystem()
	cwd := fs.Root()

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		fail := func(err error) (*Filesystem, error) {
			return nil, &TranscriptError{Line: i + 1, Text: line, Err: err}
		}

		switch {
		case line == "$ cd /":
			cwd = fs.Root()

		case line == "$ cd ..":
			parent := fs.nodes[cwd].Parent
			if parent == NoParent {
				return fail(ErrRootHasNoParent)
			}
			cwd = parent

		case strings.HasPrefix(line, "$ cd "):
			child, ok := fs.childByName(cwd, strings.TrimPrefix(line, "$ cd "))
			if !ok {
				return fail(ErrUnknownDirectory)
			}
			if !fs.nodes[child].IsDir() {
				return fail(ErrNotADirectory)
			}
			cwd = child

		case line == "$ ls":
			if fs.nodes[cwd].listed {
				return fail(ErrAlreadyListed)
			}
			fs.nodes[cwd].listed = true

			start := i + 1
			for i+1 < len(lines) && !strings.HasPrefix(lines[i+1], "$") {
				i++
				if err := p.addListed(fs, cwd, lines[i]); err != nil {
					line = lines[i]
					return fail(err)
				}
			}

			p.logger.Debug().
				Str("dir", fs.Path(cwd)).
				Int("entries", i+1-start).
				Msg("listed directory")

		default:
			return fail(ErrUnrecognizedLine)
		}
	}

	p.logger.Info().
		Int("lines", len(lines)).
		Int("nodes", fs.Len()).
		Msg("transcript replayed")
	return fs, nil
}

// addListed adds one line of ls output ("dir <name>" or "<size> <name>") under dir.
func (p *Parser) addListed(fs *Filesystem, dir NodeID, line string) error {
	field, name, ok := strings.Cut(line, " ")
	if !ok || name == "" {
		return ErrUnrecognizedLine
	}

	if field == "dir" {
		fs.addChild(dir, name, KindDir, 0)
		return nil
	}

	size, err := strconv.ParseInt(field, 10, 64)
	if err != nil || size < 0 {
		return ErrInvalidSize
	}
	fs.addChild(dir, name, KindFile, size)
	return nil
}
