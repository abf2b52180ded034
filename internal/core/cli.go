package core

import (
	"fmt"
	"os"
	"path/filepath"
)

type ValidationError struct {
	Arg   string
	Cause string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Arg, e.Cause)
}

type PathKind int

const (
	PathFile PathKind = iota
	PathDir
)

type ParsedPath struct {
	FullPath string
	Kind     PathKind
}

// ParseArgs expects exactly one existing path.
func ParseArgs(args []string) (ParsedPath, error) {
	switch len(args) {
	case 0:
		return ParsedPath{}, &ValidationError{Arg: "<path>", Cause: "no path provided"}
	case 1:
	default:
		return ParsedPath{}, &ValidationError{Arg: args[1], Cause: "only one path is accepted"}
	}

	raw := args[0]
	p := filepath.Clean(raw)
	info, err := os.Stat(p)
	if err != nil {
		return ParsedPath{}, &ValidationError{Arg: raw, Cause: "not found or not accessible"}
	}

	kind := PathFile
	if info.IsDir() {
		kind = PathDir
	}
	return ParsedPath{FullPath: p, Kind: kind}, nil
}

// Expect returns a ValidationError unless the path has the wanted kind.
func (p ParsedPath) Expect(kind PathKind) error {
	if p.Kind == kind {
		return nil
	}
	if kind == PathDir {
		return &ValidationError{Arg: p.FullPath, Cause: "not a directory"}
	}
	return &ValidationError{Arg: p.FullPath, Cause: "is a directory"}
}
