package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"

	"nospace/internal/config"
	"nospace/internal/core"
	"nospace/internal/logger"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <transcript>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Int64Var(&cfg.SmallDirectoryThreshold, "threshold", cfg.SmallDirectoryThreshold, "sum directories smaller than this many bytes")
	flag.Int64Var(&cfg.DiskCapacity, "capacity", cfg.DiskCapacity, "total disk capacity in bytes")
	flag.Int64Var(&cfg.UpdateSize, "required", cfg.UpdateSize, "free space the update needs in bytes")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	printTree := flag.Bool("tree", false, "print the reconstructed tree")
	flag.Parse()

	log := logger.New(cfg.LogLevel, os.Stderr)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	input, err := core.ParseArgs(flag.Args())
	if err == nil {
		err = input.Expect(core.PathFile)
	}
	if err != nil {
		flag.Usage()
		log.Fatal().Err(err).Msg("invalid arguments")
	}

	log.Info().Str("path", input.FullPath).Msg("reading transcript")
	lines, err := core.ReadLines(input.FullPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read transcript")
	}

	fs, err := core.NewParser(&log).Parse(lines)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to replay transcript")
	}

	report := core.Solve(fs, cfg.SmallDirectoryThreshold, cfg.DiskSpace())

	if *printTree {
		if err := fs.WriteTree(os.Stdout); err != nil {
			log.Fatal().Err(err).Msg("failed to print tree")
		}
	}

	if err := writeReport(os.Stdout, fs, report, cfg.DiskSpace()); err != nil {
		log.Fatal().Err(err).Msg("failed to write report")
	}
}

func writeReport(w io.Writer, fs *core.Filesystem, report core.Report, disk core.DiskSpace) error {
	if _, err := fmt.Fprintln(w, report.SmallDirectoryTotal); err != nil {
		return err
	}

	plan := report.Plan
	var err error
	switch {
	case plan.Sufficient:
		_, err = fmt.Fprintf(w, "enough free space: %d bytes unused, %d required\n", plan.Unused, disk.Required)
	case !plan.Found:
		_, err = fmt.Fprintf(w, "no directory is large enough to free %d bytes\n", plan.Needed)
	default:
		size := fs.Node(plan.Candidate).Size
		_, err = fmt.Fprintf(w, "delete %s (%d bytes, %s) to free %d bytes\n",
			fs.Path(plan.Candidate), size, humanize.Bytes(uint64(size)), plan.Needed)
	}
	return err
}
