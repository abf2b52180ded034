package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"nospace/internal/core"
	"nospace/internal/logger"
)

func main() {
	_ = godotenv.Load()

	log := logger.New(os.Getenv("LOG_LEVEL"), os.Stderr)

	dir, err := core.ParseArgs(os.Args[1:])
	if err == nil {
		err = dir.Expect(core.PathDir)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "usage: %s <directory>\n", os.Args[0])
		log.Fatal().Err(err).Msg("invalid arguments")
	}

	if err := core.NewRecorder(&log).Record(os.Stdout, dir.FullPath); err != nil {
		log.Fatal().Err(err).Msg("failed to record transcript")
	}
}
