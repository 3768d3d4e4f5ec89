package main

import (
	"os"

	"github.com/qbench/pauli-bench/cmd"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Logs go to stderr so measurement lines on stdout stay machine-readable
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	cmd.Execute()
}
