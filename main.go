package main

import (
	"fmt"
	"os"
)

func main() {
	cfg, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		printUsage()
		os.Exit(1)
	}

	log := Logger{}
	if cfg.Verbose {
		log.Out = os.Stderr
	}

	var runErr error
	if cfg.Compress {
		runErr = CompressFile(cfg, log)
	} else {
		runErr = DecompressFile(cfg, log)
	}

	if runErr != nil {
		fmt.Fprintln(os.Stderr, "error:", runErr)
		os.Exit(1)
	}
}
