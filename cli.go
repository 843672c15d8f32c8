package main

import (
	"fmt"
	"os"
	"strconv"
)

// parseArgs implements the flag set of spec.md §6.3 by hand, matching
// the style of manual argv scanning the example programs use rather
// than pulling in a flag-parsing package for a half-dozen options.
func parseArgs(args []string) (Config, error) {
	cfg := NewConfig()

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-c":
			cfg.Compress = true
		case "-u":
			cfg.Decompress = true
		case "-v":
			cfg.Verbose = true
		case "-z":
			cfg.Archive = true
		case "-h":
			printUsage()
			os.Exit(0)
		case "-i":
			val, err := requireValue(args, &i)
			if err != nil {
				return cfg, err
			}
			cfg.InputFile = val
		case "-o":
			val, err := requireValue(args, &i)
			if err != nil {
				return cfg, err
			}
			cfg.OutputFile = val
		case "-g":
			val, err := requireValue(args, &i)
			if err != nil {
				return cfg, err
			}
			cfg.GenerateGrid = true
			cfg.GridFile = val
		case "-a":
			val, err := requireValue(args, &i)
			if err != nil {
				return cfg, err
			}
			a, perr := strconv.ParseFloat(val, 64)
			if perr != nil {
				return cfg, newError(KindInvalidParam, "alpha must be a number")
			}
			cfg.Alpha = a
		default:
			return cfg, newError(KindInvalidParam, fmt.Sprintf("unrecognized flag %q", arg))
		}
	}

	return cfg, cfg.Validate()
}

func requireValue(args []string, i *int) (string, error) {
	if *i+1 >= len(args) {
		return "", newError(KindInvalidParam, fmt.Sprintf("flag %q requires a value", args[*i]))
	}
	*i++
	return args[*i], nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `usage: qtc -c|-u -i <path> [-o <path>] [-a <alpha>] [-g <path>] [-z] [-v]

  -c          compress
  -u          decompress
  -i <path>   input file (required)
  -o <path>   output file
  -a <float>  lossy alpha (> 1 enables the lossy filter)
  -g <path>   also write a segmentation-grid PGM
  -z          also write a .qtc.zst archive sidecar (compress mode only)
  -h          show this help
  -v          verbose output`)
}
