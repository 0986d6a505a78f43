// Command agonturbo compresses or decompresses streams using the
// agonturbo container (spec §1, collaborator codec). CLI wiring follows
// the same stdio/-d pattern as cmd/szip and cmd/agonrle.
package main

import (
	"fmt"
	"io"
	"os"

	agonio "github.com/dot5enko/agonzip/io"
	"github.com/dot5enko/agonzip/turbo"
)

const usageText = `agonturbo [-d] [inputfile [outputfile]]
-d   decompress (default: compress)
`

func usage() {
	fmt.Fprint(os.Stderr, usageText)
	os.Exit(1)
}

func main() {
	decompress := false
	var inPath, outPath string

	for _, arg := range os.Args[1:] {
		switch {
		case arg == "-d":
			decompress = true
		case arg == "-":
			fallthrough
		case len(arg) > 0 && arg[0] != '-':
			if inPath == "" {
				inPath = arg
			} else if outPath == "" {
				outPath = arg
			} else {
				usage()
			}
		default:
			usage()
		}
	}

	in, err := agonio.OpenInput(inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "agonturbo: cannot open input: %v\n", err)
		os.Exit(1)
	}
	defer in.Close()

	out, err := agonio.OpenOutput(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "agonturbo: cannot open output: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	data, err := io.ReadAll(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "agonturbo: read failed: %v\n", err)
		os.Exit(1)
	}

	var result []byte
	if decompress {
		result, err = turbo.Decode(data)
	} else {
		result, err = turbo.Encode(data)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "agonturbo: %v\n", err)
		os.Exit(1)
	}

	if _, err := out.Write(result); err != nil {
		fmt.Fprintf(os.Stderr, "agonturbo: write failed: %v\n", err)
		os.Exit(1)
	}
}
