// Command agonrle compresses or decompresses RGBA2222 pixel buffers using
// the agonrle scheme (spec §1, collaborator codec). Grounded on
// original_source/build/agz/rlecompress.cpp and
// original_source/agon-utils/src/rledecompress.cpp's own argv[1]/argv[2]
// source/target file convention, adapted to this repo's -d/stdio CLI
// idiom so it composes with cmd/szip's pipe-friendly behavior.
package main

import (
	"fmt"
	"io"
	"os"

	agonio "github.com/dot5enko/agonzip/io"
	"github.com/dot5enko/agonzip/imagerle"
)

const usageText = `agonrle [-d] [inputfile [outputfile]]
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
		fmt.Fprintf(os.Stderr, "agonrle: cannot open input: %v\n", err)
		os.Exit(1)
	}
	defer in.Close()

	out, err := agonio.OpenOutput(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "agonrle: cannot open output: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	data, err := io.ReadAll(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "agonrle: read failed: %v\n", err)
		os.Exit(1)
	}

	var result []byte
	if decompress {
		result = imagerle.Decode(data)
	} else {
		result = imagerle.Encode(data)
	}

	if _, err := out.Write(result); err != nil {
		fmt.Fprintf(os.Stderr, "agonrle: write failed: %v\n", err)
		os.Exit(1)
	}
}
