// Command szip is the CLI driver for the block-sorting statistical
// compressor (spec §6.1). Flag parsing is a direct port of the reference
// implementation's combined-flag loop in
// original_source/build/szip/szip.c's main(): options are single letters
// that may run together in one argv token (-r3i == -r3 -i), each
// optionally followed inline by its own decimal argument, which neither
// the standard flag package nor a subcommand-style CLI library can
// express.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	szblock "github.com/dot5enko/agonzip/block"
	"github.com/dot5enko/agonzip/cliutil"
	agonio "github.com/dot5enko/agonzip/io"
	"github.com/dot5enko/agonzip/pipeline"
)

const usageText = `szip (c) 2026
usage: szip [options] [inputfile [outputfile]]
option           meaning              default   range
-d               decompress
-b<blocksize>    blocksize in 100kB   32kB      1-41
-o<order>        order of context     -o6       0, 3-255
-r<recordsize>   recordsize           -r1       1-127
-i               incremental          off
-v<level>        verbositylevel       -v0       0-255
options may be combined into one, like -r3i
`

func usage() {
	fmt.Fprint(os.Stderr, usageText)
	os.Exit(1)
}

// readNum consumes a run of decimal digits starting at s[*pos], validates
// it against [min, max], and advances *pos past the digits. Mirrors the
// reference readnum(char **s, int min, int max).
func readNum(s string, pos *int, min, max int) int {
	start := *pos
	for *pos < len(s) && s[*pos] >= '0' && s[*pos] <= '9' {
		*pos++
	}
	if *pos == start {
		usage()
	}
	n, err := strconv.Atoi(s[start:*pos])
	if err != nil || n < min || n > max {
		usage()
	}
	return n
}

type params struct {
	blockSize   int
	order       int
	recordSize  int
	incremental bool
	verbosity   int
	compress    bool
	inPath      string
	outPath     string
}

func parseArgs(argv []string) params {
	p := params{
		blockSize:  32768,
		order:      6,
		recordSize: 1,
		compress:   true,
	}

	for _, arg := range argv {
		if !strings.HasPrefix(arg, "-") || arg == "-" {
			switch {
			case p.inPath == "":
				p.inPath = arg
			case p.outPath == "":
				p.outPath = arg
			default:
				usage()
			}
			continue
		}

		s := arg[1:]
		pos := 0
		for pos < len(s) {
			c := s[pos]
			pos++
			switch c {
			case 'o':
				order := readNum(s, &pos, 0, 255)
				if order == 1 || order == 2 {
					usage()
				}
				p.order = order
			case 'r':
				p.recordSize = readNum(s, &pos, 1, 127)
			case 'b':
				n := readNum(s, &pos, 1, 41)
				custom := n * 100000
				if custom < 32768 {
					custom = 32768
				}
				p.blockSize = (custom + 0x7fff) &^ 0x7fff
			case 'i':
				p.incremental = true
			case 'v':
				p.verbosity = readNum(s, &pos, 0, 255)
			case 'd':
				p.compress = false
			default:
				usage()
			}
		}
	}

	return p
}

func main() {
	p := parseArgs(os.Args[1:])
	run := cliutil.NewRun(p.verbosity)

	if p.verbosity != 0 {
		run.Progressf("szip starting: compress=%v order=%d block=%d record=%d incremental=%v",
			p.compress, p.order, p.blockSize, p.recordSize, p.incremental)
	}

	if p.verbosity >= 2 {
		dirLayout := szblock.ReportHeaderLayout(szblock.BlockDir{})
		slog.Info(fmt.Sprintf("BlockDir layout: size=%d optimal=%d wasted=%d wellAligned=%v",
			dirLayout.StructSize, dirLayout.OptimalSize, dirLayout.WastedBytes, dirLayout.IsWellAligned),
			slog.String("run", run.ID.String()))
		hdrLayout := szblock.ReportHeaderLayout(szblock.GlobalHeader{})
		slog.Info(fmt.Sprintf("GlobalHeader layout: size=%d optimal=%d wasted=%d wellAligned=%v",
			hdrLayout.StructSize, hdrLayout.OptimalSize, hdrLayout.WastedBytes, hdrLayout.IsWellAligned),
			slog.String("run", run.ID.String()))
	}

	in, err := agonio.OpenInput(p.inPath)
	if err != nil {
		run.Fatalf("szip: cannot open input: %v", err)
	}
	defer in.Close()

	out, err := agonio.OpenOutput(p.outPath)
	if err != nil {
		run.Fatalf("szip: cannot open output: %v", err)
	}
	defer out.Close()

	opt := pipeline.Options{
		BlockSize:   p.blockSize,
		Order:       p.order,
		RecordWidth: p.recordSize,
		Incremental: p.incremental,
	}

	if p.compress {
		w := newBitWriter()
		if err := pipeline.EncodeStream(w, in, opt); err != nil {
			run.Fatalf("szip: encode failed: %v", err)
		}
		if _, err := out.Write(w.Bytes()); err != nil {
			run.Fatalf("szip: write failed: %v", err)
		}
	} else {
		r := newBitReader(in)
		if err := pipeline.DecodeStream(r, out, opt); err != nil {
			run.Fatalf("szip: decode failed: %v", err)
		}
	}
}
