package pipeline

import "github.com/dot5enko/agonzip/model"

// encodeRuns walks the sorted block and statistically codes it as a
// sequence of (symbol, run) pairs, one pair per maximal run of identical
// bytes (spec §4.8). The first pair is coded under the model's initial
// weighting; fix_after_first then switches it to steady state for every
// pair after that.
//
// The reference encoder marks the final run's end with a sentinel byte
// written one past the block (block[L] = ~block[L-1]) so a single scan
// loop handles every run including the last without a separate
// end-of-block check. A Go slice already bounds-checks cleanly, so the
// same loop is expressed directly against sorted[:length] instead.
func encodeRuns(enc *model.Encoder, sorted []byte, length int) {
	i := 0
	first := true
	for i < length {
		sym := sorted[i]
		run := 1
		for i+run < length && sorted[i+run] == sym {
			run++
		}

		enc.Encode(sym, uint32(run))
		if first {
			enc.FixAfterFirst()
			first = false
		}

		i += run
	}
}

// decodeRuns mirrors encodeRuns: it decodes (symbol, run) pairs until
// length raw bytes have been produced, tallying charcount as it goes
// (spec §4.8 "After decoding, charcount is the reconstructed count table
// needed by the unsort"). A decoded run that would overrun the
// remaining byte budget is corrupt input.
func decodeRuns(dec *model.Decoder, length int, charcount []uint32) ([]byte, error) {
	out := make([]byte, length)
	pos := 0
	bytesLeft := length
	first := true

	for bytesLeft > 0 {
		sym, run := dec.Decode()
		if first {
			dec.FixAfterFirst()
			first = false
		}

		if int(run) > bytesLeft {
			return nil, ErrCorrupt
		}

		for k := uint32(0); k < run; k++ {
			out[pos] = sym
			pos++
		}
		charcount[sym] += run
		bytesLeft -= int(run)
	}

	return out, nil
}
