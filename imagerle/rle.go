// Package imagerle implements agonrle, the RGBA2222 image run-length
// codec (spec §1: "out of scope, collaborator"). The byte grammar is
// carried over unchanged from original_source/build/agz/rlecompress.cpp
// (Encode) and original_source/agon-utils/src/rledecompress.cpp (Decode):
//
//	transparent run:   0x40 | (count-1), count in [1,64], count==1 -> 0x40
//	opaque literal:    0x80 | color                    (run length 1)
//	opaque run:        0x80 | (count-1), count in [2,64], followed by
//	                   a literal byte 0xC0 | color
//
// A pixel is transparent when its top two bits are both zero; its low six
// bits are discarded (transparent pixels decode back to the single native
// value 0x00), matching the reference encoder's lossy treatment of alpha.
package imagerle

// maxRun is the longest run either command can express in six bits.
const maxRun = 64

// Encode compresses a buffer of RGBA2222 pixels using the agonrle scheme.
func Encode(input []byte) []byte {
	out := make([]byte, 0, len(input))

	for i := 0; i < len(input); {
		pixel := input[i]
		transparent := pixel&0xC0 == 0x00
		color := pixel & 0x3F

		count := 1
		for i+count < len(input) && input[i+count] == pixel && count < maxRun {
			count++
		}

		if transparent {
			if count == 1 {
				out = append(out, 0x40)
			} else {
				out = append(out, 0x40|byte(count-1))
			}
		} else {
			if count == 1 {
				out = append(out, 0x80|color)
			} else {
				out = append(out, 0x80|byte(count-1), 0xC0|color)
			}
		}

		i += count
	}

	return out
}

// Decode expands agonrle-encoded bytes back into raw RGBA2222 pixels.
func Decode(input []byte) []byte {
	out := make([]byte, 0, len(input))

	for i := 0; i < len(input); {
		cmd := input[i]
		i++
		typ := cmd & 0xC0

		switch typ {
		case 0x40:
			count := int(cmd&0x3F) + 1
			for j := 0; j < count; j++ {
				out = append(out, 0x00)
			}

		case 0x80:
			if i < len(input) && input[i]&0xC0 == 0xC0 {
				count := int(cmd&0x3F) + 1
				literal := input[i]
				i++
				for j := 0; j < count; j++ {
					out = append(out, literal)
				}
			} else {
				out = append(out, 0xC0|(cmd&0x3F))
			}

		default:
			return out
		}
	}

	return out
}
