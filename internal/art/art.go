// Package art renders a one-dimensional random-walk fingerprint of a
// digest, in the spirit of OpenSSH randomart. Two digests that differ in
// even one bit walk differently, so the drawing gives a human a quick
// visual check that two fortunes came from different seeds.
package art

import "github.com/elzup/hash-omikuji/internal/omikuji"

// Width is the number of cells on the circular track.
const Width = 16

// startPos is fixed; the walk always begins at cell 0.
const startPos = 0

// Render walks the digest's 256 bits as 128 two-bit movement codes over a
// circular 16-cell track and draws the result. Codes are consumed most
// significant pair first within each byte; code values 0..3 advance the
// position by that many cells. Each step increments a saturating visit
// counter on the cell it lands on.
//
// Glyphs: X marks a cell that is both start and end of the walk, S start
// only, E end only; other cells show . for zero visits, + for exactly
// one, # for more.
func Render(d omikuji.Digest) string {
	var visits [Width]uint8
	pos := 0

	for _, b := range d {
		for shift := 6; shift >= 0; shift -= 2 {
			step := int(b>>uint(shift)) & 0b11
			pos = wrap(pos + step)
			if visits[pos] < 255 {
				visits[pos]++
			}
		}
	}
	endPos := pos

	var cells [Width]byte
	for i, count := range visits {
		switch {
		case i == startPos && i == endPos:
			cells[i] = 'X'
		case i == startPos:
			cells[i] = 'S'
		case i == endPos:
			cells[i] = 'E'
		case count == 0:
			cells[i] = '.'
		case count == 1:
			cells[i] = '+'
		default:
			cells[i] = '#'
		}
	}
	return string(cells[:])
}

// wrap reduces a position onto the track with a floor modulo, so the
// result is in [0, Width) even for a negative argument. Steps only ever
// move forward, but the reduction must not silently depend on that.
func wrap(n int) int {
	n %= Width
	if n < 0 {
		n += Width
	}
	return n
}
