// core/marker/iupac.go
package marker

/* -------------------------- IUPAC lookup table -------------------------- */

// bit0=A bit1=C bit2=G bit3=T
var iupacMask [256]byte

func init() {
	set := func(c byte, bits byte) {
		iupacMask[c] = bits
		if c >= 'A' && c <= 'Z' {
			iupacMask[c+'a'-'A'] = bits
		}
	}
	set('A', 1)
	set('C', 2)
	set('G', 4)
	set('T', 8)
	set('U', 8)
	set('R', 1|4)     // A/G
	set('Y', 2|8)     // C/T
	set('S', 2|4)     // C/G
	set('W', 1|8)     // A/T
	set('K', 4|8)     // G/T
	set('M', 1|2)     // A/C
	set('B', 2|4|8)   // C/G/T
	set('D', 1|4|8)   // A/G/T
	set('H', 1|2|8)   // A/C/T
	set('V', 1|2|4)   // A/C/G
	set('N', 1|2|4|8) // any (marker side only)
}

// Mask returns the IUPAC bit mask for c, or 0 when c is not an IUPAC code.
func Mask(c byte) byte { return iupacMask[c] }

// ReadMask returns the mask a read base contributes to a comparison.
// Only unambiguous bases count; N and anything else in a read always
// mismatch so that N-runs do not produce spurious hits.
func ReadMask(c byte) byte {
	switch c {
	case 'A', 'a', 'C', 'c', 'G', 'g', 'T', 't', 'U', 'u':
		return iupacMask[c]
	}
	return 0
}

// Valid reports whether every byte of seq is an IUPAC nucleotide code.
// It returns the offending index when it is not.
func Valid(seq []byte) (int, bool) {
	for i, c := range seq {
		if iupacMask[c] == 0 {
			return i, false
		}
	}
	return -1, true
}
