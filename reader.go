package esregex

import "unicode/utf16"

// eof is returned by the reader for positions at or beyond the scan bound.
const eof rune = -1

func isHighSurrogate(r rune) bool {
	return (r >> 10) == (0xd800 >> 10)
}
func isLowSurrogate(r rune) bool {
	return (r >> 10) == (0xdc00 >> 10)
}

// reader is a cursor over UTF-16 code units with a four code point
// lookahead window. All indexes are code unit offsets into src.
//
// In unicode mode a high surrogate directly followed by a low surrogate is
// decoded as one code point two units wide. Otherwise every code unit is a
// code point of its own.
type reader struct {
	src     []uint16
	end     int
	pos     int
	unicode bool

	cp [4]rune
	// Width in code units of cp[0], cp[1] and cp[2]. The width of cp[3] is
	// computed when it slides into the window.
	w [3]int
}

func (r *reader) reset(src []uint16, start, end int, unicode bool) {
	r.src = src
	r.end = end
	r.unicode = unicode
	r.rewind(start)
}

func (r *reader) at(i int) rune {
	if i >= r.end {
		return eof
	}
	c := rune(r.src[i])
	if !r.unicode || !isHighSurrogate(c) || i+1 >= r.end {
		return c
	}
	lo := rune(r.src[i+1])
	if !isLowSurrogate(lo) {
		return c
	}
	return utf16.DecodeRune(c, lo)
}

func (r *reader) width(c rune) int {
	if c > 0xffff {
		return 2
	}
	return 1
}

func (r *reader) index() int {
	return r.pos
}

// peek returns the code point n positions after the cursor, n in [0, 3].
func (r *reader) peek(n int) rune {
	return r.cp[n]
}

func (r *reader) current() rune {
	return r.cp[0]
}

func (r *reader) rewind(i int) {
	r.pos = i
	r.cp[0] = r.at(i)
	r.w[0] = r.width(r.cp[0])
	r.cp[1] = r.at(i + r.w[0])
	r.w[1] = r.width(r.cp[1])
	r.cp[2] = r.at(i + r.w[0] + r.w[1])
	r.w[2] = r.width(r.cp[2])
	r.cp[3] = r.at(i + r.w[0] + r.w[1] + r.w[2])
}

func (r *reader) advance() {
	if r.cp[0] == eof {
		return
	}
	r.pos += r.w[0]
	r.cp[0], r.cp[1], r.cp[2] = r.cp[1], r.cp[2], r.cp[3]
	r.w[0], r.w[1] = r.w[1], r.w[2]
	r.w[2] = r.width(r.cp[2])
	r.cp[3] = r.at(r.pos + r.w[0] + r.w[1] + r.w[2])
}

// The eat methods never match eof.
func (r *reader) eat(c rune) bool {
	if c == eof || r.cp[0] != c {
		return false
	}
	r.advance()
	return true
}

func (r *reader) eat2(c1, c2 rune) bool {
	if c1 == eof || c2 == eof || r.cp[0] != c1 || r.cp[1] != c2 {
		return false
	}
	r.advance()
	r.advance()
	return true
}

func (r *reader) eat3(c1, c2, c3 rune) bool {
	if c1 == eof || c2 == eof || c3 == eof ||
		r.cp[0] != c1 || r.cp[1] != c2 || r.cp[2] != c3 {
		return false
	}
	r.advance()
	r.advance()
	r.advance()
	return true
}

func (r *reader) stringInRange(start, end int) string {
	return string(utf16.Decode(r.src[start:end]))
}
