package mathexpr

import "unicode/utf8"

// scanner is the transient state of a single Eval call: the input, the
// current byte offset, and the byte at that offset. ch is NUL once the
// scanner has passed the end of the input.
type scanner struct {
	src string
	pos int
	ch  byte
}

func newScanner(src string) *scanner {
	s := &scanner{src: src}
	if len(src) > 0 {
		s.ch = src[0]
	}
	return s
}

// advance moves the scanner forward one byte and refreshes ch.
func (s *scanner) advance() {
	s.pos++
	if s.pos < len(s.src) {
		s.ch = s.src[s.pos]
	} else {
		s.ch = 0
	}
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.src)
}

func (s *scanner) skipSpace() {
	for s.ch == ' ' || s.ch == '\t' || s.ch == '\r' || s.ch == '\n' || s.ch == '\v' || s.ch == '\f' {
		s.advance()
	}
}

// accept skips whitespace and then consumes c if it is the current character.
// A failed accept leaves the scanner on the character it inspected.
func (s *scanner) accept(c byte) bool {
	s.skipSpace()
	if s.ch != c {
		return false
	}
	s.advance()
	return true
}

// col is the 1-based column of the current position, counted in runes.
// Errors report columns rather than byte offsets.
func (s *scanner) col() int {
	return utf8.RuneCountInString(s.src[:s.pos]) + 1
}

// rune decodes the full rune at the current position, for error messages.
func (s *scanner) rune() rune {
	if s.eof() {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s.src[s.pos:])
	return r
}

// scanNumber scans a numeric literal: an optional run of digits, an optional
// fraction, and an optional exponent. A lone leading '.' is permitted, so the
// result may fail to parse as a number; the caller decides what that means.
func (s *scanner) scanNumber() string {
	start := s.pos
	for isDigit(s.ch) {
		s.advance()
	}
	if s.ch == '.' {
		s.advance()
		for isDigit(s.ch) {
			s.advance()
		}
	}
	if s.ch == 'e' || s.ch == 'E' {
		// Only an exponent if digits follow; otherwise the e starts an
		// identifier, most likely the constant e itself.
		k := s.pos + 1
		if k < len(s.src) && (s.src[k] == '+' || s.src[k] == '-') {
			k++
		}
		if k < len(s.src) && isDigit(s.src[k]) {
			s.advance()
			if s.ch == '+' || s.ch == '-' {
				s.advance()
			}
			for isDigit(s.ch) {
				s.advance()
			}
		}
	}
	return s.src[start:s.pos]
}

// scanIdent scans a maximal run of identifier characters.
func (s *scanner) scanIdent() string {
	start := s.pos
	for isIdent(s.ch) {
		s.advance()
	}
	return s.src[start:s.pos]
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isIdentStart(c byte) bool {
	return c == '_' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isIdent(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}
