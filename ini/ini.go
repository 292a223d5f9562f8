// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// A Handler receives the properties found by Parse.
type Handler interface {
	// Property is called once for each property in the order they appear in
	// the source. A non-nil error stops the parse.
	Property(section, key, value string) error
}

// HandlerFunc is an adapter to allow the use of ordinary functions as
// a Handler.
type HandlerFunc func(section, key, value string) error

// Property calls f(section, key, value).
func (f HandlerFunc) Property(section, key, value string) error {
	return f(section, key, value)
}

// ParseOptions holds optional parameters for Parse.
type ParseOptions struct {
	// Multiline treats an indented line that follows a property as another
	// value for that property's key. Section headers and comments are never
	// continuations.
	Multiline bool

	// InlineComments strips a trailing comment from a value. The comment must
	// start with ';' or '#' and be preceded by whitespace.
	InlineComments bool
}

// SyntaxError is returned by Parse when the source is not valid INI text or
// when the Handler rejected a property.
type SyntaxError struct {
	// Line is the 1-based line number where parsing stopped.
	Line int
	Err  error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("parse ini: line %d: %v", e.Line, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

var utf8BOM = []byte("\xef\xbb\xbf")

// Parse reads INI text from r and calls h for every property it finds. Nil
// options are treated identically as passing the zero value.
//
// Parse stops at the first syntax error and returns a *SyntaxError. Properties
// before the error have already been passed to h. Errors reading from r are
// wrapped and returned without a *SyntaxError.
//
// See the Syntax section in the package documentation for the format recognized
// by Parse.
func Parse(r io.Reader, h Handler, opts *ParseOptions) error {
	var o ParseOptions
	if opts != nil {
		o = *opts
	}
	s := bufio.NewScanner(r)
	section := ""
	prevKey := ""
	lineno := 1
	for ; s.Scan(); lineno++ {
		raw := s.Bytes()
		if lineno == 1 {
			raw = bytes.TrimPrefix(raw, utf8BOM)
		}
		first, _ := utf8.DecodeRune(raw)
		indented := unicode.IsSpace(first)
		line := bytes.TrimSpace(raw)
		if len(line) == 0 {
			continue
		}
		switch line[0] {
		case ';', '#':
			continue
		case '[':
			name, err := sectionName(line)
			if err != nil {
				return &SyntaxError{Line: lineno, Err: err}
			}
			section = name
			prevKey = ""
			continue
		}

		var key, value string
		var err error
		if o.Multiline && indented && prevKey != "" {
			key = prevKey
			value, err = parseValue(line, o.InlineComments)
		} else {
			key, value, err = parseProperty(line, o.InlineComments)
		}
		if err != nil {
			return &SyntaxError{Line: lineno, Err: err}
		}
		prevKey = key
		if err := h.Property(section, key, value); err != nil {
			return &SyntaxError{Line: lineno, Err: err}
		}
	}
	if err := s.Err(); err != nil {
		return fmt.Errorf("parse ini: line %d: %w", lineno, err)
	}
	return nil
}

func sectionName(line []byte) (string, error) {
	if line[len(line)-1] != ']' {
		return "", errors.New("missing section closing bracket")
	}
	name := bytes.TrimSpace(line[1 : len(line)-1])
	if len(name) == 0 {
		return "", errors.New("section name missing")
	}
	if bytes.ContainsAny(name, "[]") {
		return "", errors.New("unexpected brackets in section name")
	}
	return string(name), nil
}

func parseProperty(line []byte, inlineComments bool) (key, value string, err error) {
	i := bytes.IndexByte(line, '=')
	if i == -1 {
		return "", "", errors.New("could not find '='")
	}
	key = string(bytes.TrimRightFunc(line[:i], unicode.IsSpace))
	if !IsValidKey(key) {
		return "", "", fmt.Errorf("invalid key %q", key)
	}
	value, err = parseValue(bytes.TrimLeftFunc(line[i+1:], unicode.IsSpace), inlineComments)
	if err != nil {
		return "", "", err
	}
	return key, value, nil
}

// parseValue interprets v, which has no surrounding whitespace, as a property
// value.
func parseValue(v []byte, inlineComments bool) (string, error) {
	if !bytes.HasPrefix(v, []byte{'"'}) {
		if inlineComments {
			v = stripInlineComment(v)
		}
		return string(v), nil
	}
	n, err := scanQuoted(v)
	if err != nil {
		return "", err
	}
	if rest := bytes.TrimLeftFunc(v[n:], unicode.IsSpace); len(rest) > 0 {
		if !inlineComments || (rest[0] != ';' && rest[0] != '#') {
			return "", errors.New("trailing characters after string")
		}
	}
	return unquote(v[1 : n-1]), nil
}

func stripInlineComment(v []byte) []byte {
	for i := 1; i < len(v); i++ {
		if (v[i] == ';' || v[i] == '#') && (v[i-1] == ' ' || v[i-1] == '\t') {
			return bytes.TrimRightFunc(v[:i], unicode.IsSpace)
		}
	}
	return v
}

// scanQuoted validates the double-quoted string at the start of v and returns
// its length, including both quotes.
func scanQuoted(v []byte) (int, error) {
	for i := 1; i < len(v); i++ {
		switch v[i] {
		case '"':
			return i + 1, nil
		case '\\':
			if i+1 >= len(v) {
				return 0, errors.New("unexpected end of string")
			}
			switch v[i+1] {
			case 'n', 'r', 't', '\\', '"':
				i++
			case 'x':
				if i+3 >= len(v) {
					return 0, errors.New("unexpected end of string")
				}
				if !isHexDigit(v[i+2]) || !isHexDigit(v[i+3]) {
					return 0, fmt.Errorf("bad hex escape %s", v[i:i+4])
				}
				i += 3
			default:
				return 0, fmt.Errorf("unknown escape %q", v[i+1])
			}
		}
	}
	return 0, errors.New("unterminated string")
}

// unquote expands the escape sequences in the body of a string that has
// already been checked by scanQuoted.
func unquote(v []byte) string {
	sb := new(strings.Builder)
	sb.Grow(len(v))
	for i := 0; i < len(v); i++ {
		if v[i] != '\\' {
			sb.WriteByte(v[i])
			continue
		}
		i++
		switch v[i] {
		case 'r':
			sb.WriteByte('\r')
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case 'x':
			sb.WriteByte(fromHex(v[i+1])<<4 | fromHex(v[i+2]))
			i += 2
		case '"', '\\':
			sb.WriteByte(v[i])
		default:
			panic("unreachable")
		}
	}
	return sb.String()
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' ||
		'a' <= c && c <= 'f' ||
		'A' <= c && c <= 'F'
}

func fromHex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 0xa
	case 'A' <= c && c <= 'F':
		return c - 'A' + 0xa
	default:
		panic("invalid hex digit")
	}
}

// IsValidSection reports whether a string can be used as a section name in
// an INI file.
func IsValidSection(name string) bool {
	if name == "" {
		// Special case: global section.
		return true
	}
	first, _ := utf8.DecodeRuneInString(name)
	last, _ := utf8.DecodeLastRuneInString(name)
	if unicode.IsSpace(first) || unicode.IsSpace(last) {
		return false
	}
	return !strings.ContainsAny(name, "[]")
}

// IsValidKey reports whether a string can be used as a property key in
// an INI file.
func IsValidKey(key string) bool {
	if key == "" {
		return false
	}
	first, _ := utf8.DecodeRuneInString(key)
	last, _ := utf8.DecodeLastRuneInString(key)
	if unicode.IsSpace(first) || unicode.IsSpace(last) {
		return false
	}
	if first == '[' || first == ']' {
		return false
	}
	return !strings.ContainsAny(key, ";=#")
}
