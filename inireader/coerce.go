// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package inireader

import (
	"errors"
	"math"
	"strconv"
)

// parseInteger parses the signed integer at the start of s the way C's
// strtol does with base 0: leading whitespace is skipped, a "0x" prefix
// selects hexadecimal, a leading "0" selects octal, and parsing stops at the
// first character that is not a digit. ok is false if no digits were read.
func parseInteger(s string) (n int64, ok bool) {
	i := skipSpace(s)
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	base := uint64(10)
	switch {
	case i+2 < len(s) && s[i] == '0' && s[i+1]|0x20 == 'x' && isHexDigit(s[i+2]):
		base = 16
		i += 2
	case i < len(s) && s[i] == '0':
		base = 8
	}
	start := i
	var u uint64
	overflow := false
	for ; i < len(s); i++ {
		d, isDigit := digitValue(s[i])
		if !isDigit || d >= base {
			break
		}
		if u > (math.MaxUint64-d)/base {
			overflow = true
		} else if !overflow {
			u = u*base + d
		}
	}
	if i == start {
		return 0, false
	}
	if neg {
		if overflow || u > 1<<63 {
			return math.MinInt64, true
		}
		return -int64(u), true
	}
	if overflow || u > math.MaxInt64 {
		return math.MaxInt64, true
	}
	return int64(u), true
}

// parseReal parses the floating point number at the start of s the way C's
// strtod does: leading whitespace is skipped, "inf", "infinity" and "nan" are
// recognized in any case, hexadecimal mantissas are accepted, and parsing
// stops at the first character that cannot extend the number. ok is false if
// no number was read.
func parseReal(s string) (f float64, ok bool) {
	start := skipSpace(s)
	i := start
	sign := 1
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		if s[i] == '-' {
			sign = -1
		}
		i++
	}
	rest := s[i:]
	switch {
	case hasPrefixFold(rest, "inf"):
		return math.Inf(sign), true
	case hasPrefixFold(rest, "nan"):
		return math.NaN(), true
	}
	var text string
	if n, exp := scanHexFloat(rest); n > 0 {
		text = s[start:i+n] + exp
	} else if n := scanDecimal(rest); n > 0 {
		text = s[start : i+n]
	} else {
		return 0, false
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return f, true
}

// scanDecimal returns the length of the decimal floating point literal at the
// start of s, or 0 if there is none.
func scanDecimal(s string) int {
	i, digits := 0, 0
	for ; i < len(s) && isDecimalDigit(s[i]); i++ {
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for ; i < len(s) && isDecimalDigit(s[i]); i++ {
			digits++
		}
	}
	if digits == 0 {
		return 0
	}
	return i + scanExponent(s[i:], 'e')
}

// scanHexFloat returns the length of the hexadecimal floating point literal at
// the start of s, or 0 if there is none. Since strconv requires a binary
// exponent, exp is the suffix to append when s did not have one.
func scanHexFloat(s string) (n int, exp string) {
	if len(s) < 2 || s[0] != '0' || s[1]|0x20 != 'x' {
		return 0, ""
	}
	i, digits := 2, 0
	for ; i < len(s) && isHexDigit(s[i]); i++ {
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for ; i < len(s) && isHexDigit(s[i]); i++ {
			digits++
		}
	}
	if digits == 0 {
		return 0, ""
	}
	if e := scanExponent(s[i:], 'p'); e > 0 {
		return i + e, ""
	}
	return i, "p0"
}

// scanExponent returns the length of the exponent introduced by marker at the
// start of s, or 0 if there is no complete exponent.
func scanExponent(s string, marker byte) int {
	if len(s) == 0 || s[0]|0x20 != marker {
		return 0
	}
	i := 1
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	start := i
	for ; i < len(s) && isDecimalDigit(s[i]); i++ {
	}
	if i == start {
		return 0
	}
	return i
}

// parseBoolean matches the whole of s, ignoring ASCII case, against the
// boolean vocabulary.
func parseBoolean(s string) (b bool, ok bool) {
	switch asciiLower(s) {
	case "true", "yes", "on", "1":
		return true, true
	case "false", "no", "off", "0":
		return false, true
	default:
		return false, false
	}
}

// skipSpace returns the index of the first byte of s that is not C whitespace.
func skipSpace(s string) int {
	i := 0
	for i < len(s) {
		switch s[i] {
		case ' ', '\t', '\n', '\v', '\f', '\r':
			i++
		default:
			return i
		}
	}
	return i
}

func digitValue(c byte) (uint64, bool) {
	switch {
	case '0' <= c && c <= '9':
		return uint64(c - '0'), true
	case 'a' <= c && c <= 'f':
		return uint64(c-'a') + 10, true
	case 'A' <= c && c <= 'F':
		return uint64(c-'A') + 10, true
	default:
		return 0, false
	}
}

func isDecimalDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' ||
		'a' <= c && c <= 'f' ||
		'A' <= c && c <= 'F'
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && asciiLower(s[:len(prefix)]) == prefix
}

// asciiLower maps the ASCII letters A-Z in s to lower case and leaves every
// other byte alone, so the result does not depend on locale or Unicode
// tables.
func asciiLower(s string) string {
	i := 0
	for i < len(s) && !isUpper(s[i]) {
		i++
	}
	if i == len(s) {
		return s
	}
	b := []byte(s)
	for ; i < len(b); i++ {
		if isUpper(b[i]) {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}

func isUpper(c byte) bool {
	return 'A' <= c && c <= 'Z'
}
