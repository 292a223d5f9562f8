// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// Package inireader reads an INI file into case-insensitive name/value pairs
// with typed, default-valued lookups.
//
// A Reader is built in one pass over its source and never changes afterward,
// so it can be read by multiple concurrent goroutines. Lookups never fail:
// a missing key or a value that does not parse as the requested type yields
// the caller's default.
package inireader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/yourbase/config/ini"
	"zombiezen.com/go/log"
)

// keySeparator joins a section and a name into a lookup key. A separator
// inside either part can make two different pairs share a key: section "a=b"
// with name "c" is the same key as section "a" with name "b=c".
const keySeparator = "="

// parseOptions are the syntax options used for every Reader.
var parseOptions = ini.ParseOptions{
	Multiline:      true,
	InlineComments: true,
}

// A Reader holds the values of a parsed INI source. The zero value and the nil
// pointer both behave like an empty source that failed to load.
type Reader struct {
	values   map[string]string
	sections map[string]struct{}
	status   int
	err      error
}

// Load opens the file at path and parses it. Load always returns a non-nil
// Reader; check ParseError (or Err) before trusting its values.
func Load(ctx context.Context, path string) *Reader {
	f, err := os.Open(path)
	if err != nil {
		log.Warnf(ctx, "Could not load %s: %v", path, err)
		return &Reader{
			status: -1,
			err:    fmt.Errorf("load ini: %w", err),
		}
	}
	defer f.Close() // Close errors irrelevant for a read-only file.
	return parse(ctx, path, f)
}

// New parses the INI text read from src. New always returns a non-nil Reader;
// check ParseError (or Err) before trusting its values.
func New(ctx context.Context, src io.Reader) *Reader {
	return parse(ctx, "<stream>", src)
}

func parse(ctx context.Context, name string, src io.Reader) *Reader {
	r := &Reader{
		values:   make(map[string]string),
		sections: make(map[string]struct{}),
	}
	err := ini.Parse(src, valueHandler{r}, &parseOptions)
	var syntaxErr *ini.SyntaxError
	switch {
	case err == nil:
		log.Debugf(ctx, "Loaded %d keys from %s", len(r.values), name)
		return r
	case errors.As(err, &syntaxErr):
		r.status = syntaxErr.Line
	default:
		r.status = -1
	}
	r.err = fmt.Errorf("load ini %s: %w", name, err)
	log.Warnf(ctx, "%v", r.err)
	return r
}

// valueHandler feeds the properties found by the tokenizer into a Reader.
// It is only used while the Reader is being built.
type valueHandler struct {
	r *Reader
}

// Property appends value to the text stored for (section, key). A key seen
// more than once accumulates its values separated by newlines.
func (h valueHandler) Property(section, key, value string) error {
	k := makeKey(section, key)
	if prev := h.r.values[k]; prev != "" {
		value = prev + "\n" + value
	}
	h.r.values[k] = value
	h.r.sections[asciiLower(section)] = struct{}{}
	return nil
}

// makeKey returns the case-insensitive lookup key for a section and name.
func makeKey(section, name string) string {
	return asciiLower(section + keySeparator + name)
}

// ParseError returns 0 if the source was parsed successfully, -1 if it could
// not be opened or read, or the 1-based line number of the first syntax error.
// A nil Reader returns -1.
func (r *Reader) ParseError() int {
	if r == nil {
		return -1
	}
	return r.status
}

// Err returns the error that stopped the parse or nil if there was none.
func (r *Reader) Err() error {
	if r == nil {
		return errors.New("load ini: nil reader")
	}
	return r.err
}

// Get returns the text stored for the given section and name, or
// defaultValue if there is none. Section and name are matched without regard
// to ASCII case. If the key appeared more than once in the source, the values
// are joined with newlines in the order they appeared.
func (r *Reader) Get(section, name, defaultValue string) string {
	if r == nil {
		return defaultValue
	}
	v, ok := r.values[makeKey(section, name)]
	if !ok {
		return defaultValue
	}
	return v
}

// GetInteger returns the value for the given section and name as an integer.
// Decimal ("1234"), hexadecimal ("0x4D2") and octal ("02322") forms are
// accepted, and anything after the leading number is ignored. Values out of
// range saturate. If the key is missing or its value does not start with a
// number, GetInteger returns defaultValue.
func (r *Reader) GetInteger(section, name string, defaultValue int64) int64 {
	n, ok := parseInteger(r.Get(section, name, ""))
	if !ok {
		return defaultValue
	}
	return n
}

// GetReal returns the value for the given section and name as a floating
// point number, such as "3.14" or "1e10". Anything after the leading number is
// ignored. If the key is missing or its value does not start with a number,
// GetReal returns defaultValue.
func (r *Reader) GetReal(section, name string, defaultValue float64) float64 {
	f, ok := parseReal(r.Get(section, name, ""))
	if !ok {
		return defaultValue
	}
	return f
}

// GetBoolean returns the value for the given section and name as a boolean.
// "true", "yes", "on" and "1" are true; "false", "no", "off" and "0" are
// false. Case is ignored but the whole value must match. Anything else,
// including a missing key, returns defaultValue.
func (r *Reader) GetBoolean(section, name string, defaultValue bool) bool {
	b, ok := parseBoolean(r.Get(section, name, ""))
	if !ok {
		return defaultValue
	}
	return b
}

// HasSection reports whether at least one property was read in the named
// section. The empty string names properties outside any section.
func (r *Reader) HasSection(section string) bool {
	if r == nil {
		return false
	}
	_, ok := r.sections[asciiLower(section)]
	return ok
}

// HasValue reports whether a value was read for the given section and name.
func (r *Reader) HasValue(section, name string) bool {
	if r == nil {
		return false
	}
	_, ok := r.values[makeKey(section, name)]
	return ok
}

// Sections returns the lower-cased names of the sections that have properties,
// sorted.
func (r *Reader) Sections() []string {
	if r == nil || len(r.sections) == 0 {
		return nil
	}
	names := make([]string, 0, len(r.sections))
	for name := range r.sections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
