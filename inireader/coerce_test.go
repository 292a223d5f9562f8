// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package inireader

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestParseInteger(t *testing.T) {
	tests := []struct {
		s      string
		want   int64
		wantOK bool
	}{
		{"", 0, false},
		{" ", 0, false},
		{"abc", 0, false},
		{"-", 0, false},
		{"- 1", 0, false},
		{"0", 0, true},
		{"42", 42, true},
		{"+5", 5, true},
		{"  \t-17", -17, true},
		{"0x2A", 42, true},
		{"0X2a", 42, true},
		{"-0x10", -16, true},
		{"0x4D2", 1234, true},
		{"010", 8, true},
		{"08", 0, true},
		{"0x", 0, true},
		{"0xg", 0, true},
		{"12abc", 12, true},
		{"1 2", 1, true},
		{"42\n43", 42, true},
		{"9223372036854775807", math.MaxInt64, true},
		{"9223372036854775808", math.MaxInt64, true},
		{"-9223372036854775808", math.MinInt64, true},
		{"-9223372036854775809", math.MinInt64, true},
		{"99999999999999999999999", math.MaxInt64, true},
		{"0x7fffffffffffffff", math.MaxInt64, true},
		{"0xffffffffffffffffff", math.MaxInt64, true},
	}
	for _, test := range tests {
		got, ok := parseInteger(test.s)
		if got != test.want || ok != test.wantOK {
			t.Errorf("parseInteger(%q) = %d, %t; want %d, %t", test.s, got, ok, test.want, test.wantOK)
		}
	}
}

func TestParseReal(t *testing.T) {
	tests := []struct {
		s      string
		want   float64
		wantOK bool
	}{
		{"", 0, false},
		{".", 0, false},
		{"-", 0, false},
		{"abc", 0, false},
		{"e5", 0, false},
		{"3.5", 3.5, true},
		{"3.14", 3.14, true},
		{"42", 42, true},
		{"1e10", 1e10, true},
		{"-2.5e-3", -2.5e-3, true},
		{"  .5x", 0.5, true},
		{"1.", 1, true},
		{"1e", 1, true},
		{"1e+", 1, true},
		{"2E2", 200, true},
		{"0x", 0, true},
		{"0x1.8", 1.5, true},
		{"0x10p-1", 8, true},
		{"-0x1P2", -4, true},
		{"inf", math.Inf(1), true},
		{"-Infinity", math.Inf(-1), true},
		{"+INFx", math.Inf(1), true},
		{"nan", math.NaN(), true},
		{"NaN(123)", math.NaN(), true},
		{"1e400", math.Inf(1), true},
		{"1e-400", 0, true},
		{"3.5\n4.5", 3.5, true},
	}
	for _, test := range tests {
		got, ok := parseReal(test.s)
		if !cmp.Equal(got, test.want, cmpopts.EquateNaNs()) || ok != test.wantOK {
			t.Errorf("parseReal(%q) = %g, %t; want %g, %t", test.s, got, ok, test.want, test.wantOK)
		}
	}
}

func TestParseBoolean(t *testing.T) {
	tests := []struct {
		s      string
		want   bool
		wantOK bool
	}{
		{"true", true, true},
		{"TRUE", true, true},
		{"Yes", true, true},
		{"on", true, true},
		{"1", true, true},
		{"false", false, true},
		{"No", false, true},
		{"OFF", false, true},
		{"0", false, true},
		{"", false, false},
		{"maybe", false, false},
		{"10", false, false},
		{"yess", false, false},
		{" yes", false, false},
		{"y", false, false},
		{"yes\nno", false, false},
	}
	for _, test := range tests {
		got, ok := parseBoolean(test.s)
		if got != test.want || ok != test.wantOK {
			t.Errorf("parseBoolean(%q) = %t, %t; want %t, %t", test.s, got, ok, test.want, test.wantOK)
		}
	}
}

func TestASCIILower(t *testing.T) {
	tests := []struct {
		s    string
		want string
	}{
		{"", ""},
		{"already lower", "already lower"},
		{"MiXeD=Case", "mixed=case"},
		{"ÉTÉ", "ÉtÉ"},
		{"İI", "İi"},
	}
	for _, test := range tests {
		if got := asciiLower(test.s); got != test.want {
			t.Errorf("asciiLower(%q) = %q; want %q", test.s, got, test.want)
		}
	}
}
