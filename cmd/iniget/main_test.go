// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"bytes"
	"context"
	"io/ioutil"
	"path/filepath"
	"testing"

	"zombiezen.com/go/log/testlog"
)

const testConfig = `[Server]
Host = example.com
Port = 0x1F90
Ratio = 0.75
Debug = on
Tags = a
Tags = b
`

func TestCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.ini")
	if err := ioutil.WriteFile(path, []byte(testConfig), 0o666); err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "String",
			args: []string{path, "server", "host"},
			want: "example.com\n",
		},
		{
			name: "StringDefault",
			args: []string{"--default=none", path, "server", "missing"},
			want: "none\n",
		},
		{
			name: "Repeated",
			args: []string{path, "SERVER", "TAGS"},
			want: "a\nb\n",
		},
		{
			name: "Integer",
			args: []string{"--type=int", path, "server", "port"},
			want: "8080\n",
		},
		{
			name: "IntegerDefault",
			args: []string{"-t", "int", "-d", "-1", path, "server", "host"},
			want: "-1\n",
		},
		{
			name: "Real",
			args: []string{"--type=real", path, "server", "ratio"},
			want: "0.75\n",
		},
		{
			name: "Bool",
			args: []string{"--type=bool", path, "server", "debug"},
			want: "true\n",
		},
		{
			name: "BoolDefault",
			args: []string{"--type=bool", "--default=true", path, "server", "host"},
			want: "true\n",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctx := testlog.WithTB(context.Background(), t)
			out := new(bytes.Buffer)
			c := newCommand()
			c.SetArgs(test.args)
			c.SetOut(out)
			if err := c.ExecuteContext(ctx); err != nil {
				t.Fatal("Execute:", err)
			}
			if got := out.String(); got != test.want {
				t.Errorf("output = %q; want %q", got, test.want)
			}
		})
	}
}

func TestCommandErrors(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.ini")
	if err := ioutil.WriteFile(good, []byte(testConfig), 0o666); err != nil {
		t.Fatal(err)
	}
	bad := filepath.Join(dir, "bad.ini")
	if err := ioutil.WriteFile(bad, []byte("[s]\nnot a property\n"), 0o666); err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		args []string
	}{
		{"MissingFile", []string{filepath.Join(dir, "nope.ini"), "s", "k"}},
		{"SyntaxError", []string{bad, "s", "k"}},
		{"UnknownType", []string{"--type=duration", good, "server", "host"}},
		{"BadDefault", []string{"--type=int", "--default=many", good, "server", "host"}},
		{"WrongArgCount", []string{good, "server"}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctx := testlog.WithTB(context.Background(), t)
			c := newCommand()
			c.SetArgs(test.args)
			c.SetOut(new(bytes.Buffer))
			c.SetErr(new(bytes.Buffer))
			err := c.ExecuteContext(ctx)
			if err == nil {
				t.Fatal("Execute did not return an error")
			}
			t.Log("Execute:", err)
		})
	}
}
