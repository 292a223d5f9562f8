// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// iniget prints one value from an INI file.
//
//	iniget [--type string|int|real|bool] [--default VALUE] FILE SECTION NAME
//
// Section and name are matched without regard to case. If the key is missing
// or its value does not parse as the requested type, the default is printed.
// iniget exits with a non-zero status if the file can't be read or has a
// syntax error.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/yourbase/config/inireader"
)

func main() {
	if err := newCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "iniget:", err)
		os.Exit(1)
	}
}

type options struct {
	typ          string
	defaultValue string
}

func newCommand() *cobra.Command {
	opts := new(options)
	c := &cobra.Command{
		Use:           "iniget [flags] FILE SECTION NAME",
		Short:         "Print a value from an INI file",
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), opts, args[0], args[1], args[2])
		},
	}
	c.Flags().StringVarP(&opts.typ, "type", "t", "string", "value `type`: string, int, real or bool")
	c.Flags().StringVarP(&opts.defaultValue, "default", "d", "", "`value` to print if the key is missing or does not parse")
	return c
}

func run(ctx context.Context, out io.Writer, opts *options, path, section, name string) error {
	r := inireader.Load(ctx, path)
	if r.ParseError() != 0 {
		return r.Err()
	}
	switch opts.typ {
	case "string":
		_, err := fmt.Fprintln(out, r.Get(section, name, opts.defaultValue))
		return err
	case "int", "integer":
		var dflt int64
		if opts.defaultValue != "" {
			var err error
			dflt, err = strconv.ParseInt(opts.defaultValue, 0, 64)
			if err != nil {
				return fmt.Errorf("--default: %w", err)
			}
		}
		_, err := fmt.Fprintln(out, r.GetInteger(section, name, dflt))
		return err
	case "real":
		var dflt float64
		if opts.defaultValue != "" {
			var err error
			dflt, err = strconv.ParseFloat(opts.defaultValue, 64)
			if err != nil {
				return fmt.Errorf("--default: %w", err)
			}
		}
		_, err := fmt.Fprintln(out, strconv.FormatFloat(r.GetReal(section, name, dflt), 'g', -1, 64))
		return err
	case "bool", "boolean":
		var dflt bool
		if opts.defaultValue != "" {
			var err error
			dflt, err = strconv.ParseBool(opts.defaultValue)
			if err != nil {
				return fmt.Errorf("--default: %w", err)
			}
		}
		_, err := fmt.Fprintln(out, r.GetBoolean(section, name, dflt))
		return err
	default:
		return fmt.Errorf("unknown --type %q", opts.typ)
	}
}
