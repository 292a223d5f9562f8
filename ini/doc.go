// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

/*
Package ini provides a streaming tokenizer for the INI file format.
See https://en.wikipedia.org/wiki/INI_file.

Parse does not build a document. It hands each property to a Handler as soon
as the property's line has been read, so the caller decides how values are
stored. See package github.com/yourbase/config/inireader for a store with
typed lookups.

Syntax

An INI file is Unicode text encoded in UTF-8. A leading byte order mark is
ignored. The text is not canonicalized.

An INI file consists of zero or more properties. A property is a key and
value written on a single line, separated by an equals sign ('='):

	key=value

Keys are not allowed to contain semicolons (';'), contain equals signs ('='),
or start with a square bracket ('[' or ']'). Values may be surrounded by double
quotes ('"') to express values that begin or end with whitespace or to use
C-style escape sequences. Supported escape sequences:

	\n    U+000A line feed or newline
	\r    U+000D carriage return
	\t    U+0009 horizontal tab
	\\    U+005C backslash
	\"    U+0022 double quote
	\xFF  hex escape

Properties may be grouped into sections. A section is started by writing its
name in square brackets ('[' and ']') on its own line and ends at the next
section name or the end of file:

	[section]
	key1=value1
	key2=value2

Properties encountered before a section name are permitted. They are reported
in the global section, identified by the empty string ("").

Whitespace (characters with the Unicode White Space property) at the
beginning or end of lines, around section names, around property keys, and
around property values are ignored. If the first non-whitespace character in
a line is a semicolon (';') or a hash ('#'), then the line is treated as a
comment.

Options

With ParseOptions.InlineComments set, a ';' or '#' that follows whitespace
inside a value starts a comment that runs to the end of the line:

	host = example.com  ; the primary

With ParseOptions.Multiline set, an indented line that follows a property is
another value for the same key:

	[paths]
	search = /usr/lib
	  /usr/local/lib

Here the handler is called twice with section "paths" and key "search".

Repeated names

Keys and sections may repeat. Parse reports every occurrence in order; merging
them is up to the Handler.
*/
package ini
