// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

/*
Package pathglob compiles one glob path pattern into a reusable matcher for directory walkers.

A pattern is rooted at an absolute location when it is compiled: relative patterns are
joined to the working directory, "./x" is expanded in place, and the working directory
is glob-escaped so its own metacharacters stay literal.

Basic flow:
  - compile a pattern (`New` / `NewWithOptions`)
  - start the walk at `SearchPath`, the longest literal directory prefix
  - descend into a directory only when `PartialMatch` reports true
  - ask `Match` for every visited entry and honor `MatchDirectoryOnly`

Syntax:
  - "*" and "?" match within one path component, "**" matches any number of components
  - "[abc]", "[a-z]", "[!abc]" are character sets; "[x]" is the literal "x"
  - "\" escapes the next character on platforms where it is not the separator
  - a trailing separator restricts matches to directories
  - leading "!" markers toggle `Negate`; the walker decides what negation means

Dot files match like any other name. Braces, extended globs and comments are not
special. Case sensitivity, separator and escape rules come from `Platform`.

Pattern lists can be read with `ParsePatterns` / `LoadPatternsFile`.
*/
package pathglob
