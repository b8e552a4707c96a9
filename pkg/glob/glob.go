// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package glob matches names against shell-style wildcard patterns.
package glob

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// MatchAll is the pattern used when no filter is supplied.
const MatchAll = "*"

var ErrBadPattern = errors.New("invalid glob pattern")

// Matcher reports whether a name matches a compiled pattern.
type Matcher interface {
	Match(name string) bool
	Pattern() string
}

// doublestar treats "/" as a path separator that wildcards never cross. Names are not paths, so "/"
// is swapped for a rune that cannot appear in an Azure display name on both sides of the match.
const separatorStandIn = "\x00"

type doublestarMatcher struct {
	pattern      string
	matchPattern string
}

// Compile validates pattern and returns a Matcher for it. An empty pattern matches everything.
//
// `*` matches any run of characters, `?` matches exactly one character, and `[...]` and `{a,b}`
// are supported as in a POSIX shell.
func Compile(pattern string) (Matcher, error) {
	if pattern == "" {
		pattern = MatchAll
	}

	matchPattern := withoutSeparators(pattern)
	if !doublestar.ValidatePattern(matchPattern) {
		return nil, fmt.Errorf("%w: '%s'", ErrBadPattern, pattern)
	}

	return &doublestarMatcher{
		pattern:      pattern,
		matchPattern: matchPattern,
	}, nil
}

// MustCompile is like Compile but panics if the pattern is invalid.
func MustCompile(pattern string) Matcher {
	m, err := Compile(pattern)
	if err != nil {
		panic(err)
	}

	return m
}

func (m *doublestarMatcher) Match(name string) bool {
	// Validated in Compile.
	return doublestar.MatchUnvalidated(m.matchPattern, withoutSeparators(name))
}

func (m *doublestarMatcher) Pattern() string {
	return m.pattern
}

func withoutSeparators(value string) string {
	return strings.ReplaceAll(value, "/", separatorStandIn)
}
