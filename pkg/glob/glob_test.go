// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package glob

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		pattern string
		name    string
		want    bool
	}{
		{"*", "anything", true},
		{"*", "", true},
		{"", "anything", true},
		{"foo*", "foo", true},
		{"foo*", "foobar", true},
		{"foo*", "barfoo", false},
		{"*api*", "orders-api-prod", true},
		{"web-?", "web-1", true},
		{"web-?", "web-12", false},
		{"web-?", "web-", false},
		{"exact", "exact", true},
		{"exact", "Exact", false},
		{"web-[ab]", "web-a", true},
		{"web-[ab]", "web-c", false},
		{"{api,web}-*", "web-1", true},
		{"*", "Contoso/Prod", true},
		{"*", "a/b/c", true},
		{"a?b", "a/b", true},
		{"Contoso/*", "Contoso/Prod", true},
		{"Contoso/*", "Fabrikam/Prod", false},
		{"*/Prod", "Contoso/Prod", true},
		{"a[/]b", "a/b", true},
		{"**", "a/b", true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"_"+tt.name, func(t *testing.T) {
			m, err := Compile(tt.pattern)
			require.NoError(t, err)
			require.Equal(t, tt.want, m.Match(tt.name))
		})
	}
}

func TestCompile(t *testing.T) {
	t.Run("EmptyDefaultsToMatchAll", func(t *testing.T) {
		m, err := Compile("")
		require.NoError(t, err)
		require.Equal(t, MatchAll, m.Pattern())
	})

	t.Run("Invalid", func(t *testing.T) {
		m, err := Compile("web-[")
		require.Nil(t, m)
		require.True(t, errors.Is(err, ErrBadPattern))
		require.Contains(t, err.Error(), "web-[")
	})

	t.Run("MustCompilePanics", func(t *testing.T) {
		require.Panics(t, func() { MustCompile("{unterminated") })
	})
}
