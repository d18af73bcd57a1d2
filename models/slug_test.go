package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSlug(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "simple", input: "Shoes", want: "shoes"},
		{name: "already lowercase", input: "shoes", want: "shoes"},
		{name: "spaces to hyphens", input: "Running Shoes", want: "running-shoes"},
		{name: "diacritics stripped", input: "Café Crème", want: "cafe-creme"},
		{name: "ampersand substituted", input: "Shoes & Boots", want: "shoes-and-boots"},
		{name: "punctuation collapsed", input: "Shoes, Boots, Sandals!", want: "shoes-boots-sandals"},
		{name: "surrounding whitespace", input: "  Winter Coat  ", want: "winter-coat"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewSlug(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewSlugDeterministic(t *testing.T) {
	first, err := NewSlug("Café Crème Deluxe")
	require.NoError(t, err)
	second, err := NewSlug("Café Crème Deluxe")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// Idempotent: slugging a slug changes nothing.
	again, err := NewSlug(first)
	require.NoError(t, err)
	assert.Equal(t, first, again)
}

func TestNewSlugCaseInsensitiveCollision(t *testing.T) {
	// "Shoes" and "shoes" normalize to the same slug, which is what makes
	// the second creation a uniqueness conflict at the store.
	a, err := NewSlug("Shoes")
	require.NoError(t, err)
	b, err := NewSlug("shoes")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, "shoes", a)
}

func TestResolveSlug(t *testing.T) {
	stored := map[string]bool{}
	taken := func(s string) (bool, error) { return stored[s], nil }

	// First creation derives "shoes" from "Shoes".
	first, err := ResolveSlug("Shoes", "", taken)
	require.NoError(t, err)
	assert.Equal(t, "shoes", first)
	stored[first] = true

	// "shoes" normalizes to the same slug: the second creation is a
	// uniqueness conflict, not a silently suffixed variant.
	_, err = ResolveSlug("shoes", "", taken)
	assert.ErrorIs(t, err, ErrDuplicateSlug)

	// A caller-supplied slug is checked the same way.
	_, err = ResolveSlug("Footwear", "shoes", taken)
	assert.ErrorIs(t, err, ErrDuplicateSlug)

	// A free slug passes through verbatim.
	got, err := ResolveSlug("Footwear", "boots", taken)
	require.NoError(t, err)
	assert.Equal(t, "boots", got)
}

func TestResolveSlugInvalidName(t *testing.T) {
	taken := func(string) (bool, error) { return false, nil }
	_, err := ResolveSlug("!!!", "", taken)
	assert.ErrorIs(t, err, ErrInvalidName)
}

func TestNewSlugInvalidName(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "whitespace only", input: "   "},
		{name: "punctuation only", input: "!!! ???"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSlug(tt.input)
			assert.ErrorIs(t, err, ErrInvalidName)
		})
	}
}
