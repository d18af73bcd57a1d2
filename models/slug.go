package models

import "github.com/gosimple/slug"

// NewSlug derives a URL-safe slug from a human-readable name: lowercase,
// diacritics stripped, whitespace and punctuation collapsed to hyphens.
// The result is deterministic, so regenerating from the same name always
// yields the same slug. Returns ErrInvalidName when the name is empty or
// normalizes to nothing (e.g. only punctuation).
//
// Slugs are assigned exactly once, at creation time. Callers that already
// have a slug must not call this again on later saves.
func NewSlug(name string) (string, error) {
	s := slug.Make(name)
	if s == "" {
		return "", ErrInvalidName
	}
	return s, nil
}

// ResolveSlug returns the caller-supplied slug, or derives one from name
// when supplied is empty, then checks it against taken, the store's
// uniqueness probe. A taken slug fails with ErrDuplicateSlug; slugs are
// never auto-suffixed.
func ResolveSlug(name, supplied string, taken func(string) (bool, error)) (string, error) {
	s := supplied
	if s == "" {
		derived, err := NewSlug(name)
		if err != nil {
			return "", err
		}
		s = derived
	}

	inUse, err := taken(s)
	if err != nil {
		return "", err
	}
	if inUse {
		return "", ErrDuplicateSlug
	}
	return s, nil
}
