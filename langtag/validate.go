/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package langtag

import "strings"

// Validate checks the tag against the "valid" rules of RFC 5646 section
// 2.2.9 that can be decided without the IANA registry: no duplicate variant
// subtags, no duplicate extension singletons, and at most one extended
// language subtag (errata 5457). Registry membership of individual subtags
// is out of scope.
//
// Validation is advisory and never mutates the tag.
func (lt LanguageTag) Validate() error {
	variants := lt.VariantSubtags()
	for i, first := range variants {
		for _, second := range variants[i+1:] {
			// The serialization is already case-normalized, so a
			// case-sensitive comparison is enough.
			if first == second {
				return ErrDuplicateVariant
			}
		}
	}

	if ext, ok := lt.Extension(); ok {
		var seen alphanumSet
		for _, subtag := range strings.Split(ext, "-") {
			if len(subtag) != 1 {
				continue
			}
			if seen.contains(subtag[0]) {
				return ErrDuplicateExtension
			}
			seen.insert(subtag[0])
		}
	}

	if ext, ok := lt.ExtendedLanguage(); ok && strings.Contains(ext, "-") {
		return ErrMultipleExtendedLanguageSubtags
	}
	return nil
}

// IsValid reports whether Validate returns no error.
func (lt LanguageTag) IsValid() bool {
	return lt.Validate() == nil
}

// alphanumSet is a presence set over the 26 ASCII letters and 10 digits,
// used to track which extension singletons have been seen.
type alphanumSet struct {
	letters [26]bool
	digits  [10]bool
}

func (s *alphanumSet) contains(b byte) bool {
	switch {
	case isDigit(b):
		return s.digits[b-'0']
	case isAlpha(b):
		return s.letters[toLower(b)-'a']
	default:
		return false
	}
}

func (s *alphanumSet) insert(b byte) {
	switch {
	case isDigit(b):
		s.digits[b-'0'] = true
	case isAlpha(b):
		s.letters[toLower(b)-'a'] = true
	}
}
