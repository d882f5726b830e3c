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

//nolint:testpackage // White-box tests; they exercise unexported parser internals.
package langtag

import (
	"errors"
	"strings"
	"testing"
)

// TestParseNormalization checks that well-formed tags parse and that the
// serialization applies the per-component case rules: language, extlang,
// variant, extension value and private use subtags lowercase, script title
// case, region uppercase.
func TestParseNormalization(t *testing.T) {
	testCases := []struct {
		input string
		want  string
	}{
		{"en", "en"},
		{"fr-BE", "fr-BE"},
		{"FR-be", "fr-BE"},
		{"en-Latn-US", "en-Latn-US"},
		{"EN-LATN-US", "en-Latn-US"},
		{"en-latn-us", "en-Latn-US"},
		{"zh-yue-HK", "zh-yue-HK"},
		{"sl-rozaj-biske", "sl-rozaj-biske"},
		{"SL-ROZAJ-BISKE", "sl-rozaj-biske"},
		{"de-CH-1901", "de-CH-1901"},
		{"es-419", "es-419"},
		{"en-US-U-islamcal", "en-US-u-islamcal"},
		{"zh-CN-A-myext-x-private", "zh-CN-a-myext-x-private"},
		{"en-A-bbb-X-a-z", "en-a-bbb-x-a-z"},
		{"en-x-TWAIN", "en-x-twain"},
		{"X-Some-Private-Tag", "x-some-private-tag"},
		{"aaaa", "aaaa"},             // 4-letter primary language, no extlang slot
		{"aaaaaaaa", "aaaaaaaa"},     // 8-letter primary language
		{"en-1234", "en-1234"},       // digit-leading variant of minimum length
		{"en-ababab", "en-ababab"},   // alpha-leading variant
		{"en-b-warble", "en-b-warble"},
		{"hy-Latn-IT-arevela", "hy-Latn-IT-arevela"},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			lt, err := Parse(tc.input)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tc.input, err)
			}
			if lt.String() != tc.want {
				t.Errorf("Parse(%q).String() = %q, want %q", tc.input, lt.String(), tc.want)
			}
		})
	}
}

// TestParseIdempotentNormalization checks the round-trip property: parsing
// the normalized output again yields an identical tag.
func TestParseIdempotentNormalization(t *testing.T) {
	inputs := []string{
		"en", "FR-be", "en-latn-us", "zh-yue-hk", "SL-ROZAJ-biske",
		"de-ch-1901", "es-419", "en-us-u-islamcal", "en-A-bbb-X-a-z",
		"I-KLINGON", "x-SOME-private",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			first := mustParse(t, input)
			second := mustParse(t, first.String())
			if first != second {
				t.Errorf("re-parsing %q gave %+v, want %+v", first.String(), second, first)
			}
		})
	}
}

// TestParseErrors checks the error taxonomy over malformed tags.
func TestParseErrors(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"Empty input", "", ErrEmptySubtag},
		{"Double dash", "en--GB", ErrEmptySubtag},
		{"Leading dash", "-en", ErrEmptySubtag},
		{"Trailing dash", "en-", ErrEmptySubtag},
		{"Subtag too long", "en-abcdefghi", ErrSubtagTooLong},
		{"Primary language too long", "abcdefghi", ErrSubtagTooLong},
		{"One letter language", "a", ErrInvalidLanguage},
		{"Numeric language", "12", ErrInvalidLanguage},
		{"Language with digit", "e9", ErrInvalidLanguage},
		{"Four extlangs", "en-abc-def-ghi-jkl", ErrTooManyExtlangs},
		{"Singleton at end", "en-a", ErrEmptyExtension},
		{"Two singletons in a row", "en-a-b-foo", ErrEmptyExtension},
		{"Singleton before private use", "en-a-x-foo", ErrEmptyExtension},
		{"Private use singleton at end", "en-x", ErrEmptyPrivateUse},
		{"Bare private use", "x-", ErrEmptyPrivateUse},
		{"Forbidden char in private use", "x-über", ErrForbiddenChar},
		{"Empty private use subtag", "x--a", ErrEmptySubtag},
		{"Private use subtag too long", "x-abcdefghi", ErrSubtagTooLong},
		{"Region after variant", "en-nedis1-US", ErrInvalidSubtag},
		{"Script after region", "en-US-Latn", ErrInvalidSubtag},
		{"Forbidden char in subtag", "en-aé", ErrInvalidSubtag},
		{"Short variant", "en-GB-1ab", ErrInvalidSubtag},
		{"Extension value with forbidden char", "en-a-b!b", ErrInvalidSubtag},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.input)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Parse(%q) error = %v, want %v", tc.input, err, tc.wantErr)
			}
		})
	}
}

// TestParseExtlangs checks the tie-break rule: a 3-letter alphabetic subtag
// right after a short primary language is always an extlang, up to three of
// them.
func TestParseExtlangs(t *testing.T) {
	testCases := []struct {
		input        string
		wantExtlangs []string
	}{
		{"zh-yue", []string{"yue"}},
		{"zh-min-kok", []string{"min", "kok"}},
		{"zh-abc-def-ghi", []string{"abc", "def", "ghi"}},
		{"zh-yue-Hant", []string{"yue"}},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			lt := mustParse(t, tc.input)
			got := lt.ExtendedLanguageSubtags()
			if len(got) != len(tc.wantExtlangs) {
				t.Fatalf("ExtendedLanguageSubtags() = %v, want %v", got, tc.wantExtlangs)
			}
			for i := range got {
				if got[i] != tc.wantExtlangs[i] {
					t.Errorf("ExtendedLanguageSubtags()[%d] = %q, want %q", i, got[i], tc.wantExtlangs[i])
				}
			}
		})
	}

	// A long primary language has no extlang slot: a following 3-letter
	// subtag cannot be placed anywhere.
	if _, err := Parse("lang-abc"); !errors.Is(err, ErrInvalidSubtag) {
		t.Errorf("Parse(\"lang-abc\") error = %v, want %v", err, ErrInvalidSubtag)
	}
}

// TestParseGrandfathered checks that grandfathered tags are matched
// case-insensitively, kept un-decomposed and rendered with the registry's
// casing.
func TestParseGrandfathered(t *testing.T) {
	testCases := []struct {
		input string
		want  string
	}{
		{"i-klingon", "i-klingon"},
		{"I-KLINGON", "i-klingon"},
		{"en-GB-oed", "en-GB-oed"},
		{"EN-gb-OED", "en-GB-oed"},
		{"sgn-BE-FR", "sgn-BE-FR"},
		{"sgn-be-fr", "sgn-BE-FR"},
		{"zh-min-nan", "zh-min-nan"},
		{"No-Nyn", "no-nyn"},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			lt := mustParse(t, tc.input)
			if lt.String() != tc.want {
				t.Errorf("Parse(%q).String() = %q, want %q", tc.input, lt.String(), tc.want)
			}
			if !lt.IsGrandfathered() {
				t.Errorf("Parse(%q).IsGrandfathered() = false, want true", tc.input)
			}
			if got := lt.PrimaryLanguage(); got != tc.want {
				t.Errorf("grandfathered PrimaryLanguage() = %q, want whole tag %q", got, tc.want)
			}
		})
	}
}

// TestParsePositionsBackfill checks that the offsets of absent components
// collapse onto the previous one, never leaving a gap.
func TestParsePositionsBackfill(t *testing.T) {
	testCases := []struct {
		input string
		want  tagPositions
	}{
		{"en", tagPositions{2, 2, 2, 2, 2, 2}},
		{"en-US", tagPositions{2, 2, 2, 5, 5, 5}},
		{"en-Latn", tagPositions{2, 2, 7, 7, 7, 7}},
		{"zh-yue-HK", tagPositions{2, 6, 6, 9, 9, 9}},
		{"de-CH-1901", tagPositions{2, 2, 2, 5, 10, 10}},
		{"en-a-bbb", tagPositions{2, 2, 2, 2, 2, 8}},
		{"en-x-twain", tagPositions{2, 2, 2, 2, 2, 2}},
		{"en-Latn-US-nedis-a-bbb-x-cc", tagPositions{2, 2, 7, 10, 16, 22}},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			lt := mustParse(t, tc.input)
			if lt.positions != tc.want {
				t.Errorf("positions of %q = %+v, want %+v", tc.input, lt.positions, tc.want)
			}
		})
	}
}

// TestParsePrivateUseOnlyTags checks the fast path for tags that consist
// solely of private use subtags.
func TestParsePrivateUseOnlyTags(t *testing.T) {
	lt := mustParse(t, "x-DIALECT-1")
	if lt.String() != "x-dialect-1" {
		t.Errorf("String() = %q, want %q", lt.String(), "x-dialect-1")
	}
	pu, ok := lt.PrivateUse()
	if !ok || pu != "dialect-1" {
		t.Errorf("PrivateUse() = %q, %v, want %q, true", pu, ok, "dialect-1")
	}
	if got := lt.PrivateUseSubtags(); len(got) != 2 || got[0] != "dialect" || got[1] != "1" {
		t.Errorf("PrivateUseSubtags() = %v, want [dialect 1]", got)
	}
	if lt.PrimaryLanguage() != "x-dialect-1" {
		t.Errorf("PrimaryLanguage() = %q, want whole tag", lt.PrimaryLanguage())
	}
}

// TestParseSerializationInvariant checks that every successful parse yields
// a serialization made of non-empty alphanumeric subtags separated by
// single dashes.
func TestParseSerializationInvariant(t *testing.T) {
	inputs := []string{
		"en", "fr-BE", "zh-yue-Hant-HK-a-bbb-ccc-b-dd-x-ee", "x-a-b-c",
		"i-default", "de-CH-1901-x-gsg",
	}
	for _, input := range inputs {
		lt := mustParse(t, input)
		for _, subtag := range strings.Split(lt.String(), "-") {
			if subtag == "" {
				t.Errorf("serialization %q contains an empty subtag", lt.String())
			}
			if !isAlphanumeric(subtag) {
				t.Errorf("serialization %q contains a non-alphanumeric subtag %q", lt.String(), subtag)
			}
		}
	}
}
