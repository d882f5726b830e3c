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

// Package langtag implements parsing, validation, canonicalization and
// range matching of IETF BCP 47 language tags, as specified in RFC 5646.
//
// Language tags identify human languages, scripts, countries and other
// regions. They are commonly used in HTML and in the HTTP Content-Language
// and Accept-Language header fields.
//
// Parse accepts every tag that is "well-formed" according to the RFC 5646
// grammar and returns a LanguageTag holding a single case-normalized
// serialization together with the offsets of its components. Validate
// additionally checks the "valid" rules that do not require the IANA
// Language Subtag Registry; registry membership is deliberately out of
// scope at runtime. Canonicalize applies the grandfathered and
// deprecated-subtag replacements from the compiled-in exception tables, and
// Matches compares a language range against a concrete tag following the
// basic filtering scheme of RFC 4647.
//
// A LanguageTag is immutable and comparable: two tags produced by Parse or
// Canonicalize compare equal with == exactly when their serializations are
// equal, so tags can be used as map keys.
package langtag

import (
	"encoding/json"
	"errors"
	"strings"
)

// Errors that can occur during language tag parsing.
var (
	ErrEmptyExtension  = errors.New("if an extension subtag is present, it must not be empty")
	ErrEmptyPrivateUse = errors.New("if the 'x' subtag is present, it must not be empty")
	ErrForbiddenChar   = errors.New("the langtag contains a char not allowed")
	ErrInvalidSubtag   = errors.New("a subtag fails to parse, it does not match any other subtags")
	ErrInvalidLanguage = errors.New("the given language subtag is invalid")
	ErrSubtagTooLong   = errors.New("a subtag may be eight characters in length at maximum")
	ErrEmptySubtag     = errors.New("a subtag should not be empty")
	ErrTooManyExtlangs = errors.New("at maximum three extlangs are allowed")
)

// Errors that can occur during language tag validation.
var (
	ErrDuplicateVariant                = errors.New("the same variant subtag is only allowed once in a tag")
	ErrDuplicateExtension              = errors.New("the same extension singleton is only allowed once in a tag")
	ErrMultipleExtendedLanguageSubtags = errors.New("only one extended language subtag is allowed")
)

// tagPositions stores the end offset of each major component within the
// normalized tag string. An absent component has the same end offset as the
// previous one, so the offsets are monotonically non-decreasing.
type tagPositions struct {
	languageEnd, extlangEnd, scriptEnd, regionEnd, variantEnd, extensionEnd int
}

// LanguageTag represents a well-formed RFC 5646 language tag.
//
// The zero value is the empty tag. Tags are immutable; Parse and
// Canonicalize are the only constructors and either fully succeed or return
// no tag at all.
type LanguageTag struct {
	tag       string
	positions tagPositions
}

// Parse checks that a tag is "well-formed" according to RFC 5646 syntax and
// decomposes it into its components. It does not validate subtags against
// the IANA registry; see Validate for the remaining non-registry checks.
//
// Grandfathered tags (e.g. "i-klingon") are part of the grammar but cannot
// be decomposed; they are matched case-insensitively against the compiled-in
// table and kept as single, un-decomposed units with the table's casing.
//
// The returned tag carries a case-normalized serialization: language,
// extended language, variant, extension value and private use subtags are
// lowercased, script subtags are title-cased and region subtags are
// uppercased.
func Parse(tag string) (LanguageTag, error) {
	if g, ok := lookupGrandfathered(tag); ok {
		return wholeTag(g.tag), nil
	}
	if strings.HasPrefix(tag, "x-") || strings.HasPrefix(tag, "X-") {
		return parsePrivateUseOnly(tag)
	}
	return parseCompositeTag(tag)
}

// wholeTag builds a tag that consists of a single un-decomposed unit, such
// as a grandfathered tag or a private-use-only tag. All component offsets
// collapse onto the full length.
func wholeTag(tag string) LanguageTag {
	end := len(tag)
	return LanguageTag{
		tag: tag,
		positions: tagPositions{
			languageEnd:  end,
			extlangEnd:   end,
			scriptEnd:    end,
			regionEnd:    end,
			variantEnd:   end,
			extensionEnd: end,
		},
	}
}

// parsePrivateUseOnly handles tags that start with the private-use
// singleton "x". Such tags bypass the grammar state machine: only the
// character set and the shape of the individual subtags are checked.
func parsePrivateUseOnly(tag string) (LanguageTag, error) {
	if !isAlphanumericOrDash(tag) {
		return LanguageTag{}, ErrForbiddenChar
	}
	if len(tag) == 2 {
		return LanguageTag{}, ErrEmptyPrivateUse
	}
	for _, subtag := range strings.Split(tag[2:], "-") {
		if subtag == "" {
			return LanguageTag{}, ErrEmptySubtag
		}
		if len(subtag) > maxSubtagLen {
			return LanguageTag{}, ErrSubtagTooLong
		}
	}
	return wholeTag(strings.ToLower(tag)), nil
}

// String returns the normalized serialization of the tag. It implements the
// fmt.Stringer interface.
func (lt LanguageTag) String() string {
	return lt.tag
}

// AsStr returns the normalized serialization of the tag.
//
// This is fast since the serialization is already stored in the LanguageTag
// struct and never re-derived from the components.
func (lt LanguageTag) AsStr() string {
	return lt.tag
}

// Equal reports whether two tags have the same normalized serialization.
// For tags produced by Parse or Canonicalize this coincides with ==.
func (lt LanguageTag) Equal(other LanguageTag) bool {
	return lt.tag == other.tag
}

// PrimaryLanguage returns the primary language subtag. For grandfathered
// and private-use-only tags this is the whole tag.
func (lt LanguageTag) PrimaryLanguage() string {
	return lt.tag[:lt.positions.languageEnd]
}

// ExtendedLanguage returns the extended language subtags as a single
// string. Valid language tags have at most one extended language.
func (lt LanguageTag) ExtendedLanguage() (string, bool) {
	if lt.positions.languageEnd == lt.positions.extlangEnd {
		return "", false
	}
	return lt.tag[lt.positions.languageEnd+1 : lt.positions.extlangEnd], true
}

// ExtendedLanguageSubtags returns a slice of extended language subtags.
func (lt LanguageTag) ExtendedLanguageSubtags() []string {
	ext, ok := lt.ExtendedLanguage()
	if !ok {
		return nil
	}
	return strings.Split(ext, "-")
}

// FullLanguage returns the primary language subtag together with its
// extended language subtags.
func (lt LanguageTag) FullLanguage() string {
	return lt.tag[:lt.positions.extlangEnd]
}

// Script returns the script subtag.
func (lt LanguageTag) Script() (string, bool) {
	if lt.positions.extlangEnd == lt.positions.scriptEnd {
		return "", false
	}
	return lt.tag[lt.positions.extlangEnd+1 : lt.positions.scriptEnd], true
}

// Region returns the region subtag.
func (lt LanguageTag) Region() (string, bool) {
	if lt.positions.scriptEnd == lt.positions.regionEnd {
		return "", false
	}
	return lt.tag[lt.positions.scriptEnd+1 : lt.positions.regionEnd], true
}

// Variant returns the variant subtags as a single string.
func (lt LanguageTag) Variant() (string, bool) {
	if lt.positions.regionEnd == lt.positions.variantEnd {
		return "", false
	}
	return lt.tag[lt.positions.regionEnd+1 : lt.positions.variantEnd], true
}

// VariantSubtags returns a slice of variant subtags.
func (lt LanguageTag) VariantSubtags() []string {
	v, ok := lt.Variant()
	if !ok {
		return nil
	}
	return strings.Split(v, "-")
}

// Extension returns the extension subtags as a single string, singletons
// included, private use excluded.
func (lt LanguageTag) Extension() (string, bool) {
	if lt.positions.variantEnd == lt.positions.extensionEnd {
		return "", false
	}
	return lt.tag[lt.positions.variantEnd+1 : lt.positions.extensionEnd], true
}

// Extension is one extension value subtag together with the singleton that
// introduced it; the "-u-co-phonebk" block yields {u co} and {u phonebk}.
type Extension struct {
	Singleton byte
	Value     string
}

// ExtensionSubtags returns the extension value subtags paired with their
// singletons, one entry per value subtag, in tag order.
func (lt LanguageTag) ExtensionSubtags() []Extension {
	raw, ok := lt.Extension()
	if !ok {
		return nil
	}
	var exts []Extension
	var singleton byte
	for _, subtag := range strings.Split(raw, "-") {
		if len(subtag) == 1 {
			singleton = subtag[0]
			continue
		}
		exts = append(exts, Extension{Singleton: singleton, Value: subtag})
	}
	return exts
}

// PrivateUse returns the private use subtags as a single string without the
// leading "x-" (e.g. "twain" for "en-x-twain").
func (lt LanguageTag) PrivateUse() (string, bool) {
	if strings.HasPrefix(lt.tag, "x-") {
		return lt.tag[2:], true
	}
	if lt.positions.extensionEnd == len(lt.tag) {
		return "", false
	}
	// The remainder after the extension block is "-x-" plus at least one
	// subtag; the parser never leaves a bare singleton at the end.
	return lt.tag[lt.positions.extensionEnd+3:], true
}

// PrivateUseSubtags returns a slice of private use subtags.
func (lt LanguageTag) PrivateUseSubtags() []string {
	part, ok := lt.PrivateUse()
	if !ok {
		return nil
	}
	return strings.Split(part, "-")
}

// IsGrandfathered returns true if the tag is one of the grandfathered tags
// listed in RFC 5646.
func (lt LanguageTag) IsGrandfathered() bool {
	_, ok := lookupGrandfathered(lt.tag)
	return ok
}

// MarshalText implements the encoding.TextMarshaler interface. It emits the
// normalized serialization.
func (lt LanguageTag) MarshalText() ([]byte, error) {
	return []byte(lt.tag), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface by
// parsing the text form and surfacing the parse error unchanged.
func (lt *LanguageTag) UnmarshalText(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*lt = parsed
	return nil
}

// MarshalJSON implements the json.Marshaler interface. It marshals the
// language tag as a JSON string.
func (lt LanguageTag) MarshalJSON() ([]byte, error) {
	return json.Marshal(lt.tag)
}

// UnmarshalJSON implements the json.Unmarshaler interface. An empty JSON
// string decodes to the zero tag; any other string must parse.
func (lt *LanguageTag) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*lt = LanguageTag{}
		return nil
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*lt = parsed
	return nil
}
