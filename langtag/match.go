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

// IsLanguageRange reports whether the tag can act as a language range,
// meaning it carries no extension and no private use subtags. Absent
// components of a range act as wildcards when matching.
func (lt LanguageTag) IsLanguageRange() bool {
	_, hasExtension := lt.Extension()
	_, hasPrivateUse := lt.PrivateUse()
	return !hasExtension && !hasPrivateUse
}

// Matches compares the receiver, acting as a language range, against a
// concrete tag, following the basic filtering scheme of RFC 4647. Absent
// fields of the range match anything; present fields must be equal. Both
// tags are already case-normalized by construction, so the comparisons are
// effectively case-insensitive.
//
// For example the range "en-GB" matches "en-GB" and "en-Arab-GB" but not
// "en", while the range "en" matches every tag whose language is "en".
//
// Variant lists are compared positionally over the common length only;
// extra variants on either side are ignored.
//
// Matches panics if the receiver is not a language range; callers must
// check IsLanguageRange first.
func (lt LanguageTag) Matches(other LanguageTag) bool {
	if !lt.IsLanguageRange() {
		panic("langtag: Matches called on a range with extension or private use subtags")
	}
	if lt.FullLanguage() != other.FullLanguage() {
		return false
	}
	if !matchComponent(lt.Script())(other.Script()) {
		return false
	}
	if !matchComponent(lt.Region())(other.Region()) {
		return false
	}
	rangeVariants := lt.VariantSubtags()
	tagVariants := other.VariantSubtags()
	for i := 0; i < min(len(rangeVariants), len(tagVariants)); i++ {
		if rangeVariants[i] != tagVariants[i] {
			return false
		}
	}
	return true
}

// matchComponent builds the omission rule for a single optional component:
// an absent range component matches anything, a present one requires the
// tag to carry an equal value.
func matchComponent(rangeValue string, rangePresent bool) func(string, bool) bool {
	return func(tagValue string, tagPresent bool) bool {
		if !rangePresent {
			return true
		}
		if !tagPresent {
			return false
		}
		return rangeValue == tagValue
	}
}
