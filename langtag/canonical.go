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

// Canonicalize returns the canonical version of the tag.
//
// It applies the following steps:
//
//   - Grandfathered tags are replaced with their Preferred-Value if the
//     registry lists one; the replacement discards all other components.
//   - An extended language subtag is promoted to primary language.
//   - Deprecated language subtags are replaced with modern equivalents.
//   - Deprecated region subtags are replaced with the new region codes.
//   - The "heploc" variant is replaced with "alalc97".
//
// Extension and private use blocks are copied verbatim, and the component
// offsets of the result are recomputed during reconstruction. The result is
// not guaranteed to be fully canonical in the sense of RFC 5646 section 4.5
// and is not re-validated.
func (lt LanguageTag) Canonicalize() LanguageTag {
	if strings.HasPrefix(lt.tag, "x-") {
		// A private-use-only tag has no replaceable components.
		return lt
	}

	language := lt.PrimaryLanguage()
	// Parsing a grandfathered tag keeps the table's own casing, so an
	// exact match is sufficient here.
	if g, ok := lookupGrandfathered(language); ok && g.tag == language && g.preferred != "" {
		return wholeTag(g.preferred)
	}

	if ext, ok := lt.ExtendedLanguage(); ok {
		language = ext
	}
	if preferred, ok := deprecatedLanguage[language]; ok {
		language = preferred
	}

	var out strings.Builder
	out.Grow(len(lt.tag))
	var pos tagPositions

	out.WriteString(language)
	pos.languageEnd = out.Len()
	pos.extlangEnd = out.Len()

	if script, ok := lt.Script(); ok {
		out.WriteByte('-')
		out.WriteString(script)
	}
	pos.scriptEnd = out.Len()

	if region, ok := lt.Region(); ok {
		out.WriteByte('-')
		if preferred, ok := deprecatedRegion[region]; ok {
			out.WriteString(preferred)
		} else {
			out.WriteString(region)
		}
	}
	pos.regionEnd = out.Len()

	for _, variant := range lt.VariantSubtags() {
		out.WriteByte('-')
		if variant == "heploc" {
			out.WriteString("alalc97")
		} else {
			out.WriteString(variant)
		}
	}
	pos.variantEnd = out.Len()

	if ext, ok := lt.Extension(); ok {
		out.WriteByte('-')
		out.WriteString(ext)
	}
	pos.extensionEnd = out.Len()

	if privateUse, ok := lt.PrivateUse(); ok {
		out.WriteString("-x-")
		out.WriteString(privateUse)
	}

	return LanguageTag{tag: out.String(), positions: pos}
}
