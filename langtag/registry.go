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

import (
	"sort"
	"strings"
)

// Registry holds the parsed content of an IANA Language Subtag Registry
// file. It only exists to derive the exception tables compiled into this
// package (see cmd/gentables); tag parsing never reads it at runtime.
type Registry struct {
	FileDate string
	Records  []Record
}

// Record is a single entry of the IANA Language Subtag Registry, reduced to
// the fields the exception tables are derived from. Exactly one of Subtag
// (for subtag records) and Tag (for grandfathered and redundant records) is
// set.
type Record struct {
	Type           string
	Subtag         string
	Tag            string
	Description    []string
	Prefix         []string
	Added          string
	Deprecated     string
	PreferredValue string
	SuppressScript string
}

// IsGrandfathered returns true if the record describes a whole tag rather
// than a subtag.
func (r *Record) IsGrandfathered() bool {
	return r.Type == "grandfathered"
}

// GrandfatheredEntry is one row of the grandfathered exception table.
type GrandfatheredEntry struct {
	Tag       string
	Preferred string // empty if the registry lists no Preferred-Value
}

// Replacement maps one deprecated subtag to its Preferred-Value.
type Replacement struct {
	Subtag    string
	Preferred string
}

// Grandfathered derives the grandfathered exception table, sorted by tag.
func (r *Registry) Grandfathered() []GrandfatheredEntry {
	var entries []GrandfatheredEntry
	for _, rec := range r.Records {
		if !rec.IsGrandfathered() || rec.Tag == "" {
			continue
		}
		entries = append(entries, GrandfatheredEntry{Tag: rec.Tag, Preferred: rec.PreferredValue})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Tag < entries[j].Tag })
	return entries
}

// DeprecatedLanguages derives the deprecated-language exception table:
// language records that are deprecated and carry a Preferred-Value. Subtags
// are lowercased and sorted by length, then alphabetically, so the
// two-letter codes come first.
func (r *Registry) DeprecatedLanguages() []Replacement {
	replacements := r.deprecated("language", strings.ToLower)
	sort.Slice(replacements, func(i, j int) bool {
		if len(replacements[i].Subtag) != len(replacements[j].Subtag) {
			return len(replacements[i].Subtag) < len(replacements[j].Subtag)
		}
		return replacements[i].Subtag < replacements[j].Subtag
	})
	return replacements
}

// DeprecatedRegions derives the deprecated-region exception table. Subtags
// are uppercased and sorted alphabetically.
func (r *Registry) DeprecatedRegions() []Replacement {
	replacements := r.deprecated("region", strings.ToUpper)
	sort.Slice(replacements, func(i, j int) bool {
		return replacements[i].Subtag < replacements[j].Subtag
	})
	return replacements
}

// deprecated collects records of the given type that are deprecated and
// have a Preferred-Value, folding the subtag with fold.
func (r *Registry) deprecated(recordType string, fold func(string) string) []Replacement {
	var replacements []Replacement
	for _, rec := range r.Records {
		if rec.Type != recordType || rec.Deprecated == "" || rec.PreferredValue == "" {
			continue
		}
		replacements = append(replacements, Replacement{
			Subtag:    fold(rec.Subtag),
			Preferred: rec.PreferredValue,
		})
	}
	return replacements
}
