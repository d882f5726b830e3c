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

//nolint:testpackage // White-box tests; they exercise the range expansion helpers.
package langtag

import (
	"reflect"
	"strings"
	"testing"
)

const sampleRegistry = `File-Date: 2025-08-25
%%
Type: language
Subtag: en
Description: English
Added: 2005-10-16
Suppress-Script: Latn
%%
Type: language
Subtag: in
Description: Indonesian
Added: 2005-10-16
Deprecated: 1989-01-01
Preferred-Value: id
Suppress-Script: Latn
%%
Type: language
Subtag: aam
Description: Aramanik
Added: 2009-07-29
Deprecated: 2015-02-12
Preferred-Value: aas
%%
Type: language
Subtag: qaa..qab
Description: Private use
Added: 2005-10-16
%%
Type: region
Subtag: BU
Description: Burma
Added: 2005-10-16
Deprecated: 1989-12-05
Preferred-Value: MM
%%
Type: region
Subtag: 001
Description: World
Added: 2005-10-16
%%
Type: grandfathered
Tag: i-klingon
Description: Klingon
Added: 1999-05-26
Deprecated: 2004-02-24
Preferred-Value: tlh
%%
Type: grandfathered
Tag: i-default
Description: Default Language
Added: 1998-03-10
%%
Type: variant
Subtag: heploc
Description: Hepburn romanization, Library of Congress method
 (continued on the next line)
Added: 2009-10-01
Deprecated: 2010-02-07
Preferred-Value: alalc97
Prefix: ja-Latn-hepburn
`

// TestParseRegistry parses a reduced registry file and checks field
// extraction, continuation lines, File-Date handling and range expansion.
func TestParseRegistry(t *testing.T) {
	reg, err := ParseRegistry(strings.NewReader(sampleRegistry))
	if err != nil {
		t.Fatalf("ParseRegistry() error: %v", err)
	}
	if reg.FileDate != "2025-08-25" {
		t.Errorf("FileDate = %q, want %q", reg.FileDate, "2025-08-25")
	}
	// 8 plain records plus "qaa..qab" expanded to two.
	if len(reg.Records) != 10 {
		t.Fatalf("len(Records) = %d, want 10", len(reg.Records))
	}

	english := reg.Records[0]
	if english.Type != "language" || english.Subtag != "en" || english.SuppressScript != "Latn" {
		t.Errorf("first record = %+v, want the English language record", english)
	}
	if !reflect.DeepEqual(english.Description, []string{"English"}) {
		t.Errorf("Description = %v, want [English]", english.Description)
	}

	if got := []string{reg.Records[3].Subtag, reg.Records[4].Subtag}; !reflect.DeepEqual(got, []string{"qaa", "qab"}) {
		t.Errorf("expanded private use range = %v, want [qaa qab]", got)
	}

	klingon := reg.Records[7]
	if !klingon.IsGrandfathered() || klingon.Tag != "i-klingon" || klingon.PreferredValue != "tlh" {
		t.Errorf("grandfathered record = %+v", klingon)
	}

	heploc := reg.Records[9]
	want := "Hepburn romanization, Library of Congress method (continued on the next line)"
	if !reflect.DeepEqual(heploc.Description, []string{want}) {
		t.Errorf("continued Description = %v, want [%s]", heploc.Description, want)
	}
	if !reflect.DeepEqual(heploc.Prefix, []string{"ja-Latn-hepburn"}) {
		t.Errorf("Prefix = %v, want [ja-Latn-hepburn]", heploc.Prefix)
	}
}

// TestRegistryDerivedTables checks the derivation of the three exception
// tables from parsed records.
func TestRegistryDerivedTables(t *testing.T) {
	reg, err := ParseRegistry(strings.NewReader(sampleRegistry))
	if err != nil {
		t.Fatalf("ParseRegistry() error: %v", err)
	}

	wantGrandfathered := []GrandfatheredEntry{
		{Tag: "i-default", Preferred: ""},
		{Tag: "i-klingon", Preferred: "tlh"},
	}
	if got := reg.Grandfathered(); !reflect.DeepEqual(got, wantGrandfathered) {
		t.Errorf("Grandfathered() = %v, want %v", got, wantGrandfathered)
	}

	// "en" is not deprecated and the private use range has no
	// Preferred-Value, so only "in" and "aam" survive; two-letter codes
	// sort first.
	wantLanguages := []Replacement{
		{Subtag: "in", Preferred: "id"},
		{Subtag: "aam", Preferred: "aas"},
	}
	if got := reg.DeprecatedLanguages(); !reflect.DeepEqual(got, wantLanguages) {
		t.Errorf("DeprecatedLanguages() = %v, want %v", got, wantLanguages)
	}

	wantRegions := []Replacement{{Subtag: "BU", Preferred: "MM"}}
	if got := reg.DeprecatedRegions(); !reflect.DeepEqual(got, wantRegions) {
		t.Errorf("DeprecatedRegions() = %v, want %v", got, wantRegions)
	}
}

// TestExpandRange tests the range expansion helpers directly.
func TestExpandRange(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{"Alphabetic", "qaa..qac", []string{"qaa", "qab", "qac"}, false},
		{"Alphabetic wrap", "aay..aba", []string{"aay", "aaz", "aba"}, false},
		{"Numeric padded", "001..003", []string{"001", "002", "003"}, false},
		{"Numeric across tens", "008..011", []string{"008", "009", "010", "011"}, false},
		{"Single element", "za..za", []string{"za"}, false},
		{"Reversed alphabetic", "qc..qa", nil, true},
		{"Reversed numeric", "005..001", nil, true},
		{"Mixed charset", "0a..1b", nil, true},
		{"Length mismatch", "aa..aaa", nil, true},
		{"Missing bound", "..aa", nil, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := expandRange(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("expandRange(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
			if err == nil && !reflect.DeepEqual(got, tc.want) {
				t.Errorf("expandRange(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

// TestParseRegistryIgnoresNoise checks that lines without a colon and empty
// records between separators are skipped.
func TestParseRegistryIgnoresNoise(t *testing.T) {
	input := "File-Date: 2025-08-25\n%%\n%%\nnot a field line\nType: language\nSubtag: fr\n%%\n"
	reg, err := ParseRegistry(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseRegistry() error: %v", err)
	}
	if len(reg.Records) != 1 || reg.Records[0].Subtag != "fr" {
		t.Errorf("Records = %+v, want a single fr record", reg.Records)
	}
}
