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

// This file holds the exception tables derived from the IANA Language
// Subtag Registry. The tables are static and read-only; runtime parsing
// never consults the registry itself.
//
// Regenerate with:
//
//	go run ./cmd/gentables -output langtag/tables.go

// grandfatheredTag is a whole tag registered before RFC 4646, listed
// verbatim in the registry with an optional modern replacement.
type grandfatheredTag struct {
	tag       string
	preferred string // empty if the registry lists no Preferred-Value
}

// grandfathered lists all grandfathered tags from RFC 5646 section 2.2.8.
var grandfathered = [...]grandfatheredTag{
	{"art-lojban", "jbo"},
	{"cel-gaulish", ""},
	{"en-GB-oed", "en-GB-oxendict"},
	{"i-ami", "ami"},
	{"i-bnn", "bnn"},
	{"i-default", ""},
	{"i-enochian", ""},
	{"i-hak", "hak"},
	{"i-klingon", "tlh"},
	{"i-lux", "lb"},
	{"i-mingo", ""},
	{"i-navajo", "nv"},
	{"i-pwn", "pwn"},
	{"i-tao", "tao"},
	{"i-tay", "tay"},
	{"i-tsu", "tsu"},
	{"no-bok", "nb"},
	{"no-nyn", "nn"},
	{"sgn-BE-FR", "sfb"},
	{"sgn-BE-NL", "vgt"},
	{"sgn-CH-DE", "sgg"},
	{"zh-guoyu", "cmn"},
	{"zh-hakka", "hak"},
	{"zh-min", ""},
	{"zh-min-nan", "nan"},
	{"zh-xiang", "hsn"},
}

// lookupGrandfathered matches a whole tag case-insensitively against the
// grandfathered table.
func lookupGrandfathered(tag string) (grandfatheredTag, bool) {
	for _, g := range grandfathered {
		if equalFoldASCII(g.tag, tag) {
			return g, true
		}
	}
	return grandfatheredTag{}, false
}

// equalFoldASCII compares two ASCII strings case-insensitively.
func equalFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if toLower(a[i]) != toLower(b[i]) {
			return false
		}
	}
	return true
}

// deprecatedLanguage maps deprecated primary language subtags to their
// Preferred-Value. Keys and values are lowercase, matching the case
// normalization applied to the language component.
var deprecatedLanguage = map[string]string{
	"in":  "id",
	"iw":  "he",
	"ji":  "yi",
	"jw":  "jv",
	"mo":  "ro",
	"aam": "aas",
	"adp": "dz",
	"aue": "ktz",
	"ayx": "nun",
	"bjd": "drl",
	"ccq": "rki",
	"cjr": "mom",
	"cka": "cmr",
	"cmk": "xch",
	"drh": "khk",
	"drw": "prs",
	"gav": "dev",
	"gfx": "vaj",
	"gti": "nyc",
	"hrr": "jal",
	"ibi": "opa",
	"ilw": "gal",
	"kgh": "kml",
	"koj": "kwv",
	"kwq": "yam",
	"kxe": "tvd",
	"lii": "raq",
	"lmm": "rmx",
	"meg": "cir",
	"mst": "mry",
	"mwj": "vaj",
	"myt": "mry",
	"nnx": "ngv",
	"oun": "vaj",
	"pcr": "adx",
	"pmu": "phr",
	"ppr": "lcq",
	"puz": "pub",
	"sca": "hle",
	"thx": "oyb",
	"tie": "ras",
	"tkk": "twm",
	"tlw": "weo",
	"tnf": "prs",
	"tsf": "taj",
	"uok": "ema",
	"xia": "acn",
	"xsj": "suj",
	"ybd": "rki",
	"yma": "lrr",
	"ymt": "mtm",
	"yos": "zom",
	"yuu": "yug",
}

// deprecatedRegion maps deprecated region subtags to their Preferred-Value.
// Keys and values are uppercase, matching the case normalization applied to
// the region component.
var deprecatedRegion = map[string]string{
	"BU": "MM",
	"DD": "DE",
	"FX": "FR",
	"TP": "TL",
	"YD": "YE",
	"ZR": "CD",
}
