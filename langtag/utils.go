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

// isAlpha checks if a byte is an ASCII letter.
func isAlpha(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }

// isDigit checks if a byte is an ASCII digit.
func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// isAlphanum checks if a byte is an ASCII letter or digit.
func isAlphanum(b byte) bool { return isAlpha(b) || isDigit(b) }

// toLower lowercases an ASCII letter and leaves any other byte unchanged.
func toLower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + 'a' - 'A'
	}
	return b
}

// toUpper uppercases an ASCII letter and leaves any other byte unchanged.
func toUpper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}

// isAlphabetic checks if a string is non-empty and contains only ASCII letters.
func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isAlpha(s[i]) {
			return false
		}
	}
	return true
}

// isNumeric checks if a string is non-empty and contains only ASCII digits.
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

// isAlphanumeric checks if a string is non-empty and contains only ASCII
// letters and digits.
func isAlphanumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isAlphanum(s[i]) {
			return false
		}
	}
	return true
}

// isAlphanumericOrDash checks if a string contains only ASCII letters,
// digits and hyphens.
func isAlphanumericOrDash(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isAlphanum(s[i]) && s[i] != '-' {
			return false
		}
	}
	return true
}

// writeLower writes s to b with every ASCII letter lowercased.
func writeLower(b *strings.Builder, s string) {
	for i := 0; i < len(s); i++ {
		b.WriteByte(toLower(s[i]))
	}
}

// writeUpper writes s to b with every ASCII letter uppercased.
func writeUpper(b *strings.Builder, s string) {
	for i := 0; i < len(s); i++ {
		b.WriteByte(toUpper(s[i]))
	}
}

// writeTitle writes s to b with the first letter uppercased and the rest
// lowercased (e.g. "Latn").
func writeTitle(b *strings.Builder, s string) {
	if s == "" {
		return
	}
	b.WriteByte(toUpper(s[0]))
	writeLower(b, s[1:])
}
