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

// BCP 47 constants for subtag shapes.
const (
	maxSubtagLen        = 8 // Maximum length of any subtag.
	maxExtlangs         = 3 // Maximum number of extended language subtags.
	extlangLen          = 3 // An extended language subtag is always 3 letters.
	scriptLen           = 4 // A script subtag is always 4 letters.
	regionAlphaLen      = 2 // An alphabetic region subtag is always 2 letters.
	regionNumericLen    = 3 // A numeric region subtag is always 3 digits.
	minPrimaryLangLen   = 2 // Minimum length of a primary language subtag.
	shortPrimaryLangLen = 3 // Max length of a primary language that can carry extlangs.
	minVariantLenAlpha  = 5 // Min length of a variant starting with a letter.
	minVariantLenDigit  = 4 // Min length of a variant starting with a digit.
)

// parseState represents the current position in the state machine during
// parsing. The order of the constants mirrors the order the grammar imposes
// on the components, which lets the handlers compare states with < and <=.
type parseState int

const (
	stateStart         parseState = iota // Expecting the primary language subtag.
	stateAfterLanguage                   // After a 2-3 letter primary language; extlangs still allowed.
	stateAfterExtLang                    // After a longer primary language or an extlang.
	stateAfterScript                     // After a script subtag.
	stateAfterRegion                     // After a region subtag or inside the variant list.
	stateInExtension                     // Inside an extension sequence (after a singleton).
	stateInPrivateUse                    // Inside a private-use sequence (after 'x').
)

// parseRun holds the state of a single scan over the subtags of a tag. The
// scan rewrites each subtag, case-normalized, into out while recording the
// end offsets of the components it assigns. The rewrite is length
// preserving, so offsets over the input and over out coincide.
type parseRun struct {
	out           strings.Builder
	state         parseState
	positions     tagPositions
	extlangs      int
	valueExpected bool // a singleton was seen and a value subtag must follow
}

// parseCompositeTag runs the grammar state machine over a tag that is
// neither grandfathered nor private-use-only.
func parseCompositeTag(input string) (LanguageTag, error) {
	run := &parseRun{}
	run.out.Grow(len(input))

	position := 0
	for _, subtag := range strings.Split(input, "-") {
		end := position + len(subtag)
		position = end + 1
		if err := run.consume(subtag, end); err != nil {
			return LanguageTag{}, err
		}
	}
	if err := run.checkFinalState(); err != nil {
		return LanguageTag{}, err
	}
	run.backfillPositions()

	return LanguageTag{tag: run.out.String(), positions: run.positions}, nil
}

// consume feeds one subtag to the state machine. end is the offset just
// past the subtag in the output serialization.
func (run *parseRun) consume(subtag string, end int) error {
	if subtag == "" {
		return ErrEmptySubtag
	}
	if len(subtag) > maxSubtagLen {
		return ErrSubtagTooLong
	}

	switch {
	case run.state == stateStart:
		return run.handlePrimaryLanguage(subtag, end)
	case run.state == stateInPrivateUse:
		return run.handlePrivateUseSubtag(subtag)
	case subtag == "x" || subtag == "X":
		return run.handleSingleton('x')
	case len(subtag) == 1 && isAlphanum(subtag[0]):
		return run.handleSingleton(toLower(subtag[0]))
	case run.state == stateInExtension:
		return run.handleExtensionSubtag(subtag, end)
	default:
		return run.handleCoreSubtag(subtag, end)
	}
}

// handlePrimaryLanguage parses the first subtag, which must be a 2-8 letter
// primary language.
func (run *parseRun) handlePrimaryLanguage(subtag string, end int) error {
	if len(subtag) < minPrimaryLangLen || !isAlphabetic(subtag) {
		return ErrInvalidLanguage
	}
	run.positions.languageEnd = end
	writeLower(&run.out, subtag)
	// Extlangs are only allowed after a short primary language.
	if len(subtag) <= shortPrimaryLangLen {
		run.state = stateAfterLanguage
	} else {
		run.state = stateAfterExtLang
	}
	return nil
}

// handlePrivateUseSubtag accepts any alphanumeric subtag once the 'x'
// singleton has been seen; nothing else may follow it.
func (run *parseRun) handlePrivateUseSubtag(subtag string) error {
	if !isAlphanumeric(subtag) {
		return ErrInvalidSubtag
	}
	run.out.WriteByte('-')
	writeLower(&run.out, subtag)
	run.valueExpected = false
	return nil
}

// handleSingleton starts an extension or, for 'x', the private-use block. A
// singleton directly following another singleton leaves an empty extension.
func (run *parseRun) handleSingleton(singleton byte) error {
	if run.state == stateInExtension && run.valueExpected {
		return ErrEmptyExtension
	}
	run.out.WriteByte('-')
	run.out.WriteByte(singleton)
	if singleton == 'x' {
		run.state = stateInPrivateUse
	} else {
		run.state = stateInExtension
	}
	run.valueExpected = true
	return nil
}

// handleExtensionSubtag accepts an alphanumeric value subtag inside an
// extension block.
func (run *parseRun) handleExtensionSubtag(subtag string, end int) error {
	if !isAlphanumeric(subtag) {
		return ErrInvalidSubtag
	}
	run.positions.extensionEnd = end
	run.out.WriteByte('-')
	writeLower(&run.out, subtag)
	run.valueExpected = false
	return nil
}

// handleCoreSubtag assigns a subtag to the extlang, script, region or
// variant slot, trying the slots in grammar order. A 3-letter alphabetic
// subtag right after a short primary language is always an extlang; a
// 3-character region must be numeric, so the two never compete.
func (run *parseRun) handleCoreSubtag(subtag string, end int) error {
	switch {
	case run.state == stateAfterLanguage && len(subtag) == extlangLen && isAlphabetic(subtag):
		run.extlangs++
		if run.extlangs > maxExtlangs {
			return ErrTooManyExtlangs
		}
		run.positions.extlangEnd = end
		run.out.WriteByte('-')
		writeLower(&run.out, subtag)
		return nil

	case run.state <= stateAfterExtLang && len(subtag) == scriptLen && isAlphabetic(subtag):
		run.positions.scriptEnd = end
		run.out.WriteByte('-')
		writeTitle(&run.out, subtag)
		run.state = stateAfterScript
		return nil

	case run.state <= stateAfterScript &&
		(len(subtag) == regionAlphaLen && isAlphabetic(subtag) ||
			len(subtag) == regionNumericLen && isNumeric(subtag)):
		run.positions.regionEnd = end
		run.out.WriteByte('-')
		writeUpper(&run.out, subtag)
		run.state = stateAfterRegion
		return nil

	case run.state <= stateAfterRegion && isAlphanumeric(subtag) &&
		(len(subtag) >= minVariantLenAlpha && isAlpha(subtag[0]) ||
			len(subtag) >= minVariantLenDigit && isDigit(subtag[0])):
		run.positions.variantEnd = end
		run.out.WriteByte('-')
		writeLower(&run.out, subtag)
		run.state = stateAfterRegion
		return nil
	}
	return ErrInvalidSubtag
}

// checkFinalState rejects tags that end right after a singleton.
func (run *parseRun) checkFinalState() error {
	if run.valueExpected {
		if run.state == stateInPrivateUse {
			return ErrEmptyPrivateUse
		}
		return ErrEmptyExtension
	}
	return nil
}

// backfillPositions forces the end offset of every absent component onto
// the previous one, keeping the offsets monotonically non-decreasing.
func (run *parseRun) backfillPositions() {
	p := &run.positions
	if p.extlangEnd < p.languageEnd {
		p.extlangEnd = p.languageEnd
	}
	if p.scriptEnd < p.extlangEnd {
		p.scriptEnd = p.extlangEnd
	}
	if p.regionEnd < p.scriptEnd {
		p.regionEnd = p.scriptEnd
	}
	if p.variantEnd < p.regionEnd {
		p.variantEnd = p.regionEnd
	}
	if p.extensionEnd < p.variantEnd {
		p.extensionEnd = p.variantEnd
	}
}
