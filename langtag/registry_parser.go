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
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	keyValParts         = 2
	rangeParts          = 2
	maxNumericExpansion = 1000 // Largest numeric range the registry uses is three digits.
	maxAlphaExpansion   = 40000
)

// registryParser holds the state for parsing a registry file.
type registryParser struct {
	registry      *Registry
	currentFields map[string][]string
	lastFieldName string
}

// processLine handles a single line from the registry file. The format is a
// record-jar: "%%" separates records, "Name: value" starts a field, and a
// line beginning with whitespace continues the previous field.
func (p *registryParser) processLine(line string) error {
	if line == "%%" {
		if err := p.flushRecord(); err != nil {
			return err
		}
		return nil
	}

	if len(line) > 0 && (line[0] == ' ' || line[0] == '\t') {
		if p.lastFieldName != "" && len(p.currentFields[p.lastFieldName]) > 0 {
			lastIdx := len(p.currentFields[p.lastFieldName]) - 1
			p.currentFields[p.lastFieldName][lastIdx] += " " + strings.TrimSpace(line)
		}
		return nil
	}

	parts := strings.SplitN(line, ":", keyValParts)
	if len(parts) != keyValParts {
		return nil
	}

	fieldName, fieldBody := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	if strings.EqualFold(fieldName, "File-Date") && len(p.registry.Records) == 0 {
		p.registry.FileDate = fieldBody
		return nil
	}

	fieldNameLower := strings.ToLower(fieldName)
	p.currentFields[fieldNameLower] = append(p.currentFields[fieldNameLower], fieldBody)
	p.lastFieldName = fieldNameLower
	return nil
}

// flushRecord builds a record from the collected fields, expanding range
// notation, and resets the field buffer.
func (p *registryParser) flushRecord() error {
	defer func() {
		p.currentFields = make(map[string][]string)
		p.lastFieldName = ""
	}()
	if len(p.currentFields) == 0 {
		return nil
	}
	record := buildRecord(p.currentFields)
	if record.Type == "" {
		return nil
	}
	return p.addRecord(record)
}

// addRecord appends a record to the registry, expanding "a..b" range
// notation in the Subtag or Tag field into individual records.
func (p *registryParser) addRecord(record Record) error {
	switch {
	case strings.Contains(record.Subtag, ".."):
		subtags, err := expandRange(record.Subtag)
		if err != nil {
			return fmt.Errorf("failed to expand subtag range %q: %w", record.Subtag, err)
		}
		for _, sub := range subtags {
			expanded := record
			expanded.Subtag = sub
			p.registry.Records = append(p.registry.Records, expanded)
		}
	case strings.Contains(record.Tag, ".."):
		tags, err := expandRange(record.Tag)
		if err != nil {
			return fmt.Errorf("failed to expand tag range %q: %w", record.Tag, err)
		}
		for _, tag := range tags {
			expanded := record
			expanded.Tag = tag
			p.registry.Records = append(p.registry.Records, expanded)
		}
	default:
		p.registry.Records = append(p.registry.Records, record)
	}
	return nil
}

// ParseRegistry reads an IANA Language Subtag Registry file from the given
// reader and returns the parsed Registry. It handles field continuation
// lines and range notation (e.g. "qaa..qtz").
func ParseRegistry(r io.Reader) (*Registry, error) {
	scanner := bufio.NewScanner(r)
	p := &registryParser{
		registry:      &Registry{},
		currentFields: make(map[string][]string),
	}

	for scanner.Scan() {
		if err := p.processLine(scanner.Text()); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if err := p.flushRecord(); err != nil {
		return nil, err
	}
	return p.registry, nil
}

// buildRecord converts a map of raw field values into a Record.
func buildRecord(fields map[string][]string) Record {
	getString := func(key string) string {
		if v, ok := fields[key]; ok && len(v) > 0 {
			return v[0]
		}
		return ""
	}
	return Record{
		Description:    fields["description"],
		Prefix:         fields["prefix"],
		Type:           getString("type"),
		Subtag:         getString("subtag"),
		Tag:            getString("tag"),
		Added:          getString("added"),
		Deprecated:     getString("deprecated"),
		PreferredValue: getString("preferred-value"),
		SuppressScript: getString("suppress-script"),
	}
}

// expandRange expands a subtag range into a slice of individual subtags.
func expandRange(rangeStr string) ([]string, error) {
	parts := strings.Split(rangeStr, "..")
	if len(parts) != rangeParts {
		return nil, fmt.Errorf("invalid range format: %s", rangeStr)
	}
	start, end := parts[0], parts[1]

	if len(start) != len(end) || start == "" {
		return nil, fmt.Errorf("range start/end must have same, non-zero length: %s", rangeStr)
	}

	if isNumeric(start) && isNumeric(end) {
		return expandNumericRange(start, end)
	}
	if isAlphabetic(start) && isAlphabetic(end) {
		return expandAlphabeticRange(start, end)
	}
	return nil, fmt.Errorf("range must be purely alphabetic or purely numeric: %s", rangeStr)
}

// expandNumericRange expands a numeric range (e.g. "001..003"), preserving
// the zero padding of the bounds.
func expandNumericRange(start, end string) ([]string, error) {
	startNum, err1 := strconv.Atoi(start)
	endNum, err2 := strconv.Atoi(end)
	if err1 != nil || err2 != nil {
		return nil, fmt.Errorf("invalid numeric range: %s..%s", start, end)
	}
	if startNum > endNum {
		return nil, fmt.Errorf("start of range cannot be greater than end: %s..%s", start, end)
	}
	if endNum-startNum > maxNumericExpansion {
		return nil, fmt.Errorf("numeric range is too large to expand: %s..%s", start, end)
	}

	var result []string
	format := fmt.Sprintf("%%0%dd", len(start))
	for i := startNum; i <= endNum; i++ {
		result = append(result, fmt.Sprintf(format, i))
	}
	return result, nil
}

// expandAlphabeticRange expands an alphabetic range (e.g. "qaa..qtz") by
// counting in base 26 over lowercase letters.
func expandAlphabeticRange(start, end string) ([]string, error) {
	current := []byte(strings.ToLower(start))
	endBytes := []byte(strings.ToLower(end))

	if bytes.Compare(current, endBytes) > 0 {
		return nil, fmt.Errorf("start of alphabetic range cannot be greater than end: %s..%s", start, end)
	}

	var result []string
	for {
		result = append(result, string(current))
		if bytes.Equal(current, endBytes) {
			break
		}
		if len(result) > maxAlphaExpansion {
			return nil, fmt.Errorf("alphabetic range is too large to expand: %s..%s", start, end)
		}

		i := len(current) - 1
		for {
			current[i]++
			if current[i] <= 'z' {
				break
			}
			current[i] = 'a'
			i--
		}
	}
	return result, nil
}
