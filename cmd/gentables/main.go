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

// Command gentables regenerates langtag/tables.go, the exception tables of
// the langtag package, from an IANA Language Subtag Registry file.
//
// By default it fetches the current registry from iana.org; pass -registry
// to use a local copy instead:
//
//	go run ./cmd/gentables -output langtag/tables.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"io"
	"log/slog"
	"net/http"
	"os"
	"text/template"

	"github.com/jplu/langtags/langtag"
)

const defaultRegistryURL = "https://www.iana.org/assignments/language-subtag-registry/language-subtag-registry"

func main() {
	registryPath := flag.String("registry", "", "path to a local registry file; the IANA registry is fetched when empty")
	registryURL := flag.String("url", defaultRegistryURL, "URL to fetch the registry from when -registry is not set")
	output := flag.String("output", "langtag/tables.go", "path of the generated file")
	flag.Parse()

	if err := run(*registryPath, *registryURL, *output); err != nil {
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		logger.Error("table generation failed", "error", err)
		os.Exit(1)
	}
}

func run(registryPath, registryURL, output string) error {
	reader, err := openRegistry(registryPath, registryURL)
	if err != nil {
		return err
	}
	defer reader.Close()

	registry, err := langtag.ParseRegistry(reader)
	if err != nil {
		return fmt.Errorf("failed to parse registry: %w", err)
	}

	source, err := render(registry)
	if err != nil {
		return fmt.Errorf("failed to render tables: %w", err)
	}
	formatted, err := format.Source(source)
	if err != nil {
		return fmt.Errorf("failed to format generated source: %w", err)
	}
	if err := os.WriteFile(output, formatted, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}
	return nil
}

// openRegistry returns the registry content, either from a local file or
// fetched from the given URL.
func openRegistry(registryPath, registryURL string) (io.ReadCloser, error) {
	if registryPath != "" {
		file, err := os.Open(registryPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open registry file: %w", err)
		}
		return file, nil
	}

	resp, err := http.Get(registryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch registry: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("failed to fetch registry: unexpected status %s", resp.Status)
	}
	return resp.Body, nil
}

// render fills the tables.go template with the tables derived from the
// registry.
func render(registry *langtag.Registry) ([]byte, error) {
	tmpl, err := template.New("tables").Parse(tablesTemplate)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, struct {
		Grandfathered       []langtag.GrandfatheredEntry
		DeprecatedLanguages []langtag.Replacement
		DeprecatedRegions   []langtag.Replacement
	}{
		Grandfathered:       registry.Grandfathered(),
		DeprecatedLanguages: registry.DeprecatedLanguages(),
		DeprecatedRegions:   registry.DeprecatedRegions(),
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

const tablesTemplate = `/*
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
{{- range .Grandfathered}}
	{ {{- printf "%q, %q" .Tag .Preferred -}} },
{{- end}}
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
{{- range .DeprecatedLanguages}}
	{{printf "%q: %q" .Subtag .Preferred}},
{{- end}}
}

// deprecatedRegion maps deprecated region subtags to their Preferred-Value.
// Keys and values are uppercase, matching the case normalization applied to
// the region component.
var deprecatedRegion = map[string]string{
{{- range .DeprecatedRegions}}
	{{printf "%q: %q" .Subtag .Preferred}},
{{- end}}
}
`
