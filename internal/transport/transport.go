// Package transport handles the file edges of export and import: artifact
// file naming, and parsing a user-selected file back into a replacement
// state. The confirmation prompt and the actual state swap stay in the CLI
// layer; import here is strictly parse-and-normalize, all or nothing.
package transport

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"curmap/pkg/domain"
	"curmap/pkg/normalize"
)

// slugFallback is used when the programme title slugifies to nothing.
const slugFallback = "programme-mapping"

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases s, collapses every non-alphanumeric run to a single
// hyphen and trims leading/trailing hyphens. An empty result falls back to
// a fixed literal so file names are never blank.
func Slugify(s string) string {
	slug := strings.Trim(nonAlnum.ReplaceAllString(strings.ToLower(s), "-"), "-")
	if slug == "" {
		return slugFallback
	}
	return slug
}

// FileName builds the export file name from the programme title and mapping
// date: <slug>-<date>.<ext>.
func FileName(prog domain.ProgrammeDetails, ext string) string {
	return fmt.Sprintf("%s-%s.%s", Slugify(prog.ProgrammeTitle), prog.MappingDate, ext)
}

// ImportJSON parses raw export data and returns the replacement state.
//
// Unparseable input yields ErrNotJSON. Input that parses but carries no
// non-empty item list yields ErrNotMapping; the raw value is checked before
// normalization, because the Normalizer would otherwise seed a default item
// over an empty list and mask the rejection. Both the payload envelope and
// a bare {programme, items} object are accepted.
func ImportJSON(raw []byte, now time.Time) (*domain.State, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, domain.ErrNotJSON
	}

	obj, ok := parsed.(map[string]any)
	if !ok {
		return nil, domain.ErrNotMapping
	}
	rawItems, ok := obj["items"].([]any)
	if !ok || len(rawItems) == 0 {
		return nil, domain.ErrNotMapping
	}

	return normalize.State(obj, now), nil
}
