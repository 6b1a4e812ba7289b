package domain

import "errors"

// ErrNotJSON is returned when an import file cannot be parsed as JSON.
var ErrNotJSON = errors.New("file is not valid JSON")

// ErrNotMapping is returned when an import file parses but does not contain
// a usable mapping (no non-empty item list).
var ErrNotMapping = errors.New("not a recognized mapping export")

// ErrNothingTagged is returned when an export is requested while no item
// carries any domain tag. Exporting a content-free report is refused.
var ErrNothingTagged = errors.New("no domain tags set; nothing to export")

// ErrItemNotFound is returned when an item ID (or prefix) matches nothing.
var ErrItemNotFound = errors.New("item not found")
