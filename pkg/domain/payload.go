package domain

// ExportPayload is the canonical on-disk shape for JSON export.
// Import accepts either this envelope or a bare {programme, items} object;
// both carry programme and items at the top level.
type ExportPayload struct {
	Tool       string           `json:"tool"`
	ExportedAt string           `json:"exportedAt"`
	Programme  ProgrammeDetails `json:"programme"`
	Items      []MappingItem    `json:"items"`
}
