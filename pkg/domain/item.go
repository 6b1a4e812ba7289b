package domain

import "github.com/google/uuid"

// ItemType classifies a mapping item.
type ItemType string

const (
	TypeModule     ItemType = "Module"
	TypeActivity   ItemType = "Activity"
	TypeAssessment ItemType = "Assessment"
)

// ItemTypes returns the valid item types in report order.
func ItemTypes() []ItemType {
	return []ItemType{TypeModule, TypeActivity, TypeAssessment}
}

// CoerceType maps an arbitrary string onto a valid ItemType.
// Anything that is not an exact valid literal (including near-misses)
// falls back to Module.
func CoerceType(s string) ItemType {
	switch ItemType(s) {
	case TypeModule, TypeActivity, TypeAssessment:
		return ItemType(s)
	}
	return TypeModule
}

// Plural returns the section heading form of the type.
// Fixed lookup, not a generic pluralizer.
func (t ItemType) Plural() string {
	switch t {
	case TypeActivity:
		return "Activities"
	case TypeAssessment:
		return "Assessments"
	default:
		return "Modules"
	}
}

// MappingItem is a single user-entered curriculum record.
//
// Invariant: DomainTags always contains exactly the six canonical keys.
// The Normalizer enforces this on every load and import.
type MappingItem struct {
	ID         string   `json:"id"`
	Type       ItemType `json:"type"`
	Name       string   `json:"name"`
	Notes      string   `json:"notes"`
	DomainTags TagSet   `json:"domainTags"`
}

// NewItem creates a blank item of the given type with a fresh ID and a
// fully initialized tag set.
func NewItem(t ItemType) MappingItem {
	return MappingItem{
		ID:         uuid.NewString(),
		Type:       t,
		Name:       "",
		Notes:      "",
		DomainTags: NewTagSet(),
	}
}
