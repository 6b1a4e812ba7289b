package domain

import "time"

// State is the full workspace snapshot: programme metadata plus the ordered
// list of mapping items. It is replaced wholesale on import and persisted
// write-through after every mutation.
type State struct {
	Programme ProgrammeDetails `json:"programme"`
	Items     []MappingItem    `json:"items"`
}

// NewState creates the default state: blank programme details dated today
// and exactly one blank Module item.
func NewState(now time.Time) *State {
	return &State{
		Programme: NewProgramme(now),
		Items:     []MappingItem{NewItem(TypeModule)},
	}
}

// TotalTags counts the true domain-tag entries across all items.
func (s *State) TotalTags() int {
	total := 0
	for _, item := range s.Items {
		for _, k := range Keys() {
			if item.DomainTags[k] {
				total++
			}
		}
	}
	return total
}

// FindItem returns the index of the item whose ID matches id exactly,
// or -1 if absent.
func (s *State) FindItem(id string) int {
	for i, item := range s.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}
