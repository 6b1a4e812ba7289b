// Package normalize is the trust boundary between untrusted JSON and the
// strict internal data model. Every value loaded from the workspace file or
// an imported export passes through here exactly once.
//
// Nothing in this package returns an error: malformed, missing, or
// version-skewed input degrades field by field to defaults instead.
package normalize

import (
	"time"

	"curmap/pkg/domain"
)

// State normalizes an arbitrary value purporting to be a persisted or
// imported workspace state into a well-formed State. The input may be the
// result of unmarshalling completely adversarial JSON.
func State(v any, now time.Time) *domain.State {
	obj, _ := v.(map[string]any)
	return &domain.State{
		Programme: Programme(obj["programme"], now),
		Items:     Items(obj["items"]),
	}
}

// Programme keeps each supplied field if and only if it is a string, and
// substitutes the field's default otherwise. Non-object input yields all
// defaults.
func Programme(v any, now time.Time) domain.ProgrammeDetails {
	def := domain.NewProgramme(now)
	obj, ok := v.(map[string]any)
	if !ok {
		return def
	}
	return domain.ProgrammeDetails{
		ProgrammeTitle: stringOr(obj["programmeTitle"], def.ProgrammeTitle),
		AwardLevel:     stringOr(obj["awardLevel"], def.AwardLevel),
		Department:     stringOr(obj["department"], def.Department),
		Institution:    stringOr(obj["institution"], def.Institution),
		MappingDate:    stringOr(obj["mappingDate"], def.MappingDate),
		Version:        stringOr(obj["version"], def.Version),
	}
}

// Items normalizes an arbitrary value into a non-empty item list. Anything
// that is not a non-empty sequence yields a single fresh default Module item.
// Elements are normalized independently, so one malformed entry cannot
// poison its neighbours.
func Items(v any) []domain.MappingItem {
	seq, ok := v.([]any)
	if !ok || len(seq) == 0 {
		return []domain.MappingItem{domain.NewItem(domain.TypeModule)}
	}
	items := make([]domain.MappingItem, 0, len(seq))
	for _, elem := range seq {
		items = append(items, Item(elem))
	}
	return items
}

// Item normalizes a single element: the ID is preserved only if it is a
// string (fresh otherwise), the type is coerced to a valid literal, and the
// tag set is rebuilt from scratch so it always carries exactly the six
// canonical keys.
func Item(v any) domain.MappingItem {
	item := domain.NewItem(domain.TypeModule)
	obj, ok := v.(map[string]any)
	if !ok {
		return item
	}
	if id, ok := obj["id"].(string); ok {
		item.ID = id
	}
	if t, ok := obj["type"].(string); ok {
		item.Type = domain.CoerceType(t)
	}
	item.Name = stringOr(obj["name"], "")
	item.Notes = stringOr(obj["notes"], "")
	item.DomainTags = Tags(obj["domainTags"])
	return item
}

// Tags overlays any boolean entries found in the source onto a fully
// false-initialized six-key set. Extra keys from other versions are dropped;
// non-boolean values are ignored.
func Tags(v any) domain.TagSet {
	tags := domain.NewTagSet()
	obj, ok := v.(map[string]any)
	if !ok {
		return tags
	}
	for _, k := range domain.Keys() {
		if b, ok := obj[string(k)].(bool); ok {
			tags[k] = b
		}
	}
	return tags
}

func stringOr(v any, def string) string {
	if s, ok := v.(string); ok {
		return s
	}
	return def
}
