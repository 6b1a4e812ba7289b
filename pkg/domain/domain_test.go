package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeys(t *testing.T) {
	keys := Keys()
	require.Len(t, keys, 6)
	assert.Equal(t, KeyAwareness, keys[0])
	assert.Equal(t, KeyReflection, keys[5])

	for _, k := range keys {
		assert.True(t, ValidKey(k))
	}
	assert.False(t, ValidKey("creativity"))
	assert.False(t, ValidKey(""))
}

func TestNewTagSet(t *testing.T) {
	tags := NewTagSet()
	require.Len(t, tags, 6)
	for _, k := range Keys() {
		v, ok := tags[k]
		assert.True(t, ok)
		assert.False(t, v)
	}
}

func TestTagSetActive(t *testing.T) {
	tags := NewTagSet()
	assert.Empty(t, tags.Active())

	// Active order follows the registry, not insertion order.
	tags[KeyReflection] = true
	tags[KeyAwareness] = true
	assert.Equal(t, []Key{KeyAwareness, KeyReflection}, tags.Active())
}

func TestCoerceType(t *testing.T) {
	assert.Equal(t, TypeModule, CoerceType("Module"))
	assert.Equal(t, TypeActivity, CoerceType("Activity"))
	assert.Equal(t, TypeAssessment, CoerceType("Assessment"))

	// Near-misses and garbage all land on Module.
	assert.Equal(t, TypeModule, CoerceType("module"))
	assert.Equal(t, TypeModule, CoerceType("Activities"))
	assert.Equal(t, TypeModule, CoerceType(""))
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "Modules", TypeModule.Plural())
	assert.Equal(t, "Activities", TypeActivity.Plural())
	assert.Equal(t, "Assessments", TypeAssessment.Plural())
}

func TestNewState(t *testing.T) {
	now := time.Date(2024, 3, 1, 23, 30, 0, 0, time.UTC)
	state := NewState(now)

	require.Len(t, state.Items, 1)
	assert.Equal(t, TypeModule, state.Items[0].Type)
	assert.Len(t, state.Items[0].DomainTags, 6)
	assert.Equal(t, "2024-03-01", state.Programme.MappingDate)
	assert.Equal(t, DefaultVersion, state.Programme.Version)
	assert.Equal(t, 0, state.TotalTags())
}

func TestTotalTags(t *testing.T) {
	state := NewState(time.Now())
	state.Items[0].DomainTags[KeyAwareness] = true
	state.Items = append(state.Items, NewItem(TypeActivity))
	state.Items[1].DomainTags[KeyAwareness] = true
	state.Items[1].DomainTags[KeyEthics] = true

	assert.Equal(t, 3, state.TotalTags())
}

func TestFindItem(t *testing.T) {
	state := NewState(time.Now())
	assert.Equal(t, 0, state.FindItem(state.Items[0].ID))
	assert.Equal(t, -1, state.FindItem("missing"))
}
