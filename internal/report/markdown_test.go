package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"curmap/pkg/content"
	"curmap/pkg/coverage"
	"curmap/pkg/domain"
)

var exportedAt = time.Date(2024, 3, 1, 14, 0, 0, 0, time.UTC)

func buildTestMarkdown(t *testing.T, prog domain.ProgrammeDetails, items []domain.MappingItem) string {
	t.Helper()
	b := NewBuilder(content.Default())
	counts := coverage.Compute(items)
	obs := coverage.Observations(content.Default().Domains, items, counts)
	return b.Markdown(prog, items, counts, obs, exportedAt)
}

func taggedItem(typ domain.ItemType, name, notes string, keys ...domain.Key) domain.MappingItem {
	item := domain.NewItem(typ)
	item.Name = name
	item.Notes = notes
	for _, k := range keys {
		item.DomainTags[k] = true
	}
	return item
}

func TestMarkdownSections(t *testing.T) {
	prog := domain.ProgrammeDetails{
		ProgrammeTitle: "MSc Public Health",
		MappingDate:    "2024-03-01",
		Version:        "v0.1",
	}
	items := []domain.MappingItem{
		taggedItem(domain.TypeModule, "Foundations", "", domain.KeyAwareness),
	}
	md := buildTestMarkdown(t, prog, items)

	t.Run("title uses the programme title", func(t *testing.T) {
		assert.True(t, strings.HasPrefix(md, "# MSc Public Health\n"))
	})

	t.Run("tool line carries name and timestamp", func(t *testing.T) {
		assert.Contains(t, md, "AI Curriculum Mapper — exported 2024-03-01 14:00 UTC")
	})

	t.Run("sections appear in fixed order", func(t *testing.T) {
		sections := []string{
			"## Programme details",
			"## About this report",
			"## Domain coverage",
			"## Observations",
			"## Domain lenses",
			"## Modules",
			"## Activities",
			"## Assessments",
			"## How to read this report",
			"## Limitations",
		}
		last := -1
		for _, s := range sections {
			idx := strings.Index(md, s)
			require.GreaterOrEqual(t, idx, 0, "missing section %s", s)
			assert.Greater(t, idx, last, "section %s out of order", s)
			last = idx
		}
	})

	t.Run("blank programme fields render the placeholder", func(t *testing.T) {
		assert.Contains(t, md, "- **Award level:** —")
		assert.Contains(t, md, "- **Institution:** —")
		assert.Contains(t, md, "- **Mapping date:** 2024-03-01")
	})

	t.Run("coverage table lists all domains in registry order", func(t *testing.T) {
		awareness := strings.Index(md, "| Awareness | 1 |")
		reflection := strings.Index(md, "| Reflection | 0 |")
		require.GreaterOrEqual(t, awareness, 0)
		require.GreaterOrEqual(t, reflection, 0)
		assert.Less(t, awareness, reflection)
	})
}

func TestMarkdownFallbacks(t *testing.T) {
	prog := domain.ProgrammeDetails{MappingDate: "2024-03-01", Version: "v0.1"}

	t.Run("missing title falls back to the fixed literal", func(t *testing.T) {
		md := buildTestMarkdown(t, prog, []domain.MappingItem{domain.NewItem(domain.TypeModule)})
		assert.True(t, strings.HasPrefix(md, "# Programme mapping\n"))
	})

	t.Run("blank item name renders Untitled, blank notes the placeholder", func(t *testing.T) {
		md := buildTestMarkdown(t, prog, []domain.MappingItem{
			taggedItem(domain.TypeModule, "", "", domain.KeyEthics),
		})
		assert.Contains(t, md, "| 1 | Untitled | Ethics | — |")
	})

	t.Run("untagged item renders the explicit none marker", func(t *testing.T) {
		md := buildTestMarkdown(t, prog, []domain.MappingItem{
			taggedItem(domain.TypeModule, "Plain module", "n/a"),
		})
		assert.Contains(t, md, "| 1 | Plain module | none | n/a |")
	})

	t.Run("empty type sections say none recorded", func(t *testing.T) {
		md := buildTestMarkdown(t, prog, []domain.MappingItem{
			taggedItem(domain.TypeModule, "Only module", ""),
		})
		assert.Contains(t, md, "## Activities\n\n_None recorded._")
		assert.Contains(t, md, "## Assessments\n\n_None recorded._")
	})
}

func TestMarkdownTagOrderAndEscaping(t *testing.T) {
	prog := domain.ProgrammeDetails{MappingDate: "2024-03-01"}

	t.Run("domain cell follows registry order regardless of tag order", func(t *testing.T) {
		// Tag ethics before awareness; the cell must still read
		// "Awareness, Ethics".
		item := taggedItem(domain.TypeActivity, "Debate", "", domain.KeyEthics, domain.KeyAwareness)
		md := buildTestMarkdown(t, prog, []domain.MappingItem{item})
		assert.Contains(t, md, "| 1 | Debate | Awareness, Ethics | — |")
		assert.NotContains(t, md, "Ethics, Awareness")
	})

	t.Run("pipes in names and notes are escaped", func(t *testing.T) {
		item := taggedItem(domain.TypeModule, "Intro | Advanced", "cell | break", domain.KeyPractice)
		md := buildTestMarkdown(t, prog, []domain.MappingItem{item})
		assert.Contains(t, md, `Intro \| Advanced`)
		assert.Contains(t, md, `cell \| break`)
		assert.NotContains(t, md, "| Intro | Advanced |")
	})

	t.Run("indexes are per-table and one-based", func(t *testing.T) {
		items := []domain.MappingItem{
			taggedItem(domain.TypeModule, "M1", "", domain.KeyAwareness),
			taggedItem(domain.TypeActivity, "A1", "", domain.KeyAwareness),
			taggedItem(domain.TypeModule, "M2", "", domain.KeyAwareness),
		}
		md := buildTestMarkdown(t, prog, items)
		assert.Contains(t, md, "| 1 | M1 |")
		assert.Contains(t, md, "| 2 | M2 |")
		assert.Contains(t, md, "| 1 | A1 |")
	})
}

func TestPayload(t *testing.T) {
	b := NewBuilder(content.Default())
	prog := domain.ProgrammeDetails{ProgrammeTitle: "X"}
	items := []domain.MappingItem{domain.NewItem(domain.TypeModule)}

	payload := b.Payload(prog, items, exportedAt)
	assert.Equal(t, "AI Curriculum Mapper", payload.Tool)
	assert.Equal(t, "2024-03-01T14:00:00Z", payload.ExportedAt)
	assert.Equal(t, prog, payload.Programme)
	assert.Equal(t, items, payload.Items)
}

func TestMarkdownDeterminism(t *testing.T) {
	prog := domain.ProgrammeDetails{ProgrammeTitle: "X", MappingDate: "2024-03-01"}
	items := []domain.MappingItem{
		taggedItem(domain.TypeModule, "M", "", domain.KeyAwareness, domain.KeyGovernance),
		taggedItem(domain.TypeAssessment, "E", "", domain.KeyReflection),
	}
	first := buildTestMarkdown(t, prog, items)
	for i := 0; i < 25; i++ {
		assert.Equal(t, first, buildTestMarkdown(t, prog, items))
	}
}
