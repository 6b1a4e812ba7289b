// Package report renders a workspace state into its two export artifacts:
// the Markdown report and the JSON export envelope. Rendering is a pure
// function of its inputs; the caller supplies the timestamp.
package report

import (
	"fmt"
	"strings"
	"time"

	"curmap/pkg/content"
	"curmap/pkg/coverage"
	"curmap/pkg/domain"
)

// blank is the placeholder rendered for empty programme fields and notes.
const blank = "—"

// fallbackTitle is used when the programme has no title.
const fallbackTitle = "Programme mapping"

// Builder renders reports using a fixed content pack.
type Builder struct {
	content content.Content
}

// NewBuilder creates a Builder over the given content pack.
func NewBuilder(c content.Content) *Builder {
	return &Builder{content: c}
}

// Payload wraps the state into the export envelope with the tool name and
// the export timestamp.
func (b *Builder) Payload(prog domain.ProgrammeDetails, items []domain.MappingItem, exportedAt time.Time) domain.ExportPayload {
	return domain.ExportPayload{
		Tool:       b.content.ToolName,
		ExportedAt: exportedAt.Format(time.RFC3339),
		Programme:  prog,
		Items:      items,
	}
}

// Markdown renders the full report. Section order is fixed: title, tool
// line, programme details, purpose and privacy framing, coverage table,
// observations, domain lenses, one item table per type (Modules,
// Activities, Assessments), then interpretation and limitations.
func (b *Builder) Markdown(prog domain.ProgrammeDetails, items []domain.MappingItem, counts map[domain.Key]int, observations []string, exportedAt time.Time) string {
	var md strings.Builder

	title := prog.ProgrammeTitle
	if title == "" {
		title = fallbackTitle
	}
	fmt.Fprintf(&md, "# %s\n\n", title)
	fmt.Fprintf(&md, "_%s — exported %s_\n\n", b.content.ToolName, exportedAt.Format("2006-01-02 15:04 MST"))

	md.WriteString("## Programme details\n\n")
	for _, row := range []struct{ label, value string }{
		{"Programme title", prog.ProgrammeTitle},
		{"Award level", prog.AwardLevel},
		{"Department", prog.Department},
		{"Institution", prog.Institution},
		{"Mapping date", prog.MappingDate},
		{"Version", prog.Version},
	} {
		fmt.Fprintf(&md, "- **%s:** %s\n", row.label, orBlank(row.value))
	}
	md.WriteString("\n")

	md.WriteString("## About this report\n\n")
	md.WriteString(b.content.Subtitle + "\n\n")
	md.WriteString(b.content.Purpose + "\n\n")
	md.WriteString(b.content.Privacy + "\n\n")

	md.WriteString("## Domain coverage\n\n")
	md.WriteString("| Domain | Items tagged |\n")
	md.WriteString("| --- | --- |\n")
	for _, d := range b.content.Domains {
		fmt.Fprintf(&md, "| %s | %d |\n", escapeCell(d.Name), counts[d.Key])
	}
	md.WriteString("\n")

	md.WriteString("## Observations\n\n")
	for _, o := range observations {
		fmt.Fprintf(&md, "- %s\n", o)
	}
	md.WriteString("\n")

	md.WriteString("## Domain lenses\n\n")
	for _, d := range b.content.Domains {
		fmt.Fprintf(&md, "- **%s** — %s\n", d.Name, d.Prompt)
	}
	md.WriteString("\n")

	for _, t := range domain.ItemTypes() {
		b.writeItemTable(&md, t, items)
	}

	md.WriteString("## How to read this report\n\n")
	md.WriteString(b.content.Interpretation + "\n\n")
	md.WriteString("## Limitations\n\n")
	md.WriteString(b.content.Limitations + "\n")

	return md.String()
}

// writeItemTable emits the section for one item type, keeping the original
// item order within the type.
func (b *Builder) writeItemTable(md *strings.Builder, t domain.ItemType, items []domain.MappingItem) {
	fmt.Fprintf(md, "## %s\n\n", t.Plural())

	var ofType []domain.MappingItem
	for _, item := range items {
		if item.Type == t {
			ofType = append(ofType, item)
		}
	}
	if len(ofType) == 0 {
		md.WriteString("_None recorded._\n\n")
		return
	}

	md.WriteString("| # | Name | Domains | Notes |\n")
	md.WriteString("| --- | --- | --- | --- |\n")
	for i, item := range ofType {
		name := item.Name
		if name == "" {
			name = "Untitled"
		}
		fmt.Fprintf(md, "| %d | %s | %s | %s |\n",
			i+1, escapeCell(name), escapeCell(b.tagCell(item)), escapeCell(orBlank(item.Notes)))
	}
	md.WriteString("\n")
}

// tagCell joins the short labels of the item's active tags in registry
// order, or "none" when the item carries no tags.
func (b *Builder) tagCell(item domain.MappingItem) string {
	var labels []string
	for _, d := range b.content.Domains {
		if item.DomainTags[d.Key] {
			labels = append(labels, d.Short)
		}
	}
	if len(labels) == 0 {
		return "none"
	}
	return strings.Join(labels, ", ")
}

// escapeCell keeps literal pipes from breaking the table row.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}

func orBlank(s string) string {
	if s == "" {
		return blank
	}
	return s
}

// CoverageMarkdown renders just the coverage table and observations, used by
// the terminal coverage view.
func (b *Builder) CoverageMarkdown(items []domain.MappingItem) string {
	counts := coverage.Compute(items)
	observations := coverage.Observations(b.content.Domains, items, counts)

	var md strings.Builder
	md.WriteString("## Domain coverage\n\n")
	md.WriteString("| Domain | Items tagged |\n")
	md.WriteString("| --- | --- |\n")
	for _, d := range b.content.Domains {
		fmt.Fprintf(&md, "| %s | %d |\n", escapeCell(d.Name), counts[d.Key])
	}
	md.WriteString("\n## Observations\n\n")
	for _, o := range observations {
		fmt.Fprintf(&md, "- %s\n", o)
	}
	return md.String()
}
