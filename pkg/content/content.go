// Package content holds the editable prose surrounding a mapping report: the
// tool's name and framing statements plus the display text for the six
// domain lenses. The core consumes this as opaque configuration so the
// wording can be revised without touching mapping logic. The domain keys and
// their count are not configuration: a pack that does not carry exactly the
// six canonical keys in canonical order is rejected.
package content

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"curmap/pkg/domain"
)

// Content is the full prose pack consumed by the report builder and CLI.
type Content struct {
	ToolName       string          `yaml:"tool_name"`
	Subtitle       string          `yaml:"subtitle"`
	Purpose        string          `yaml:"purpose"`
	Privacy        string          `yaml:"privacy"`
	Interpretation string          `yaml:"interpretation"`
	Limitations    string          `yaml:"limitations"`
	Domains        []domain.Domain `yaml:"domains"`
}

// Default returns the canonical content pack.
func Default() Content {
	return Content{
		ToolName: "AI Curriculum Mapper",
		Subtitle: "Map modules, activities and assessments against six AI-literacy domains.",
		Purpose: "This report records where a programme's modules, learning activities and " +
			"assessments touch six domains of AI literacy. It is intended to support curriculum " +
			"review conversations, not to audit or grade the programme.",
		Privacy: "All mapping data stays in the local workspace file. Nothing is uploaded or " +
			"shared unless you choose to send this report to someone.",
		Interpretation: "Read the coverage table and observations as conversation starters. A low " +
			"count is not a deficiency; it may simply reflect the programme's focus. Discuss with " +
			"colleagues whether the pattern matches your intentions for graduates.",
		Limitations: "This mapping reflects one person's tagging at one point in time. Counts say " +
			"nothing about the depth or quality of engagement within an item, and the six domains " +
			"are lenses, not a complete model of AI literacy.",
		Domains: []domain.Domain{
			{
				Key:    domain.KeyAwareness,
				Name:   "Awareness",
				Short:  "Awareness",
				Prompt: "Where do learners build a working understanding of what AI systems can and cannot do?",
			},
			{
				Key:    domain.KeyCoAgency,
				Name:   "Co-Agency",
				Short:  "Co-Agency",
				Prompt: "Where do learners practise working with AI as a collaborator while keeping human judgement in charge?",
			},
			{
				Key:    domain.KeyPractice,
				Name:   "Practice",
				Short:  "Practice",
				Prompt: "Where do learners get hands-on experience using AI tools in discipline-relevant tasks?",
			},
			{
				Key:    domain.KeyEthics,
				Name:   "Ethics",
				Short:  "Ethics",
				Prompt: "Where do learners examine fairness, bias, transparency and the responsible use of AI?",
			},
			{
				Key:    domain.KeyGovernance,
				Name:   "Governance",
				Short:  "Governance",
				Prompt: "Where do learners meet policy, regulation and institutional rules around AI use?",
			},
			{
				Key:    domain.KeyReflection,
				Name:   "Reflection",
				Short:  "Reflection",
				Prompt: "Where do learners step back and consider how AI is shaping their learning and their field?",
			},
		},
	}
}

// Load reads a YAML content pack from path, layered over the defaults: any
// field left empty in the file keeps its default value. A missing file is
// not an error and yields the defaults unchanged.
func Load(path string) (Content, error) {
	c := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return c, fmt.Errorf("failed to read content pack: %w", err)
	}

	var override Content
	if err := yaml.Unmarshal(data, &override); err != nil {
		return c, fmt.Errorf("failed to parse content pack: %w", err)
	}

	merge(&c, override)
	if err := c.Validate(); err != nil {
		return Default(), err
	}
	return c, nil
}

// Validate checks the structural invariant: exactly six domains, canonical
// keys, canonical order, no blank display names.
func (c Content) Validate() error {
	keys := domain.Keys()
	if len(c.Domains) != len(keys) {
		return fmt.Errorf("content pack must define exactly %d domains, got %d", len(keys), len(c.Domains))
	}
	for i, d := range c.Domains {
		if d.Key != keys[i] {
			return fmt.Errorf("domain %d: expected key %q, got %q", i, keys[i], d.Key)
		}
		if d.Name == "" || d.Short == "" {
			return fmt.Errorf("domain %q: name and short label are required", d.Key)
		}
	}
	return nil
}

func merge(base *Content, override Content) {
	if override.ToolName != "" {
		base.ToolName = override.ToolName
	}
	if override.Subtitle != "" {
		base.Subtitle = override.Subtitle
	}
	if override.Purpose != "" {
		base.Purpose = override.Purpose
	}
	if override.Privacy != "" {
		base.Privacy = override.Privacy
	}
	if override.Interpretation != "" {
		base.Interpretation = override.Interpretation
	}
	if override.Limitations != "" {
		base.Limitations = override.Limitations
	}
	if len(override.Domains) > 0 {
		base.Domains = override.Domains
	}
}
