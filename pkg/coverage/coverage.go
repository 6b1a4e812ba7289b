// Package coverage derives per-domain tag counts and the human-readable
// observation sentences shown in reports. Everything here is pure and
// deterministic: identical input produces byte-identical output, and domain
// iteration always follows registry order, never map order.
package coverage

import (
	"fmt"
	"sort"
	"strings"

	"curmap/pkg/domain"
)

// Compute counts, for each of the six domain keys, how many items have that
// key tagged true. All six keys are present in the result even at zero.
func Compute(items []domain.MappingItem) map[domain.Key]int {
	counts := make(map[domain.Key]int, 6)
	for _, k := range domain.Keys() {
		counts[k] = 0
	}
	for _, item := range items {
		for _, k := range domain.Keys() {
			if item.DomainTags[k] {
				counts[k]++
			}
		}
	}
	return counts
}

// Total sums the per-domain counts.
func Total(counts map[domain.Key]int) int {
	total := 0
	for _, k := range domain.Keys() {
		total += counts[k]
	}
	return total
}

// Observations produces the ordered observation sentences for a mapping.
// domains supplies the display prose and must be the six-entry registry in
// canonical order.
//
// Most/least represented are picked by a stable sort on count, descending,
// over the registry order: the first element is "most", the last is "least".
// Ties therefore resolve by registry order, and a full tie still names a
// distinct most and least.
func Observations(domains []domain.Domain, items []domain.MappingItem, counts map[domain.Key]int) []string {
	var obs []string

	obs = append(obs, fmt.Sprintf(
		"This mapping currently covers %d item%s (%d module%s, %d activit%s, %d assessment%s).",
		len(items), plural(len(items), "s"),
		typeCount(items, domain.TypeModule), plural(typeCount(items, domain.TypeModule), "s"),
		typeCount(items, domain.TypeActivity), plural(typeCount(items, domain.TypeActivity), "ies", "y"),
		typeCount(items, domain.TypeAssessment), plural(typeCount(items, domain.TypeAssessment), "s")))

	if Total(counts) > 0 {
		ranked := make([]domain.Domain, len(domains))
		copy(ranked, domains)
		sort.SliceStable(ranked, func(i, j int) bool {
			return counts[ranked[i].Key] > counts[ranked[j].Key]
		})
		most := ranked[0]
		least := ranked[len(ranked)-1]

		obs = append(obs, fmt.Sprintf("The most represented domain is %s (%d item%s tagged).",
			most.Name, counts[most.Key], plural(counts[most.Key], "s")))
		obs = append(obs, fmt.Sprintf("The least represented domain is %s (%d item%s tagged).",
			least.Name, counts[least.Key], plural(counts[least.Key], "s")))

		var gaps []string
		for _, d := range domains {
			if counts[d.Key] == 0 {
				gaps = append(gaps, d.Name)
			}
		}
		if len(gaps) > 0 {
			obs = append(obs, fmt.Sprintf("No items currently touch: %s. These may be gaps worth discussing.",
				strings.Join(gaps, ", ")))
		}
	} else {
		obs = append(obs, "No domain tags have been set yet. Tick the domains each item touches to see coverage observations.")
	}

	obs = append(obs, "Treat these observations as prompts for discussion, not as scores.")
	return obs
}

func typeCount(items []domain.MappingItem, t domain.ItemType) int {
	n := 0
	for _, item := range items {
		if item.Type == t {
			n++
		}
	}
	return n
}

// plural returns suffix when n != 1, otherwise the optional singular form.
func plural(n int, suffix string, singular ...string) string {
	if n == 1 {
		if len(singular) > 0 {
			return singular[0]
		}
		return ""
	}
	return suffix
}
