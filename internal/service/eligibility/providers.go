package service_eligibility

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Built-in synonyms for known brand renderings of the same service. Rebrands
// that ship after a release go into the synonyms file instead of code.
var defaultSynonyms = map[string]string{
	"hbo":                "max",
	"hbo max":            "max",
	"viaplay film":       "viaplay",
	"tv 2 play":          "tv 2",
	"disneyplus":         "disney plus",
	"apple tv plus":      "apple tv",
	"amazon prime video": "prime video",
}

// Normalizer canonicalizes streaming-service names so user-selected services
// and catalog availability data compare reliably.
type Normalizer struct {
	synonyms map[string]string
}

func NewNormalizer(extra map[string]string) *Normalizer {
	synonyms := make(map[string]string, len(defaultSynonyms)+len(extra))
	for raw, canonical := range defaultSynonyms {
		synonyms[raw] = canonical
	}
	for raw, canonical := range extra {
		synonyms[normalizeName(raw)] = normalizeName(canonical)
	}
	return &Normalizer{synonyms: synonyms}
}

// NewNormalizerFromFile loads extra synonyms from a JSON object file
// ({"raw name": "canonical name", ...}). An empty path means defaults only.
func NewNormalizerFromFile(path string) (*Normalizer, error) {
	if path == "" {
		return NewNormalizer(nil), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read provider synonyms: %w", err)
	}

	var extra map[string]string
	if err := json.Unmarshal(raw, &extra); err != nil {
		return nil, fmt.Errorf("parse provider synonyms: %w", err)
	}

	return NewNormalizer(extra), nil
}

// Normalize is idempotent: lowercase, collapsed whitespace, "+" spelled out,
// then synonym-mapped to the canonical name.
func (n *Normalizer) Normalize(name string) string {
	normalized := normalizeName(name)
	if canonical, ok := n.synonyms[normalized]; ok {
		return canonical
	}
	return normalized
}

func normalizeName(name string) string {
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, "+", " plus ")
	return strings.Join(strings.Fields(name), " ")
}

// EligibleSet intersects the members' normalized service selections. An empty
// intersection falls back to the union: better to show something watchable by
// someone than nothing at all. The second return reports the fallback.
func (n *Normalizer) EligibleSet(memberServices [][]string) (map[string]struct{}, bool) {
	if len(memberServices) == 0 {
		return nil, false
	}

	normalized := make([]map[string]struct{}, 0, len(memberServices))
	union := make(map[string]struct{})
	for _, services := range memberServices {
		set := make(map[string]struct{}, len(services))
		for _, s := range services {
			canonical := n.Normalize(s)
			set[canonical] = struct{}{}
			union[canonical] = struct{}{}
		}
		normalized = append(normalized, set)
	}

	intersection := make(map[string]struct{})
	for s := range normalized[0] {
		inAll := true
		for _, set := range normalized[1:] {
			if _, ok := set[s]; !ok {
				inAll = false
				break
			}
		}
		if inAll {
			intersection[s] = struct{}{}
		}
	}

	if len(intersection) > 0 {
		return intersection, false
	}
	return union, true
}

// Matches reports whether any of the candidate's provider names, normalized,
// appears in the eligible set.
func (n *Normalizer) Matches(eligible map[string]struct{}, providerNames []string) bool {
	for _, name := range providerNames {
		if _, ok := eligible[n.Normalize(name)]; ok {
			return true
		}
	}
	return false
}
