package service_taste

import (
	"sort"

	"github.com/humanbelnik/reelmatch/core/internal/model"
)

// MaxEntries caps each affinity map to the strongest signals.
const MaxEntries = 60

// Build accumulates feature signals across seed titles into a normalized
// TasteModel. Every observation adds one unit of weight; an old seed weighs
// the same as a just-added one. After accumulation each map keeps its top
// entries and is rescaled so the maximum weight is exactly 1.0.
func Build(sets []model.FeatureSet) model.TasteModel {
	keywords := make(map[int64]float64)
	people := make(map[int64]float64)

	for _, fs := range sets {
		for _, id := range fs.KeywordIDs {
			keywords[id]++
		}
		for _, id := range fs.PersonIDs {
			people[id]++
		}
	}

	return model.TasteModel{
		Keywords: capAndNormalize(keywords),
		People:   capAndNormalize(people),
	}
}

func capAndNormalize(weights map[int64]float64) map[int64]float64 {
	if len(weights) == 0 {
		return map[int64]float64{}
	}

	type entry struct {
		id     int64
		weight float64
	}
	entries := make([]entry, 0, len(weights))
	for id, w := range weights {
		entries = append(entries, entry{id: id, weight: w})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].weight != entries[j].weight {
			return entries[i].weight > entries[j].weight
		}
		return entries[i].id < entries[j].id
	})

	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}

	max := entries[0].weight
	out := make(map[int64]float64, len(entries))
	for _, e := range entries {
		out[e.id] = e.weight / max
	}
	return out
}
