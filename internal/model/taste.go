package model

// FeatureSet holds the taste-signal ids extracted from one title's metadata.
type FeatureSet struct {
	KeywordIDs []int64
	PersonIDs  []int64
}

func (fs FeatureSet) Empty() bool {
	return len(fs.KeywordIDs) == 0 && len(fs.PersonIDs) == 0
}

// TasteModel is a normalized affinity signal over keyword and person ids.
// Weights lie in [0, 1]; each map holds at most the top-K observed ids.
type TasteModel struct {
	Keywords map[int64]float64
	People   map[int64]float64
}

func (tm TasteModel) Empty() bool {
	return len(tm.Keywords) == 0 && len(tm.People) == 0
}

// GenrePrefs are the explicitly chosen liked/disliked genre sets.
type GenrePrefs struct {
	Liked    map[int64]struct{}
	Disliked map[int64]struct{}
}
