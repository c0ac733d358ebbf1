package usecase_recommend

import (
	"testing"

	"github.com/humanbelnik/reelmatch/core/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestQualityScore_LogWeightedCountBeatsRawAverage(t *testing.T) {
	wellSampled := QualityScore(8.0, 99)
	barelySampled := QualityScore(9.0, 1)

	assert.Greater(t, wellSampled, barelySampled)
}

func TestQualityScore_ZeroWhenInputAbsent(t *testing.T) {
	assert.Zero(t, QualityScore(0, 500))
	assert.Zero(t, QualityScore(7.5, 0))
}

func TestGenreScore_DislikePenaltyOutweighsLikeReward(t *testing.T) {
	prefs := model.GenrePrefs{
		Liked:    map[int64]struct{}{1: {}},
		Disliked: map[int64]struct{}{2: {}},
	}

	title := model.Title{GenreIDs: []int64{1, 2}}

	assert.InDelta(t, 1.0-1.3, GenreScore(title, prefs), 1e-9)
	assert.Negative(t, GenreScore(title, prefs))
}

func TestGenreScore_NoPrefs(t *testing.T) {
	assert.Zero(t, GenreScore(model.Title{GenreIDs: []int64{1, 2, 3}}, model.GenrePrefs{}))
}

func TestRecencyBonus(t *testing.T) {
	const nowYear = 2026

	tests := []struct {
		year int
		want float64
	}{
		{year: 2026, want: 1.0},
		{year: 2025, want: 1.0},
		{year: 2024, want: 0.7},
		{year: 2023, want: 0.7},
		{year: 2022, want: 0.4},
		{year: 2021, want: 0.4},
		{year: 2020, want: 0.1},
		{year: 1994, want: 0.1},
		{year: 0, want: 0.0},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, RecencyBonus(tc.year, nowYear), "year %d", tc.year)
	}
}

func TestTasteScore_PersonAffinityWeighsMore(t *testing.T) {
	tm := model.TasteModel{
		Keywords: map[int64]float64{1: 1.0},
		People:   map[int64]float64{2: 1.0},
	}

	keywordOnly := TasteScore(model.FeatureSet{KeywordIDs: []int64{1}}, tm)
	personOnly := TasteScore(model.FeatureSet{PersonIDs: []int64{2}}, tm)

	assert.InDelta(t, 1.2, keywordOnly, 1e-9)
	assert.InDelta(t, 1.4, personOnly, 1e-9)
	assert.Greater(t, personOnly, keywordOnly)
}

func TestTasteScore_UnknownIdsContributeNothing(t *testing.T) {
	tm := model.TasteModel{Keywords: map[int64]float64{1: 0.5}}

	assert.Zero(t, TasteScore(model.FeatureSet{KeywordIDs: []int64{99}, PersonIDs: []int64{98}}, tm))
}

func TestStage1Score_ComponentWeights(t *testing.T) {
	prefs := model.GenrePrefs{Liked: map[int64]struct{}{1: {}}}
	title := model.Title{
		GenreIDs:    []int64{1},
		VoteAverage: 8.0,
		VoteCount:   99,
		Year:        2026,
	}

	want := 1.6*1.0 + 0.6*QualityScore(8.0, 99) + 0.2*1.0
	assert.InDelta(t, want, Stage1Score(title, prefs, 2026), 1e-9)
}

func TestMergeFirstWins_NoDuplicateKeys(t *testing.T) {
	sources := [][]model.Title{
		{
			{ID: 1, Kind: model.KindMovie, Name: "trending copy"},
			{ID: 2, Kind: model.KindMovie},
		},
		{
			{ID: 1, Kind: model.KindMovie, Name: "popular copy"},
			{ID: 1, Kind: model.KindSeries}, // same id, different kind: distinct
			{ID: 3, Kind: model.KindSeries},
		},
	}

	merged := mergeFirstWins(sources)

	seen := make(map[model.TitleKey]int)
	for _, title := range merged {
		seen[title.Key()]++
	}
	for key, count := range seen {
		assert.Equal(t, 1, count, "duplicate key %+v", key)
	}
	assert.Len(t, merged, 4)

	// the earlier source keeps its metadata
	assert.Equal(t, "trending copy", merged[0].Name)
}

func TestTopSeeds_DedupsAndBounds(t *testing.T) {
	seeds := []model.Seed{
		{TitleID: 1, Kind: model.KindMovie},
		{TitleID: 1, Kind: model.KindMovie}, // favorite + watchlist duplicate
		{TitleID: 2, Kind: model.KindMovie},
		{TitleID: 3, Kind: model.KindMovie},
	}

	top := topSeeds(seeds, 2)

	assert.Len(t, top, 2)
	assert.Equal(t, int64(1), top[0].TitleID)
	assert.Equal(t, int64(2), top[1].TitleID)
}

func TestPageSlice(t *testing.T) {
	ranked := make([]model.RankedTitle, 5)

	assert.Len(t, pageSlice(ranked, 1, 2), 2)
	assert.Len(t, pageSlice(ranked, 3, 2), 1)
	assert.Empty(t, pageSlice(ranked, 4, 2))
}
