package usecase_recommend

import (
	"math"

	"github.com/humanbelnik/reelmatch/core/internal/model"
)

// Stage-1 component weights. Disliked genres suppress harder than liked
// genres promote, and a strong genre fit outranks raw quality.
const (
	genreWeight   = 1.6
	qualityWeight = 0.6
	recencyWeight = 0.2

	likedGenreReward     = 1.0
	dislikedGenrePenalty = 1.3
)

// Stage-2 weights. Cast/crew repetition is a stronger taste predictor than
// thematic keyword overlap.
const (
	keywordAffinityWeight = 1.2
	personAffinityWeight  = 1.4
)

// GenreScore rewards every candidate genre in the liked set and penalizes
// every one in the disliked set.
func GenreScore(title model.Title, prefs model.GenrePrefs) float64 {
	var score float64
	for _, g := range title.GenreIDs {
		if _, ok := prefs.Liked[g]; ok {
			score += likedGenreReward
		}
		if _, ok := prefs.Disliked[g]; ok {
			score -= dislikedGenrePenalty
		}
	}
	return score
}

// QualityScore discounts high-average/low-sample titles by log-weighting the
// vote count. Zero when either input is absent.
func QualityScore(voteAverage float64, voteCount int) float64 {
	if voteAverage == 0 || voteCount == 0 {
		return 0
	}
	return voteAverage * math.Log10(float64(voteCount)+1)
}

// RecencyBonus steps down with release age; unknown year earns nothing.
func RecencyBonus(year int, nowYear int) float64 {
	if year == 0 {
		return 0
	}
	switch age := nowYear - year; {
	case age <= 1:
		return 1.0
	case age <= 3:
		return 0.7
	case age <= 5:
		return 0.4
	default:
		return 0.1
	}
}

// Stage1Score is the cheap pre-rank: no external calls past the candidate
// listing itself.
func Stage1Score(title model.Title, prefs model.GenrePrefs, nowYear int) float64 {
	return genreWeight*GenreScore(title, prefs) +
		qualityWeight*QualityScore(title.VoteAverage, title.VoteCount) +
		recencyWeight*RecencyBonus(title.Year, nowYear)
}

// TasteScore sums the taste-model weights of the candidate's feature ids.
func TasteScore(fs model.FeatureSet, tm model.TasteModel) float64 {
	var keywordSum, personSum float64
	for _, id := range fs.KeywordIDs {
		keywordSum += tm.Keywords[id]
	}
	for _, id := range fs.PersonIDs {
		personSum += tm.People[id]
	}
	return keywordAffinityWeight*keywordSum + personAffinityWeight*personSum
}
