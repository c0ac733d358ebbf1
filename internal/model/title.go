package model

// MediaKind disambiguates numeric catalog ids shared between films and series.
type MediaKind string

const (
	KindMovie  MediaKind = "movie"
	KindSeries MediaKind = "series"
)

func (k MediaKind) Valid() bool {
	return k == KindMovie || k == KindSeries
}

// TitleKey is the dedup identity of a candidate across catalog sources.
type TitleKey struct {
	Kind MediaKind
	ID   int64
}

type Title struct {
	ID          int64
	Kind        MediaKind
	Name        string
	Year        int
	Popularity  float64
	VoteAverage float64
	VoteCount   int
	GenreIDs    []int64
	PosterPath  string
}

func (t Title) Key() TitleKey {
	return TitleKey{Kind: t.Kind, ID: t.ID}
}

// RankedTitle is one entry of a served recommendation list.
type RankedTitle struct {
	Title
	Rank  int
	Score float64
}

// TitleDetails is the full per-title fetch with the keyword and credits
// sub-resources appended. Any field may be absent upstream.
type TitleDetails struct {
	Title
	KeywordIDs []int64
	Cast       []CastMember
	Crew       []CrewMember
}

type CastMember struct {
	PersonID int64
	Order    int
}

type CrewMember struct {
	PersonID int64
	Job      string
}
