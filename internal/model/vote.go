package model

import (
	"time"

	"github.com/google/uuid"
)

// Decision is the member's most recent expressed intent for a title.
type Decision string

const (
	DecisionLike    Decision = "LIKE"
	DecisionDislike Decision = "DISLIKE"
	DecisionSkip    Decision = "SKIP"
)

func (d Decision) Valid() bool {
	return d == DecisionLike || d == DecisionDislike || d == DecisionSkip
}

// Vote is unique per (group, member, title, kind); re-voting overwrites.
type Vote struct {
	GroupID   uuid.UUID
	MemberID  uuid.UUID
	TitleID   int64
	Kind      MediaKind
	Decision  Decision
	UpdatedAt time.Time
}

type Tally struct {
	Like         int
	Dislike      int
	Skip         int
	TotalMembers int
}

// TitleTally is one group's accumulated votes for a single title.
type TitleTally struct {
	TitleID int64
	Kind    MediaKind
	Like    int
	Dislike int
	Skip    int
}

type Match struct {
	TitleID   int64
	Kind      MediaKind
	LikeCount int
}

// MatchResult is computed on read from the tallies; it is never stored.
type MatchResult struct {
	Size    int
	Need    int
	Matches []Match
}
