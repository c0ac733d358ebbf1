package usecase_match

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"
	"github.com/humanbelnik/reelmatch/core/internal/model"
	usecase_group "github.com/humanbelnik/reelmatch/core/internal/usecase/group"
)

var (
	ErrUnableToLoadTallies = errors.New("unable to load tallies")
	ErrUnableToAck         = errors.New("unable to acknowledge match")
	ErrInvalidInput        = errors.New("invalid input")
)

//go:generate mockery --name=TallyRepository --output=./mocks/match/tallyrepository --filename=tallyrepository.go
type TallyRepository interface {
	TalliesByGroup(ctx context.Context, groupID uuid.UUID) ([]model.TitleTally, error)
	UpsertAck(ctx context.Context, groupID, memberID uuid.UUID, titleID int64, kind model.MediaKind) error
	AckedByMember(ctx context.Context, groupID, memberID uuid.UUID) ([]model.TitleKey, error)
}

//go:generate mockery --name=GroupResolver --output=./mocks/match/groupresolver --filename=groupresolver.go
type GroupResolver interface {
	IDByCode(ctx context.Context, code model.GroupCode) (uuid.UUID, error)
	Members(ctx context.Context, code model.GroupCode) ([]model.Member, error)
}

type Usecase struct {
	tallies TallyRepository
	groups  GroupResolver
}

func New(tallies TallyRepository, groups GroupResolver) *Usecase {
	return &Usecase{
		tallies: tallies,
		groups:  groups,
	}
}

// Need is the like threshold for a match. Pairs (and solo groups) need both
// sides; larger groups need 60% of the membership, rounded up.
func Need(size int) int {
	if size <= 2 {
		return 2
	}
	return int(math.Ceil(0.6 * float64(size)))
}

// Matched applies the consensus rule: enough likes, and a strict veto —
// any single dislike blocks the match regardless of like count.
func Matched(tally model.TitleTally, need int) bool {
	return tally.Like >= need && tally.Dislike == 0
}

// Matches computes the group's current matches from the vote tallies.
// An absent group or empty membership is a valid empty state, not an error.
func (u *Usecase) Matches(ctx context.Context, code model.GroupCode) (model.MatchResult, error) {
	if code == model.EmptyGroupCode {
		return model.MatchResult{}, fmt.Errorf("%w: empty group code", ErrInvalidInput)
	}

	groupID, err := u.groups.IDByCode(ctx, code)
	if err != nil {
		if errors.Is(err, usecase_group.ErrResourceNotFound) {
			return model.MatchResult{Need: Need(0)}, nil
		}
		return model.MatchResult{}, err
	}

	members, err := u.groups.Members(ctx, code)
	if err != nil {
		if errors.Is(err, usecase_group.ErrResourceNotFound) {
			return model.MatchResult{Need: Need(0)}, nil
		}
		return model.MatchResult{}, err
	}

	size := len(members)
	need := Need(size)
	result := model.MatchResult{Size: size, Need: need}

	tallies, err := u.tallies.TalliesByGroup(ctx, groupID)
	if err != nil {
		return model.MatchResult{}, fmt.Errorf("%w : %w", ErrUnableToLoadTallies, err)
	}

	for _, t := range tallies {
		if Matched(t, need) {
			result.Matches = append(result.Matches, model.Match{
				TitleID:   t.TitleID,
				Kind:      t.Kind,
				LikeCount: t.Like,
			})
		}
	}

	sort.Slice(result.Matches, func(i, j int) bool {
		if result.Matches[i].LikeCount != result.Matches[j].LikeCount {
			return result.Matches[i].LikeCount > result.Matches[j].LikeCount
		}
		return result.Matches[i].TitleID < result.Matches[j].TitleID
	})

	return result, nil
}

// TallyMatched reports whether a single live tally currently matches. Used
// after a vote submission to decide whether to push a notification.
func TallyMatched(tally model.Tally) bool {
	return Matched(model.TitleTally{Like: tally.Like, Dislike: tally.Dislike}, Need(tally.TotalMembers))
}

// Ack marks a match as seen by one member. Affects notification delivery
// only, never the match computation.
func (u *Usecase) Ack(ctx context.Context, code model.GroupCode, memberID uuid.UUID, titleID int64, kind model.MediaKind) error {
	if memberID == uuid.Nil {
		return fmt.Errorf("%w: empty member id", ErrInvalidInput)
	}
	if titleID <= 0 || !kind.Valid() {
		return fmt.Errorf("%w: malformed title", ErrInvalidInput)
	}

	groupID, err := u.groups.IDByCode(ctx, code)
	if err != nil {
		return err
	}

	if err := u.tallies.UpsertAck(ctx, groupID, memberID, titleID, kind); err != nil {
		return fmt.Errorf("%w : %w", ErrUnableToAck, err)
	}
	return nil
}

// UnackedMatches filters the group's matches down to those the member has not
// acknowledged yet.
func (u *Usecase) UnackedMatches(ctx context.Context, code model.GroupCode, memberID uuid.UUID) (model.MatchResult, error) {
	result, err := u.Matches(ctx, code)
	if err != nil {
		return model.MatchResult{}, err
	}
	if len(result.Matches) == 0 {
		return result, nil
	}

	groupID, err := u.groups.IDByCode(ctx, code)
	if err != nil {
		return model.MatchResult{}, err
	}

	acked, err := u.tallies.AckedByMember(ctx, groupID, memberID)
	if err != nil {
		return model.MatchResult{}, fmt.Errorf("%w : %w", ErrUnableToLoadTallies, err)
	}

	ackedSet := make(map[model.TitleKey]struct{}, len(acked))
	for _, key := range acked {
		ackedSet[key] = struct{}{}
	}

	fresh := result.Matches[:0]
	for _, m := range result.Matches {
		if _, ok := ackedSet[model.TitleKey{Kind: m.Kind, ID: m.TitleID}]; !ok {
			fresh = append(fresh, m)
		}
	}
	result.Matches = fresh

	return result, nil
}
