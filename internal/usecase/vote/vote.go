package usecase_vote

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/humanbelnik/reelmatch/core/internal/model"
)

var (
	ErrUnableToSaveVote = errors.New("unable to vote")
	ErrUnableToTally    = errors.New("unable to get tally")
	ErrInvalidInput     = errors.New("invalid input")
	ErrResourceNotFound = errors.New("no such resource")
)

//go:generate mockery --name=VoteRepository --output=./mocks/vote/repository --filename=repository.go
type VoteRepository interface {
	// Upsert must be a unique-key write, not read-modify-write: concurrent
	// members vote against the same title.
	Upsert(ctx context.Context, vote model.Vote) error
	TallyForTitle(ctx context.Context, groupID uuid.UUID, titleID int64, kind model.MediaKind) (model.TitleTally, error)
}

//go:generate mockery --name=GroupResolver --output=./mocks/vote/groupresolver --filename=groupresolver.go
type GroupResolver interface {
	IDByCode(ctx context.Context, code model.GroupCode) (uuid.UUID, error)
	Members(ctx context.Context, code model.GroupCode) ([]model.Member, error)
}

type Usecase struct {
	voteRepository VoteRepository
	groups         GroupResolver
}

func New(r VoteRepository, groups GroupResolver) *Usecase {
	return &Usecase{
		voteRepository: r,
		groups:         groups,
	}
}

// Submit registers the member's most recent decision for a title and returns
// the live tally. Re-voting overwrites; it never accumulates.
func (u *Usecase) Submit(ctx context.Context, code model.GroupCode, memberID uuid.UUID, titleID int64, kind model.MediaKind, decision model.Decision) (model.Tally, error) {
	if code == model.EmptyGroupCode {
		return model.Tally{}, fmt.Errorf("%w: empty group code", ErrInvalidInput)
	}
	if memberID == uuid.Nil {
		return model.Tally{}, fmt.Errorf("%w: empty member id", ErrInvalidInput)
	}
	if titleID <= 0 {
		return model.Tally{}, fmt.Errorf("%w: malformed title id", ErrInvalidInput)
	}
	if !kind.Valid() {
		return model.Tally{}, fmt.Errorf("%w: unknown media kind %q", ErrInvalidInput, kind)
	}
	if !decision.Valid() {
		return model.Tally{}, fmt.Errorf("%w: unknown decision %q", ErrInvalidInput, decision)
	}

	groupID, err := u.groups.IDByCode(ctx, code)
	if err != nil {
		return model.Tally{}, err
	}

	if err := u.voteRepository.Upsert(ctx, model.Vote{
		GroupID:  groupID,
		MemberID: memberID,
		TitleID:  titleID,
		Kind:     kind,
		Decision: decision,
	}); err != nil {
		return model.Tally{}, fmt.Errorf("%w : %w", ErrUnableToSaveVote, err)
	}

	return u.Tally(ctx, code, titleID, kind)
}

func (u *Usecase) Tally(ctx context.Context, code model.GroupCode, titleID int64, kind model.MediaKind) (model.Tally, error) {
	groupID, err := u.groups.IDByCode(ctx, code)
	if err != nil {
		return model.Tally{}, err
	}

	tt, err := u.voteRepository.TallyForTitle(ctx, groupID, titleID, kind)
	if err != nil {
		return model.Tally{}, fmt.Errorf("%w : %w", ErrUnableToTally, err)
	}

	members, err := u.groups.Members(ctx, code)
	if err != nil {
		return model.Tally{}, err
	}

	return model.Tally{
		Like:         tt.Like,
		Dislike:      tt.Dislike,
		Skip:         tt.Skip,
		TotalMembers: len(members),
	}, nil
}
