package usecase_vote

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/humanbelnik/reelmatch/core/internal/model"
	mocks_groups "github.com/humanbelnik/reelmatch/core/internal/usecase/vote/mocks/vote/groupresolver"
	mocks "github.com/humanbelnik/reelmatch/core/internal/usecase/vote/mocks/vote/repository"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type UsecaseVoteUnitSuite struct {
	suite.Suite

	mockRepo   *mocks.VoteRepository
	mockGroups *mocks_groups.GroupResolver
	usecase    *Usecase
	ctx        context.Context
}

func validGroupCode() model.GroupCode {
	return model.GroupCode("123456")
}

func validMembers(n int) []model.Member {
	ms := make([]model.Member, n)
	for i := 0; i < n; i++ {
		ms[i] = model.Member{ID: uuid.New(), Name: "member"}
	}
	return ms
}

func (s *UsecaseVoteUnitSuite) BeforeEach(t provider.T) {
	s.mockRepo = mocks.NewVoteRepository(t)
	s.mockGroups = mocks_groups.NewGroupResolver(t)
	s.usecase = New(s.mockRepo, s.mockGroups)
	s.ctx = context.Background()
}

func (s *UsecaseVoteUnitSuite) TestSubmit(t provider.T) {
	t.Run("Should save vote and return live tally", func(t provider.T) {
		code := validGroupCode()
		groupID := uuid.New()
		memberID := uuid.New()

		s.mockGroups.On("IDByCode", s.ctx, code).Return(groupID, nil).Twice()
		s.mockRepo.On("Upsert", s.ctx, model.Vote{
			GroupID:  groupID,
			MemberID: memberID,
			TitleID:  42,
			Kind:     model.KindMovie,
			Decision: model.DecisionLike,
		}).Return(nil).Once()
		s.mockRepo.On("TallyForTitle", s.ctx, groupID, int64(42), model.KindMovie).
			Return(model.TitleTally{TitleID: 42, Kind: model.KindMovie, Like: 2}, nil).Once()
		s.mockGroups.On("Members", s.ctx, code).Return(validMembers(3), nil).Once()

		tally, err := s.usecase.Submit(s.ctx, code, memberID, 42, model.KindMovie, model.DecisionLike)

		assert.NoError(t, err)
		assert.Equal(t, model.Tally{Like: 2, TotalMembers: 3}, tally)
		s.mockRepo.AssertExpectations(t)
	})

	t.Run("Should overwrite on re-vote rather than accumulate", func(t provider.T) {
		code := validGroupCode()
		groupID := uuid.New()
		memberID := uuid.New()

		s.mockGroups.On("IDByCode", s.ctx, code).Return(groupID, nil).Times(4)
		s.mockGroups.On("Members", s.ctx, code).Return(validMembers(2), nil).Twice()
		s.mockRepo.On("Upsert", s.ctx, mock.AnythingOfType("model.Vote")).Return(nil).Twice()
		// first vote: one like
		s.mockRepo.On("TallyForTitle", s.ctx, groupID, int64(7), model.KindSeries).
			Return(model.TitleTally{Like: 1}, nil).Once()
		// changed mind: the like moved, it did not pile up
		s.mockRepo.On("TallyForTitle", s.ctx, groupID, int64(7), model.KindSeries).
			Return(model.TitleTally{Dislike: 1}, nil).Once()

		first, err := s.usecase.Submit(s.ctx, code, memberID, 7, model.KindSeries, model.DecisionLike)
		assert.NoError(t, err)
		second, err := s.usecase.Submit(s.ctx, code, memberID, 7, model.KindSeries, model.DecisionDislike)
		assert.NoError(t, err)

		assert.Equal(t, 1, first.Like)
		assert.Equal(t, 0, second.Like)
		assert.Equal(t, 1, second.Dislike)
		assert.Equal(t, first.Like+first.Dislike+first.Skip, second.Like+second.Dislike+second.Skip)
	})

	t.Run("Should reject malformed input before touching storage", func(t provider.T) {
		memberID := uuid.New()

		cases := []struct {
			code     model.GroupCode
			memberID uuid.UUID
			titleID  int64
			kind     model.MediaKind
			decision model.Decision
		}{
			{code: model.EmptyGroupCode, memberID: memberID, titleID: 1, kind: model.KindMovie, decision: model.DecisionLike},
			{code: validGroupCode(), memberID: uuid.Nil, titleID: 1, kind: model.KindMovie, decision: model.DecisionLike},
			{code: validGroupCode(), memberID: memberID, titleID: 0, kind: model.KindMovie, decision: model.DecisionLike},
			{code: validGroupCode(), memberID: memberID, titleID: 1, kind: model.MediaKind("vhs"), decision: model.DecisionLike},
			{code: validGroupCode(), memberID: memberID, titleID: 1, kind: model.KindMovie, decision: model.Decision("MAYBE")},
		}

		for _, tc := range cases {
			_, err := s.usecase.Submit(s.ctx, tc.code, tc.memberID, tc.titleID, tc.kind, tc.decision)
			assert.ErrorIs(t, err, ErrInvalidInput)
		}
	})

	t.Run("Should wrap repository failure", func(t provider.T) {
		code := validGroupCode()
		groupID := uuid.New()

		s.mockGroups.On("IDByCode", s.ctx, code).Return(groupID, nil).Once()
		s.mockRepo.On("Upsert", s.ctx, mock.AnythingOfType("model.Vote")).
			Return(errors.New("pq down")).Once()

		_, err := s.usecase.Submit(s.ctx, code, uuid.New(), 1, model.KindMovie, model.DecisionSkip)

		assert.ErrorIs(t, err, ErrUnableToSaveVote)
	})

	t.Run("Should propagate unknown group", func(t provider.T) {
		code := validGroupCode()

		s.mockGroups.On("IDByCode", s.ctx, code).Return(uuid.Nil, ErrResourceNotFound).Once()

		_, err := s.usecase.Submit(s.ctx, code, uuid.New(), 1, model.KindMovie, model.DecisionLike)

		assert.ErrorIs(t, err, ErrResourceNotFound)
	})
}

func (s *UsecaseVoteUnitSuite) TestTally(t provider.T) {
	t.Run("Should combine counts with membership size", func(t provider.T) {
		code := validGroupCode()
		groupID := uuid.New()

		s.mockGroups.On("IDByCode", s.ctx, code).Return(groupID, nil).Once()
		s.mockRepo.On("TallyForTitle", s.ctx, groupID, int64(9), model.KindMovie).
			Return(model.TitleTally{Like: 2, Dislike: 1, Skip: 1}, nil).Once()
		s.mockGroups.On("Members", s.ctx, code).Return(validMembers(5), nil).Once()

		tally, err := s.usecase.Tally(s.ctx, code, 9, model.KindMovie)

		assert.NoError(t, err)
		assert.Equal(t, model.Tally{Like: 2, Dislike: 1, Skip: 1, TotalMembers: 5}, tally)
	})

	t.Run("Should wrap tally failure", func(t provider.T) {
		code := validGroupCode()
		groupID := uuid.New()

		s.mockGroups.On("IDByCode", s.ctx, code).Return(groupID, nil).Once()
		s.mockRepo.On("TallyForTitle", s.ctx, groupID, int64(9), model.KindMovie).
			Return(model.TitleTally{}, errors.New("pq down")).Once()

		_, err := s.usecase.Tally(s.ctx, code, 9, model.KindMovie)

		assert.ErrorIs(t, err, ErrUnableToTally)
	})
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseVoteUnitSuite))
}
