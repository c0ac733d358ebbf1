package usecase_match

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/humanbelnik/reelmatch/core/internal/model"
	usecase_group "github.com/humanbelnik/reelmatch/core/internal/usecase/group"
	mocks_groups "github.com/humanbelnik/reelmatch/core/internal/usecase/match/mocks/match/groupresolver"
	mocks "github.com/humanbelnik/reelmatch/core/internal/usecase/match/mocks/match/tallyrepository"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

func TestNeed(t *testing.T) {
	tests := []struct {
		size int
		need int
	}{
		{size: 0, need: 2},
		{size: 1, need: 2},
		{size: 2, need: 2},
		{size: 3, need: 2},
		{size: 4, need: 3},
		{size: 5, need: 3},
		{size: 10, need: 6},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.need, Need(tc.size), "size %d", tc.size)
	}
}

func TestMatched_DislikeVetoes(t *testing.T) {
	// a single dislike blocks the match no matter how many likes pile up
	for likes := 0; likes <= 50; likes++ {
		tally := model.TitleTally{Like: likes, Dislike: 1}
		assert.False(t, Matched(tally, Need(likes+1)), "likes=%d", likes)
	}
}

func TestMatched_ThresholdAndVeto(t *testing.T) {
	assert.True(t, Matched(model.TitleTally{Like: 2}, 2))
	assert.False(t, Matched(model.TitleTally{Like: 1}, 2))
	assert.False(t, Matched(model.TitleTally{Like: 2, Dislike: 1}, 2))
	// skips are neutral
	assert.True(t, Matched(model.TitleTally{Like: 2, Skip: 10}, 2))
}

func TestTallyMatched(t *testing.T) {
	assert.True(t, TallyMatched(model.Tally{Like: 3, TotalMembers: 4}))
	assert.False(t, TallyMatched(model.Tally{Like: 2, TotalMembers: 4}))
	assert.False(t, TallyMatched(model.Tally{Like: 4, Dislike: 1, TotalMembers: 4}))
}

type UsecaseMatchUnitSuite struct {
	suite.Suite

	mockTallies *mocks.TallyRepository
	mockGroups  *mocks_groups.GroupResolver
	usecase     *Usecase
	ctx         context.Context
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

func (s *UsecaseMatchUnitSuite) BeforeEach(t provider.T) {
	s.mockTallies = mocks.NewTallyRepository(t)
	s.mockGroups = mocks_groups.NewGroupResolver(t)
	s.usecase = New(s.mockTallies, s.mockGroups)
	s.ctx = context.Background()
}

func (s *UsecaseMatchUnitSuite) TestMatches(t provider.T) {
	t.Run("Should return matches sorted by likes then title id", func(t provider.T) {
		code := validGroupCode()
		groupID := uuid.New()

		s.mockGroups.On("IDByCode", s.ctx, code).Return(groupID, nil).Once()
		s.mockGroups.On("Members", s.ctx, code).Return(validMembers(4), nil).Once()
		s.mockTallies.On("TalliesByGroup", s.ctx, groupID).Return([]model.TitleTally{
			{TitleID: 5, Kind: model.KindMovie, Like: 3},
			{TitleID: 1, Kind: model.KindMovie, Like: 4},
			{TitleID: 2, Kind: model.KindSeries, Like: 3},
			{TitleID: 3, Kind: model.KindMovie, Like: 4, Dislike: 1}, // vetoed
			{TitleID: 4, Kind: model.KindMovie, Like: 2},             // under threshold
		}, nil).Once()

		result, err := s.usecase.Matches(s.ctx, code)

		assert.NoError(t, err)
		assert.Equal(t, 4, result.Size)
		assert.Equal(t, 3, result.Need)

		ids := make([]int64, 0, len(result.Matches))
		for _, m := range result.Matches {
			ids = append(ids, m.TitleID)
		}
		assert.Equal(t, []int64{1, 2, 5}, ids)
	})

	t.Run("Should treat absent group as a valid empty state", func(t provider.T) {
		code := validGroupCode()

		s.mockGroups.On("IDByCode", s.ctx, code).
			Return(uuid.Nil, usecase_group.ErrResourceNotFound).Once()

		result, err := s.usecase.Matches(s.ctx, code)

		assert.NoError(t, err)
		assert.Empty(t, result.Matches)
		assert.Zero(t, result.Size)
	})

	t.Run("Should reject empty group code", func(t provider.T) {
		_, err := s.usecase.Matches(s.ctx, model.EmptyGroupCode)

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Should wrap tally loading failure", func(t provider.T) {
		code := validGroupCode()
		groupID := uuid.New()

		s.mockGroups.On("IDByCode", s.ctx, code).Return(groupID, nil).Once()
		s.mockGroups.On("Members", s.ctx, code).Return(validMembers(2), nil).Once()
		s.mockTallies.On("TalliesByGroup", s.ctx, groupID).
			Return(nil, errors.New("pq down")).Once()

		_, err := s.usecase.Matches(s.ctx, code)

		assert.ErrorIs(t, err, ErrUnableToLoadTallies)
	})
}

func (s *UsecaseMatchUnitSuite) TestAck(t provider.T) {
	t.Run("Should record acknowledgement", func(t provider.T) {
		code := validGroupCode()
		groupID := uuid.New()
		memberID := uuid.New()

		s.mockGroups.On("IDByCode", s.ctx, code).Return(groupID, nil).Once()
		s.mockTallies.On("UpsertAck", s.ctx, groupID, memberID, int64(9), model.KindMovie).
			Return(nil).Once()

		err := s.usecase.Ack(s.ctx, code, memberID, 9, model.KindMovie)

		assert.NoError(t, err)
	})

	t.Run("Should reject malformed input", func(t provider.T) {
		assert.ErrorIs(t, s.usecase.Ack(s.ctx, validGroupCode(), uuid.Nil, 9, model.KindMovie), ErrInvalidInput)
		assert.ErrorIs(t, s.usecase.Ack(s.ctx, validGroupCode(), uuid.New(), 0, model.KindMovie), ErrInvalidInput)
		assert.ErrorIs(t, s.usecase.Ack(s.ctx, validGroupCode(), uuid.New(), 9, model.MediaKind("vhs")), ErrInvalidInput)
	})
}

func (s *UsecaseMatchUnitSuite) TestUnackedMatches(t provider.T) {
	t.Run("Should hide acknowledged matches but keep the rest", func(t provider.T) {
		code := validGroupCode()
		groupID := uuid.New()
		memberID := uuid.New()

		s.mockGroups.On("IDByCode", s.ctx, code).Return(groupID, nil).Twice()
		s.mockGroups.On("Members", s.ctx, code).Return(validMembers(2), nil).Once()
		s.mockTallies.On("TalliesByGroup", s.ctx, groupID).Return([]model.TitleTally{
			{TitleID: 1, Kind: model.KindMovie, Like: 2},
			{TitleID: 2, Kind: model.KindMovie, Like: 2},
		}, nil).Once()
		s.mockTallies.On("AckedByMember", s.ctx, groupID, memberID).
			Return([]model.TitleKey{{Kind: model.KindMovie, ID: 1}}, nil).Once()

		result, err := s.usecase.UnackedMatches(s.ctx, code, memberID)

		assert.NoError(t, err)
		assert.Len(t, result.Matches, 1)
		assert.Equal(t, int64(2), result.Matches[0].TitleID)
	})

	t.Run("Should skip ack lookup when nothing matched", func(t provider.T) {
		code := validGroupCode()
		groupID := uuid.New()

		s.mockGroups.On("IDByCode", s.ctx, code).Return(groupID, nil).Once()
		s.mockGroups.On("Members", s.ctx, code).Return(validMembers(2), nil).Once()
		s.mockTallies.On("TalliesByGroup", s.ctx, groupID).Return(nil, nil).Once()

		result, err := s.usecase.UnackedMatches(s.ctx, code, uuid.New())

		assert.NoError(t, err)
		assert.Empty(t, result.Matches)
	})
}

func TestMatchUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseMatchUnitSuite))
}
