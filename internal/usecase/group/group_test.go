package usecase_group

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/humanbelnik/reelmatch/core/internal/model"
	mocks "github.com/humanbelnik/reelmatch/core/internal/usecase/group/mocks/group/repository"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type UsecaseGroupUnitSuite struct {
	suite.Suite

	mockRepo *mocks.GroupRepository
	usecase  *Usecase
	ctx      context.Context
}

func validGroupCode() model.GroupCode {
	return model.GroupCode("123456")
}

func validMember() model.Member {
	return model.Member{
		Name:     "alice",
		Services: []string{"Netflix"},
	}
}

func (s *UsecaseGroupUnitSuite) BeforeEach(t provider.T) {
	s.mockRepo = mocks.NewGroupRepository(t)
	s.usecase = New(s.mockRepo)
	s.ctx = context.Background()
}

func (s *UsecaseGroupUnitSuite) TestCreate(t provider.T) {
	t.Run("Should create group with 6-digit code", func(t provider.T) {
		s.mockRepo.On("CreateWithCode", s.ctx, mock.AnythingOfType("model.Group")).
			Return(nil).Once()

		code, err := s.usecase.Create(s.ctx)

		assert.NoError(t, err)
		assert.Len(t, string(code), 6)
		for _, c := range string(code) {
			assert.True(t, c >= '0' && c <= '9')
		}
	})

	t.Run("Should retry on code conflict", func(t provider.T) {
		s.mockRepo.On("CreateWithCode", s.ctx, mock.AnythingOfType("model.Group")).
			Return(ErrCodeConflict).Twice()
		s.mockRepo.On("CreateWithCode", s.ctx, mock.AnythingOfType("model.Group")).
			Return(nil).Once()

		code, err := s.usecase.Create(s.ctx)

		assert.NoError(t, err)
		assert.NotEqual(t, model.EmptyGroupCode, code)
	})

	t.Run("Should give up after exhausting retries", func(t provider.T) {
		s.mockRepo.On("CreateWithCode", s.ctx, mock.AnythingOfType("model.Group")).
			Return(ErrCodeConflict).Times(3)

		code, err := s.usecase.Create(s.ctx)

		assert.ErrorIs(t, err, ErrGroupsUnavailable)
		assert.Equal(t, model.EmptyGroupCode, code)
	})

	t.Run("Should not retry on unrelated failure", func(t provider.T) {
		s.mockRepo.On("CreateWithCode", s.ctx, mock.AnythingOfType("model.Group")).
			Return(errors.New("pq down")).Once()

		_, err := s.usecase.Create(s.ctx)

		assert.ErrorIs(t, err, ErrInternal)
	})
}

func (s *UsecaseGroupUnitSuite) TestJoin(t provider.T) {
	t.Run("Should assign member id on join", func(t provider.T) {
		code := validGroupCode()

		s.mockRepo.On("AddMember", s.ctx, code, mock.MatchedBy(func(m model.Member) bool {
			return m.ID != uuid.Nil && m.Name == "alice"
		})).Return(nil).Once()

		id, err := s.usecase.Join(s.ctx, code, validMember())

		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)
	})

	t.Run("Should reject empty code and empty name", func(t provider.T) {
		_, err := s.usecase.Join(s.ctx, model.EmptyGroupCode, validMember())
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = s.usecase.Join(s.ctx, validGroupCode(), model.Member{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Should surface unknown group", func(t provider.T) {
		code := validGroupCode()

		s.mockRepo.On("AddMember", s.ctx, code, mock.AnythingOfType("model.Member")).
			Return(ErrResourceNotFound).Once()

		_, err := s.usecase.Join(s.ctx, code, validMember())

		assert.ErrorIs(t, err, ErrResourceNotFound)
	})
}

func (s *UsecaseGroupUnitSuite) TestMembers(t provider.T) {
	t.Run("Should list members", func(t provider.T) {
		code := validGroupCode()
		expected := []model.Member{{ID: uuid.New(), Name: "alice"}, {ID: uuid.New(), Name: "bob"}}

		s.mockRepo.On("MembersByCode", s.ctx, code).Return(expected, nil).Once()

		members, err := s.usecase.Members(s.ctx, code)

		assert.NoError(t, err)
		assert.ElementsMatch(t, expected, members)
	})

	t.Run("Should surface unknown group", func(t provider.T) {
		code := validGroupCode()

		s.mockRepo.On("MembersByCode", s.ctx, code).Return(nil, ErrResourceNotFound).Once()

		_, err := s.usecase.Members(s.ctx, code)

		assert.ErrorIs(t, err, ErrResourceNotFound)
	})
}

func (s *UsecaseGroupUnitSuite) TestDelete(t provider.T) {
	t.Run("Should delete group", func(t provider.T) {
		code := validGroupCode()

		s.mockRepo.On("DeleteByCode", s.ctx, code).Return(nil).Once()

		assert.NoError(t, s.usecase.Delete(s.ctx, code))
	})

	t.Run("Should surface unknown group", func(t provider.T) {
		code := validGroupCode()

		s.mockRepo.On("DeleteByCode", s.ctx, code).Return(ErrResourceNotFound).Once()

		assert.ErrorIs(t, s.usecase.Delete(s.ctx, code), ErrResourceNotFound)
	})
}

func TestGroupUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseGroupUnitSuite))
}
