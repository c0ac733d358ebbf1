package usecase_group

import (
	"context"
	"errors"
	"math/rand"
	"strings"

	"github.com/google/uuid"
	"github.com/humanbelnik/reelmatch/core/internal/model"
)

var (
	ErrCodeConflict      = errors.New("code conflict")
	ErrGroupsUnavailable = errors.New("no available group codes")
	ErrInternal          = errors.New("internal error")
	ErrResourceNotFound  = errors.New("no such resource")
	ErrInvalidInput      = errors.New("invalid input")
)

//go:generate mockery --name=GroupRepository --output=./mocks/group/repository --filename=repository.go
type GroupRepository interface {
	CreateWithCode(ctx context.Context, group model.Group) error
	DeleteByCode(ctx context.Context, code model.GroupCode) error
	IDByCode(ctx context.Context, code model.GroupCode) (uuid.UUID, error)
	AddMember(ctx context.Context, code model.GroupCode, member model.Member) error
	MembersByCode(ctx context.Context, code model.GroupCode) ([]model.Member, error)
}

type Usecase struct {
	GroupRepository GroupRepository
}

func New(repository GroupRepository) *Usecase {
	return &Usecase{
		GroupRepository: repository,
	}
}

// Assuming that codes can conflict.
// Retrying...
func (u *Usecase) Create(ctx context.Context) (model.GroupCode, error) {
	var retries = 3
	for retries > 0 {
		code := u.buildGroupCode()
		err := u.GroupRepository.CreateWithCode(ctx, model.Group{
			ID:   uuid.New(),
			Code: code,
		})
		if err != nil {
			if errors.Is(err, ErrCodeConflict) {
				retries--
				continue
			}
			return model.EmptyGroupCode, errors.Join(ErrInternal, err)
		}
		return code, nil
	}
	return model.EmptyGroupCode, ErrGroupsUnavailable
}

func (u *Usecase) buildGroupCode() model.GroupCode {
	const codeLen = 6
	var builder strings.Builder
	builder.Grow(codeLen)

	for i := 0; i < codeLen; i++ {
		builder.WriteByte(byte(rand.Intn(10)) + '0')
	}

	return model.GroupCode(builder.String())
}

func (u *Usecase) Join(ctx context.Context, code model.GroupCode, member model.Member) (uuid.UUID, error) {
	if code == model.EmptyGroupCode {
		return uuid.Nil, errors.Join(ErrInvalidInput, errors.New("empty group code"))
	}
	if member.Name == "" {
		return uuid.Nil, errors.Join(ErrInvalidInput, errors.New("empty member name"))
	}

	member.ID = uuid.New()
	if err := u.GroupRepository.AddMember(ctx, code, member); err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return uuid.Nil, ErrResourceNotFound
		}
		return uuid.Nil, errors.Join(ErrInternal, err)
	}

	return member.ID, nil
}

func (u *Usecase) Members(ctx context.Context, code model.GroupCode) ([]model.Member, error) {
	members, err := u.GroupRepository.MembersByCode(ctx, code)
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, errors.Join(ErrInternal, err)
	}
	return members, nil
}

func (u *Usecase) Delete(ctx context.Context, code model.GroupCode) error {
	if err := u.GroupRepository.DeleteByCode(ctx, code); err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return ErrResourceNotFound
		}
		return errors.Join(ErrInternal, err)
	}
	return nil
}

func (u *Usecase) IDByCode(ctx context.Context, code model.GroupCode) (uuid.UUID, error) {
	id, err := u.GroupRepository.IDByCode(ctx, code)
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return uuid.Nil, ErrResourceNotFound
		}
		return uuid.Nil, errors.Join(ErrInternal, err)
	}
	return id, nil
}
