package usecase_seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/humanbelnik/reelmatch/core/internal/model"
)

var (
	ErrUnableToSaveSeed   = errors.New("unable to save seed")
	ErrUnableToDeleteSeed = errors.New("unable to delete seed")
	ErrUnableToListSeeds  = errors.New("unable to list seeds")
	ErrInvalidInput       = errors.New("invalid input")
)

//go:generate mockery --name=SeedRepository --output=./mocks/seed/repository --filename=repository.go
type SeedRepository interface {
	Upsert(ctx context.Context, seed model.Seed) error
	Delete(ctx context.Context, userID uuid.UUID, titleID int64, kind model.MediaKind, source model.SeedSource) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Seed, error)
}

type Usecase struct {
	seedRepository SeedRepository
}

func New(r SeedRepository) *Usecase {
	return &Usecase{
		seedRepository: r,
	}
}

func (u *Usecase) Add(ctx context.Context, seed model.Seed) error {
	if err := validateSeed(seed); err != nil {
		return err
	}

	if err := u.seedRepository.Upsert(ctx, seed); err != nil {
		return fmt.Errorf("%w : %w", ErrUnableToSaveSeed, err)
	}

	return nil
}

func (u *Usecase) Remove(ctx context.Context, seed model.Seed) error {
	if err := validateSeed(seed); err != nil {
		return err
	}

	if err := u.seedRepository.Delete(ctx, seed.UserID, seed.TitleID, seed.Kind, seed.Source); err != nil {
		return fmt.Errorf("%w : %w", ErrUnableToDeleteSeed, err)
	}

	return nil
}

// List returns the user's seeds newest-first.
func (u *Usecase) List(ctx context.Context, userID uuid.UUID) ([]model.Seed, error) {
	seeds, err := u.seedRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w : %w", ErrUnableToListSeeds, err)
	}

	return seeds, nil
}

func validateSeed(seed model.Seed) error {
	if seed.UserID == uuid.Nil {
		return fmt.Errorf("%w: empty user id", ErrInvalidInput)
	}
	if seed.TitleID <= 0 {
		return fmt.Errorf("%w: malformed title id", ErrInvalidInput)
	}
	if !seed.Kind.Valid() {
		return fmt.Errorf("%w: unknown media kind %q", ErrInvalidInput, seed.Kind)
	}
	if !seed.Source.Valid() {
		return fmt.Errorf("%w: unknown seed source %q", ErrInvalidInput, seed.Source)
	}
	return nil
}
