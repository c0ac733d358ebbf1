package infra_postgres_seed

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/reelmatch/core/internal/model"
	"github.com/jmoiron/sqlx"
)

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type seedDTO struct {
	UserID    uuid.UUID `db:"user_id"`
	TitleID   int64     `db:"title_id"`
	MediaKind string    `db:"media_kind"`
	Source    string    `db:"source"`
	CreatedAt time.Time `db:"created_at"`
}

func (d *Driver) Upsert(ctx context.Context, seed model.Seed) error {
	query := `
		INSERT INTO seeds (user_id, title_id, media_kind, source, created_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (user_id, title_id, media_kind, source)
		DO NOTHING
	`

	_, err := d.db.ExecContext(ctx, query, seed.UserID, seed.TitleID, string(seed.Kind), string(seed.Source))
	return err
}

func (d *Driver) Delete(ctx context.Context, userID uuid.UUID, titleID int64, kind model.MediaKind, source model.SeedSource) error {
	query := `
		DELETE FROM seeds
		WHERE user_id = $1 AND title_id = $2 AND media_kind = $3 AND source = $4
	`

	_, err := d.db.ExecContext(ctx, query, userID, titleID, string(kind), string(source))
	return err
}

func (d *Driver) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Seed, error) {
	var seeds []seedDTO

	query := `
		SELECT user_id, title_id, media_kind, source, created_at
		FROM seeds
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	if err := d.db.SelectContext(ctx, &seeds, query, userID); err != nil {
		return nil, err
	}

	result := make([]model.Seed, 0, len(seeds))
	for _, s := range seeds {
		result = append(result, model.Seed{
			UserID:    s.UserID,
			TitleID:   s.TitleID,
			Kind:      model.MediaKind(s.MediaKind),
			Source:    model.SeedSource(s.Source),
			CreatedAt: s.CreatedAt,
		})
	}

	return result, nil
}
