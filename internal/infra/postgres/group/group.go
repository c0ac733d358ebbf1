package infra_postgres_group

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/reelmatch/core/internal/model"
	usecase_group "github.com/humanbelnik/reelmatch/core/internal/usecase/group"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type groupDTO struct {
	ID uuid.UUID `db:"id"`
}

type memberDTO struct {
	ID             uuid.UUID     `db:"id"`
	GroupID        uuid.UUID     `db:"group_id"`
	Name           string        `db:"name"`
	BirthDate      *time.Time    `db:"birth_date"`
	Services       pq.StringArray `db:"services"`
	LikedGenres    pq.Int64Array  `db:"liked_genres"`
	DislikedGenres pq.Int64Array  `db:"disliked_genres"`
	JoinedAt       time.Time     `db:"joined_at"`
}

func (d *Driver) CreateWithCode(ctx context.Context, group model.Group) error {
	query := `
		INSERT INTO groups (id, code, created_at)
		VALUES ($1, $2, now())
	`

	_, err := d.db.ExecContext(ctx, query, group.ID, string(group.Code))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return usecase_group.ErrCodeConflict
		}
		return err
	}
	return nil
}

func (d *Driver) IDByCode(ctx context.Context, code model.GroupCode) (uuid.UUID, error) {
	var group groupDTO

	query := `SELECT id FROM groups WHERE code = $1`

	err := d.db.GetContext(ctx, &group, query, string(code))
	if err != nil {
		if err == sql.ErrNoRows {
			return uuid.Nil, usecase_group.ErrResourceNotFound
		}
		return uuid.Nil, err
	}

	return group.ID, nil
}

func (d *Driver) DeleteByCode(ctx context.Context, code model.GroupCode) error {
	query := `DELETE FROM groups WHERE code = $1`

	res, err := d.db.ExecContext(ctx, query, string(code))
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return usecase_group.ErrResourceNotFound
	}
	return nil
}

func (d *Driver) AddMember(ctx context.Context, code model.GroupCode, member model.Member) error {
	groupID, err := d.IDByCode(ctx, code)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO group_members (id, group_id, name, birth_date, services, liked_genres, disliked_genres, joined_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())
	`

	_, err = d.db.ExecContext(ctx, query,
		member.ID,
		groupID,
		member.Name,
		member.BirthDate,
		pq.StringArray(member.Services),
		pq.Int64Array(member.LikedGenres),
		pq.Int64Array(member.DislikedGenres),
	)
	return err
}

func (d *Driver) MembersByCode(ctx context.Context, code model.GroupCode) ([]model.Member, error) {
	groupID, err := d.IDByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	var members []memberDTO

	query := `
		SELECT id, group_id, name, birth_date, services, liked_genres, disliked_genres, joined_at
		FROM group_members
		WHERE group_id = $1
		ORDER BY joined_at
	`

	if err := d.db.SelectContext(ctx, &members, query, groupID); err != nil {
		return nil, err
	}

	result := make([]model.Member, 0, len(members))
	for _, m := range members {
		result = append(result, model.Member{
			ID:             m.ID,
			GroupID:        m.GroupID,
			Name:           m.Name,
			BirthDate:      m.BirthDate,
			Services:       []string(m.Services),
			LikedGenres:    []int64(m.LikedGenres),
			DislikedGenres: []int64(m.DislikedGenres),
			JoinedAt:       m.JoinedAt,
		})
	}

	return result, nil
}
