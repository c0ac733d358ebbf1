package infra_postgres_vote

import (
	"context"

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

type tallyDTO struct {
	TitleID   int64  `db:"title_id"`
	MediaKind string `db:"media_kind"`
	Likes     int    `db:"likes"`
	Dislikes  int    `db:"dislikes"`
	Skips     int    `db:"skips"`
}

type ackDTO struct {
	TitleID   int64  `db:"title_id"`
	MediaKind string `db:"media_kind"`
}

// Upsert is a single unique-key write so concurrent members never lose
// updates; last write wins per (member, title).
func (d *Driver) Upsert(ctx context.Context, vote model.Vote) error {
	query := `
		INSERT INTO votes (group_id, member_id, title_id, media_kind, decision, updated_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (group_id, member_id, title_id, media_kind)
		DO UPDATE SET decision = EXCLUDED.decision, updated_at = now()
	`

	_, err := d.db.ExecContext(ctx, query,
		vote.GroupID,
		vote.MemberID,
		vote.TitleID,
		string(vote.Kind),
		string(vote.Decision),
	)
	return err
}

func (d *Driver) TallyForTitle(ctx context.Context, groupID uuid.UUID, titleID int64, kind model.MediaKind) (model.TitleTally, error) {
	var tally tallyDTO

	query := `
		SELECT
			$2::bigint AS title_id,
			$3::text AS media_kind,
			COUNT(*) FILTER (WHERE decision = 'LIKE') AS likes,
			COUNT(*) FILTER (WHERE decision = 'DISLIKE') AS dislikes,
			COUNT(*) FILTER (WHERE decision = 'SKIP') AS skips
		FROM votes
		WHERE group_id = $1 AND title_id = $2 AND media_kind = $3
	`

	err := d.db.GetContext(ctx, &tally, query, groupID, titleID, string(kind))
	if err != nil {
		return model.TitleTally{}, err
	}

	return tally.toModel(), nil
}

func (d *Driver) TalliesByGroup(ctx context.Context, groupID uuid.UUID) ([]model.TitleTally, error) {
	var tallies []tallyDTO

	query := `
		SELECT
			title_id,
			media_kind,
			COUNT(*) FILTER (WHERE decision = 'LIKE') AS likes,
			COUNT(*) FILTER (WHERE decision = 'DISLIKE') AS dislikes,
			COUNT(*) FILTER (WHERE decision = 'SKIP') AS skips
		FROM votes
		WHERE group_id = $1
		GROUP BY title_id, media_kind
	`

	if err := d.db.SelectContext(ctx, &tallies, query, groupID); err != nil {
		return nil, err
	}

	result := make([]model.TitleTally, 0, len(tallies))
	for _, t := range tallies {
		result = append(result, t.toModel())
	}

	return result, nil
}

func (d *Driver) UpsertAck(ctx context.Context, groupID, memberID uuid.UUID, titleID int64, kind model.MediaKind) error {
	query := `
		INSERT INTO match_acks (group_id, member_id, title_id, media_kind, acked_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (group_id, member_id, title_id, media_kind)
		DO NOTHING
	`

	_, err := d.db.ExecContext(ctx, query, groupID, memberID, titleID, string(kind))
	return err
}

func (d *Driver) AckedByMember(ctx context.Context, groupID, memberID uuid.UUID) ([]model.TitleKey, error) {
	var acks []ackDTO

	query := `
		SELECT title_id, media_kind
		FROM match_acks
		WHERE group_id = $1 AND member_id = $2
	`

	if err := d.db.SelectContext(ctx, &acks, query, groupID, memberID); err != nil {
		return nil, err
	}

	result := make([]model.TitleKey, 0, len(acks))
	for _, a := range acks {
		result = append(result, model.TitleKey{
			Kind: model.MediaKind(a.MediaKind),
			ID:   a.TitleID,
		})
	}

	return result, nil
}

func (t tallyDTO) toModel() model.TitleTally {
	return model.TitleTally{
		TitleID: t.TitleID,
		Kind:    model.MediaKind(t.MediaKind),
		Like:    t.Likes,
		Dislike: t.Dislikes,
		Skip:    t.Skips,
	}
}
