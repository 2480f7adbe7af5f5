package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bnema/splitview/internal/domain/entity"
	"github.com/bnema/splitview/internal/domain/repository"
	"github.com/bnema/splitview/internal/logging"
)

type lastSessionRepo struct {
	db *sql.DB
}

// NewLastSessionRepository returns a LastSessionRepository backed by db.
// Timestamps are stored as unix milliseconds.
func NewLastSessionRepository(db *sql.DB) repository.LastSessionRepository {
	return &lastSessionRepo{db: db}
}

func (r *lastSessionRepo) Save(ctx context.Context, session *entity.LastSession) error {
	if err := session.Validate(); err != nil {
		return err
	}

	logging.FromContext(ctx).Debug().Str("session_id", session.ID).Msg("saving last session")

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO last_sessions (id, primary_url, secondary_url, mode, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			primary_url = excluded.primary_url,
			secondary_url = excluded.secondary_url,
			mode = excluded.mode,
			created_at = excluded.created_at`,
		session.ID, session.PrimaryURL, session.SecondaryURL, session.Mode.String(), session.CreatedAt.UnixMilli())
	return err
}

func (r *lastSessionRepo) GetLatest(ctx context.Context) (*entity.LastSession, error) {
	var (
		s         entity.LastSession
		mode      string
		createdAt int64
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT id, primary_url, secondary_url, mode, created_at
		FROM last_sessions ORDER BY created_at DESC, rowid DESC LIMIT 1`).
		Scan(&s.ID, &s.PrimaryURL, &s.SecondaryURL, &mode, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	s.Mode = entity.ParseSplitMode(mode)
	s.CreatedAt = time.UnixMilli(createdAt).UTC()
	return &s, nil
}

func (r *lastSessionRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM last_sessions WHERE created_at < ?`, cutoff.UnixMilli())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *lastSessionRepo) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM last_sessions`)
	return err
}
