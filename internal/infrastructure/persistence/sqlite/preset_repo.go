package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/splitview/internal/domain/entity"
	"github.com/bnema/splitview/internal/domain/repository"
	"github.com/bnema/splitview/internal/logging"
)

type presetRepo struct {
	db *sql.DB
}

// NewPresetRepository returns a PresetRepository backed by db.
func NewPresetRepository(db *sql.DB) repository.PresetRepository {
	return &presetRepo{db: db}
}

func (r *presetRepo) Save(ctx context.Context, preset *entity.Preset) error {
	n, ok := preset.ID.CustomNumber()
	if !ok {
		return fmt.Errorf("%w: %q", entity.ErrInvalidPresetID, string(preset.ID))
	}

	logging.FromContext(ctx).Debug().Str("preset_id", string(preset.ID)).Msg("saving preset")

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO custom_presets (number, left_url, right_url, left_label, right_label, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(number) DO UPDATE SET
			left_url = excluded.left_url,
			right_url = excluded.right_url,
			left_label = excluded.left_label,
			right_label = excluded.right_label,
			updated_at = excluded.updated_at`,
		n, preset.LeftURL, preset.RightURL, preset.LeftLabel, preset.RightLabel, time.Now().UnixMilli())
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE preset_counter SET max_number = MAX(max_number, ?) WHERE id = 1`, n); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *presetRepo) FindByID(ctx context.Context, id entity.PresetID) (*entity.Preset, error) {
	n, ok := id.CustomNumber()
	if !ok {
		return nil, nil
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT number, left_url, right_url, left_label, right_label
		FROM custom_presets WHERE number = ?`, n)
	p, err := scanPreset(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func (r *presetRepo) GetAll(ctx context.Context) ([]*entity.Preset, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT number, left_url, right_url, left_label, right_label
		FROM custom_presets ORDER BY number`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var presets []*entity.Preset
	for rows.Next() {
		p, err := scanPreset(rows)
		if err != nil {
			return nil, err
		}
		presets = append(presets, p)
	}
	return presets, rows.Err()
}

func (r *presetRepo) MaxCustomNumber(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT MAX(
			COALESCE((SELECT max_number FROM preset_counter WHERE id = 1), 0),
			COALESCE((SELECT MAX(number) FROM custom_presets), 0)
		)`).Scan(&n)
	return n, err
}

func (r *presetRepo) ReserveCustomNumber(ctx context.Context, floor int) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		UPDATE preset_counter
		SET max_number = MAX(
			max_number,
			COALESCE((SELECT MAX(number) FROM custom_presets), 0),
			?
		) + 1
		WHERE id = 1
		RETURNING max_number`, floor).Scan(&n)
	if err != nil {
		return 0, err
	}
	logging.FromContext(ctx).Debug().Int("number", n).Msg("custom preset number reserved")
	return n, nil
}

func (r *presetRepo) Delete(ctx context.Context, id entity.PresetID) error {
	n, ok := id.CustomNumber()
	if !ok {
		return fmt.Errorf("%w: %q", entity.ErrInvalidPresetID, string(id))
	}
	_, err := r.db.ExecContext(ctx, `DELETE FROM custom_presets WHERE number = ?`, n)
	return err
}

func (r *presetRepo) DeleteAll(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM custom_presets`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `UPDATE preset_counter SET max_number = 0 WHERE id = 1`); err != nil {
		return err
	}
	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPreset(row rowScanner) (*entity.Preset, error) {
	var (
		n int
		p entity.Preset
	)
	if err := row.Scan(&n, &p.LeftURL, &p.RightURL, &p.LeftLabel, &p.RightLabel); err != nil {
		return nil, err
	}
	p.ID = entity.CustomPresetID(n)
	return &p, nil
}
