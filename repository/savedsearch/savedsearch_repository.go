package savedsearch

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/wa-crm/constant"
	"github.com/muhammadheryan/wa-crm/model"
)

type SQL struct {
	conn *sqlx.DB
}

type SavedSearchRepository interface {
	LockScopeTx(ctx context.Context, tx *sqlx.Tx, userID uint64, entity constant.SearchEntity) error
	ClearDefaultsTx(ctx context.Context, tx *sqlx.Tx, userID uint64, entity constant.SearchEntity, exceptID string) error
	InsertTx(ctx context.Context, tx *sqlx.Tx, data *model.SavedSearchEntity) error
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id string, userID uint64) (*model.SavedSearchEntity, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, data *model.SavedSearchEntity) error
	Get(ctx context.Context, id string, userID uint64) (*model.SavedSearchEntity, error)
	List(ctx context.Context, filter *model.SavedSearchFilter) ([]model.SavedSearchEntity, error)
	Delete(ctx context.Context, id string, userID uint64) (bool, error)
}

func NewSavedSearchRepository(conn *sqlx.DB) SavedSearchRepository {
	return &SQL{conn: conn}
}

const (
	savedSearchColumns = `id, user_id, name, description, entity, filters, is_default, created_at, updated_at`

	lockScopeQuery     = `SELECT id FROM saved_search WHERE user_id = ? AND entity = ? FOR UPDATE`
	clearDefaultsQuery = `UPDATE saved_search SET is_default = FALSE, updated_at = NOW() WHERE user_id = ? AND entity = ? AND is_default = TRUE AND id <> ?`
	insertQuery        = `INSERT INTO saved_search (id, user_id, name, description, entity, filters, is_default, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	getForUpdateQuery  = `SELECT ` + savedSearchColumns + ` FROM saved_search WHERE id = ? AND user_id = ? FOR UPDATE`
	updateQuery        = `UPDATE saved_search SET name = ?, description = ?, filters = ?, is_default = ?, updated_at = NOW() WHERE id = ? AND user_id = ?`
	getQuery           = `SELECT ` + savedSearchColumns + ` FROM saved_search WHERE id = ? AND user_id = ?`
	listBase           = `SELECT ` + savedSearchColumns + ` FROM saved_search WHERE user_id = ?`
	deleteQuery        = `DELETE FROM saved_search WHERE id = ? AND user_id = ?`
)

// LockScopeTx locks every saved search of (userID, entity) until tx ends so
// that concurrent default swaps for the same pair serialize.
func (s *SQL) LockScopeTx(ctx context.Context, tx *sqlx.Tx, userID uint64, entity constant.SearchEntity) error {
	var ids []string
	return tx.SelectContext(ctx, &ids, lockScopeQuery, userID, entity)
}

func (s *SQL) ClearDefaultsTx(ctx context.Context, tx *sqlx.Tx, userID uint64, entity constant.SearchEntity, exceptID string) error {
	_, err := tx.ExecContext(ctx, clearDefaultsQuery, userID, entity, exceptID)
	return err
}

func (s *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, data *model.SavedSearchEntity) error {
	_, err := tx.ExecContext(ctx, insertQuery, data.ID, data.UserID, data.Name, data.Description, data.Entity, data.Filters, data.IsDefault, data.CreatedAt)
	return err
}

// GetForUpdateTx returns nil without error when (id, userID) does not match.
func (s *SQL) GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id string, userID uint64) (*model.SavedSearchEntity, error) {
	var entity model.SavedSearchEntity
	if err := tx.QueryRowxContext(ctx, getForUpdateQuery, id, userID).StructScan(&entity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) UpdateTx(ctx context.Context, tx *sqlx.Tx, data *model.SavedSearchEntity) error {
	_, err := tx.ExecContext(ctx, updateQuery, data.Name, data.Description, data.Filters, data.IsDefault, data.ID, data.UserID)
	return err
}

// Get returns nil without error when (id, userID) does not match.
func (s *SQL) Get(ctx context.Context, id string, userID uint64) (*model.SavedSearchEntity, error) {
	var entity model.SavedSearchEntity
	if err := s.conn.QueryRowxContext(ctx, getQuery, id, userID).StructScan(&entity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) List(ctx context.Context, filter *model.SavedSearchFilter) ([]model.SavedSearchEntity, error) {
	query := listBase
	args := []any{filter.UserID}
	if filter.Entity != "" {
		query += " AND entity = ?"
		args = append(args, filter.Entity)
	}
	query += " ORDER BY is_default DESC, created_at DESC, id ASC"

	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.SavedSearchEntity, 0)
	for rows.Next() {
		var it model.SavedSearchEntity
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// Delete reports whether a row owned by userID was removed.
func (s *SQL) Delete(ctx context.Context, id string, userID uint64) (bool, error) {
	res, err := s.conn.ExecContext(ctx, deleteQuery, id, userID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
