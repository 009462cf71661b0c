package user

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/wa-crm/model"
)

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
	GetProfile(ctx context.Context, id uint64) (*model.UserProfile, error)
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	getUserBase    = `SELECT id, name, email, phone, company, role, created_at, updated_at FROM user WHERE true`
	getUserProfile = `SELECT id, name, company, email FROM user WHERE id = ?`
)

func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	query := getUserBase
	args := make([]any, 0, 3)

	if filter.ID != 0 {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Email != "" {
		query += " AND email = ?"
		args = append(args, filter.Email)
	}
	if filter.Phone != "" {
		query += " AND phone = ?"
		args = append(args, filter.Phone)
	}

	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// GetProfile returns nil without error when the user does not exist.
func (s *SQL) GetProfile(ctx context.Context, id uint64) (*model.UserProfile, error) {
	var profile model.UserProfile
	if err := s.conn.GetContext(ctx, &profile, getUserProfile, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}
