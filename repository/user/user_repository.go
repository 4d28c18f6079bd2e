package user

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/ads-board/model"
)

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	Create(ctx context.Context, req *model.UserEntity) (*model.UserEntity, error)
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
	UpdateProfileTx(ctx context.Context, tx *sqlx.Tx, id uint64, req *model.UpdateUserRequest) error
	UpdatePasswordTx(ctx context.Context, tx *sqlx.Tx, id uint64, passwordHash string) error
	UpdateImageTx(ctx context.Context, tx *sqlx.Tx, id uint64, image string) error
	DeleteTx(ctx context.Context, tx *sqlx.Tx, id uint64) error
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	insertUserQuery = `INSERT INTO users (username, email, password_hash, first_name, last_name, phone, role, created_at)
VALUES (?, NULLIF(?, ''), ?, ?, ?, ?, ?, NOW())`
	getUserBase = `SELECT id, username, COALESCE(email, '') AS email, password_hash, first_name, last_name, phone, role, image, created_at, updated_at
FROM users WHERE true`
	updateProfileQuery  = `UPDATE users SET first_name = ?, last_name = ?, phone = ?, updated_at = NOW() WHERE id = ?`
	updatePasswordQuery = `UPDATE users SET password_hash = ?, updated_at = NOW() WHERE id = ?`
	updateImageQuery    = `UPDATE users SET image = ?, updated_at = NOW() WHERE id = ?`
	deleteUserQuery     = `DELETE FROM users WHERE id = ?`
)

func (s *SQL) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertUserQuery,
		data.Username, data.Email, data.PasswordHash, data.FirstName, data.LastName, data.Phone, data.Role)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

// Get returns nil without error when no user matches the filter.
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
	if filter.Username != "" {
		query += " AND username = ?"
		args = append(args, filter.Username)
	}

	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) UpdateProfileTx(ctx context.Context, tx *sqlx.Tx, id uint64, req *model.UpdateUserRequest) error {
	_, err := tx.ExecContext(ctx, updateProfileQuery, req.FirstName, req.LastName, req.Phone, id)
	return err
}

func (s *SQL) UpdatePasswordTx(ctx context.Context, tx *sqlx.Tx, id uint64, passwordHash string) error {
	_, err := tx.ExecContext(ctx, updatePasswordQuery, passwordHash, id)
	return err
}

func (s *SQL) UpdateImageTx(ctx context.Context, tx *sqlx.Tx, id uint64, image string) error {
	_, err := tx.ExecContext(ctx, updateImageQuery, image, id)
	return err
}

func (s *SQL) DeleteTx(ctx context.Context, tx *sqlx.Tx, id uint64) error {
	_, err := tx.ExecContext(ctx, deleteUserQuery, id)
	return err
}
