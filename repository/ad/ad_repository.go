package ad

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/ads-board/model"
)

type SQL struct {
	conn *sqlx.DB
}

type AdRepository interface {
	CreateTx(ctx context.Context, tx *sqlx.Tx, data *model.AdEntity) (*model.AdEntity, error)
	GetByID(ctx context.Context, id uint64) (*model.AdEntity, error)
	GetDetail(ctx context.Context, id uint64) (*model.AdDetail, error)
	List(ctx context.Context) ([]model.AdEntity, error)
	ListByAuthor(ctx context.Context, authorID uint64) ([]model.AdEntity, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64, req *model.CreateOrUpdateAdRequest) error
	UpdateImageTx(ctx context.Context, tx *sqlx.Tx, id uint64, image string) error
	DeleteTx(ctx context.Context, tx *sqlx.Tx, id uint64) error
	DeleteByAuthorTx(ctx context.Context, tx *sqlx.Tx, authorID uint64) error
}

func NewAdRepository(conn *sqlx.DB) AdRepository {
	return &SQL{conn: conn}
}

const (
	adColumns     = `a.id, a.title, a.price, a.description, a.image, a.author_id, a.is_active, a.created_at, a.updated_at`
	insertAdQuery = `INSERT INTO ads (title, price, description, image, author_id, is_active, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	getAdQuery       = `SELECT ` + adColumns + ` FROM ads a WHERE a.id = ?`
	listAdsQuery     = `SELECT ` + adColumns + ` FROM ads a ORDER BY a.created_at DESC, a.id DESC`
	listByAuthorBase = `SELECT ` + adColumns + ` FROM ads a WHERE a.author_id = ? ORDER BY a.created_at DESC, a.id DESC`
	getAdDetailQuery = `SELECT ` + adColumns + `, u.first_name AS author_first_name, u.last_name AS author_last_name,
COALESCE(u.email, '') AS author_email, u.phone AS author_phone
FROM ads a JOIN users u ON u.id = a.author_id WHERE a.id = ?`
	updateAdQuery      = `UPDATE ads SET title = ?, price = ?, description = ?, updated_at = NOW() WHERE id = ?`
	updateAdImageQuery = `UPDATE ads SET image = ?, updated_at = NOW() WHERE id = ?`
	deleteAdQuery      = `DELETE FROM ads WHERE id = ?`
	deleteByAuthorQ    = `DELETE FROM ads WHERE author_id = ?`
)

func (r *SQL) CreateTx(ctx context.Context, tx *sqlx.Tx, data *model.AdEntity) (*model.AdEntity, error) {
	res, err := tx.ExecContext(ctx, insertAdQuery,
		data.Title, data.Price, data.Description, data.Image, data.AuthorID, data.IsActive, data.CreatedAt, data.UpdatedAt)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	data.ID = uint64(id)
	return data, nil
}

// GetByID returns nil without error when the ad does not exist.
func (r *SQL) GetByID(ctx context.Context, id uint64) (*model.AdEntity, error) {
	var entity model.AdEntity
	if err := r.conn.QueryRowxContext(ctx, getAdQuery, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// GetDetail returns nil without error when the ad does not exist.
func (r *SQL) GetDetail(ctx context.Context, id uint64) (*model.AdDetail, error) {
	var detail model.AdDetail
	if err := r.conn.QueryRowxContext(ctx, getAdDetailQuery, id).StructScan(&detail); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &detail, nil
}

func (r *SQL) List(ctx context.Context) ([]model.AdEntity, error) {
	items := make([]model.AdEntity, 0)
	if err := r.conn.SelectContext(ctx, &items, listAdsQuery); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *SQL) ListByAuthor(ctx context.Context, authorID uint64) ([]model.AdEntity, error) {
	items := make([]model.AdEntity, 0)
	if err := r.conn.SelectContext(ctx, &items, listByAuthorBase, authorID); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *SQL) UpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64, req *model.CreateOrUpdateAdRequest) error {
	_, err := tx.ExecContext(ctx, updateAdQuery, req.Title, req.Price, req.Description, id)
	return err
}

func (r *SQL) UpdateImageTx(ctx context.Context, tx *sqlx.Tx, id uint64, image string) error {
	_, err := tx.ExecContext(ctx, updateAdImageQuery, image, id)
	return err
}

func (r *SQL) DeleteTx(ctx context.Context, tx *sqlx.Tx, id uint64) error {
	_, err := tx.ExecContext(ctx, deleteAdQuery, id)
	return err
}

func (r *SQL) DeleteByAuthorTx(ctx context.Context, tx *sqlx.Tx, authorID uint64) error {
	_, err := tx.ExecContext(ctx, deleteByAuthorQ, authorID)
	return err
}
