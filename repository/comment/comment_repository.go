package comment

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/ads-board/model"
)

type SQL struct {
	conn *sqlx.DB
}

type CommentRepository interface {
	CreateTx(ctx context.Context, tx *sqlx.Tx, data *model.CommentEntity) (*model.CommentEntity, error)
	GetByIDAndAd(ctx context.Context, id, adID uint64) (*model.CommentDetail, error)
	ListByAd(ctx context.Context, adID uint64) ([]model.CommentDetail, error)
	UpdateTextTx(ctx context.Context, tx *sqlx.Tx, id uint64, text string) error
	DeleteTx(ctx context.Context, tx *sqlx.Tx, id uint64) error
	DeleteByAdTx(ctx context.Context, tx *sqlx.Tx, adID uint64) error
	DeleteByAuthorTx(ctx context.Context, tx *sqlx.Tx, authorID uint64) error
	DeleteOnAdsOfAuthorTx(ctx context.Context, tx *sqlx.Tx, authorID uint64) error
}

func NewCommentRepository(conn *sqlx.DB) CommentRepository {
	return &SQL{conn: conn}
}

const (
	commentDetailBase = `SELECT c.id, c.text, c.author_id, c.ad_id, c.created_at, c.created_at_millis, c.is_active,
u.first_name AS author_first_name, u.image AS author_image
FROM comments c JOIN users u ON u.id = c.author_id`
	insertCommentQuery = `INSERT INTO comments (text, author_id, ad_id, created_at, created_at_millis, is_active)
VALUES (?, ?, ?, ?, ?, ?)`
	getByIDAndAdQuery      = commentDetailBase + ` WHERE c.id = ? AND c.ad_id = ?`
	listByAdQuery          = commentDetailBase + ` WHERE c.ad_id = ? ORDER BY c.created_at DESC, c.id DESC`
	updateTextQuery        = `UPDATE comments SET text = ? WHERE id = ?`
	deleteCommentQuery     = `DELETE FROM comments WHERE id = ?`
	deleteByAdQuery        = `DELETE FROM comments WHERE ad_id = ?`
	deleteByAuthorQuery    = `DELETE FROM comments WHERE author_id = ?`
	deleteOnAdsOfAuthorQry = `DELETE c FROM comments c JOIN ads a ON a.id = c.ad_id WHERE a.author_id = ?`
)

func (r *SQL) CreateTx(ctx context.Context, tx *sqlx.Tx, data *model.CommentEntity) (*model.CommentEntity, error) {
	res, err := tx.ExecContext(ctx, insertCommentQuery,
		data.Text, data.AuthorID, data.AdID, data.CreatedAt, data.CreatedAtMillis, data.IsActive)
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

// GetByIDAndAd only finds the comment when it belongs to adID; nil without error otherwise.
func (r *SQL) GetByIDAndAd(ctx context.Context, id, adID uint64) (*model.CommentDetail, error) {
	var detail model.CommentDetail
	if err := r.conn.QueryRowxContext(ctx, getByIDAndAdQuery, id, adID).StructScan(&detail); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &detail, nil
}

func (r *SQL) ListByAd(ctx context.Context, adID uint64) ([]model.CommentDetail, error) {
	items := make([]model.CommentDetail, 0)
	if err := r.conn.SelectContext(ctx, &items, listByAdQuery, adID); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *SQL) UpdateTextTx(ctx context.Context, tx *sqlx.Tx, id uint64, text string) error {
	_, err := tx.ExecContext(ctx, updateTextQuery, text, id)
	return err
}

func (r *SQL) DeleteTx(ctx context.Context, tx *sqlx.Tx, id uint64) error {
	_, err := tx.ExecContext(ctx, deleteCommentQuery, id)
	return err
}

func (r *SQL) DeleteByAdTx(ctx context.Context, tx *sqlx.Tx, adID uint64) error {
	_, err := tx.ExecContext(ctx, deleteByAdQuery, adID)
	return err
}

func (r *SQL) DeleteByAuthorTx(ctx context.Context, tx *sqlx.Tx, authorID uint64) error {
	_, err := tx.ExecContext(ctx, deleteByAuthorQuery, authorID)
	return err
}

// DeleteOnAdsOfAuthorTx removes every comment left on ads owned by authorID.
func (r *SQL) DeleteOnAdsOfAuthorTx(ctx context.Context, tx *sqlx.Tx, authorID uint64) error {
	_, err := tx.ExecContext(ctx, deleteOnAdsOfAuthorQry, authorID)
	return err
}
