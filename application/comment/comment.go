package comment

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/ads-board/application/permission"
	"github.com/muhammadheryan/ads-board/application/user"
	"github.com/muhammadheryan/ads-board/constant"
	"github.com/muhammadheryan/ads-board/model"
	adrepo "github.com/muhammadheryan/ads-board/repository/ad"
	commentrepo "github.com/muhammadheryan/ads-board/repository/comment"
	txrepo "github.com/muhammadheryan/ads-board/repository/tx"
	"github.com/muhammadheryan/ads-board/utils/errors"
	"github.com/muhammadheryan/ads-board/utils/logger"
	"github.com/muhammadheryan/ads-board/utils/metrics"
	"go.uber.org/zap"
)

type CommentApp interface {
	ListComments(ctx context.Context, adID uint64) (*model.CommentsResponse, error)
	AddComment(ctx context.Context, adID uint64, email string, req *model.CreateOrUpdateCommentRequest) (*model.CommentResponse, error)
	DeleteComment(ctx context.Context, adID, commentID uint64, email string) error
	UpdateComment(ctx context.Context, adID, commentID uint64, email string, req *model.CreateOrUpdateCommentRequest) (*model.CommentResponse, error)
}

type commentAppImpl struct {
	txRepo      txrepo.TxRepository
	adRepo      adrepo.AdRepository
	commentRepo commentrepo.CommentRepository
	users       user.UserLookup
	now         func() time.Time
}

func NewCommentApp(txRepo txrepo.TxRepository, adRepo adrepo.AdRepository, commentRepo commentrepo.CommentRepository, users user.UserLookup) CommentApp {
	return &commentAppImpl{
		txRepo:      txRepo,
		adRepo:      adRepo,
		commentRepo: commentRepo,
		users:       users,
		now:         time.Now,
	}
}

func (s *commentAppImpl) ListComments(ctx context.Context, adID uint64) (*model.CommentsResponse, error) {
	if _, err := s.getAd(ctx, "[ListComments]", adID); err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByAd(ctx, adID)
	if err != nil {
		logger.Error("[ListComments] err commentRepo.ListByAd", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return model.NewCommentsResponse(comments), nil
}

func (s *commentAppImpl) AddComment(ctx context.Context, adID uint64, email string, req *model.CreateOrUpdateCommentRequest) (*model.CommentResponse, error) {
	author, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	ad, err := s.getAd(ctx, "[AddComment]", adID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	entity := &model.CommentEntity{
		Text:            req.Text,
		AuthorID:        author.ID,
		AdID:            ad.ID,
		CreatedAt:       now,
		CreatedAtMillis: now.UnixMilli(),
		IsActive:        true,
	}

	err = s.inTx(ctx, "[AddComment]", func(tx *sqlx.Tx) error {
		created, err := s.commentRepo.CreateTx(ctx, tx, entity)
		if err != nil {
			return err
		}
		entity = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.Inc(metrics.CommentOperationsCounter, "create")
	logger.Info("[AddComment] comment added", zap.Uint64("comment_id", entity.ID), zap.Uint64("ad_id", adID), zap.String("by", email))

	detail := model.CommentDetail{
		CommentEntity:   *entity,
		AuthorFirstName: author.FirstName,
		AuthorImage:     author.Image,
	}
	res := detail.ToResponse()
	return &res, nil
}

func (s *commentAppImpl) DeleteComment(ctx context.Context, adID, commentID uint64, email string) error {
	comment, err := s.getOwnedComment(ctx, "[DeleteComment]", adID, commentID, email)
	if err != nil {
		return err
	}

	err = s.inTx(ctx, "[DeleteComment]", func(tx *sqlx.Tx) error {
		return s.commentRepo.DeleteTx(ctx, tx, comment.ID)
	})
	if err != nil {
		return err
	}

	metrics.Inc(metrics.CommentOperationsCounter, "delete")
	logger.Info("[DeleteComment] comment deleted", zap.Uint64("comment_id", commentID), zap.Uint64("ad_id", adID), zap.String("by", email))
	return nil
}

func (s *commentAppImpl) UpdateComment(ctx context.Context, adID, commentID uint64, email string, req *model.CreateOrUpdateCommentRequest) (*model.CommentResponse, error) {
	comment, err := s.getOwnedComment(ctx, "[UpdateComment]", adID, commentID, email)
	if err != nil {
		return nil, err
	}

	err = s.inTx(ctx, "[UpdateComment]", func(tx *sqlx.Tx) error {
		return s.commentRepo.UpdateTextTx(ctx, tx, comment.ID, req.Text)
	})
	if err != nil {
		return nil, err
	}

	comment.Text = req.Text
	metrics.Inc(metrics.CommentOperationsCounter, "update")
	res := comment.ToResponse()
	return &res, nil
}

func (s *commentAppImpl) getAd(ctx context.Context, method string, adID uint64) (*model.AdEntity, error) {
	ad, err := s.adRepo.GetByID(ctx, adID)
	if err != nil {
		logger.Error(method+" err adRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if ad == nil {
		return nil, errors.SetCustomError(constant.ErrAdNotFound).WithMessage(fmt.Sprintf("ad not found with id: %d", adID))
	}
	return ad, nil
}

// getOwnedComment finds the comment under adID only, then checks the caller may modify it.
func (s *commentAppImpl) getOwnedComment(ctx context.Context, method string, adID, commentID uint64, email string) (*model.CommentDetail, error) {
	comment, err := s.commentRepo.GetByIDAndAd(ctx, commentID, adID)
	if err != nil {
		logger.Error(method+" err commentRepo.GetByIDAndAd", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if comment == nil {
		return nil, errors.SetCustomError(constant.ErrCommentNotFound).
			WithMessage(fmt.Sprintf("comment with id %d not found for ad id %d", commentID, adID))
	}

	caller, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if err := permission.Check(caller, comment.AuthorID, "comment"); err != nil {
		logger.Info(method+" permission denied", zap.Uint64("comment_id", commentID), zap.Uint64("user_id", caller.ID))
		return nil, err
	}
	return comment, nil
}

func (s *commentAppImpl) inTx(ctx context.Context, method string, fn func(tx *sqlx.Tx) error) error {
	if err := txrepo.WithinTx(ctx, s.txRepo, fn); err != nil {
		logger.Error(method+" err tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}
