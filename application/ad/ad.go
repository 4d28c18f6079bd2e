package ad

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/ads-board/application/cleanup"
	"github.com/muhammadheryan/ads-board/application/permission"
	"github.com/muhammadheryan/ads-board/application/user"
	"github.com/muhammadheryan/ads-board/cmd/config"
	"github.com/muhammadheryan/ads-board/constant"
	"github.com/muhammadheryan/ads-board/model"
	adrepo "github.com/muhammadheryan/ads-board/repository/ad"
	commentrepo "github.com/muhammadheryan/ads-board/repository/comment"
	imagerepo "github.com/muhammadheryan/ads-board/repository/image"
	txrepo "github.com/muhammadheryan/ads-board/repository/tx"
	"github.com/muhammadheryan/ads-board/utils/errors"
	"github.com/muhammadheryan/ads-board/utils/logger"
	"github.com/muhammadheryan/ads-board/utils/metrics"
	"go.uber.org/zap"
)

type AdApp interface {
	ListAds(ctx context.Context) (*model.AdsResponse, error)
	ListMyAds(ctx context.Context, email string) (*model.AdsResponse, error)
	GetAd(ctx context.Context, adID uint64) (*model.ExtendedAdResponse, error)
	CreateAd(ctx context.Context, email string, req *model.CreateOrUpdateAdRequest, image *model.ImageFile) (*model.AdResponse, error)
	UpdateAd(ctx context.Context, adID uint64, email string, req *model.CreateOrUpdateAdRequest) (*model.AdResponse, error)
	DeleteAd(ctx context.Context, adID uint64, email string) error
	UpdateAdImage(ctx context.Context, adID uint64, email string, image *model.ImageFile) ([]byte, error)
	GetImage(ctx context.Context, filename string) ([]byte, error)
}

type adAppImpl struct {
	storage     config.StorageConfig
	txRepo      txrepo.TxRepository
	adRepo      adrepo.AdRepository
	commentRepo commentrepo.CommentRepository
	users       user.UserLookup
	imageRepo   imagerepo.ImageRepository
	cleaner     *cleanup.Cleaner
}

func NewAdApp(config *config.Config, txRepo txrepo.TxRepository, adRepo adrepo.AdRepository, commentRepo commentrepo.CommentRepository,
	users user.UserLookup, imageRepo imagerepo.ImageRepository, cleaner *cleanup.Cleaner) AdApp {
	return &adAppImpl{
		storage:     config.Storage,
		txRepo:      txRepo,
		adRepo:      adRepo,
		commentRepo: commentRepo,
		users:       users,
		imageRepo:   imageRepo,
		cleaner:     cleaner,
	}
}

func (s *adAppImpl) ListAds(ctx context.Context) (*model.AdsResponse, error) {
	ads, err := s.adRepo.List(ctx)
	if err != nil {
		logger.Error("[ListAds] err adRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return model.NewAdsResponse(ads), nil
}

func (s *adAppImpl) ListMyAds(ctx context.Context, email string) (*model.AdsResponse, error) {
	caller, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	ads, err := s.adRepo.ListByAuthor(ctx, caller.ID)
	if err != nil {
		logger.Error("[ListMyAds] err adRepo.ListByAuthor", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return model.NewAdsResponse(ads), nil
}

func (s *adAppImpl) GetAd(ctx context.Context, adID uint64) (*model.ExtendedAdResponse, error) {
	detail, err := s.adRepo.GetDetail(ctx, adID)
	if err != nil {
		logger.Error("[GetAd] err adRepo.GetDetail", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if detail == nil {
		return nil, adNotFound(adID)
	}
	return detail.ToExtendedResponse(), nil
}

func (s *adAppImpl) CreateAd(ctx context.Context, email string, req *model.CreateOrUpdateAdRequest, image *model.ImageFile) (*model.AdResponse, error) {
	author, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	var imagePath *string
	if image != nil {
		path, err := s.imageRepo.Save(ctx, image.Data, image.Filename, s.storage.AdImagesDir, s.storage.AdImagesPrefix)
		if err != nil {
			return nil, err
		}
		imagePath = &path
	}

	now := time.Now().UTC()
	entity := &model.AdEntity{
		Title:       req.Title,
		Price:       req.Price,
		Description: req.Description,
		Image:       imagePath,
		AuthorID:    author.ID,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.inTx(ctx, "[CreateAd]", func(tx *sqlx.Tx) error {
		created, err := s.adRepo.CreateTx(ctx, tx, entity)
		if err != nil {
			return err
		}
		entity = created
		return nil
	})
	if err != nil {
		// the row never landed, so the file has no owner
		if imagePath != nil {
			s.imageRepo.Delete(ctx, *imagePath, s.storage.AdImagesDir)
		}
		return nil, err
	}

	metrics.Inc(metrics.AdOperationsCounter, "create")
	logger.Info("[CreateAd] ad created", zap.Uint64("ad_id", entity.ID), zap.Uint64("author_id", author.ID))
	res := entity.ToResponse()
	return &res, nil
}

func (s *adAppImpl) UpdateAd(ctx context.Context, adID uint64, email string, req *model.CreateOrUpdateAdRequest) (*model.AdResponse, error) {
	ad, err := s.getOwnedAd(ctx, "[UpdateAd]", adID, email)
	if err != nil {
		return nil, err
	}

	err = s.inTx(ctx, "[UpdateAd]", func(tx *sqlx.Tx) error {
		return s.adRepo.UpdateTx(ctx, tx, ad.ID, req)
	})
	if err != nil {
		return nil, err
	}

	ad.Title = req.Title
	ad.Price = req.Price
	ad.Description = req.Description
	metrics.Inc(metrics.AdOperationsCounter, "update")
	res := ad.ToResponse()
	return &res, nil
}

func (s *adAppImpl) DeleteAd(ctx context.Context, adID uint64, email string) error {
	ad, err := s.getOwnedAd(ctx, "[DeleteAd]", adID, email)
	if err != nil {
		return err
	}

	err = s.inTx(ctx, "[DeleteAd]", func(tx *sqlx.Tx) error {
		if err := s.commentRepo.DeleteByAdTx(ctx, tx, ad.ID); err != nil {
			return err
		}
		return s.adRepo.DeleteTx(ctx, tx, ad.ID)
	})
	if err != nil {
		return err
	}

	s.cleaner.Cleanup(ctx, s.storage.AdImagesDir, fmt.Sprintf("ad %d deleted", ad.ID), model.StringValue(ad.Image))
	metrics.Inc(metrics.AdOperationsCounter, "delete")
	logger.Info("[DeleteAd] ad deleted", zap.Uint64("ad_id", ad.ID), zap.String("by", email))
	return nil
}

func (s *adAppImpl) UpdateAdImage(ctx context.Context, adID uint64, email string, image *model.ImageFile) ([]byte, error) {
	ad, err := s.getOwnedAd(ctx, "[UpdateAdImage]", adID, email)
	if err != nil {
		return nil, err
	}

	newPath, err := s.imageRepo.Save(ctx, image.Data, image.Filename, s.storage.AdImagesDir, s.storage.AdImagesPrefix)
	if err != nil {
		return nil, err
	}

	err = s.inTx(ctx, "[UpdateAdImage]", func(tx *sqlx.Tx) error {
		return s.adRepo.UpdateImageTx(ctx, tx, ad.ID, newPath)
	})
	if err != nil {
		s.imageRepo.Delete(ctx, newPath, s.storage.AdImagesDir)
		return nil, err
	}

	if ad.Image != nil {
		s.imageRepo.Delete(ctx, *ad.Image, s.storage.AdImagesDir)
	}
	metrics.Inc(metrics.AdOperationsCounter, "update_image")
	return image.Data, nil
}

func (s *adAppImpl) GetImage(ctx context.Context, filename string) ([]byte, error) {
	return s.imageRepo.Read(ctx, s.storage.AdImagesPrefix+filename, s.storage.AdImagesDir)
}

// getOwnedAd loads the ad and checks that the caller may modify it.
func (s *adAppImpl) getOwnedAd(ctx context.Context, method string, adID uint64, email string) (*model.AdEntity, error) {
	ad, err := s.adRepo.GetByID(ctx, adID)
	if err != nil {
		logger.Error(method+" err adRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if ad == nil {
		return nil, adNotFound(adID)
	}

	caller, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if err := permission.Check(caller, ad.AuthorID, "ad"); err != nil {
		logger.Info(method+" permission denied", zap.Uint64("ad_id", adID), zap.Uint64("user_id", caller.ID))
		return nil, err
	}
	return ad, nil
}

func (s *adAppImpl) inTx(ctx context.Context, method string, fn func(tx *sqlx.Tx) error) error {
	if err := txrepo.WithinTx(ctx, s.txRepo, fn); err != nil {
		logger.Error(method+" err tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func adNotFound(adID uint64) error {
	return errors.SetCustomError(constant.ErrAdNotFound).WithMessage(fmt.Sprintf("ad not found with id: %d", adID))
}
