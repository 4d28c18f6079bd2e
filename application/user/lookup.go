package user

import (
	"context"
	"fmt"

	"github.com/muhammadheryan/ads-board/constant"
	"github.com/muhammadheryan/ads-board/model"
	userrepo "github.com/muhammadheryan/ads-board/repository/user"
	"github.com/muhammadheryan/ads-board/utils/errors"
	"github.com/muhammadheryan/ads-board/utils/logger"
	"go.uber.org/zap"
)

// UserLookup turns the authenticated caller's email into a user row.
type UserLookup interface {
	GetByEmail(ctx context.Context, email string) (*model.UserEntity, error)
}

type lookup struct {
	userRepo userrepo.UserRepository
}

func NewUserLookup(userRepo userrepo.UserRepository) UserLookup {
	return &lookup{userRepo: userRepo}
}

func (l *lookup) GetByEmail(ctx context.Context, email string) (*model.UserEntity, error) {
	if email == "" {
		return nil, errors.SetCustomError(constant.ErrUserNotFound).WithMessage("user not found with email: ")
	}

	user, err := l.userRepo.Get(ctx, &model.UserFilter{Email: email})
	if err != nil {
		logger.Error("[GetByEmail] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrUserNotFound).WithMessage(fmt.Sprintf("user not found with email: %s", email))
	}
	return user, nil
}
