package permission

import (
	"github.com/muhammadheryan/ads-board/constant"
	"github.com/muhammadheryan/ads-board/model"
	"github.com/muhammadheryan/ads-board/utils/errors"
	"github.com/muhammadheryan/ads-board/utils/metrics"
)

// CanModify reports whether actor may change or remove a resource written by authorID.
func CanModify(actor *model.UserEntity, authorID uint64) bool {
	if actor == nil {
		return false
	}
	return actor.ID == authorID || actor.IsAdmin()
}

// Check is CanModify returning ErrForbidden; resource only labels the error and metric.
func Check(actor *model.UserEntity, authorID uint64, resource string) error {
	if CanModify(actor, authorID) {
		return nil
	}
	metrics.Inc(metrics.PermissionDeniedCounter, resource)
	return errors.SetCustomError(constant.ErrForbidden).
		WithMessage("user does not have permission to modify this " + resource)
}
