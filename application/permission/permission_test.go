package permission_test

import (
	"testing"

	"github.com/muhammadheryan/ads-board/application/permission"
	"github.com/muhammadheryan/ads-board/constant"
	"github.com/muhammadheryan/ads-board/model"
	"github.com/muhammadheryan/ads-board/utils/errors"
	"github.com/stretchr/testify/assert"
)

func TestCanModify(t *testing.T) {
	tests := []struct {
		name     string
		actor    *model.UserEntity
		authorID uint64
		want     bool
	}{
		{
			name:     "success: author",
			actor:    &model.UserEntity{ID: 1, Role: constant.RoleUser},
			authorID: 1,
			want:     true,
		},
		{
			name:     "success: admin on someone else's resource",
			actor:    &model.UserEntity{ID: 2, Role: constant.RoleAdmin},
			authorID: 1,
			want:     true,
		},
		{
			name:     "error: other regular user",
			actor:    &model.UserEntity{ID: 3, Role: constant.RoleUser},
			authorID: 1,
			want:     false,
		},
		{
			name:     "error: no actor",
			actor:    nil,
			authorID: 1,
			want:     false,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, permission.CanModify(tt.actor, tt.authorID))

			err := permission.Check(tt.actor, tt.authorID, "ad")
			if tt.want {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, constant.ErrForbidden))
		})
	}
}
