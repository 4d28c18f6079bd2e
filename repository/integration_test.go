//go:build integration
// +build integration

package repository_test

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/ads-board/constant"
	"github.com/muhammadheryan/ads-board/model"
	adrepo "github.com/muhammadheryan/ads-board/repository/ad"
	commentrepo "github.com/muhammadheryan/ads-board/repository/comment"
	txrepo "github.com/muhammadheryan/ads-board/repository/tx"
	userrepo "github.com/muhammadheryan/ads-board/repository/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mysql"
)

type repos struct {
	db       *sqlx.DB
	tx       txrepo.TxRepository
	users    userrepo.UserRepository
	ads      adrepo.AdRepository
	comments commentrepo.CommentRepository
}

// setupTestDB starts MySQL, applies the schema and returns the repositories over it.
func setupTestDB(t *testing.T) repos {
	ctx := context.Background()

	ctr, err := mysql.Run(ctx, "mysql:8.0.36",
		mysql.WithDatabase("ads_board"),
		mysql.WithUsername("board"),
		mysql.WithPassword("board"),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(ctr); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	})

	dsn, err := ctr.ConnectionString(ctx, "parseTime=true", "loc=UTC")
	require.NoError(t, err)
	db, err := sqlx.Connect("mysql", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	schema, err := os.ReadFile("../migrations/001_init.sql")
	require.NoError(t, err)
	for _, stmt := range strings.Split(string(schema), ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		_, err := db.ExecContext(ctx, stmt)
		require.NoError(t, err)
	}

	return repos{
		db:       db,
		tx:       txrepo.NewTxRepository(db),
		users:    userrepo.NewUserRepository(db),
		ads:      adrepo.NewAdRepository(db),
		comments: commentrepo.NewCommentRepository(db),
	}
}

func createUser(t *testing.T, r repos, username, email string, role constant.Role) *model.UserEntity {
	u, err := r.users.Create(context.Background(), &model.UserEntity{
		Username:     username,
		Email:        email,
		PasswordHash: "hash",
		FirstName:    "First",
		LastName:     "Last",
		Phone:        "+7 (900) 123-45-67",
		Role:         role,
	})
	require.NoError(t, err)
	return u
}

func createAd(t *testing.T, r repos, authorID uint64, title string, at time.Time) *model.AdEntity {
	var ad *model.AdEntity
	err := txrepo.WithinTx(context.Background(), r.tx, func(tx *sqlx.Tx) error {
		var err error
		ad, err = r.ads.CreateTx(context.Background(), tx, &model.AdEntity{
			Title: title, Price: 100, Description: "desc", AuthorID: authorID, IsActive: true,
			CreatedAt: at, UpdatedAt: at,
		})
		return err
	})
	require.NoError(t, err)
	return ad
}

func createComment(t *testing.T, r repos, authorID, adID uint64, text string, at time.Time) *model.CommentEntity {
	var c *model.CommentEntity
	err := txrepo.WithinTx(context.Background(), r.tx, func(tx *sqlx.Tx) error {
		var err error
		c, err = r.comments.CreateTx(context.Background(), tx, &model.CommentEntity{
			Text: text, AuthorID: authorID, AdID: adID, CreatedAt: at, CreatedAtMillis: at.UnixMilli(), IsActive: true,
		})
		return err
	})
	require.NoError(t, err)
	return c
}

func TestRepositories(t *testing.T) {
	r := setupTestDB(t)
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	owner := createUser(t, r, "owner", "owner@example.com", constant.RoleUser)
	other := createUser(t, r, "other", "other@example.com", constant.RoleUser)

	t.Run("user lookup by email and username", func(t *testing.T) {
		got, err := r.users.Get(ctx, &model.UserFilter{Email: "owner@example.com"})
		require.NoError(t, err)
		require.Equal(t, owner.ID, got.ID)

		got, err = r.users.Get(ctx, &model.UserFilter{Username: "other"})
		require.NoError(t, err)
		require.Equal(t, other.ID, got.ID)

		got, err = r.users.Get(ctx, &model.UserFilter{Email: "nobody@example.com"})
		require.NoError(t, err)
		require.Nil(t, got)
	})

	t.Run("duplicate username is rejected", func(t *testing.T) {
		_, err := r.users.Create(ctx, &model.UserEntity{Username: "owner", Email: "x@example.com", PasswordHash: "h", Role: constant.RoleUser})
		require.Error(t, err)
	})

	ad := createAd(t, r, owner.ID, "Bike", base)
	otherAd := createAd(t, r, other.ID, "Lamp", base.Add(time.Minute))

	t.Run("ad detail carries author contacts", func(t *testing.T) {
		got, err := r.ads.GetDetail(ctx, ad.ID)
		require.NoError(t, err)
		assert.Equal(t, "owner@example.com", got.AuthorEmail)
		assert.Equal(t, "+7 (900) 123-45-67", got.AuthorPhone)

		missing, err := r.ads.GetDetail(ctx, 999999)
		require.NoError(t, err)
		require.Nil(t, missing)
	})

	first := createComment(t, r, other.ID, ad.ID, "first", base.Add(time.Second))
	second := createComment(t, r, owner.ID, ad.ID, "second", base.Add(2*time.Second))
	createComment(t, r, owner.ID, otherAd.ID, "on the lamp", base.Add(3*time.Second))

	t.Run("comments are newest first", func(t *testing.T) {
		got, err := r.comments.ListByAd(ctx, ad.ID)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, second.ID, got[0].ID)
		assert.Equal(t, first.ID, got[1].ID)
		assert.Equal(t, "First", got[0].AuthorFirstName)
	})

	t.Run("comment lookup is scoped to the ad", func(t *testing.T) {
		got, err := r.comments.GetByIDAndAd(ctx, first.ID, otherAd.ID)
		require.NoError(t, err)
		require.Nil(t, got)

		got, err = r.comments.GetByIDAndAd(ctx, first.ID, ad.ID)
		require.NoError(t, err)
		require.Equal(t, "first", got.Text)
	})

	t.Run("removing a user cascades to ads and comments", func(t *testing.T) {
		err := txrepo.WithinTx(ctx, r.tx, func(tx *sqlx.Tx) error {
			if err := r.comments.DeleteOnAdsOfAuthorTx(ctx, tx, owner.ID); err != nil {
				return err
			}
			if err := r.comments.DeleteByAuthorTx(ctx, tx, owner.ID); err != nil {
				return err
			}
			if err := r.ads.DeleteByAuthorTx(ctx, tx, owner.ID); err != nil {
				return err
			}
			return r.users.DeleteTx(ctx, tx, owner.ID)
		})
		require.NoError(t, err)

		ads, err := r.ads.ListByAuthor(ctx, owner.ID)
		require.NoError(t, err)
		assert.Empty(t, ads)

		lampComments, err := r.comments.ListByAd(ctx, otherAd.ID)
		require.NoError(t, err)
		assert.Empty(t, lampComments)

		remaining, err := r.ads.List(ctx)
		require.NoError(t, err)
		require.Len(t, remaining, 1)
		assert.Equal(t, otherAd.ID, remaining[0].ID)
	})
}
