package user_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/ads-board/application/cleanup"
	appuser "github.com/muhammadheryan/ads-board/application/user"
	"github.com/muhammadheryan/ads-board/cmd/config"
	"github.com/muhammadheryan/ads-board/constant"
	admocks "github.com/muhammadheryan/ads-board/mocks/repository/ad"
	commentmocks "github.com/muhammadheryan/ads-board/mocks/repository/comment"
	imagemocks "github.com/muhammadheryan/ads-board/mocks/repository/image"
	redismocks "github.com/muhammadheryan/ads-board/mocks/repository/redis"
	txmocks "github.com/muhammadheryan/ads-board/mocks/repository/tx"
	usermocks "github.com/muhammadheryan/ads-board/mocks/repository/user"
	"github.com/muhammadheryan/ads-board/model"
	cerr "github.com/muhammadheryan/ads-board/utils/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fields struct {
	config      *config.Config
	txRepo      *txmocks.TxRepository
	userRepo    *usermocks.UserRepository
	adRepo      *admocks.AdRepository
	commentRepo *commentmocks.CommentRepository
	redisRepo   *redismocks.RedisRepository
	imageRepo   *imagemocks.ImageRepository
}

func newFields(t *testing.T) fields {
	return fields{
		config: &config.Config{
			Auth: config.AuthConfig{
				JWTSecret:      "test-secret-key-for-jwt-signing",
				JWTExpiration:  time.Hour,
				SessionExpTime: time.Hour,
			},
			Storage: config.StorageConfig{
				AdImagesDir:    "/data/ads",
				AdImagesPrefix: "/ads-images/",
				AvatarsDir:     "/data/avatars",
				AvatarsPrefix:  "/avatars/",
			},
		},
		txRepo:      txmocks.NewTxRepository(t),
		userRepo:    usermocks.NewUserRepository(t),
		adRepo:      admocks.NewAdRepository(t),
		commentRepo: commentmocks.NewCommentRepository(t),
		redisRepo:   redismocks.NewRedisRepository(t),
		imageRepo:   imagemocks.NewImageRepository(t),
	}
}

func (f fields) app() appuser.UserApp {
	return appuser.NewUserApp(f.config, appuser.Deps{
		TxRepo:      f.txRepo,
		UserRepo:    f.userRepo,
		AdRepo:      f.adRepo,
		CommentRepo: f.commentRepo,
		RedisRepo:   f.redisRepo,
		ImageRepo:   f.imageRepo,
		Cleaner:     cleanup.NewCleaner(f.imageRepo, nil),
	})
}

func hash(t *testing.T, password string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func assertErrType(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[want] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[want])
	}
}

func expectTx(f fields, tx *sqlx.Tx, commit bool) {
	f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
	if commit {
		f.txRepo.On("CommitTx", tx).Return(nil).Once()
		return
	}
	f.txRepo.On("RollbackTx", tx).Return(nil).Once()
}

func TestUserApp_Register(t *testing.T) {
	type args struct {
		ctx context.Context
		req *model.RegisterRequest
	}
	req := &model.RegisterRequest{
		Username:  "johnny",
		Email:     "john@example.com",
		Password:  "password123",
		FirstName: "John",
		LastName:  "Smith",
		Phone:     "+7 (900) 123-45-67",
	}
	tests := []struct {
		name     string
		args     args
		mockCall func(f fields)
		want     *model.RegisterResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: register new user with default role",
			args: args{ctx: context.Background(), req: req},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "john@example.com"}).
					Return(nil, nil).
					Once()
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Username: "johnny"}).
					Return(nil, nil).
					Once()
				f.userRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(ent *model.UserEntity) bool {
						return ent.Username == "johnny" &&
							ent.Email == "john@example.com" &&
							ent.Role == constant.RoleUser &&
							ent.PasswordHash != "" && ent.PasswordHash != "password123"
					})).
					Return(&model.UserEntity{ID: 1, Username: "johnny", Email: "john@example.com"}, nil).
					Once()
			},
			want: &model.RegisterResponse{ID: 1, Username: "johnny", Email: "john@example.com"},
		},
		{
			name: "error: email already exists",
			args: args{ctx: context.Background(), req: req},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "john@example.com"}).
					Return(&model.UserEntity{ID: 3}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrCredentialExists,
		},
		{
			name: "error: username already exists",
			args: args{ctx: context.Background(), req: req},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "john@example.com"}).
					Return(nil, nil).
					Once()
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Username: "johnny"}).
					Return(&model.UserEntity{ID: 3}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrCredentialExists,
		},
		{
			name: "error: repository Get returns error",
			args: args{ctx: context.Background(), req: req},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "john@example.com"}).
					Return(nil, errors.New("db error")).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name: "error: repository Create returns error",
			args: args{ctx: context.Background(), req: req},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, mock.Anything).Return(nil, nil).Twice()
				f.userRepo.
					On("Create", mock.Anything, mock.AnythingOfType("*model.UserEntity")).
					Return(nil, errors.New("create failed")).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			got, err := f.app().Register(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Register() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrType(t, err, tt.errCode)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Register() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUserApp_Login(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		password   string
		mockCall   func(t *testing.T, f fields)
		wantErr    bool
		errCode    constant.ErrorType
	}{
		{
			name:       "success: login with email",
			identifier: "john@example.com",
			password:   "password123",
			mockCall: func(t *testing.T, f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "john@example.com"}).
					Return(&model.UserEntity{ID: 1, Username: "johnny", Email: "john@example.com", PasswordHash: hash(t, "password123")}, nil).
					Once()
				f.redisRepo.
					On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(1), time.Hour).
					Return(nil).
					Once()
			},
		},
		{
			name:       "success: login with username",
			identifier: "johnny",
			password:   "password123",
			mockCall: func(t *testing.T, f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Username: "johnny"}).
					Return(&model.UserEntity{ID: 1, Username: "johnny", Email: "john@example.com", PasswordHash: hash(t, "password123")}, nil).
					Once()
				f.redisRepo.
					On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(1), time.Hour).
					Return(nil).
					Once()
			},
		},
		{
			name:       "error: unknown user",
			identifier: "nobody@example.com",
			password:   "password123",
			mockCall: func(t *testing.T, f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "nobody@example.com"}).
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrUnauthorize,
		},
		{
			name:       "error: wrong password",
			identifier: "john@example.com",
			password:   "wrong-password",
			mockCall: func(t *testing.T, f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "john@example.com"}).
					Return(&model.UserEntity{ID: 1, PasswordHash: hash(t, "password123")}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidPassword,
		},
		{
			name:       "error: session store fails",
			identifier: "john@example.com",
			password:   "password123",
			mockCall: func(t *testing.T, f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "john@example.com"}).
					Return(&model.UserEntity{ID: 1, PasswordHash: hash(t, "password123")}, nil).
					Once()
				f.redisRepo.
					On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(1), time.Hour).
					Return(errors.New("redis down")).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(t, f)

			got, err := f.app().Login(context.Background(), &model.LoginRequest{Identifier: tt.identifier, Password: tt.password})
			if (err != nil) != tt.wantErr {
				t.Fatalf("Login() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrType(t, err, tt.errCode)
				return
			}
			require.NotEmpty(t, got.Token)
			require.Equal(t, "john@example.com", got.Email)
		})
	}
}

func TestUserApp_ValidateToken(t *testing.T) {
	f := newFields(t)
	app := f.app()

	var jti string
	f.userRepo.
		On("Get", mock.Anything, &model.UserFilter{Email: "john@example.com"}).
		Return(&model.UserEntity{ID: 7, Email: "john@example.com", PasswordHash: hash(t, "password123")}, nil).
		Once()
	f.redisRepo.
		On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(7), time.Hour).
		Run(func(args mock.Arguments) { jti = args.String(1) }).
		Return(nil).
		Once()

	res, err := app.Login(context.Background(), &model.LoginRequest{Identifier: "john@example.com", Password: "password123"})
	require.NoError(t, err)

	t.Run("success: live session", func(t *testing.T) {
		f.redisRepo.On("GetSession", mock.Anything, jti).Return(uint64(7), nil).Once()

		got, err := app.ValidateToken(context.Background(), res.Token)
		require.NoError(t, err)
		require.Equal(t, &model.Principal{ID: 7, Email: "john@example.com"}, got)
	})

	t.Run("error: session revoked", func(t *testing.T) {
		f.redisRepo.On("GetSession", mock.Anything, jti).Return(uint64(0), errors.New("redis: nil")).Once()

		_, err := app.ValidateToken(context.Background(), res.Token)
		require.Error(t, err)
	})

	t.Run("error: session of another user", func(t *testing.T) {
		f.redisRepo.On("GetSession", mock.Anything, jti).Return(uint64(8), nil).Once()

		_, err := app.ValidateToken(context.Background(), res.Token)
		require.Error(t, err)
	})

	t.Run("error: garbage token", func(t *testing.T) {
		_, err := app.ValidateToken(context.Background(), "not-a-jwt")
		require.Error(t, err)
	})

	t.Run("success: logout drops the session", func(t *testing.T) {
		f.redisRepo.On("DeleteSession", mock.Anything, jti).Return(nil).Once()

		require.NoError(t, app.Logout(context.Background(), res.Token))
	})
}

func TestUserApp_Authenticate(t *testing.T) {
	f := newFields(t)
	f.userRepo.
		On("Get", mock.Anything, &model.UserFilter{Email: "john@example.com"}).
		Return(&model.UserEntity{ID: 4, Email: "john@example.com", PasswordHash: hash(t, "password123")}, nil).
		Twice()

	got, err := f.app().Authenticate(context.Background(), "john@example.com", "password123")
	require.NoError(t, err)
	require.Equal(t, &model.Principal{ID: 4, Email: "john@example.com"}, got)

	_, err = f.app().Authenticate(context.Background(), "john@example.com", "bad")
	assertErrType(t, err, constant.ErrInvalidPassword)
}

func TestUserApp_GetByEmail(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		mockCall func(f fields)
		wantID   uint64
		errCode  constant.ErrorType
	}{
		{
			name:  "success",
			email: "john@example.com",
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "john@example.com"}).
					Return(&model.UserEntity{ID: 2}, nil).Once()
			},
			wantID: 2,
		},
		{
			name:  "error: not found",
			email: "ghost@example.com",
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "ghost@example.com"}).
					Return(nil, nil).Once()
			},
			errCode: constant.ErrUserNotFound,
		},
		{
			name:    "error: empty email",
			email:   "",
			errCode: constant.ErrUserNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			got, err := f.app().GetByEmail(context.Background(), tt.email)
			if tt.wantID == 0 {
				assertErrType(t, err, tt.errCode)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, got.ID)
		})
	}
}

func TestUserApp_SetPassword(t *testing.T) {
	tx := &sqlx.Tx{}
	tests := []struct {
		name     string
		req      *model.NewPasswordRequest
		mockCall func(t *testing.T, f fields)
		errCode  constant.ErrorType
		wantErr  bool
	}{
		{
			name: "success",
			req:  &model.NewPasswordRequest{CurrentPassword: "password123", NewPassword: "password456"},
			mockCall: func(t *testing.T, f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "john@example.com"}).
					Return(&model.UserEntity{ID: 1, PasswordHash: hash(t, "password123")}, nil).Once()
				expectTx(f, tx, true)
				f.userRepo.
					On("UpdatePasswordTx", mock.Anything, tx, uint64(1), mock.MatchedBy(func(h string) bool {
						return bcrypt.CompareHashAndPassword([]byte(h), []byte("password456")) == nil
					})).
					Return(nil).
					Once()
			},
		},
		{
			name: "error: current password mismatch",
			req:  &model.NewPasswordRequest{CurrentPassword: "not-it-at-all", NewPassword: "password456"},
			mockCall: func(t *testing.T, f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "john@example.com"}).
					Return(&model.UserEntity{ID: 1, PasswordHash: hash(t, "password123")}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidCurrentPassword,
		},
		{
			name: "error: update fails and rolls back",
			req:  &model.NewPasswordRequest{CurrentPassword: "password123", NewPassword: "password456"},
			mockCall: func(t *testing.T, f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "john@example.com"}).
					Return(&model.UserEntity{ID: 1, PasswordHash: hash(t, "password123")}, nil).Once()
				expectTx(f, tx, false)
				f.userRepo.On("UpdatePasswordTx", mock.Anything, tx, uint64(1), mock.Anything).
					Return(errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(t, f)

			err := f.app().SetPassword(context.Background(), "john@example.com", tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SetPassword() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrType(t, err, tt.errCode)
			}
		})
	}
}

func TestUserApp_UpdateAvatar(t *testing.T) {
	tx := &sqlx.Tx{}
	old := "/avatars/old.png"
	image := &model.ImageFile{Filename: "me.PNG", Data: []byte{1, 2, 3}}

	t.Run("success: replaces the previous file", func(t *testing.T) {
		f := newFields(t)
		f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "john@example.com"}).
			Return(&model.UserEntity{ID: 1, Image: &old}, nil).Once()
		f.imageRepo.On("Save", mock.Anything, image.Data, "me.PNG", "/data/avatars", "/avatars/").
			Return("/avatars/new.png", nil).Once()
		expectTx(f, tx, true)
		f.userRepo.On("UpdateImageTx", mock.Anything, tx, uint64(1), "/avatars/new.png").Return(nil).Once()
		f.imageRepo.On("Delete", mock.Anything, old, "/data/avatars").Return().Once()

		got, err := f.app().UpdateAvatar(context.Background(), "john@example.com", image)
		require.NoError(t, err)
		require.Equal(t, "/avatars/new.png", got.Image)
	})

	t.Run("error: persisting fails removes the new file", func(t *testing.T) {
		f := newFields(t)
		f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "john@example.com"}).
			Return(&model.UserEntity{ID: 1, Image: &old}, nil).Once()
		f.imageRepo.On("Save", mock.Anything, image.Data, "me.PNG", "/data/avatars", "/avatars/").
			Return("/avatars/new.png", nil).Once()
		expectTx(f, tx, false)
		f.userRepo.On("UpdateImageTx", mock.Anything, tx, uint64(1), "/avatars/new.png").Return(errors.New("db error")).Once()
		f.imageRepo.On("Delete", mock.Anything, "/avatars/new.png", "/data/avatars").Return().Once()

		_, err := f.app().UpdateAvatar(context.Background(), "john@example.com", image)
		assertErrType(t, err, constant.ErrInternal)
	})
}

func TestUserApp_DeleteUser(t *testing.T) {
	tx := &sqlx.Tx{}
	adImage := "/ads-images/a.jpg"
	avatar := "/avatars/u.jpg"
	target := &model.UserEntity{ID: 5, Email: "target@example.com", Role: constant.RoleUser, Image: &avatar}

	expectCascade := func(f fields) {
		f.adRepo.On("ListByAuthor", mock.Anything, uint64(5)).
			Return([]model.AdEntity{{ID: 10, AuthorID: 5, Image: &adImage}, {ID: 11, AuthorID: 5}}, nil).Once()
		expectTx(f, tx, true)
		f.commentRepo.On("DeleteOnAdsOfAuthorTx", mock.Anything, tx, uint64(5)).Return(nil).Once()
		f.commentRepo.On("DeleteByAuthorTx", mock.Anything, tx, uint64(5)).Return(nil).Once()
		f.adRepo.On("DeleteByAuthorTx", mock.Anything, tx, uint64(5)).Return(nil).Once()
		f.userRepo.On("DeleteTx", mock.Anything, tx, uint64(5)).Return(nil).Once()
		f.imageRepo.On("Delete", mock.Anything, adImage, "/data/ads").Return().Once()
		f.imageRepo.On("Delete", mock.Anything, avatar, "/data/avatars").Return().Once()
	}

	tests := []struct {
		name     string
		caller   *model.UserEntity
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:     "success: admin removes another user with cascade",
			caller:   &model.UserEntity{ID: 1, Email: "admin@example.com", Role: constant.RoleAdmin},
			mockCall: expectCascade,
		},
		{
			name:     "success: user removes themself",
			caller:   target,
			mockCall: expectCascade,
		},
		{
			name:    "error: regular user cannot remove someone else",
			caller:  &model.UserEntity{ID: 2, Email: "other@example.com", Role: constant.RoleUser},
			wantErr: true,
			errCode: constant.ErrForbidden,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: tt.caller.Email}).Return(tt.caller, nil).Once()
			f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 5}).Return(target, nil).Once()
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			err := f.app().DeleteUser(context.Background(), 5, tt.caller.Email)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DeleteUser() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrType(t, err, tt.errCode)
			}
		})
	}

	t.Run("error: unknown target", func(t *testing.T) {
		f := newFields(t)
		f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 99}).Return(nil, nil).Once()

		err := f.app().RemoveUser(context.Background(), 99)
		assertErrType(t, err, constant.ErrUserNotFound)
	})

	t.Run("error: cascade failure rolls back and keeps files", func(t *testing.T) {
		f := newFields(t)
		f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 5}).Return(target, nil).Once()
		f.adRepo.On("ListByAuthor", mock.Anything, uint64(5)).Return([]model.AdEntity{}, nil).Once()
		expectTx(f, tx, false)
		f.commentRepo.On("DeleteOnAdsOfAuthorTx", mock.Anything, tx, uint64(5)).Return(errors.New("db error")).Once()

		err := f.app().RemoveUser(context.Background(), 5)
		assertErrType(t, err, constant.ErrInternal)
	})
}
