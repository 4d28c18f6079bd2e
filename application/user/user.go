package user

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/ads-board/application/cleanup"
	"github.com/muhammadheryan/ads-board/application/permission"
	"github.com/muhammadheryan/ads-board/cmd/config"
	"github.com/muhammadheryan/ads-board/constant"
	"github.com/muhammadheryan/ads-board/model"
	adrepo "github.com/muhammadheryan/ads-board/repository/ad"
	commentrepo "github.com/muhammadheryan/ads-board/repository/comment"
	imagerepo "github.com/muhammadheryan/ads-board/repository/image"
	redisrepo "github.com/muhammadheryan/ads-board/repository/redis"
	txrepo "github.com/muhammadheryan/ads-board/repository/tx"
	userrepo "github.com/muhammadheryan/ads-board/repository/user"
	"github.com/muhammadheryan/ads-board/utils/errors"
	"github.com/muhammadheryan/ads-board/utils/logger"
	"github.com/muhammadheryan/ads-board/utils/metrics"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserApp interface {
	UserLookup
	Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	Logout(ctx context.Context, tokenString string) error
	ValidateToken(ctx context.Context, tokenString string) (*model.Principal, error)
	Authenticate(ctx context.Context, identifier, password string) (*model.Principal, error)
	GetMe(ctx context.Context, email string) (*model.UserResponse, error)
	UpdateMe(ctx context.Context, email string, req *model.UpdateUserRequest) (*model.UserResponse, error)
	SetPassword(ctx context.Context, email string, req *model.NewPasswordRequest) error
	UpdateAvatar(ctx context.Context, email string, image *model.ImageFile) (*model.UserResponse, error)
	GetAvatar(ctx context.Context, filename string) ([]byte, error)
	DeleteUser(ctx context.Context, userID uint64, email string) error
	RemoveUser(ctx context.Context, userID uint64) error
}

// Deps groups the collaborators of UserAppImpl.
type Deps struct {
	TxRepo      txrepo.TxRepository
	UserRepo    userrepo.UserRepository
	AdRepo      adrepo.AdRepository
	CommentRepo commentrepo.CommentRepository
	RedisRepo   redisrepo.Repository
	ImageRepo   imagerepo.ImageRepository
	Cleaner     *cleanup.Cleaner
}

type UserAppImpl struct {
	UserLookup
	config      *config.Config
	txRepo      txrepo.TxRepository
	userRepo    userrepo.UserRepository
	adRepo      adrepo.AdRepository
	commentRepo commentrepo.CommentRepository
	redisRepo   redisrepo.Repository
	imageRepo   imagerepo.ImageRepository
	cleaner     *cleanup.Cleaner
}

type sessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func NewUserApp(config *config.Config, deps Deps) UserApp {
	return &UserAppImpl{
		UserLookup:  NewUserLookup(deps.UserRepo),
		config:      config,
		txRepo:      deps.TxRepo,
		userRepo:    deps.UserRepo,
		adRepo:      deps.AdRepo,
		commentRepo: deps.CommentRepo,
		redisRepo:   deps.RedisRepo,
		imageRepo:   deps.ImageRepo,
		cleaner:     deps.Cleaner,
	}
}

func (s *UserAppImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error) {
	// Check if user exists by email or username
	existingUser, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[Register] err userRepo.Get email", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existingUser != nil {
		return nil, errors.SetCustomError(constant.ErrCredentialExists)
	}

	existingUser, err = s.userRepo.Get(ctx, &model.UserFilter{Username: req.Username})
	if err != nil {
		logger.Error("[Register] err userRepo.Get username", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existingUser != nil {
		return nil, errors.SetCustomError(constant.ErrCredentialExists)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[Register] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	role := req.Role
	if role == "" {
		role = constant.RoleUser
	}

	userEntity, err := s.userRepo.Create(ctx, &model.UserEntity{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		Role:         role,
	})
	if err != nil {
		logger.Error("[Register] err userRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.RegisterResponse{
		ID:       userEntity.ID,
		Username: userEntity.Username,
		Email:    userEntity.Email,
	}, nil
}

func (s *UserAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	user, err := s.verifyCredentials(ctx, "[Login]", req.Identifier, req.Password)
	if err != nil {
		return nil, err
	}

	token, jti, err := s.generateJWT(user)
	if err != nil {
		logger.Error("[Login] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// Store session in Redis
	err = s.redisRepo.SetSession(ctx, jti, user.ID, s.config.Auth.SessionExpTime)
	if err != nil {
		logger.Error("[Login] err SetSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.LoginResponse{
		Username: user.Username,
		Email:    user.Email,
		Token:    token,
	}, nil
}

func (s *UserAppImpl) Logout(ctx context.Context, tokenString string) error {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return errors.SetCustomError(constant.ErrUnauthorize)
	}
	if err := s.redisRepo.DeleteSession(ctx, claims.ID); err != nil {
		logger.Error("[Logout] err DeleteSession", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

// Authenticate checks basic-auth style credentials.
func (s *UserAppImpl) Authenticate(ctx context.Context, identifier, password string) (*model.Principal, error) {
	user, err := s.verifyCredentials(ctx, "[Authenticate]", identifier, password)
	if err != nil {
		metrics.Inc(metrics.AuthAttemptsCounter, "basic", "failure")
		return nil, err
	}
	metrics.Inc(metrics.AuthAttemptsCounter, "basic", "success")
	return &model.Principal{ID: user.ID, Email: user.Email}, nil
}

func (s *UserAppImpl) verifyCredentials(ctx context.Context, method, identifier, password string) (*model.UserEntity, error) {
	if identifier == "" {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	filter := &model.UserFilter{}
	if isEmail(identifier) {
		filter.Email = identifier
	} else {
		filter.Username = identifier
	}

	user, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		logger.Error(method+" err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}
	return user, nil
}

func (s *UserAppImpl) ValidateToken(ctx context.Context, tokenString string) (*model.Principal, error) {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		metrics.Inc(metrics.AuthAttemptsCounter, "bearer", "failure")
		return nil, err
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid user id in token")
	}

	if claims.ID == "" {
		return nil, fmt.Errorf("token missing jti")
	}

	// Check Redis session key
	redisUserID, err := s.redisRepo.GetSession(ctx, claims.ID)
	if err != nil {
		metrics.Inc(metrics.AuthAttemptsCounter, "bearer", "failure")
		return nil, fmt.Errorf("invalid or expired session")
	}
	if redisUserID != userID {
		return nil, fmt.Errorf("token does not match user session")
	}

	metrics.Inc(metrics.AuthAttemptsCounter, "bearer", "success")
	return &model.Principal{ID: userID, Email: claims.Email}, nil
}

func (s *UserAppImpl) parseToken(tokenString string) (*sessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid claims")
	}
	return claims, nil
}

// generateJWT creates a JWT token for the user
func (s *UserAppImpl) generateJWT(user *model.UserEntity) (string, string, error) {
	newUUID, _ := uuid.NewRandom()
	now := time.Now()
	claims := sessionClaims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(user.ID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.Auth.JWTExpiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        newUUID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims.ID, nil
}

func (s *UserAppImpl) GetMe(ctx context.Context, email string) (*model.UserResponse, error) {
	user, err := s.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return user.ToResponse(), nil
}

func (s *UserAppImpl) UpdateMe(ctx context.Context, email string, req *model.UpdateUserRequest) (*model.UserResponse, error) {
	user, err := s.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	err = s.inTx(ctx, "[UpdateMe]", func(tx *sqlx.Tx) error {
		return s.userRepo.UpdateProfileTx(ctx, tx, user.ID, req)
	})
	if err != nil {
		return nil, err
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Phone = req.Phone
	return user.ToResponse(), nil
}

func (s *UserAppImpl) SetPassword(ctx context.Context, email string, req *model.NewPasswordRequest) error {
	user, err := s.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return errors.SetCustomError(constant.ErrInvalidCurrentPassword)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[SetPassword] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	return s.inTx(ctx, "[SetPassword]", func(tx *sqlx.Tx) error {
		return s.userRepo.UpdatePasswordTx(ctx, tx, user.ID, string(hashedPassword))
	})
}

func (s *UserAppImpl) UpdateAvatar(ctx context.Context, email string, image *model.ImageFile) (*model.UserResponse, error) {
	user, err := s.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	storage := s.config.Storage
	newPath, err := s.imageRepo.Save(ctx, image.Data, image.Filename, storage.AvatarsDir, storage.AvatarsPrefix)
	if err != nil {
		return nil, err
	}

	err = s.inTx(ctx, "[UpdateAvatar]", func(tx *sqlx.Tx) error {
		return s.userRepo.UpdateImageTx(ctx, tx, user.ID, newPath)
	})
	if err != nil {
		s.imageRepo.Delete(ctx, newPath, storage.AvatarsDir)
		return nil, err
	}

	if user.Image != nil {
		s.imageRepo.Delete(ctx, *user.Image, storage.AvatarsDir)
	}
	user.Image = &newPath
	return user.ToResponse(), nil
}

func (s *UserAppImpl) GetAvatar(ctx context.Context, filename string) ([]byte, error) {
	return s.imageRepo.Read(ctx, s.config.Storage.AvatarsPrefix+filename, s.config.Storage.AvatarsDir)
}

// DeleteUser removes userID on behalf of the caller: the user themself or an admin.
func (s *UserAppImpl) DeleteUser(ctx context.Context, userID uint64, email string) error {
	caller, err := s.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	target, err := s.getByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := permission.Check(caller, target.ID, "user"); err != nil {
		return err
	}
	return s.removeUser(ctx, target)
}

// RemoveUser deletes userID without an ownership check, for internal callers.
func (s *UserAppImpl) RemoveUser(ctx context.Context, userID uint64) error {
	target, err := s.getByID(ctx, userID)
	if err != nil {
		return err
	}
	return s.removeUser(ctx, target)
}

func (s *UserAppImpl) getByID(ctx context.Context, userID uint64) (*model.UserEntity, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[DeleteUser] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrUserNotFound).WithMessage(fmt.Sprintf("user not found with id: %d", userID))
	}
	return user, nil
}

// removeUser deletes the user with its ads, the comments on those ads and its own
// comments in one transaction, then drops the image files.
func (s *UserAppImpl) removeUser(ctx context.Context, user *model.UserEntity) error {
	ads, err := s.adRepo.ListByAuthor(ctx, user.ID)
	if err != nil {
		logger.Error("[DeleteUser] err adRepo.ListByAuthor", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	err = s.inTx(ctx, "[DeleteUser]", func(tx *sqlx.Tx) error {
		if err := s.commentRepo.DeleteOnAdsOfAuthorTx(ctx, tx, user.ID); err != nil {
			return err
		}
		if err := s.commentRepo.DeleteByAuthorTx(ctx, tx, user.ID); err != nil {
			return err
		}
		if err := s.adRepo.DeleteByAuthorTx(ctx, tx, user.ID); err != nil {
			return err
		}
		return s.userRepo.DeleteTx(ctx, tx, user.ID)
	})
	if err != nil {
		return err
	}

	adImages := make([]string, 0, len(ads))
	for i := range ads {
		adImages = append(adImages, model.StringValue(ads[i].Image))
	}
	storage := s.config.Storage
	s.cleaner.Cleanup(ctx, storage.AdImagesDir, fmt.Sprintf("user %d deleted", user.ID), adImages...)
	s.cleaner.Cleanup(ctx, storage.AvatarsDir, fmt.Sprintf("user %d deleted", user.ID), model.StringValue(user.Image))

	logger.Info("[DeleteUser] user deleted", zap.Uint64("user_id", user.ID), zap.Int("ads", len(ads)))
	return nil
}

func (s *UserAppImpl) inTx(ctx context.Context, method string, fn func(tx *sqlx.Tx) error) error {
	if err := txrepo.WithinTx(ctx, s.txRepo, fn); err != nil {
		logger.Error(method+" err tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

// isEmail checks if identifier looks like an email
func isEmail(identifier string) bool {
	return strings.ContainsRune(identifier, '@')
}
