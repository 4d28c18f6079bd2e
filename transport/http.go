package transport

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	adapp "github.com/muhammadheryan/ads-board/application/ad"
	commentapp "github.com/muhammadheryan/ads-board/application/comment"
	userapp "github.com/muhammadheryan/ads-board/application/user"
	"github.com/muhammadheryan/ads-board/cmd/config"
	"github.com/muhammadheryan/ads-board/constant"
	"github.com/muhammadheryan/ads-board/model"
	utilsContext "github.com/muhammadheryan/ads-board/utils/context"
	"github.com/muhammadheryan/ads-board/utils/errors"
	validatorx "github.com/muhammadheryan/ads-board/utils/validator"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

const defaultMaxUploadBytes = 10 << 20

type RestHandler struct {
	UserApp        userapp.UserApp
	AdApp          adapp.AdApp
	CommentApp     commentapp.CommentApp
	maxUploadBytes int64
}

func NewTransport(cfg *config.Config, UserApp userapp.UserApp, AdApp adapp.AdApp, CommentApp commentapp.CommentApp) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		UserApp:        UserApp,
		AdApp:          AdApp,
		CommentApp:     CommentApp,
		maxUploadBytes: cfg.Server.MaxUploadBytes,
	}
	if rh.maxUploadBytes <= 0 {
		rh.maxUploadBytes = defaultMaxUploadBytes
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	mux.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	// Public routes
	mux.HandleFunc("/register", rh.Register).Methods(http.MethodPost)
	mux.HandleFunc("/login", rh.Login).Methods(http.MethodPost)
	mux.HandleFunc("/ads-images/{file}", rh.GetAdImage).Methods(http.MethodGet)
	mux.HandleFunc("/avatars/{file}", rh.GetAvatar).Methods(http.MethodGet)

	// protected routes
	mux.HandleFunc("/logout", rh.Logout).Methods(http.MethodPost)

	mux.HandleFunc("/users/me", rh.GetMe).Methods(http.MethodGet)
	mux.HandleFunc("/users/me", rh.UpdateMe).Methods(http.MethodPatch)
	mux.HandleFunc("/users/me/image", rh.UpdateAvatar).Methods(http.MethodPatch)
	mux.HandleFunc("/users/set_password", rh.SetPassword).Methods(http.MethodPost)
	mux.HandleFunc("/users/{id:[0-9]+}", rh.DeleteUser).Methods(http.MethodDelete)

	mux.HandleFunc("/ads", rh.ListAds).Methods(http.MethodGet)
	mux.HandleFunc("/ads", rh.CreateAd).Methods(http.MethodPost)
	mux.HandleFunc("/ads/me", rh.ListMyAds).Methods(http.MethodGet)
	mux.HandleFunc("/ads/{id:[0-9]+}", rh.GetAd).Methods(http.MethodGet)
	mux.HandleFunc("/ads/{id:[0-9]+}", rh.UpdateAd).Methods(http.MethodPatch)
	mux.HandleFunc("/ads/{id:[0-9]+}", rh.DeleteAd).Methods(http.MethodDelete)
	mux.HandleFunc("/ads/{id:[0-9]+}/image", rh.UpdateAdImage).Methods(http.MethodPatch)

	mux.HandleFunc("/ads/{id:[0-9]+}/comments", rh.ListComments).Methods(http.MethodGet)
	mux.HandleFunc("/ads/{id:[0-9]+}/comments", rh.AddComment).Methods(http.MethodPost)
	mux.HandleFunc("/ads/{id:[0-9]+}/comments/{commentId:[0-9]+}", rh.UpdateComment).Methods(http.MethodPatch)
	mux.HandleFunc("/ads/{id:[0-9]+}/comments/{commentId:[0-9]+}", rh.DeleteComment).Methods(http.MethodDelete)

	// internal routes
	internal := mux.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(cfg.InternalAPIKey))
	internal.HandleFunc("/users/{id:[0-9]+}", rh.RemoveUser).Methods(http.MethodDelete)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(MetricsMiddleware())
	mux.Use(AuthMiddleware(UserApp))

	return mux
}

// Register handler
// @Summary Register user
// @Description Register a new user
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 201 {object} model.RegisterResponse
// @Failure 400 {object} ErrorResponse
// @Router /register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.Register(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// Login handler
// @Summary Login user
// @Description Login with email or username and receive JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 401 {object} ErrorResponse
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.Login(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Logout handler
// @Summary Logout user
// @Description Revoke the session behind the bearer token
// @Tags Auth
// @Security BearerAuth
// @Success 204
// @Router /logout [post]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		if err := s.UserApp.Logout(r.Context(), strings.TrimPrefix(auth, "Bearer ")); err != nil {
			writeError(w, err)
			return
		}
	}
	writeNoContent(w)
}

// GetMe handler
// @Summary Current user
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.UserResponse
// @Failure 401 {object} ErrorResponse
// @Router /users/me [get]
func (s *RestHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	email, err := callerEmail(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.GetMe(r.Context(), email)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateMe handler
// @Summary Update current user profile
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.UpdateUserRequest true "Profile"
// @Success 200 {object} model.UserResponse
// @Failure 400 {object} ErrorResponse
// @Router /users/me [patch]
func (s *RestHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	email, err := callerEmail(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.UpdateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.UpdateMe(r.Context(), email, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// SetPassword handler
// @Summary Change password
// @Tags Users
// @Accept json
// @Security BearerAuth
// @Param request body model.NewPasswordRequest true "Passwords"
// @Success 200
// @Failure 403 {object} ErrorResponse
// @Router /users/set_password [post]
func (s *RestHandler) SetPassword(w http.ResponseWriter, r *http.Request) {
	email, err := callerEmail(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.NewPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := s.UserApp.SetPassword(r.Context(), email, &req); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// UpdateAvatar handler
// @Summary Replace current user avatar
// @Tags Users
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Avatar"
// @Success 200 {object} model.UserResponse
// @Router /users/me/image [patch]
func (s *RestHandler) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	email, err := callerEmail(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.parseMultipart(w, r); err != nil {
		writeError(w, err)
		return
	}
	image, err := formImage(r, true)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.UpdateAvatar(r.Context(), email, image)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DeleteUser handler
// @Summary Delete a user with everything they own
// @Description Allowed for the user themself and for admins
// @Tags Users
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{id} [delete]
func (s *RestHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	email, err := callerEmail(r)
	if err != nil {
		writeError(w, err)
		return
	}
	userID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.UserApp.DeleteUser(r.Context(), userID, email); err != nil {
		writeError(w, err)
		return
	}

	writeNoContent(w)
}

// RemoveUser is the internal counterpart of DeleteUser, guarded by the API key.
func (s *RestHandler) RemoveUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.UserApp.RemoveUser(r.Context(), userID); err != nil {
		writeError(w, err)
		return
	}

	writeNoContent(w)
}

// GetAvatar handler
// @Summary Avatar bytes
// @Tags Images
// @Produce octet-stream
// @Param file path string true "File name"
// @Success 200 {file} binary
// @Router /avatars/{file} [get]
func (s *RestHandler) GetAvatar(w http.ResponseWriter, r *http.Request) {
	data, err := s.UserApp.GetAvatar(r.Context(), mux.Vars(r)["file"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeBytes(w, http.DetectContentType(data), data)
}

func callerEmail(r *http.Request) (string, error) {
	email, ok := utilsContext.GetUserEmail(r.Context())
	if !ok {
		return "", errors.SetCustomError(constant.ErrUnauthorize)
	}
	return email, nil
}

func pathID(r *http.Request, key string) (uint64, error) {
	id, err := strconv.ParseUint(mux.Vars(r)[key], 10, 64)
	if err != nil {
		return 0, errors.SetCustomError(constant.ErrInvalidRequest).WithMessage("invalid " + key)
	}
	return id, nil
}

func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return validate(dst)
}

func validate(v interface{}) error {
	if err := validatorx.ValidateStruct(v); err != nil {
		return errors.SetCustomError(constant.ErrInvalidRequest).WithMessage(err.Error())
	}
	return nil
}
