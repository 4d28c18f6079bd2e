package transport_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/muhammadheryan/ads-board/cmd/config"
	"github.com/muhammadheryan/ads-board/constant"
	admocks "github.com/muhammadheryan/ads-board/mocks/application/ad"
	commentmocks "github.com/muhammadheryan/ads-board/mocks/application/comment"
	usermocks "github.com/muhammadheryan/ads-board/mocks/application/user"
	"github.com/muhammadheryan/ads-board/model"
	"github.com/muhammadheryan/ads-board/transport"
	cerr "github.com/muhammadheryan/ads-board/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fields struct {
	userApp    *usermocks.UserApp
	adApp      *admocks.AdApp
	commentApp *commentmocks.CommentApp
}

func newServer(t *testing.T) (fields, http.Handler) {
	f := fields{
		userApp:    usermocks.NewUserApp(t),
		adApp:      admocks.NewAdApp(t),
		commentApp: commentmocks.NewCommentApp(t),
	}
	cfg := &config.Config{InternalAPIKey: "internal-key"}
	return f, transport.NewTransport(cfg, f.userApp, f.adApp, f.commentApp)
}

const (
	ownerEmail = "owner@example.com"
	ownerPass  = "password123"
)

func basicAuth(f fields, email string, id uint64) {
	f.userApp.On("Authenticate", mock.Anything, email, ownerPass).
		Return(&model.Principal{ID: id, Email: email}, nil).Once()
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) transport.ErrorResponse {
	t.Helper()
	var body transport.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestDeleteAd_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		appErr     error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "owner deletes",
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "other user is forbidden",
			appErr:     cerr.SetCustomError(constant.ErrForbidden).WithMessage("user does not have permission to modify this ad"),
			wantStatus: http.StatusForbidden,
			wantCode:   constant.ErrorTypeCode[constant.ErrForbidden],
		},
		{
			name:       "missing ad",
			appErr:     cerr.SetCustomError(constant.ErrAdNotFound).WithMessage("ad not found with id: 7"),
			wantStatus: http.StatusNotFound,
			wantCode:   constant.ErrorTypeCode[constant.ErrAdNotFound],
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f, h := newServer(t)
			basicAuth(f, ownerEmail, 1)
			f.adApp.On("DeleteAd", mock.Anything, uint64(7), ownerEmail).Return(tt.appErr).Once()

			req := httptest.NewRequest(http.MethodDelete, "/ads/7", nil)
			req.SetBasicAuth(ownerEmail, ownerPass)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
			}
		})
	}
}

func TestAuth(t *testing.T) {
	t.Run("no credentials", func(t *testing.T) {
		_, h := newServer(t)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ads", nil))

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("bad basic credentials", func(t *testing.T) {
		f, h := newServer(t)
		f.userApp.On("Authenticate", mock.Anything, ownerEmail, "nope").
			Return(nil, cerr.SetCustomError(constant.ErrInvalidPassword)).Once()

		req := httptest.NewRequest(http.MethodGet, "/ads", nil)
		req.SetBasicAuth(ownerEmail, "nope")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("bearer token", func(t *testing.T) {
		f, h := newServer(t)
		f.userApp.On("ValidateToken", mock.Anything, "jwt-token").
			Return(&model.Principal{ID: 1, Email: ownerEmail}, nil).Once()
		f.adApp.On("ListMyAds", mock.Anything, ownerEmail).
			Return(&model.AdsResponse{Count: 1, Results: []model.AdResponse{{PK: 3, Author: 1}}}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/ads/me", nil)
		req.Header.Set("Authorization", "Bearer jwt-token")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var body model.AdsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, 1, body.Count)
		assert.Equal(t, uint64(3), body.Results[0].PK)
	})

	t.Run("login is public", func(t *testing.T) {
		f, h := newServer(t)
		f.userApp.On("Login", mock.Anything, &model.LoginRequest{Identifier: ownerEmail, Password: ownerPass}).
			Return(&model.LoginResponse{Email: ownerEmail, Token: "t"}, nil).Once()

		body := `{"username":"owner@example.com","password":"password123"}`
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body)))

		require.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestInternalRemoveUser(t *testing.T) {
	t.Run("wrong key", func(t *testing.T) {
		_, h := newServer(t)

		req := httptest.NewRequest(http.MethodDelete, "/internal/v1/users/5", nil)
		req.Header.Set("Authorization", "Bearer wrong")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("valid key", func(t *testing.T) {
		f, h := newServer(t)
		f.userApp.On("RemoveUser", mock.Anything, uint64(5)).Return(nil).Once()

		req := httptest.NewRequest(http.MethodDelete, "/internal/v1/users/5", nil)
		req.Header.Set("Authorization", "Bearer internal-key")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestCreateAd_Multipart(t *testing.T) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	partHeader := textproto.MIMEHeader{}
	partHeader.Set("Content-Disposition", `form-data; name="properties"; filename="properties.json"`)
	partHeader.Set("Content-Type", "application/json")
	part, err := mw.CreatePart(partHeader)
	require.NoError(t, err)
	_, err = part.Write([]byte(`{"title":"New Ad","price":999,"description":"New Description"}`))
	require.NoError(t, err)

	imagePart, err := mw.CreateFormFile("image", "image.jpg")
	require.NoError(t, err)
	_, err = imagePart.Write([]byte("image content"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	f, h := newServer(t)
	basicAuth(f, ownerEmail, 1)
	f.adApp.On("CreateAd", mock.Anything, ownerEmail,
		&model.CreateOrUpdateAdRequest{Title: "New Ad", Price: 999, Description: "New Description"},
		&model.ImageFile{Filename: "image.jpg", Data: []byte("image content")},
	).Return(&model.AdResponse{PK: 2, Author: 1, Title: "New Ad", Price: 999, Image: "/ads-images/x.jpg"}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/ads", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.SetBasicAuth(ownerEmail, ownerPass)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var body model.AdResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "New Ad", body.Title)
	assert.Equal(t, uint64(1), body.Author)
}

func TestCreateAd_InvalidProperties(t *testing.T) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("properties", `{"title":"","price":5,"description":"x"}`))
	require.NoError(t, mw.Close())

	f, h := newServer(t)
	basicAuth(f, ownerEmail, 1)

	req := httptest.NewRequest(http.MethodPost, "/ads", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.SetBasicAuth(ownerEmail, ownerPass)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateAdImage_ReturnsBytes(t *testing.T) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	imagePart, err := mw.CreateFormFile("image", "newimage.jpg")
	require.NoError(t, err)
	_, err = imagePart.Write([]byte("new image content"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	f, h := newServer(t)
	basicAuth(f, ownerEmail, 1)
	f.adApp.On("UpdateAdImage", mock.Anything, uint64(7), ownerEmail, mock.MatchedBy(func(img *model.ImageFile) bool {
		return img.Filename == "newimage.jpg"
	})).Return([]byte("new image content"), nil).Once()

	req := httptest.NewRequest(http.MethodPatch, "/ads/7/image", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.SetBasicAuth(ownerEmail, ownerPass)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "new image content", rec.Body.String())
}

func TestComments(t *testing.T) {
	t.Run("comment under another ad is not found", func(t *testing.T) {
		f, h := newServer(t)
		basicAuth(f, ownerEmail, 1)
		f.commentApp.On("DeleteComment", mock.Anything, uint64(6), uint64(40), ownerEmail).
			Return(cerr.SetCustomError(constant.ErrCommentNotFound).WithMessage("comment with id 40 not found for ad id 6")).Once()

		req := httptest.NewRequest(http.MethodDelete, "/ads/6/comments/40", nil)
		req.SetBasicAuth(ownerEmail, ownerPass)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "comment with id 40 not found for ad id 6", decodeError(t, rec).Message)
	})

	t.Run("add comment", func(t *testing.T) {
		f, h := newServer(t)
		basicAuth(f, ownerEmail, 1)
		f.commentApp.On("AddComment", mock.Anything, uint64(6), ownerEmail, &model.CreateOrUpdateCommentRequest{Text: "hello"}).
			Return(&model.CommentResponse{PK: 41, Author: 1, Text: "hello"}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/ads/6/comments", strings.NewReader(`{"text":"hello"}`))
		req.SetBasicAuth(ownerEmail, ownerPass)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("empty text is rejected", func(t *testing.T) {
		f, h := newServer(t)
		basicAuth(f, ownerEmail, 1)

		req := httptest.NewRequest(http.MethodPatch, "/ads/6/comments/41", strings.NewReader(`{"text":""}`))
		req.SetBasicAuth(ownerEmail, ownerPass)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSetPassword_InvalidCurrent(t *testing.T) {
	f, h := newServer(t)
	basicAuth(f, ownerEmail, 1)
	f.userApp.On("SetPassword", mock.Anything, ownerEmail, mock.AnythingOfType("*model.NewPasswordRequest")).
		Return(cerr.SetCustomError(constant.ErrInvalidCurrentPassword)).Once()

	body := `{"currentPassword":"password000","newPassword":"password456"}`
	req := httptest.NewRequest(http.MethodPost, "/users/set_password", strings.NewReader(body))
	req.SetBasicAuth(ownerEmail, ownerPass)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
}
