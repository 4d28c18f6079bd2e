package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/ads-board/model"
)

// ListAds handler
// @Summary All ads
// @Tags Ads
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.AdsResponse
// @Router /ads [get]
func (s *RestHandler) ListAds(w http.ResponseWriter, r *http.Request) {
	res, err := s.AdApp.ListAds(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListMyAds handler
// @Summary Ads of the current user
// @Tags Ads
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.AdsResponse
// @Router /ads/me [get]
func (s *RestHandler) ListMyAds(w http.ResponseWriter, r *http.Request) {
	email, err := callerEmail(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AdApp.ListMyAds(r.Context(), email)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetAd handler
// @Summary Ad with author contacts
// @Tags Ads
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ad ID"
// @Success 200 {object} model.ExtendedAdResponse
// @Failure 404 {object} ErrorResponse
// @Router /ads/{id} [get]
func (s *RestHandler) GetAd(w http.ResponseWriter, r *http.Request) {
	adID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AdApp.GetAd(r.Context(), adID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CreateAd handler
// @Summary Create ad
// @Tags Ads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param properties formData string true "model.CreateOrUpdateAdRequest as JSON"
// @Param image formData file false "Ad image"
// @Success 201 {object} model.AdResponse
// @Failure 400 {object} ErrorResponse
// @Router /ads [post]
func (s *RestHandler) CreateAd(w http.ResponseWriter, r *http.Request) {
	email, err := callerEmail(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.parseMultipart(w, r); err != nil {
		writeError(w, err)
		return
	}
	var req model.CreateOrUpdateAdRequest
	if err := formJSON(r, "properties", &req); err != nil {
		writeError(w, err)
		return
	}
	image, err := formImage(r, false)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AdApp.CreateAd(r.Context(), email, &req, image)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, res)
}

// UpdateAd handler
// @Summary Update ad fields
// @Tags Ads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ad ID"
// @Param request body model.CreateOrUpdateAdRequest true "Ad fields"
// @Success 200 {object} model.AdResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /ads/{id} [patch]
func (s *RestHandler) UpdateAd(w http.ResponseWriter, r *http.Request) {
	email, err := callerEmail(r)
	if err != nil {
		writeError(w, err)
		return
	}
	adID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.CreateOrUpdateAdRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AdApp.UpdateAd(r.Context(), adID, email, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// DeleteAd handler
// @Summary Delete ad and its comments
// @Tags Ads
// @Security BearerAuth
// @Param id path int true "Ad ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /ads/{id} [delete]
func (s *RestHandler) DeleteAd(w http.ResponseWriter, r *http.Request) {
	email, err := callerEmail(r)
	if err != nil {
		writeError(w, err)
		return
	}
	adID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.AdApp.DeleteAd(r.Context(), adID, email); err != nil {
		writeError(w, err)
		return
	}
	writeNoContent(w)
}

// UpdateAdImage handler
// @Summary Replace ad image
// @Tags Ads
// @Accept multipart/form-data
// @Produce octet-stream
// @Security BearerAuth
// @Param id path int true "Ad ID"
// @Param image formData file true "Ad image"
// @Success 200 {file} binary
// @Failure 403 {object} ErrorResponse
// @Router /ads/{id}/image [patch]
func (s *RestHandler) UpdateAdImage(w http.ResponseWriter, r *http.Request) {
	email, err := callerEmail(r)
	if err != nil {
		writeError(w, err)
		return
	}
	adID, err := pathID(r, "id")
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

	data, err := s.AdApp.UpdateAdImage(r.Context(), adID, email, image)
	if err != nil {
		writeError(w, err)
		return
	}
	writeBytes(w, "application/octet-stream", data)
}

// GetAdImage handler
// @Summary Ad image bytes
// @Tags Images
// @Produce octet-stream
// @Param file path string true "File name"
// @Success 200 {file} binary
// @Router /ads-images/{file} [get]
func (s *RestHandler) GetAdImage(w http.ResponseWriter, r *http.Request) {
	data, err := s.AdApp.GetImage(r.Context(), mux.Vars(r)["file"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeBytes(w, http.DetectContentType(data), data)
}
