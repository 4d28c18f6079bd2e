package transport

import (
	"net/http"

	"github.com/muhammadheryan/ads-board/model"
)

// ListComments handler
// @Summary Comments of an ad, newest first
// @Tags Comments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ad ID"
// @Success 200 {object} model.CommentsResponse
// @Failure 404 {object} ErrorResponse
// @Router /ads/{id}/comments [get]
func (s *RestHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	adID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CommentApp.ListComments(r.Context(), adID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// AddComment handler
// @Summary Comment on an ad
// @Tags Comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ad ID"
// @Param request body model.CreateOrUpdateCommentRequest true "Comment"
// @Success 200 {object} model.CommentResponse
// @Failure 404 {object} ErrorResponse
// @Router /ads/{id}/comments [post]
func (s *RestHandler) AddComment(w http.ResponseWriter, r *http.Request) {
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

	var req model.CreateOrUpdateCommentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CommentApp.AddComment(r.Context(), adID, email, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateComment handler
// @Summary Edit a comment
// @Tags Comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ad ID"
// @Param commentId path int true "Comment ID"
// @Param request body model.CreateOrUpdateCommentRequest true "Comment"
// @Success 200 {object} model.CommentResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /ads/{id}/comments/{commentId} [patch]
func (s *RestHandler) UpdateComment(w http.ResponseWriter, r *http.Request) {
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
	commentID, err := pathID(r, "commentId")
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.CreateOrUpdateCommentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CommentApp.UpdateComment(r.Context(), adID, commentID, email, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// DeleteComment handler
// @Summary Delete a comment
// @Tags Comments
// @Security BearerAuth
// @Param id path int true "Ad ID"
// @Param commentId path int true "Comment ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /ads/{id}/comments/{commentId} [delete]
func (s *RestHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
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
	commentID, err := pathID(r, "commentId")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.CommentApp.DeleteComment(r.Context(), adID, commentID, email); err != nil {
		writeError(w, err)
		return
	}
	writeNoContent(w)
}
