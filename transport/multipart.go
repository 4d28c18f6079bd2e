package transport

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/muhammadheryan/ads-board/constant"
	"github.com/muhammadheryan/ads-board/model"
	"github.com/muhammadheryan/ads-board/utils/errors"
)

func (s *RestHandler) parseMultipart(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		return errors.SetCustomError(constant.ErrInvalidRequest).WithMessage("invalid multipart body")
	}
	return nil
}

// formImage reads the "image" part. A missing part is an error only when required.
func formImage(r *http.Request, required bool) (*model.ImageFile, error) {
	file, header, err := r.FormFile("image")
	if err == http.ErrMissingFile && !required {
		return nil, nil
	}
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest).WithMessage("image part is required")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest).WithMessage("unreadable image part")
	}
	return &model.ImageFile{Filename: header.Filename, Data: data}, nil
}

// formJSON decodes the named part into dst. Clients send it either as a file part
// with its own content type or as a plain form value.
func formJSON(r *http.Request, name string, dst interface{}) error {
	var raw []byte
	if files := r.MultipartForm.File[name]; len(files) > 0 {
		f, err := files[0].Open()
		if err != nil {
			return errors.SetCustomError(constant.ErrInvalidRequest).WithMessage("unreadable " + name + " part")
		}
		defer f.Close()
		if raw, err = io.ReadAll(f); err != nil {
			return errors.SetCustomError(constant.ErrInvalidRequest).WithMessage("unreadable " + name + " part")
		}
	} else if values := r.MultipartForm.Value[name]; len(values) > 0 {
		raw = []byte(values[0])
	} else {
		return errors.SetCustomError(constant.ErrInvalidRequest).WithMessage(name + " part is required")
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return errors.SetCustomError(constant.ErrInvalidRequest).WithMessage("malformed " + name + " part")
	}
	return validate(dst)
}
