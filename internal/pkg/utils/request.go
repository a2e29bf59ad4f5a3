package utils

import (
	"io"
	"net/http"
	"psychology-assessment-client/internal/pkg/constvars"
	"psychology-assessment-client/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

// DecodeJSONBody decodes the request body into dst, rejecting unknown
// trailing data.
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(dst); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	if decoder.More() {
		return exceptions.ErrCannotParseJSON(io.ErrUnexpectedEOF)
	}
	return nil
}

// ReadMultipartImage reads the image part of a multipart request.
func ReadMultipartImage(r *http.Request, maxSizeInMegabytes int) (fileName string, data []byte, err error) {
	err = r.ParseMultipartForm(int64(maxSizeInMegabytes) << 20)
	if err != nil {
		return "", nil, exceptions.ErrCannotParseMultipartForm(err)
	}

	file, header, err := r.FormFile(constvars.FormFieldImage)
	if err != nil {
		return "", nil, exceptions.ErrCannotParseMultipartForm(err)
	}
	defer file.Close()

	data, err = io.ReadAll(file)
	if err != nil {
		return "", nil, exceptions.ErrCannotParseMultipartForm(err)
	}
	return header.Filename, data, nil
}
