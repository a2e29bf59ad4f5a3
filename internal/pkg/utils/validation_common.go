package utils

import (
	"errors"
	"net/http"
	"psychology-assessment-client/internal/pkg/constvars"
	"slices"
	"strconv"
)

var allowedImageTypes = []string{
	constvars.MIMEImagePNG,
	constvars.MIMEImageJPEG,
	constvars.MIMEImageGIF,
	constvars.MIMEImageWEBP,
}

// DetectImageType sniffs data and returns its content type when it is one
// of the image formats the analysis backend accepts.
func DetectImageType(data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("image is empty")
	}
	contentType := http.DetectContentType(data)
	if !slices.Contains(allowedImageTypes, contentType) {
		return "", errors.New("unsupported image type " + contentType)
	}
	return contentType, nil
}

func ValidateImageSize(data []byte, maxSizeInMegabytes int) error {
	if len(data) > maxSizeInMegabytes<<20 {
		return errors.New("image exceeds " + strconv.Itoa(maxSizeInMegabytes) + "MB")
	}
	return nil
}

// ParseOrdinal parses a question ordinal from a url param.
func ParseOrdinal(param string) (int, error) {
	if param == "" {
		return 0, errors.New("parameter is missing from url path")
	}
	ordinal, err := strconv.Atoi(param)
	if err != nil {
		return 0, err
	}
	if ordinal <= 0 {
		return 0, errors.New("ordinal must be positive")
	}
	return ordinal, nil
}
