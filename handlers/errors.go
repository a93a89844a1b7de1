package handlers

import "errors"

var (
	errNoImage       = errors.New("no image provided, expected multipart \"photo\" or JSON \"image_base64\"")
	errBadBase64     = errors.New("image_base64 is not valid base64")
	errImageTooLarge = errors.New("image too large")
)
