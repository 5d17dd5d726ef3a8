package utils

import "errors"

var (
	ErrMissingArchive  = errors.New("multipart field 'archive' is required")
	ErrArchiveTooLarge = errors.New("archive exceeds the configured size limit")
	ErrCorruptArchive  = errors.New("archive container cannot be read")
)
