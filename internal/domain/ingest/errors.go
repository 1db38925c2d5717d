package ingest

import "errors"

var (
	ErrEmptyFile         = errors.New("file is empty")
	ErrFileTooLarge      = errors.New("file exceeds maximum allowed size")
	ErrInvalidFileType   = errors.New("file type is not allowed")
	ErrStagedFileMissing = errors.New("staged file not found")
)
