package ingest

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	// StagingOwner is the placeholder directory for uploads that do not yet
	// have a durable candidate identity.
	StagingOwner = "0"

	// MaxFileSize caps uploads before staging.
	MaxFileSize = 25 * 1024 * 1024 // 25 MB

	candidateDirName = "Candidate"
)

// allowedExtensions lists the document types the parsing service accepts.
var allowedExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".rtf":  true,
	".odt":  true,
	".txt":  true,
}

// StagedUpload describes an in-flight file before a durable identity exists.
// It lives only until relocation succeeds or the pipeline aborts; it is
// never persisted.
type StagedUpload struct {
	OwnerID          string // always StagingOwner
	OriginalFileName string
	InternalFileName string // uuid hex + original extension
	StorageRoot      string
}

// Path is the absolute location of the staged document.
func (s *StagedUpload) Path() string {
	return filepath.Join(s.StorageRoot, candidateDirName, s.OwnerID, s.InternalFileName)
}

// Stager writes incoming files into the shared staging directory. Concurrent
// uploads never collide because the internal name carries 128 bits of
// entropy; no directory lock is taken.
type Stager struct {
	root string
}

func NewStager(root string) *Stager {
	return &Stager{root: root}
}

// Stage validates and writes an uploaded file under the staging owner.
func (s *Stager) Stage(fileHeader *multipart.FileHeader) (*StagedUpload, error) {
	if fileHeader.Size == 0 {
		return nil, ErrEmptyFile
	}
	if fileHeader.Size > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedExtensions[ext] {
		return nil, ErrInvalidFileType
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	staged := &StagedUpload{
		OwnerID:          StagingOwner,
		OriginalFileName: fileHeader.Filename,
		InternalFileName: newInternalName() + ext,
		StorageRoot:      s.root,
	}

	dir := filepath.Join(s.root, candidateDirName, StagingOwner)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create staging directory: %w", err)
	}

	dst, err := os.Create(staged.Path())
	if err != nil {
		return nil, fmt.Errorf("failed to create staged file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(staged.Path())
		return nil, fmt.Errorf("failed to write staged file: %w", err)
	}

	return staged, nil
}

// Lookup rebuilds the staged-upload handle for a file already sitting in
// the staging directory (the reprocess flow).
func (s *Stager) Lookup(internalFileName, originalFileName string) (*StagedUpload, error) {
	// The internal name is generated server-side; reject anything that
	// could escape the staging directory.
	if internalFileName == "" || internalFileName != filepath.Base(internalFileName) {
		return nil, ErrStagedFileMissing
	}
	staged := &StagedUpload{
		OwnerID:          StagingOwner,
		OriginalFileName: originalFileName,
		InternalFileName: internalFileName,
		StorageRoot:      s.root,
	}
	if _, err := os.Stat(staged.Path()); err != nil {
		return nil, ErrStagedFileMissing
	}
	return staged, nil
}

// newInternalName returns a 128-bit random hex token.
func newInternalName() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}
