package ingest

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"staffcrm/internal/parser"
)

const (
	defaultMoveAttempts = 10
	defaultMoveBackoff  = 250 * time.Millisecond
)

// Relocator moves a staged document (and its JSON sidecar) from the
// placeholder owner directory into the durable candidate directory once an
// identity exists. Moves are renames, never copy+delete, so a file is
// either fully at its old path or fully at its new one.
type Relocator struct {
	root     string
	attempts int
	backoff  time.Duration
}

func NewRelocator(root string) *Relocator {
	return &Relocator{root: root, attempts: defaultMoveAttempts, backoff: defaultMoveBackoff}
}

// NewRelocatorWithRetry allows tests and ops tooling to tighten the retry loop.
func NewRelocatorWithRetry(root string, attempts int, backoff time.Duration) *Relocator {
	if attempts < 1 {
		attempts = 1
	}
	return &Relocator{root: root, attempts: attempts, backoff: backoff}
}

// Relocate moves internalFileName from the ownerOld directory to the
// ownerNew directory, then moves the sidecar the same way. The sidecar move
// is independent: its failure is logged and never escalated, because the
// candidate row and primary document are already durably correct. A primary
// move failure after all retries is returned to the caller, who treats it
// as a reported, non-fatal condition.
func (r *Relocator) Relocate(ownerOld, ownerNew, internalFileName, originalFileName string) error {
	destDir := filepath.Join(r.root, candidateDirName, ownerNew)
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return fmt.Errorf("create destination directory: %w", err)
	}

	src := filepath.Join(r.root, candidateDirName, ownerOld, internalFileName)
	dst := filepath.Join(destDir, internalFileName)

	docErr := r.moveWithRetry(src, dst)

	// The sidecar is attempted regardless of the document outcome.
	if err := r.moveWithRetry(parser.SidecarPath(src), parser.SidecarPath(dst)); err != nil {
		log.Printf("relocate sidecar_move_failed file=%q owner_new=%s error=%v", originalFileName, ownerNew, err)
	}

	if docErr != nil {
		return fmt.Errorf("move document %q: %w", originalFileName, docErr)
	}
	return nil
}

// moveWithRetry renames src to dst, retrying on transient contention
// (antivirus scans and concurrent readers hold files open briefly).
func (r *Relocator) moveWithRetry(src, dst string) error {
	var err error
	for attempt := 0; attempt < r.attempts; attempt++ {
		if attempt > 0 {
			time.Sleep(r.backoff)
		}
		if err = os.Rename(src, dst); err == nil {
			return nil
		}
	}
	return err
}
