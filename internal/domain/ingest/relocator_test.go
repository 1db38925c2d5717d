package ingest

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staffcrm/internal/parser"
)

func stageFile(t *testing.T, root, owner, name string, content []byte) string {
	t.Helper()
	dir := filepath.Join(root, candidateDirName, owner)
	require.NoError(t, os.MkdirAll(dir, 0755))
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, content, 0644))
	return path
}

func TestRelocator_MovesDocumentAndSidecar(t *testing.T) {
	root := t.TempDir()
	content := []byte("%PDF-1.4 fake resume body")
	src := stageFile(t, root, StagingOwner, "abc123.pdf", content)
	stageFile(t, root, StagingOwner, "abc123.pdf.json", []byte(`{"first_name":"Jane"}`))

	r := NewRelocatorWithRetry(root, 3, time.Millisecond)
	require.NoError(t, r.Relocate(StagingOwner, "42", "abc123.pdf", "jane_doe.pdf"))

	// Gone from staging, present under the durable identity, byte-identical.
	_, err := os.Stat(src)
	assert.True(t, os.IsNotExist(err))

	moved, err := os.ReadFile(filepath.Join(root, candidateDirName, "42", "abc123.pdf"))
	require.NoError(t, err)
	assert.Equal(t, content, moved)

	sidecar := filepath.Join(root, candidateDirName, "42", "abc123.pdf.json")
	_, err = os.Stat(sidecar)
	assert.NoError(t, err)
	assert.Equal(t, sidecar, parser.SidecarPath(filepath.Join(root, candidateDirName, "42", "abc123.pdf")))
}

func TestRelocator_DestinationDirAlreadyExists(t *testing.T) {
	root := t.TempDir()
	stageFile(t, root, StagingOwner, "abc.pdf", []byte("doc"))
	require.NoError(t, os.MkdirAll(filepath.Join(root, candidateDirName, "7"), 0755))

	r := NewRelocatorWithRetry(root, 2, time.Millisecond)
	assert.NoError(t, r.Relocate(StagingOwner, "7", "abc.pdf", "abc.pdf"))
}

func TestRelocator_MissingSidecarIsNotFatal(t *testing.T) {
	root := t.TempDir()
	stageFile(t, root, StagingOwner, "nosidecar.pdf", []byte("doc"))

	r := NewRelocatorWithRetry(root, 2, time.Millisecond)
	assert.NoError(t, r.Relocate(StagingOwner, "9", "nosidecar.pdf", "resume.pdf"))

	_, err := os.Stat(filepath.Join(root, candidateDirName, "9", "nosidecar.pdf"))
	assert.NoError(t, err)
}

func TestRelocator_ExhaustedRetriesReturnError(t *testing.T) {
	root := t.TempDir()
	// Nothing staged: every rename attempt fails, the loop must give up.
	r := NewRelocatorWithRetry(root, 3, time.Millisecond)

	start := time.Now()
	err := r.Relocate(StagingOwner, "5", "missing.pdf", "missing.pdf")
	require.Error(t, err)
	// Two backoff sleeps for three attempts.
	assert.GreaterOrEqual(t, time.Since(start), 2*time.Millisecond)
}
