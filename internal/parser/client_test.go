package parser

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stageDoc(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParse_SuccessWritesSidecar(t *testing.T) {
	var gotKey, gotVersion string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-Api-Key")
		gotVersion = r.Header.Get("X-Service-Version")

		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, header, err := r.FormFile("file")
		require.NoError(t, err)
		assert.Equal(t, "jane.txt", header.Filename)

		w.Write([]byte(`{"first_name":"Jane","last_name":"Doe","emails":["jane@x.com"]}`))
	}))
	defer srv.Close()

	path := stageDoc(t, "jane.txt", "Jane Doe\nGo engineer")
	c := NewClient(srv.URL, "secret-key", "v10")

	parsed, err := c.Parse(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "secret-key", gotKey)
	assert.Equal(t, "v10", gotVersion)
	assert.Equal(t, "Jane", parsed.FirstName)
	assert.Equal(t, "jane@x.com", parsed.PrimaryEmail())

	// The response body omitted resume_text; it is filled from the file.
	assert.Equal(t, "Jane Doe\nGo engineer", parsed.ResumeText)

	raw, err := os.ReadFile(SidecarPath(path))
	require.NoError(t, err)
	assert.JSONEq(t, `{"first_name":"Jane","last_name":"Doe","emails":["jane@x.com"]}`, string(raw))
}

func TestParse_ServiceErrorLeavesFileAndNoSidecar(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer srv.Close()

	path := stageDoc(t, "jane.pdf", "%PDF-1.4 fake")
	c := NewClient(srv.URL, "k", "v10")

	_, err := c.Parse(context.Background(), path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParse)

	_, statErr := os.Stat(path)
	assert.NoError(t, statErr)
	_, statErr = os.Stat(SidecarPath(path))
	assert.True(t, os.IsNotExist(statErr))
}

func TestParse_MalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	path := stageDoc(t, "jane.txt", "text")
	c := NewClient(srv.URL, "k", "v10")

	_, err := c.Parse(context.Background(), path)
	assert.ErrorIs(t, err, ErrParse)
}

func TestParse_MissingFile(t *testing.T) {
	c := NewClient("http://127.0.0.1:0", "k", "v10")
	_, err := c.Parse(context.Background(), filepath.Join(t.TempDir(), "gone.pdf"))
	assert.ErrorIs(t, err, ErrParse)
}

func TestReadSidecar_RoundTrip(t *testing.T) {
	path := stageDoc(t, "jane.txt", "resume body text")
	raw := `{"first_name":"Jane","phones":["5551234567"],"resume_text":"already here"}`
	require.NoError(t, os.WriteFile(SidecarPath(path), []byte(raw), 0644))

	c := NewClient("http://unused", "k", "v10")
	parsed, err := c.ReadSidecar(path)
	require.NoError(t, err)

	assert.Equal(t, "Jane", parsed.FirstName)
	assert.Equal(t, "5551234567", parsed.PrimaryPhone())
	assert.Equal(t, "already here", parsed.ResumeText)
}

func TestReadSidecar_FillsTextWhenSidecarOmitsIt(t *testing.T) {
	path := stageDoc(t, "jane.txt", "text pulled from file")
	require.NoError(t, os.WriteFile(SidecarPath(path), []byte(`{"first_name":"Jane"}`), 0644))

	c := NewClient("http://unused", "k", "v10")
	parsed, err := c.ReadSidecar(path)
	require.NoError(t, err)
	assert.Equal(t, "text pulled from file", parsed.ResumeText)
}

func TestReadSidecar_MissingSidecar(t *testing.T) {
	path := stageDoc(t, "jane.txt", "text")

	c := NewClient("http://unused", "k", "v10")
	_, err := c.ReadSidecar(path)
	assert.True(t, os.IsNotExist(err))
}
