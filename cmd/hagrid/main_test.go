package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaxonomyDocument(t *testing.T) {
	lines, err := taxonomyDocument("")
	require.NoError(t, err)
	assert.Equal(t, "Reductive Operations:", lines[0])

	_, err = taxonomyDocument(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

// fakeModel answers like the chat completions API, keyed on the prompt.
type fakeModel struct {
	mu      sync.Mutex
	prompts []string
}

func (f *fakeModel) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Messages []struct {
			Content string `json:"content"`
		} `json:"messages"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)
	prompt := req.Messages[0].Content

	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	f.mu.Unlock()

	answer := "Once upon a duck..."
	switch {
	case strings.Contains(prompt, "please reply with 'understood'"):
		answer = "understood"
	case strings.HasPrefix(prompt, "Topic: ducks, category:"):
		answer = "Write a whimsical story about ducks"
	}
	_ = json.NewEncoder(w).Encode(map[string]any{
		"choices": []map[string]any{{"message": map[string]any{"role": "assistant", "content": answer}}},
	})
}

func TestRootCommand_OneShotSessionAndHistory(t *testing.T) {
	model := &fakeModel{}
	srv := httptest.NewServer(model)
	defer srv.Close()

	chdir(t, t.TempDir())
	dir := t.TempDir()
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_API_ORG", "org-test")
	t.Setenv("OPENAI_BASE_URL", srv.URL)
	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", filepath.Join(dir, "hagrid.db"))
	t.Setenv("LOG_DIR", dir)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	// Generative Operations is the 3rd category, Creative Writing its 7th entry.
	rootCmd.SetIn(strings.NewReader("ducks\n3\n7\n"))
	rootCmd.SetArgs([]string{"--one-shot"})
	require.NoError(t, rootCmd.Execute(), out.String())

	require.Len(t, model.prompts, 3)
	loaded := strings.Index(out.String(), "Prompt taxonomy system loaded")
	asked := strings.Index(out.String(), "Please enter the initial topic:")
	require.NotEqual(t, -1, loaded)
	assert.Less(t, loaded, asked, "load is announced before the topic prompt")
	assert.Nil(t, closeLog, "log files are closed after the run")

	out.Reset()
	rootCmd.SetArgs([]string{"history"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "#1 ducks")
	assert.Contains(t, out.String(), "Generative Operations / Creative Writing")
}

func TestRootCommand_MissingCredentials(t *testing.T) {
	chdir(t, t.TempDir())
	dir := t.TempDir()
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("OPENAI_API_ORG", "")
	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", filepath.Join(dir, "hagrid.db"))
	t.Setenv("LOG_DIR", dir)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs([]string{"--one-shot"})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Equal(t, 1, strings.Count(out.String(), "OPENAI_API_KEY"))
	assert.Nil(t, closeLog, "log files are closed on the failure path too")

	var stderr bytes.Buffer
	reportError(&stderr, err)
	assert.Empty(t, stderr.String(), "the console already showed the error")
}

func TestReportError(t *testing.T) {
	var w bytes.Buffer
	reportError(&w, errors.New("unknown STORE_DRIVER \"mongo\""))
	assert.Equal(t, "unknown STORE_DRIVER \"mongo\"\n", w.String())

	w.Reset()
	reportError(&w, shownError{errors.New("bootstrap: boom")})
	assert.Empty(t, w.String())
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
