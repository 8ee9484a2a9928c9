package content

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestDefaultIsValid(t *testing.T) {
	p := Default()
	require.NoError(t, p.Validate())
	assert.Len(t, p.Experience, 3)
	assert.Len(t, p.Projects, 3)
	assert.Len(t, p.Skills, 6)
	assert.True(t, p.Projects[2].Private)
}

func TestValidateReportsEveryField(t *testing.T) {
	p := Default()
	p.Skills[0].Level = 120
	p.Skills[1].Color = "blue"
	p.Projects[0].Title = ""
	p.Profile.Contact.Email = "nope"

	err := p.Validate()
	require.ErrorIs(t, err, ErrInvalid)
	msg := err.Error()
	assert.Contains(t, msg, "Skills[0].Level")
	assert.Contains(t, msg, "Skills[1].Color")
	assert.Contains(t, msg, "Projects[0].Title")
	assert.Contains(t, msg, "Contact.Email")
}

func TestEncodeDecodePreservesOrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, Default()))

	p, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	_, err := Decode(strings.NewReader("profile:\n  name: A\n  nickname: B\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nickname")
}

func TestDecodeEmpty(t *testing.T) {
	_, err := Decode(strings.NewReader(""))
	require.ErrorIs(t, err, ErrInvalid)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func writeContent(t *testing.T, path string, p *Portfolio) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, p))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func TestWatcherReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	writeContent(t, path, Default())

	store := NewStore(Default())
	w, err := NewWatcher(path, store, zaptest.NewLogger(t))
	require.NoError(t, err)
	w.debounce = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		require.NoError(t, <-done)
	})

	updated := Default()
	updated.Profile.Name = "C. Xu"
	require.Eventually(t, func() bool {
		// Rewrite until the watcher has registered and seen a change.
		writeContent(t, path, updated)
		return store.Get().Profile.Name == "C. Xu"
	}, 5*time.Second, 50*time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("skills:\n  - name: X\n    level: 900\n"), 0o644))
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, "C. Xu", store.Get().Profile.Name)
}
