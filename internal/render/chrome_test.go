package render

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChrome_Available(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		bins    map[string]bool
		wantErr bool
	}{
		{name: "chromium on PATH", bins: map[string]bool{"chromium": true}},
		{name: "headless shell only", bins: map[string]bool{"headless-shell": true}},
		{name: "nothing installed", bins: map[string]bool{}, wantErr: true},
		{name: "explicit path present", path: "my-chrome", bins: map[string]bool{"my-chrome": true}},
		{name: "explicit path missing ignores PATH", path: "my-chrome", bins: map[string]bool{"chromium": true}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newChrome(tt.path, &mockExecutor{availableBins: tt.bins})
			err := c.Available()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrToolUnavailable)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestChrome_ResolvePrefersCandidateOrder(t *testing.T) {
	c := newChrome("", &mockExecutor{availableBins: map[string]bool{"chromium": true, "google-chrome": true}})

	p, err := c.resolve()

	require.NoError(t, err)
	assert.Equal(t, "/usr/bin/google-chrome", p)
}

func TestChrome_RenderWithoutBrowser(t *testing.T) {
	c := newChrome("", &mockExecutor{})
	out := filepath.Join(t.TempDir(), "page.pdf")

	err := c.Render(context.Background(), "https://example.com", out)

	assert.ErrorIs(t, err, ErrToolUnavailable)
	assert.NoFileExists(t, out)
}

func TestNew(t *testing.T) {
	r, err := New("", Options{})
	require.NoError(t, err)
	assert.Equal(t, WkhtmltopdfName, r.Name())

	r, err = New("WKHTMLTOPDF", Options{WkhtmltopdfPath: "/opt/wkhtmltopdf"})
	require.NoError(t, err)
	require.IsType(t, &Wkhtmltopdf{}, r)
	assert.Equal(t, "/opt/wkhtmltopdf", r.(*Wkhtmltopdf).Binary())

	r, err = New(" chrome ", Options{ChromePath: "/opt/chrome"})
	require.NoError(t, err)
	assert.Equal(t, ChromeName, r.Name())

	_, err = New("prince", Options{})
	assert.Error(t, err)
}

func TestInstallHint(t *testing.T) {
	assert.Equal(t, "wkhtmltopdf not found or not installed. Please install it.", InstallHint(NewWkhtmltopdf("")))
	assert.Equal(t, "chrome not found or not installed. Please install it.", InstallHint(NewChrome("")))
}
