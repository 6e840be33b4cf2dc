package session

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/jobpdf/internal/download"
	"github.com/ytget/jobpdf/internal/model"
	"github.com/ytget/jobpdf/internal/organize"
	"github.com/ytget/jobpdf/internal/render"
)

// fakeRenderer writes a small file or reports a missing engine.
type fakeRenderer struct {
	missing bool
}

func (f *fakeRenderer) Name() string { return "wkhtmltopdf" }

func (f *fakeRenderer) Available() error {
	if f.missing {
		return fmt.Errorf("%w: wkhtmltopdf", render.ErrToolUnavailable)
	}
	return nil
}

func (f *fakeRenderer) Render(ctx context.Context, url, outputPath string) error {
	return os.WriteFile(outputPath, []byte(strings.Repeat("x", 2048)), 0644)
}

// fakeOpener records the paths it was asked to open.
type fakeOpener struct {
	opened   []string
	revealed []string
	err      error
}

func (f *fakeOpener) OpenFile(path string) error {
	f.opened = append(f.opened, path)
	return f.err
}

func (f *fakeOpener) RevealFile(path string) error {
	f.revealed = append(f.revealed, path)
	return f.err
}

type fixture struct {
	ctrl    *Controller
	opener  *fakeOpener
	base    string
	updates int
}

func newFixture(t *testing.T, r render.Renderer) *fixture {
	t.Helper()
	f := &fixture{
		opener: &fakeOpener{},
		base:   filepath.Join(t.TempDir(), "output"),
	}
	f.ctrl = NewController(download.NewService(r, f.base), f.opener)
	f.ctrl.SetUpdateCallback(func() { f.updates++ })
	return f
}

func (f *fixture) submit(t *testing.T, url, name string) *model.DownloadRecord {
	t.Helper()
	record, err := f.ctrl.Submit(context.Background(), model.NewConversionRequest(url, name))
	require.NoError(t, err)
	return record
}

func TestSubmit_EmptyURL(t *testing.T) {
	f := newFixture(t, &fakeRenderer{})

	record, err := f.ctrl.Submit(context.Background(), model.NewConversionRequest("  ", "resume"))

	assert.Nil(t, record)
	assert.True(t, model.IsKind(err, model.FailureUserInput))
	assert.ErrorIs(t, err, download.ErrEmptyURL)
	assert.Empty(t, f.ctrl.Records())
	assert.NoDirExists(t, f.base)
	assert.Zero(t, f.updates)
}

func TestSubmit_ToolUnavailable(t *testing.T) {
	f := newFixture(t, &fakeRenderer{missing: true})

	_, err := f.ctrl.Submit(context.Background(), model.NewConversionRequest("https://example.com", "resume"))

	assert.True(t, model.IsKind(err, model.FailureToolUnavailable))
	assert.Empty(t, f.ctrl.Records())
	assert.NoDirExists(t, f.base)
}

func TestSubmit_Success(t *testing.T) {
	f := newFixture(t, &fakeRenderer{})
	before := time.Now()

	record := f.submit(t, "https://example.com/job/1", "resume")

	after := time.Now()
	candidates := []string{
		filepath.Join(f.base, organize.BucketName(before), "resume.pdf"),
		filepath.Join(f.base, organize.BucketName(after), "resume.pdf"),
	}
	assert.Contains(t, candidates, record.Path)
	assert.FileExists(t, record.Path)
	assert.True(t, strings.HasPrefix(record.ID, RecordIDPrefix))
	assert.Equal(t, "https://example.com/job/1", record.URL)
	assert.Equal(t, int64(2048), record.SizeBytes)
	assert.Equal(t, 1, f.updates)

	records := f.ctrl.Records()
	require.Len(t, records, 1)
	assert.Equal(t, record.ID, records[0].ID)
}

func TestSubmit_TrimsLiteralRequest(t *testing.T) {
	f := newFixture(t, &fakeRenderer{})

	record, err := f.ctrl.Submit(context.Background(), model.ConversionRequest{
		URL:             "  https://example.com/job/2 \n",
		DesiredFilename: " offer ",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://example.com/job/2", record.URL)
	assert.Equal(t, "offer.pdf", filepath.Base(record.Path))
}

func TestSubmit_SamePathTwiceKeepsTwoRecords(t *testing.T) {
	f := newFixture(t, &fakeRenderer{})

	a := f.submit(t, "https://example.com/a", "")
	b := f.submit(t, "https://example.com/b", "")

	assert.Equal(t, a.Path, b.Path)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Len(t, f.ctrl.Records(), 2)
}

func TestOpenAndReveal(t *testing.T) {
	f := newFixture(t, &fakeRenderer{})
	record := f.submit(t, "https://example.com", "resume")

	require.NoError(t, f.ctrl.Open(record.ID))
	require.NoError(t, f.ctrl.Reveal(record.ID))

	assert.Equal(t, []string{record.Path}, f.opener.opened)
	assert.Equal(t, []string{record.Path}, f.opener.revealed)
}

func TestOpen_MissingFileKeepsRecord(t *testing.T) {
	f := newFixture(t, &fakeRenderer{})
	record := f.submit(t, "https://example.com", "resume")
	require.NoError(t, os.Remove(record.Path))

	err := f.ctrl.Open(record.ID)

	assert.True(t, IsMissingFile(err))
	assert.Empty(t, f.opener.opened)
	assert.Len(t, f.ctrl.Records(), 1)
}

func TestOpen_OpenerError(t *testing.T) {
	f := newFixture(t, &fakeRenderer{})
	record := f.submit(t, "https://example.com", "resume")
	f.opener.err = errors.New("no default application")

	err := f.ctrl.Open(record.ID)

	assert.True(t, model.IsKind(err, model.FailureFilesystem))
	assert.False(t, IsMissingFile(err))
	assert.Contains(t, err.Error(), "no default application")
}

func TestActions_UnknownRecord(t *testing.T) {
	f := newFixture(t, &fakeRenderer{})

	for name, err := range map[string]error{
		"open":   f.ctrl.Open("record-missing"),
		"reveal": f.ctrl.Reveal("record-missing"),
		"delete": f.ctrl.Delete(""),
	} {
		assert.True(t, model.IsKind(err, model.FailureUserInput), name)
		assert.ErrorIs(t, err, ErrNoSelection, name)
	}

	_, err := f.ctrl.Properties("record-missing")
	assert.ErrorIs(t, err, ErrNoSelection)
}

func TestProperties(t *testing.T) {
	f := newFixture(t, &fakeRenderer{})
	record := f.submit(t, "https://example.com", "resume")

	props, err := f.ctrl.Properties(record.ID)

	require.NoError(t, err)
	assert.Equal(t, record.Path, props.Path)
	assert.True(t, filepath.IsAbs(props.AbsolutePath))
	assert.Equal(t, int64(2048), props.SizeBytes)
	assert.InDelta(t, 2.0, props.SizeKB(), 0.0001)
}

func TestProperties_MissingFile(t *testing.T) {
	f := newFixture(t, &fakeRenderer{})
	record := f.submit(t, "https://example.com", "resume")
	require.NoError(t, os.Remove(record.Path))

	_, err := f.ctrl.Properties(record.ID)

	assert.True(t, IsMissingFile(err))
}

func TestDelete(t *testing.T) {
	f := newFixture(t, &fakeRenderer{})
	record := f.submit(t, "https://example.com", "resume")
	f.updates = 0

	require.NoError(t, f.ctrl.Delete(record.ID))

	assert.NoFileExists(t, record.Path)
	assert.Empty(t, f.ctrl.Records())
	assert.Equal(t, 1, f.updates)
}

func TestDelete_MissingFileDropsStaleRecord(t *testing.T) {
	f := newFixture(t, &fakeRenderer{})
	record := f.submit(t, "https://example.com", "resume")
	require.NoError(t, os.Remove(record.Path))
	f.updates = 0

	err := f.ctrl.Delete(record.ID)

	require.Error(t, err)
	assert.True(t, model.IsKind(err, model.FailureFilesystem))
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Empty(t, f.ctrl.Records())
	assert.Equal(t, 1, f.updates)
}

func TestDelete_OnlyTargetRecord(t *testing.T) {
	f := newFixture(t, &fakeRenderer{})
	keep := f.submit(t, "https://example.com/a", "a")
	drop := f.submit(t, "https://example.com/b", "b")

	require.NoError(t, f.ctrl.Delete(drop.ID))

	records := f.ctrl.Records()
	require.Len(t, records, 1)
	assert.Equal(t, keep.ID, records[0].ID)
	assert.FileExists(t, keep.Path)
}

func TestController_ImplementsSession(t *testing.T) {
	var _ Session = NewController(download.NewService(&fakeRenderer{}, ""), &fakeOpener{})
}
