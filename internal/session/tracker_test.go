package session

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/jobpdf/internal/model"
)

func rec(id, path string) *model.DownloadRecord {
	return &model.DownloadRecord{ID: id, Path: path}
}

func TestTracker_AppendKeepsOrder(t *testing.T) {
	tr := NewTracker()
	tr.Append(rec("a", "x.pdf"))
	tr.Append(rec("b", "y.pdf"))
	tr.Append(rec("c", "x.pdf"))

	all := tr.All()
	require.Len(t, all, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{all[0].ID, all[1].ID, all[2].ID})
	assert.Equal(t, 3, tr.Len())
}

func TestTracker_DuplicatePathsAreSeparate(t *testing.T) {
	tr := NewTracker()
	tr.Append(rec("a", "same.pdf"))
	tr.Append(rec("b", "same.pdf"))

	first, ok := tr.FindByPath("same.pdf")
	require.True(t, ok)
	assert.Equal(t, "a", first.ID)

	require.True(t, tr.Remove("a"))
	second, ok := tr.FindByPath("same.pdf")
	require.True(t, ok)
	assert.Equal(t, "b", second.ID)
}

func TestTracker_GetAndRemove(t *testing.T) {
	tr := NewTracker()
	tr.Append(rec("a", "1.pdf"))
	tr.Append(rec("b", "2.pdf"))
	tr.Append(rec("c", "3.pdf"))

	got, ok := tr.Get("b")
	require.True(t, ok)
	assert.Equal(t, "2.pdf", got.Path)

	assert.True(t, tr.Remove("b"))
	assert.False(t, tr.Remove("b"))

	_, ok = tr.Get("b")
	assert.False(t, ok)

	all := tr.All()
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].ID)
	assert.Equal(t, "c", all[1].ID)

	_, ok = tr.FindByPath("nope.pdf")
	assert.False(t, ok)
}

func TestTracker_AllIsSnapshot(t *testing.T) {
	tr := NewTracker()
	tr.Append(rec("a", "1.pdf"))

	snap := tr.All()
	tr.Append(rec("b", "2.pdf"))
	tr.Remove("a")

	require.Len(t, snap, 1)
	assert.Equal(t, "a", snap[0].ID)
}

func TestTracker_ConcurrentAppend(t *testing.T) {
	tr := NewTracker()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tr.Append(rec(fmt.Sprintf("r%d", i), "f.pdf"))
			_ = tr.All()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, tr.Len())
}
