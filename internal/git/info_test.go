package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// initRepo creates a repository with a single commit and returns its path
// and the commit hash.
func initRepo(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()

	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "params.conf"), []byte("port 8080\n"), 0o644))

	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("params.conf")
	require.NoError(t, err)

	hash, err := wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{Name: "Test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	_, err = repo.CreateTag("v1.0.0", hash, nil)
	require.NoError(t, err)

	return dir, hash.String()
}

func TestGetInfo(t *testing.T) {
	dir, hash := initRepo(t)

	info, err := GetInfo(dir)
	require.NoError(t, err)

	assert.Equal(t, hash, info.CommitHash)
	assert.Equal(t, hash[:7], info.ShortHash())
	assert.NotEmpty(t, info.Branch)
	assert.Equal(t, []string{"v1.0.0"}, info.Tags)
	assert.False(t, info.IsDirty)
	assert.Equal(t, "v1.0.0 ("+hash[:7]+")", info.Describe())
}

func TestGetInfo_DirtyWorktree(t *testing.T) {
	dir, hash := initRepo(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "params.conf"), []byte("port 9090\n"), 0o644))

	info, err := GetInfo(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDirty)
	assert.Equal(t, "v1.0.0 ("+hash[:7]+")-dirty", info.Describe())
}

func TestGetInfo_FromSubdirectory(t *testing.T) {
	dir, hash := initRepo(t)
	sub := filepath.Join(dir, "conf", "nested")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	info, err := GetInfo(sub)
	require.NoError(t, err)
	assert.Equal(t, hash, info.CommitHash)
}

func TestInfo_DescribeWithoutTags(t *testing.T) {
	info := &Info{CommitHash: "0123456789abcdef"}
	assert.Equal(t, "0123456", info.Describe())

	info.IsDirty = true
	assert.Equal(t, "0123456-dirty", info.Describe())

	assert.Equal(t, "abc", (&Info{CommitHash: "abc"}).ShortHash())
}
