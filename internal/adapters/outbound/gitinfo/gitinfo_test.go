package gitinfo_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomsv/gomsv/internal/adapters/outbound/gitinfo"
)

func initRepoWithCommit(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.go"), []byte("package main\n"), 0o644))

	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("main.go")
	require.NoError(t, err)
	_, err = wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	return dir
}

func TestGitInfoAdapter_NonRepo(t *testing.T) {
	g := gitinfo.New()
	dir := t.TempDir()

	assert.False(t, g.IsGitRepo(dir))

	_, err := g.CommitHash(dir)
	assert.Error(t, err)
}

func TestGitInfoAdapter_RepoWithCommit(t *testing.T) {
	g := gitinfo.New()
	dir := initRepoWithCommit(t)

	assert.True(t, g.IsGitRepo(dir))

	hash, err := g.CommitHash(dir)
	require.NoError(t, err)
	assert.Len(t, hash, 40)
}
