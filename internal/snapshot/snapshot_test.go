package snapshot_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	mortarerrors "mortar.dev/mortar/internal/errors"
	"mortar.dev/mortar/internal/git"
	"mortar.dev/mortar/internal/snapshot"
	"mortar.dev/mortar/testhelpers"
)

func TestCreate(t *testing.T) {
	t.Run("captures manifest paths and untracked files without touching the original tree", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.WriteFile("project.manifest", "udfs\n"))
		require.NoError(t, scene.Repo.WriteFile("udfs/foo.txt", "foo"))

		statusBefore, err := scene.Repo.StatusPorcelain()
		require.NoError(t, err)
		branchBefore, err := scene.Repo.CurrentBranch()
		require.NoError(t, err)

		repo, err := git.OpenRepository(scene.Dir)
		require.NoError(t, err)

		snapshotter := snapshot.NewSnapshotter(repo, snapshot.NewPublisher("mortar"))
		stagedDir, branchName, err := snapshotter.Create(context.Background())
		require.NoError(t, err)
		t.Cleanup(func() { os.RemoveAll(stagedDir) })

		require.True(t, strings.HasPrefix(branchName, snapshot.BranchPrefix))

		// The staged copy holds the manifest paths and the metadata directory
		_, err = os.Stat(filepath.Join(stagedDir, "udfs"))
		require.NoError(t, err)
		_, err = os.Stat(filepath.Join(stagedDir, ".git"))
		require.NoError(t, err)

		// The snapshot branch is checked out in the staged copy with the
		// previously-untracked file committed
		stagedRepo := &testhelpers.GitRepo{Dir: stagedDir}
		stagedBranch, err := stagedRepo.CurrentBranch()
		require.NoError(t, err)
		require.Equal(t, branchName, stagedBranch)

		tracked, err := stagedRepo.RunGitCommandAndGetOutput("ls-tree", "-r", "--name-only", "HEAD")
		require.NoError(t, err)
		require.Contains(t, tracked, "udfs/foo.txt")

		// The original tree is unchanged: same branch, foo.txt still
		// untracked, no snapshot branch materialized
		statusAfter, err := scene.Repo.StatusPorcelain()
		require.NoError(t, err)
		require.Equal(t, statusBefore, statusAfter)
		require.Contains(t, statusAfter, "?? udfs/")

		branchAfter, err := scene.Repo.CurrentBranch()
		require.NoError(t, err)
		require.Equal(t, branchBefore, branchAfter)

		err = scene.Repo.RunGitCommand("rev-parse", "--verify", branchName)
		require.Error(t, err)
	})

	t.Run("clean tree with no untracked files creates no commit", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.CreateChangeAndCommit("udfs/helper.py", "pass", "add udf"))
		// Every tracked file sits inside a manifest path, so the staged
		// copy sees no pending changes
		require.NoError(t, scene.Repo.CreateChangeAndCommit("project.manifest", "udfs\ntest.txt\nproject.manifest\n", "add manifest"))

		headBefore, err := scene.Repo.RunGitCommandAndGetOutput("rev-parse", "HEAD")
		require.NoError(t, err)

		repo, err := git.OpenRepository(scene.Dir)
		require.NoError(t, err)

		snapshotter := snapshot.NewSnapshotter(repo, snapshot.NewPublisher("mortar"))
		stagedDir, _, err := snapshotter.Create(context.Background())
		require.NoError(t, err)
		t.Cleanup(func() { os.RemoveAll(stagedDir) })

		// Everything tracked lives under the manifest paths, so the staged
		// copy is clean and HEAD stays where it was
		stagedRepo := &testhelpers.GitRepo{Dir: stagedDir}
		head, err := stagedRepo.RunGitCommandAndGetOutput("rev-parse", "HEAD")
		require.NoError(t, err)
		require.Equal(t, headBefore, head)
	})

	t.Run("fails with no commits and performs no filesystem mutation", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)

		repo, err := git.OpenRepository(scene.Dir)
		require.NoError(t, err)

		snapshotter := snapshot.NewSnapshotter(repo, snapshot.NewPublisher("mortar"))
		_, _, err = snapshotter.Create(context.Background())
		require.ErrorIs(t, err, mortarerrors.ErrNoCommits)

		// No manifest was written, nothing was staged
		_, err = os.Stat(filepath.Join(scene.Dir, snapshot.ManifestFileName))
		require.True(t, os.IsNotExist(err))
	})
}

func TestCreateAndPush(t *testing.T) {
	t.Run("end to end against a bare remote", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.WriteFile("project.manifest", "udfs\n"))
		require.NoError(t, scene.Repo.WriteFile("udfs/foo.txt", "foo"))
		barePath, err := scene.Repo.CreateBareRemote("mortar")
		require.NoError(t, err)

		repo, err := git.OpenRepository(scene.Dir)
		require.NoError(t, err)

		snapshotter := snapshot.NewSnapshotter(repo, snapshot.NewPublisher("mortar"))
		sha, err := snapshotter.CreateAndPush(context.Background())
		require.NoError(t, err)
		require.Len(t, sha, 40)

		// The snapshot commit is reachable in the remote
		remoteRepo := &testhelpers.GitRepo{Dir: barePath}
		commitType, err := remoteRepo.RunGitCommandAndGetOutput("cat-file", "-t", sha)
		require.NoError(t, err)
		require.Equal(t, "commit", commitType)

		// The original tree still shows the file as untracked
		status, err := scene.Repo.StatusPorcelain()
		require.NoError(t, err)
		require.Contains(t, status, "?? udfs/")
	})
}
