package git_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"mortar.dev/mortar/internal/git"
	"mortar.dev/mortar/testhelpers"
)

func TestHasCommits(t *testing.T) {
	t.Run("false for a fresh repository", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)

		has, err := git.HasCommits(context.Background(), git.NewCommandRunner(scene.Dir))
		require.NoError(t, err)
		require.False(t, has)
	})

	t.Run("true after the first commit", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		has, err := git.HasCommits(context.Background(), git.NewCommandRunner(scene.Dir))
		require.NoError(t, err)
		require.True(t, has)
	})
}

func TestCurrentBranch(t *testing.T) {
	t.Run("returns the checked out branch", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.RunGitCommand("checkout", "-b", "feature"))

		branch, err := git.CurrentBranch(context.Background(), git.NewCommandRunner(scene.Dir))
		require.NoError(t, err)
		require.Equal(t, "feature", branch)
	})
}

func TestIsClean(t *testing.T) {
	t.Run("clean after commit", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		clean, err := git.IsClean(context.Background(), git.NewCommandRunner(scene.Dir))
		require.NoError(t, err)
		require.True(t, clean)
	})

	t.Run("dirty with an untracked file", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.WriteFile("foo.txt", "foo"))

		clean, err := git.IsClean(context.Background(), git.NewCommandRunner(scene.Dir))
		require.NoError(t, err)
		require.False(t, clean)
	})

	t.Run("dirty with a modified tracked file", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.WriteFile("test.txt", "changed"))

		clean, err := git.IsClean(context.Background(), git.NewCommandRunner(scene.Dir))
		require.NoError(t, err)
		require.False(t, clean)
	})
}

func TestHasConflicts(t *testing.T) {
	t.Run("false for a clean repository with no status lines", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		conflicted, err := git.HasConflicts(context.Background(), git.NewCommandRunner(scene.Dir))
		require.NoError(t, err)
		require.False(t, conflicted)
	})

	t.Run("false for ordinary pending changes", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.WriteFile("test.txt", "changed"))
		require.NoError(t, scene.Repo.WriteFile("foo.txt", "foo"))

		conflicted, err := git.HasConflicts(context.Background(), git.NewCommandRunner(scene.Dir))
		require.NoError(t, err)
		require.False(t, conflicted)
	})

	t.Run("true during an unresolved merge", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		// Diverge the same file on two branches, then merge
		require.NoError(t, scene.Repo.RunGitCommand("checkout", "-b", "left"))
		require.NoError(t, scene.Repo.CreateChangeAndCommit("test.txt", "left", "left change"))
		require.NoError(t, scene.Repo.RunGitCommand("checkout", "master"))
		require.NoError(t, scene.Repo.CreateChangeAndCommit("test.txt", "right", "right change"))
		_ = scene.Repo.RunGitCommand("merge", "left")

		conflicted, err := git.HasConflicts(context.Background(), git.NewCommandRunner(scene.Dir))
		require.NoError(t, err)
		require.True(t, conflicted)
	})
}

func TestUntrackedFiles(t *testing.T) {
	t.Run("lists untracked files only", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.WriteFile("foo.txt", "foo"))
		require.NoError(t, scene.Repo.WriteFile("udfs/helper.py", "pass"))

		files, err := git.UntrackedFiles(context.Background(), git.NewCommandRunner(scene.Dir))
		require.NoError(t, err)
		require.ElementsMatch(t, []string{"foo.txt", "udfs/helper.py"}, files)
	})

	t.Run("respects ignore rules", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.CreateChangeAndCommit(".gitignore", "*.log\n", "add gitignore"))
		require.NoError(t, scene.Repo.WriteFile("debug.log", "noise"))
		require.NoError(t, scene.Repo.WriteFile("foo.txt", "foo"))

		files, err := git.UntrackedFiles(context.Background(), git.NewCommandRunner(scene.Dir))
		require.NoError(t, err)
		require.Equal(t, []string{"foo.txt"}, files)
	})
}
