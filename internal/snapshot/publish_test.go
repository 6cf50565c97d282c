package snapshot_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	mortarerrors "mortar.dev/mortar/internal/errors"
	"mortar.dev/mortar/internal/snapshot"
	"mortar.dev/mortar/testhelpers"
)

func TestPublish(t *testing.T) {
	t.Run("pushes the branch and resolves its commit hash", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		barePath, err := scene.Repo.CreateBareRemote("mortar")
		require.NoError(t, err)

		require.NoError(t, scene.Repo.RunGitCommand("checkout", "-b", "mortar-snapshot-test"))

		publisher := snapshot.NewPublisher("mortar")
		sha, err := publisher.Publish(context.Background(), scene.Dir, "mortar-snapshot-test")
		require.NoError(t, err)
		require.Len(t, sha, 40)

		// The branch reached the bare remote and points at the same commit
		remoteRepo := &testhelpers.GitRepo{Dir: barePath}
		remoteSha, err := remoteRepo.RunGitCommandAndGetOutput("rev-parse", "--verify", "mortar-snapshot-test")
		require.NoError(t, err)
		require.Equal(t, sha, remoteSha)
	})

	t.Run("exhausts after the bounded attempt count", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.AddRemote("mortar", "/nonexistent/remote/path.git"))

		publisher := snapshot.NewPublisher("mortar")
		publisher.BaseDelay = time.Millisecond

		_, err := publisher.Publish(context.Background(), scene.Dir, "master")
		require.ErrorIs(t, err, mortarerrors.ErrPublishExhausted)

		var exhausted *mortarerrors.PublishExhaustedError
		require.ErrorAs(t, err, &exhausted)
		require.Equal(t, snapshot.DefaultMaxAttempts, exhausted.Attempts)
	})

	t.Run("succeeds within a lowered attempt bound", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		_, err := scene.Repo.CreateBareRemote("mortar")
		require.NoError(t, err)

		// Lowering the attempt bound still succeeds on a healthy remote
		publisher := snapshot.NewPublisher("mortar")
		publisher.MaxAttempts = 2
		publisher.BaseDelay = time.Millisecond

		sha, err := publisher.Publish(context.Background(), scene.Dir, "master")
		require.NoError(t, err)
		require.Len(t, sha, 40)
	})
}
