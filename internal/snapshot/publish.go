package snapshot

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"

	mortarerrors "mortar.dev/mortar/internal/errors"
	"mortar.dev/mortar/internal/git"
)

// DefaultMaxAttempts bounds the total number of push attempts
const DefaultMaxAttempts = 10

// DefaultBaseDelay is the unit the Fibonacci backoff schedule multiplies
const DefaultBaseDelay = time.Second

// Publisher pushes a snapshot branch to a remote, retrying transient
// failures with Fibonacci backoff
type Publisher struct {
	Remote      string
	MaxAttempts int
	BaseDelay   time.Duration
}

// NewPublisher creates a Publisher with default retry tuning
func NewPublisher(remote string) *Publisher {
	return &Publisher{
		Remote:      remote,
		MaxAttempts: DefaultMaxAttempts,
		BaseDelay:   DefaultBaseDelay,
	}
}

// Publish pushes branchName from the staged copy to the remote and returns
// the commit hash it resolves to. Retries sleep 1,1,2,3,5,8,... base units
// between attempts; the delay is deliberately uncapped because the attempt
// count bounds total wait. Exhausting all attempts reports how many were
// made. The staged directory is left for the caller to delete; the branch
// is never deleted, it dies with the directory.
func (p *Publisher) Publish(ctx context.Context, stagedDir, branchName string) (string, error) {
	runner := git.NewCommandRunner(stagedDir)

	attempts := 0
	push := func() error {
		attempts++
		err := git.PushBranch(ctx, runner, p.Remote, branchName)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"branch":  branchName,
				"remote":  p.Remote,
				"attempt": attempts,
			}).Debug("push attempt failed")
		}
		return err
	}

	schedule := backoff.WithContext(
		backoff.WithMaxRetries(newFibonacciBackOff(p.BaseDelay), uint64(p.MaxAttempts-1)),
		ctx,
	)
	if err := backoff.Retry(push, schedule); err != nil {
		return "", mortarerrors.NewPublishExhaustedError(attempts, err)
	}

	return git.RevParse(ctx, runner, branchName)
}

// fibonacciBackOff yields delays growing as the sum of the previous two,
// starting at unit, unit
type fibonacciBackOff struct {
	unit time.Duration
	prev time.Duration
	next time.Duration
}

func newFibonacciBackOff(unit time.Duration) *fibonacciBackOff {
	b := &fibonacciBackOff{unit: unit}
	b.Reset()
	return b
}

func (b *fibonacciBackOff) NextBackOff() time.Duration {
	delay := b.next
	b.prev, b.next = b.next, b.prev+b.next
	return delay
}

func (b *fibonacciBackOff) Reset() {
	b.prev = 0
	b.next = b.unit
}
