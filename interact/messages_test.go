package interact_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/heapviz/heap"
	"github.com/vkngwrapper/heapviz/interact"
)

func TestMessagesAreDistinct(t *testing.T) {
	sentinels := []error{
		heap.InvalidGrowError,
		heap.AlreadyAllocatedError,
		heap.NotAllocatedError,
		heap.InvalidSizeError,
		heap.InsufficientSpaceError,
		heap.BelowMinimumSizeError,
		heap.ExceedsAvailableError,
		heap.NotAdjacentError,
		heap.BlockAllocatedError,
		heap.InvalidBlockError,
	}

	seen := map[string]error{}
	for _, sentinel := range sentinels {
		message := interact.Message(errors.Wrapf(sentinel, "block %d", 3))
		require.NotEmpty(t, message)

		previous, duplicate := seen[message]
		require.False(t, duplicate, "%v and %v share the message %q", previous, sentinel, message)
		seen[message] = sentinel
	}
}

func TestMessageUnknownError(t *testing.T) {
	require.Equal(t, "something else", interact.Message(errors.New("something else")))
}
