package idgen_test

import (
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/bh2e-sheets/internal/pkg/idgen"
)

func TestSequence(t *testing.T) {
	gen := idgen.NewSequential("msg")
	assert.Equal(t, "msg_1", gen.Generate())
	assert.Equal(t, "msg_2", gen.Generate())

	assert.Equal(t, "1", idgen.NewSequential("").Generate())
}

func TestSequenceIsUniqueUnderConcurrency(t *testing.T) {
	gen := idgen.NewSequential("msg")
	ids := make(chan string, 100)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- gen.Generate()
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	assert.Len(t, seen, 100)
}

func TestTimeOrdered(t *testing.T) {
	gen := idgen.NewUUID("msg")

	generated := make([]string, 20)
	for i := range generated {
		generated[i] = gen.Generate()
	}

	for _, id := range generated {
		require.True(t, strings.HasPrefix(id, "msg_"))
		parsed, err := uuid.Parse(strings.TrimPrefix(id, "msg_"))
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(7), parsed.Version())
	}

	assert.True(t, sort.StringsAreSorted(generated), "v7 IDs sort in creation order")
}
