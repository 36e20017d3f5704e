package background

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBatchAccountFiltersEmpty(t *testing.T) {
	assert.Empty(t, batchAccountFilters(nil))
	assert.Empty(t, batchAccountFilters([]string{}))
}

func TestBatchAccountFiltersSingleAccount(t *testing.T) {
	batches := batchAccountFilters([]string{"farmer-1"})

	assert.Len(t, batches, 1)
	assert.Len(t, batches[0], 1)
	assert.Equal(t, "farmer-1", batches[0][0]["value"])
}

func TestBatchAccountFiltersSplitsAtLimit(t *testing.T) {
	accounts := make([]string, 0, accountFilterBatch+1)
	for i := 0; i <= accountFilterBatch; i++ {
		accounts = append(accounts, fmt.Sprintf("farmer-%d", i))
	}

	batches := batchAccountFilters(accounts)

	assert.Len(t, batches, 2)
	// a full batch is 100 tag filters joined by 99 OR separators
	assert.Len(t, batches[0], 2*accountFilterBatch-1)
	assert.Len(t, batches[1], 1)
}
