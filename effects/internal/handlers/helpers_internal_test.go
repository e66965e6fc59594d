package handlers

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type partitionKey string

func (p partitionKey) PartitionKey() string { return string(p) }

func TestGetIndexByHash_SpreadsAndIsStable(t *testing.T) {
	hits := make(map[int]int)
	for i := 0; i < 100; i++ {
		key := partitionKey(fmt.Sprintf("config.key%d", i))
		idx := getIndexByHash(key, 2)
		assert.Equal(t, idx, getIndexByHash(key, 2), "same key must keep its worker")
		hits[idx]++
	}
	assert.Len(t, hits, 2, "both workers should receive keys")
	assert.Equal(t, 0, getIndexByHash(partitionKey("anything"), 1))
	assert.Panics(t, func() { getIndexByHash(partitionKey("x"), 0) })
}
