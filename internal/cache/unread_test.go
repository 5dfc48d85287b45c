package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCounts(t *testing.T) {
	counts, err := decodeCounts(map[string]string{
		seededField: "1",
		"peer-1":    "3",
		"peer-2":    "0",
	})
	require.NoError(t, err)

	assert.Len(t, counts, 1)
	assert.Equal(t, int64(3), counts["peer-1"])
	assert.Equal(t, int64(3), counts.Total())
}

func TestDecodeCounts_InvalidValue(t *testing.T) {
	_, err := decodeCounts(map[string]string{"peer-1": "many"})
	assert.Error(t, err)
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "unread:u1", unreadKey("u1"))
	assert.Equal(t, "unread-updates:u1", unreadChannel("u1"))
}

func TestPairsToMap(t *testing.T) {
	raw, err := pairsToMap([]string{seededField, "1", "peer-1", "2"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{seededField: "1", "peer-1": "2"}, raw)

	counts, err := decodeCounts(raw)
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts["peer-1"])
}

func TestPairsToMap_OddReply(t *testing.T) {
	_, err := pairsToMap([]string{seededField, "1", "peer-1"})
	assert.Error(t, err)
}
