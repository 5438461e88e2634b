package semantictest

import (
	"context"
	"fmt"
	"hash/fnv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucket_HighHashBitsStayInRange(t *testing.T) {
	const dim = 48
	checked := 0
	for i := 0; i < 1000 && checked < 20; i++ {
		word := fmt.Sprintf("word%d", i)
		f := fnv.New32a()
		_, _ = f.Write([]byte(word))
		sum := f.Sum32()
		if sum < 1<<31 {
			continue
		}
		checked++
		got := bucket(word, dim)
		assert.Equal(t, int(sum%dim), got, word)
		assert.GreaterOrEqual(t, got, 0)
		assert.Less(t, got, dim)
	}
	require.Positive(t, checked, "no word hashed with the top bit set")
}

func TestHashingEncoder_Encode(t *testing.T) {
	h := NewHashingEncoder(16)
	text := "python sql pandas docker kubernetes c++ c# golang rust java scala"

	a, err := h.Encode(context.Background(), text)
	require.NoError(t, err)
	b, err := h.Encode(context.Background(), text)
	require.NoError(t, err)

	require.Len(t, a, 16)
	assert.Equal(t, a, b)
	var total float32
	for _, v := range a {
		assert.GreaterOrEqual(t, v, float32(0))
		total += v
	}
	assert.Equal(t, float32(11), total)
	assert.Equal(t, int64(2), h.Calls())
}
