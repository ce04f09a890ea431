package oracle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOraclePutGetDelete(t *testing.T) {
	o, err := Open()
	require.NoError(t, err)
	defer o.Close()

	existed, err := o.Put(7, []byte("seven"))
	require.NoError(t, err)
	require.False(t, existed)

	existed, err = o.Put(7, []byte("SEVEN"))
	require.NoError(t, err)
	require.True(t, existed)
	require.Equal(t, 1, o.Len())

	val, ok, err := o.Get(7)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte("SEVEN"), val)

	_, ok, err = o.Get(8)
	require.NoError(t, err)
	require.False(t, ok)

	removed, err := o.Delete(7)
	require.NoError(t, err)
	require.True(t, removed)
	removed, err = o.Delete(7)
	require.NoError(t, err)
	require.False(t, removed)
	require.Equal(t, 0, o.Len())
}

func TestOracleKeysAscendingAcrossSign(t *testing.T) {
	o, err := Open()
	require.NoError(t, err)
	defer o.Close()

	for _, k := range []int64{5, -3, math.MaxInt64, 0, math.MinInt64, -100} {
		_, err := o.Put(k, nil)
		require.NoError(t, err)
	}
	keys, err := o.Keys()
	require.NoError(t, err)
	require.Equal(t, []int64{math.MinInt64, -100, -3, 0, 5, math.MaxInt64}, keys)
}

func TestKeyEncodingRoundTrip(t *testing.T) {
	for _, k := range []int64{math.MinInt64, -1, 0, 1, math.MaxInt64} {
		got, err := DecodeKey(EncodeKey(k))
		require.NoError(t, err)
		require.Equal(t, k, got)
	}
	_, err := DecodeKey([]byte{1, 2, 3})
	require.Error(t, err)
}
