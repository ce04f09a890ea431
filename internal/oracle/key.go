package oracle

import (
	"encoding/binary"

	"github.com/cockroachdb/errors"
)

const signBit = 1 << 63

// EncodeKey maps an int64 to 8 bytes whose bytewise order matches the
// numeric order: big-endian with the sign bit flipped.
func EncodeKey(k int64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(k)^signBit)
	return buf
}

func DecodeKey(b []byte) (int64, error) {
	if len(b) != 8 {
		return 0, errors.Newf("oracle: invalid key length %d", len(b))
	}
	return int64(binary.BigEndian.Uint64(b) ^ signBit), nil
}
