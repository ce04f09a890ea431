package trace

import (
	"github.com/cockroachdb/errors"
	"google.golang.org/protobuf/encoding/protowire"
)

// Op names the tree operation a record replays.
type Op uint8

const (
	OpInsert Op = iota + 1
	OpRemove
	OpFind
)

func (o Op) String() string {
	switch o {
	case OpInsert:
		return "INSERT"
	case OpRemove:
		return "REMOVE"
	case OpFind:
		return "FIND"
	default:
		return "UNKNOWN"
	}
}

// Record is one traced operation. Value is only meaningful for OpInsert.
type Record struct {
	Seq   uint64
	Op    Op
	Key   int64
	Value []byte
}

const (
	fieldSeq   protowire.Number = 1
	fieldOp    protowire.Number = 2
	fieldKey   protowire.Number = 3
	fieldValue protowire.Number = 4
)

// ErrCorruptRecord is returned for frames that fail the checksum or do
// not decode.
var ErrCorruptRecord = errors.New("trace: corrupt record")

// malformed wraps the protowire parse failure for a negative length n.
func malformed(n int) error {
	return errors.Wrapf(ErrCorruptRecord, "decode: %v", protowire.ParseError(n))
}

func appendRecord(b []byte, r Record) []byte {
	b = protowire.AppendTag(b, fieldSeq, protowire.VarintType)
	b = protowire.AppendVarint(b, r.Seq)
	b = protowire.AppendTag(b, fieldOp, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(r.Op))
	b = protowire.AppendTag(b, fieldKey, protowire.VarintType)
	b = protowire.AppendVarint(b, protowire.EncodeZigZag(r.Key))
	if r.Value != nil {
		b = protowire.AppendTag(b, fieldValue, protowire.BytesType)
		b = protowire.AppendBytes(b, r.Value)
	}
	return b
}

func decodeRecord(b []byte) (Record, error) {
	var r Record
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return Record{}, malformed(n)
		}
		b = b[n:]

		switch {
		case num == fieldSeq && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return Record{}, malformed(n)
			}
			r.Seq, b = v, b[n:]
		case num == fieldOp && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return Record{}, malformed(n)
			}
			r.Op, b = Op(v), b[n:]
		case num == fieldKey && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return Record{}, malformed(n)
			}
			r.Key, b = protowire.DecodeZigZag(v), b[n:]
		case num == fieldValue && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return Record{}, malformed(n)
			}
			r.Value, b = append([]byte{}, v...), b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return Record{}, malformed(n)
			}
			b = b[n:]
		}
	}
	if r.Op < OpInsert || r.Op > OpFind {
		return Record{}, errors.Wrapf(ErrCorruptRecord, "unknown op %d", r.Op)
	}
	return r, nil
}
