package trace

import (
	"bytes"
	stderrors "errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"rbkv/rbtree"
)

func writeAll(t *testing.T, w *Writer, recs []Record) {
	t.Helper()
	for _, r := range recs {
		_, err := w.Append(r)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
}

var sample = []Record{
	{Op: OpInsert, Key: 10, Value: []byte("ten")},
	{Op: OpInsert, Key: -20, Value: []byte("minus twenty")},
	{Op: OpFind, Key: 10},
	{Op: OpRemove, Key: 10},
	{Op: OpRemove, Key: 99},
}

func TestWriterReaderRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ops.trace")
	w, err := Create(path)
	require.NoError(t, err)
	writeAll(t, w, sample)

	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()

	for i, want := range sample {
		got, err := r.Next()
		require.NoError(t, err)
		require.Equal(t, uint64(i+1), got.Seq)
		require.Equal(t, want.Op, got.Op)
		require.Equal(t, want.Key, got.Key)
		require.Equal(t, want.Value, got.Value)
	}
	_, err = r.Next()
	require.Equal(t, io.EOF, err)
	require.Equal(t, uint64(len(sample)), r.LastSeq())
}

func TestReaderDetectsChecksumMismatch(t *testing.T) {
	var buf bytes.Buffer
	writeAll(t, NewWriter(&buf), sample[:1])

	b := buf.Bytes()
	b[headerSize+1] ^= 0xff // flip a payload byte

	_, err := NewReader(bytes.NewReader(b)).Next()
	require.True(t, errors.Is(err, ErrCorruptRecord), "got %v", err)
}

func TestReaderDetectsTruncation(t *testing.T) {
	var buf bytes.Buffer
	writeAll(t, NewWriter(&buf), sample[:2])

	b := buf.Bytes()
	r := NewReader(bytes.NewReader(b[:len(b)-3]))
	_, err := r.Next()
	require.NoError(t, err)
	_, err = r.Next()
	require.True(t, errors.Is(err, ErrTruncated), "got %v", err)
}

func TestReaderRejectsOversizedFrame(t *testing.T) {
	b := []byte{0xff, 0xff, 0xff, 0xff}
	_, err := NewReader(bytes.NewReader(b)).Next()
	require.True(t, errors.Is(err, ErrCorruptRecord), "got %v", err)
}

func TestDecodeSkipsUnknownFields(t *testing.T) {
	b := appendRecord(nil, Record{Seq: 3, Op: OpFind, Key: -7})
	b = append(b, 0x2a, 0x02, 'h', 'i') // field 5, bytes "hi"

	r, err := decodeRecord(b)
	require.NoError(t, err)
	require.Equal(t, uint64(3), r.Seq)
	require.Equal(t, OpFind, r.Op)
	require.Equal(t, int64(-7), r.Key)
}

func TestDecodeRejectsUnknownOp(t *testing.T) {
	b := appendRecord(nil, Record{Seq: 1, Op: Op(9), Key: 1})
	_, err := decodeRecord(b)
	require.True(t, errors.Is(err, ErrCorruptRecord))
}

func TestReplayAppliesRecords(t *testing.T) {
	var buf bytes.Buffer
	writeAll(t, NewWriter(&buf), sample)

	tree := rbtree.NewOrdered[int64, string](rbtree.Config{})
	var results []Result
	last, err := Replay(NewReader(&buf), tree, func(_ Record, res Result) error {
		results = append(results, res)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, uint64(len(sample)), last)
	require.Len(t, results, len(sample))

	require.Equal(t, "ten", results[2].Value)
	require.Equal(t, "ten", results[3].Value)
	require.ErrorIs(t, results[4].Err, rbtree.ErrNotFound)

	require.Equal(t, 1, tree.Size())
	v, err := tree.Find(-20)
	require.NoError(t, err)
	require.Equal(t, "minus twenty", v)
	require.NoError(t, tree.Verify())
}

func TestReplayStopsOnHandlerError(t *testing.T) {
	var buf bytes.Buffer
	writeAll(t, NewWriter(&buf), sample)

	stop := errors.New("stop")
	tree := rbtree.NewOrdered[int64, string](rbtree.Config{})
	last, err := Replay(NewReader(&buf), tree, func(rec Record, _ Result) error {
		if rec.Seq == 2 {
			return stop
		}
		return nil
	})
	require.ErrorIs(t, err, stop)
	require.Equal(t, uint64(2), last)
	require.Equal(t, 2, tree.Size())
}

func TestCorruptionErrorsMatchStdlibIs(t *testing.T) {
	_, err := decodeRecord([]byte{0x08}) // seq tag with no varint
	require.Error(t, err)
	require.True(t, stderrors.Is(err, ErrCorruptRecord), "got %v", err)

	_, err = decodeRecord(appendRecord(nil, Record{Seq: 1, Op: Op(9)}))
	require.True(t, stderrors.Is(err, ErrCorruptRecord), "got %v", err)

	var buf bytes.Buffer
	writeAll(t, NewWriter(&buf), sample[:1])
	b := buf.Bytes()
	b[len(b)-1] ^= 0xff // damage the checksum
	_, err = NewReader(bytes.NewReader(b)).Next()
	require.True(t, stderrors.Is(err, ErrCorruptRecord), "got %v", err)
}
