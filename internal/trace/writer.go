package trace

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/zeebo/xxh3"
)

const (
	headerSize   = 4
	checksumSize = 8

	// maxPayload bounds the length a reader will trust from a frame header.
	maxPayload = 1 << 20
)

// Writer appends records to a trace and numbers them.
type Writer struct {
	bw     *bufio.Writer
	closer io.Closer
	seq    uint64
	buf    []byte
}

// NewWriter writes frames to w. Close flushes but does not close w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriter(w)}
}

// Create truncates or creates the trace file at path.
func Create(path string) (*Writer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "create trace %s", path)
	}
	w := NewWriter(f)
	w.closer = f
	return w, nil
}

// Append assigns the next sequence number to r and writes it. The
// assigned sequence is returned.
func (w *Writer) Append(r Record) (uint64, error) {
	w.seq++
	r.Seq = w.seq

	payload := appendRecord(w.buf[:0], r)
	if len(payload) > maxPayload {
		return 0, errors.Newf("trace: record %d is %d bytes, limit %d", r.Seq, len(payload), maxPayload)
	}

	var frame [headerSize + checksumSize]byte
	binary.BigEndian.PutUint32(frame[:headerSize], uint32(len(payload)))
	binary.BigEndian.PutUint64(frame[headerSize:], xxh3.Hash(payload))

	if _, err := w.bw.Write(frame[:headerSize]); err != nil {
		return 0, errors.Wrap(err, "write trace header")
	}
	if _, err := w.bw.Write(payload); err != nil {
		return 0, errors.Wrap(err, "write trace payload")
	}
	if _, err := w.bw.Write(frame[headerSize:]); err != nil {
		return 0, errors.Wrap(err, "write trace checksum")
	}
	w.buf = payload
	return r.Seq, nil
}

// Seq is the last sequence number handed out.
func (w *Writer) Seq() uint64 { return w.seq }

func (w *Writer) Flush() error {
	return errors.Wrap(w.bw.Flush(), "flush trace")
}

func (w *Writer) Close() error {
	err := w.Flush()
	if w.closer != nil {
		if cerr := w.closer.Close(); err == nil && cerr != nil {
			err = errors.Wrap(cerr, "close trace")
		}
	}
	return err
}
