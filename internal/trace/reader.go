package trace

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/zeebo/xxh3"
)

// ErrTruncated is returned when a trace ends partway through a frame.
var ErrTruncated = errors.New("trace: truncated frame")

type Reader struct {
	br      *bufio.Reader
	closer  io.Closer
	lastSeq uint64
	buf     []byte
}

func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r)}
}

// Open opens the trace file at path for reading.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open trace %s", path)
	}
	r := NewReader(f)
	r.closer = f
	return r, nil
}

// Next returns the next record, or io.EOF after the last complete frame.
func (r *Reader) Next() (Record, error) {
	var header [headerSize]byte
	if _, err := io.ReadFull(r.br, header[:]); err != nil {
		if err == io.EOF {
			return Record{}, io.EOF
		}
		return Record{}, truncated(err)
	}

	l := binary.BigEndian.Uint32(header[:])
	if l > maxPayload {
		return Record{}, errors.Wrapf(ErrCorruptRecord, "frame length %d exceeds limit", l)
	}
	if cap(r.buf) < int(l)+checksumSize {
		r.buf = make([]byte, int(l)+checksumSize)
	}
	data := r.buf[:int(l)+checksumSize]
	if _, err := io.ReadFull(r.br, data); err != nil {
		return Record{}, truncated(err)
	}

	payload := data[:l]
	sum := binary.BigEndian.Uint64(data[l:])
	if xxh3.Hash(payload) != sum {
		return Record{}, errors.Wrapf(ErrCorruptRecord, "checksum mismatch after seq %d", r.lastSeq)
	}

	rec, err := decodeRecord(payload)
	if err != nil {
		return Record{}, err
	}
	if rec.Seq <= r.lastSeq {
		return Record{}, errors.Wrapf(ErrCorruptRecord, "non-monotonic seq %d after %d", rec.Seq, r.lastSeq)
	}
	r.lastSeq = rec.Seq
	return rec, nil
}

// LastSeq is the sequence number of the last record returned by Next.
func (r *Reader) LastSeq() uint64 { return r.lastSeq }

func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

func truncated(err error) error {
	if err == io.ErrUnexpectedEOF || err == io.EOF {
		return ErrTruncated
	}
	return errors.Wrap(err, "read trace")
}
