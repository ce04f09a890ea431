// Package trace records and replays sequences of tree operations.
//
// A trace file is a run of frames:
//
//	[len:4][payload:len][xxh3:8]
//
// Integers are big-endian and the checksum covers the payload only. The
// payload is protobuf wire format:
//
//	1: seq   (varint)
//	2: op    (varint)
//	3: key   (zigzag varint)
//	4: value (bytes)
//
// Unknown fields are skipped so newer writers stay readable.
package trace
