// Package vector implements the foreign-language sparse vector-space model
// index, plus the exact on-disk encodings for its resource file so the
// wire format stays bit-exact across versions even though index
// construction itself is out of scope for this core.
package vector

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/nihongokit/dictsearch/apperror"
)

// CurrentVersion is the metadata header version byte this codec writes and
// accepts; a mismatch is an apperror.Decode.
const CurrentVersion byte = 1

// Metadata is the fixed header preceding a vector-space index's
// dictionary/postings/documents blobs: version byte, document-count u64 LE,
// language-id i32 LE.
type Metadata struct {
	Version    byte
	DocCount   uint64
	LanguageID int32
}

func (m Metadata) Encode() []byte {
	buf := make([]byte, 1+8+4)
	buf[0] = m.Version
	binary.LittleEndian.PutUint64(buf[1:9], m.DocCount)
	binary.LittleEndian.PutUint32(buf[9:13], uint32(m.LanguageID))
	return buf
}

func DecodeMetadata(r io.Reader) (Metadata, error) {
	var buf [13]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return Metadata{}, apperror.Wrap(apperror.Decode, "truncated vector index metadata", err)
	}
	m := Metadata{
		Version:    buf[0],
		DocCount:   binary.LittleEndian.Uint64(buf[1:9]),
		LanguageID: int32(binary.LittleEndian.Uint32(buf[9:13])),
	}
	if m.Version != CurrentVersion {
		return Metadata{}, apperror.New(apperror.Decode, fmt.Sprintf("vector index metadata version mismatch: got %d, want %d", m.Version, CurrentVersion))
	}
	return m, nil
}

// RoundTrip is a helper used by tests and callers who want to validate a
// freshly-built Metadata encodes/decodes identically.
func RoundTrip(m Metadata) (Metadata, error) {
	return DecodeMetadata(bytes.NewReader(m.Encode()))
}
