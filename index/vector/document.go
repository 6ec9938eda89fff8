package vector

import (
	"encoding/binary"
	"io"

	"github.com/nihongokit/dictsearch/apperror"
)

// ForeignPosting is one sequence-id entry in a foreign-document posting
// list: a u8 position count and that many u16 positions.
type ForeignPosting struct {
	SeqID     uint32
	Positions []uint16
}

// NativePosting is one sequence-id entry in a native-document posting
// list: a bare u32 — exactly one position, no count prefix.
type NativePosting struct {
	SeqID    uint32
	Position uint32
}

// EncodeForeignDocument encodes a foreign word document's posting list:
// u16 sequence-id count, then for each id a u32 id, u8 position count, and
// that many u16 positions.
func EncodeForeignDocument(postings []ForeignPosting) []byte {
	buf := make([]byte, 0, 2+len(postings)*8)
	var head [2]byte
	binary.LittleEndian.PutUint16(head[:], uint16(len(postings)))
	buf = append(buf, head[:]...)
	for _, p := range postings {
		var idBuf [4]byte
		binary.LittleEndian.PutUint32(idBuf[:], p.SeqID)
		buf = append(buf, idBuf[:]...)
		buf = append(buf, byte(len(p.Positions)))
		for _, pos := range p.Positions {
			var posBuf [2]byte
			binary.LittleEndian.PutUint16(posBuf[:], pos)
			buf = append(buf, posBuf[:]...)
		}
	}
	return buf
}

func DecodeForeignDocument(r io.Reader) ([]ForeignPosting, error) {
	var head [2]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		return nil, apperror.Wrap(apperror.Decode, "truncated foreign document header", err)
	}
	count := binary.LittleEndian.Uint16(head[:])
	out := make([]ForeignPosting, 0, count)
	for i := uint16(0); i < count; i++ {
		var idBuf [4]byte
		if _, err := io.ReadFull(r, idBuf[:]); err != nil {
			return nil, apperror.Wrap(apperror.Decode, "truncated foreign document posting id", err)
		}
		var posCountBuf [1]byte
		if _, err := io.ReadFull(r, posCountBuf[:]); err != nil {
			return nil, apperror.Wrap(apperror.Decode, "truncated foreign document position count", err)
		}
		posCount := posCountBuf[0]
		positions := make([]uint16, posCount)
		for j := byte(0); j < posCount; j++ {
			var posBuf [2]byte
			if _, err := io.ReadFull(r, posBuf[:]); err != nil {
				return nil, apperror.Wrap(apperror.Decode, "truncated foreign document position", err)
			}
			positions[j] = binary.LittleEndian.Uint16(posBuf[:])
		}
		out = append(out, ForeignPosting{SeqID: binary.LittleEndian.Uint32(idBuf[:]), Positions: positions})
	}
	return out, nil
}

// EncodeNativeDocument encodes a native word document's posting list: u16
// sequence-id count, then for each id a u32 id followed by a bare u32
// position.
func EncodeNativeDocument(postings []NativePosting) []byte {
	buf := make([]byte, 0, 2+len(postings)*8)
	var head [2]byte
	binary.LittleEndian.PutUint16(head[:], uint16(len(postings)))
	buf = append(buf, head[:]...)
	for _, p := range postings {
		var idBuf, posBuf [4]byte
		binary.LittleEndian.PutUint32(idBuf[:], p.SeqID)
		binary.LittleEndian.PutUint32(posBuf[:], p.Position)
		buf = append(buf, idBuf[:]...)
		buf = append(buf, posBuf[:]...)
	}
	return buf
}

func DecodeNativeDocument(r io.Reader) ([]NativePosting, error) {
	var head [2]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		return nil, apperror.Wrap(apperror.Decode, "truncated native document header", err)
	}
	count := binary.LittleEndian.Uint16(head[:])
	out := make([]NativePosting, 0, count)
	for i := uint16(0); i < count; i++ {
		var idBuf, posBuf [4]byte
		if _, err := io.ReadFull(r, idBuf[:]); err != nil {
			return nil, apperror.Wrap(apperror.Decode, "truncated native document posting id", err)
		}
		if _, err := io.ReadFull(r, posBuf[:]); err != nil {
			return nil, apperror.Wrap(apperror.Decode, "truncated native document position", err)
		}
		out = append(out, NativePosting{
			SeqID:    binary.LittleEndian.Uint32(idBuf[:]),
			Position: binary.LittleEndian.Uint32(posBuf[:]),
		})
	}
	return out, nil
}
