package encoding

import (
	"encoding/binary"
	"io"

	"github.com/kevmo314/fint8/pkg/fint8"
)

func WriteByte(w io.Writer, b byte) error {
	_, err := w.Write([]byte{b})
	return err
}

func WriteUint64(w io.Writer, u uint64) error {
	return binary.Write(w, binary.BigEndian, u)
}

func WriteUvarint(w io.Writer, u uint64) error {
	_, err := w.Write(binary.AppendUvarint(make([]byte, 0, SizeVarint(u)), u))
	return err
}

// PackFint8 writes v as a single FloatingInt8. The returned boolean is false
// if v was out of range and the saturated encoding was written instead.
func PackFint8(w io.Writer, v uint64) (bool, error) {
	f, exact := fint8.Encode(v)
	return exact, WriteByte(w, byte(f))
}

func ReadByte(r io.Reader) (byte, error) {
	b := make([]byte, 1)
	if _, err := io.ReadFull(r, b); err != nil {
		return 0, err
	}
	return b[0], nil
}

func ReadUint64(r io.Reader) (uint64, error) {
	var u uint64
	if err := binary.Read(r, binary.BigEndian, &u); err != nil {
		return 0, err
	}
	return u, nil
}

func ReadUvarint(r io.Reader) (uint64, error) {
	if br, ok := r.(io.ByteReader); ok {
		return binary.ReadUvarint(br)
	}
	return binary.ReadUvarint(byteReader{r})
}

func UnpackFint8(r io.Reader) (uint64, error) {
	b, err := ReadByte(r)
	if err != nil {
		return 0, err
	}
	return fint8.Decode(fint8.FloatingInt8(b)), nil
}

// byteReader reads one byte at a time without buffering past the varint, so
// r stays positioned for the next field.
type byteReader struct {
	io.Reader
}

func (b byteReader) ReadByte() (byte, error) {
	return ReadByte(b.Reader)
}
