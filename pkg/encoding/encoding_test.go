package encoding

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestEncoding(t *testing.T) {
	t.Run("byte encoding", func(t *testing.T) {
		b := byte(1)
		buf := &bytes.Buffer{}
		if err := WriteByte(buf, b); err != nil {
			t.Fatal(err)
		}
		b2, err := ReadByte(buf)
		if err != nil {
			t.Fatal(err)
		}
		if b != b2 {
			t.Errorf("expected %v, got %v", b, b2)
		}
	})

	t.Run("uint64 encoding", func(t *testing.T) {
		u := uint64(1)
		buf := &bytes.Buffer{}
		if err := WriteUint64(buf, u); err != nil {
			t.Fatal(err)
		}
		u2, err := ReadUint64(buf)
		if err != nil {
			t.Fatal(err)
		}
		if u != u2 {
			t.Errorf("expected %v, got %v", u, u2)
		}
	})

	t.Run("uvarint encoding", func(t *testing.T) {
		for _, u := range []uint64{0, 127, 128, 516095, 1<<63 + 5} {
			buf := &bytes.Buffer{}
			if err := WriteUvarint(buf, u); err != nil {
				t.Fatal(err)
			}
			if buf.Len() != SizeVarint(u) {
				t.Errorf("wrote %d bytes for %d, SizeVarint = %d", buf.Len(), u, SizeVarint(u))
			}
			// hide the ByteReader implementation of bytes.Buffer
			u2, err := ReadUvarint(struct{ io.Reader }{buf})
			if err != nil {
				t.Fatal(err)
			}
			if u != u2 {
				t.Errorf("expected %v, got %v", u, u2)
			}
		}
	})

	t.Run("uvarint leaves the reader positioned", func(t *testing.T) {
		buf := &bytes.Buffer{}
		if err := WriteUvarint(buf, 300); err != nil {
			t.Fatal(err)
		}
		if err := WriteByte(buf, 7); err != nil {
			t.Fatal(err)
		}
		r := struct{ io.Reader }{buf}
		if _, err := ReadUvarint(r); err != nil {
			t.Fatal(err)
		}
		if b, err := ReadByte(r); err != nil || b != 7 {
			t.Errorf("expected 7, got %v (%v)", b, err)
		}
	})

	t.Run("fint8 encoding", func(t *testing.T) {
		buf := &bytes.Buffer{}
		exact, err := PackFint8(buf, 41)
		if err != nil {
			t.Fatal(err)
		}
		if !exact {
			t.Errorf("expected 41 to be in range")
		}
		if !bytes.Equal(buf.Bytes(), []byte{0x25}) {
			t.Errorf("expected 0x25, got %x", buf.Bytes())
		}
		v, err := UnpackFint8(buf)
		if err != nil {
			t.Fatal(err)
		}
		if v != 42 {
			t.Errorf("expected 42, got %v", v)
		}
	})

	t.Run("fint8 saturation", func(t *testing.T) {
		buf := &bytes.Buffer{}
		exact, err := PackFint8(buf, 1<<32)
		if err != nil {
			t.Fatal(err)
		}
		if exact {
			t.Errorf("expected 1<<32 to saturate")
		}
		v, err := UnpackFint8(buf)
		if err != nil {
			t.Fatal(err)
		}
		if v != 507904 {
			t.Errorf("expected 507904, got %v", v)
		}
	})

	t.Run("empty reader", func(t *testing.T) {
		if _, err := UnpackFint8(&bytes.Buffer{}); !errors.Is(err, io.EOF) {
			t.Errorf("expected EOF, got %v", err)
		}
	})
}
