package block

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/cespare/xxhash/v2"
	"github.com/kevmo314/fint8/pkg/encoding"
	"github.com/kevmo314/fint8/pkg/fint8"
	"github.com/kevmo314/fint8/pkg/protocol"
)

var (
	ErrUnsupportedVersion = errors.New("unsupported version")
	ErrChecksumMismatch   = errors.New("checksum mismatch")
	ErrCorrupt            = errors.New("corrupt block")
)

// Block is an append-only batch of readings, each stored as one
// FloatingInt8. A Block is not safe for concurrent use.
type Block struct {
	Version protocol.Version

	Codes []fint8.FloatingInt8

	// Saturated counts the appended readings that were out of range.
	Saturated uint64

	Logger *slog.Logger
}

func New(logger *slog.Logger) *Block {
	if logger == nil {
		logger = slog.Default()
	}
	return &Block{
		Version: protocol.CurrentVersion,
		Codes:   []fint8.FloatingInt8{},
		Logger:  logger,
	}
}

// Append compresses v and adds it to the block. It returns false if v was
// saturated.
func (b *Block) Append(v uint64) bool {
	f, exact := fint8.Encode(v)
	if !exact {
		b.Saturated++
		b.Logger.Debug("saturated reading", slog.Uint64("value", v), slog.Int("index", len(b.Codes)))
	}
	b.Codes = append(b.Codes, f)
	return exact
}

func (b *Block) Len() int {
	return len(b.Codes)
}

// Values returns the decoded readings in append order.
func (b *Block) Values() []uint64 {
	values := make([]uint64, len(b.Codes))
	for i, f := range b.Codes {
		values[i] = fint8.Decode(f)
	}
	return values
}

// Checksum returns the xxhash64 of everything Serialize writes before the
// checksum itself.
func (b *Block) Checksum() uint64 {
	h := xxhash.New()
	// writes to a digest never fail
	_ = b.writeBody(h)
	return h.Sum64()
}

// Size returns the number of bytes Serialize writes.
func (b *Block) Size() int {
	return 1 +
		encoding.SizeVarint(uint64(len(b.Codes))) +
		encoding.SizeVarint(b.Saturated) +
		len(b.Codes) +
		8
}

func (b *Block) writeBody(w io.Writer) error {
	if err := encoding.WriteByte(w, byte(b.Version)); err != nil {
		return fmt.Errorf("failed to write version: %w", err)
	}

	bh := protocol.BlockHeader{
		SampleCount:    uint64(len(b.Codes)),
		SaturatedCount: b.Saturated,
	}
	if err := encoding.WriteUvarint(w, bh.SampleCount); err != nil {
		return fmt.Errorf("failed to write block header: %w", err)
	}
	if err := encoding.WriteUvarint(w, bh.SaturatedCount); err != nil {
		return fmt.Errorf("failed to write block header: %w", err)
	}

	for i, f := range b.Codes {
		// a decoded value always re-encodes to the same code
		if _, err := encoding.PackFint8(w, f.Uint64()); err != nil {
			return fmt.Errorf("failed to write code %d: %w", i, err)
		}
	}
	return nil
}

func (b *Block) Serialize(w io.Writer) error {
	h := xxhash.New()
	if err := b.writeBody(io.MultiWriter(w, h)); err != nil {
		return err
	}
	if err := encoding.WriteUint64(w, h.Sum64()); err != nil {
		return fmt.Errorf("failed to write checksum: %w", err)
	}

	b.Logger.Debug("serialized block", slog.Int("samples", len(b.Codes)), slog.Uint64("saturated", b.Saturated))
	return nil
}

func ReadBlock(r io.Reader, logger *slog.Logger) (*Block, error) {
	b := New(logger)

	// everything up to the checksum is hashed as it is read
	h := xxhash.New()
	tr := io.TeeReader(r, h)

	version, err := encoding.ReadByte(tr)
	if err != nil {
		return nil, fmt.Errorf("failed to read version: %w", err)
	}
	b.Version = protocol.Version(version)

	switch b.Version {
	case 1:
		var bh protocol.BlockHeader
		if bh.SampleCount, err = encoding.ReadUvarint(tr); err != nil {
			return nil, fmt.Errorf("failed to read block header: %w", err)
		}
		if bh.SaturatedCount, err = encoding.ReadUvarint(tr); err != nil {
			return nil, fmt.Errorf("failed to read block header: %w", err)
		}
		if bh.SaturatedCount > bh.SampleCount {
			return nil, fmt.Errorf("%w: %d saturated of %d samples", ErrCorrupt, bh.SaturatedCount, bh.SampleCount)
		}

		// grow with the data actually present rather than trusting the header
		for i := uint64(0); i < bh.SampleCount; i++ {
			v, err := encoding.UnpackFint8(tr)
			if err != nil {
				if errors.Is(err, io.EOF) {
					err = io.ErrUnexpectedEOF
				}
				return nil, fmt.Errorf("failed to read codes, got %d of %d: %w", i, bh.SampleCount, err)
			}
			f, _ := fint8.Encode(v)
			b.Codes = append(b.Codes, f)
		}

		checksum, err := encoding.ReadUint64(r)
		if err != nil {
			return nil, fmt.Errorf("failed to read checksum: %w", err)
		}
		if sum := h.Sum64(); sum != checksum {
			return nil, fmt.Errorf("%w: a %d, b %d", ErrChecksumMismatch, sum, checksum)
		}

		b.Saturated = bh.SaturatedCount
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}

	b.Logger.Debug("read block", slog.Int("samples", len(b.Codes)), slog.Uint64("saturated", b.Saturated))
	return b, nil
}
