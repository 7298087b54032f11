package protocol

/*
A sample block file is structured as:

+-----------------------+
| Version               |
+-----------------------+
| BlockHeader           |
+-----------------------+
| Code                  |
+-----------------------+
|        ...            |
+-----------------------+
| Code                  |
+-----------------------+
| Checksum              |
+-----------------------+

Each Code is one FloatingInt8 with the shift in the high nibble and the
mantissa in the low nibble. Checksum is the big-endian xxhash64 of every byte
before it, version and header included.
*/

// Version is the version of the sample block format.
type Version byte

const CurrentVersion Version = 1

// BlockHeader is the header of a sample block. Both fields are written as
// uvarints.
type BlockHeader struct {
	// SampleCount represents the number of codes that follow the header.
	SampleCount uint64

	// SaturatedCount represents the number of samples that were larger than
	// the codec's range when they were appended. It never exceeds SampleCount.
	SaturatedCount uint64
}
