package snapshot

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/arloliu/catenc/errs"
	"github.com/arloliu/catenc/format"
)

// Magic identifies a catenc snapshot ("CENC" in ASCII).
const Magic uint32 = 0x434E4543

// FormatVersion is the snapshot format version written by this library.
const FormatVersion uint16 = 1

// fixedHeaderSize is the byte size of the header before the scheme name.
const fixedHeaderSize = 22

// Header is the fixed-layout prefix of every snapshot.
type Header struct {
	// Version is the snapshot format version.
	Version uint16
	// Compression is the codec applied to the payload bytes.
	Compression format.CompressionType
	// Checksum is the xxHash64 of the stored (compressed) payload bytes.
	Checksum uint64
	// PayloadSize is the stored payload size in bytes.
	PayloadSize uint32
	// Scheme is the registry name of the persisted strategy.
	Scheme string
}

// Bytes serializes the header into its binary layout.
//
// Returns:
//   - []byte: Serialized header (fixedHeaderSize + scheme name bytes)
//   - error: ErrInvalidSnapshot if the scheme name exceeds 65535 bytes
func (h *Header) Bytes() ([]byte, error) {
	if len(h.Scheme) > math.MaxUint16 {
		return nil, fmt.Errorf("%w: scheme name too long (%d bytes)", errs.ErrInvalidSnapshot, len(h.Scheme))
	}

	buf := make([]byte, fixedHeaderSize+len(h.Scheme))
	binary.LittleEndian.PutUint32(buf[0:4], Magic)
	binary.LittleEndian.PutUint16(buf[4:6], h.Version)
	buf[6] = byte(h.Compression)
	buf[7] = 0 // reserved
	binary.LittleEndian.PutUint64(buf[8:16], h.Checksum)
	binary.LittleEndian.PutUint32(buf[16:20], h.PayloadSize)
	binary.LittleEndian.PutUint16(buf[20:22], uint16(len(h.Scheme)))
	copy(buf[fixedHeaderSize:], h.Scheme)

	return buf, nil
}

// ReadHeader parses a snapshot header from r.
//
// Returns:
//   - *Header: Parsed header.
//   - error: ErrInvalidSnapshot on a truncated header or wrong magic number,
//     ErrUnsupportedVersion for versions newer than FormatVersion,
//     ErrInvalidCompression for unknown codec bytes.
func ReadHeader(r io.Reader) (*Header, error) {
	fixed := make([]byte, fixedHeaderSize)
	if _, err := io.ReadFull(r, fixed); err != nil {
		return nil, fmt.Errorf("%w: truncated header: %w", errs.ErrInvalidSnapshot, err)
	}

	if magic := binary.LittleEndian.Uint32(fixed[0:4]); magic != Magic {
		return nil, fmt.Errorf("%w: bad magic number 0x%08x", errs.ErrInvalidSnapshot, magic)
	}

	header := &Header{
		Version:     binary.LittleEndian.Uint16(fixed[4:6]),
		Compression: format.CompressionType(fixed[6]),
		Checksum:    binary.LittleEndian.Uint64(fixed[8:16]),
		PayloadSize: binary.LittleEndian.Uint32(fixed[16:20]),
	}
	if header.Version > FormatVersion {
		return nil, fmt.Errorf("%w: snapshot version %d, library supports up to %d",
			errs.ErrUnsupportedVersion, header.Version, FormatVersion)
	}
	if !header.Compression.Valid() {
		return nil, fmt.Errorf("%w: 0x%02x", errs.ErrInvalidCompression, fixed[6])
	}

	schemeLen := binary.LittleEndian.Uint16(fixed[20:22])
	scheme := make([]byte, schemeLen)
	if _, err := io.ReadFull(r, scheme); err != nil {
		return nil, fmt.Errorf("%w: truncated scheme name: %w", errs.ErrInvalidSnapshot, err)
	}
	header.Scheme = string(scheme)

	return header, nil
}
