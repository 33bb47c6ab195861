package snapshot

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io"

	"github.com/arloliu/catenc/compress"
	"github.com/arloliu/catenc/errs"
	"github.com/arloliu/catenc/format"
	"github.com/arloliu/catenc/internal/hash"
	"github.com/arloliu/catenc/missing"
	"github.com/arloliu/catenc/scheme"
)

// Payload is the serialized state of an encoding pipeline: the fitted
// strategy and missing-value handler as opaque objects plus the version the
// snapshot was written with.
//
// A nil Handler is legal and decodes as "absent"; loaders substitute a fresh
// default handler.
type Payload struct {
	// Version mirrors the header format version at write time. Snapshots
	// predating versioning decode with Version 0; no decode logic branches
	// on the value yet.
	Version int
	// Scheme is the registry name of the strategy.
	Scheme string
	// Encoder is the strategy instance, including any fitted state. Its
	// concrete type must be gob-registered, which scheme.Register does.
	Encoder scheme.Strategy
	// Handler is the missing-value handler instance, or nil if absent.
	Handler *missing.Handler
}

// Write serializes the payload to w: gob-encode, compress with the given
// codec, then emit the header (carrying the payload checksum) followed by
// the stored payload bytes.
func Write(w io.Writer, payload *Payload, compression format.CompressionType) error {
	codec, err := compress.GetCodec(compression)
	if err != nil {
		return err
	}

	var raw bytes.Buffer
	if err := gob.NewEncoder(&raw).Encode(payload); err != nil {
		return fmt.Errorf("encode snapshot payload: %w", err)
	}

	stored, err := codec.Compress(raw.Bytes())
	if err != nil {
		return fmt.Errorf("compress snapshot payload: %w", err)
	}

	header := &Header{
		Version:     FormatVersion,
		Compression: compression,
		Checksum:    hash.Sum(stored),
		PayloadSize: uint32(len(stored)),
		Scheme:      payload.Scheme,
	}
	headerBytes, err := header.Bytes()
	if err != nil {
		return err
	}

	if _, err := w.Write(headerBytes); err != nil {
		return fmt.Errorf("write snapshot header: %w", err)
	}
	if _, err := w.Write(stored); err != nil {
		return fmt.Errorf("write snapshot payload: %w", err)
	}

	return nil
}

// Read parses a snapshot from r and decodes its payload.
//
// The stored payload bytes are verified against the header checksum before
// decompression; corruption surfaces as ErrChecksumMismatch rather than a
// codec error deep inside decompression.
func Read(r io.Reader) (*Payload, error) {
	header, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}

	stored := make([]byte, header.PayloadSize)
	if _, err := io.ReadFull(r, stored); err != nil {
		return nil, fmt.Errorf("%w: truncated payload: %w", errs.ErrInvalidSnapshot, err)
	}
	if sum := hash.Sum(stored); sum != header.Checksum {
		return nil, fmt.Errorf("%w: header 0x%016x, payload 0x%016x",
			errs.ErrChecksumMismatch, header.Checksum, sum)
	}

	codec, err := compress.GetCodec(header.Compression)
	if err != nil {
		return nil, err
	}
	raw, err := codec.Decompress(stored)
	if err != nil {
		return nil, fmt.Errorf("decompress snapshot payload: %w", err)
	}

	payload := &Payload{}
	if err := gob.NewDecoder(bytes.NewReader(raw)).Decode(payload); err != nil {
		return nil, fmt.Errorf("%w: decode payload: %w", errs.ErrInvalidSnapshot, err)
	}
	if payload.Encoder == nil {
		return nil, fmt.Errorf("%w: payload has no encoder", errs.ErrInvalidSnapshot)
	}
	if payload.Scheme == "" {
		payload.Scheme = header.Scheme
	}

	return payload, nil
}
