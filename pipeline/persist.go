package pipeline

import (
	"fmt"
	"io"
	"os"

	"github.com/arloliu/catenc/snapshot"
)

// SaveTo serializes the manager's fitted pair as a snapshot into w.
//
// The payload bundles the strategy and handler instances as opaque fitted
// objects together with the current format version and the scheme name. No
// fitted-state validation is performed: an unfit manager saves fine and
// loads back as an unfit manager.
func (m *Manager) SaveTo(w io.Writer) error {
	payload := &snapshot.Payload{
		Version: int(snapshot.FormatVersion),
		Scheme:  m.scheme,
		Encoder: m.strategy,
		Handler: m.handler,
	}

	return snapshot.Write(w, payload, m.compression)
}

// Save writes the manager's snapshot to a file, replacing any existing file
// at path.
func (m *Manager) Save(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot file: %w", err)
	}

	if err := m.SaveTo(file); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}

// Read reconstructs a manager from a snapshot stream.
//
// The scheme name persisted in the snapshot resolves through the registry
// exactly like ordinary construction, so loading a snapshot of an
// unregistered scheme fails with ErrUnknownScheme. The placeholder strategy
// and handler created during construction are then replaced by the decoded
// fitted instances; a snapshot without a handler yields a fresh default
// handler instead.
//
// Construction options (profiler injection, snapshot compression for later
// saves) apply to the reconstructed manager as usual.
func Read(r io.Reader, opts ...Option) (*Manager, error) {
	payload, err := snapshot.Read(r)
	if err != nil {
		return nil, err
	}

	manager, err := New(payload.Scheme, opts...)
	if err != nil {
		return nil, err
	}

	manager.strategy = payload.Encoder
	if payload.Handler != nil {
		manager.handler = payload.Handler
	}

	return manager, nil
}

// Load reconstructs a manager from a snapshot file written by Save.
func Load(path string, opts ...Option) (*Manager, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot file: %w", err)
	}
	defer file.Close()

	return Read(file, opts...)
}
