// Package store reads and writes xorpad artifacts on the local file system.
// Writes are atomic: output is staged in a temp file next to its destination and renamed into place.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/saylorsolutions/xorpad/pkg/pad"
)

const (
	// DefaultKeySuffix is appended to a cipher path to locate its key.
	DefaultKeySuffix = ".key"

	ownerReadWrite os.FileMode = 0o600
)

// KeyPath returns the sibling path holding the key for cipherPath.
func KeyPath(cipherPath, suffix string) string {
	return cipherPath + suffix
}

// ReadAll reads the whole file at path.
func ReadAll(path string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, pad.IOError(pad.StageRead, path, err)
	}
	return data, nil
}

// ReadPair reads the cipher at cipherPath and its sibling key.
func ReadPair(cipherPath, suffix string) (pad.Sealed, error) {
	cipher, err := ReadAll(cipherPath)
	if err != nil {
		return pad.Sealed{}, err
	}
	key, err := ReadAll(KeyPath(cipherPath, suffix))
	if err != nil {
		return pad.Sealed{}, err
	}
	return pad.Sealed{Cipher: cipher, Key: key}, nil
}

// WriteAll atomically replaces the file at path with data.
func WriteAll(path string, data []byte) error {
	staged, err := stage(path, data)
	if err != nil {
		return err
	}
	if err := staged.commit(); err != nil {
		staged.discard()
		return err
	}
	return nil
}

// WritePair writes the cipher to cipherPath and the key to its sibling path.
// Either both artifacts are written, or the previous state is left as it was.
func WritePair(cipherPath, suffix string, sealed pad.Sealed) error {
	if len(suffix) == 0 {
		return pad.IOError(pad.StageWrite, cipherPath, errors.New("key suffix must not be empty"))
	}
	keyPath := KeyPath(cipherPath, suffix)

	stagedCipher, err := stage(cipherPath, sealed.Cipher)
	if err != nil {
		return err
	}
	stagedKey, err := stage(keyPath, sealed.Key)
	if err != nil {
		stagedCipher.discard()
		return err
	}
	prev, err := setAside(cipherPath)
	if err != nil {
		stagedCipher.discard()
		stagedKey.discard()
		return err
	}

	if err := stagedCipher.commit(); err != nil {
		stagedCipher.discard()
		stagedKey.discard()
		prev.restore()
		return err
	}
	if err := stagedKey.commit(); err != nil {
		stagedKey.discard()
		prev.restore()
		return err
	}
	prev.release()
	return nil
}

// previous holds an existing file that was moved out of the way of a new one.
// An empty tmpName means nothing existed at dest.
type previous struct {
	tmpName string
	dest    string
}

func setAside(dest string) (*previous, error) {
	if _, err := os.Lstat(dest); errors.Is(err, os.ErrNotExist) {
		return &previous{dest: dest}, nil
	}
	tmp, err := os.CreateTemp(filepath.Dir(dest), ".xorpad-prev-*")
	if err != nil {
		return nil, pad.IOError(pad.StageWrite, dest, fmt.Errorf("reserving backup file: %w", err))
	}
	_ = tmp.Close()
	if err := os.Rename(dest, tmp.Name()); err != nil {
		_ = os.Remove(tmp.Name())
		return nil, pad.IOError(pad.StageWrite, dest, fmt.Errorf("moving existing file aside: %w", err))
	}
	return &previous{tmpName: tmp.Name(), dest: dest}, nil
}

// restore puts the previous file back at dest, or removes dest if there was none.
func (p *previous) restore() {
	if p.tmpName == "" {
		_ = os.Remove(p.dest)
		return
	}
	_ = os.Rename(p.tmpName, p.dest)
}

func (p *previous) release() {
	if p.tmpName != "" {
		_ = os.Remove(p.tmpName)
	}
}

// staged is a fully written temp file waiting to be renamed to its destination.
type staged struct {
	tmpName string
	dest    string
}

func stage(dest string, data []byte) (_ *staged, err error) {
	tmp, err := os.CreateTemp(filepath.Dir(dest), ".xorpad-*")
	if err != nil {
		return nil, pad.IOError(pad.StageWrite, dest, fmt.Errorf("creating temporary file: %w", err))
	}
	s := &staged{tmpName: tmp.Name(), dest: dest}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			s.discard()
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return nil, pad.IOError(pad.StageWrite, dest, fmt.Errorf("writing temporary file: %w", err))
	}
	if err := tmp.Chmod(ownerReadWrite); err != nil {
		return nil, pad.IOError(pad.StageWrite, dest, fmt.Errorf("setting file permissions: %w", err))
	}
	if err := tmp.Close(); err != nil {
		return nil, pad.IOError(pad.StageWrite, dest, fmt.Errorf("closing temporary file: %w", err))
	}
	return s, nil
}

func (s *staged) commit() error {
	if err := os.Rename(s.tmpName, s.dest); err != nil {
		return pad.IOError(pad.StageWrite, s.dest, fmt.Errorf("renaming output file: %w", err))
	}
	return nil
}

func (s *staged) discard() {
	_ = os.Remove(s.tmpName)
}
