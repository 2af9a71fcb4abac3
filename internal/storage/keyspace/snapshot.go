package keyspace

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

// Snapshot writes every entry to path, truncating any existing file.
// The shared lock is held for the whole iteration, so the file is a
// consistent point-in-time view; concurrent writers wait. On error a
// partial file may remain; it is not cleaned up.
func (s *Store) Snapshot(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("keyspace: open snapshot %s: %w", path, err)
	}

	bw := bufio.NewWriter(f)

	s.mu.RLock()
	werr := func() error {
		var lenBuf [8]byte
		for k, v := range s.data {
			if err := writeRecordField(bw, &lenBuf, k); err != nil {
				return err
			}
			if err := writeRecordField(bw, &lenBuf, v); err != nil {
				return err
			}
		}
		return bw.Flush()
	}()
	s.mu.RUnlock()

	if werr != nil {
		f.Close()
		return fmt.Errorf("keyspace: write snapshot %s: %w", path, werr)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("keyspace: close snapshot %s: %w", path, err)
	}
	return nil
}

func writeRecordField(w *bufio.Writer, lenBuf *[8]byte, field string) error {
	binary.LittleEndian.PutUint64(lenBuf[:], uint64(len(field)))
	if _, err := w.Write(lenBuf[:]); err != nil {
		return err
	}
	_, err := w.WriteString(field)
	return err
}

// restore replaces the map contents with the records found at path.
// It runs once, at construction, under the exclusive lock. A missing
// file is not an error. Loading stops silently at the first record that
// cannot be read in full.
func (s *Store) restore(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("keyspace: open snapshot %s: %w", path, err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return fmt.Errorf("keyspace: stat snapshot %s: %w", path, err)
	}
	remaining := stat.Size()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make(map[string]string)

	br := bufio.NewReader(f)
	for {
		key, ok := readRecordField(br, &remaining)
		if !ok {
			return nil
		}
		value, ok := readRecordField(br, &remaining)
		if !ok {
			return nil
		}
		s.data[key] = value
	}
}

// readRecordField reads one length-prefixed field, returning ok=false at
// end-of-file or on a truncated record. A declared length larger than the
// bytes left in the file counts as truncation; the check also bounds the
// allocation for corrupt length words.
func readRecordField(br *bufio.Reader, remaining *int64) (string, bool) {
	var lenBuf [8]byte
	if _, err := io.ReadFull(br, lenBuf[:]); err != nil {
		return "", false
	}
	*remaining -= 8

	n := binary.LittleEndian.Uint64(lenBuf[:])
	if n > uint64(*remaining) {
		return "", false
	}

	field := make([]byte, n)
	if _, err := io.ReadFull(br, field); err != nil {
		return "", false
	}
	*remaining -= int64(n)
	return string(field), true
}
