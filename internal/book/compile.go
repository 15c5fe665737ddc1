package book

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Stats summarises a compiled book.
type Stats struct {
	Positions int
	Records   int
	Bytes     int64
}

// WriteEntries writes one record per entry, in order.
func WriteEntries(w io.Writer, entries []Entry) error {
	var buf [RecordSize]byte
	for _, e := range entries {
		PutRecord(buf[:], e)
		if _, err := w.Write(buf[:]); err != nil {
			return err
		}
	}
	return nil
}

// ReadEntries reads records until EOF. A trailing partial record yields
// ErrTruncated along with the entries decoded so far.
func ReadEntries(r io.Reader) ([]Entry, error) {
	br := bufio.NewReader(r)
	var (
		out []Entry
		buf [RecordSize]byte
	)
	for {
		_, err := io.ReadFull(br, buf[:])
		if err == io.EOF {
			return out, nil
		}
		if err == io.ErrUnexpectedEOF {
			return out, ErrTruncated
		}
		if err != nil {
			return out, err
		}
		e, _ := DecodeRecord(buf[:])
		out = append(out, e)
	}
}

// Compile converts the JSON book at jsonPath into a binary book at binPath.
//
// The output is written to a temporary file next to binPath and renamed into
// place, so on any error binPath is left untouched. A missing source yields
// an error wrapping ErrSourceMissing.
func Compile(jsonPath, binPath string) (Stats, error) {
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Stats{}, fmt.Errorf("%w: %s", ErrSourceMissing, jsonPath)
		}
		return Stats{}, fmt.Errorf("read book json: %w", err)
	}

	entries, err := ParseJSON(data)
	if err != nil {
		return Stats{}, err
	}

	if err := writeFileAtomic(binPath, entries); err != nil {
		return Stats{}, err
	}
	return statsOf(entries), nil
}

func statsOf(entries []Entry) Stats {
	positions := make(map[uint64]struct{})
	for _, e := range entries {
		positions[e.Hash] = struct{}{}
	}
	return Stats{
		Positions: len(positions),
		Records:   len(entries),
		Bytes:     int64(len(entries)) * RecordSize,
	}
}

func writeFileAtomic(path string, entries []Entry) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("create book file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	w := bufio.NewWriter(tmp)
	if err = WriteEntries(w, entries); err != nil {
		return fmt.Errorf("write book: %w", err)
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("write book: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close book file: %w", err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod book file: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename book file: %w", err)
	}
	return nil
}
