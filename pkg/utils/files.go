// Package utils holds small helpers shared by the frontends.
package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
)

// LoadROM reads a ROM image from filename, transparently unpacking
// gzip, zip and 7z containers. Archives are expected to hold the image
// as their first entry.
func LoadROM(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".gz":
		r, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("utils: opening gzip %s: %w", filename, err)
		}
		defer r.Close()
		return io.ReadAll(r)
	case ".zip":
		r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, fmt.Errorf("utils: opening zip %s: %w", filename, err)
		}
		return readFirstEntry(r.File, filename)
	case ".7z":
		r, err := sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, fmt.Errorf("utils: opening 7z %s: %w", filename, err)
		}
		return readFirstEntry(r.File, filename)
	default:
		// .gb, .gbc, .bin and anything else are taken as raw images
		return data, nil
	}
}

type archiveFile interface {
	Open() (io.ReadCloser, error)
}

func readFirstEntry[F archiveFile](files []F, filename string) ([]byte, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("utils: archive %s is empty", filename)
	}
	rc, err := files[0].Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
