package point

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Open opens path for reading and, based on its extension, wraps it in the
// matching decompressor:
//
//	.gz  → gzip
//	.zst → zstd
//	.lz4 → lz4
//
// Any other extension is returned as-is. Closing the result closes the file.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("point: gzip %s: %w", path, err)
		}
		return &stackedReader{Reader: zr, closers: []func() error{zr.Close, f.Close}}, nil
	case ".zst":
		zr, err := zstd.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("point: zstd %s: %w", path, err)
		}
		return &stackedReader{Reader: zr, closers: []func() error{
			func() error { zr.Close(); return nil },
			f.Close,
		}}, nil
	case ".lz4":
		return &stackedReader{Reader: lz4.NewReader(f), closers: []func() error{f.Close}}, nil
	default:
		return f, nil
	}
}

// Load opens path with Open and parses every point in it.
func Load(path string) ([]Point, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	pts, err := Parse(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return pts, nil
}

// Locate returns the first path in candidates that exists as a regular file.
// With no candidates, DefaultCandidates are probed.
func Locate(candidates ...string) (string, error) {
	if len(candidates) == 0 {
		candidates = DefaultCandidates
	}
	for _, c := range candidates {
		info, err := os.Stat(c)
		if err == nil && info.Mode().IsRegular() {
			return c, nil
		}
	}

	return "", fmt.Errorf("%w (tried %s)", ErrNoInput, strings.Join(candidates, ", "))
}

// stackedReader reads from the outermost decoder and closes every layer,
// innermost decoder first.
type stackedReader struct {
	io.Reader
	closers []func() error
}

func (s *stackedReader) Close() error {
	var errs []error
	for _, c := range s.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
