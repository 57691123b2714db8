package point_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/agglom/point"
)

const sample = "1,2,3\n\n  -4, 5 ,-6  \n7,8,9\n"

var samplePoints = []point.Point{{X: 1, Y: 2, Z: 3}, {X: -4, Y: 5, Z: -6}, {X: 7, Y: 8, Z: 9}}

// TestParseLine_Errors verifies every malformed-line class maps to its sentinel.
func TestParseLine_Errors(t *testing.T) {
	cases := []struct {
		name string
		line string
		err  error
	}{
		{"TwoFields", "1,2", point.ErrArity},
		{"FourFields", "1,2,3,4", point.ErrArity},
		{"Empty", "", point.ErrArity},
		{"NotInteger", "1,x,3", point.ErrCoordinate},
		{"Float", "1,2.5,3", point.ErrCoordinate},
		{"TooLarge", "1,2,536870913", point.ErrRange},
		{"TooSmall", "-536870913,2,3", point.ErrRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := point.ParseLine(tc.line)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestParseLine_Bounds accepts coordinates exactly at ±MaxCoordinate.
func TestParseLine_Bounds(t *testing.T) {
	p, err := point.ParseLine("536870912,-536870912,0")
	require.NoError(t, err)
	assert.Equal(t, point.Point{X: point.MaxCoordinate, Y: -point.MaxCoordinate}, p)
}

// TestParse keeps duplicates, skips blank lines and preserves input order.
func TestParse(t *testing.T) {
	pts, err := point.ParseString(sample + "1,2,3\n")
	require.NoError(t, err)

	want := append(append([]point.Point{}, samplePoints...), point.Point{X: 1, Y: 2, Z: 3})
	if diff := cmp.Diff(want, pts); diff != "" {
		t.Errorf("ParseString mismatch (-want +got):\n%s", diff)
	}
}

// TestParse_LineNumber reports the 1-based line of the first bad record.
func TestParse_LineNumber(t *testing.T) {
	_, err := point.ParseString("1,2,3\n\n4,5\n")
	require.ErrorIs(t, err, point.ErrArity)
	assert.Contains(t, err.Error(), "line 3")
}

// TestParse_Empty yields no points and no error.
func TestParse_Empty(t *testing.T) {
	pts, err := point.ParseString("\n  \n")
	require.NoError(t, err)
	assert.Empty(t, pts)
}

// TestPoint_String round-trips through ParseLine.
func TestPoint_String(t *testing.T) {
	p := point.Point{X: -1, Y: 0, Z: 42}
	assert.Equal(t, "-1,0,42", p.String())

	back, err := point.ParseLine(p.String())
	require.NoError(t, err)
	assert.Equal(t, p, back)
}

// TestLoad_Compressed loads the same content from every supported encoding.
func TestLoad_Compressed(t *testing.T) {
	dir := t.TempDir()
	encoders := map[string]func(w io.Writer) (io.WriteCloser, error){
		"plain.txt": func(w io.Writer) (io.WriteCloser, error) { return nopWriteCloser{w}, nil },
		"in.gz":     func(w io.Writer) (io.WriteCloser, error) { return gzip.NewWriter(w), nil },
		"in.zst":    func(w io.Writer) (io.WriteCloser, error) { return zstd.NewWriter(w) },
		"in.lz4":    func(w io.Writer) (io.WriteCloser, error) { return lz4.NewWriter(w), nil },
	}
	for name, enc := range encoders {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			w, err := enc(&buf)
			require.NoError(t, err)
			_, err = w.Write([]byte(sample))
			require.NoError(t, err)
			require.NoError(t, w.Close())

			path := filepath.Join(dir, name)
			require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

			pts, err := point.Load(path)
			require.NoError(t, err)
			if diff := cmp.Diff(samplePoints, pts); diff != "" {
				t.Errorf("Load(%s) mismatch (-want +got):\n%s", name, diff)
			}
		})
	}
}

// TestLoad_Missing surfaces the os error for an absent file.
func TestLoad_Missing(t *testing.T) {
	_, err := point.Load(filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestLocate picks the first existing candidate and skips directories.
func TestLocate(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0o700))
	second := filepath.Join(dir, "second.txt")
	third := filepath.Join(dir, "third.txt")
	require.NoError(t, os.WriteFile(second, []byte(sample), 0o600))
	require.NoError(t, os.WriteFile(third, []byte(sample), 0o600))

	got, err := point.Locate(filepath.Join(dir, "missing.txt"), sub, second, third)
	require.NoError(t, err)
	assert.Equal(t, second, got)

	_, err = point.Locate(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, point.ErrNoInput)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
