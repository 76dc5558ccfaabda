package iconforge

import (
	"bytes"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strconv"

	"github.com/dustin/go-humanize"
)

// DefaultSizes are the icon sizes a browser extension package expects.
var DefaultSizes = []int{16, 48, 128}

// Result describes one written icon file.
type Result struct {
	Size   int
	Path   string
	Format Format
	Bytes  int64
}

// String returns the confirmation line for the written file.
func (r Result) String() string {
	return fmt.Sprintf("Created %s (%dx%d)", r.Path, r.Size, r.Size)
}

// Create renders an icon of the given size and writes it to name,
// overwriting any existing file. The format comes from WithFormat or,
// failing that, from the file name's extension.
func Create(size int, name string, opts ...Option) (Result, error) {
	o := newOptions(opts)
	var (
		f   Format
		err error
	)
	if o.format == "" {
		f, err = FormatFromPath(name)
	} else {
		f, err = ParseFormat(string(o.format))
	}
	if err != nil {
		return Result{}, err
	}

	g, err := Layout(size, o.lines)
	if err != nil {
		return Result{}, err
	}
	return create(g, name, f, o)
}

func create(g Geometry, name string, f Format, o options) (Result, error) {
	img, err := render(g, o)
	if err != nil {
		return Result{}, err
	}

	var buf bytes.Buffer
	if err := Encode(&buf, img, f); err != nil {
		return Result{}, fmt.Errorf("iconforge: encode %s: %w", name, err)
	}
	if err := os.WriteFile(name, buf.Bytes(), 0o644); err != nil { //nolint:gosec // icons are public assets
		return Result{}, fmt.Errorf("iconforge: write %s: %w", name, err)
	}

	res := Result{Size: g.Size, Path: name, Format: f, Bytes: int64(buf.Len())}
	Logger().Info("icon written", "path", name, "size", g.Size, "bytes", humanize.Bytes(uint64(res.Bytes)))
	return res, nil
}

// CreateSet writes one icon per size into dir, named like "icon16.png".
// Every size and the format are checked before anything is drawn, so an
// invalid request writes no files. Writing stops at the first error; the
// results of the icons already written are returned with it.
func CreateSet(dir string, sizes []int, opts ...Option) ([]Result, error) {
	o := newOptions(opts)
	f := o.format
	if f == "" {
		f = FormatPNG
	}
	f, err := ParseFormat(string(f))
	if err != nil {
		return nil, err
	}

	geoms := make([]Geometry, 0, len(sizes))
	for _, size := range sizes {
		g, err := Layout(size, o.lines)
		if err != nil {
			return nil, err
		}
		geoms = append(geoms, g)
	}

	results := make([]Result, 0, len(geoms))
	for _, g := range geoms {
		res, err := create(g, filepath.Join(dir, f.FileName(g.Size)), f, o)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

// Manifest maps each icon size to its file name under prefix, the shape a
// browser extension manifest expects for "icons" and "action.default_icon".
// Paths in a manifest always use forward slashes.
func Manifest(results []Result, prefix string) map[string]string {
	m := make(map[string]string, len(results))
	for _, r := range results {
		m[strconv.Itoa(r.Size)] = path.Join(prefix, filepath.Base(r.Path))
	}
	return m
}
