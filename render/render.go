// Package render writes a QR symbol matrix to one of several file
// formats: ASCII PPM (P1), SVG 1.1, EPS 3.0, and a plain-text console
// grid. It depends only on the read-only Matrix interface, never on
// coding.Canvas directly, so any caller can render its own grid
// implementation too.
//
// Grounded on original_source/myqro's Outputter hierarchy
// (outputter.hpp/cpp: ConsoleOutputter, ImprintOutputter,
// PBMOutputter, SvgOutputter, EpsOutputter) and on the teacher's
// EncodePBM (pbm.go) for the bufio.Writer idiom, adapted to the
// byte-per-cell Canvas model instead of a packed bitmap and to the
// ASCII PPM P1 format myqro uses instead of the teacher's binary PBM
// P4.
package render

import (
	"bufio"
	"fmt"
	"io"
)

// Matrix is the read-only view a renderer needs into a finished QR
// symbol, grounded on myqro's Canvas public accessors (Size, Version,
// At, IsInside).
type Matrix interface {
	Size() int
	Version() int
	At(row, col int) bool
	IsInside(row, col int) bool
}

// Options controls the border and pixel scale every renderer applies,
// grounded on myqro's OutputOptions{scale, indent}.
type Options struct {
	Scale  int
	Indent int
}

// DefaultOptions mirrors myqro's OutputOptions default constructor
// (scale=1, indent=4).
var DefaultOptions = Options{Scale: 1, Indent: 4}

func (o Options) normalize() Options {
	if o.Scale < 1 {
		o.Scale = 1
	}
	if o.Indent < 0 {
		o.Indent = 0
	}
	return o
}

// side returns the rendered image's side length in pixels, after
// scale and indent.
func side(m Matrix, o Options) int {
	return (m.Size() + 2*o.Indent) * o.Scale
}

// moduleAt reports whether the rendered pixel at (row,col) (already in
// scaled+indented output coordinates) is dark.
func moduleAt(m Matrix, o Options, row, col int) bool {
	r := row/o.Scale - o.Indent
	c := col/o.Scale - o.Indent
	return m.IsInside(r, c) && m.At(r, c)
}

// PPM writes an ASCII Portable Bitmap (P1) image of m to w, grounded
// on myqro's PBMOutputter.
func PPM(w io.Writer, m Matrix, o Options) error {
	o = o.normalize()
	b := bufio.NewWriter(w)
	size := side(m, o)
	if _, err := fmt.Fprintf(b, "P1\n%d %d\n", size, size); err != nil {
		return err
	}
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			ch := byte('0')
			if moduleAt(m, o, row, col) {
				ch = '1'
			}
			if err := b.WriteByte(ch); err != nil {
				return err
			}
		}
		if err := b.WriteByte('\n'); err != nil {
			return err
		}
	}
	return b.Flush()
}

// Text writes a plain space/# grid of m to w, grounded on myqro's
// ConsoleOutputter.
func Text(w io.Writer, m Matrix, o Options) error {
	o = o.normalize()
	b := bufio.NewWriter(w)
	size := side(m, o)
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			ch := byte(' ')
			if moduleAt(m, o, row, col) {
				ch = '#'
			}
			if err := b.WriteByte(ch); err != nil {
				return err
			}
		}
		if err := b.WriteByte('\n'); err != nil {
			return err
		}
	}
	return b.Flush()
}

// SVG writes an SVG 1.1 document of m to w as a single path of unit
// squares, grounded on myqro's SvgOutputter. Scale is not applied:
// SVG output is already vector, so Scale is meaningless here; only
// Indent is honored.
func SVG(w io.Writer, m Matrix, o Options) error {
	o = o.normalize()
	b := bufio.NewWriter(w)
	size := m.Size() + 2*o.Indent
	fmt.Fprintf(b, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	fmt.Fprintf(b, "<!DOCTYPE svg PUBLIC \"-//W3C//DTD SVG 1.1//EN\" \"http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd\">\n")
	fmt.Fprintf(b, "<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" viewBox=\"0 0 %d %d\" stroke=\"none\">\n", size, size)
	fmt.Fprintf(b, "<rect width=\"100%%\" height=\"100%%\" fill=\"#FFFFFF\"/>\n")
	if _, err := b.WriteString("<path d=\""); err != nil {
		return err
	}
	for row := 0; row < m.Size(); row++ {
		for col := 0; col < m.Size(); col++ {
			if !m.At(row, col) {
				continue
			}
			fmt.Fprintf(b, "M%d,%dh1v1h-1z ", col+o.Indent, row+o.Indent)
		}
	}
	if _, err := b.WriteString("\" fill=\"#000000\"/></svg>\n"); err != nil {
		return err
	}
	return b.Flush()
}

// EPS writes an EPS 3.0 document of m to w as a white background
// rectangle plus one unit-square rectfill per dark module, grounded on
// myqro's EpsOutputter.
func EPS(w io.Writer, m Matrix, o Options) error {
	o = o.normalize()
	b := bufio.NewWriter(w)
	llx, lly := -o.Indent, -o.Indent
	urx, ury := m.Size()+o.Indent, m.Size()+o.Indent

	fmt.Fprintf(b, "%%!PS-Adobe-3.0 EPSF-3.0\n")
	fmt.Fprintf(b, "%%%%BoundingBox: %d %d %d %d\n", llx, lly, urx, ury)
	fmt.Fprintf(b, "%%%%Title: QR code generated by qrforge\n")
	fmt.Fprintf(b, "%%%%EndComments\n")
	fmt.Fprintf(b, "1.0 1.0 1.0 setrgbcolor\n")
	fmt.Fprintf(b, "%d %d %d %d rectfill\n", llx, lly, urx-llx, ury-lly)
	fmt.Fprintf(b, "0.0 0.0 0.0 setrgbcolor\n")
	for row := 0; row < m.Size(); row++ {
		for col := 0; col < m.Size(); col++ {
			if !m.At(row, col) {
				continue
			}
			fmt.Fprintf(b, "%d %d 1 1 rectfill\n", col, m.Size()-1-row)
		}
	}
	if _, err := b.WriteString("%%EOF\n"); err != nil {
		return err
	}
	return b.Flush()
}
