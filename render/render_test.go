package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// grid is a tiny hand-built Matrix for exercising the renderers without
// depending on the coding package.
type grid struct {
	size int
	dark map[[2]int]bool
}

func (g *grid) Size() int    { return g.size }
func (g *grid) Version() int { return 1 }
func (g *grid) IsInside(r, c int) bool {
	return r >= 0 && r < g.size && c >= 0 && c < g.size
}
func (g *grid) At(r, c int) bool { return g.dark[[2]int{r, c}] }

func checkerboard(size int) *grid {
	g := &grid{size: size, dark: map[[2]int]bool{}}
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if (r+c)%2 == 0 {
				g.dark[[2]int{r, c}] = true
			}
		}
	}
	return g
}

func TestPPMHeaderDimensionsIncludeIndentAndScale(t *testing.T) {
	g := checkerboard(3)
	var buf bytes.Buffer
	require.NoError(t, PPM(&buf, g, Options{Scale: 2, Indent: 1}))
	lines := strings.SplitN(buf.String(), "\n", 3)
	require.Equal(t, "P1", lines[0])
	// (3 + 2*1) * 2 = 10
	require.Equal(t, "10 10", lines[1])
}

func TestPPMQuietZoneIsAllLight(t *testing.T) {
	g := checkerboard(1)
	g.dark[[2]int{0, 0}] = true
	var buf bytes.Buffer
	require.NoError(t, PPM(&buf, g, Options{Scale: 1, Indent: 2}))
	rows := strings.Split(strings.TrimSpace(buf.String()), "\n")[2:]
	require.Equal(t, "00000", rows[0])
}

func TestTextRendersHashForDarkModules(t *testing.T) {
	g := &grid{size: 1, dark: map[[2]int]bool{{0, 0}: true}}
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, g, Options{Scale: 1, Indent: 0}))
	require.Equal(t, "#\n", buf.String())
}

func TestSVGContainsOneRectPerDarkModule(t *testing.T) {
	g := &grid{size: 2, dark: map[[2]int]bool{{0, 0}: true, {1, 1}: true}}
	var buf bytes.Buffer
	require.NoError(t, SVG(&buf, g, Options{Indent: 0}))
	out := buf.String()
	require.Equal(t, 2, strings.Count(out, "h1v1h-1z"))
}

func TestEPSHasMatchingBoundingBoxAndOneRectfillPerDarkModule(t *testing.T) {
	g := &grid{size: 2, dark: map[[2]int]bool{{0, 0}: true}}
	var buf bytes.Buffer
	require.NoError(t, EPS(&buf, g, Options{Indent: 1}))
	out := buf.String()
	require.Contains(t, out, "%%BoundingBox: -1 -1 3 3")
	require.Equal(t, 1, strings.Count(out, "1 1 rectfill"))
}

func TestOptionsNormalizeClampsScaleAndIndent(t *testing.T) {
	o := Options{Scale: 0, Indent: -5}.normalize()
	require.Equal(t, 1, o.Scale)
	require.Equal(t, 0, o.Indent)
}
