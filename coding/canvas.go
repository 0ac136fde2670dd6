package coding

// PatternKind classifies a Cell by the kind of function pattern that
// occupies it, or UNKNOWN before layout / DATA once the zig-zag placer
// has claimed it. Grounded on myqro's Pattern enum (canvas.hpp), split
// into a distinct SEPARATOR kind per spec.md §3: myqro folds separator
// cells into SEARCH, but the spec calls them out so a renderer can tell
// them apart from the finder ring proper.
type PatternKind int

const (
	Unknown PatternKind = iota
	Separator
	Finder
	Alignment
	Timing
	Format
	Version_ // trailing underscore avoids colliding with the Version type
	Data
)

func (k PatternKind) String() string {
	switch k {
	case Unknown:
		return "UNKNOWN"
	case Separator:
		return "SEPARATOR"
	case Finder:
		return "FINDER"
	case Alignment:
		return "ALIGNMENT"
	case Timing:
		return "TIMING"
	case Format:
		return "FORMAT"
	case Version_:
		return "VERSION"
	case Data:
		return "DATA"
	}
	return "UNKNOWN"
}

// dark and light are the two module colors a Cell's value holds.
const (
	light byte = 0
	dark  byte = 1
)

// Cell is one module of a Canvas.
type Cell struct {
	Kind  PatternKind
	Value byte
}

// Canvas is the square grid of Cells that make up one QR symbol,
// grounded on myqro's Canvas (canvas.hpp/cpp) generalized from a flat
// []Cell with a private Index helper into the same layout plus the
// render.Matrix accessors spec.md §4.11 requires.
type Canvas struct {
	version Version
	size    int
	cells   []Cell
}

// NewCanvas allocates an all-UNKNOWN canvas sized for version v.
func NewCanvas(v Version) *Canvas {
	size := v.Size()
	return &Canvas{version: v, size: size, cells: make([]Cell, size*size)}
}

// Version returns the canvas's QR version.
func (c *Canvas) Version() int { return int(c.version) }

// Size returns the number of modules on a side.
func (c *Canvas) Size() int { return c.size }

func (c *Canvas) index(row, col int) int { return row*c.size + col }

// IsInside reports whether (row,col) lies on the canvas.
func (c *Canvas) IsInside(row, col int) bool {
	return row >= 0 && row < c.size && col >= 0 && col < c.size
}

// cellAt returns the cell at (row,col); it returns the zero Cell for
// out-of-range coordinates rather than panicking, since internal
// callers (layout, penalty scan) routinely probe just past an edge.
func (c *Canvas) cellAt(row, col int) Cell {
	if !c.IsInside(row, col) {
		return Cell{}
	}
	return c.cells[c.index(row, col)]
}

// At reports whether the module at (row,col) is dark, satisfying
// render.Matrix. Grounded on myqro's Cell::value (0/1) generalized to
// the bool a renderer actually wants, per SPEC_FULL.md §4.11.
func (c *Canvas) At(row, col int) bool {
	return c.cellAt(row, col).Value == dark
}

func (c *Canvas) set(row, col int, k PatternKind, v byte) {
	c.cells[c.index(row, col)] = Cell{Kind: k, Value: v}
}

// clone returns a deep copy of c, used by the driver to evaluate the
// eight mask candidates independently without re-running layout each
// time, per spec.md §5's note that auto-mask holds eight candidate
// canvases in flight.
func (c *Canvas) clone() *Canvas {
	cp := &Canvas{version: c.version, size: c.size, cells: make([]Cell, len(c.cells))}
	copy(cp.cells, c.cells)
	return cp
}

// placeFunctionPatterns lays down every non-DATA region: finders with
// separators, alignment patterns, timing, the dark module, and the
// format/version reservations. Grounded on myqro's
// SetupSearchPatterns/SetupLevelingPatterns/SetupSyncLines/
// SetupVersionCode, adapted to mark separators distinctly and to
// reserve (rather than fill) format/version info, which is written
// later once a mask has been chosen.
func (c *Canvas) placeFunctionPatterns() {
	c.placeFinder(0, 0)
	c.placeFinder(0, c.size-7)
	c.placeFinder(c.size-7, 0)
	c.placeAlignmentPatterns()
	c.placeTiming()
	c.set(4*int(c.version)+9, 8, Format, dark)
	c.reserveFormatInfo()
	if c.version >= 7 {
		c.reserveVersionInfo()
	}
}

// placeFinder draws the 7x7 finder ring with center (row+3,col+3) at
// the symbol corner anchored at (row,col), plus its one-module light
// separator wherever the separator falls on the canvas. Grounded on
// myqro's PlaceSearchPattern, rewritten around an explicit Separator
// kind instead of folding the separator into the finder ring.
func (c *Canvas) placeFinder(row, col int) {
	for r := row - 1; r <= row+7; r++ {
		for cc := col - 1; cc <= col+7; cc++ {
			if !c.IsInside(r, cc) {
				continue
			}
			if r < row || r > row+6 || cc < col || cc > col+6 {
				c.set(r, cc, Separator, light)
				continue
			}
			dr, dc := r-row, cc-col
			if dr == 0 || dr == 6 || dc == 0 || dc == 6 {
				c.set(r, cc, Finder, dark)
			} else if dr == 1 || dr == 5 || dc == 1 || dc == 5 {
				c.set(r, cc, Finder, light)
			} else {
				c.set(r, cc, Finder, dark)
			}
		}
	}
}

// placeAlignmentPatterns draws a 5x5 ring with a single dark center at
// every coordinate pair drawn from the version's alignment-center
// list, skipping any pattern whose bounding box would overlap an
// already-placed finder or separator. Grounded on myqro's
// SetupLevelingPatterns/PlaceLevelingPattern, whose overlap check is
// preserved verbatim (scan the 5x5 box for any non-UNKNOWN cell before
// committing).
func (c *Canvas) placeAlignmentPatterns() {
	centers := alignCenters[c.version]
	for _, p := range centers {
		for _, q := range centers {
			c.placeAlignment(p, q)
		}
	}
}

func (c *Canvas) placeAlignment(row, col int) {
	for r := row - 2; r <= row+2; r++ {
		for cc := col - 2; cc <= col+2; cc++ {
			if c.cellAt(r, cc).Kind != Unknown {
				return
			}
		}
	}
	for r := row - 2; r <= row+2; r++ {
		for cc := col - 2; cc <= col+2; cc++ {
			if r == row-2 || r == row+2 || cc == col-2 || cc == col+2 || (r == row && cc == col) {
				c.set(r, cc, Alignment, dark)
			} else {
				c.set(r, cc, Alignment, light)
			}
		}
	}
}

// placeTiming draws the alternating dark/light timing lines along row
// 6 and column 6, starting dark at the ends nearest the finder
// separators, skipping any cell already claimed by a finder or
// alignment pattern. Grounded on myqro's SetupSyncLines.
func (c *Canvas) placeTiming() {
	value := dark
	for a := c.size - 7; a > 6; a-- {
		if c.cellAt(a, 6).Kind == Unknown {
			c.set(a, 6, Timing, value)
		}
		if c.cellAt(6, a).Kind == Unknown {
			c.set(6, a, Timing, value)
		}
		value = 1 - value
	}
}

// reserveFormatInfo marks the 15 format-information cells around the
// top-left finder and split around the bottom-left/top-right finders
// with placeholder value 0; fillFormatInfo overwrites the values once
// a mask has been chosen. Grounded on myqro's PlaceCorrectionMaskCode
// geometry, split into a reserve step (layout time) and a fill step
// (after mask selection) since this package defers writing the value
// until the mask is known.
func (c *Canvas) reserveFormatInfo() {
	c.walkFormatInfo(func(row, col int, _ int) {
		c.set(row, col, Format, 0)
	})
}

// fillFormatInfo writes the 15-bit format-information string for
// (level, mask) into the cells reserveFormatInfo marked.
func (c *Canvas) fillFormatInfo(level EccLevel, mask int) {
	code := formatInfoTable[level][mask]
	c.walkFormatInfo(func(row, col, bitIndex int) {
		c.set(row, col, Format, byte(code>>uint(bitIndex)&1))
	})
}

// walkFormatInfo visits the 30 format-information cells (two redundant
// 15-bit copies) in the order myqro's PlaceCorrectionMaskCode writes
// them: the vertical strip right of the top-left finder (bits 7..0),
// the horizontal strip below the top-left finder (bits 14..8), the
// horizontal strip below the top-right finder (bits 7..0), and the
// vertical strip right of the bottom-left finder (bits 14..8). Both
// strips adjacent to the top-left finder skip their shared cell with
// the timing pattern at row/col 6.
func (c *Canvas) walkFormatInfo(visit func(row, col, bitIndex int)) {
	for r := 0; r <= 7; r++ {
		row := 8 - r
		if row <= 6 {
			row--
		}
		visit(row, 8, 7-r)
	}
	for cc := 0; cc <= 6; cc++ {
		col := cc
		if col >= 6 {
			col++
		}
		visit(8, col, 14-cc)
	}
	for cc := 0; cc <= 7; cc++ {
		visit(8, c.size-8+cc, 7-cc)
	}
	for r := 0; r <= 6; r++ {
		visit(c.size-1-r, 8, 14-r)
	}
}

// reserveVersionInfo marks the two 6x3 strips used for version
// information at v >= 7 with placeholder value 0. Grounded on myqro's
// SetupVersionCode geometry, split from value-filling for the same
// reason as reserveFormatInfo.
func (c *Canvas) reserveVersionInfo() {
	start := c.size - 11
	for r := 0; r < 3; r++ {
		for cc := 0; cc < 6; cc++ {
			c.set(start+r, cc, Version_, 0)
			c.set(cc, start+r, Version_, 0)
		}
	}
}

// fillVersionInfo writes the 18-bit version-information string into
// the strips reserveVersionInfo marked, following myqro's
// SetupVersionCode bit order: the string is split into three 6-bit
// groups (high to low), each group filling one row of the bottom-left
// strip and, transposed, one column of the top-right strip.
func (c *Canvas) fillVersionInfo() {
	code := versionInfoTable[c.version]
	start := c.size - 11
	for r := 0; r < 3; r++ {
		group := (code >> uint((2-r)*6)) & 0x3f
		for cc := 0; cc < 6; cc++ {
			bit := byte(group >> uint(5-cc) & 1)
			c.set(start+r, cc, Version_, bit)
			c.set(cc, start+r, Version_, bit)
		}
	}
}

// dataModuleVisitor is called for every DATA-eligible cell in zig-zag
// order with a running index.
type dataModuleVisitor func(index, row, col int)

// walkDataModules visits every cell whose kind equals pattern (UNKNOWN
// during placement, DATA afterward for debug output) in the canvas's
// zig-zag column-pair order, grounded on myqro's IterateDataModules:
// column pairs run right to left, alternating bottom-to-top and
// top-to-bottom, with the pair's left column nudged one further left
// whenever it would otherwise land on or inside the vertical timing
// column.
func (c *Canvas) walkDataModules(pattern PatternKind, f dataModuleVisitor) {
	index := 0
	nStrips := c.size / 2
	for i := 0; i < nStrips; i++ {
		down := i%2 == 1
		row := c.size - 1
		if down {
			row = 0
		}
		col := c.size - 1 - 2*i
		if col <= 6 {
			col--
		}

		right := true
		for c.IsInside(row, col) {
			if c.cellAt(row, col).Kind == pattern {
				f(index, row, col)
				index++
			}
			if right {
				col--
			} else {
				col++
				if down {
					row++
				} else {
					row--
				}
			}
			right = !right
		}
	}
}

// DebugFillOrder returns, for every cell, the 0-based index at which
// the zig-zag placer visited it, or -1 for any cell that is not a DATA
// module. Grounded on myqro's Canvas::DebugOutputFillDataOrder, which
// prints the same information as a text grid; this package returns
// the grid itself so callers (tests, a `-l debug` CLI trace) can
// format it however they like.
func (c *Canvas) DebugFillOrder() [][]int {
	grid := make([][]int, c.size)
	for r := range grid {
		grid[r] = make([]int, c.size)
		for cc := range grid[r] {
			grid[r][cc] = -1
		}
	}
	c.walkDataModules(Data, func(index, row, col int) {
		grid[row][col] = index
	})
	return grid
}

// DebugPatternGrid returns the PatternKind of every cell, grounded on
// myqro's Canvas::DebugPatterns.
func (c *Canvas) DebugPatternGrid() [][]PatternKind {
	grid := make([][]PatternKind, c.size)
	for r := range grid {
		grid[r] = make([]PatternKind, c.size)
		for cc := range grid[r] {
			grid[r][cc] = c.cellAt(r, cc).Kind
		}
	}
	return grid
}

// fillData claims every remaining UNKNOWN cell as DATA in zig-zag
// order, writing bits from stream (0 once the stream is exhausted,
// covering a version's remainder bits). No mask is applied here;
// applyMask toggles the chosen mask in afterward, grounded on myqro's
// Canvas::FillData which computes value XOR mask inline — split into
// two steps here so the driver can retry every mask against the same
// placement instead of re-running the zig-zag walk per candidate.
func (c *Canvas) fillData(stream *BitStream) {
	c.walkDataModules(Unknown, func(index, row, col int) {
		var bit byte
		if index < stream.Len() {
			bit = stream.BitAt(index)
		}
		c.set(row, col, Data, bit)
	})
}
