package coding

// MaskCount is the number of standard mask patterns, indices [0,7].
const MaskCount = 8

// maskFunctions holds the eight mask predicates m(r,c): each reports
// whether the module at (r,c) should be inverted. Grounded on myqro's
// MaskFunctions array (defines.cpp, values not present in the pack but
// standard and independently confirmed against qrencode's QRspec_Mask
// table), expressed as a Go array of closures rather than an
// extern-linked std::array.
var maskFunctions = [MaskCount]func(r, c int) bool{
	func(r, c int) bool { return (r+c)%2 == 0 },
	func(r, c int) bool { return r%2 == 0 },
	func(r, c int) bool { return c%3 == 0 },
	func(r, c int) bool { return (r+c)%3 == 0 },
	func(r, c int) bool { return (r/2+c/3)%2 == 0 },
	func(r, c int) bool { return (r*c)%2+(r*c)%3 == 0 },
	func(r, c int) bool { return ((r*c)%2+(r*c)%3)%2 == 0 },
	func(r, c int) bool { return ((r+c)%2+(r*c)%3)%2 == 0 },
}

// applyMask XORs mask number into every DATA cell's value, toggling it
// in place. Calling it twice on the same canvas restores the original
// values; the driver does not rely on that, it applies each candidate
// mask to its own clone of the filled canvas. Grounded on myqro's
// FillData computing value XOR
// mask inline while placing rather than as a separate pass — this
// package splits the two because placement happens once and masking
// is retried per candidate.
func (c *Canvas) applyMask(mask int) {
	f := maskFunctions[mask]
	c.walkDataModules(Data, func(_ int, row, col int) {
		if f(row, col) {
			cell := &c.cells[c.index(row, col)]
			cell.Value ^= 1
		}
	})
}

// Standard penalty weights per spec.md §9: this package deliberately
// does not reuse myqro's N3=120/N4=2x weights (Canvas::Penalty,
// canvas.cpp), which are a documented deviation from ISO/IEC 18004.
const (
	n2SquarePenalty  = 3
	n3PatternPenalty = 40
)

// penalty scores the canvas's current module colors per ISO/IEC 18004
// §8.8.2, summing N1 (runs), N2 (2x2 blocks), N3 (finder-like
// patterns), and N4 (dark-module balance). Grounded on myqro's
// Canvas::Penalty, restructured around the standard's weights and its
// N4 formula 10*floor(|pct-50|/5) instead of the source's
// fabs(100*black/total-50)*2.
func (c *Canvas) penalty() int {
	total := 0
	total += c.runPenalty()
	total += c.blockPenalty()
	total += c.patternPenalty()
	total += c.balancePenalty()
	return total
}

func (c *Canvas) runPenalty() int {
	total := 0
	for row := 0; row < c.size; row++ {
		for col := 0; col < c.size; {
			color := c.cellAt(row, col).Value
			n := 1
			for col+n < c.size && c.cellAt(row, col+n).Value == color {
				n++
			}
			if n >= 5 {
				total += n - 2
			}
			col += n
		}
	}
	for col := 0; col < c.size; col++ {
		for row := 0; row < c.size; {
			color := c.cellAt(row, col).Value
			n := 1
			for row+n < c.size && c.cellAt(row+n, col).Value == color {
				n++
			}
			if n >= 5 {
				total += n - 2
			}
			row += n
		}
	}
	return total
}

func (c *Canvas) blockPenalty() int {
	total := 0
	for row := 0; row+1 < c.size; row++ {
		for col := 0; col+1 < c.size; col++ {
			if c.sameColorSquare(row, col) {
				total += n2SquarePenalty
			}
		}
	}
	return total
}

func (c *Canvas) sameColorSquare(row, col int) bool {
	color := c.cellAt(row, col).Value
	return c.cellAt(row, col+1).Value == color &&
		c.cellAt(row+1, col).Value == color &&
		c.cellAt(row+1, col+1).Value == color
}

// patternPenalty finds the horizontal and vertical occurrences of dark
// light dark dark dark light dark with at least four light modules
// flanking one side, grounded on myqro's two near-identical scan loops
// folded into one helper parameterized by orientation.
func (c *Canvas) patternPenalty() int {
	total := 0
	for row := 0; row < c.size; row++ {
		for col := 0; col+7 <= c.size; {
			if c.hasFinderLikeRun(row, col, 0, 1) {
				before := col >= 4 && c.hasColorStripe(row, col-1, 0, -1, 4)
				after := col+7+4 <= c.size && c.hasColorStripe(row, col+7, 0, 1, 4)
				if before || after {
					total += n3PatternPenalty
				}
				switch {
				case after:
					col += 7 + 4
				case before:
					col += 7
				default:
					col++
				}
			} else {
				col++
			}
		}
	}
	for col := 0; col < c.size; col++ {
		for row := 0; row+7 <= c.size; {
			if c.hasFinderLikeRun(row, col, 1, 0) {
				before := row >= 4 && c.hasColorStripe(row-1, col, -1, 0, 4)
				after := row+7+4 <= c.size && c.hasColorStripe(row+7, col, 1, 0, 4)
				if before || after {
					total += n3PatternPenalty
				}
				switch {
				case after:
					row += 7 + 4
				case before:
					row += 7
				default:
					row++
				}
			} else {
				row++
			}
		}
	}
	return total
}

var finderLikePattern = [7]byte{dark, light, dark, dark, dark, light, dark}

func (c *Canvas) hasFinderLikeRun(row, col, dr, dc int) bool {
	for i, want := range finderLikePattern {
		if c.cellAt(row+dr*i, col+dc*i).Value != want {
			return false
		}
	}
	return true
}

func (c *Canvas) hasColorStripe(row, col, dr, dc, length int) bool {
	for i := 0; i < length; i++ {
		r, cc := row+dr*i, col+dc*i
		if !c.IsInside(r, cc) || c.cellAt(r, cc).Value != light {
			return false
		}
	}
	return true
}

// balancePenalty implements N4: 10 * floor(|percent dark - 50| / 5).
func (c *Canvas) balancePenalty() int {
	blackCount := 0
	for _, cell := range c.cells {
		blackCount += int(cell.Value)
	}
	percent := blackCount * 100 / (c.size * c.size)
	diff := percent - 50
	if diff < 0 {
		diff = -diff
	}
	return 10 * (diff / 5)
}
