package grid

// StrongLink is a pair of cells that are the only two places a digit can go
// within some division: if one is false for that digit, the other must be
// true. Grounded on original_source's find_strong_link / find_strong_links,
// which return exactly this pairing without naming a division.
type StrongLink struct {
	A, B *Cell
}

// AreStronglyLinked reports whether a and b are strongly linked on digit:
// both must be unsolved candidates for digit, and together they must be the
// only two cells holding digit in some shared row, column, or box. This is
// the uncached pairwise check; StrongLinks(digit) is the cached whole-grid
// enumeration used when scanning every link at once.
func (g *Grid) AreStronglyLinked(a, b *Cell, digit int) bool {
	if a.Equal(b) || !a.Candidates().Has(digit) || !b.Candidates().Has(digit) {
		return false
	}
	for _, div := range [...]Division{DivRow, DivColumn, DivBox} {
		if !a.Aligned(b, div) {
			continue
		}
		if g.onlyTwoHoldDigit(div, g.divisionIndex(a, div), digit, a, b) {
			return true
		}
	}
	return false
}

func (g *Grid) divisionIndex(c *Cell, div Division) int {
	switch div {
	case DivRow:
		return c.Row
	case DivColumn:
		return c.Col
	case DivBox:
		return c.Box
	}
	return -1
}

func (g *Grid) onlyTwoHoldDigit(div Division, i, digit int, a, b *Cell) bool {
	count := 0
	for _, cell := range g.Division(div, i) {
		if cell.Solved() {
			continue
		}
		if cell.Candidates().Has(digit) {
			count++
			if !cell.Equal(a) && !cell.Equal(b) {
				return false
			}
		}
	}
	return count == 2
}

// StrongLinks returns every strong link for digit across rows, columns, and
// boxes, cached until the grid's generation advances. A pair aligned in more
// than one division (e.g. two cells in the same box and row) is reported
// once per division, matching original_source's find_strong_links which
// scans divisions independently without deduplicating across them.
func (g *Grid) StrongLinks(digit int) []StrongLink {
	if g.strongLinkGen == g.generation+1 {
		if cached, ok := g.strongLinkCache[digit]; ok {
			return cached
		}
	} else {
		g.strongLinkCache = make(map[int][]StrongLink)
		g.strongLinkGen = g.generation + 1
	}

	var links []StrongLink
	for _, div := range [...]Division{DivRow, DivColumn, DivBox} {
		for i := 0; i < 9; i++ {
			var holders []*Cell
			for _, cell := range g.Division(div, i) {
				if !cell.Solved() && cell.Candidates().Has(digit) {
					holders = append(holders, cell)
				}
			}
			if len(holders) == 2 {
				links = append(links, StrongLink{A: holders[0], B: holders[1]})
			}
		}
	}
	g.strongLinkCache[digit] = links
	return links
}
