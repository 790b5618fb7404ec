package dtw

// mappingFromPath turns a forward-ordered warping path into a dense
// user→ideal mapping of length u.
//
// Each (i, j) on the path sets mapping[j] = i, so the last path cell of a
// column wins. Afterwards any mapping[j] still 0 for j ≥ 1 takes the value
// of mapping[j-1]. A genuine alignment to ideal index 0 at j ≥ 1 is
// indistinguishable from an unfilled entry and is filled the same way.
func mappingFromPath(path []Coord, u int) []int {
	m := make([]int, u)
	for _, c := range path {
		m[c.J] = c.I
	}
	for j := 1; j < u; j++ {
		if m[j] == 0 {
			m[j] = m[j-1]
		}
	}

	return m
}

// pathFromMapping lists (mapping[j], j) for every j; used to describe ratio
// mappings in the same shape as a warping path.
func pathFromMapping(m []int) []Coord {
	path := make([]Coord, len(m))
	for j, i := range m {
		path[j] = Coord{I: i, J: j}
	}

	return path
}

// reversePath reverses p in place.
func reversePath(p []Coord) {
	for l, r := 0, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}
}
