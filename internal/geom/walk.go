package geom

// EachAtom visits every atomic component of g in depth-first order: points,
// line strings, and polygons, with collections flattened away. fn is consulted
// after producing each atom; returning false stops the walk immediately and no
// further atoms are visited. The walk is iterative with an explicit stack, so
// deeply nested collections cannot exhaust the goroutine stack.
func EachAtom(g *Geometry, fn func(*Geometry) bool) {
	if g == nil {
		return
	}
	stack := []*Geometry{g}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur.Kind != Collection {
			if !fn(cur) {
				return
			}
			continue
		}
		// push members in reverse so they pop in declared order
		for i := len(cur.Members) - 1; i >= 0; i-- {
			stack = append(stack, cur.Members[i])
		}
	}
}

// LinearComponents returns every line-like component of g: line strings as
// themselves and each polygon ring (exterior and holes) as a closed vertex
// sequence. Points contribute nothing. Collections are flattened.
func LinearComponents(g *Geometry) [][]Coord {
	var out [][]Coord
	EachAtom(g, func(atom *Geometry) bool {
		switch atom.Kind {
		case Line:
			out = append(out, atom.Coords)
		case Polygon:
			out = append(out, atom.Rings...)
		}
		return true
	})
	return out
}
