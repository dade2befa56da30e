package geom

// Coord is an (x, y) position.
type Coord struct {
	X float64
	Y float64
}

// Envelope is an axis-aligned bounding box. Degenerate envelopes (zero width,
// zero height, or a single point) are valid values.
type Envelope struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// NewEnvelope builds the envelope spanned by two corner coordinates, in any order.
func NewEnvelope(a, b Coord) Envelope {
	e := Envelope{MinX: a.X, MinY: a.Y, MaxX: a.X, MaxY: a.Y}
	return e.ExpandToCoord(b)
}

// EnvelopeOf computes the bounding box of a coordinate slice.
// The zero Envelope is returned for an empty slice.
func EnvelopeOf(cs []Coord) Envelope {
	var e Envelope
	for i, c := range cs {
		if i == 0 {
			e = Envelope{MinX: c.X, MinY: c.Y, MaxX: c.X, MaxY: c.Y}
		} else {
			e = e.ExpandToCoord(c)
		}
	}
	return e
}

// Intersects reports whether the two envelopes share at least one point.
// Touching edges or corners count.
func (e Envelope) Intersects(o Envelope) bool {
	if e.MinX > o.MaxX || e.MaxX < o.MinX {
		return false
	}
	if e.MinY > o.MaxY || e.MaxY < o.MinY {
		return false
	}
	return true
}

// Contains reports whether o lies entirely within e, boundary included.
func (e Envelope) Contains(o Envelope) bool {
	return o.MinX >= e.MinX && o.MaxX <= e.MaxX &&
		o.MinY >= e.MinY && o.MaxY <= e.MaxY
}

// ContainsCoord reports whether c lies within e, boundary included.
func (e Envelope) ContainsCoord(c Coord) bool {
	return c.X >= e.MinX && c.X <= e.MaxX && c.Y >= e.MinY && c.Y <= e.MaxY
}

// ExpandToCoord grows the envelope to cover c.
func (e Envelope) ExpandToCoord(c Coord) Envelope {
	if c.X < e.MinX {
		e.MinX = c.X
	}
	if c.Y < e.MinY {
		e.MinY = c.Y
	}
	if c.X > e.MaxX {
		e.MaxX = c.X
	}
	if c.Y > e.MaxY {
		e.MaxY = c.Y
	}
	return e
}

// ExpandToInclude grows the envelope to cover o.
func (e Envelope) ExpandToInclude(o Envelope) Envelope {
	e = e.ExpandToCoord(Coord{o.MinX, o.MinY})
	return e.ExpandToCoord(Coord{o.MaxX, o.MaxY})
}

// Width returns the horizontal extent of the envelope.
func (e Envelope) Width() float64 { return e.MaxX - e.MinX }

// Height returns the vertical extent of the envelope.
func (e Envelope) Height() float64 { return e.MaxY - e.MinY }

// Kind tags the geometry variants.
type Kind uint8

const (
	Point Kind = iota
	Line
	Polygon
	Collection
)

func (k Kind) String() string {
	switch k {
	case Point:
		return "point"
	case Line:
		return "line"
	case Polygon:
		return "polygon"
	case Collection:
		return "collection"
	}
	return "unknown"
}

// Geometry is a closed tagged union over {Point, Line, Polygon, Collection}.
// Exactly one of the variant fields is meaningful, selected by Kind:
// Pt for Point, Coords for Line, Rings for Polygon (Rings[0] is the exterior
// ring, any following rings are holes), Members for Collection. Env is the
// bounding box, computed once at construction; a Geometry is immutable after
// construction and safe to share across concurrent readers.
type Geometry struct {
	Kind    Kind
	Pt      Coord
	Coords  []Coord
	Rings   [][]Coord
	Members []*Geometry
	Env     Envelope
}

// NewPoint builds a Point geometry.
func NewPoint(c Coord) *Geometry {
	return &Geometry{
		Kind: Point,
		Pt:   c,
		Env:  Envelope{MinX: c.X, MinY: c.Y, MaxX: c.X, MaxY: c.Y},
	}
}

// NewLine builds a Line geometry from its vertex sequence.
func NewLine(cs []Coord) *Geometry {
	return &Geometry{Kind: Line, Coords: cs, Env: EnvelopeOf(cs)}
}

// NewPolygon builds a Polygon geometry. rings[0] is the exterior ring, any
// following rings are holes. Rings are closed vertex sequences (first
// coordinate repeated last).
func NewPolygon(rings [][]Coord) *Geometry {
	var env Envelope
	if len(rings) > 0 {
		env = EnvelopeOf(rings[0])
	}
	return &Geometry{Kind: Polygon, Rings: rings, Env: env}
}

// NewCollection builds a Collection geometry from its members.
func NewCollection(members ...*Geometry) *Geometry {
	var env Envelope
	for i, g := range members {
		if i == 0 {
			env = g.Env
		} else {
			env = env.ExpandToInclude(g.Env)
		}
	}
	return &Geometry{Kind: Collection, Members: members, Env: env}
}

// Rectangle builds the axis-aligned rectangular polygon covering env: a single
// closed ring through the four corners, counterclockwise from (MinX, MinY).
func Rectangle(env Envelope) *Geometry {
	ring := []Coord{
		{env.MinX, env.MinY},
		{env.MaxX, env.MinY},
		{env.MaxX, env.MaxY},
		{env.MinX, env.MaxY},
		{env.MinX, env.MinY},
	}
	return NewPolygon([][]Coord{ring})
}

// Feature pairs a geometry with a display name, as loaded from a file.
type Feature struct {
	Name string
	Geom *Geometry
}
