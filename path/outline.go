package path

// Cap selects how an open subpath's endpoints are drawn when stroked.
type Cap int

const (
	CapButt Cap = iota
	CapRound
	CapSquare
)

// Join selects how two stroked segments meeting at a corner are joined.
type Join int

const (
	JoinMiter Join = iota
	JoinRound
	JoinBevel
)

// Dashes describes a dash pattern: phase is the starting offset into
// the pattern, and Pattern alternates on/off lengths starting "on".
// The zero value (nil Pattern) means no dashing.
type Dashes struct {
	Phase   float64
	Pattern []float64
}

// HasDashes reports whether d specifies an actual dash pattern.
func (d Dashes) HasDashes() bool {
	return len(d.Pattern) > 0
}

// Outline describes how a path is stroked.
type Outline struct {
	Width      float64
	Cap        Cap
	Join       Join
	MiterAngle float64
	Dashes     Dashes
}

// DefaultOutline is width=1, cap=Butt, join=Miter, miter_angle=0, no dashes.
var DefaultOutline = Outline{Width: 1, Cap: CapButt, Join: JoinMiter}

// FillRule selects how a path's interior is determined when filled.
type FillRule int

const (
	FillNonZero FillRule = iota
	FillEvenOdd
)

// Area selects how an Image's Cut node interprets a path: filled under
// one of the two fill rules, or stroked per an Outline.
type Area struct {
	rule     FillRule
	outline  Outline
	isStroke bool
}

// AreaNonZero returns the non-zero-winding-rule fill area.
func AreaNonZero() Area { return Area{rule: FillNonZero} }

// AreaEvenOdd returns the even-odd fill area.
func AreaEvenOdd() Area { return Area{rule: FillEvenOdd} }

// AreaOutline returns the area stroked per o.
func AreaOutline(o Outline) Area { return Area{isStroke: true, outline: o} }

// IsStroke reports whether a is a stroked area (as opposed to a fill).
func (a Area) IsStroke() bool { return a.isStroke }

// FillRule returns a's fill rule; only meaningful when !a.IsStroke().
func (a Area) FillRule() FillRule { return a.rule }

// Outline returns a's stroke parameters; only meaningful when a.IsStroke().
func (a Area) Outline() Outline { return a.outline }
