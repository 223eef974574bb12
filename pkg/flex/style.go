package flex

// =============================================================================
// Enums
// =============================================================================

// Direction specifies the main axis of a box and the order children follow on it.
type Direction uint8

const (
	Row           Direction = iota // Children laid out left-to-right
	RowReverse                     // Children laid out right-to-left
	Column                         // Children laid out top-to-bottom
	ColumnReverse                  // Children laid out bottom-to-top
)

// IsRow reports whether the main axis is horizontal.
func (d Direction) IsRow() bool { return d == Row || d == RowReverse }

// IsReverse reports whether main-axis coordinates are mirrored.
func (d Direction) IsReverse() bool { return d == RowReverse || d == ColumnReverse }

// Wrap specifies whether children may break onto multiple lines.
type Wrap uint8

const (
	NoWrap      Wrap = iota // All children on a single line
	WrapLines               // Break onto new lines when the main axis is full
	WrapReverse             // Like WrapLines, with the line order reversed
)

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	JustifyFlexStart    Justify = iota // Pack at start
	JustifyFlexEnd                     // Pack at end
	JustifyCenter                      // Center children
	JustifySpaceBetween                // Even space between, none at edges
	JustifySpaceAround                 // Even space around each child
	JustifySpaceEvenly                 // Equal space between and at edges
)

// Align specifies how a child is positioned on the cross axis of its line.
// AlignAuto is only meaningful for [Style.AlignSelf].
type Align uint8

const (
	AlignAuto      Align = iota // Inherit the container's AlignItems
	AlignFlexStart              // Align to start of cross axis
	AlignFlexEnd                // Align to end of cross axis
	AlignCenter                 // Center on cross axis
	AlignStretch                // Stretch to fill the line
)

// AlignContent specifies how lines are distributed along the cross axis.
type AlignContent uint8

const (
	ContentStretch      AlignContent = iota // Grow lines to fill the cross axis
	ContentFlexStart                        // Pack lines at start
	ContentFlexEnd                          // Pack lines at end
	ContentCenter                           // Center lines
	ContentSpaceBetween                     // Even space between lines
	ContentSpaceAround                      // Even space around each line
	ContentSpaceEvenly                      // Equal space between and at edges
)

// =============================================================================
// Geometry
// =============================================================================

// Size is a width/height pair.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Position is an (X, Y) coordinate.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns p offset by other.
func (p Position) Add(other Position) Position {
	return Position{X: p.X + other.X, Y: p.Y + other.Y}
}

// Box is the computed placement of a node.
type Box struct {
	Position Position `json:"position"`
	Size     Size     `json:"size"`
}

// Edges represents spacing on four sides (padding).
type Edges struct {
	Top, Right, Bottom, Left float64
}

// EdgeAll returns Edges with the same value on all sides.
func EdgeAll(n float64) Edges {
	return Edges{Top: n, Right: n, Bottom: n, Left: n}
}

// Horizontal returns Left + Right.
func (e Edges) Horizontal() float64 { return e.Left + e.Right }

// Vertical returns Top + Bottom.
func (e Edges) Vertical() float64 { return e.Top + e.Bottom }

// =============================================================================
// Dimension
// =============================================================================

// Dimension is an explicit width or height that is either unset (auto) or fixed.
type Dimension struct {
	Amount float64
	fixed  bool
}

// Auto returns an unset Dimension; the container decides the size.
func Auto() Dimension { return Dimension{} }

// Fixed returns a Dimension pinned to n. Negative values clamp to 0.
func Fixed(n float64) Dimension { return Dimension{Amount: max(0, n), fixed: true} }

// IsAuto reports whether the dimension is unset.
func (d Dimension) IsAuto() bool { return !d.fixed }

// Resolve returns the fixed amount, or fallback when the dimension is auto.
func (d Dimension) Resolve(fallback float64) float64 {
	if d.fixed {
		return d.Amount
	}
	return fallback
}

// =============================================================================
// Style and Options
// =============================================================================

// Style describes how a node participates in its parent's flex layout.
type Style struct {
	Grow      float64 // Share of positive free space (default 0)
	Shrink    float64 // Share of negative free space (default 1)
	Basis     float64 // Main-axis size before distribution (default 0)
	AlignSelf Align   // Override parent's AlignItems (AlignAuto = inherit)

	// Explicit sizes fix an axis regardless of grow, shrink and stretch.
	Width  Dimension
	Height Dimension

	ID       string         // Stable external identifier (optional)
	Metadata map[string]any // Opaque caller data, carried through to exports
}

// DefaultStyle returns a Style with flexbox defaults.
func DefaultStyle() Style {
	return Style{
		Shrink:    1,
		AlignSelf: AlignAuto,
		Width:     Auto(),
		Height:    Auto(),
	}
}

// Options contains the container properties of a box.
type Options struct {
	Direction      Direction
	Wrap           Wrap
	ColumnGap      float64 // Gap between columns (main axis for rows)
	RowGap         float64 // Gap between rows (main axis for columns)
	JustifyContent Justify
	AlignItems     Align
	AlignContent   AlignContent
	Padding        Edges
}

// DefaultOptions returns container Options with flexbox defaults.
func DefaultOptions() Options {
	return Options{
		Direction:      Row,
		Wrap:           NoWrap,
		JustifyContent: JustifyFlexStart,
		AlignItems:     AlignStretch,
		AlignContent:   ContentStretch,
	}
}

// normalize clamps numeric fields and replaces values that have no meaning in
// their position (AlignItems cannot be auto).
func (o Options) normalize() Options {
	o.ColumnGap = max(0, o.ColumnGap)
	o.RowGap = max(0, o.RowGap)
	o.Padding = Edges{
		Top:    max(0, o.Padding.Top),
		Right:  max(0, o.Padding.Right),
		Bottom: max(0, o.Padding.Bottom),
		Left:   max(0, o.Padding.Left),
	}
	if o.AlignItems == AlignAuto {
		o.AlignItems = AlignStretch
	}
	return o
}

func (s Style) normalize() Style {
	s.Grow = max(0, s.Grow)
	s.Shrink = max(0, s.Shrink)
	s.Basis = max(0, s.Basis)
	return s
}
