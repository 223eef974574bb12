package flex

// Keyword tables shared by String and Parse*. Keywords follow CSS spelling.
var (
	directionNames = map[Direction]string{
		Row:           "row",
		RowReverse:    "row-reverse",
		Column:        "column",
		ColumnReverse: "column-reverse",
	}
	wrapNames = map[Wrap]string{
		NoWrap:      "nowrap",
		WrapLines:   "wrap",
		WrapReverse: "wrap-reverse",
	}
	justifyNames = map[Justify]string{
		JustifyFlexStart:    "flex-start",
		JustifyFlexEnd:      "flex-end",
		JustifyCenter:       "center",
		JustifySpaceBetween: "space-between",
		JustifySpaceAround:  "space-around",
		JustifySpaceEvenly:  "space-evenly",
	}
	alignNames = map[Align]string{
		AlignAuto:      "auto",
		AlignFlexStart: "flex-start",
		AlignFlexEnd:   "flex-end",
		AlignCenter:    "center",
		AlignStretch:   "stretch",
	}
	contentNames = map[AlignContent]string{
		ContentStretch:      "stretch",
		ContentFlexStart:    "flex-start",
		ContentFlexEnd:      "flex-end",
		ContentCenter:       "center",
		ContentSpaceBetween: "space-between",
		ContentSpaceAround:  "space-around",
		ContentSpaceEvenly:  "space-evenly",
	}
)

func (d Direction) String() string    { return directionNames[d] }
func (w Wrap) String() string         { return wrapNames[w] }
func (j Justify) String() string      { return justifyNames[j] }
func (a Align) String() string        { return alignNames[a] }
func (a AlignContent) String() string { return contentNames[a] }

// ParseDirection returns the Direction named s.
func ParseDirection(s string) (Direction, bool) { return lookup(directionNames, s) }

// ParseWrap returns the Wrap named s.
func ParseWrap(s string) (Wrap, bool) { return lookup(wrapNames, s) }

// ParseJustify returns the Justify named s.
func ParseJustify(s string) (Justify, bool) { return lookup(justifyNames, s) }

// ParseAlign returns the Align named s.
func ParseAlign(s string) (Align, bool) { return lookup(alignNames, s) }

// ParseAlignContent returns the AlignContent named s.
func ParseAlignContent(s string) (AlignContent, bool) { return lookup(contentNames, s) }

func lookup[T comparable](names map[T]string, s string) (T, bool) {
	for v, name := range names {
		if name == s {
			return v, true
		}
	}
	var zero T
	return zero, false
}
