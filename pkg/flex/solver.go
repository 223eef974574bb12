package flex

// flexItem holds intermediate calculation state for one child.
// It lives only for the duration of one container's pass.
type flexItem struct {
	id NodeID

	basis  float64
	grow   float64
	shrink float64

	main  float64
	cross float64

	// fixedCross is set when the child's style pins the cross dimension.
	fixedCross bool
	align      Align
}

// flexLine is a run of consecutive items [start, end) sharing one cross band.
type flexLine struct {
	start, end int
	cross      float64
	pos        float64 // Cross offset inside the content box
}

func (l flexLine) len() int { return l.end - l.start }

// Compute runs one full layout pass from the root down. Every size and
// position below the root is overwritten; measured hints are only read.
func (t *Tree) Compute() {
	root := &t.nodes[0]
	root.pos = Position{}
	root.size = Size{
		Width:  root.style.Width.Resolve(0),
		Height: root.style.Height.Resolve(0),
	}
	t.layoutBox(0)
}

// layoutBox sizes and places the children of id, then recurses into every
// child box. The size of id must already be final.
func (t *Tree) layoutBox(id NodeID) {
	n := &t.nodes[id]
	if len(n.children) == 0 {
		return
	}
	opts := n.opts
	isRow := opts.Direction.IsRow()

	// Axis resolution
	innerW := max(0, n.size.Width-opts.Padding.Horizontal())
	innerH := max(0, n.size.Height-opts.Padding.Vertical())
	mainSize, crossSize := innerW, innerH
	mainGap, crossGap := opts.ColumnGap, opts.RowGap
	if !isRow {
		mainSize, crossSize = crossSize, mainSize
		mainGap, crossGap = crossGap, mainGap
	}

	items := make([]flexItem, len(n.children))
	for i, child := range n.children {
		items[i] = t.newItem(child, isRow, opts.AlignItems)
	}

	lines := breakLines(items, mainSize, mainGap, opts.Wrap)
	for _, line := range lines {
		resolveMainSizes(items[line.start:line.end], mainSize, mainGap)
	}

	// Line cross sizes
	if opts.Wrap == NoWrap {
		lines[0].cross = crossSize
	} else {
		for i := range lines {
			for _, item := range items[lines[i].start:lines[i].end] {
				lines[i].cross = max(lines[i].cross, item.cross)
			}
		}
	}
	alignLines(lines, crossSize, crossGap, opts.AlignContent, opts.Wrap == WrapReverse)

	for _, line := range lines {
		lineItems := items[line.start:line.end]
		leading, extra := justifyLine(lineItems, opts.JustifyContent, mainSize, mainGap)

		cursor := leading
		for i := range lineItems {
			item := &lineItems[i]
			mainPos := cursor
			if opts.Direction.IsReverse() {
				mainPos = mainSize - cursor - item.main
			}
			cursor += item.main + mainGap + extra

			if item.align == AlignStretch && !item.fixedCross {
				item.cross = line.cross
			}
			crossPos := line.pos + alignOffset(item.align, line.cross, item.cross)

			child := &t.nodes[item.id]
			if isRow {
				child.pos = Position{X: opts.Padding.Left + mainPos, Y: opts.Padding.Top + crossPos}
				child.size = Size{Width: item.main, Height: item.cross}
			} else {
				child.pos = Position{X: opts.Padding.Left + crossPos, Y: opts.Padding.Top + mainPos}
				child.size = Size{Width: item.cross, Height: item.main}
			}
		}
	}

	// Recurse once all siblings are fixed.
	for _, child := range n.children {
		switch t.nodes[child].kind {
		case KindBox:
			t.layoutBox(child)
		case KindLeaf:
			// terminal
		}
	}
}

// newItem seeds the scratch state for child from its style and measured hint.
// An explicit main dimension replaces the basis and opts the item out of
// grow and shrink.
func (t *Tree) newItem(child NodeID, isRow bool, alignItems Align) flexItem {
	c := &t.nodes[child]
	mainDim, crossDim := c.style.Width, c.style.Height
	measuredCross := c.measured.Height
	if !isRow {
		mainDim, crossDim = crossDim, mainDim
		measuredCross = c.measured.Width
	}

	item := flexItem{
		id:         child,
		basis:      c.style.Basis,
		grow:       c.style.Grow,
		shrink:     c.style.Shrink,
		cross:      crossDim.Resolve(measuredCross),
		fixedCross: !crossDim.IsAuto(),
		align:      c.style.AlignSelf,
	}
	if !mainDim.IsAuto() {
		item.basis = mainDim.Amount
		item.grow, item.shrink = 0, 0
	}
	item.main = item.basis
	if item.align == AlignAuto {
		item.align = alignItems
	}
	return item
}

// breakLines groups items into lines. Without wrapping there is exactly one
// line, even when items is empty. With wrapping, an item that would push the
// running size past mainSize starts a new line; the first item of a line is
// always accepted.
func breakLines(items []flexItem, mainSize, gap float64, wrap Wrap) []flexLine {
	if wrap == NoWrap {
		return []flexLine{{start: 0, end: len(items)}}
	}

	var lines []flexLine
	start, running := 0, 0.0
	for i, item := range items {
		if i == start {
			running = item.basis
			continue
		}
		if running+gap+item.basis <= mainSize {
			running += gap + item.basis
			continue
		}
		lines = append(lines, flexLine{start: start, end: i})
		start, running = i, item.basis
	}
	return append(lines, flexLine{start: start, end: len(items)})
}

// resolveMainSizes distributes the line's free main space. Positive space
// goes to growing items in proportion to grow. Negative space is taken from
// shrinking items in proportion to shrink*basis, falling back to plain shrink
// when every shrinking item has zero basis. Otherwise items keep their basis
// and the line overflows.
func resolveMainSizes(items []flexItem, mainSize, gap float64) {
	var totalBasis, totalGrow, totalShrink, totalWeighted float64
	for _, item := range items {
		totalBasis += item.basis
		totalGrow += item.grow
		totalShrink += item.shrink
		totalWeighted += item.shrink * item.basis
	}
	free := mainSize - totalBasis - gaps(len(items), gap)

	for i := range items {
		item := &items[i]
		switch {
		case free > 0 && totalGrow > 0:
			item.main = item.basis + free*item.grow/totalGrow
		case free < 0 && totalWeighted > 0:
			item.main = item.basis + free*item.shrink*item.basis/totalWeighted
		case free < 0 && totalShrink > 0:
			item.main = item.basis + free*item.shrink/totalShrink
		default:
			item.main = item.basis
		}
		item.main = max(0, item.main)
	}
}

// justifyLine returns the leading offset and the extra space added after each
// item. Lines with a growing item have already consumed their free space.
func justifyLine(items []flexItem, justify Justify, mainSize, gap float64) (leading, extra float64) {
	used := 0.0
	for _, item := range items {
		if item.grow > 0 {
			return 0, 0
		}
		used += item.main
	}
	space := max(0, mainSize-used-gaps(len(items), gap))
	return distribute(justify, space, len(items))
}

// alignLines sets the cross size and offset of every line. The lines slice is
// kept in item order; reverse places the last line first.
func alignLines(lines []flexLine, crossSize, gap float64, mode AlignContent, reverse bool) {
	used := gaps(len(lines), gap)
	for _, line := range lines {
		used += line.cross
	}
	avail := max(0, crossSize-used)

	var leading, extra float64
	if mode == ContentStretch {
		grow := avail / float64(len(lines))
		for i := range lines {
			lines[i].cross += grow
		}
	} else {
		leading, extra = distribute(contentJustify[mode], avail, len(lines))
	}

	cursor := leading
	for k := range lines {
		i := k
		if reverse {
			i = len(lines) - 1 - k
		}
		lines[i].pos = cursor
		cursor += lines[i].cross + gap + extra
	}
}

// contentJustify maps each non-stretch AlignContent to the Justify with the
// same spacing rule.
var contentJustify = map[AlignContent]Justify{
	ContentFlexStart:    JustifyFlexStart,
	ContentFlexEnd:      JustifyFlexEnd,
	ContentCenter:       JustifyCenter,
	ContentSpaceBetween: JustifySpaceBetween,
	ContentSpaceAround:  JustifySpaceAround,
	ContentSpaceEvenly:  JustifySpaceEvenly,
}

// distribute returns the leading offset and per-gap extra for spreading space
// over n items.
func distribute(mode Justify, space float64, n int) (leading, extra float64) {
	if space <= 0 || n == 0 {
		return 0, 0
	}
	switch mode {
	case JustifyFlexEnd:
		return space, 0
	case JustifyCenter:
		return space / 2, 0
	case JustifySpaceBetween:
		if n == 1 {
			return 0, 0
		}
		return 0, space / float64(n-1)
	case JustifySpaceAround:
		extra = space / float64(n)
		return extra / 2, extra
	case JustifySpaceEvenly:
		extra = space / float64(n+1)
		return extra, extra
	default: // JustifyFlexStart
		return 0, 0
	}
}

// alignOffset returns a child's offset inside its line on the cross axis.
func alignOffset(align Align, lineCross, itemCross float64) float64 {
	switch align {
	case AlignFlexEnd:
		return lineCross - itemCross
	case AlignCenter:
		return (lineCross - itemCross) / 2
	default: // AlignFlexStart, AlignStretch
		return 0
	}
}

func gaps(n int, gap float64) float64 {
	if n < 2 {
		return 0
	}
	return gap * float64(n-1)
}
