package cli

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/boxflow/pkg/pipeline"
	"github.com/matzehuels/boxflow/pkg/scene"
)

// inspectCommand creates the inspect command for printing computed boxes.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		interactive bool
		flags       layoutFlags
	)

	cmd := &cobra.Command{
		Use:   "inspect <tree|layout.json>",
		Short: "Show the computed box of every node",
		Long: `Show the computed box of every node as a table.

X and Y are relative to the parent's origin (padding included); Abs X and
Abs Y are relative to the root. With -i, nodes are browsed interactively.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd.Context(), args[0], interactive, flags, c.layoutOptions(cmd, flags))
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse nodes interactively")
	flags.register(cmd)

	return cmd
}

func (c *CLI) runInspect(ctx context.Context, input string, interactive bool, flags layoutFlags, opts pipeline.Options) error {
	runner, err := c.newRunner(ctx, flags.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	l, hit, err := c.loadLayout(ctx, runner, input, opts)
	if err != nil {
		return err
	}

	if interactive {
		_, err := tea.NewProgram(newNodeBrowser(l), tea.WithContext(ctx)).Run()
		return err
	}

	printKeyValue("Root", fmt.Sprintf("%s × %s", formatNum(l.Width), formatNum(l.Height)))
	printStats(len(l.Nodes), maxDepth(l), hit)
	printNewline()
	if len(l.Nodes) == 0 {
		printWarning("The tree has no nodes below the root")
		return nil
	}
	fmt.Println(nodeTable(l.Nodes, -1).Render())
	return nil
}

// =============================================================================
// Node Table
// =============================================================================

var (
	tableHeaderStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	tableCellStyle   = lipgloss.NewStyle().Padding(0, 1)
	tableBoxStyle    = tableCellStyle.Foreground(colorCyan)
	tableLeafStyle   = tableCellStyle.Foreground(colorWhite)
	tableCursorStyle = tableCellStyle.Foreground(colorGreen).Bold(true)
)

// nodeTable lays out nodes as a lipgloss table. The row at cursor (an index
// into nodes, or -1) is highlighted.
func nodeTable(nodes []scene.Node, cursor int) *table.Table {
	rows := make([][]string, len(nodes))
	for i, n := range nodes {
		rows[i] = []string{
			strings.Repeat("  ", max(n.Depth-1, 0)) + n.Label(),
			n.Kind,
			formatNum(n.X),
			formatNum(n.Y),
			formatNum(n.Width),
			formatNum(n.Height),
			formatNum(n.AbsX),
			formatNum(n.AbsY),
		}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Node", "Kind", "X", "Y", "Width", "Height", "Abs X", "Abs Y").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return tableHeaderStyle.Padding(0, 1)
			case row == cursor:
				return tableCursorStyle
			case col == 0 && nodes[row].IsBox():
				return tableBoxStyle
			case col >= 2:
				return tableCellStyle.Foreground(colorGray)
			default:
				return tableLeafStyle
			}
		})
}

// formatNum trims trailing zeros: 12 → "12", 12.5 → "12.5".
func formatNum(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// =============================================================================
// nodeBrowser - Interactive node browsing
// =============================================================================

// nodeBrowser is the bubbletea model behind inspect -i: a scrolling node
// table with a detail pane for the selected node.
type nodeBrowser struct {
	layout scene.Layout
	cursor int
	offset int
	height int
}

func newNodeBrowser(l scene.Layout) nodeBrowser {
	return nodeBrowser{layout: l, height: 15}
}

func (m nodeBrowser) Init() tea.Cmd {
	return nil
}

func (m nodeBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	n := len(m.layout.Nodes)
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Leave room for the title, table borders and detail pane.
		m.height = max(msg.Height-16, 3)
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < n-1 {
				m.cursor++
			}
		case "home", "g":
			m.cursor = 0
		case "end", "G":
			m.cursor = max(n-1, 0)
		case "p":
			m.cursor = m.parentIndex()
		}
	}

	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
	return m, nil
}

// parentIndex returns the index of the selected node's parent, or the
// cursor itself for children of the root.
func (m nodeBrowser) parentIndex() int {
	if len(m.layout.Nodes) == 0 {
		return 0
	}
	parent := m.layout.Nodes[m.cursor].Parent
	for i, n := range m.layout.Nodes {
		if n.ID == parent {
			return i
		}
	}
	return m.cursor
}

func (m nodeBrowser) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Layout %s × %s", formatNum(m.layout.Width), formatNum(m.layout.Height))))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ navigate  p parent  g/G first/last  q quit"))
	b.WriteString("\n\n")

	if len(m.layout.Nodes) == 0 {
		b.WriteString(StyleDim.Render("no nodes"))
		return b.String()
	}

	end := min(m.offset+m.height, len(m.layout.Nodes))
	b.WriteString(nodeTable(m.layout.Nodes[m.offset:end], m.cursor-m.offset).Render())
	b.WriteString("\n\n")
	b.WriteString(m.detail())
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(m.layout.Nodes))))
	return b.String()
}

// detail renders the selected node's properties.
func (m nodeBrowser) detail() string {
	n := m.layout.Nodes[m.cursor]
	parent := n.Parent
	if parent == "" {
		parent = "(root)"
	}

	lines := []string{
		detailLine("id", n.ID),
		detailLine("parent", parent),
		detailLine("kind", fmt.Sprintf("%s, %d children", n.Kind, len(m.layout.Children(n.ID)))),
		detailLine("box", fmt.Sprintf("%s,%s  %s × %s", formatNum(n.X), formatNum(n.Y), formatNum(n.Width), formatNum(n.Height))),
		detailLine("absolute", fmt.Sprintf("%s,%s", formatNum(n.AbsX), formatNum(n.AbsY))),
	}
	for _, k := range slices.Sorted(maps.Keys(n.Meta)) {
		lines = append(lines, detailLine("meta."+k, fmt.Sprint(n.Meta[k])))
	}
	return strings.Join(lines, "\n")
}

func detailLine(key, value string) string {
	return "  " + styleKey.Render(key) + " " + StyleNumber.Render(value)
}
