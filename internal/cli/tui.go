package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/fracnet/pkg/dfn"
	"github.com/matzehuels/fracnet/pkg/pipeline"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// networkModel - Interactive fracture population browser
// =============================================================================

// networkModel is the bubbletea model for browsing a computed network.
type networkModel struct {
	result  *pipeline.Result
	cluster map[int]int // fracture id -> cluster index
	cursor  int
	height  int
	offset  int
}

// newNetworkModel creates a browser over the pipeline result.
func newNetworkModel(result *pipeline.Result) networkModel {
	cluster := make(map[int]int)
	for i, ids := range result.Network.Clusters() {
		for _, id := range ids {
			cluster[id] = i
		}
	}
	return networkModel{
		result:  result,
		cluster: cluster,
		height:  15,
	}
}

func (m networkModel) Init() tea.Cmd {
	return nil
}

func (m networkModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < m.result.Network.NbFractures()-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 10
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m networkModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Fracture network"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	stats := m.result.Stats
	b.WriteString(listDimStyle.Render(fmt.Sprintf(
		"  %d fractures · %d wells · %d FF · %d FW · P32 %.4g · %d clusters",
		stats.Fractures, stats.Wells, stats.FractureFracture, stats.FractureWell,
		stats.Density, stats.Clusters)))
	b.WriteString("\n\n")

	fractures := m.result.Network.Fractures()
	end := m.offset + m.height
	if end > len(fractures) {
		end = len(fractures)
	}

	rows := [][]string{}
	for i := m.offset; i < end; i++ {
		f := fractures[i]
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}

		dip, dipDir := f.Orientation()
		rows = append(rows, []string{
			cursor,
			fmt.Sprintf("F%d", f.ID()),
			shapeLabel(f.Shape()),
			fmt.Sprintf("%.3g", f.Size()),
			fmt.Sprintf("%.3g", f.Area()),
			fmt.Sprintf("%.0f°/%.0f°", dip, dipDir),
			fmt.Sprintf("%d", m.cluster[f.ID()]),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Id", "Shape", "Size", "Area", "Dip/Dir", "Cluster").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.offset+row == m.cursor {
				return lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(fractures))))

	return b.String()
}

func shapeLabel(s dfn.FractureShape) string {
	switch s {
	case dfn.ShapeDisk:
		return "disk"
	case dfn.ShapePolygon:
		return "polygon"
	default:
		return "unknown"
	}
}
