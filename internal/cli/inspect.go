package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/ainkit/ainviz/pkg/graphio"
	"github.com/ainkit/ainviz/pkg/relation"
	"github.com/ainkit/ainviz/pkg/timeline"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// inspectCommand creates the inspect command for browsing a collection.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		plain  bool
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "inspect [collection.json]",
		Short: "Browse a collection's intervals, relations, and levels",
		Long: `Browse a collection's intervals, relations, and levels.

Opens an interactive view listing every interval with its letter label,
bounds, expected value, relation degree, and assigned timeline level.
Use --plain for non-interactive tabular output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			col, err := graphio.ReadCollectionFile(args[0])
			if err != nil {
				return err
			}
			model, err := newInspectModel(col, strict)
			if err != nil {
				return err
			}
			if plain {
				fmt.Println(model.View())
				return nil
			}
			_, err = tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print the table without the interactive view")
	cmd.Flags().BoolVar(&strict, "strict", false, "use strict level packing")

	return cmd
}

// inspectRow is one interval's display data.
type inspectRow struct {
	label    string
	interval string
	degree   int // number of incident relation edges
	level    int
	color    string
}

// inspectModel is the bubbletea model for collection browsing.
type inspectModel struct {
	rows   []inspectRow
	edges  int
	cursor int
}

// newInspectModel builds the display rows from the collection.
func newInspectModel(col graphio.Collection, strict bool) (inspectModel, error) {
	ains, err := col.AINs()
	if err != nil {
		return inspectModel{}, err
	}
	cmp, err := col.Comparator(ains)
	if err != nil {
		return inspectModel{}, err
	}
	g, err := relation.Build(ains, cmp)
	if err != nil {
		return inspectModel{}, err
	}

	var levels [][]int
	if strict {
		levels = timeline.PackStrict(ains, cmp)
	} else {
		levels = timeline.Pack(ains, cmp)
	}
	levelOf := make([]int, len(ains))
	for row, level := range levels {
		for _, idx := range level {
			levelOf[idx] = row
		}
	}

	degrees := make([]int, len(ains))
	for _, e := range g.Edges() {
		degrees[e.I]++
		degrees[e.J]++
	}

	rows := make([]inspectRow, len(ains))
	for i, a := range ains {
		rows[i] = inspectRow{
			label:    relation.Label(i),
			interval: a.String(),
			degree:   degrees[i],
			level:    levelOf[i],
			color:    graphio.PaletteColor(i),
		}
	}
	return inspectModel{rows: rows, edges: g.EdgeCount()}, nil
}

func (m inspectModel) Init() tea.Cmd {
	return nil
}

func (m inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
		}
	}
	return m, nil
}

func (m inspectModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Interval Collection"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	tableRows := make([][]string, len(m.rows))
	for i, r := range m.rows {
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}
		tableRows[i] = []string{
			cursor,
			r.label,
			r.interval,
			fmt.Sprintf("%d", r.degree),
			fmt.Sprintf("%d", r.level),
		}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Label", "Interval", "Relations", "Level").
		Rows(tableRows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row == m.cursor {
				return listSelectedStyle
			}
			if col == 1 && row < len(m.rows) {
				return lipgloss.NewStyle().Foreground(lipgloss.Color(m.rows[row].color))
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  %d intervals · %d relation edges  [%d/%d]",
		len(m.rows), m.edges, m.cursor+1, max(len(m.rows), 1))))

	return b.String()
}
