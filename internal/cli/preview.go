package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/helgeesch/captain-arro/pkg/preset"
	"github.com/helgeesch/captain-arro/pkg/pipeline"
	arrowrender "github.com/helgeesch/captain-arro/pkg/render/arrow"
)

// List styles
var (
	listNormalStyle = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
)

// previewCommand creates the preview command for interactive preset selection.
func (c *CLI) previewCommand() *cobra.Command {
	var output string
	var noCache bool

	cmd := &cobra.Command{
		Use:   "preview <preset-file>",
		Short: "Pick a preset interactively and render it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPreview(cmd, args[0], output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default <name>.svg)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the document cache")

	return cmd
}

// runPreview shows the preset picker and renders the chosen preset.
func (c *CLI) runPreview(cmd *cobra.Command, path, output string, noCache bool) error {
	presets, err := preset.Load(path)
	if err != nil {
		return err
	}

	model := newPresetListModel(presets)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return fmt.Errorf("preset picker: %w", err)
	}

	chosen := final.(presetListModel).Selected
	if chosen == nil {
		printInfo("No preset selected")
		return nil
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	start := time.Now()
	doc, hit, err := runner.GenerateWithCacheInfo(cmd.Context(), chosen.Options)
	if err != nil {
		return err
	}

	out := output
	if out == "" {
		out = chosen.Name + ".svg"
	}
	if err := arrowrender.ExportSVG(doc, out); err != nil {
		return err
	}

	printSuccess("Rendered preset %q", chosen.Name)
	printKeyValue("pattern", chosen.Options.Pattern)
	printKeyValue("size", fmt.Sprintf("%dx%d", chosen.Options.Width, chosen.Options.Height))
	printFile(out)
	printStats(len(doc), time.Since(start), hit)
	return nil
}

// =============================================================================
// presetListModel - Interactive preset selection
// =============================================================================

// presetListModel is the bubbletea model for interactive preset selection.
type presetListModel struct {
	Presets  []preset.Preset
	Cursor   int
	Selected *preset.Preset
	Height   int
	Offset   int
}

// newPresetListModel creates a new preset list model.
func newPresetListModel(presets []preset.Preset) presetListModel {
	return presetListModel{
		Presets: presets,
		Height:  15,
	}
}

func (m presetListModel) Init() tea.Cmd {
	return nil
}

func (m presetListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Presets)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			m.Selected = &m.Presets[m.Cursor]
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m presetListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Preset"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Presets) {
		end = len(m.Presets)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		p := m.Presets[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		size := fmt.Sprintf("%dx%d", p.Options.Width, p.Options.Height)
		desc := p.Description
		if desc == "" {
			desc = "—"
		}
		rows = append(rows, []string{cursor, p.Name, p.Options.Pattern, size, formatSpeed(p.Options), desc})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Preset", "Pattern", "Size", "Speed", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
			}
			if col >= 3 {
				return listDimStyle
			}
			return listNormalStyle
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Presets))))

	return b.String()
}

// formatSpeed renders the preset's speed setting for display.
func formatSpeed(o pipeline.Options) string {
	if o.DurationSeconds > 0 {
		return fmt.Sprintf("%.1fs", o.DurationSeconds)
	}
	return fmt.Sprintf("%.0f px/s", o.SpeedPxPerSec)
}
