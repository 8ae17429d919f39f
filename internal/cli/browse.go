package cli

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/valter-silva-au/taskmgr/internal/store"
	"github.com/valter-silva-au/taskmgr/pkg/models"
)

// Style definitions.
var (
	browseTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("230")).
				Background(lipgloss.Color("62")).
				Padding(0, 1)

	browseCursorStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("62"))

	browseDoneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Strikethrough(true)

	browseHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	prioHigh   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	prioMedium = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	prioLow    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

type browseModel struct {
	store  *store.Store
	tasks  []*models.Task
	cursor int
}

func newBrowseModel(st *store.Store) browseModel {
	return browseModel{store: st, tasks: st.All()}
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "j", "down":
			if m.cursor < len(m.tasks)-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "enter", " ":
			if len(m.tasks) > 0 {
				// Completion goes through the store, the only writer of done.
				_ = m.store.Complete(m.tasks[m.cursor].ID)
			}
		}
	}
	return m, nil
}

func (m browseModel) View() string {
	s := browseTitleStyle.Render("taskmgr") + "\n\n"

	if len(m.tasks) == 0 {
		s += "No tasks in this script.\n"
		return s + browseHelpStyle.Render("q quit")
	}

	for i, t := range m.tasks {
		cursor := "  "
		if i == m.cursor {
			cursor = browseCursorStyle.Render("> ")
		}
		line := fmt.Sprintf("[%d] %s  %s  due %s", t.ID, t.Name, prioStyle(t.Prio).Render(string(t.Prio)), t.DueText())
		if t.Done {
			line = browseDoneStyle.Render(line)
		}
		s += cursor + line + "\n"
	}

	return s + browseHelpStyle.Render("j/k move | enter mark done | q quit")
}

func prioStyle(p models.Priority) lipgloss.Style {
	switch p {
	case models.PriorityHigh:
		return prioHigh
	case models.PriorityLow:
		return prioLow
	}
	return prioMedium
}

var browseCmd = &cobra.Command{
	Use:   "browse <script>",
	Short: "Run a script, then browse the resulting tasks",
	Long: `Interpret a task command script without echoing per-command output,
then open an interactive browser over the resulting task store.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, closeIn, err := openScript(args[0])
		if err != nil {
			return err
		}
		defer closeIn()

		it := newInterpreter(io.Discard, nil)
		if _, err := feed(it, in); err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}

		p := tea.NewProgram(newBrowseModel(it.Store()))
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("running browser: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
