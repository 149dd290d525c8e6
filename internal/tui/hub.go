package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MenuItem represents an action in the hub menu.
type MenuItem struct {
	Key         string
	Label       string
	Description string
	Managed     bool // requires an unlocked management session
}

// FilterValue implements list.Item.
func (m MenuItem) FilterValue() string {
	return m.Label + " " + m.Description
}

// HubContext carries the state the hub needs: the badge line for the
// status bar and the access gate hooks.
type HubContext struct {
	BadgeLine string
	Unlocked  bool
	// TryUnlock submits an access code; true means the gate opened.
	TryUnlock func(code string) bool
}

// menuItems defines the menu in logical order: storefront first, then
// the gated management surface.
var menuItems = []MenuItem{
	{Key: "home", Label: "Homepage", Description: "Uitgelichte werken en favorieten-carousel"},
	{Key: "guitars", Label: "Gitaren", Description: "Bekijk de gitarenpagina"},
	{Key: "drawings", Label: "Tekeningen", Description: "Bekijk de tekeningenpagina"},
	{Key: "poems", Label: "Gedichten", Description: "Bekijk de gedichtenpagina"},
	{Key: "favorites", Label: "Favorieten", Description: "Je opgeslagen favorieten"},
	{Key: "cart", Label: "Winkelwagen", Description: "Bekijk en reken af"},
	{Key: "published", Label: "Beheer: gepubliceerd", Description: "Verberg of herstel vaste werken", Managed: true},
	{Key: "products", Label: "Beheer: producten", Description: "Eigen producten toevoegen en verwijderen", Managed: true},
	{Key: "organizer", Label: "Beheer: homepage", Description: "Homepage-indeling samenstellen", Managed: true},
	{Key: "sales", Label: "Beheer: verkoop", Description: "Omzet, verdeling en bestellingen", Managed: true},
	{Key: "security", Label: "Beheer: toegangscode", Description: "Wijzig de logincode", Managed: true},
	{Key: "logout", Label: "Uitloggen", Description: "Sluit de beheersessie", Managed: true},
	{Key: "quit", Label: "Stoppen", Description: "Sluit atelierctl"},
}

func renderMenuItem(w io.Writer, m list.Model, index int, item list.Item) {
	menuItem, ok := item.(MenuItem)
	if !ok {
		return
	}

	label := menuItem.Label
	if menuItem.Managed {
		label = label + " 🔒"
	}
	display := fmt.Sprintf("%-24s %s", label, StyleHelp.Render(menuItem.Description))

	if index == m.Index() {
		_, _ = fmt.Fprint(w, StyleHighlight.Render("› "+display))
	} else {
		_, _ = fmt.Fprint(w, "  "+display)
	}
}

type menuDelegate struct{}

func (menuDelegate) Height() int                         { return 1 }
func (menuDelegate) Spacing() int                        { return 0 }
func (menuDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }
func (menuDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	renderMenuItem(w, m, index, item)
}

type hubMode int

const (
	modeMenu hubMode = iota
	modeGate
)

type hubModel struct {
	list     list.Model
	mode     hubMode
	gate     textinput.Model
	gateErr  string
	pending  string // action waiting behind the gate
	context  HubContext
	action   string
	quitting bool
	width    int
	height   int
}

type hubKeys struct {
	quit       key.Binding
	selectItem key.Binding
}

var hubKeyMap = hubKeys{
	quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "stoppen"),
	),
	selectItem: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "kies"),
	),
}

func (m hubModel) Init() tea.Cmd {
	return nil
}

func (m hubModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.mode == modeGate {
		return m.updateGate(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch {
		case key.Matches(msg, hubKeyMap.quit):
			m.quitting = true
			m.action = "quit"
			return m, tea.Quit

		case key.Matches(msg, hubKeyMap.selectItem):
			item, ok := m.list.SelectedItem().(MenuItem)
			if !ok {
				break
			}
			if item.Managed && !m.context.Unlocked {
				m.pending = item.Key
				m.mode = modeGate
				m.gate.SetValue("")
				m.gateErr = ""
				return m, textinput.Blink
			}
			m.action = item.Key
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		h, v := lipgloss.NewStyle().GetFrameSize()
		listWidth := msg.Width - 8 - h
		listHeight := msg.Height - 8 - v
		if listWidth < 48 {
			listWidth = 48
		}
		if listHeight < 5 {
			listHeight = 5
		}
		m.list.SetSize(listWidth, listHeight)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m hubModel) updateGate(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			m.action = "quit"
			return m, tea.Quit

		case "esc":
			m.mode = modeMenu
			m.pending = ""
			return m, nil

		case "enter":
			code := strings.TrimSpace(m.gate.Value())
			if m.context.TryUnlock != nil && m.context.TryUnlock(code) {
				m.context.Unlocked = true
				m.action = m.pending
				m.quitting = true
				return m, tea.Quit
			}
			m.gateErr = "Onjuiste code. Probeer opnieuw."
			m.gate.SetValue("")
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.gate, cmd = m.gate.Update(msg)
	return m, cmd
}

func (m hubModel) View() string {
	if m.quitting {
		return ""
	}

	outerStyle := lipgloss.NewStyle().Padding(2, 4)
	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorInk).
		Padding(0, 1).
		Render("atelierctl — zwart-wit atelierwinkel")

	if m.mode == modeGate {
		var b strings.Builder
		b.WriteString(header)
		b.WriteString("\n\n")
		b.WriteString("Beveiligde omgeving — voer je toegangscode in.\n\n")
		b.WriteString(m.gate.View())
		b.WriteString("\n")
		if m.gateErr != "" {
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Render(m.gateErr))
			b.WriteString("\n")
		}
		b.WriteString(StyleHelp.Render("enter inloggen · esc terug"))
		border := lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorGray).
			Padding(0, 2)
		return outerStyle.Render(border.Render(b.String()))
	}

	var statusBar string
	if m.context.BadgeLine != "" {
		statusBar = StyleHelp.Render("  " + m.context.BadgeLine)
	}

	parts := []string{header}
	if statusBar != "" {
		parts = append(parts, statusBar)
	}
	parts = append(parts, m.list.View())

	content := lipgloss.JoinVertical(lipgloss.Left, parts...)
	innerPadding := lipgloss.NewStyle().Padding(0, 2, 0, 1)
	border := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(ColorGray)
	return outerStyle.Render(border.Render(innerPadding.Render(content)))
}

// RunHub launches the interactive hub menu and returns the selected
// action key. Management actions pass through the access gate first.
func RunHub(ctx HubContext) (string, error) {
	items := make([]list.Item, 0, len(menuItems))
	for _, item := range menuItems {
		if item.Key == "logout" && !ctx.Unlocked {
			continue
		}
		items = append(items, item)
	}

	l := list.New(items, menuDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.HelpStyle = StyleHelp
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{hubKeyMap.selectItem}
	}

	gate := textinput.New()
	gate.EchoMode = textinput.EchoPassword
	gate.Placeholder = "toegangscode"
	gate.Focus()

	m := hubModel{
		list:    l,
		gate:    gate,
		context: ctx,
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("running hub: %w", err)
	}

	fm, ok := finalModel.(hubModel)
	if !ok {
		return "", fmt.Errorf("unexpected model type")
	}
	return fm.action, nil
}
