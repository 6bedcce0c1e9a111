package shares

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/lumibot/internal/constants"
	"github.com/julianstephens/lumibot/internal/models"
	"github.com/julianstephens/lumibot/internal/projection"
	"github.com/julianstephens/lumibot/internal/tui/components/glyph"
)

// SelectCardMsg asks the shell to open the detail view for Card.
type SelectCardMsg struct {
	Card models.ShareCard
}

type Item struct {
	Card models.ShareCard
}

func (i Item) Title() string {
	return fmt.Sprintf("%s %s · %s", glyph.Icon(projection.VisibilityBadge(i.Card.Visibility).Icon), i.Card.Title, i.Card.Visibility)
}

func (i Item) Description() string {
	desc := fmt.Sprintf("%s · %s", i.Card.Type, i.Card.Timestamp)
	if badge, ok := projection.CardTypeBadge(i.Card.Type); ok {
		desc = glyph.Icon(badge.Icon) + " " + desc
	}
	if i.Card.HasComment() {
		desc += fmt.Sprintf(" · “%s”", i.Card.ChildsComment)
	}
	return desc
}

func (i Item) FilterValue() string { return i.Card.Title }

type KeyMap struct {
	Open key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
	}
}

var (
	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true).
			Padding(1, 2)

	detailStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("205")).
			Padding(1, 2).
			Width(60)

	detailTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("205"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Width(8)

	commentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Italic(true)

	expiryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true)

	actionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)
)

type Model struct {
	list list.Model
	keys KeyMap
}

func New(width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = "Shares"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Open}
	}

	return Model{
		list: l,
		keys: keys,
	}
}

// SetChild shows child's cards, most recent first.
func (m *Model) SetChild(child models.Child) {
	cards := projection.SortedShareCards(child)
	items := make([]list.Item, len(cards))
	for i, c := range cards {
		items[i] = Item{Card: c}
	}
	m.list.ResetFilter()
	m.list.SetItems(items)
	m.list.Select(0)
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

// Filtering reports whether the list is capturing keys for its filter prompt.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Len() int {
	return len(m.list.Items())
}

func (m Model) KeyBindings() []key.Binding {
	return []key.Binding{m.keys.Open}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	if keyMsg, ok := msg.(tea.KeyMsg); ok && !m.Filtering() {
		if key.Matches(keyMsg, m.keys.Open) {
			if item, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return SelectCardMsg{Card: item.Card} }
			}
			return m, nil
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return emptyStyle.Render(constants.ShareCardsEmpty)
	}
	return m.list.View()
}

// DetailView renders the open card.
func DetailView(card models.ShareCard) string {
	var s strings.Builder

	s.WriteString(detailTitleStyle.Render(card.Title))
	s.WriteString("  ")
	s.WriteString(glyph.Badge(projection.VisibilityBadge(card.Visibility), string(card.Visibility)))
	s.WriteString("\n\n")

	typeText := string(card.Type)
	if badge, ok := projection.CardTypeBadge(card.Type); ok {
		typeText = glyph.Badge(badge, typeText)
	}
	s.WriteString(labelStyle.Render(constants.ShareCardTypeLabel) + typeText + "\n")
	s.WriteString(labelStyle.Render(constants.ShareCardSummaryLabel) + card.Summary + "\n")
	s.WriteString(labelStyle.Render("") + card.Timestamp + "\n")
	if card.HasImage() {
		s.WriteString(labelStyle.Render("图片") + card.ImageURL + "\n")
	}
	if card.HasComment() {
		s.WriteString("\n" + commentStyle.Render("“"+card.ChildsComment+"”") + "\n")
	}

	s.WriteString("\n" + expiryStyle.Render(constants.ShareCardAutoDelete))
	if projection.CanEditImage(card) {
		s.WriteString("\n\n" + actionStyle.Render("e  "+constants.ShareCardEditAction))
	}
	return detailStyle.Render(s.String())
}
