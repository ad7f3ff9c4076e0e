package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-portal-client/internal/service"
	"github.com/MKhiriev/go-portal-client/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// overviewPollInterval is how often the screen re-reads the snapshot kept by
// the background refresher. It never talks to the portal itself.
const overviewPollInterval = 2 * time.Second

var copyToClipboard = clipboard.WriteAll

// OverviewModel lists the bots of the portal overview.
type OverviewModel struct {
	ctx    context.Context
	portal service.ClientPortalService
	source overviewSource

	snapshot models.OverviewSnapshot
	hasData  bool
	ids      []string
	idx      int
	loading  bool
	spinner  spinner.Model
	status   string
	lastErr  error
	gen      int
}

// NewOverviewModel creates the overview screen.
func NewOverviewModel(ctx context.Context, portal service.ClientPortalService, source overviewSource) *OverviewModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return &OverviewModel{ctx: ctx, portal: portal, source: source, spinner: s}
}

// Init implements [tea.Model]. Shows whatever the refresher already has and
// asks for a fresh copy.
func (m *OverviewModel) Init() tea.Cmd {
	m.gen++
	m.status = ""
	m.lastErr = nil
	m.apply(m.source.Latest())
	m.loading = true
	return tea.Batch(m.spinner.Tick, m.cmdRefresh(), m.scheduleTick())
}

func (m *OverviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case overviewLoadedMsg:
		m.loading = false
		m.lastErr = msg.err
		m.apply(msg.snapshot, msg.ok)
		return m, nil

	case overviewTickMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.apply(m.source.Latest())
		return m, m.scheduleTick()

	case dashboardURLMsg:
		if msg.err != nil {
			m.lastErr = msg.err
			return m, nil
		}
		if err := copyToClipboard(msg.url); err != nil {
			m.status = "Ссылка: " + msg.url
			return m, nil
		}
		m.status = "Ссылка скопирована: " + msg.url
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
		case key.Matches(msg, keys.down):
			if m.idx < len(m.ids)-1 {
				m.idx++
			}
		case key.Matches(msg, keys.refresh):
			if m.loading {
				return m, nil
			}
			m.loading = true
			m.status = ""
			return m, tea.Batch(m.spinner.Tick, m.cmdRefresh())
		case key.Matches(msg, keys.enter), key.Matches(msg, keys.dashboard), key.Matches(msg, keys.copy):
			id, ok := m.current()
			if !ok {
				return m, nil
			}
			m.lastErr = nil
			return m, m.cmdDashboardURL(id)
		case key.Matches(msg, keys.settings):
			return m, func() tea.Msg { return NavigateTo{Page: pageSettings} }
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m *OverviewModel) View() string {
	header := "ПОРТАЛ"
	if m.loading {
		header += "  " + m.spinner.View()
	}

	var b strings.Builder
	switch {
	case !m.hasData && m.loading:
		b.WriteString("Загрузка...\n")
	case !m.hasData:
		b.WriteString("Нет данных\n")
	case len(m.ids) == 0:
		b.WriteString("Нет ботов\n")
	default:
		overview := m.snapshot.Overview
		fmt.Fprintf(&b, "Итого P&L: %s │ в норме: %d из %d\n", formatPnL(overview.TotalPnL), overview.HealthyCount(), len(m.ids))
		b.WriteString(uiDivider)
		b.WriteString("\n")
		for i, id := range m.ids {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(cursor)
			b.WriteString(renderBotLine(id, overview.Bots[id]))
			b.WriteString("\n")
		}
		b.WriteString("\nОбновлено: ")
		b.WriteString(m.snapshot.FetchedAt.Local().Format("15:04:05"))
		b.WriteString("\n")
	}

	if err := m.err(); err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + humanizeError(err)))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	return renderPage(header, strings.TrimRight(b.String(), "\n"),
		"↑/↓: выбор │ enter: ссылка на панель │ r: обновить │ s: настройки │ v: версия │ q: выход")
}

func renderBotLine(id string, bot models.BotSummary) string {
	label := bot.Short
	if label == "" {
		label = id
	}

	health := okStyle.Render("●")
	if !bot.Healthy {
		health = errorStyle.Render("●")
	}

	line := fmt.Sprintf("%s %-6s %-24s %-8s %12s", health, botStyle(bot.Color).Render(fitText(label, 6)),
		fitText(valueOrDash(bot.Name), 24), fitText(valueOrDash(bot.Mode), 8), formatPnL(bot.PnL))
	if bot.Error != "" {
		line += "  " + warnStyle.Render(fitText(bot.Error, 40))
	}
	return line
}

func formatPnL(v float64) string {
	return fmt.Sprintf("%+.2f $", v)
}

// apply replaces what the screen shows. A missing snapshot empties the screen
// so nothing cached survives a lock.
func (m *OverviewModel) apply(snapshot models.OverviewSnapshot, ok bool) {
	if !ok {
		m.snapshot = models.OverviewSnapshot{}
		m.hasData = false
		m.ids = nil
		m.idx = 0
		return
	}
	selected, _ := m.current()

	m.snapshot = snapshot
	m.hasData = !snapshot.FetchedAt.IsZero()
	m.ids = snapshot.Overview.BotIDs()

	m.idx = 0
	for i, id := range m.ids {
		if id == selected {
			m.idx = i
			break
		}
	}
}

func (m *OverviewModel) current() (string, bool) {
	if len(m.ids) == 0 || m.idx < 0 || m.idx >= len(m.ids) {
		return "", false
	}
	return m.ids[m.idx], true
}

// err prefers the error of an explicit action over the refresher's.
func (m *OverviewModel) err() error {
	if m.lastErr != nil {
		return m.lastErr
	}
	return m.snapshot.Err
}

func (m *OverviewModel) scheduleTick() tea.Cmd {
	gen := m.gen
	return tea.Tick(overviewPollInterval, func(time.Time) tea.Msg {
		return overviewTickMsg{gen: gen}
	})
}

func (m *OverviewModel) cmdRefresh() tea.Cmd {
	ctx := m.ctx
	source := m.source

	return func() tea.Msg {
		err := source.Refresh(ctx)
		snapshot, ok := source.Latest()
		return overviewLoadedMsg{snapshot: snapshot, ok: ok, err: err}
	}
}

func (m *OverviewModel) cmdDashboardURL(botID string) tea.Cmd {
	portal := m.portal

	return func() tea.Msg {
		url, err := portal.BotDashboardURL(botID)
		return dashboardURLMsg{url: url, err: err}
	}
}
