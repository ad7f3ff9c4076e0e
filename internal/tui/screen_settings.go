package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-portal-client/internal/service"
	"github.com/MKhiriev/go-portal-client/internal/validators"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldAddress = iota
	fieldUsername
	fieldPassword
)

// SettingsModel edits the server address and credential and switches the
// session lock on or off.
type SettingsModel struct {
	ctx      context.Context
	settings serverSettings
	lock     sessionLock
	portal   service.ClientPortalService

	inputs      []textinput.Model
	focus       int
	lockEnabled bool
	busy        bool
	status      string
	errMsg      string
}

// NewSettingsModel creates the settings screen.
func NewSettingsModel(ctx context.Context, settings serverSettings, lock sessionLock, portal service.ClientPortalService) *SettingsModel {
	addressInput := textinput.New()
	addressInput.Placeholder = "https://portal.example.com"
	addressInput.CharLimit = 512
	addressInput.Width = 48

	usernameInput := textinput.New()
	usernameInput.Placeholder = "логин"
	usernameInput.CharLimit = 256
	usernameInput.Width = 48

	passwordInput := textinput.New()
	passwordInput.Placeholder = "пароль"
	passwordInput.CharLimit = 256
	passwordInput.Width = 48
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &SettingsModel{
		ctx:      ctx,
		settings: settings,
		lock:     lock,
		portal:   portal,
		inputs:   []textinput.Model{addressInput, usernameInput, passwordInput},
	}
}

// Init implements [tea.Model]. Fills the form from the stored configuration.
func (m *SettingsModel) Init() tea.Cmd {
	credential := m.settings.Credential()
	m.inputs[fieldAddress].SetValue(m.settings.Address())
	m.inputs[fieldUsername].SetValue(credential.Username)
	m.inputs[fieldPassword].SetValue(credential.Password)
	m.lockEnabled = m.lock.State().Enabled
	m.status = ""
	m.errMsg = ""
	m.busy = false
	m.setFocus(fieldAddress)
	return textinput.Blink
}

func (m *SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case settingsSavedMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = "Сохранено"
		return m, nil

	case pingDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = "Сервер доступен"
		return m, nil

	case lockToggledMsg:
		m.busy = false
		m.lockEnabled = m.lock.State().Enabled
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		if msg.enabled {
			m.status = "Блокировка включена"
		} else {
			m.status = "Блокировка выключена"
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			if !m.settings.IsConfigured() {
				m.errMsg = humanizeError(service.ErrNotConfigured)
				return m, nil
			}
			return m, func() tea.Msg { return NavigateTo{Page: pageOverview} }
		case key.Matches(msg, keys.tab):
			m.setFocus((m.focus + 1) % len(m.inputs))
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.setFocus((m.focus + len(m.inputs) - 1) % len(m.inputs))
			return m, nil
		case key.Matches(msg, keys.enter):
			return m, m.run(m.cmdSave())
		case key.Matches(msg, keys.ping):
			return m, m.run(m.cmdPing())
		case key.Matches(msg, keys.toggle):
			return m, m.run(m.cmdToggleLock(!m.lockEnabled))
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *SettingsModel) View() string {
	var b strings.Builder
	b.WriteString("Поле    │ Значение\n")
	b.WriteString("────────┼──────────────────────────────────────────────────\n")
	b.WriteString("Адрес   │ [")
	b.WriteString(m.inputs[fieldAddress].View())
	b.WriteString("]\n")
	b.WriteString("Логин   │ [")
	b.WriteString(m.inputs[fieldUsername].View())
	b.WriteString("]\n")
	b.WriteString("Пароль  │ [")
	b.WriteString(m.inputs[fieldPassword].View())
	b.WriteString("]\n\n")

	b.WriteString(m.endpointPreview())
	b.WriteString("\n")

	if m.lockEnabled {
		b.WriteString("Блокировка сессии: включена\n")
	} else {
		b.WriteString("Блокировка сессии: выключена\n")
	}

	if m.busy {
		b.WriteString("\n[Выполняется...]\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(okStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("НАСТРОЙКИ СЕРВЕРА", strings.TrimRight(b.String(), "\n"),
		"tab: след. поле │ enter: сохранить │ ctrl+t: проверить │ ctrl+l: блокировка │ esc: назад")
}

// endpointPreview shows what the typed address will resolve to before it is
// saved.
func (m *SettingsModel) endpointPreview() string {
	raw := strings.TrimSpace(m.inputs[fieldAddress].Value())
	if raw == "" {
		return warnStyle.Render("Адрес не задан")
	}

	endpoint, err := validators.NormalizeEndpoint(raw)
	if err != nil {
		return errorStyle.Render(humanizeError(err))
	}
	if !endpoint.IsSecure() {
		return warnStyle.Render("Подключение: " + endpoint.BaseURL() + " (без шифрования, локальная сеть)")
	}
	return "Подключение: " + endpoint.BaseURL()
}

func (m *SettingsModel) setFocus(i int) {
	for idx := range m.inputs {
		m.inputs[idx].Blur()
	}
	m.focus = i
	m.inputs[i].Focus()
}

// run starts cmd unless another one is still running.
func (m *SettingsModel) run(cmd tea.Cmd) tea.Cmd {
	if m.busy {
		return nil
	}
	m.busy = true
	m.status = ""
	m.errMsg = ""
	return cmd
}

func (m *SettingsModel) cmdSave() tea.Cmd {
	ctx := m.ctx
	settings := m.settings
	address := strings.TrimSpace(m.inputs[fieldAddress].Value())
	username := strings.TrimSpace(m.inputs[fieldUsername].Value())
	password := m.inputs[fieldPassword].Value()

	return func() tea.Msg {
		var errs []error
		if address != settings.Address() {
			errs = append(errs, settings.SetAddress(ctx, address))
		}
		errs = append(errs, settings.SetCredential(ctx, username, password))
		if err := errors.Join(errs...); err != nil {
			return settingsSavedMsg{err: err}
		}
		return settingsSavedMsg{err: settings.AddressError()}
	}
}

func (m *SettingsModel) cmdPing() tea.Cmd {
	ctx := m.ctx
	portal := m.portal

	return func() tea.Msg {
		return pingDoneMsg{err: portal.Ping(ctx)}
	}
}

func (m *SettingsModel) cmdToggleLock(enabled bool) tea.Cmd {
	ctx := m.ctx
	lock := m.lock

	return func() tea.Msg {
		return lockToggledMsg{enabled: enabled, err: lock.SetEnabled(ctx, enabled)}
	}
}
