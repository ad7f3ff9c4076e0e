// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-portal-client/internal/service"
	"github.com/MKhiriev/go-portal-client/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// LockModel is the lock screen. Opening it prompts for the biometric check;
// when the capability is unavailable the operator can fall back to the
// server password.
type LockModel struct {
	ctx      context.Context
	lock     sessionLock
	settings serverSettings

	spinner        spinner.Model
	password       textinput.Model
	passwordMode   bool
	authenticating bool
	errMsg         string
}

// NewLockModel creates the lock screen.
func NewLockModel(ctx context.Context, lock sessionLock, settings serverSettings) *LockModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	passwordInput := textinput.New()
	passwordInput.Placeholder = "пароль сервера"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &LockModel{
		ctx:      ctx,
		lock:     lock,
		settings: settings,
		spinner:  s,
		password: passwordInput,
	}
}

// Init implements [tea.Model]. A session that is already unlocked (the lock
// is disabled) goes straight on; otherwise the biometric prompt starts.
func (m *LockModel) Init() tea.Cmd {
	m.errMsg = ""
	m.passwordMode = false
	m.password.Reset()
	m.password.Blur()

	if m.lock.Phase() == models.LockPhaseUnlocked {
		return m.navigateUnlocked()
	}
	return m.startUnlock()
}

func (m *LockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case unlockDoneMsg:
		m.authenticating = false
		if msg.err == nil {
			return m, m.navigateUnlocked()
		}
		if errors.Is(msg.err, service.ErrBiometricUnavailable) {
			m.enterPasswordMode()
		}
		m.errMsg = humanizeError(msg.err)
		return m, nil

	case spinner.TickMsg:
		if !m.authenticating {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.passwordMode {
			return m.updatePassword(msg)
		}
		switch {
		case key.Matches(msg, keys.enter):
			if m.authenticating {
				return m, nil
			}
			m.errMsg = ""
			return m, m.startUnlock()
		case key.Matches(msg, keys.password):
			m.enterPasswordMode()
			return m, textinput.Blink
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m *LockModel) updatePassword(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.passwordMode = false
		m.password.Reset()
		m.password.Blur()
		m.errMsg = ""
		return m, nil
	case key.Matches(msg, keys.enter):
		if err := m.lock.UnlockWithPassword(m.password.Value()); err != nil {
			m.password.Reset()
			m.errMsg = humanizeError(err)
			return m, nil
		}
		m.authenticating = false
		m.password.Reset()
		return m, m.navigateUnlocked()
	}

	var cmd tea.Cmd
	m.password, cmd = m.password.Update(msg)
	return m, cmd
}

func (m *LockModel) View() string {
	var b strings.Builder

	switch {
	case m.passwordMode:
		b.WriteString("Введите пароль сервера для разблокировки\n\n")
		b.WriteString("Пароль │ [")
		b.WriteString(m.password.View())
		b.WriteString("]\n")
	case m.authenticating:
		b.WriteString(m.spinner.View())
		b.WriteString(" Ожидание биометрической проверки...\n")
	default:
		b.WriteString("Сессия заблокирована\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	hotKeys := "enter: разблокировать │ p: пароль │ q: выход"
	if m.passwordMode {
		hotKeys = "enter: подтвердить │ esc: назад"
	}
	return renderPage("БЛОКИРОВКА", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *LockModel) enterPasswordMode() {
	m.passwordMode = true
	m.password.Reset()
	m.password.Focus()
}

func (m *LockModel) startUnlock() tea.Cmd {
	m.authenticating = true
	return tea.Batch(m.spinner.Tick, m.cmdUnlock())
}

func (m *LockModel) cmdUnlock() tea.Cmd {
	ctx := m.ctx
	lock := m.lock

	return func() tea.Msg {
		outcome, err := lock.RequestUnlock(ctx)
		return unlockDoneMsg{outcome: outcome, err: err}
	}
}

func (m *LockModel) navigateUnlocked() tea.Cmd {
	page := pageOverview
	if !m.settings.IsConfigured() {
		page = pageSettings
	}
	return func() tea.Msg { return NavigateTo{Page: page} }
}
