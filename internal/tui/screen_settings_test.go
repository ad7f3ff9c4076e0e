package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-portal-client/internal/mock"
	"github.com/MKhiriev/go-portal-client/internal/service"
	"github.com/MKhiriev/go-portal-client/internal/store"
	"github.com/MKhiriev/go-portal-client/models"
)

func newSettingsScreen(t *testing.T, settings *fakeSettings, lock *fakeLock) (*SettingsModel, *mock.MockClientPortalService) {
	t.Helper()
	portal := mock.NewMockClientPortalService(gomock.NewController(t))
	m := NewSettingsModel(context.Background(), settings, lock, portal)
	m.Init()
	return m, portal
}

func TestSettingsModel_InitFillsForm(t *testing.T) {
	settings := &fakeSettings{
		address:    "192.168.1.10:8080",
		credential: models.Credential{Username: "ops", Password: "pw"},
	}
	m, _ := newSettingsScreen(t, settings, newFakeLock(models.LockPhaseUnlocked))

	assert.Equal(t, "192.168.1.10:8080", m.inputs[fieldAddress].Value())
	assert.Equal(t, "ops", m.inputs[fieldUsername].Value())
	assert.Equal(t, "pw", m.inputs[fieldPassword].Value())
	assert.True(t, m.lockEnabled)
	assert.Contains(t, m.View(), "Блокировка сессии: включена")
}

func TestSettingsModel_EndpointPreview(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"empty", "", "Адрес не задан"},
		{"public http upgraded", "http://portal.example.com", "Подключение: https://portal.example.com"},
		{"local http kept", "http://192.168.1.10:8080", "без шифрования"},
		{"rejected", "https://", "Некорректный адрес сервера"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newSettingsScreen(t, &fakeSettings{}, newFakeLock(models.LockPhaseUnlocked))
			m.inputs[fieldAddress].SetValue(tt.raw)
			assert.Contains(t, m.endpointPreview(), tt.want)
		})
	}
}

func TestSettingsModel_Save(t *testing.T) {
	settings := &fakeSettings{address: "old.example.com"}
	m, _ := newSettingsScreen(t, settings, newFakeLock(models.LockPhaseUnlocked))

	m.inputs[fieldAddress].SetValue("  portal.example.com ")
	m.inputs[fieldUsername].SetValue("ops")
	m.inputs[fieldPassword].SetValue("pw")

	_, cmd := m.Update(keyPress("enter"))
	require.NotNil(t, cmd)
	assert.True(t, m.busy)

	msg := cmd()
	assert.Equal(t, settingsSavedMsg{}, msg)
	assert.Equal(t, "portal.example.com", settings.address)
	assert.Equal(t, models.Credential{Username: "ops", Password: "pw"}, settings.credential)

	_, _ = m.Update(msg)
	assert.False(t, m.busy)
	assert.Equal(t, "Сохранено", m.status)
}

func TestSettingsModel_SaveFailure(t *testing.T) {
	settings := &fakeSettings{setCredentialErr: fmt.Errorf("%w: locked", store.ErrStoreWriteFailed)}
	m, _ := newSettingsScreen(t, settings, newFakeLock(models.LockPhaseUnlocked))

	_, cmd := m.Update(keyPress("enter"))
	_, _ = m.Update(cmd())

	assert.Equal(t, "Не удалось сохранить настройки", m.errMsg)
}

func TestSettingsModel_SaveRejectedAddress(t *testing.T) {
	settings := &fakeSettings{addressErr: errors.New("invalid")}
	m, _ := newSettingsScreen(t, settings, newFakeLock(models.LockPhaseUnlocked))

	_, cmd := m.Update(keyPress("enter"))
	msg := cmd()
	assert.Equal(t, settingsSavedMsg{err: settings.addressErr}, msg)
}

func TestSettingsModel_Ping(t *testing.T) {
	m, portal := newSettingsScreen(t, &fakeSettings{}, newFakeLock(models.LockPhaseUnlocked))

	portal.EXPECT().Ping(gomock.Any()).Return(service.ErrPortalUnauthorized)

	_, cmd := m.Update(keyPress("ctrl+t"))
	require.NotNil(t, cmd)
	_, _ = m.Update(cmd())

	assert.Equal(t, "Сервер отклонил логин или пароль", m.errMsg)
}

func TestSettingsModel_ToggleLock(t *testing.T) {
	t.Run("disable", func(t *testing.T) {
		lock := newFakeLock(models.LockPhaseUnlocked)
		m, _ := newSettingsScreen(t, &fakeSettings{}, lock)

		_, cmd := m.Update(keyPress("ctrl+l"))
		require.NotNil(t, cmd)
		_, _ = m.Update(cmd())

		assert.False(t, lock.State().Enabled)
		assert.False(t, m.lockEnabled)
		assert.Equal(t, "Блокировка выключена", m.status)
	})

	t.Run("refused", func(t *testing.T) {
		lock := newFakeLock(models.LockPhaseUnlocked)
		lock.setEnabledErr = service.ErrUnlockRequired
		m, _ := newSettingsScreen(t, &fakeSettings{}, lock)

		_, cmd := m.Update(keyPress("ctrl+l"))
		_, _ = m.Update(cmd())

		assert.True(t, m.lockEnabled)
		assert.Equal(t, "Сначала разблокируйте сессию", m.errMsg)
	})
}

func TestSettingsModel_BusyIgnoresSecondAction(t *testing.T) {
	m, _ := newSettingsScreen(t, &fakeSettings{}, newFakeLock(models.LockPhaseUnlocked))

	_, first := m.Update(keyPress("enter"))
	_, second := m.Update(keyPress("ctrl+t"))

	assert.NotNil(t, first)
	assert.Nil(t, second)
}

func TestSettingsModel_EscRequiresAddress(t *testing.T) {
	m, _ := newSettingsScreen(t, &fakeSettings{}, newFakeLock(models.LockPhaseUnlocked))

	_, cmd := m.Update(keyPress("esc"))
	assert.Nil(t, cmd)
	assert.Equal(t, "Адрес сервера не задан", m.errMsg)

	m.settings = &fakeSettings{configured: true}
	_, cmd = m.Update(keyPress("esc"))
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageOverview}, cmd())
}
