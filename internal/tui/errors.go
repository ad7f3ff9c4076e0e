// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-portal-client/internal/service"
	"github.com/MKhiriev/go-portal-client/internal/store"
	"github.com/MKhiriev/go-portal-client/internal/validators"
)

// humanizeError turns service errors into operator-facing text.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrWrongPassword):
		return "Неверный пароль"
	case errors.Is(err, service.ErrBiometricUnavailable):
		return "Биометрия недоступна, введите пароль (p)"
	case errors.Is(err, service.ErrBiometricCancelled):
		return "Проверка отменена"
	case errors.Is(err, service.ErrBiometricFailed):
		return "Проверка не пройдена"
	case errors.Is(err, service.ErrUnlockRequired):
		return "Сначала разблокируйте сессию"
	case errors.Is(err, service.ErrSessionLocked):
		return "Сессия заблокирована"
	case errors.Is(err, service.ErrNotConfigured):
		return "Адрес сервера не задан"
	case errors.Is(err, service.ErrPortalUnauthorized):
		return "Сервер отклонил логин или пароль"
	case errors.Is(err, service.ErrBotUnreachable):
		return "Бот недоступен"
	case errors.Is(err, service.ErrUnknownBot):
		return "Неизвестный бот"
	case errors.Is(err, service.ErrMigrationPartial):
		return "Не все учётные данные перенесены в защищённое хранилище, повторим при следующем запуске"
	case errors.Is(err, store.ErrSecretUnreadable):
		return "Сохранённые учётные данные не удалось прочитать, введите их заново"
	case errors.Is(err, store.ErrStoreWriteFailed):
		return "Не удалось сохранить настройки"
	case errors.Is(err, validators.ErrInvalidAddress):
		return "Некорректный адрес сервера"
	}
	return humanizeServerUnavailableError(err)
}

func humanizeServerUnavailableError(err error) string {
	s := strings.ToLower(err.Error())
	if errors.Is(err, service.ErrPortalUnavailable) ||
		strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Отсутствует сеть или Сервер недоступен"
	}

	return err.Error()
}
