// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-portal-client/models"
)

// renderBuildInfoWindow shows the build stamp and the portal the client is
// pointed at, which is what an operator reports along with a bug.
func renderBuildInfoWindow(info models.AppBuildInfo, endpoint models.Endpoint, configured bool) string {
	var b strings.Builder

	b.WriteString("Название приложения: PortalClient\n")
	b.WriteString("Версия: ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\n")
	b.WriteString("Дата: ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\n")
	b.WriteString("Коммит: ")
	b.WriteString(valueOrNA(info.BuildCommit()))
	b.WriteString("\n\n")
	b.WriteString("Сервер: ")
	switch {
	case !configured:
		b.WriteString("не задан")
	case endpoint.IsSecure():
		b.WriteString(endpoint.BaseURL())
	default:
		b.WriteString(endpoint.BaseURL() + " (HTTP)")
	}

	return renderPage("ИНФОРМАЦИЯ О ПРОГРАММЕ", b.String(), "esc: назад")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
