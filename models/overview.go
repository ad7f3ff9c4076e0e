// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"sort"
	"time"
)

// BotSummary is one bot entry of the portal overview (GET /api/overview).
// Amounts are in dollars, already converted by the portal.
type BotSummary struct {
	Name    string  `json:"name"`
	Short   string  `json:"short"`
	Color   string  `json:"color"`
	Healthy bool    `json:"healthy"`
	Mode    string  `json:"mode"`
	PnL     float64 `json:"pnl"`

	// Error is set by the portal when the bot could not be reached.
	Error string `json:"error,omitempty"`
}

// Overview is the aggregated portal response.
type Overview struct {
	Bots     map[string]BotSummary `json:"bots"`
	TotalPnL float64               `json:"total_pnl"`
}

// BotIDs returns bot identifiers in a stable, sorted order for display.
func (o Overview) BotIDs() []string {
	ids := make([]string, 0, len(o.Bots))
	for id := range o.Bots {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// HealthyCount returns how many bots reported healthy.
func (o Overview) HealthyCount() int {
	n := 0
	for _, b := range o.Bots {
		if b.Healthy {
			n++
		}
	}
	return n
}

// OverviewSnapshot is the result of the most recent background refresh.
type OverviewSnapshot struct {
	Overview  Overview
	FetchedAt time.Time

	// Err is the error of the most recent attempt. Overview and FetchedAt
	// keep the last successful values when Err is set.
	Err error
}
