// Package view provides rendering helpers for the TUI.
package view

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/slotfill/internal/timetable"
)

// TokenFormInput contains the data needed to build a token form model.
type TokenFormInput struct {
	Token     timetable.Token
	Location  timetable.Location
	Topology  *timetable.Topology
	InputView string
	Style     lipgloss.Style
	IsNew     bool
}

// NewTokenFormModel builds a token form model from input data.
func NewTokenFormModel(input TokenFormInput) TokenFormModel {
	return TokenFormModel{
		TokenID:       input.Token.ID,
		LocationLabel: LocationLabel(input.Topology, input.Location.List),
		InputView:     input.InputView,
		InputStyle:    input.Style,
		IsNew:         input.IsNew,
	}
}

// LocationLabel names a list for display: "Pool" or "Monday A11".
func LocationLabel(topology *timetable.Topology, listID string) string {
	if listID == timetable.PoolID || topology == nil {
		return "Pool"
	}
	row, col, ok := topology.Locate(listID)
	if !ok {
		return listID
	}
	return topology.Days()[row] + " " + topology.Code(row, col)
}

// NewConfirmResetModel builds the reset confirmation model from store stats.
func NewConfirmResetModel(stats timetable.Stats) ConfirmResetModel {
	return ConfirmResetModel{Tokens: stats.Tokens, Placed: stats.Placed}
}
