package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	tCases := []struct {
		name    string
		from    LineStatus
		to      LineStatus
		allowed bool
	}{
		{name: "en_cours_to_pret", from: LineStatusEnCours, to: LineStatusPret, allowed: true},
		{name: "en_cours_to_annulee", from: LineStatusEnCours, to: LineStatusAnnulee, allowed: true},
		{name: "pret_to_livre", from: LineStatusPret, to: LineStatusLivre, allowed: true},
		{name: "no_skipping_pret", from: LineStatusEnCours, to: LineStatusLivre, allowed: false},
		{name: "pret_cannot_cancel", from: LineStatusPret, to: LineStatusAnnulee, allowed: false},
		{name: "livre_is_terminal", from: LineStatusLivre, to: LineStatusEnCours, allowed: false},
		{name: "livre_cannot_cancel", from: LineStatusLivre, to: LineStatusAnnulee, allowed: false},
		{name: "annulee_is_terminal", from: LineStatusAnnulee, to: LineStatusEnCours, allowed: false},
		{name: "no_self_transition", from: LineStatusPret, to: LineStatusPret, allowed: false},
		{name: "no_regression", from: LineStatusPret, to: LineStatusEnCours, allowed: false},
	}

	for _, tCase := range tCases {
		t.Run(tCase.name, func(t *testing.T) {
			require.Equal(t, tCase.allowed, CanTransition(tCase.from, tCase.to))
		})
	}
}

func TestDeriveOrderStatus(t *testing.T) {
	lines := func(statuses ...LineStatus) []OrderLine {
		result := make([]OrderLine, 0, len(statuses))
		for _, s := range statuses {
			result = append(result, OrderLine{Status: s})
		}
		return result
	}

	tCases := []struct {
		name     string
		lines    []OrderLine
		expected OrderStatus
	}{
		{name: "all_en_cours", lines: lines(LineStatusEnCours, LineStatusEnCours), expected: OrderStatusEnCours},
		{name: "livre_and_en_cours", lines: lines(LineStatusLivre, LineStatusEnCours), expected: OrderStatusEnCours},
		{name: "livre_and_pret", lines: lines(LineStatusLivre, LineStatusPret), expected: OrderStatusEnCours},
		{name: "all_livre", lines: lines(LineStatusLivre, LineStatusLivre), expected: OrderStatusComplete},
		{name: "livre_and_annulee", lines: lines(LineStatusLivre, LineStatusAnnulee), expected: OrderStatusPartiellementComplete},
		{name: "all_annulee", lines: lines(LineStatusAnnulee, LineStatusAnnulee), expected: OrderStatusAnnulee},
		{name: "annulee_and_en_cours", lines: lines(LineStatusAnnulee, LineStatusEnCours), expected: OrderStatusEnCours},
		{name: "single_livre", lines: lines(LineStatusLivre), expected: OrderStatusComplete},
	}

	for _, tCase := range tCases {
		t.Run(tCase.name, func(t *testing.T) {
			require.Equal(t, tCase.expected, DeriveOrderStatus(tCase.lines))
		})
	}
}

func TestParseLineStatus(t *testing.T) {
	status, ok := ParseLineStatus("pret")
	require.True(t, ok)
	require.Equal(t, LineStatusPret, status)

	_, ok = ParseLineStatus("shipped")
	require.False(t, ok)
}
