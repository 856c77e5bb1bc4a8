// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-deck-keeper/models"
)

const (
	maxNameWidth = 32
	maxSideWidth = 40
	timeLayout   = "2006-01-02 15:04"
)

// RenderDeckList renders the deck index as a table. The active deck is
// marked with ">".
func RenderDeckList(decks []models.DeckMetadata, activeID string) string {
	if len(decks) == 0 {
		return renderPage("DECKS", "", "deckkeeper deck create <name>")
	}

	idWidth := lipgloss.Width("ID")
	nameWidth := lipgloss.Width("Name")
	for _, d := range decks {
		idWidth = max(idWidth, lipgloss.Width(d.ID))
		nameWidth = max(nameWidth, lipgloss.Width(fitText(d.Name, maxNameWidth)))
	}
	idWidth += 2 // selection marker and a space

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-*s │ %-*s │ %5s │ %s\n", idWidth, "ID", nameWidth, "Name", "Cards", "Updated"))
	b.WriteString(strings.Repeat("─", idWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", nameWidth))
	b.WriteString("─┼───────┼─")
	b.WriteString(strings.Repeat("─", len(timeLayout)))
	b.WriteString("\n")

	for _, d := range decks {
		marker := " "
		if d.ID == activeID {
			marker = ">"
		}
		row := fmt.Sprintf("%-*s │ %-*s │ %5d │ %s",
			idWidth, marker+" "+d.ID,
			nameWidth, fitText(d.Name, maxNameWidth),
			d.CardCount,
			formatTime(d.UpdatedAt))
		if d.ID == activeID {
			row = activeStyle.Render(row)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	return renderPage("DECKS", strings.TrimRight(b.String(), "\n"), "> marks the active deck")
}

// RenderDeck renders one deck with its cards in study order. Card numbers
// start at 0, the index expected by "deck remove-card".
func RenderDeck(deck models.Deck) string {
	var b strings.Builder

	b.WriteString("ID: ")
	b.WriteString(deck.ID)
	b.WriteString("\nName: ")
	b.WriteString(deck.Name)
	b.WriteString("\nDescription: ")
	b.WriteString(valueOrDash(deck.Description))
	b.WriteString("\nCreated: ")
	b.WriteString(formatTime(deck.CreatedAt))
	b.WriteString("\nUpdated: ")
	b.WriteString(formatTime(deck.UpdatedAt))
	b.WriteString("\nCards: ")
	b.WriteString(strconv.Itoa(len(deck.Cards)))

	if len(deck.Cards) > 0 {
		numWidth := len(strconv.Itoa(len(deck.Cards) - 1))
		b.WriteString("\n")
		for i, card := range deck.Cards {
			b.WriteString(fmt.Sprintf("\n%*d. %s │ %s",
				numWidth, i,
				fitText(valueOrDash(card.Front), maxSideWidth),
				fitText(valueOrDash(card.Back), maxSideWidth)))
		}
	}

	return renderPage("DECK", b.String(), "")
}

// RenderStorage renders the storage preference and sign-in state.
func RenderStorage(storageType models.StorageType, fileName string, signedIn bool) string {
	var b strings.Builder

	b.WriteString("Backend: ")
	b.WriteString(storageType.Title())
	b.WriteString(" (")
	b.WriteString(storageType.String())
	b.WriteString(")\nFile name: ")
	b.WriteString(valueOrDash(fileName))
	b.WriteString("\nSigned in: ")
	if signedIn {
		b.WriteString("yes")
	} else {
		b.WriteString("no")
	}

	return renderPage("STORAGE", b.String(), "deckkeeper storage set <local|file|google>")
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(timeLayout)
}
