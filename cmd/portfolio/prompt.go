package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/Abhi22shek/portfolio-core/internal/models"
)

// promptDraft interactively collects the fields of a new entry draft.
func promptDraft(scanner *bufio.Scanner) models.DraftEntry {
	var d models.DraftEntry
	d.Title = promptLine(scanner, "Title: ")
	d.Description = promptLine(scanner, "Description: ")
	d.Tags = promptLine(scanner, "Tags (comma-separated): ")
	d.Media = promptLine(scanner, "Media URL (optional): ")
	d.Featured = strings.EqualFold(promptLine(scanner, "Featured? (y/n): "), "y")
	return d
}

// promptContact interactively collects a contact message.
func promptContact(scanner *bufio.Scanner) models.ContactMessage {
	return models.ContactMessage{
		Name:    promptLine(scanner, "Name: "),
		Email:   promptLine(scanner, "Email: "),
		Subject: promptLine(scanner, "Subject: "),
		Message: promptLine(scanner, "Message: "),
	}
}

func promptLine(scanner *bufio.Scanner, label string) string {
	fmt.Print(label)
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}
