package utils

import (
	"regexp"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Placeholder is rendered wherever an optional field is null, missing or
// empty. Views and exports must never emit raw empty output.
const Placeholder = "N/A"

var (
	printer    = message.NewPrinter(language.English)
	titleCaser = cases.Title(language.Und)
	filenameRe = regexp.MustCompile(`[^A-Za-z0-9._-]+`)
)

// Display substitutes the placeholder for empty or whitespace-only values.
func Display(s string) string {
	if strings.TrimSpace(s) == "" {
		return Placeholder
	}
	return s
}

// FormatTriState normalizes the boolean-or-string technical fields.
// true/"true"/"yes" -> "Yes", false/"false"/"no" -> "No", any other
// non-empty string passes through unchanged, empty -> placeholder.
func FormatTriState(v string) string {
	trimmed := strings.TrimSpace(v)
	if trimmed == "" {
		return Placeholder
	}
	switch strings.ToLower(trimmed) {
	case "true", "yes":
		return "Yes"
	case "false", "no":
		return "No"
	}
	return trimmed
}

// dateLayouts covers the formats seen across snapshot versions.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate parses a date string defensively against the known layouts.
func ParseDate(s string) (time.Time, bool) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders a human-readable short date, or the placeholder for a
// missing or unparseable value. Never an "Invalid Date" literal, never a panic.
func FormatDate(s string) string {
	t, ok := ParseDate(s)
	if !ok {
		return Placeholder
	}
	return t.Format("Jan 2, 2006")
}

// FormatCurrencyEUR renders a nullable amount as a grouped, euro-prefixed
// string with cents, e.g. 1234.5 -> "€1,234.50".
func FormatCurrencyEUR(v *float64) string {
	if v == nil {
		return Placeholder
	}
	return printer.Sprintf("€%.2f", *v)
}

// FormatCurrencyRounded renders a nullable amount rounded to whole euros for
// the table columns, e.g. 1234.5 -> "€1,235".
func FormatCurrencyRounded(v *float64) string {
	if v == nil {
		return Placeholder
	}
	return printer.Sprintf("€%.0f", *v)
}

// FormatCurrencyText renders a free-text-or-numeric amount: the parsed value
// as currency when one exists, otherwise the raw text as entered.
func FormatCurrencyText(raw string, v *float64) string {
	if v != nil {
		return FormatCurrencyEUR(v)
	}
	return Display(raw)
}

// FormatNumber renders a nullable quantity with grouped thousands and no
// decimals, e.g. 150000 -> "150,000".
func FormatNumber(v *float64) string {
	if v == nil {
		return Placeholder
	}
	return printer.Sprintf("%.0f", *v)
}

// FormatStatusLabel turns a raw status string into a badge label:
// "in_review" -> "In Review". Empty status renders the placeholder.
func FormatStatusLabel(status string) string {
	trimmed := strings.TrimSpace(status)
	if trimmed == "" {
		return Placeholder
	}
	return titleCaser.String(strings.ReplaceAll(trimmed, "_", " "))
}

// LocalPart returns the part of an email address before the "@", used for
// the requester column.
func LocalPart(email string) string {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return Placeholder
	}
	if i := strings.Index(trimmed, "@"); i > 0 {
		return trimmed[:i]
	}
	return trimmed
}

// SanitizeFilename collapses anything outside [A-Za-z0-9._-] so identifiers
// and customer names are safe inside a Content-Disposition filename.
func SanitizeFilename(s string) string {
	cleaned := filenameRe.ReplaceAllString(strings.TrimSpace(s), "_")
	cleaned = strings.Trim(cleaned, "_")
	if cleaned == "" {
		return "unknown"
	}
	return cleaned
}
