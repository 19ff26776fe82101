package utils

import "testing"

func TestFormatTriState(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"true", "Yes"},
		{"TRUE", "Yes"},
		{"yes", "Yes"},
		{"Yes", "Yes"},
		{"false", "No"},
		{"no", "No"},
		{"NO", "No"},
		{"Partially aligned", "Partially aligned"},
		{"", Placeholder},
		{"   ", Placeholder},
	}
	for _, tc := range cases {
		if got := FormatTriState(tc.in); got != tc.want {
			t.Errorf("FormatTriState(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatDateDefensive(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2024-03-15T10:30:00Z", "Mar 15, 2024"},
		{"2024-03-15", "Mar 15, 2024"},
		{"2024-03-15 10:30:00", "Mar 15, 2024"},
		{"", Placeholder},
		{"not-a-date", Placeholder},
		{"2024-13-45", Placeholder},
	}
	for _, tc := range cases {
		if got := FormatDate(tc.in); got != tc.want {
			t.Errorf("FormatDate(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatCurrencyEUR(t *testing.T) {
	v := 1234.5
	if got := FormatCurrencyEUR(&v); got != "€1,234.50" {
		t.Errorf("expected €1,234.50, got %q", got)
	}
	if got := FormatCurrencyEUR(nil); got != Placeholder {
		t.Errorf("nil amount must render placeholder, got %q", got)
	}
	big := 2500000.0
	if got := FormatCurrencyRounded(&big); got != "€2,500,000" {
		t.Errorf("expected €2,500,000, got %q", got)
	}
}

func TestFormatCurrencyText(t *testing.T) {
	v := 25000.0
	if got := FormatCurrencyText("25000", &v); got != "€25,000.00" {
		t.Errorf("parsed value should render as currency, got %q", got)
	}
	if got := FormatCurrencyText("shared tooling", nil); got != "shared tooling" {
		t.Errorf("free text must pass through, got %q", got)
	}
	if got := FormatCurrencyText("", nil); got != Placeholder {
		t.Errorf("empty text must render placeholder, got %q", got)
	}
}

func TestFormatNumber(t *testing.T) {
	v := 150000.0
	if got := FormatNumber(&v); got != "150,000" {
		t.Errorf("expected 150,000, got %q", got)
	}
	if got := FormatNumber(nil); got != Placeholder {
		t.Errorf("nil must render placeholder, got %q", got)
	}
}

func TestDisplay(t *testing.T) {
	if got := Display(""); got != Placeholder {
		t.Errorf("empty must render placeholder, got %q", got)
	}
	if got := Display("  "); got != Placeholder {
		t.Errorf("whitespace must render placeholder, got %q", got)
	}
	if got := Display("value"); got != "value" {
		t.Errorf("value must pass through, got %q", got)
	}
}

func TestFormatStatusLabel(t *testing.T) {
	if got := FormatStatusLabel("in_review"); got != "In Review" {
		t.Errorf("expected 'In Review', got %q", got)
	}
	if got := FormatStatusLabel("pending"); got != "Pending" {
		t.Errorf("expected 'Pending', got %q", got)
	}
	if got := FormatStatusLabel(""); got != Placeholder {
		t.Errorf("empty status must render placeholder, got %q", got)
	}
}

func TestLocalPart(t *testing.T) {
	if got := LocalPart("jane.doe@example.com"); got != "jane.doe" {
		t.Errorf("expected 'jane.doe', got %q", got)
	}
	if got := LocalPart("no-at-sign"); got != "no-at-sign" {
		t.Errorf("expected pass-through, got %q", got)
	}
	if got := LocalPart(""); got != Placeholder {
		t.Errorf("empty email must render placeholder, got %q", got)
	}
}

func TestSanitizeFilename(t *testing.T) {
	if got := SanitizeFilename("Acme Motors / EU"); got != "Acme_Motors_EU" {
		t.Errorf("expected 'Acme_Motors_EU', got %q", got)
	}
	if got := SanitizeFilename("2532-ASS-00"); got != "2532-ASS-00" {
		t.Errorf("safe name must pass through, got %q", got)
	}
	if got := SanitizeFilename("///"); got != "unknown" {
		t.Errorf("fully unsafe name must fall back, got %q", got)
	}
}
