package models

import (
	"encoding/json"
	"testing"
)

func TestFlexIDDecodesStringAndNumber(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`"2532-ASS-00"`, "2532-ASS-00"},
		{`1042`, "1042"},
		{`null`, ""},
	}
	for _, tc := range cases {
		var id FlexID
		if err := json.Unmarshal([]byte(tc.in), &id); err != nil {
			t.Fatalf("unmarshal %s: %v", tc.in, err)
		}
		if id.String() != tc.want {
			t.Errorf("FlexID(%s) = %q, want %q", tc.in, id, tc.want)
		}
	}
}

func TestFlexNumberDecodesNumberAndText(t *testing.T) {
	var n FlexNumber
	if err := json.Unmarshal([]byte(`15000.5`), &n); err != nil {
		t.Fatal(err)
	}
	if n.Value == nil || *n.Value != 15000.5 {
		t.Errorf("expected parsed value 15000.5, got %+v", n.Value)
	}
	if n.Raw != "15000.5" {
		t.Errorf("expected raw '15000.5', got %q", n.Raw)
	}

	var text FlexNumber
	if err := json.Unmarshal([]byte(`"tooling shared with customer"`), &text); err != nil {
		t.Fatal(err)
	}
	if text.Value != nil {
		t.Errorf("free text must not parse to a value, got %v", *text.Value)
	}
	if text.Raw != "tooling shared with customer" {
		t.Errorf("raw text lost: %q", text.Raw)
	}

	var numericText FlexNumber
	if err := json.Unmarshal([]byte(`"12500"`), &numericText); err != nil {
		t.Fatal(err)
	}
	if numericText.Value == nil || *numericText.Value != 12500 {
		t.Errorf("numeric text should parse, got %+v", numericText.Value)
	}
}

func TestFlexStringDecodesBoolAndString(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`true`, "true"},
		{`false`, "false"},
		{`"Partially aligned"`, "Partially aligned"},
		{`null`, ""},
	}
	for _, tc := range cases {
		var s FlexString
		if err := json.Unmarshal([]byte(tc.in), &s); err != nil {
			t.Fatalf("unmarshal %s: %v", tc.in, err)
		}
		if s.String() != tc.want {
			t.Errorf("FlexString(%s) = %q, want %q", tc.in, s, tc.want)
		}
	}
}

func TestRFQDecodesBothSchemaVersions(t *testing.T) {
	// Early schema: numeric id, flattened contact, numeric development costs.
	early := `{
		"rfq_id": 2532,
		"customer_name": "Acme Motors",
		"annual_volume": 150000,
		"development_costs": 25000,
		"technical_capacity": true,
		"contact_email": "buyer@acme.example",
		"status": "pending"
	}`
	var r RFQ
	if err := json.Unmarshal([]byte(early), &r); err != nil {
		t.Fatal(err)
	}
	if r.ID.String() != "2532" {
		t.Errorf("expected id '2532', got %q", r.ID)
	}
	if r.DevelopmentCosts.Value == nil || *r.DevelopmentCosts.Value != 25000 {
		t.Errorf("development costs should parse numerically: %+v", r.DevelopmentCosts)
	}
	if r.TechnicalCapacity.String() != "true" {
		t.Errorf("expected 'true', got %q", r.TechnicalCapacity)
	}

	// Later schema: composite string id, nested contact, free-text costs.
	late := `{
		"rfq_id": "2532-ASS-00",
		"customer_name": "Acme Motors",
		"development_costs": "shared tooling, no upfront",
		"technical_capacity": "needs new line",
		"contact": {
			"contact_id": 7,
			"contact_role": "Purchasing Lead",
			"contact_email": "lead@acme.example",
			"contact_phone": "+33 1 00 00 00 00"
		}
	}`
	var r2 RFQ
	if err := json.Unmarshal([]byte(late), &r2); err != nil {
		t.Fatal(err)
	}
	r2.MergeContact()
	if r2.ID.String() != "2532-ASS-00" {
		t.Errorf("expected composite id, got %q", r2.ID)
	}
	if r2.ContactEmail != "lead@acme.example" {
		t.Errorf("nested contact not merged: %q", r2.ContactEmail)
	}
	if r2.ContactID == nil || *r2.ContactID != 7 {
		t.Errorf("nested contact id not merged: %+v", r2.ContactID)
	}
	if r2.Contact != nil {
		t.Error("nested contact should be cleared after merge")
	}
	if r2.DevelopmentCosts.Value != nil {
		t.Error("free-text development costs must not parse to a value")
	}
}

func TestMergeContactKeepsFlattenedValues(t *testing.T) {
	r := RFQ{
		ContactEmail: "flat@acme.example",
		Contact:      &Contact{Email: "nested@acme.example", Phone: "123"},
	}
	r.MergeContact()
	if r.ContactEmail != "flat@acme.example" {
		t.Errorf("flattened value must win, got %q", r.ContactEmail)
	}
	if r.ContactPhone != "123" {
		t.Errorf("empty flattened field should take nested value, got %q", r.ContactPhone)
	}
}

func TestPartitionForStatus(t *testing.T) {
	cases := map[string]string{
		"pending":   PartitionPending,
		"CONFIRMED": PartitionConfirm,
		"approved":  PartitionConfirm,
		"declined":  PartitionDecline,
		"rejected":  PartitionDecline,
		"":          PartitionPending,
		"in_review": PartitionPending,
	}
	for status, want := range cases {
		if got := PartitionForStatus(status); got != want {
			t.Errorf("PartitionForStatus(%q) = %q, want %q", status, got, want)
		}
	}
}

func TestSnapshotFindAndCounts(t *testing.T) {
	snap := &Snapshot{
		Pending: []RFQ{{ID: "A-1"}, {ID: "A-2"}},
		Confirm: []RFQ{{ID: "C-1"}},
		Decline: []RFQ{},
	}
	if snap.Total() != 3 {
		t.Errorf("expected total 3, got %d", snap.Total())
	}
	if got := snap.Counts()[PartitionPending]; got != 2 {
		t.Errorf("expected 2 pending, got %d", got)
	}
	rfq, ok := snap.Find("C-1")
	if !ok || rfq.ID.String() != "C-1" {
		t.Errorf("Find(C-1) failed: %v %v", rfq, ok)
	}
	if _, ok := snap.Find("missing"); ok {
		t.Error("Find should miss on unknown id")
	}
	if snap.Partition("nope") != nil {
		t.Error("unknown partition name must return nil")
	}
}
