package services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"rfqportal/storage"
)

const partitionedBody = `{
	"PENDING": [
		{"rfq_id": "RFQ-001", "customer_name": "Acme Motors", "status": "pending",
		 "contact": {"contact_id": 7, "contact_email": "nested@acme.example", "contact_role": "Buyer"}}
	],
	"CONFIRM": [
		{"rfq_id": 2, "customer_name": "Borg Industries", "status": "approved"}
	],
	"DECLINE": []
}`

const flatBody = `[
	{"rfq_id": "RFQ-001", "customer_name": "Acme Motors", "status": "pending"},
	{"rfq_id": "RFQ-002", "customer_name": "Borg Industries", "status": "approved"},
	{"rfq_id": "RFQ-003", "customer_name": "Cobalt GmbH", "status": "rejected"},
	{"rfq_id": "RFQ-004", "customer_name": "Delta SA", "status": "in_review"}
]`

func TestDecodeSnapshotPartitioned(t *testing.T) {
	snap, err := DecodeSnapshot([]byte(partitionedBody))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(snap.Pending) != 1 || len(snap.Confirm) != 1 || len(snap.Decline) != 0 {
		t.Fatalf("unexpected partition sizes: %d/%d/%d",
			len(snap.Pending), len(snap.Confirm), len(snap.Decline))
	}
	// Nested contact flattened during decode.
	r := snap.Pending[0]
	if r.ContactEmail != "nested@acme.example" || r.ContactRole != "Buyer" {
		t.Errorf("contact not merged: email=%q role=%q", r.ContactEmail, r.ContactRole)
	}
	// Numeric identifier normalized to text.
	if snap.Confirm[0].ID.String() != "2" {
		t.Errorf("expected id \"2\", got %q", snap.Confirm[0].ID)
	}
}

func TestDecodeSnapshotFlatArrayBucketsByStatus(t *testing.T) {
	snap, err := DecodeSnapshot([]byte(flatBody))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	// pending and in_review land in PENDING, approved in CONFIRM,
	// rejected in DECLINE.
	if len(snap.Pending) != 2 || len(snap.Confirm) != 1 || len(snap.Decline) != 1 {
		t.Fatalf("unexpected bucketing: %d/%d/%d",
			len(snap.Pending), len(snap.Confirm), len(snap.Decline))
	}
	if snap.Decline[0].ID.String() != "RFQ-003" {
		t.Errorf("wrong record declined: %q", snap.Decline[0].ID)
	}
}

func TestDecodeSnapshotRejectsMalformed(t *testing.T) {
	for _, body := range []string{"", "   ", "not json", `{"PENDING": "nope"}`} {
		if _, err := DecodeSnapshot([]byte(body)); err == nil {
			t.Errorf("expected error for body %q", body)
		}
	}
}

func TestLoadInstallsFetchedSnapshot(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(partitionedBody))
	}))
	defer srv.Close()
	t.Setenv("RFQ_SOURCE_URL", srv.URL)

	store := storage.NewSnapshotStore()
	NewLoaderService(store).Load()

	loaded, loadErr := store.Loaded()
	if !loaded || loadErr != "" {
		t.Fatalf("expected clean load, loaded=%v err=%q", loaded, loadErr)
	}
	snap := store.Get()
	if snap.Total() != 2 {
		t.Errorf("expected 2 records, got %d", snap.Total())
	}
	if _, ok := snap.Find("RFQ-001"); !ok {
		t.Errorf("RFQ-001 missing from installed snapshot")
	}
}

func TestLoadFailureServesEmptySnapshot(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()
	t.Setenv("RFQ_SOURCE_URL", srv.URL)

	store := storage.NewSnapshotStore()
	NewLoaderService(store).Load()

	loaded, loadErr := store.Loaded()
	if !loaded {
		t.Fatal("load must complete even on failure")
	}
	if loadErr == "" {
		t.Error("expected the failure reason to be recorded")
	}
	if store.Get().Total() != 0 {
		t.Errorf("expected empty record set, got %d records", store.Get().Total())
	}
}
