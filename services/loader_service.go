package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"rfqportal/models"
	"rfqportal/storage"
)

// defaultSourceURL is the production RFQ endpoint, overridable with
// RFQ_SOURCE_URL for local development.
const defaultSourceURL = "https://rfq-back.azurewebsites.net/ajouter/rfq"

// LoaderService performs the single snapshot fetch per process start. There
// are no retries and no polling; a failed load leaves the application
// serving an empty record set.
type LoaderService struct {
	client    *http.Client
	sourceURL string
	store     *storage.SnapshotStore
}

func NewLoaderService(store *storage.SnapshotStore) *LoaderService {
	url := os.Getenv("RFQ_SOURCE_URL")
	if url == "" {
		url = defaultSourceURL
	}
	timeout := 30 * time.Second
	if raw := os.Getenv("RFQ_FETCH_TIMEOUT_SECONDS"); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			timeout = time.Duration(secs) * time.Second
		}
	}
	return &LoaderService{
		client:    &http.Client{Timeout: timeout},
		sourceURL: url,
		store:     store,
	}
}

// Load issues the one GET request and installs the result. Loading is always
// marked complete, success or not, so no view ever waits indefinitely.
func (ls *LoaderService) Load() {
	log.Printf("Loading RFQ snapshot from %s", ls.sourceURL)
	snap, err := ls.fetch()
	if err != nil {
		ls.store.InstallEmpty(err.Error())
		return
	}
	ls.store.Install(snap)
}

func (ls *LoaderService) fetch() (*models.Snapshot, error) {
	resp, err := ls.client.Get(ls.sourceURL)
	if err != nil {
		return nil, fmt.Errorf("fetch RFQs: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch RFQs: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read RFQ response: %w", err)
	}
	return DecodeSnapshot(body)
}

// DecodeSnapshot deserializes a response body in either accepted shape: the
// canonical object with PENDING / CONFIRM / DECLINE buckets, or the legacy
// flat array, which is bucketed by each record's own status string.
func DecodeSnapshot(body []byte) (*models.Snapshot, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("decode RFQs: empty response body")
	}

	snap := &models.Snapshot{}
	if trimmed[0] == '{' {
		var grouped struct {
			Pending []models.RFQ `json:"PENDING"`
			Confirm []models.RFQ `json:"CONFIRM"`
			Decline []models.RFQ `json:"DECLINE"`
		}
		if err := json.Unmarshal(trimmed, &grouped); err != nil {
			return nil, fmt.Errorf("decode partitioned RFQs: %w", err)
		}
		snap.Pending = grouped.Pending
		snap.Confirm = grouped.Confirm
		snap.Decline = grouped.Decline
	} else {
		var flat []models.RFQ
		if err := json.Unmarshal(trimmed, &flat); err != nil {
			return nil, fmt.Errorf("decode RFQ list: %w", err)
		}
		for _, r := range flat {
			switch models.PartitionForStatus(r.Status) {
			case models.PartitionConfirm:
				snap.Confirm = append(snap.Confirm, r)
			case models.PartitionDecline:
				snap.Decline = append(snap.Decline, r)
			default:
				snap.Pending = append(snap.Pending, r)
			}
		}
	}

	for _, part := range [][]models.RFQ{snap.Pending, snap.Confirm, snap.Decline} {
		for i := range part {
			part[i].MergeContact()
		}
	}
	return snap, nil
}
