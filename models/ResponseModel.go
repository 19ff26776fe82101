package models

// Swagger / API docs: common response models referenced by handler annotations

// ErrorResponse is used in @Failure for error responses
type ErrorResponse struct {
	Error string `json:"error" example:"RFQ not found"`
}

// MessageResponse is generic response for APIs that return only {"message": "..."}
type MessageResponse struct {
	Message string `json:"message" example:"Success"`
}

// HealthResponse is used in @Success for the health endpoint
type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Loaded   bool   `json:"loaded" example:"true"`
	Snapshot string `json:"snapshot_id" example:"f4b9..."`
	RFQCount int    `json:"rfq_count" example:"42"`
}

// RFQListResponse is used in @Success for the partitioned list endpoint.
// Each bucket holds the records that survived the active filter; Totals
// carries the unfiltered partition sizes for the "{filtered} of {total}" line.
type RFQListResponse struct {
	SnapshotID string         `json:"snapshot_id"`
	Pending    []RFQ          `json:"PENDING"`
	Confirm    []RFQ          `json:"CONFIRM"`
	Decline    []RFQ          `json:"DECLINE"`
	Counts     map[string]int `json:"counts"`
	Totals     map[string]int `json:"totals"`
}

// SummaryResponse is used in @Success for the snapshot summary endpoint
type SummaryResponse struct {
	SnapshotID   string         `json:"snapshot_id"`
	LoadedAt     string         `json:"loaded_at"`
	Loaded       bool           `json:"loaded"`
	LoadError    string         `json:"load_error,omitempty"`
	Counts       map[string]int `json:"counts"`
	Total        int            `json:"total"`
	ProductLines []string       `json:"product_lines"`
}
