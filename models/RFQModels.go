package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Workflow partitions. The backend buckets RFQs into these three groups;
// partition membership is authoritative, the record's own status string is
// only a display label.
const (
	PartitionPending = "PENDING"
	PartitionConfirm = "CONFIRM"
	PartitionDecline = "DECLINE"
)

// PartitionNames in tab display order.
var PartitionNames = []string{PartitionPending, PartitionDecline, PartitionConfirm}

// FlexID decodes a JSON string or number into an opaque string label. RFQ
// identifiers started life as bare integers and later became composite
// strings like "2532-ASS-00", so no numeric semantics are ever assumed.
type FlexID string

func (f *FlexID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FlexID(n.String())
	return nil
}

func (f FlexID) String() string { return string(f) }

// FlexNumber decodes a JSON number or free-text string. Development costs
// were numeric in the early schema and free text later; the raw text is kept
// for display and the parsed value, when one exists, is used for filtering
// and export formatting.
type FlexNumber struct {
	Raw   string
	Value *float64
}

func (f *FlexNumber) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*f = FlexNumber{}
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		f.Raw = s
		if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			f.Value = &v
		}
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	f.Raw = strconv.FormatFloat(v, 'f', -1, 64)
	f.Value = &v
	return nil
}

func (f FlexNumber) MarshalJSON() ([]byte, error) {
	if f.Raw == "" {
		return []byte("null"), nil
	}
	return json.Marshal(f.Raw)
}

// FlexString decodes a JSON string or boolean into a string. Technical
// capacity and scope alignment arrive as booleans in one schema version and
// free text in another; tri-state normalization happens at render time.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch string(b) {
	case "", "null":
		*f = ""
		return nil
	case "true":
		*f = "true"
		return nil
	case "false":
		*f = "false"
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*f = FlexString(s)
	return nil
}

func (f FlexString) String() string { return string(f) }

// Contact is the nested contact object of the current schema. Older
// snapshots flatten the same fields onto the RFQ itself; MergeContact
// reconciles the two forms.
type Contact struct {
	ID        *int64 `json:"contact_id,omitempty"`
	Role      string `json:"contact_role"`
	Email     string `json:"contact_email"`
	Phone     string `json:"contact_phone"`
	CreatedAt string `json:"contact_created_at"`
}

// RFQ is the canonical in-memory record. The snapshot is read-only after
// load; nothing in this application ever mutates or persists one.
type RFQ struct {
	ID            FlexID `json:"rfq_id" example:"2532-ASS-00"`
	CustomerName  string `json:"customer_name" example:"Acme Motors"`
	Application   string `json:"application"`
	ProductLine   string `json:"product_line"`
	CustomerPN    string `json:"customer_pn"`
	RevisionLevel string `json:"revision_level"`
	DeliveryZone  string `json:"delivery_zone"`
	DeliveryPlant string `json:"delivery_plant"`

	AnnualVolume       *float64   `json:"annual_volume"`
	TargetPriceEUR     *float64   `json:"target_price_eur"`
	DevelopmentCosts   FlexNumber `json:"development_costs"`
	PaymentTerms       string     `json:"payment_terms"`
	DeliveryConditions string     `json:"delivery_conditions"`
	BusinessTrigger    string     `json:"business_trigger"`
	TotalAmount        *float64   `json:"total_amount"`

	RFQReceptionDate      string `json:"rfq_reception_date"`
	QuotationExpectedDate string `json:"quotation_expected_date"`
	SOPYear               FlexID `json:"sop_year"`
	RFQCreatedAt          string `json:"rfq_created_at"`

	ManufacturingLocation    string     `json:"manufacturing_location"`
	DesignResponsibility     string     `json:"design_responsibility"`
	ValidationResponsibility string     `json:"validation_responsibility"`
	DesignOwnership          string     `json:"design_ownership"`
	TechnicalCapacity        FlexString `json:"technical_capacity"`
	ScopeAlignment           FlexString `json:"scope_alignment"`
	OverallFeasibility       string     `json:"overall_feasibility"`

	Risks          string `json:"risks"`
	Decision       string `json:"decision"`
	EntryBarriers  string `json:"entry_barriers"`
	CustomerStatus string `json:"customer_status"`

	ProductFeasibilityNote string `json:"product_feasibility_note"`
	StrategicNote          string `json:"strategic_note"`
	ValidatorComments      string `json:"validator_comments"`
	FinalRecommendation    string `json:"final_recommendation"`

	Status         string `json:"status" example:"pending"`
	CreatedByEmail string `json:"created_by_email"`
	ValidatedBy    string `json:"validated_by"`

	ContactID        *int64 `json:"contact_id,omitempty"`
	ContactRole      string `json:"contact_role"`
	ContactEmail     string `json:"contact_email"`
	ContactPhone     string `json:"contact_phone"`
	ContactCreatedAt string `json:"contact_created_at"`

	// Nested form of the contact fields used by newer snapshots.
	Contact *Contact `json:"contact,omitempty"`
}

// MergeContact folds a nested contact object into the flattened contact
// fields. Flattened values win when both are present.
func (r *RFQ) MergeContact() {
	if r.Contact == nil {
		return
	}
	if r.ContactID == nil {
		r.ContactID = r.Contact.ID
	}
	if r.ContactRole == "" {
		r.ContactRole = r.Contact.Role
	}
	if r.ContactEmail == "" {
		r.ContactEmail = r.Contact.Email
	}
	if r.ContactPhone == "" {
		r.ContactPhone = r.Contact.Phone
	}
	if r.ContactCreatedAt == "" {
		r.ContactCreatedAt = r.Contact.CreatedAt
	}
	r.Contact = nil
}

// PartitionForStatus buckets a legacy flat-array record by its own status
// string. Partitioned responses never go through here.
func PartitionForStatus(status string) string {
	switch strings.ToUpper(strings.TrimSpace(status)) {
	case "CONFIRM", "CONFIRMED", "APPROVED", "COMPLETED":
		return PartitionConfirm
	case "DECLINE", "DECLINED", "REJECTED":
		return PartitionDecline
	default:
		return PartitionPending
	}
}

// Snapshot is one fetched record set, held for the life of the process.
type Snapshot struct {
	ID       string    `json:"snapshot_id"`
	LoadedAt time.Time `json:"loaded_at"`
	Pending  []RFQ     `json:"PENDING"`
	Confirm  []RFQ     `json:"CONFIRM"`
	Decline  []RFQ     `json:"DECLINE"`
}

// Partition returns one bucket by name, nil for an unknown name.
func (s *Snapshot) Partition(name string) []RFQ {
	switch strings.ToUpper(name) {
	case PartitionPending:
		return s.Pending
	case PartitionConfirm:
		return s.Confirm
	case PartitionDecline:
		return s.Decline
	}
	return nil
}

// All returns every record across partitions, pending first.
func (s *Snapshot) All() []RFQ {
	out := make([]RFQ, 0, len(s.Pending)+len(s.Confirm)+len(s.Decline))
	out = append(out, s.Pending...)
	out = append(out, s.Decline...)
	out = append(out, s.Confirm...)
	return out
}

// Find locates a record by identifier across all partitions.
func (s *Snapshot) Find(id string) (*RFQ, bool) {
	for _, part := range [][]RFQ{s.Pending, s.Decline, s.Confirm} {
		for i := range part {
			if part[i].ID.String() == id {
				return &part[i], true
			}
		}
	}
	return nil, false
}

// Counts returns the per-partition record counts keyed by partition name.
func (s *Snapshot) Counts() map[string]int {
	return map[string]int{
		PartitionPending: len(s.Pending),
		PartitionConfirm: len(s.Confirm),
		PartitionDecline: len(s.Decline),
	}
}

// Total is the record count across all partitions.
func (s *Snapshot) Total() int {
	return len(s.Pending) + len(s.Confirm) + len(s.Decline)
}
