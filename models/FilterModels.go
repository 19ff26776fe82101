package models

// RFQFilter carries the user-entered filter criteria. Every field is the raw
// form/query value; empty string means "criterion not active". Range bounds
// stay strings so an unparseable entry can be ignored instead of failing.
type RFQFilter struct {
	Search          string `form:"search" json:"search"`
	RFQID           string `form:"rfq_id" json:"rfq_id"`
	CustomerName    string `form:"customer_name" json:"customer_name"`
	CreatedByEmail  string `form:"created_by_email" json:"created_by_email"`
	ProductLine     string `form:"product_line" json:"product_line"`
	CustomerPN      string `form:"customer_pn" json:"customer_pn"`
	AnnualVolumeMin string `form:"annual_volume_min" json:"annual_volume_min"`
	AnnualVolumeMax string `form:"annual_volume_max" json:"annual_volume_max"`
	TargetPriceMin  string `form:"target_price_min" json:"target_price_min"`
	TargetPriceMax  string `form:"target_price_max" json:"target_price_max"`
	TotalAmountMin  string `form:"total_amount_min" json:"total_amount_min"`
	TotalAmountMax  string `form:"total_amount_max" json:"total_amount_max"`
}

// IsEmpty reports whether no criterion is active, search term included.
func (f RFQFilter) IsEmpty() bool {
	return f == RFQFilter{}
}
