package handlers

import (
	"rfqportal/models"
	"rfqportal/utils"
)

// Field is one labeled value inside a detail section.
type Field struct {
	Label string
	Value string
}

// Section groups detail fields the way the detail view lays them out. The
// PDF export walks the same structure so both stay in step.
type Section struct {
	Title  string
	Fields []Field
}

// DetailSections renders every record attribute into labeled sections.
// Optional values go through placeholder substitution, dates through the
// defensive parser and the boolean-or-string fields through the tri-state
// formatter, so no consumer ever sees raw empty output.
func DetailSections(r *models.RFQ) []Section {
	return []Section{
		{Title: "Participants", Fields: []Field{
			{"Requester", utils.Display(r.CreatedByEmail)},
			{"Validator", utils.Display(r.ValidatedBy)},
			{"Status", utils.FormatStatusLabel(r.Status)},
		}},
		{Title: "Customer Information", Fields: []Field{
			{"Customer Name", utils.Display(r.CustomerName)},
			{"Application", utils.Display(r.Application)},
			{"Product Line", utils.Display(r.ProductLine)},
			{"Customer Part Number", utils.Display(r.CustomerPN)},
			{"Revision Level", utils.Display(r.RevisionLevel)},
			{"Delivery Zone", utils.Display(r.DeliveryZone)},
			{"Delivery Plant", utils.Display(r.DeliveryPlant)},
		}},
		{Title: "Contact Information", Fields: []Field{
			{"Contact Role", utils.Display(r.ContactRole)},
			{"Email", utils.Display(r.ContactEmail)},
			{"Phone", utils.Display(r.ContactPhone)},
			{"Contact Created", utils.FormatDate(r.ContactCreatedAt)},
		}},
		{Title: "Business Details", Fields: []Field{
			{"Annual Volume", utils.FormatNumber(r.AnnualVolume)},
			{"Target Price", utils.FormatCurrencyEUR(r.TargetPriceEUR)},
			{"Development Costs", utils.FormatCurrencyText(r.DevelopmentCosts.Raw, r.DevelopmentCosts.Value)},
			{"Payment Terms", utils.Display(r.PaymentTerms)},
			{"Delivery Conditions", utils.Display(r.DeliveryConditions)},
			{"Business Trigger", utils.Display(r.BusinessTrigger)},
			{"Total Amount", utils.FormatCurrencyEUR(r.TotalAmount)},
		}},
		{Title: "Timeline", Fields: []Field{
			{"RFQ Reception", utils.FormatDate(r.RFQReceptionDate)},
			{"Quotation Expected", utils.FormatDate(r.QuotationExpectedDate)},
			{"SOP Year", utils.Display(r.SOPYear.String())},
			{"RFQ Created", utils.FormatDate(r.RFQCreatedAt)},
		}},
		{Title: "Technical Details", Fields: []Field{
			{"Manufacturing Location", utils.Display(r.ManufacturingLocation)},
			{"Design Responsibility", utils.Display(r.DesignResponsibility)},
			{"Validation Responsibility", utils.Display(r.ValidationResponsibility)},
			{"Design Ownership", utils.Display(r.DesignOwnership)},
			{"Technical Capacity", utils.FormatTriState(r.TechnicalCapacity.String())},
			{"Scope Alignment", utils.FormatTriState(r.ScopeAlignment.String())},
			{"Overall Feasibility", utils.Display(r.OverallFeasibility)},
		}},
		{Title: "Risk & Decision", Fields: []Field{
			{"Risks", utils.Display(r.Risks)},
			{"Decision", utils.Display(r.Decision)},
			{"Entry Barriers", utils.Display(r.EntryBarriers)},
			{"Customer Status", utils.Display(r.CustomerStatus)},
		}},
		{Title: "Notes & Comments", Fields: []Field{
			{"Product Feasibility Note", utils.Display(r.ProductFeasibilityNote)},
			{"Strategic Note", utils.Display(r.StrategicNote)},
			{"Validator Comments", utils.Display(r.ValidatorComments)},
			{"Final Recommendation", utils.Display(r.FinalRecommendation)},
		}},
	}
}
