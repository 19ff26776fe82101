package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"rfqportal/models"
	"rfqportal/storage"
	"rfqportal/utils"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// sectionHeaderRows marks the label-column values that get the bold,
// filled section-header style.
var sectionHeaderRows = map[string]bool{
	"RFQ DETAILS REPORT":   true,
	"BASIC INFORMATION":    true,
	"CONTACT INFORMATION":  true,
	"BUSINESS DETAILS":     true,
	"TIMELINE INFORMATION": true,
	"TECHNICAL DETAILS":    true,
	"RISK & DECISION":      true,
	"NOTES & COMMENTS":     true,
}

// excelRows serializes the full field set as ordered label/value row pairs
// grouped under section header rows. Currency values are formatted here, at
// export time; the underlying record is never mutated.
func excelRows(r *models.RFQ) [][]string {
	return [][]string{
		{"RFQ DETAILS REPORT", ""},
		{"Generated on", time.Now().Format("2006-01-02 15:04:05")},
		{"", ""},
		{"BASIC INFORMATION", ""},
		{"RFQ ID", utils.Display(r.ID.String())},
		{"Customer Name", utils.Display(r.CustomerName)},
		{"Application", utils.Display(r.Application)},
		{"Product Line", utils.Display(r.ProductLine)},
		{"Customer PN", utils.Display(r.CustomerPN)},
		{"Revision Level", utils.Display(r.RevisionLevel)},
		{"Status", utils.FormatStatusLabel(r.Status)},
		{"Requester", utils.Display(r.CreatedByEmail)},
		{"Validator", utils.Display(r.ValidatedBy)},
		{"", ""},
		{"CONTACT INFORMATION", ""},
		{"Contact Role", utils.Display(r.ContactRole)},
		{"Email", utils.Display(r.ContactEmail)},
		{"Phone", utils.Display(r.ContactPhone)},
		{"", ""},
		{"BUSINESS DETAILS", ""},
		{"Annual Volume", utils.FormatNumber(r.AnnualVolume)},
		{"Target Price (EUR)", utils.FormatCurrencyEUR(r.TargetPriceEUR)},
		{"Development Costs", utils.FormatCurrencyText(r.DevelopmentCosts.Raw, r.DevelopmentCosts.Value)},
		{"Payment Terms", utils.Display(r.PaymentTerms)},
		{"Delivery Conditions", utils.Display(r.DeliveryConditions)},
		{"Business Trigger", utils.Display(r.BusinessTrigger)},
		{"Total Amount", utils.FormatCurrencyEUR(r.TotalAmount)},
		{"", ""},
		{"TIMELINE INFORMATION", ""},
		{"RFQ Reception Date", utils.FormatDate(r.RFQReceptionDate)},
		{"Quotation Expected Date", utils.FormatDate(r.QuotationExpectedDate)},
		{"SOP Year", utils.Display(r.SOPYear.String())},
		{"RFQ Created At", utils.FormatDate(r.RFQCreatedAt)},
		{"", ""},
		{"TECHNICAL DETAILS", ""},
		{"Manufacturing Location", utils.Display(r.ManufacturingLocation)},
		{"Design Responsibility", utils.Display(r.DesignResponsibility)},
		{"Validation Responsibility", utils.Display(r.ValidationResponsibility)},
		{"Design Ownership", utils.Display(r.DesignOwnership)},
		{"Technical Capacity", utils.FormatTriState(r.TechnicalCapacity.String())},
		{"Scope Alignment", utils.FormatTriState(r.ScopeAlignment.String())},
		{"Overall Feasibility", utils.Display(r.OverallFeasibility)},
		{"", ""},
		{"RISK & DECISION", ""},
		{"Risks", utils.Display(r.Risks)},
		{"Decision", utils.Display(r.Decision)},
		{"Entry Barriers", utils.Display(r.EntryBarriers)},
		{"Customer Status", utils.Display(r.CustomerStatus)},
		{"", ""},
		{"NOTES & COMMENTS", ""},
		{"Product Feasibility Note", utils.Display(r.ProductFeasibilityNote)},
		{"Strategic Note", utils.Display(r.StrategicNote)},
		{"Validator Comments", utils.Display(r.ValidatorComments)},
		{"Final Recommendation", utils.Display(r.FinalRecommendation)},
	}
}

// ExportRFQExcel godoc
// @Summary      Export one RFQ as a single-sheet workbook
// @Tags         exports
// @Param        id   path  string  true  "RFQ identifier"
// @Success      200  "XLSX file"
// @Failure      404  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/rfq_excel/{id} [get]
func ExportRFQExcel(store *storage.SnapshotStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		rfq, ok := store.Get().Find(id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "RFQ not found"})
			return
		}

		f := excelize.NewFile()
		defer func() {
			if err := f.Close(); err != nil {
				log.Printf("Excel export: close failed for RFQ %s: %v", id, err)
			}
		}()

		sheet := "RFQ Details"
		index, err := f.NewSheet(sheet)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating sheet"})
			return
		}
		f.SetActiveSheet(index)
		f.DeleteSheet("Sheet1")

		headerStyle, err := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{Bold: true, Size: 12},
			Fill: excelize.Fill{Type: "pattern", Color: []string{"E8F4FF"}, Pattern: 1},
		})
		if err != nil {
			log.Printf("Excel export: style creation failed for RFQ %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error styling sheet"})
			return
		}

		for i, row := range excelRows(rfq) {
			cell, _ := excelize.CoordinatesToCellName(1, i+1)
			if err := f.SetSheetRow(sheet, cell, &row); err != nil {
				log.Printf("Excel export: row write failed for RFQ %s: %v", id, err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error writing sheet"})
				return
			}
			if sectionHeaderRows[row[0]] {
				endCell, _ := excelize.CoordinatesToCellName(2, i+1)
				f.SetCellStyle(sheet, cell, endCell, headerStyle)
			}
		}
		f.SetColWidth(sheet, "A", "A", 30)
		f.SetColWidth(sheet, "B", "B", 50)

		filename := fmt.Sprintf("RFQ_%s_%s_Details.xlsx",
			utils.SanitizeFilename(rfq.ID.String()), utils.SanitizeFilename(rfq.CustomerName))
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
		if err := f.Write(c.Writer); err != nil {
			log.Printf("Excel export failed for RFQ %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate Excel file"})
			return
		}
	}
}
