package handlers

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"
	"time"

	"rfqportal/storage"
	"rfqportal/utils"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/image/draw"
)

// A4 portrait geometry in mm. Content past the fixed page height flows onto
// the next page at the same horizontal position.
const (
	pdfPageWidth     = 210.0
	pdfMargin        = 10.0
	pdfBreakMargin   = 15.0
	pdfContentWidth  = pdfPageWidth - 2*pdfMargin
	pdfLabelWidth    = 60.0
	pdfQRDisplaySize = 26.0
)

// GenerateRFQPDF godoc
// @Summary      Export one RFQ as a paginated PDF document
// @Tags         exports
// @Param        id   path  string  true  "RFQ identifier"
// @Success      200  "PDF file"
// @Failure      404  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/rfq_pdf/{id} [get]
func GenerateRFQPDF(store *storage.SnapshotStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		rfq, ok := store.Get().Find(id)
		if !ok {
			// Export target gone from the snapshot: nothing to capture.
			c.JSON(http.StatusNotFound, gin.H{"error": "RFQ not found"})
			return
		}

		pdf := gofpdf.New("P", "mm", "A4", "")
		pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
		pdf.SetAutoPageBreak(true, pdfBreakMargin)
		pdf.AddPage()
		tr := pdf.UnicodeTranslatorFromDescriptor("")

		// --- Header ---
		pdf.SetFont("Arial", "B", 18)
		pdf.Cell(150, 10, tr(fmt.Sprintf("RFQ Details - #%s", rfq.ID)))
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 11)
		pdf.Cell(150, 8, tr(fmt.Sprintf("Customer: %s", utils.Display(rfq.CustomerName))))
		pdf.Ln(6)
		pdf.Cell(150, 8, tr(fmt.Sprintf("Status: %s", utils.FormatStatusLabel(rfq.Status))))
		pdf.Ln(12)

		// QR code in the top-right corner, linking back to the detail page.
		scheme := "http"
		if c.Request.TLS != nil {
			scheme = "https"
		}
		detailURL := fmt.Sprintf("%s://%s/rfq/%s", scheme, c.Request.Host, rfq.ID)
		if qrPNG, err := buildQRImage(detailURL); err != nil {
			log.Printf("PDF export: QR generation failed for RFQ %s: %v", id, err)
		} else {
			opts := gofpdf.ImageOptions{ImageType: "PNG"}
			pdf.RegisterImageOptionsReader("rfq-qr", opts, bytes.NewReader(qrPNG))
			pdf.ImageOptions("rfq-qr", pdfPageWidth-pdfMargin-pdfQRDisplaySize, pdfMargin,
				pdfQRDisplaySize, pdfQRDisplaySize, false, opts, 0, "")
		}

		// --- Sections: same structure as the detail view ---
		for _, sec := range DetailSections(rfq) {
			pdf.SetFont("Arial", "B", 11)
			pdf.SetFillColor(232, 244, 255)
			pdf.CellFormat(pdfContentWidth, 8, tr(sec.Title), "1", 1, "L", true, 0, "")
			pdf.SetFont("Arial", "", 10)
			for _, f := range sec.Fields {
				pdf.CellFormat(pdfLabelWidth, 7, tr(f.Label), "1", 0, "L", false, 0, "")
				pdf.MultiCell(pdfContentWidth-pdfLabelWidth, 7, tr(f.Value), "1", "L", false)
			}
			pdf.Ln(3)
		}

		// --- Footer ---
		pdf.SetY(-20)
		pdf.SetFont("Arial", "I", 8)
		pdf.Cell(pdfContentWidth, 6, "This is a computer-generated document. No signature required.")
		pdf.Ln(5)
		pdf.Cell(pdfContentWidth, 6, "Generated on: "+time.Now().Format("2006-01-02 15:04:05"))

		filename := fmt.Sprintf("RFQ_%s_%s.pdf",
			utils.SanitizeFilename(rfq.ID.String()), utils.SanitizeFilename(rfq.CustomerName))
		c.Header("Content-Type", "application/pdf")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
		if err := pdf.Output(c.Writer); err != nil {
			log.Printf("PDF export failed for RFQ %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF"})
			return
		}
	}
}

// buildQRImage renders the QR code oversized and scales it down for a
// cleaner embed, returning the PNG bytes.
func buildQRImage(content string) ([]byte, error) {
	code, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return nil, err
	}
	src := code.Image(512)
	dst := image.NewRGBA(image.Rect(0, 0, 256, 256))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
