package handlers

import (
	"html/template"
	"net/http"
	"strings"

	"rfqportal/models"
	"rfqportal/services"
	"rfqportal/storage"
	"rfqportal/utils"

	"github.com/gin-gonic/gin"
)

// TemplateFuncMap exposes the shared formatters to the HTML templates so the
// table, detail view and exports all render values the same way.
func TemplateFuncMap() template.FuncMap {
	return template.FuncMap{
		"display":     utils.Display,
		"fmtNumber":   utils.FormatNumber,
		"fmtCurrency": utils.FormatCurrencyRounded,
		"fmtDate":     utils.FormatDate,
		"statusLabel": utils.FormatStatusLabel,
		"localPart":   utils.LocalPart,
		"statusClass": statusClass,
	}
}

// statusClass maps a raw status string onto a badge CSS class.
func statusClass(status string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "confirm", "confirmed", "completed":
		return "approved"
	case "rejected", "decline", "declined":
		return "rejected"
	case "in_review", "continu":
		return "in-review"
	case "pending":
		return "pending"
	}
	return "default"
}

type tabView struct {
	Name   string
	Count  int
	Active bool
}

// RFQTablePage godoc
// @Summary      RFQ table page
// @Description  Server-rendered table of the active partition with tabs, filter form and live counts.
// @Tags         pages
// @Param        tab  query  string  false  "Active partition (PENDING / DECLINE / CONFIRM)"
// @Produce      html
// @Success      200  "HTML page"
// @Router       / [get]
func RFQTablePage(store *storage.SnapshotStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap := store.Get()
		filter := bindFilter(c)

		tab := strings.ToUpper(c.DefaultQuery("tab", models.PartitionPending))
		if snap.Partition(tab) == nil && tab != models.PartitionPending {
			tab = models.PartitionPending
		}
		partition := snap.Partition(tab)
		filtered := services.ApplyFilters(partition, filter)
		loaded, loadErr := store.Loaded()

		counts := snap.Counts()
		tabs := make([]tabView, 0, len(models.PartitionNames))
		for _, name := range models.PartitionNames {
			tabs = append(tabs, tabView{Name: name, Count: counts[name], Active: name == tab})
		}

		c.HTML(http.StatusOK, "rfq_table.html", gin.H{
			"Tabs":           tabs,
			"ActiveTab":      tab,
			"Filter":         filter,
			"HasFilter":      !filter.IsEmpty(),
			"RFQs":           filtered,
			"FilteredCount":  len(filtered),
			"PartitionTotal": len(partition),
			"ProductLines":   services.ProductLines(snap),
			"Loaded":         loaded,
			"LoadError":      loadErr,
		})
	}
}

// RFQDetailPage godoc
// @Summary      RFQ detail page
// @Description  Full field set of one record grouped into labeled sections, with export actions.
// @Tags         pages
// @Param        id  path  string  true  "RFQ identifier"
// @Produce      html
// @Success      200  "HTML page"
// @Failure      404  "HTML page"
// @Router       /rfq/{id} [get]
func RFQDetailPage(store *storage.SnapshotStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		rfq, ok := store.Get().Find(c.Param("id"))
		if !ok {
			c.HTML(http.StatusNotFound, "rfq_not_found.html", gin.H{"ID": c.Param("id")})
			return
		}
		c.HTML(http.StatusOK, "rfq_detail.html", gin.H{
			"RFQ":      rfq,
			"Sections": DetailSections(rfq),
		})
	}
}
