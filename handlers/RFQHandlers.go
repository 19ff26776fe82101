package handlers

import (
	"net/http"

	"rfqportal/models"
	"rfqportal/services"
	"rfqportal/storage"

	"github.com/gin-gonic/gin"
)

// bindFilter reads the filter criteria from the query string. Binding never
// fails hard; a malformed query just yields inactive criteria.
func bindFilter(c *gin.Context) models.RFQFilter {
	var f models.RFQFilter
	_ = c.ShouldBindQuery(&f)
	return f
}

// GetRFQs godoc
// @Summary      List RFQs grouped by workflow partition
// @Description  Returns the snapshot partitioned into PENDING / CONFIRM / DECLINE with the active filter criteria applied per partition.
// @Tags         rfqs
// @Param        search             query  string  false  "Free-text search term"
// @Param        rfq_id             query  string  false  "Identifier substring"
// @Param        customer_name      query  string  false  "Customer name substring"
// @Param        created_by_email   query  string  false  "Requester email substring"
// @Param        product_line       query  string  false  "Product line substring"
// @Param        customer_pn        query  string  false  "Customer part number substring"
// @Param        annual_volume_min  query  string  false  "Inclusive minimum annual volume"
// @Param        annual_volume_max  query  string  false  "Inclusive maximum annual volume"
// @Param        target_price_min   query  string  false  "Inclusive minimum target price"
// @Param        target_price_max   query  string  false  "Inclusive maximum target price"
// @Success      200  {object}  models.RFQListResponse
// @Router       /api/rfqs [get]
func GetRFQs(store *storage.SnapshotStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap := store.Get()
		filter := bindFilter(c)

		resp := models.RFQListResponse{
			SnapshotID: snap.ID,
			Pending:    services.ApplyFilters(snap.Pending, filter),
			Confirm:    services.ApplyFilters(snap.Confirm, filter),
			Decline:    services.ApplyFilters(snap.Decline, filter),
			Totals:     snap.Counts(),
		}
		resp.Counts = map[string]int{
			models.PartitionPending: len(resp.Pending),
			models.PartitionConfirm: len(resp.Confirm),
			models.PartitionDecline: len(resp.Decline),
		}
		c.JSON(http.StatusOK, resp)
	}
}

// GetRFQByID godoc
// @Summary      Fetch one RFQ by identifier
// @Tags         rfqs
// @Param        id   path  string  true  "RFQ identifier"
// @Success      200  {object}  models.RFQ
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/rfqs/{id} [get]
func GetRFQByID(store *storage.SnapshotStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		rfq, ok := store.Get().Find(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "RFQ not found"})
			return
		}
		c.JSON(http.StatusOK, rfq)
	}
}

// GetRFQSummary godoc
// @Summary      Snapshot summary
// @Description  Snapshot identity, load state, per-partition counts and the distinct product lines across all partitions.
// @Tags         rfqs
// @Success      200  {object}  models.SummaryResponse
// @Router       /api/rfq_summary [get]
func GetRFQSummary(store *storage.SnapshotStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap := store.Get()
		loaded, loadErr := store.Loaded()
		c.JSON(http.StatusOK, models.SummaryResponse{
			SnapshotID:   snap.ID,
			LoadedAt:     snap.LoadedAt.Format("2006-01-02 15:04:05"),
			Loaded:       loaded,
			LoadError:    loadErr,
			Counts:       snap.Counts(),
			Total:        snap.Total(),
			ProductLines: services.ProductLines(snap),
		})
	}
}

// GetProductLines godoc
// @Summary      Distinct product lines
// @Description  Unique non-empty product lines across ALL partitions, sorted lexicographically. Feeds the product-line selector.
// @Tags         rfqs
// @Success      200  {array}  string
// @Router       /api/product_lines [get]
func GetProductLines(store *storage.SnapshotStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, services.ProductLines(store.Get()))
	}
}

// HealthCheck godoc
// @Summary      Liveness probe
// @Tags         health
// @Success      200  {object}  models.HealthResponse
// @Router       /api/health [get]
func HealthCheck(store *storage.SnapshotStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap := store.Get()
		loaded, _ := store.Loaded()
		c.JSON(http.StatusOK, models.HealthResponse{
			Status:   "ok",
			Loaded:   loaded,
			Snapshot: snap.ID,
			RFQCount: snap.Total(),
		})
	}
}
