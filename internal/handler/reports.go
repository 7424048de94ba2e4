package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/joaodevsafe/service-sales-buddy/internal/document"
	"github.com/joaodevsafe/service-sales-buddy/internal/report"
	"github.com/joaodevsafe/service-sales-buddy/internal/store"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	Store *store.Store
}

// resolveRange parses period/start_date/end_date query parameters. The
// period defaults to "month", matching the reports screen default.
func resolveRange(c *gin.Context, now time.Time) (report.Period, report.Range, error) {
	period := report.Period(c.DefaultQuery("period", string(report.PeriodMonth)))
	if !period.Valid() {
		return "", report.Range{}, fmt.Errorf("unknown period %q", period)
	}

	var customStart, customEnd time.Time
	if s := c.Query("start_date"); s != "" {
		parsed, err := time.ParseInLocation("2006-01-02", s, now.Location())
		if err != nil {
			return "", report.Range{}, fmt.Errorf("invalid start_date %q", s)
		}
		customStart = parsed
	}
	if s := c.Query("end_date"); s != "" {
		parsed, err := time.ParseInLocation("2006-01-02", s, now.Location())
		if err != nil {
			return "", report.Range{}, fmt.Errorf("invalid end_date %q", s)
		}
		customEnd = parsed
	}

	return period, period.Resolve(now, customStart, customEnd), nil
}

func (h *ReportHandler) GetReport(c *gin.Context) {
	now := time.Now()
	period, rng, err := resolveRange(c, now)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rep := report.Generate(h.Store.State(), rng)
	c.JSON(http.StatusOK, gin.H{
		"period": period,
		"report": rep,
	})
}

// GetReportDocument returns the printable plain-text management report.
func (h *ReportHandler) GetReportDocument(c *gin.Context) {
	now := time.Now()
	period, rng, err := resolveRange(c, now)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	label := period.Label()
	if period == report.PeriodCustom {
		label = fmt.Sprintf("%s - %s", rng.Start.Format("02/01/2006"), rng.End.Format("02/01/2006"))
	}

	rep := report.Generate(h.Store.State(), rng)
	c.String(http.StatusOK, document.ManagementReport(rep, label, now))
}
