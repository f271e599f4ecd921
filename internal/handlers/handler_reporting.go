package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/smallledger/general_ledger_app/internal/core/domain"
	portssvc "github.com/smallledger/general_ledger_app/internal/core/ports/services"
	"github.com/smallledger/general_ledger_app/internal/dto"
	"github.com/smallledger/general_ledger_app/internal/middleware"
)

// reportingHandler handles HTTP requests for the derived financial
// statements.
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(reportingService portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{reportingService: reportingService}
}

// trialBalance godoc
// @Summary Trial balance
// @Description Returns the trial balance over all entries dated on or before asOf, grouped by account type
// @Tags reports
// @Produce json
// @Param asOf query string false "Cutoff date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/trial-balance [get]
func (h *reportingHandler) trialBalance(c *gin.Context) {
	asOf, ok := queryDate(c, "asOf", domain.DateOf(time.Now()))
	if !ok {
		return
	}

	report, err := h.reportingService.TrialBalance(c.Request.Context(), asOf)
	if err != nil {
		h.respondReportError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(report))
}

// incomeStatement godoc
// @Summary Income statement
// @Description Returns revenues, expenses and net income over the inclusive date range; the range defaults to the current month to date
// @Tags reports
// @Produce json
// @Param fromDate query string false "Range start (YYYY-MM-DD), defaults to the first of the current month"
// @Param toDate query string false "Range end (YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.IncomeStatementResponse
// @Failure 400 {object} map[string]string "Invalid date range"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/income-statement [get]
func (h *reportingHandler) incomeStatement(c *gin.Context) {
	now := time.Now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	from, ok := queryDate(c, "fromDate", domain.DateOf(firstOfMonth))
	if !ok {
		return
	}
	to, ok := queryDate(c, "toDate", domain.DateOf(now))
	if !ok {
		return
	}
	if from.After(to) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fromDate must not be after toDate"})
		return
	}

	report, err := h.reportingService.IncomeStatement(c.Request.Context(), from, to)
	if err != nil {
		h.respondReportError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToIncomeStatementResponse(report))
}

// balanceSheet godoc
// @Summary Balance sheet
// @Description Returns assets, liabilities and equity as of the cutoff date, with net income to date folded in as retained earnings
// @Tags reports
// @Produce json
// @Param asOf query string false "Cutoff date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.BalanceSheetResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/balance-sheet [get]
func (h *reportingHandler) balanceSheet(c *gin.Context) {
	asOf, ok := queryDate(c, "asOf", domain.DateOf(time.Now()))
	if !ok {
		return
	}

	report, err := h.reportingService.BalanceSheet(c.Request.Context(), asOf)
	if err != nil {
		h.respondReportError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(report))
}

func (h *reportingHandler) respondReportError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to generate report", slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report"})
}

// queryDate parses an optional YYYY-MM-DD query parameter, writing a
// 400 response itself when the value is malformed.
func queryDate(c *gin.Context, name string, fallback domain.Date) (domain.Date, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}
	d, err := domain.ParseDate(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + ": expected YYYY-MM-DD"})
		return domain.Date{}, false
	}
	return d, true
}
