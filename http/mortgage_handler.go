package http

import (
	"net/http"

	"go.uber.org/zap"

	"realty-agent/domain"
	"realty-agent/service"
)

type MortgageHandler struct {
	service    *service.MortgageService
	comparison *service.TermComparisonService
	prepayment *service.PrepaymentService
	catalog    *service.CatalogService
	logger     *zap.Logger
}

func NewMortgageHandler(
	mortgage *service.MortgageService,
	comparison *service.TermComparisonService,
	prepayment *service.PrepaymentService,
	catalog *service.CatalogService,
	logger *zap.Logger,
) *MortgageHandler {
	return &MortgageHandler{
		service:    mortgage,
		comparison: comparison,
		prepayment: prepayment,
		catalog:    catalog,
		logger:     logger,
	}
}

type calculationResponse struct {
	Inputs    domain.LoanInputs         `json:"inputs"`
	Breakdown domain.PaymentBreakdown   `json:"breakdown"`
	Formatted domain.FormattedBreakdown `json:"formatted"`
}

func (h *MortgageHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var input domain.LoanInputs
	if err := decodeJSON(w, r, &input); err != nil {
		writeError(w, h.logger, err)
		return
	}

	result, err := h.service.Calculate(r.Context(), input)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	input.LoanTermYears = result.LoanTermYears
	writeJSON(w, h.logger, http.StatusOK, calculationResponse{
		Inputs:    input,
		Breakdown: result,
		Formatted: service.FormatBreakdown(result),
	})
}

func (h *MortgageHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	var input domain.LoanInputs
	if err := decodeJSON(w, r, &input); err != nil {
		writeError(w, h.logger, err)
		return
	}

	rows, err := h.service.Schedule(input)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, rows)
}

func (h *MortgageHandler) CompareTerms(w http.ResponseWriter, r *http.Request) {
	var input domain.TermComparisonInput
	if err := decodeJSON(w, r, &input); err != nil {
		writeError(w, h.logger, err)
		return
	}

	result, err := h.comparison.CompareTerms(input)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, result)
}

func (h *MortgageHandler) Prepayment(w http.ResponseWriter, r *http.Request) {
	var input domain.PrepaymentInput
	if err := decodeJSON(w, r, &input); err != nil {
		writeError(w, h.logger, err)
		return
	}

	result, err := h.prepayment.Plan(input)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, result)
}

// ForProperty estimates a loan for a listing:
// GET /properties/{id}/mortgage?downPaymentPercent=20&term=30&rate=6.5
func (h *MortgageHandler) ForProperty(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	property, err := h.catalog.ByID(id)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	var req service.PropertyLoanRequest
	if req.DownPaymentPercent, err = queryFloat(r, "downPaymentPercent"); err != nil {
		writeError(w, h.logger, err)
		return
	}
	if req.AnnualInterestRatePercent, err = queryFloat(r, "rate"); err != nil {
		writeError(w, h.logger, err)
		return
	}
	if req.LoanTermYears, err = queryInt(r, "term", 0); err != nil {
		writeError(w, h.logger, err)
		return
	}

	inputs, result, err := h.service.ForProperty(r.Context(), property, req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, calculationResponse{
		Inputs:    inputs,
		Breakdown: result,
		Formatted: service.FormatBreakdown(result),
	})
}

func (h *MortgageHandler) Recent(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 10)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, h.service.Recent(limit))
}
