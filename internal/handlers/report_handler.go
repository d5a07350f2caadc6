package handlers

import (
	"net/http"

	"salesdash-backend/internal/services"
	"salesdash-backend/pkg/utils"
)

type ReportHandler struct {
	Service *services.ReportService
}

func NewReportHandler(s *services.ReportService) *ReportHandler {
	return &ReportHandler{Service: s}
}

func (h *ReportHandler) GetPerformanceReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.Service.Performance(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, report)
}

func (h *ReportHandler) GetRewardReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.Service.Rewards(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, report)
}

// ExportPerformanceReport serves the performance aggregate as a CSV or
// PDF download, selected by ?format=.
func (h *ReportHandler) ExportPerformanceReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.Service.Performance(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	switch r.URL.Query().Get("format") {
	case "pdf":
		data, err := h.Service.GeneratePerformancePDF(report)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "PDF generation failed")
			return
		}
		utils.Attachment(w, "application/pdf", "performance_report.pdf", data)
	case "csv", "":
		data, err := h.Service.GeneratePerformanceCSV(report)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "CSV generation failed")
			return
		}
		utils.Attachment(w, "text/csv", "performance_report.csv", data)
	default:
		utils.Error(w, http.StatusBadRequest, "format must be csv or pdf")
	}
}

// ExportRewardReport serves the reward aggregate as a CSV or PDF
// download, selected by ?format=.
func (h *ReportHandler) ExportRewardReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.Service.Rewards(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	switch r.URL.Query().Get("format") {
	case "pdf":
		data, err := h.Service.GenerateRewardPDF(report)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "PDF generation failed")
			return
		}
		utils.Attachment(w, "application/pdf", "reward_report.pdf", data)
	case "csv", "":
		data, err := h.Service.GenerateRewardCSV(report)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "CSV generation failed")
			return
		}
		utils.Attachment(w, "text/csv", "reward_report.csv", data)
	default:
		utils.Error(w, http.StatusBadRequest, "format must be csv or pdf")
	}
}
