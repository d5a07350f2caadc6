package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"salesdash-backend/internal/models"
	"salesdash-backend/internal/timeutil"
	"salesdash-backend/internal/upstream"

	"github.com/jung-kurt/gofpdf/v2"
)

// ReportService handles the reports page: the performance and reward
// aggregates plus their CSV and PDF exports.
type ReportService struct {
	API *upstream.Client
}

// NewReportService creates a new report service
func NewReportService(api *upstream.Client) *ReportService {
	return &ReportService{API: api}
}

// Performance fetches the general dashboard aggregate.
func (s *ReportService) Performance(ctx context.Context) (*models.PerformanceReport, error) {
	report, err := s.API.GeneralReport(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch performance report: %w", err)
	}
	return report, nil
}

// Rewards fetches the reward distribution aggregate.
func (s *ReportService) Rewards(ctx context.Context) (*models.RewardReport, error) {
	report, err := s.API.RewardReport(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch reward report: %w", err)
	}
	return report, nil
}

// GeneratePerformanceCSV renders the performance aggregate as metric,value
// rows.
func (s *ReportService) GeneratePerformanceCSV(report *models.PerformanceReport) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write([]string{"Metric", "Value"})
	w.Write([]string{"Total Sales Amount", strconv.FormatFloat(report.TotalSalesAmount, 'f', 2, 64)})
	w.Write([]string{"Completed Orders", strconv.Itoa(report.TotalCompletedOrders)})
	w.Write([]string{"Attendance Percentage", strconv.FormatFloat(report.AttendancePercentage, 'f', 2, 64)})
	w.Write([]string{"Total Expense Amount", strconv.FormatFloat(report.TotalExpenseAmount, 'f', 2, 64)})

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GenerateRewardCSV renders the reward aggregate as metric,value rows.
func (s *ReportService) GenerateRewardCSV(report *models.RewardReport) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write([]string{"Metric", "Value"})
	w.Write([]string{"Total Points Distributed", strconv.Itoa(report.TotalPoints)})
	w.Write([]string{"Rewards Redeemed", strconv.Itoa(report.TotalRewardsRedeemed)})
	w.Write([]string{"Pending Approvals", strconv.Itoa(report.PendingApprovals)})

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GeneratePerformancePDF renders the performance aggregate as a one-page
// PDF.
func (s *ReportService) GeneratePerformancePDF(report *models.PerformanceReport) ([]byte, error) {
	pdf := newReportPDF("Sales Performance Report")

	writeMetricRow(pdf, "Total Sales Amount", fmt.Sprintf("Rs. %.2f", report.TotalSalesAmount))
	writeMetricRow(pdf, "Completed Orders", strconv.Itoa(report.TotalCompletedOrders))
	writeMetricRow(pdf, "Attendance Percentage", fmt.Sprintf("%.2f%%", report.AttendancePercentage))
	writeMetricRow(pdf, "Total Expense Amount", fmt.Sprintf("Rs. %.2f", report.TotalExpenseAmount))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GenerateRewardPDF renders the reward aggregate as a one-page PDF.
func (s *ReportService) GenerateRewardPDF(report *models.RewardReport) ([]byte, error) {
	pdf := newReportPDF("Reward Distribution Report")

	writeMetricRow(pdf, "Total Points Distributed", strconv.Itoa(report.TotalPoints))
	writeMetricRow(pdf, "Rewards Redeemed", strconv.Itoa(report.TotalRewardsRedeemed))
	writeMetricRow(pdf, "Pending Approvals", strconv.Itoa(report.PendingApprovals))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func newReportPDF(title string) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, title, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Generated: %s", timeutil.FormatIST(timeutil.Now(), timeutil.DisplayLayout)), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Table header
	pdf.SetFillColor(200, 200, 200)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(95, 8, "Metric", "1", 0, "C", true, 0, "")
	pdf.CellFormat(95, 8, "Value", "1", 1, "C", true, 0, "")
	pdf.SetFont("Arial", "", 11)
	return pdf
}

func writeMetricRow(pdf *gofpdf.Fpdf, metric, value string) {
	pdf.CellFormat(95, 8, metric, "1", 0, "L", false, 0, "")
	pdf.CellFormat(95, 8, value, "1", 1, "R", false, 0, "")
}
