package service

import (
	"context"
	"time"

	"backoffice/internal/apperror"
	"backoffice/internal/model"
	"backoffice/internal/repository"
	"backoffice/internal/tenant"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const defaultStatisticsWindow = 30 * 24 * time.Hour

// --- DTOs ---

type StatisticsFilter struct {
	From    string // RFC3339, defaults to 30 days before To
	To      string // RFC3339, defaults to now
	GroupBy string // day or month
}

type InvoiceStatusSummaryResponse struct {
	Status      string `json:"status"`
	Count       int64  `json:"count"`
	TotalAmount string `json:"total_amount"`
	PaidAmount  string `json:"paid_amount"`
}

type CollectionPeriodResponse struct {
	Period   string `json:"period"`
	Payments int64  `json:"payments"`
	Amount   string `json:"amount"`
}

type StatisticsResponse struct {
	From        string                         `json:"from"`
	To          string                         `json:"to"`
	GroupBy     string                         `json:"group_by"`
	Invoiced    string                         `json:"invoiced"`
	Collected   string                         `json:"collected"`
	Outstanding string                         `json:"outstanding"`
	ByStatus    []InvoiceStatusSummaryResponse `json:"by_status"`
	Collections []CollectionPeriodResponse     `json:"collections"`
}

// --- Interface ---

type StatisticsService interface {
	GetStatistics(ctx context.Context, tenantID uuid.UUID, filter StatisticsFilter) (StatisticsResponse, error)
}

type statisticsService struct {
	statisticsRepo repository.StatisticsRepository
}

func NewStatisticsService(statisticsRepo repository.StatisticsRepository) StatisticsService {
	return &statisticsService{statisticsRepo: statisticsRepo}
}

// GetStatistics reports what was invoiced in the window, what was collected and what is still owed.
// Cancelled invoices count towards neither the invoiced nor the outstanding amount.
func (s *statisticsService) GetStatistics(ctx context.Context, tenantID uuid.UUID, filter StatisticsFilter) (StatisticsResponse, error) {
	if err := tenant.Check(tenantID); err != nil {
		return StatisticsResponse{}, err
	}

	start, end, err := statisticsWindow(filter)
	if err != nil {
		return StatisticsResponse{}, err
	}

	groupBy := filter.GroupBy
	if groupBy == "" {
		groupBy = repository.GroupByDay
	}
	if groupBy != repository.GroupByDay && groupBy != repository.GroupByMonth {
		return StatisticsResponse{}, apperror.Validation("group_by", "must be day or month")
	}

	summary, err := s.statisticsRepo.InvoiceSummary(ctx, tenantID, start, end)
	if err != nil {
		return StatisticsResponse{}, err
	}
	collections, err := s.statisticsRepo.Collections(ctx, tenantID, groupBy, start, end)
	if err != nil {
		return StatisticsResponse{}, err
	}

	invoiced, outstanding, collected := decimal.Zero, decimal.Zero, decimal.Zero
	byStatus := make([]InvoiceStatusSummaryResponse, 0, len(summary))
	for _, row := range summary {
		byStatus = append(byStatus, InvoiceStatusSummaryResponse{
			Status:      row.Status,
			Count:       row.Count,
			TotalAmount: row.TotalAmount.StringFixed(2),
			PaidAmount:  row.PaidAmount.StringFixed(2),
		})
		switch row.Status {
		case model.InvoiceCancelled:
		case model.InvoicePaid:
			invoiced = invoiced.Add(row.TotalAmount)
		default:
			invoiced = invoiced.Add(row.TotalAmount)
			outstanding = outstanding.Add(row.TotalAmount.Sub(row.PaidAmount))
		}
	}

	periods := make([]CollectionPeriodResponse, 0, len(collections))
	for _, row := range collections {
		collected = collected.Add(row.Amount)
		periods = append(periods, CollectionPeriodResponse{
			Period:   row.Period,
			Payments: row.Payments,
			Amount:   row.Amount.StringFixed(2),
		})
	}

	return StatisticsResponse{
		From:        start.Format(timeLayout),
		To:          end.Format(timeLayout),
		GroupBy:     groupBy,
		Invoiced:    invoiced.StringFixed(2),
		Collected:   collected.StringFixed(2),
		Outstanding: outstanding.StringFixed(2),
		ByStatus:    byStatus,
		Collections: periods,
	}, nil
}

func statisticsWindow(filter StatisticsFilter) (time.Time, time.Time, error) {
	end := time.Now().UTC()
	if filter.To != "" {
		t, err := parseTime("to", filter.To)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		end = t
	}

	start := end.Add(-defaultStatisticsWindow)
	if filter.From != "" {
		t, err := parseTime("from", filter.From)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		start = t
	}

	if !end.After(start) {
		return time.Time{}, time.Time{}, apperror.Validation("to", "must be after from")
	}
	return start, end, nil
}
