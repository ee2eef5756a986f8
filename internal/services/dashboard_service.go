package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Rakshith-Airdit/AISP-PRICE-COMPARISION/internal/countdown"
	"github.com/Rakshith-Airdit/AISP-PRICE-COMPARISION/internal/models"
	"github.com/Rakshith-Airdit/AISP-PRICE-COMPARISION/internal/processflow"
	"github.com/Rakshith-Airdit/AISP-PRICE-COMPARISION/internal/repositories"
)

// DeadlineWatcher starts a countdown against an RFQ deadline and pushes the
// expiry event to the RFQ's socket rooms. The websocket hub implements it.
type DeadlineWatcher interface {
	Watch(rfqNumber string, deadline time.Time)
}

// Dashboard is everything the RFQ detail screen needs in one response.
type Dashboard struct {
	Header       models.RFQHeader           `json:"Header"`
	Items        []models.RFQItem           `json:"Items"`
	Quotations   []models.SupplierQuotation `json:"Quotations"`
	Distribution models.StatusDistribution  `json:"Distribution"`
	Chart        []models.ChartSlice        `json:"Chart"`
	ProcessFlow  models.ProcessFlow         `json:"ProcessFlow"`
	Countdown    countdown.Snapshot         `json:"Countdown"`
}

type DashboardService struct {
	RFQs       *repositories.RFQRepository
	Quotations *repositories.QuotationRepository
	Aggregates *repositories.AggregateRepository
	Cache      *repositories.AggregateCache
	Watcher    DeadlineWatcher
}

// Load assembles the dashboard. The five reads run concurrently and their
// errors are joined; any failure returns before anything is handed to the
// caller, so a partial dashboard is never observed.
func (s *DashboardService) Load(ctx context.Context, rfqNumber string) (Dashboard, error) {
	if rfqNumber == "" {
		return Dashboard{}, models.ErrMissingRFQNumber
	}

	var d Dashboard
	var flowSrc models.ProcessFlowSource
	errs := make([]error, 5)

	var wg sync.WaitGroup
	wg.Add(5)
	go func() {
		defer wg.Done()
		d.Header, errs[0] = s.RFQs.GetHeaderByNumber(ctx, rfqNumber)
	}()
	go func() {
		defer wg.Done()
		d.Items, errs[1] = s.RFQs.GetItems(ctx, rfqNumber)
	}()
	go func() {
		defer wg.Done()
		d.Quotations, errs[2] = s.Quotations.GetSuppliers(ctx, rfqNumber, nil)
	}()
	go func() {
		defer wg.Done()
		d.Distribution, errs[3] = s.statusDistribution(ctx, rfqNumber)
	}()
	go func() {
		defer wg.Done()
		flowSrc, errs[4] = s.processFlowSource(ctx, rfqNumber)
	}()
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return Dashboard{}, err
	}

	now := time.Now()
	projectTimeRemaining(&d.Header, now)
	d.Chart = chartSlices(d.Distribution)
	d.ProcessFlow = processflow.Build(flowSrc)
	if d.Header.EventEndDate != nil {
		d.Countdown = countdown.Compute(*d.Header.EventEndDate, now)
		if s.Watcher != nil && d.Countdown.State == countdown.Running {
			s.Watcher.Watch(rfqNumber, *d.Header.EventEndDate)
		}
	}
	return d, nil
}

func (s *DashboardService) statusDistribution(ctx context.Context, rfqNumber string) (models.StatusDistribution, error) {
	if dist, ok := s.Cache.GetStatusDistribution(ctx, rfqNumber); ok {
		return dist, nil
	}
	dist, err := s.Aggregates.GetStatusDistribution(ctx, rfqNumber)
	if err != nil {
		return dist, err
	}
	_ = s.Cache.SetStatusDistribution(ctx, dist)
	return dist, nil
}

func (s *DashboardService) processFlowSource(ctx context.Context, rfqNumber string) (models.ProcessFlowSource, error) {
	if src, ok := s.Cache.GetProcessFlowSource(ctx, rfqNumber); ok {
		return src, nil
	}
	src, err := s.Aggregates.GetProcessFlowSource(ctx, rfqNumber)
	if err != nil {
		return src, err
	}
	_ = s.Cache.SetProcessFlowSource(ctx, src)
	return src, nil
}

// chartSlices projects the distribution into chart segments. Pending is the
// remainder of invited suppliers not yet accounted for, floored at zero.
func chartSlices(dist models.StatusDistribution) []models.ChartSlice {
	total := len(dist.SupplierDetails)
	accounted := dist.AcceptedCount + dist.NotAcceptedCount + dist.RejectedCount
	pending := total - accounted
	if pending < 0 {
		pending = 0
	}
	return []models.ChartSlice{
		{Type: "Submitted", Count: dist.SubmittedCount},
		{Type: "Accepted", Count: dist.AcceptedCount},
		{Type: "Not Accepted", Count: dist.NotAcceptedCount},
		{Type: "Rejected", Count: dist.RejectedCount},
		{Type: "Pending", Count: pending},
	}
}
