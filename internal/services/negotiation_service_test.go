package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Rakshith-Airdit/AISP-PRICE-COMPARISION/internal/models"
)

type stubChat struct {
	latest  models.NegotiationRecord
	record  models.NegotiationRecord
	err     error
	calls   int
	lastCtx models.NegotiationContext
}

func (s *stubChat) SendExpectedPrice(_ context.Context, nctx models.NegotiationContext, _ float64) (models.NegotiationRecord, error) {
	s.calls++
	s.lastCtx = nctx
	return s.record, s.err
}

func (s *stubChat) SendBestOffer(_ context.Context, nctx models.NegotiationContext, _ float64) (models.NegotiationRecord, error) {
	s.calls++
	s.lastCtx = nctx
	return s.record, s.err
}

func (s *stubChat) Accept(_ context.Context, _ string) (models.NegotiationRecord, error) {
	s.calls++
	return s.record, s.err
}

func (s *stubChat) Reject(_ context.Context, _ string) (models.NegotiationRecord, error) {
	s.calls++
	return s.record, s.err
}

func (s *stubChat) Latest(_ context.Context, nctx models.NegotiationContext) (models.NegotiationRecord, error) {
	s.calls++
	s.lastCtx = nctx
	return s.latest, s.err
}

func nctxForBidder(bidder string) models.NegotiationContext {
	return models.NegotiationContext{
		BuyerID:    "b1",
		RfqNumber:  "600001",
		MaterialNo: "M-100",
		Bidder:     bidder,
	}
}

func TestSendExpectedPriceTracksRecord(t *testing.T) {
	chat := &stubChat{record: models.NegotiationRecord{MessageID: "m1", SupplierID: "SUP1", Status: models.NegotiationPending}}
	svc := NewNegotiationService(chat, nil)

	record, err := svc.SendExpectedPrice(context.Background(), nctxForBidder("SUP1"), 500)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.MessageID != "m1" {
		t.Fatalf("expected message id m1, got %q", record.MessageID)
	}

	tracked := svc.Tracked("M-100")
	if len(tracked) != 1 || tracked[0].SupplierID != "SUP1" {
		t.Fatalf("expected one tracked record for SUP1, got %+v", tracked)
	}
}

func TestAcceptRequiresTrackedRecord(t *testing.T) {
	svc := NewNegotiationService(&stubChat{}, nil)

	_, err := svc.Accept(context.Background(), nctxForBidder("SUP1"))
	if !errors.Is(err, models.ErrNoTrackedNegotiation) {
		t.Fatalf("expected ErrNoTrackedNegotiation, got %v", err)
	}
}

func TestAcceptRequiresMessageID(t *testing.T) {
	chat := &stubChat{record: models.NegotiationRecord{SupplierID: "SUP1"}}
	svc := NewNegotiationService(chat, nil)

	nctx := nctxForBidder("SUP1")
	if _, err := svc.SendExpectedPrice(context.Background(), nctx, 500); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	_, err := svc.Accept(context.Background(), nctx)
	if !errors.Is(err, models.ErrMissingMessageID) {
		t.Fatalf("expected ErrMissingMessageID, got %v", err)
	}
	if chat.calls != 1 {
		t.Fatalf("accept must not reach the chat service without a message id, calls=%d", chat.calls)
	}
}

func TestDecisionFillsOmittedStatus(t *testing.T) {
	tests := []struct {
		name   string
		decide func(*NegotiationService, models.NegotiationContext) (models.NegotiationRecord, error)
		want   string
	}{
		{
			name: "accept",
			decide: func(svc *NegotiationService, nctx models.NegotiationContext) (models.NegotiationRecord, error) {
				return svc.Accept(context.Background(), nctx)
			},
			want: models.NegotiationAccepted,
		},
		{
			name: "reject",
			decide: func(svc *NegotiationService, nctx models.NegotiationContext) (models.NegotiationRecord, error) {
				return svc.Reject(context.Background(), nctx)
			},
			want: models.NegotiationRejected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chat := &stubChat{record: models.NegotiationRecord{MessageID: "m1", SupplierID: "SUP1"}}
			svc := NewNegotiationService(chat, nil)

			nctx := nctxForBidder("SUP1")
			if _, err := svc.SendExpectedPrice(context.Background(), nctx, 500); err != nil {
				t.Fatalf("seed failed: %v", err)
			}

			record, err := tt.decide(svc, nctx)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if record.Status != tt.want {
				t.Fatalf("expected status %q on the returned record, got %q", tt.want, record.Status)
			}

			tracked := svc.Tracked("M-100")
			if len(tracked) != 1 || tracked[0].Status != tt.want {
				t.Fatalf("expected tracked status %q, got %+v", tt.want, tracked)
			}
		})
	}
}

func TestApplySkipsForeignSupplier(t *testing.T) {
	chat := &stubChat{record: models.NegotiationRecord{MessageID: "m1", SupplierID: "SUP1"}}
	svc := NewNegotiationService(chat, nil)

	nctx := nctxForBidder("SUP1")
	if _, err := svc.SendExpectedPrice(context.Background(), nctx, 500); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	merged := svc.Apply(nctx, models.NegotiationRecord{MessageID: "m2", SupplierID: "SUP2"})
	if merged {
		t.Fatal("record for another supplier must not merge")
	}

	tracked := svc.Tracked("M-100")
	if len(tracked) != 1 || tracked[0].MessageID != "m1" {
		t.Fatalf("prior record must survive a foreign push, got %+v", tracked)
	}
}

func TestRefreshMergesMatchingSupplier(t *testing.T) {
	offer := 450.0
	chat := &stubChat{latest: models.NegotiationRecord{MessageID: "m2", SupplierID: "SUP1", BestOffer: &offer}}
	svc := NewNegotiationService(chat, nil)

	record, err := svc.Refresh(context.Background(), nctxForBidder("SUP1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.BestOffer == nil || *record.BestOffer != 450 {
		t.Fatalf("expected best offer 450, got %+v", record.BestOffer)
	}

	tracked := svc.Tracked("M-100")
	if len(tracked) != 1 || tracked[0].MessageID != "m2" {
		t.Fatalf("refresh must merge matching supplier, got %+v", tracked)
	}
}

func TestRefreshFailureKeepsLocalState(t *testing.T) {
	chat := &stubChat{record: models.NegotiationRecord{MessageID: "m1", SupplierID: "SUP1"}}
	svc := NewNegotiationService(chat, nil)

	nctx := nctxForBidder("SUP1")
	if _, err := svc.SendExpectedPrice(context.Background(), nctx, 500); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	chat.err = models.ErrChatServiceFailure
	if _, err := svc.Refresh(context.Background(), nctx); err == nil {
		t.Fatal("expected refresh error")
	}

	tracked := svc.Tracked("M-100")
	if len(tracked) != 1 || tracked[0].MessageID != "m1" {
		t.Fatalf("failed refresh must leave prior state, got %+v", tracked)
	}
}
