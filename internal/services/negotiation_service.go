package services

import (
	"context"
	"sync"

	"github.com/Rakshith-Airdit/AISP-PRICE-COMPARISION/internal/models"
)

// Broadcaster pushes a payload to every connection registered in a room.
// The websocket hub implements it.
type Broadcaster interface {
	Broadcast(room string, payload any)
}

// chatAPI is the slice of ChatClient the negotiation service uses.
type chatAPI interface {
	SendExpectedPrice(ctx context.Context, nctx models.NegotiationContext, price float64) (models.NegotiationRecord, error)
	SendBestOffer(ctx context.Context, nctx models.NegotiationContext, offer float64) (models.NegotiationRecord, error)
	Accept(ctx context.Context, messageID string) (models.NegotiationRecord, error)
	Reject(ctx context.Context, messageID string) (models.NegotiationRecord, error)
	Latest(ctx context.Context, nctx models.NegotiationContext) (models.NegotiationRecord, error)
}

// NegotiationService relays buyer negotiation actions to the chat service
// and tracks the per-material, per-bidder state those calls return. All
// state is keyed by material number and supplier id; nothing is shared
// between threads.
type NegotiationService struct {
	Chat        chatAPI
	Broadcaster Broadcaster

	mu      sync.Mutex
	tracked map[string]map[string]*models.NegotiationRecord
}

func NewNegotiationService(chat chatAPI, broadcaster Broadcaster) *NegotiationService {
	return &NegotiationService{
		Chat:        chat,
		Broadcaster: broadcaster,
		tracked:     make(map[string]map[string]*models.NegotiationRecord),
	}
}

// SendExpectedPrice relays the buyer's expected price and tracks the
// resulting record. The counterpart is notified through the socket room.
func (s *NegotiationService) SendExpectedPrice(ctx context.Context, nctx models.NegotiationContext, price float64) (models.NegotiationRecord, error) {
	record, err := s.Chat.SendExpectedPrice(ctx, nctx, price)
	if err != nil {
		return models.NegotiationRecord{}, err
	}
	s.store(nctx, record)
	s.notify(nctx, "expected-price")
	return record, nil
}

// SendBestOffer relays the buyer's counter offer.
func (s *NegotiationService) SendBestOffer(ctx context.Context, nctx models.NegotiationContext, offer float64) (models.NegotiationRecord, error) {
	record, err := s.Chat.SendBestOffer(ctx, nctx, offer)
	if err != nil {
		return models.NegotiationRecord{}, err
	}
	s.store(nctx, record)
	s.notify(nctx, "best-offer")
	return record, nil
}

// Accept accepts the supplier's latest offer. It requires a tracked record
// with a message id; acting on a thread that was never fetched is refused.
func (s *NegotiationService) Accept(ctx context.Context, nctx models.NegotiationContext) (models.NegotiationRecord, error) {
	return s.decide(ctx, nctx, s.Chat.Accept, models.NegotiationAccepted)
}

// Reject rejects the supplier's latest offer under the same preconditions
// as Accept.
func (s *NegotiationService) Reject(ctx context.Context, nctx models.NegotiationContext) (models.NegotiationRecord, error) {
	return s.decide(ctx, nctx, s.Chat.Reject, models.NegotiationRejected)
}

func (s *NegotiationService) decide(ctx context.Context, nctx models.NegotiationContext,
	call func(context.Context, string) (models.NegotiationRecord, error), status string) (models.NegotiationRecord, error) {

	s.mu.Lock()
	current, ok := s.tracked[nctx.MaterialNo][nctx.Bidder]
	var messageID string
	if ok {
		messageID = current.MessageID
	}
	s.mu.Unlock()

	if !ok {
		return models.NegotiationRecord{}, models.ErrNoTrackedNegotiation
	}
	if messageID == "" {
		return models.NegotiationRecord{}, models.ErrMissingMessageID
	}

	record, err := call(ctx, messageID)
	if err != nil {
		return models.NegotiationRecord{}, err
	}
	// The chat service may omit the status on the decision response; the
	// stored record always carries the decided one.
	if record.Status == "" {
		record.Status = status
	}
	s.store(nctx, record)
	s.notify(nctx, status)
	return record, nil
}

// Refresh fetches the latest record for the thread and merges it into the
// tracked state. A record naming a different supplier is returned but
// never merged.
func (s *NegotiationService) Refresh(ctx context.Context, nctx models.NegotiationContext) (models.NegotiationRecord, error) {
	record, err := s.Chat.Latest(ctx, nctx)
	if err != nil {
		return models.NegotiationRecord{}, err
	}
	s.Apply(nctx, record)
	return record, nil
}

// RefreshAll refreshes every tracked bidder thread for one material and
// returns the merged snapshots. A failed fetch keeps that bidder's prior
// record and reports the first error after the loop.
func (s *NegotiationService) RefreshAll(ctx context.Context, buyerID, rfqNumber, materialNo string) ([]models.NegotiationRecord, error) {
	s.mu.Lock()
	bidders := make([]string, 0, len(s.tracked[materialNo]))
	for bidder := range s.tracked[materialNo] {
		bidders = append(bidders, bidder)
	}
	s.mu.Unlock()

	var firstErr error
	for _, bidder := range bidders {
		nctx := models.NegotiationContext{
			BuyerID:    buyerID,
			RfqNumber:  rfqNumber,
			MaterialNo: materialNo,
			Bidder:     bidder,
		}
		if _, err := s.Refresh(ctx, nctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return s.Tracked(materialNo), firstErr
}

// Apply merges a record pushed over the socket into the tracked state. The
// merge is skipped when the record belongs to another supplier, so a push
// for bidder A can never overwrite bidder B's thread.
func (s *NegotiationService) Apply(nctx models.NegotiationContext, record models.NegotiationRecord) bool {
	if record.SupplierID != nctx.Bidder {
		return false
	}
	s.store(nctx, record)
	return true
}

// Tracked returns a snapshot of the tracked records for one material.
func (s *NegotiationService) Tracked(materialNo string) []models.NegotiationRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	byBidder := s.tracked[materialNo]
	records := make([]models.NegotiationRecord, 0, len(byBidder))
	for _, r := range byBidder {
		records = append(records, *r)
	}
	return records
}

func (s *NegotiationService) store(nctx models.NegotiationContext, record models.NegotiationRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	byBidder, ok := s.tracked[nctx.MaterialNo]
	if !ok {
		byBidder = make(map[string]*models.NegotiationRecord)
		s.tracked[nctx.MaterialNo] = byBidder
	}
	stored := record
	byBidder[nctx.Bidder] = &stored
}

func (s *NegotiationService) notify(nctx models.NegotiationContext, event string) {
	if s.Broadcaster == nil {
		return
	}
	s.Broadcaster.Broadcast(nctx.Room(), models.SocketMessage{
		Type:    "Dm",
		To:      nctx.Bidder + "-" + nctx.RfqNumber + "-" + nctx.MaterialNo,
		Message: event,
	})
}
