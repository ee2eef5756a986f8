package models

// NegotiationContext identifies one negotiation thread. It is passed
// explicitly through every relay call instead of living on shared state.
type NegotiationContext struct {
	BuyerID    string `json:"buyerId"`
	RfqNumber  string `json:"rfqNumber"`
	MaterialNo string `json:"materialNo"`
	Bidder     string `json:"supplierId"`
}

// Room is the socket room key for the thread: buyer-rfq-material-bidder.
func (c NegotiationContext) Room() string {
	return c.BuyerID + "-" + c.RfqNumber + "-" + c.MaterialNo + "-" + c.Bidder
}

// NegotiationRecord is the per-bidder negotiation state for one material.
// It is created from the first chat-service response and mutated only by
// later pushes or accept/reject actions; it is never persisted.
type NegotiationRecord struct {
	MessageID      string   `json:"_id,omitempty"`
	BuyerID        string   `json:"buyerId,omitempty"`
	SupplierID     string   `json:"supplierId"`
	RfqNumber      string   `json:"rfqNumber,omitempty"`
	MaterialNo     string   `json:"materialNo,omitempty"`
	Status         string   `json:"status,omitempty"`
	ExpectedPrice  *float64 `json:"expectedPrice,omitempty"`
	BestOffer      *float64 `json:"bestOffer,omitempty"`
	QuotationPrice string   `json:"quotationPrice,omitempty"`
	ReadByBuyer    bool     `json:"readByBuyer"`
}

const (
	NegotiationPending  = "pending"
	NegotiationAccepted = "accepted"
	NegotiationRejected = "rejected"
)

// SocketMessage is the envelope on the real-time connection. Type is
// "register" (subscribe a room) or "Dm" (notify a counterpart).
type SocketMessage struct {
	Type     string `json:"type"`
	RoomInfo string `json:"roomInfo,omitempty"`
	To       string `json:"to,omitempty"`
	Message  string `json:"message,omitempty"`
}
