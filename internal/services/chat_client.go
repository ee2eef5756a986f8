package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Rakshith-Airdit/AISP-PRICE-COMPARISION/internal/models"
)

// ChatClient talks to the negotiation chat microservice. Every call goes
// through one envelope shape: {success, message, error}.
type ChatClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewChatClient(httpClient *http.Client, baseURL string) *ChatClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &ChatClient{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

type chatEnvelope struct {
	Success bool                     `json:"success"`
	Message models.NegotiationRecord `json:"message"`
	Error   string                   `json:"error"`
}

type expectedPriceRequest struct {
	BuyerID       string  `json:"buyerId"`
	SupplierID    string  `json:"supplierId"`
	RfqNumber     string  `json:"rfqNumber"`
	MaterialNo    string  `json:"materialNo"`
	ExpectedPrice float64 `json:"expectedPrice"`
}

type bestOfferRequest struct {
	BuyerID    string  `json:"buyerId"`
	SupplierID string  `json:"supplierId"`
	RfqNumber  string  `json:"rfqNumber"`
	MaterialNo string  `json:"materialNo"`
	BestOffer  float64 `json:"bestOffer"`
}

type decisionRequest struct {
	MessageID string `json:"_id"`
}

// SendExpectedPrice posts the buyer's expected price for one material to
// one bidder and returns the resulting negotiation record.
func (c *ChatClient) SendExpectedPrice(ctx context.Context, nctx models.NegotiationContext, price float64) (models.NegotiationRecord, error) {
	return c.post(ctx, "/api/chat/buyer/expected-price", expectedPriceRequest{
		BuyerID:       nctx.BuyerID,
		SupplierID:    nctx.Bidder,
		RfqNumber:     nctx.RfqNumber,
		MaterialNo:    nctx.MaterialNo,
		ExpectedPrice: price,
	})
}

// SendBestOffer posts the buyer's counter to the supplier's best offer.
func (c *ChatClient) SendBestOffer(ctx context.Context, nctx models.NegotiationContext, offer float64) (models.NegotiationRecord, error) {
	return c.post(ctx, "/api/chat/buyer/bestOffer/message", bestOfferRequest{
		BuyerID:    nctx.BuyerID,
		SupplierID: nctx.Bidder,
		RfqNumber:  nctx.RfqNumber,
		MaterialNo: nctx.MaterialNo,
		BestOffer:  offer,
	})
}

// Accept marks the supplier's latest offer accepted.
func (c *ChatClient) Accept(ctx context.Context, messageID string) (models.NegotiationRecord, error) {
	return c.post(ctx, "/api/chat/buyer/accept", decisionRequest{MessageID: messageID})
}

// Reject marks the supplier's latest offer rejected.
func (c *ChatClient) Reject(ctx context.Context, messageID string) (models.NegotiationRecord, error) {
	return c.post(ctx, "/api/chat/buyer/reject", decisionRequest{MessageID: messageID})
}

// Latest fetches the freshest negotiation record for one thread.
func (c *ChatClient) Latest(ctx context.Context, nctx models.NegotiationContext) (models.NegotiationRecord, error) {
	params := url.Values{}
	params.Set("buyerId", nctx.BuyerID)
	params.Set("supplierId", nctx.Bidder)
	params.Set("rfqNumber", nctx.RfqNumber)
	params.Set("materialNo", nctx.MaterialNo)

	endpoint := c.baseURL + "/api/chat/latest?" + params.Encode()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return models.NegotiationRecord{}, fmt.Errorf("create request: %w", err)
	}
	return c.do(httpReq)
}

func (c *ChatClient) post(ctx context.Context, path string, payload any) (models.NegotiationRecord, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return models.NegotiationRecord{}, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return models.NegotiationRecord{}, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	return c.do(httpReq)
}

func (c *ChatClient) do(httpReq *http.Request) (models.NegotiationRecord, error) {
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return models.NegotiationRecord{}, fmt.Errorf("%w: %v", models.ErrChatServiceFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return models.NegotiationRecord{}, fmt.Errorf("%w: status %d: %s", models.ErrChatServiceFailure, resp.StatusCode, string(data))
	}

	var envelope chatEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return models.NegotiationRecord{}, fmt.Errorf("decode response: %w", err)
	}
	if !envelope.Success {
		msg := envelope.Error
		if msg == "" {
			msg = "request was not successful"
		}
		return models.NegotiationRecord{}, fmt.Errorf("%w: %s", models.ErrChatServiceFailure, msg)
	}
	return envelope.Message, nil
}
