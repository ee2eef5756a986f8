package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := standardMiddleware.Append(app.JWTMiddleware)

	mux := pat.New()

	// Auth
	mux.Post("/api/auth/sign_in", standardMiddleware.ThenFunc(app.authHandler.SignIn))

	// RFQ
	mux.Get("/api/rfqs", authMiddleware.ThenFunc(app.rfqHandler.GetRFQs))
	mux.Post("/api/rfqs", authMiddleware.ThenFunc(app.rfqHandler.CreateRFQ))
	mux.Get("/api/rfqs/:rfq_number", authMiddleware.ThenFunc(app.rfqHandler.GetRFQByNumber))
	mux.Get("/api/rfqs/:rfq_number/items", authMiddleware.ThenFunc(app.rfqHandler.GetItems))
	mux.Get("/api/rfqs/:rfq_number/materials", authMiddleware.ThenFunc(app.rfqHandler.GetMaterials))
	mux.Get("/api/rfqs/:rfq_number/dashboard", authMiddleware.ThenFunc(app.rfqHandler.GetDashboard))
	mux.Post("/api/rfqs/decision", authMiddleware.ThenFunc(app.rfqHandler.Decide))

	// Value helps for authoring
	mux.Get("/api/materials", authMiddleware.ThenFunc(app.rfqHandler.SearchMaterials))
	mux.Get("/api/vendors", authMiddleware.ThenFunc(app.rfqHandler.SearchVendors))

	// Comparison
	mux.Get("/api/rfqs/:rfq_number/comparison", authMiddleware.ThenFunc(app.comparisonHandler.Compare))
	mux.Get("/api/rfqs/:rfq_number/ranking", authMiddleware.ThenFunc(app.comparisonHandler.Ranking))
	mux.Get("/api/rfqs/:rfq_number/comparison/export", authMiddleware.ThenFunc(app.comparisonHandler.Export))

	// Negotiation relay
	mux.Post("/api/negotiation/select", authMiddleware.ThenFunc(app.negotiationHandler.Select))
	mux.Post("/api/negotiation/expected-price", authMiddleware.ThenFunc(app.negotiationHandler.SendExpectedPrice))
	mux.Post("/api/negotiation/best-offer", authMiddleware.ThenFunc(app.negotiationHandler.SendBestOffer))
	mux.Post("/api/negotiation/accept", authMiddleware.ThenFunc(app.negotiationHandler.Accept))
	mux.Post("/api/negotiation/reject", authMiddleware.ThenFunc(app.negotiationHandler.Reject))
	mux.Get("/api/negotiation/refresh", authMiddleware.ThenFunc(app.negotiationHandler.Refresh))

	// Real-time relay
	mux.Get("/ws", standardMiddleware.ThenFunc(app.WebSocketHandler))

	return standardMiddleware.Then(mux)
}
