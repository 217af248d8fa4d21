package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	agentMiddleware := standardMiddleware.Append(app.requireAgent)

	mux := pat.New()

	// Login
	mux.Post("/verify-login", standardMiddleware.ThenFunc(app.authHandler.VerifyLogin))

	// Notification outbox
	mux.Get("/pending-sms", agentMiddleware.ThenFunc(app.notificationHandler.GetPendingNotifications))
	mux.Post("/mark-sent/:id", agentMiddleware.ThenFunc(app.notificationHandler.MarkSent))

	// Documents
	mux.Get("/document/:jobcardid", agentMiddleware.ThenFunc(app.documentHandler.GetDocument))
	mux.Get("/generate-pdf/:jobcardid", agentMiddleware.ThenFunc(app.documentHandler.GeneratePDF))

	return mux
}
