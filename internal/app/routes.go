package app

import (
	"hash/maphash"
	"math/rand/v2"

	"pawntour/internal/handlers"
)

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func (a *App) loadRoutes() {
	auth := handlers.NewAuthHandler(a.logger, a.db, a.cookies, a.jwt)
	session := handlers.NewTourHandler(a.logger, a.db, a.ws, createRand())

	a.router.HandleFunc("POST /v1/register", auth.Register)
	a.router.HandleFunc("POST /v1/login", auth.Login)
	a.router.HandleFunc("POST /v1/logout", auth.Logout)
	a.router.HandleFunc("GET /v1/status", auth.Status)

	a.router.HandleFunc("GET /v1/records", session.Records)

	a.router.HandleFunc("POST /v1/session", session.Create)
	a.router.HandleFunc("GET /v1/session/{id}", session.Fetch)
	a.router.HandleFunc("POST /v1/session/{id}/attempt", session.Attempt)
	a.router.HandleFunc("POST /v1/session/{id}/solve", session.Solve)
	a.router.HandleFunc("POST /v1/session/{id}/forfeit", session.Forfeit)
	a.router.HandleFunc("/v1/session/{id}/connect", session.ConnectWS)
}
