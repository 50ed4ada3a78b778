package httpserver

import (
	"net/http"
	"time"

	"family-dues-go/internal/transport/httpserver/handler"
	corsmw "family-dues-go/internal/transport/httpserver/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(handlers *handler.Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(corsmw.NewCORS([]string{"http://localhost:5173"}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		r.Get("/families", handlers.ListFamilies)
		r.Post("/families", handlers.CreateFamily)
		r.Get("/families/{id}", handlers.GetFamily)
		r.Put("/families/{id}", handlers.UpdateFamily)
		r.Delete("/families/{id}", handlers.DeleteFamily)

		r.Get("/families/{id}/members", handlers.ListMembers)
		r.Post("/families/{id}/members", handlers.CreateMember)
		r.Put("/families/{id}/members/{member_id}", handlers.UpdateMember)
		r.Delete("/families/{id}/members/{member_id}", handlers.DeleteMember)

		r.Get("/families/{id}/balance", handlers.GetFamilyBalance)
		r.Get("/families/{id}/payments", handlers.ListPayments)
		r.Post("/families/{id}/payments", handlers.CreatePayment)
		r.Get("/families/{id}/withdrawals", handlers.ListWithdrawals)
		r.Post("/families/{id}/withdrawals", handlers.CreateWithdrawal)
		r.Get("/families/{id}/lifecycle-events", handlers.ListLifecycleEvents)
		r.Post("/families/{id}/lifecycle-events", handlers.CreateLifecycleEvent)
		r.Get("/families/{id}/statements", handlers.ListFamilyStatements)

		r.Get("/calculations", handlers.ListCalculations)
		r.Get("/calculations/{year}", handlers.GetCalculation)
		r.Post("/calculations/{year}", handlers.CalculateYear)

		r.Post("/statements/generate", handlers.GenerateStatements)
		r.Post("/jobs/wedding-converter", handlers.RunWeddingConverter)
	})

	return r
}
