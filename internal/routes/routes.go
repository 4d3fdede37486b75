package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/parentadvocate/advocate-backend/internal/handlers"
)

func SetupRoutes(r *chi.Mux) {
	// Auth routes
	r.Post("/api/auth/signup", handlers.Signup)
	r.Post("/api/auth/signin", handlers.Signin)
	r.Post("/api/auth/signout", handlers.Signout)
	r.Get("/api/auth/me", handlers.Me)

	// Case record routes
	r.Get("/api/case", handlers.GetCaseRecord)
	r.Put("/api/case", handlers.UpdateCaseRecord)

	// Document routes
	r.Post("/api/documents", handlers.UploadDocument)
	r.Get("/api/documents", handlers.ListDocuments)
	r.Get("/api/documents/{id}/file", handlers.DownloadDocument)
	r.Get("/api/documents/categories", handlers.DocumentCategories)

	// Violation routes
	r.Post("/api/violations", handlers.ReportViolation)
	r.Get("/api/violations", handlers.ListViolations)
	r.Put("/api/violations/{id}/status", handlers.UpdateViolationStatus)
	r.Get("/api/violations/types", handlers.ViolationTypes)

	// Compliance task routes
	r.Post("/api/tasks", handlers.AddTask)
	r.Get("/api/tasks", handlers.ListTasks)
	r.Put("/api/tasks/{id}/complete", handlers.CompleteTask)
	r.Get("/api/tasks/categories", handlers.TaskCategories)

	// Appointment routes
	r.Post("/api/appointments", handlers.AddAppointment)
	r.Get("/api/appointments", handlers.ListAppointments)
	r.Put("/api/appointments/{id}/status", handlers.UpdateAppointmentStatus)
	r.Get("/api/appointments/types", handlers.AppointmentTypes)

	// Reflection routes
	r.Post("/api/reflections", handlers.AddReflection)
	r.Get("/api/reflections", handlers.ListReflections)

	// Assistant chat routes
	r.Post("/api/chat", handlers.SendChatMessage)
	r.Get("/api/chat/history", handlers.GetChatHistory)

	// Dashboard stats
	r.Get("/api/stats", handlers.GetStats)

	// Report routes
	r.Post("/api/reports", handlers.GenerateReport)
	r.Get("/api/reports/types", handlers.ReportTypes)

	// Long-term guardianship guidance
	r.Post("/api/guidance", handlers.GuardianshipGuidance)
}
