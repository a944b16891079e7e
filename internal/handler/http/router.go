package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/hrpayroll/attendance-backend-go/internal/handler/http/middleware"
	"github.com/hrpayroll/attendance-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	meetingHandler MeetingHandler,
	notificationHandler NotificationHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		// The stream endpoint authenticates itself with a short-lived
		// query-parameter token.
		r.Get("/notifications/stream", notificationHandler.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Post("/notifications/stream-token", notificationHandler.GetStreamToken)

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/mark", attendanceHandler.Mark)
				r.Get("/employee/{employeeId}", attendanceHandler.ListByEmployee)
				r.Get("/all", attendanceHandler.ListAll)
			})

			r.Route("/leave-requests", func(r chi.Router) {
				r.Post("/", leaveHandler.Submit)
				r.Get("/my", leaveHandler.ListMine)
				r.Get("/pending", leaveHandler.ListPending)
				r.Get("/unpaid", leaveHandler.ListUnpaid)
				r.Put("/{id}/approve", leaveHandler.Approve)
				r.Put("/{id}/reject", leaveHandler.Reject)
			})

			r.Route("/hr-meetings", func(r chi.Router) {
				r.Post("/", meetingHandler.Submit)
				r.Get("/my", meetingHandler.ListMine)
				r.Get("/pending", meetingHandler.ListPending)
				r.Get("/scheduled", meetingHandler.ListScheduled)
				r.Put("/{id}/approve", meetingHandler.Approve)
				r.Put("/{id}/reject", meetingHandler.Reject)
				r.Put("/{id}/conclude", meetingHandler.Conclude)
			})
		})
	})

	return r
}
