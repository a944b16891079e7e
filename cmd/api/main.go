package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/hrpayroll/attendance-backend-go/internal/config"
	appHTTP "github.com/hrpayroll/attendance-backend-go/internal/handler/http"
	"github.com/hrpayroll/attendance-backend-go/internal/pkg/database"
	"github.com/hrpayroll/attendance-backend-go/internal/pkg/jwt"
	"github.com/hrpayroll/attendance-backend-go/internal/pkg/sse"
	"github.com/hrpayroll/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/hrpayroll/attendance-backend-go/internal/service/attendance"
	leaveService "github.com/hrpayroll/attendance-backend-go/internal/service/leave"
	meetingService "github.com/hrpayroll/attendance-backend-go/internal/service/meeting"
	"github.com/hrpayroll/attendance-backend-go/internal/service/notifier"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(context.Background(), cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	auditLogger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("component", "notifier"),
	)

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	meetingRequestRepo := postgresql.NewMeetingRequestRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	hub := sse.NewHub()
	sink := notifier.NewService(auditLogger, hub)

	attendanceSvc := attendanceService.NewService(attendanceRepo, sink)
	leaveSvc := leaveService.NewService(leaveRequestRepo, sink)
	meetingSvc := meetingService.NewService(meetingRequestRepo, sink)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	meetingHandler := appHTTP.NewMeetingHandler(meetingSvc)
	notificationHandler := appHTTP.NewNotificationHandler(hub, JWTService)

	router := appHTTP.NewRouter(JWTService, attendanceHandler, leaveHandler, meetingHandler, notificationHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
