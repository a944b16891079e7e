package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hrpayroll/attendance-backend-go/internal/domain/meeting"
	"github.com/hrpayroll/attendance-backend-go/internal/handler/http/middleware"
	"github.com/hrpayroll/attendance-backend-go/internal/handler/http/response"
)

type MeetingHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	ListScheduled(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Conclude(w http.ResponseWriter, r *http.Request)
}

type meetingHandlerImpl struct {
	meetingService meeting.MeetingService
}

func NewMeetingHandler(meetingService meeting.MeetingService) MeetingHandler {
	return &meetingHandlerImpl{
		meetingService: meetingService,
	}
}

// Submit implements MeetingHandler.
func (h *meetingHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ActorFromContext(r.Context())

	var req meeting.CreateMeetingRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = actor.EmployeeID

	created, err := h.meetingService.Submit(r.Context(), actor, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Meeting request submitted", created)
}

// ListMine implements MeetingHandler.
func (h *meetingHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ActorFromContext(r.Context())

	requests, err := h.meetingService.ListMine(r.Context(), actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// ListPending implements MeetingHandler.
func (h *meetingHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ActorFromContext(r.Context())

	requests, err := h.meetingService.ListPending(r.Context(), actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// ListScheduled implements MeetingHandler.
func (h *meetingHandlerImpl) ListScheduled(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ActorFromContext(r.Context())

	requests, err := h.meetingService.ListScheduled(r.Context(), actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// Approve implements MeetingHandler.
func (h *meetingHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ActorFromContext(r.Context())

	var req meeting.ApproveMeetingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	approved, err := h.meetingService.Approve(r.Context(), actor, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Meeting request approved", approved)
}

// Reject implements MeetingHandler.
func (h *meetingHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ActorFromContext(r.Context())

	var req meeting.RejectMeetingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	rejected, err := h.meetingService.Reject(r.Context(), actor, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Meeting request rejected", rejected)
}

// Conclude implements MeetingHandler.
func (h *meetingHandlerImpl) Conclude(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ActorFromContext(r.Context())
	requestID := chi.URLParam(r, "id")

	concluded, err := h.meetingService.Conclude(r.Context(), actor, requestID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Meeting request concluded", concluded)
}
