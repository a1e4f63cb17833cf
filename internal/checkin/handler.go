package checkin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct{ svc *Service }

// RegisterRoutes mounts the kiosk endpoint: one POST dispatching on the
// action field, as the kiosk wire protocol defines.
func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}
	r.POST("/checkin", h.Dispatch)
}

// RegisterStaffRoutes mounts the authenticated staff surface.
func RegisterStaffRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}
	r.GET("/attendees", h.ListAttendees)
}

// Dispatch is the single request boundary. Kiosks post the body as
// text/plain to avoid a CORS preflight round-trip, so the body is decoded
// as JSON regardless of its content type.
func (h *Handler) Dispatch(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody(NewInvalidArgumentError("無效請求：未收到資料。")))
		return
	}

	switch req.Action {
	case ActionQuery:
		view, err := h.svc.Query(c.Request.Context(), req.Phone)
		if err != nil {
			c.JSON(toHTTPStatus(err), errorBody(err))
			return
		}
		c.JSON(http.StatusOK, Response{Success: true, Data: view})

	case ActionCheckIn:
		timestamp, err := h.svc.CheckIn(c.Request.Context(), req.ID)
		if err != nil {
			c.JSON(toHTTPStatus(err), errorBody(err))
			return
		}
		c.JSON(http.StatusOK, Response{Success: true, Timestamp: timestamp})

	default:
		c.JSON(http.StatusBadRequest, errorBody(NewInvalidArgumentError("未知動作："+req.Action)))
	}
}

func (h *Handler) ListAttendees(c *gin.Context) {
	res, err := h.svc.ListAttendees(c.Request.Context())
	if err != nil {
		c.JSON(toHTTPStatus(err), errorBody(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

// toHTTPStatus maps domain errors to transport status. Negative results
// (not found, already checked in) are normal responses, not faults, and
// stay 200 so legacy kiosks keep reading the body.
func toHTTPStatus(err error) int {
	var domain *DomainError
	if errors.As(err, &domain) {
		switch domain.Code {
		case ErrCodeInvalidArgument:
			return http.StatusBadRequest
		case ErrCodeNotFound, ErrCodeAlreadyCheckedIn:
			return http.StatusOK
		}
	}
	return http.StatusInternalServerError
}

func errorBody(err error) Response {
	var domain *DomainError
	if errors.As(err, &domain) {
		return Response{
			Success:     false,
			Code:        domain.Code,
			Message:     domain.Message,
			DebugStatus: domain.Status,
		}
	}
	return Response{
		Success: false,
		Code:    ErrCodeInternal,
		Message: "系統錯誤，請稍後再試。",
	}
}
