package requests

import (
	"fmt"
	"net/http"
	"time"

	"eldercare-api/internal/api"
	"eldercare-api/internal/database"
	"eldercare-api/internal/model"
	"eldercare-api/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	createServiceRequest       = store.CreateServiceRequest
	listPendingServiceRequests = store.ListPendingServiceRequests
	applyDecision              = store.ApplyDecision
	now                        = time.Now
)

// @Summary     Create a service request
// @Description Persists a new service request; status defaults to pending
// @Tags        requests
// @Accept      json
// @Produce     json
// @Param       body body api.CreateServiceRequestRequest true "service request payload"
// @Success     200 {object} api.CreateServiceRequestResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /service-request [post]
func CreateServiceRequestHandler(requests database.Collection) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateServiceRequestRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: err.Error()})
		}

		if req.Status == "" {
			req.Status = model.StatusPending
		}

		id, err := createServiceRequest(c.Request().Context(), requests, &model.ServiceRequest{
			UserID:       req.UserID,
			UserName:     req.UserName,
			UserEmail:    req.UserEmail,
			ServiceType:  req.ServiceType,
			Requirements: req.Requirements,
			Cost:         req.Cost,
			Status:       req.Status,
			CreatedAt:    req.CreatedAt,
			UpdatedAt:    now().Format(time.RFC3339),
		})
		if err != nil {
			logrus.WithError(err).Error("service request: insert failed")
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "Failed to create service request"})
		}

		return c.JSON(http.StatusOK, api.CreateServiceRequestResponse{
			Message:   "Service request created successfully!",
			RequestID: id.Hex(),
		})
	}
}

// @Summary     List pending service requests
// @Description Returns every pending request, most recently created first
// @Tags        requests
// @Produce     json
// @Success     200 {object} api.PendingRequestsResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /service-requests/pending [get]
func ListPendingRequestsHandler(requests database.Collection) echo.HandlerFunc {
	return func(c echo.Context) error {
		items, err := listPendingServiceRequests(c.Request().Context(), requests)
		if err != nil {
			logrus.WithError(err).Error("service requests: pending list failed")
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "Failed to fetch service requests"})
		}

		resp := api.PendingRequestsResponse{Requests: make([]api.ServiceRequestResponse, 0, len(items))}
		for _, r := range items {
			resp.Requests = append(resp.Requests, api.ServiceRequestResponse{
				ID:             r.ID.Hex(),
				UserID:         r.UserID,
				UserName:       r.UserName,
				UserEmail:      r.UserEmail,
				ServiceType:    r.ServiceType,
				Requirements:   r.Requirements,
				Cost:           r.Cost,
				Status:         r.Status,
				CreatedAt:      r.CreatedAt,
				UpdatedAt:      r.UpdatedAt,
				CaregiverID:    r.CaregiverID,
				CaregiverName:  r.CaregiverName,
				CaregiverEmail: r.CaregiverEmail,
				ProcessedAt:    r.ProcessedAt,
			})
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Approve or reject a service request
// @Description Writes the decision and caregiver details onto the request
// @Tags        requests
// @Accept      json
// @Produce     json
// @Param       id     path string true "request id (hex)"
// @Param       action path string true "approve or reject"
// @Param       body   body api.RequestActionRequest true "caregiver payload"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /service-request/{id}/{action} [patch]
func RequestActionHandler(requests database.Collection) echo.HandlerFunc {
	return func(c echo.Context) error {
		action := c.Param("action")
		if action != "approve" && action != "reject" {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: "Invalid action. Use 'approve' or 'reject'"})
		}

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: "Invalid request ID format"})
		}

		var req api.RequestActionRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: err.Error()})
		}

		status := model.StatusApproved
		if action == "reject" {
			status = model.StatusRejected
		}

		// Unconditional overwrite: an already-decided request is re-decided
		// with the new caregiver's data.
		ts := now().Format(time.RFC3339)
		matched, err := applyDecision(c.Request().Context(), requests, id, model.Decision{
			Status:         status,
			CaregiverID:    req.CaregiverID,
			CaregiverName:  req.CaregiverName,
			CaregiverEmail: req.CaregiverEmail,
			ProcessedAt:    ts,
			UpdatedAt:      ts,
		})
		if err != nil {
			logrus.WithError(err).Error("service request: decision update failed")
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "Failed to process service request"})
		}
		if !matched {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Detail: "Service request not found"})
		}

		return c.JSON(http.StatusOK, api.MessageResponse{Message: fmt.Sprintf("Request %s successfully!", status)})
	}
}
