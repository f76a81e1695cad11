package controllers

import (
	"time"

	"carrental/pkg/resp"
	"carrental/services"
	"carrental/utils"

	"github.com/gin-gonic/gin"
)

type BookingController struct{ Svc *services.BookingService }

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{Svc: svc}
}

type CreateBookingRequest struct {
	CarID           uint   `json:"carId" binding:"required"`
	DriverID        uint   `json:"driverId"`
	StartDate       string `json:"startDate" binding:"required"` // YYYY-MM-DD
	EndDate         string `json:"endDate" binding:"required"`   // YYYY-MM-DD
	PickupLocation  string `json:"pickupLocation" binding:"required"`
	DropoffLocation string `json:"dropoffLocation"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// POST /bookings
func (h *BookingController) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		resp.BadRequest(c, "invalid startDate, want YYYY-MM-DD")
		return
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		resp.BadRequest(c, "invalid endDate, want YYYY-MM-DD")
		return
	}

	booking, err := h.Svc.Create(utils.CurrentUserID(c), services.CreateBookingInput{
		CarID:           req.CarID,
		DriverID:        req.DriverID,
		StartDate:       start,
		EndDate:         end,
		PickupLocation:  req.PickupLocation,
		DropoffLocation: req.DropoffLocation,
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}
	resp.Created(c, booking)
}

// GET /bookings — the caller's own bookings
func (h *BookingController) ListForMe(c *gin.Context) {
	bookings, err := h.Svc.ListForUser(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": bookings})
}

// PATCH /bookings/:id/status — assigned driver's owner only
func (h *BookingController) UpdateStatus(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.UpdateStatus(utils.CurrentUserID(c), id, req.Status); err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id, "status": req.Status})
}

// DELETE /bookings/:id — owner or admin
func (h *BookingController) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.Delete(utils.CurrentUserID(c), id); err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
