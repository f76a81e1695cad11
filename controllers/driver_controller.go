package controllers

import (
	"time"

	"carrental/pkg/resp"
	"carrental/services"
	"carrental/utils"

	"github.com/gin-gonic/gin"
)

type DriverController struct{ Svc *services.DriverService }

func NewDriverController(svc *services.DriverService) *DriverController {
	return &DriverController{Svc: svc}
}

type CreateDriverRequest struct {
	Name                  string  `json:"name" binding:"required"`
	LicenseNumber         string  `json:"licenseNumber" binding:"required"`
	Experience            int     `json:"experience" binding:"min=0"`
	Phone                 string  `json:"phone" binding:"required"`
	Email                 string  `json:"email" binding:"omitempty,email"`
	LicenseType           string  `json:"licenseType"`
	LicenseExpiry         string  `json:"licenseExpiry"` // YYYY-MM-DD
	VehicleTypes          string  `json:"vehicleTypes"`
	Skills                string  `json:"skills"`
	Languages             string  `json:"languages"`
	Availability          string  `json:"availability"`
	HourlyRate            float64 `json:"hourlyRate"`
	ServiceAreas          string  `json:"serviceAreas"`
	EmergencyContactName  string  `json:"emergencyContactName"`
	EmergencyContactPhone string  `json:"emergencyContactPhone"`
}

// GET /drivers
func (h *DriverController) List(c *gin.Context) {
	drivers, err := h.Svc.ListAvailable()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": drivers})
}

// POST /drivers
func (h *DriverController) Create(c *gin.Context) {
	var req CreateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	in := services.CreateDriverInput{
		Name:                  req.Name,
		LicenseNumber:         req.LicenseNumber,
		Experience:            req.Experience,
		Phone:                 req.Phone,
		Email:                 req.Email,
		LicenseType:           req.LicenseType,
		VehicleTypes:          req.VehicleTypes,
		Skills:                req.Skills,
		Languages:             req.Languages,
		Availability:          req.Availability,
		HourlyRate:            req.HourlyRate,
		ServiceAreas:          req.ServiceAreas,
		EmergencyContactName:  req.EmergencyContactName,
		EmergencyContactPhone: req.EmergencyContactPhone,
	}
	if req.LicenseExpiry != "" {
		t, err := time.Parse("2006-01-02", req.LicenseExpiry)
		if err != nil {
			resp.BadRequest(c, "invalid licenseExpiry, want YYYY-MM-DD")
			return
		}
		in.LicenseExpiry = &t
	}

	driver, err := h.Svc.Create(utils.CurrentUserID(c), in)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	resp.Created(c, driver)
}

// GET /partner/driver/dashboard — the client's driver profile and its
// assigned bookings
func (h *DriverController) Dashboard(c *gin.Context) {
	driver, bookings, err := h.Svc.Dashboard(utils.CurrentUserID(c))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"driver": driver, "bookings": bookings})
}

// DELETE /drivers/:id — owner or admin; bookings are detached, not deleted
func (h *DriverController) Delete(c *gin.Context) {
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
