package controllers

import (
	"carrental/pkg/resp"
	"carrental/services"
	"carrental/utils"

	"github.com/gin-gonic/gin"
)

type AdminController struct{ Svc *services.AdminService }

func NewAdminController(svc *services.AdminService) *AdminController {
	return &AdminController{Svc: svc}
}

// GET /admin/dashboard
func (h *AdminController) Dashboard(c *gin.Context) {
	counts, err := h.Svc.Dashboard()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, counts)
}

// GET /admin/users
func (h *AdminController) Users(c *gin.Context) {
	users, err := h.Svc.ListUsers()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": users})
}

// GET /admin/cars
func (h *AdminController) Cars(c *gin.Context) {
	cars, err := h.Svc.ListCars()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": cars})
}

// GET /admin/drivers
func (h *AdminController) Drivers(c *gin.Context) {
	drivers, err := h.Svc.ListDrivers()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": drivers})
}

// GET /admin/bookings
func (h *AdminController) Bookings(c *gin.Context) {
	bookings, err := h.Svc.ListBookings()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": bookings})
}

// DELETE /admin/users/:id — cascades to the user's cars, drivers and bookings
func (h *AdminController) DeleteUser(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.DeleteUser(utils.CurrentUserID(c), id); err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
