package controllers

import (
	"strconv"

	"carrental/pkg/resp"
	"carrental/services"
	"carrental/utils"

	"github.com/gin-gonic/gin"
)

type CarController struct{ Svc *services.CarService }

func NewCarController(svc *services.CarService) *CarController {
	return &CarController{Svc: svc}
}

type CreateCarRequest struct {
	Brand        string  `json:"brand" binding:"required"`
	Model        string  `json:"model" binding:"required"`
	Year         int     `json:"year" binding:"required,min=1950"`
	PricePerDay  float64 `json:"pricePerDay" binding:"required,gt=0"`
	Seats        int     `json:"seats" binding:"required,min=1"`
	Transmission string  `json:"transmission" binding:"required"`
	FuelType     string  `json:"fuelType" binding:"required"`
	Location     string  `json:"location"`
	ImageBase64  string  `json:"imageBase64"` // data URL, optional
}

// GET /cars?limit=
func (h *CarController) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	cars, err := h.Svc.ListAvailable(limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": cars})
}

// GET /cars/:id
func (h *CarController) Detail(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	car, err := h.Svc.Get(id)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, car)
}

// GET /partner/cars — the client's own listings
func (h *CarController) ListMine(c *gin.Context) {
	cars, err := h.Svc.ListForClient(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": cars})
}

// POST /cars
func (h *CarController) Create(c *gin.Context) {
	var req CreateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	in := services.CreateCarInput{
		Brand:        req.Brand,
		Model:        req.Model,
		Year:         req.Year,
		PricePerDay:  req.PricePerDay,
		Seats:        req.Seats,
		Transmission: req.Transmission,
		FuelType:     req.FuelType,
		Location:     req.Location,
	}
	if req.ImageBase64 != "" {
		raw, contentType, err := decodeDataURL(req.ImageBase64)
		if err != nil {
			resp.BadRequest(c, err.Error())
			return
		}
		in.Image = raw
		in.ImageType = contentType
	}

	car, err := h.Svc.Create(c.Request.Context(), utils.CurrentUserID(c), in)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	resp.Created(c, car)
}

// DELETE /cars/:id — owner or admin; bookings on the car go with it
func (h *CarController) Delete(c *gin.Context) {
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
