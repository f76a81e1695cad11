package controllers

import (
	"carrental/pkg/resp"
	"carrental/services"

	"github.com/gin-gonic/gin"
)

// TrackingController serves the data behind the "track cars" map: a geocoded
// center plus every available car with coordinates. Rendering the map is the
// frontend's job.
type TrackingController struct {
	Cars *services.CarService
	Geo  services.Geocoder
}

func NewTrackingController(cars *services.CarService, geo services.Geocoder) *TrackingController {
	return &TrackingController{Cars: cars, Geo: geo}
}

type trackedCar struct {
	ID          uint    `json:"id"`
	Brand       string  `json:"brand"`
	Model       string  `json:"model"`
	PricePerDay float64 `json:"pricePerDay"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// GET /tracking/cars?location=
func (h *TrackingController) Track(c *gin.Context) {
	location := c.DefaultQuery("location", "New York")
	lat, lng := h.Geo.Geocode(c.Request.Context(), location)

	cars, err := h.Cars.ListAvailable(0)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	items := make([]trackedCar, 0, len(cars))
	for _, car := range cars {
		if car.Latitude == 0 && car.Longitude == 0 {
			continue
		}
		items = append(items, trackedCar{
			ID:          car.ID,
			Brand:       car.Brand,
			Model:       car.CarModel,
			PricePerDay: car.PricePerDay,
			Latitude:    car.Latitude,
			Longitude:   car.Longitude,
		})
	}

	resp.OK(c, gin.H{
		"location": location,
		"center":   gin.H{"latitude": lat, "longitude": lng},
		"cars":     items,
	})
}
