package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/swasth-api/internal/models"
	"github.com/harentsoaR/swasth-api/internal/services"
	"go.uber.org/zap"
)

// parseRadius reads the radius query parameter in metres.
func parseRadius(c *gin.Context) (int, bool) {
	s := c.Query("radius")
	if s == "" {
		return services.DefaultClinicRadius, true
	}
	r, err := strconv.Atoi(s)
	if err != nil || r <= 0 || r > services.MaxClinicRadius {
		return 0, false
	}
	return r, true
}

// GetNearbyClinics lists facilities around lat/lon, or around the default
// location when the caller has no position.
func (h *Handler) GetNearbyClinics(c *gin.Context) {
	radius, ok := parseRadius(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "radius must be between 1 and 20000 metres"})
		return
	}

	loc := models.Location{Lat: services.DefaultLat, Lon: services.DefaultLon}
	latStr, lonStr := c.Query("lat"), c.Query("lon")
	if latStr != "" || lonStr != "" {
		lat, err1 := strconv.ParseFloat(latStr, 64)
		lon, err2 := strconv.ParseFloat(lonStr, 64)
		if err1 != nil || err2 != nil || lat < -90 || lat > 90 || lon < -180 || lon > 180 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lon must be valid coordinates"})
			return
		}
		loc = models.Location{Lat: lat, Lon: lon}
	}

	h.respondWithClinics(c, loc, radius)
}

// SearchClinics geocodes q and lists facilities around the match.
func (h *Handler) SearchClinics(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
		return
	}
	radius, ok := parseRadius(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "radius must be between 1 and 20000 metres"})
		return
	}

	loc, err := h.Clinics.Geocode(c.Request.Context(), q)
	if errors.Is(err, services.ErrLocationNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Location not found. Please try a different search."})
		return
	}
	if err != nil {
		h.Logger.Error("geocoding failed", zap.String("q", q), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to search location"})
		return
	}

	h.respondWithClinics(c, *loc, radius)
}

func (h *Handler) respondWithClinics(c *gin.Context, loc models.Location, radius int) {
	clinics, err := h.Clinics.NearbyClinics(c.Request.Context(), loc.Lat, loc.Lon, radius)
	if err != nil {
		h.Logger.Error("clinic lookup failed", zap.Float64("lat", loc.Lat), zap.Float64("lon", loc.Lon), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load nearby clinics. Please try again."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"location": loc, "radius": radius, "clinics": clinics})
}
