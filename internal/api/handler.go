package api

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ecotrip/go-trip-carbon/internal/carbon"
	"github.com/ecotrip/go-trip-carbon/internal/emission"
	"github.com/ecotrip/go-trip-carbon/internal/models"
	"github.com/ecotrip/go-trip-carbon/internal/registry"
)

type Handler struct {
	registry *registry.Registry
	emission *emission.Engine
	carbon   *carbon.Engine
}

func NewHandler(reg *registry.Registry, em *emission.Engine, cr *carbon.Engine) *Handler {
	return &Handler{
		registry: reg,
		emission: em,
		carbon:   cr,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/api/cities", h.getCities)
	r.GET("/api/cities/geojson", h.getCitiesGeoJSON)
	r.GET("/api/distance", h.getDistance)
	r.GET("/api/compare", h.getComparison)
	r.GET("/api/estimate", h.getEstimate)
	r.GET("/health", h.health)
	r.GET("/metrics", metricsHandler())
}

func (h *Handler) getCities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"cities": h.registry.List(),
	})
}

func (h *Handler) getCitiesGeoJSON(c *gin.Context) {
	fc := toGeoJSON(h.registry)
	c.Header("Content-Type", "application/geo+json")
	c.JSON(http.StatusOK, fc)
}

func (h *Handler) getDistance(c *gin.Context) {
	origin := c.Query("origin")
	destination := c.Query("destination")
	if origin == "" || destination == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "origin and destination are required",
		})
		return
	}

	distance, err := h.registry.DistanceBetween(origin, destination)
	if err != nil {
		if errors.Is(err, registry.ErrCityNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": err.Error(),
				"hint":  "supply a manual distance via /api/estimate?distance=",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to compute distance",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"origin":      origin,
		"destination": destination,
		"distance_km": distance,
	})
}

func (h *Handler) getComparison(c *gin.Context) {
	distance, ok := h.parseDistance(c)
	if !ok {
		return
	}

	entries, err := h.emission.CompareAll(distance)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"distance_km": distance,
		"comparison":  entries,
	})
}

func (h *Handler) getEstimate(c *gin.Context) {
	mode, err := models.ParseMode(c.Query("mode"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var distance float64
	resp := gin.H{}

	if d := c.Query("distance"); d != "" {
		var ok bool
		if distance, ok = h.parseDistance(c); !ok {
			return
		}
	} else {
		origin := c.Query("origin")
		destination := c.Query("destination")
		if origin == "" || destination == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "either distance or origin and destination are required",
			})
			return
		}
		distance, err = h.registry.DistanceBetween(origin, destination)
		if err != nil {
			if errors.Is(err, registry.ErrCityNotFound) {
				c.JSON(http.StatusNotFound, gin.H{
					"error": err.Error(),
					"hint":  "supply a manual distance via ?distance=",
				})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "failed to compute distance",
			})
			return
		}
		resp["origin"] = origin
		resp["destination"] = destination
	}

	emissionKg, err := h.emission.For(distance, mode)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	baselineKg, err := h.emission.For(distance, models.ModeCar)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute baseline emission"})
		return
	}
	comparison, err := h.emission.CompareAll(distance)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compare modes"})
		return
	}

	credits, err := h.carbon.Credits(emissionKg)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute credits"})
		return
	}
	price, err := h.carbon.EstimatePrice(credits)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to estimate price"})
		return
	}
	savings, err := h.carbon.Savings(emissionKg, baselineKg)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute savings"})
		return
	}

	EstimatesTotal.WithLabelValues(mode.String()).Inc()

	resp["distance_km"] = distance
	resp["mode"] = mode
	resp["emission_kg"] = emissionKg
	resp["credits"] = credits
	resp["price"] = price
	resp["savings"] = savings
	resp["comparison"] = comparison
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// parseDistance reads the distance query parameter. Manual distances must be
// strictly positive finite numbers; anything else is rejected before it can
// reach the engines.
func (h *Handler) parseDistance(c *gin.Context) (float64, bool) {
	raw := c.Query("distance")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "distance is required"})
		return 0, false
	}
	distance, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(distance) || math.IsInf(distance, 0) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "distance must be a number"})
		return 0, false
	}
	if distance <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "distance must be > 0"})
		return 0, false
	}
	return distance, true
}
