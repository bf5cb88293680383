// README: Session API handlers for the four-screen planning flow.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"lazytrip/internal/session"
	"lazytrip/internal/trip"
)

type SessionHandler struct {
	session *session.Manager
}

func NewSessionHandler(s *session.Manager) *SessionHandler {
	return &SessionHandler{session: s}
}

// State handles GET /api/session.
func (h *SessionHandler) State(c *gin.Context) {
	writeJSON(c, http.StatusOK, h.session.Snapshot())
}

// Options handles GET /api/session/options: the closed vocabularies the
// client renders its selectors and the swap reason picker from.
func (h *SessionHandler) Options(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{
		"tags":        trip.AllTravelTags(),
		"frequencies": trip.AllTravelFrequencies(),
		"transports":  trip.AllTransportPreferences(),
		"swapReasons": trip.SwapReasons(),
	})
}

type navigateReq struct {
	Step string `json:"step"`
}

// Navigate handles POST /api/session/navigate.
func (h *SessionHandler) Navigate(c *gin.Context) {
	var req navigateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.session.Navigate(session.Step(req.Step)); err != nil {
		writeSessionError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, h.session.Snapshot())
}

type toggleTagReq struct {
	Tag string `json:"tag"`
}

// ToggleTag handles POST /api/session/dna/tags/toggle. The widget only
// reports the tag the user activated; add-or-remove is decided here.
func (h *SessionHandler) ToggleTag(c *gin.Context) {
	var req toggleTagReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.session.ToggleTag(trip.TravelTag(req.Tag)); err != nil {
		writeSessionError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, h.session.Snapshot())
}

type frequencyReq struct {
	Frequency string `json:"frequency"`
}

// SetFrequency handles POST /api/session/dna/frequency.
func (h *SessionHandler) SetFrequency(c *gin.Context) {
	var req frequencyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.session.SetFrequency(trip.TravelFrequency(req.Frequency)); err != nil {
		writeSessionError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, h.session.Snapshot())
}

type transportReq struct {
	Transport string `json:"transport"`
}

// SetTransport handles POST /api/session/dna/transport.
func (h *SessionHandler) SetTransport(c *gin.Context) {
	var req transportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.session.SetTransport(trip.TransportPreference(req.Transport)); err != nil {
		writeSessionError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, h.session.Snapshot())
}

type planReq struct {
	City       string `json:"city"`
	StartPoint string `json:"startPoint"`
	Days       int    `json:"days"`
	Budget     int    `json:"budget"`
}

// UpdatePlan handles PUT /api/session/plan.
func (h *SessionHandler) UpdatePlan(c *gin.Context) {
	var req planReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.session.SetPlan(req.City, req.StartPoint, req.Days, req.Budget); err != nil {
		writeSessionError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, h.session.Snapshot())
}

// Generate handles POST /api/session/generate. The response carries the
// loading itinerary screen; the plan fills in asynchronously.
func (h *SessionHandler) Generate(c *gin.Context) {
	if err := h.session.Generate(c.Request.Context()); err != nil {
		writeSessionError(c, err)
		return
	}
	writeJSON(c, http.StatusAccepted, h.session.Snapshot())
}

type swapReq struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

// Swap handles POST /api/session/swap.
func (h *SessionHandler) Swap(c *gin.Context) {
	var req swapReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	req.ID = strings.TrimSpace(req.ID)
	req.Reason = strings.TrimSpace(req.Reason)
	if req.ID == "" || req.Reason == "" {
		writeError(c, http.StatusBadRequest, "missing id or reason")
		return
	}
	if err := h.session.Swap(c.Request.Context(), req.ID, req.Reason); err != nil {
		writeSessionError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, h.session.Snapshot())
}

type weatherReq struct {
	IsRaining bool `json:"isRaining"`
}

// SetWeather handles POST /api/session/weather (simulated rain toggle).
func (h *SessionHandler) SetWeather(c *gin.Context) {
	var req weatherReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	h.session.SetRaining(req.IsRaining)
	writeJSON(c, http.StatusOK, h.session.Snapshot())
}

type viewReq struct {
	Mode string `json:"mode"`
}

// SetView handles POST /api/session/view.
func (h *SessionHandler) SetView(c *gin.Context) {
	var req viewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.session.SetViewMode(session.ViewMode(req.Mode)); err != nil {
		writeSessionError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, h.session.Snapshot())
}
