package handlers

import (
	"net/http"

	"estoque-api/internal/auth"
)

// GetDashboardHandler godoc
// @Summary Product list plus aggregate stock figures for the current user
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} DashboardResponse
// @Failure 401 {string} string "Unauthorized"
// @Failure 500 {string} string "Internal error"
// @Router /dashboard [get]
func GetDashboardHandler(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.SessionFromContext(r.Context())
	if !ok {
		http.Error(w, "missing session", http.StatusUnauthorized)
		return
	}

	lc := listControllerFor(session)
	if err := lc.Refresh(); err != nil {
		logger.Error().Err(err).Int("owner", session.UserID).Msg("could not fetch dashboard")
		http.Error(w, "could not fetch dashboard", http.StatusInternalServerError)
		return
	}

	products := lc.Products()
	summary := lc.Summary()

	resp := DashboardResponse{
		Products: make([]ProductResponse, len(products)),
		Summary: DashboardSummary{
			TotalProducts: summary.TotalProducts,
			TotalValue:    round2(summary.TotalValue),
			AverageMargin: round2(summary.AverageMargin),
		},
	}
	for i, p := range products {
		resp.Products[i] = toProductResponse(p)
	}

	writeJSON(w, http.StatusOK, resp)
}

// HealthCheckHandler godoc
// @Summary Liveness probe
// @Tags health
// @Success 200 {string} string "ok"
// @Router /healthz [get]
func HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
