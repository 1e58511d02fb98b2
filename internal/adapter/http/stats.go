package httpadapter

import (
	"errors"
	"log/slog"
	"math/big"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"dropy/internal/core/port"
)

// defaultStatsWindow is the period reported when the query names no bounds.
const defaultStatsWindow = 24 * time.Hour

type statsJSON struct {
	Applied   int64    `json:"applied"`
	Rejected  int64    `json:"rejected"`
	Deposited *big.Int `json:"deposited"`
	Claimed   *big.Int `json:"claimed"`
}

// statsQuery builds a StatsReq from the optional from, to (RFC3339) and
// campaign_id parameters. A missing from is taken as defaultStatsWindow
// before to; a missing to is now.
func statsQuery(q url.Values, now time.Time) (port.StatsReq, error) {
	req := port.StatsReq{To: now}
	if s := q.Get("to"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return req, errors.New("invalid 'to' timestamp")
		}
		req.To = t
	}
	req.From = req.To.Add(-defaultStatsWindow)
	if s := q.Get("from"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return req, errors.New("invalid 'from' timestamp")
		}
		req.From = t
	}
	if s := q.Get("campaign_id"); s != "" {
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return req, errors.New("invalid campaign_id")
		}
		req.CampaignID = &id
	}
	return req, nil
}

// handleStatsOverview reports applied and rejected request counts and the
// deposited and claimed sums over a period.
func (h *Handler) handleStatsOverview(w http.ResponseWriter, r *http.Request) {
	req, err := statsQuery(r.URL.Query(), time.Now())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	stats, err := h.svc.GetStats(r.Context(), req)
	if err != nil {
		h.logger.Error("stats error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, statsJSON{
		Applied:   stats.Applied,
		Rejected:  stats.Rejected,
		Deposited: stats.Deposited,
		Claimed:   stats.Claimed,
	})
}
