package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"dropy/internal/core/domain"
	"dropy/internal/core/port"
)

type campaignJSON struct {
	CampaignID     uint64          `json:"campaign_id"`
	Address        domain.Identity `json:"address"`
	Owner          domain.Identity `json:"owner"`
	ValueKind      domain.Identity `json:"value_kind"`
	VaultAddress   domain.Identity `json:"vault_address"`
	TotalDeposited uint64          `json:"total_deposited"`
	TotalClaimed   uint64          `json:"total_claimed"`
	Remaining      uint64          `json:"remaining"`
	LastNonce      uint64          `json:"last_nonce"`
	IsClosed       bool            `json:"is_closed"`
}

type addressesJSON struct {
	CampaignID uint64          `json:"campaign_id"`
	ProgramID  domain.Identity `json:"program_id"`
	Record     domain.Identity `json:"record"`
	RecordBump uint8           `json:"record_bump"`
	Vault      domain.Identity `json:"vault"`
	VaultBump  uint8           `json:"vault_bump"`
}

// handleGetCampaign returns the decoded record of a campaign, or 404 if the
// campaign has not been initialized.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(r)
	if !ok {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	view, err := h.svc.GetCampaign(r.Context(), id)
	if errors.Is(err, port.ErrCampaignNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.logger.Error("get campaign error", slog.Uint64("campaign_id", id), slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	rec := view.Record
	h.writeJSON(w, http.StatusOK, campaignJSON{
		CampaignID:     rec.CampaignID,
		Address:        view.Address,
		Owner:          rec.Owner,
		ValueKind:      rec.ValueKind,
		VaultAddress:   rec.VaultAddress,
		TotalDeposited: rec.TotalDeposited,
		TotalClaimed:   rec.TotalClaimed,
		Remaining:      view.Remaining,
		LastNonce:      rec.LastNonce,
		IsClosed:       rec.IsClosed,
	})
}

// handleAllocate reserves the record account of a campaign. A second
// allocation of the same campaign returns 409.
func (h *Handler) handleAllocate(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(r)
	if !ok {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	addr, err := h.svc.AllocateRecord(r.Context(), id)
	if errors.Is(err, port.ErrAccountExists) {
		http.Error(w, "record already allocated", http.StatusConflict)
		return
	}
	if err != nil {
		h.logger.Error("allocate error", slog.Uint64("campaign_id", id), slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusCreated, map[string]domain.Identity{"address": addr})
}

func (h *Handler) handleAddresses(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(r)
	if !ok {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	a, err := h.svc.Addresses(id)
	if err != nil {
		h.logger.Error("derive addresses error", slog.Uint64("campaign_id", id), slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, addressesJSON{
		CampaignID: a.CampaignID,
		ProgramID:  a.ProgramID,
		Record:     a.Record,
		RecordBump: a.RecordBump,
		Vault:      a.Vault,
		VaultBump:  a.VaultBump,
	})
}

// handleExecutions lists the newest execution log entries of a campaign.
// The optional limit query parameter caps the result size.
func (h *Handler) handleExecutions(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(r)
	if !ok {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		var err error
		if limit, err = strconv.Atoi(s); err != nil || limit < 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
	}
	execs, err := h.svc.ListExecutions(r.Context(), id, limit)
	if err != nil {
		h.logger.Error("list executions error", slog.Uint64("campaign_id", id), slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	out := make([]executionJSON, len(execs))
	for i, e := range execs {
		out[i] = toExecutionJSON(e)
	}
	h.writeJSON(w, http.StatusOK, out)
}
