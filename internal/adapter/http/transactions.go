package httpadapter

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/mr-tron/base58"

	"dropy/internal/core/domain"
	"dropy/internal/core/port"
)

type accountKeyJSON struct {
	Address   domain.Identity `json:"address"`
	Signature string          `json:"signature,omitempty"`
}

type submitRequest struct {
	// Data is the base64 encoded instruction payload.
	Data     string           `json:"data"`
	Accounts []accountKeyJSON `json:"accounts"`
}

type executionJSON struct {
	ID         string          `json:"id"`
	CampaignID uint64          `json:"campaign_id"`
	Operation  string          `json:"operation,omitempty"`
	Signer     domain.Identity `json:"signer"`
	Amount     uint64          `json:"amount,omitempty"`
	Nonce      uint64          `json:"nonce,omitempty"`
	Status     string          `json:"status"`
	Code       *uint32         `json:"code,omitempty"`
	Error      string          `json:"error,omitempty"`
	Message    string          `json:"message,omitempty"`
	CreatedAt  string          `json:"created_at"`
}

func toExecutionJSON(e domain.Execution) executionJSON {
	out := executionJSON{
		ID:         e.ID.String(),
		CampaignID: e.CampaignID,
		Operation:  e.Operation,
		Signer:     e.Signer,
		Amount:     e.Amount,
		Nonce:      e.Nonce,
		Status:     string(e.Status),
		CreatedAt:  e.CreatedAt.Format(time.RFC3339Nano),
	}
	if e.ErrorCode != nil {
		c := uint32(*e.ErrorCode)
		out.Code = &c
		out.Error = e.ErrorCode.String()
		out.Message = e.Error
	}
	return out
}

// handleSubmit executes one signed request. Applied requests return 200,
// requests rejected by the program return 422 with the stable error code,
// bad signatures 401 and undecodable bodies 400.
func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var body submitRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	data, err := base64.StdEncoding.DecodeString(body.Data)
	if err != nil {
		http.Error(w, "invalid data encoding", http.StatusBadRequest)
		return
	}
	req := port.SubmitReq{Data: data, Accounts: make([]port.AccountKey, len(body.Accounts))}
	for i, a := range body.Accounts {
		req.Accounts[i].Address = a.Address
		if a.Signature == "" {
			continue
		}
		if req.Accounts[i].Signature, err = base58.Decode(a.Signature); err != nil {
			http.Error(w, "invalid signature encoding", http.StatusBadRequest)
			return
		}
	}

	exec, err := h.svc.Submit(r.Context(), req)
	switch {
	case errors.Is(err, port.ErrInvalidSignature):
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	case err != nil:
		h.logger.Error("submit error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	status := http.StatusOK
	if exec.Status == domain.ExecutionRejected {
		status = http.StatusUnprocessableEntity
	}
	h.writeJSON(w, status, toExecutionJSON(*exec))
}
