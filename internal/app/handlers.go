package app

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"rapport/internal/assist"
	"rapport/internal/contract"
	"rapport/internal/extract"
)

type interpretRequest struct {
	Text string `json:"text"`
}

type interpretResponse struct {
	RequestID string                `json:"requestId"`
	Sentiment string                `json:"sentiment"`
	Result    contract.IntentResult `json:"result"`
}

type reminderReplyRequest struct {
	Text    string                   `json:"text"`
	Context contract.ReminderContext `json:"context"`
}

type reminderReplyResponse struct {
	RequestID string                      `json:"requestId"`
	Result    contract.ReminderResolution `json:"result"`
}

func (a *App) handleInterpret(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req interpretRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if req.Text == "" {
		http.Error(w, "missing text", http.StatusBadRequest)
		return
	}

	requestID := requestIDFor(r)
	ctx := assist.WithRequestID(r.Context(), requestID)
	writeJSON(w, interpretResponse{
		RequestID: requestID,
		Sentiment: extract.Sentiment(req.Text),
		Result:    a.Assist.Interpret(ctx, req.Text),
	})
}

func (a *App) handleReminderReply(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req reminderReplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if req.Text == "" {
		http.Error(w, "missing text", http.StatusBadRequest)
		return
	}

	requestID := requestIDFor(r)
	ctx := assist.WithRequestID(r.Context(), requestID)
	writeJSON(w, reminderReplyResponse{
		RequestID: requestID,
		Result:    a.Assist.ResolveReminderReply(ctx, req.Text, req.Context),
	})
}

func requestIDFor(r *http.Request) string {
	if id := r.Header.Get("X-Request-Id"); id != "" {
		return id
	}
	return uuid.NewString()
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
