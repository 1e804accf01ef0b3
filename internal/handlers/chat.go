package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"gremaster-backend/internal/models"
)

// chatResponder is satisfied by services.GeminiService.
type chatResponder interface {
	Reply(ctx context.Context, userInput string) (string, error)
}

type ChatHandler struct {
	responder chatResponder
}

func NewChatHandler(responder chatResponder) *ChatHandler {
	return &ChatHandler{responder: responder}
}

func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, err)
		return
	}

	// A client that hangs up does not abort the model call.
	ctx := context.WithoutCancel(r.Context())

	reply, err := h.responder.Reply(ctx, req.UserInput)
	if err != nil {
		writeError(w, err)
		return
	}

	log.Println(reply)
	writeJSON(w, http.StatusOK, models.ChatResponse{Response: reply})
}
