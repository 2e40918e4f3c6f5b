package handlers

import (
	"net/http"
	"strings"

	"placecell/internal/ai"
	"placecell/internal/common"
	"placecell/internal/http/response"
)

type AIHandler struct {
	client *ai.Client
}

func NewAIHandler(client *ai.Client) *AIHandler {
	return &AIHandler{client: client}
}

func (h *AIHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	items, err := h.client.Recommendations(r.Context())
	if err != nil {
		response.Error(w, common.NewError(common.CodeInternal, "recommendation provider failed", err))
		return
	}
	response.JSON(w, http.StatusOK, map[string]interface{}{"recommendations": items})
}

type keyPhrasesRequest struct {
	Text string `json:"text"`
}

func (h *AIHandler) KeyPhrases(w http.ResponseWriter, r *http.Request) {
	var req keyPhrasesRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		response.Error(w, common.NewValidationError("missing fields", map[string]string{"text": "text is required"}))
		return
	}
	phrases, err := h.client.KeyPhrases(r.Context(), req.Text)
	if err != nil {
		response.Error(w, common.NewError(common.CodeInternal, "key phrase provider failed", err))
		return
	}
	response.JSON(w, http.StatusOK, map[string]interface{}{"keyPhrases": phrases})
}

type qnaRequest struct {
	Question string `json:"question"`
}

func (h *AIHandler) Answer(w http.ResponseWriter, r *http.Request) {
	var req qnaRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		response.Error(w, common.NewValidationError("missing fields", map[string]string{"question": "question is required"}))
		return
	}
	answer, err := h.client.Answer(r.Context(), req.Question)
	if err != nil {
		response.Error(w, common.NewError(common.CodeInternal, "answer provider failed", err))
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"answer": answer})
}
