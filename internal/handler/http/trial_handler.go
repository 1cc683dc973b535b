package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/natembeza/curalink/internal/usecase"
)

type TrialHandler struct {
	trialUsecase *usecase.TrialUsecase
}

func NewTrialHandler(trialUsecase *usecase.TrialUsecase) *TrialHandler {
	return &TrialHandler{trialUsecase: trialUsecase}
}

type refreshTrialsRequest struct {
	Keywords   string   `json:"keywords"`
	Conditions []string `json:"conditions"`
}

// RefreshTrials handles POST /trials/refresh: fetch from the external
// registry, summarize and store.
func (h *TrialHandler) RefreshTrials(c *gin.Context) {
	var req refreshTrialsRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	trials, err := h.trialUsecase.RefreshExternalTrials(c.Request.Context(), req.Keywords, req.Conditions)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{"message": "Trials refreshed", "trials": trials})
}
