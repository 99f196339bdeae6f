package jade

import (
	"net/http"

	"github.com/xtding233/starrail-backend/internal/api"
	"github.com/xtding233/starrail-backend/internal/api/dto"
	"github.com/xtding233/starrail-backend/internal/converter"
	"github.com/xtding233/starrail-backend/internal/service"
)

type HandlerDeps struct {
	Serv service.JadeService
}

type Handler struct {
	serv service.JadeService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Estimate(w http.ResponseWriter, r *http.Request) {
	payload, err := api.Decode[dto.EstimateRequest](r.Body)
	if err != nil {
		api.WriteError(w, r, err)
		return
	}
	cfg, err := converter.ToEstimateCfg(payload)
	if err != nil {
		api.WriteError(w, r, err)
		return
	}

	result, err := h.serv.JadeEstimate(r.Context(), cfg)
	if err != nil {
		api.WriteError(w, r, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, converter.ToEstimateResponse(*result))
}

func (h *Handler) TopUpPlan(w http.ResponseWriter, r *http.Request) {
	payload, err := api.Decode[dto.TopUpRequest](r.Body)
	if err != nil {
		api.WriteError(w, r, err)
		return
	}

	result, err := h.serv.TopUp(r.Context(), converter.ToTopUpRequest(payload))
	if err != nil {
		api.WriteError(w, r, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, converter.ToTopUpResponse(*result))
}
