package gacha

import (
	"net/http"

	"github.com/xtding233/starrail-backend/internal/api"
	"github.com/xtding233/starrail-backend/internal/api/dto"
	"github.com/xtding233/starrail-backend/internal/converter"
	"github.com/xtding233/starrail-backend/internal/service"
)

type HandlerDeps struct {
	Serv service.GachaService
}

type Handler struct {
	serv service.GachaService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Config(w http.ResponseWriter, r *http.Request) {
	api.WriteJSON(w, http.StatusOK, converter.ToGachaCfgResponse(h.serv.Defaults(r.Context())))
}

func (h *Handler) BannerList(w http.ResponseWriter, r *http.Request) {
	api.WriteJSON(w, http.StatusOK, converter.ToBannerList(h.serv.Banners(r.Context())))
}

func (h *Handler) ProbabilityRate(w http.ResponseWriter, r *http.Request) {
	payload, err := api.Decode[dto.ProbabilityRateRequest](r.Body)
	if err != nil {
		api.WriteError(w, r, err)
		return
	}

	result, err := h.serv.ProbabilityRate(r.Context(), converter.ToPullState(payload))
	if err != nil {
		api.WriteError(w, r, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, converter.ToProbabilityRateResponse(*result))
}

func (h *Handler) Sample(w http.ResponseWriter, r *http.Request) {
	payload, err := api.Decode[dto.SampleRequest](r.Body)
	if err != nil {
		api.WriteError(w, r, err)
		return
	}

	result, err := h.serv.Sample(r.Context(), converter.ToSample(payload))
	if err != nil {
		api.WriteError(w, r, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, converter.ToSampleResponse(*result))
}

func (h *Handler) Warp(w http.ResponseWriter, r *http.Request) {
	payload, err := api.Decode[dto.WarpRequest](r.Body)
	if err != nil {
		api.WriteError(w, r, err)
		return
	}
	if payload.Count == 0 {
		payload.Count = 1
	}

	result, err := h.serv.Warp(r.Context(), converter.ToWarp(payload))
	if err != nil {
		api.WriteError(w, r, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, converter.ToWarpResponse(*result))
}
