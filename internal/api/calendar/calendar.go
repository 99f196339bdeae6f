package calendar

import (
	"net/http"

	"github.com/xtding233/starrail-backend/internal/api"
	"github.com/xtding233/starrail-backend/internal/converter"
	"github.com/xtding233/starrail-backend/internal/service"
)

type HandlerDeps struct {
	Serv service.CalendarService
}

type Handler struct {
	serv service.CalendarService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) PatchDates(w http.ResponseWriter, r *http.Request) {
	api.WriteJSON(w, http.StatusOK, converter.ToPatches(h.serv.PatchDates(r.Context())))
}

func (h *Handler) PatchBanners(w http.ResponseWriter, r *http.Request) {
	api.WriteJSON(w, http.StatusOK, converter.ToPatchBanners(h.serv.PatchBanners(r.Context())))
}
