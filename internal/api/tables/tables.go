package tables

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/xtding233/starrail-backend/internal/api"
	"github.com/xtding233/starrail-backend/internal/apperr"
	"github.com/xtding233/starrail-backend/internal/converter"
	"github.com/xtding233/starrail-backend/internal/service"
)

// defaultLevel is used when ?level= is absent.
const defaultLevel = 1

type HandlerDeps struct {
	Serv service.TableService
}

type Handler struct {
	serv service.TableService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Characters(w http.ResponseWriter, r *http.Request) {
	cs, err := h.serv.Characters(r.Context())
	if err != nil {
		api.WriteError(w, r, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, converter.ToCharacters(cs))
}

func (h *Handler) Character(w http.ResponseWriter, r *http.Request) {
	c, err := h.serv.Character(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		api.WriteError(w, r, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, converter.ToCharacter(c))
}

func (h *Handler) CharacterSkills(w http.ResponseWriter, r *http.Request) {
	level := defaultLevel
	if raw := r.URL.Query().Get("level"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			api.WriteError(w, r, apperr.ParseData("level %q is not a number", raw))
			return
		}
		level = v
	}

	skills, err := h.serv.CharacterSkills(r.Context(), chi.URLParam(r, "id"), level)
	if err != nil {
		api.WriteError(w, r, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, converter.ToSkills(skills))
}

func (h *Handler) LightCones(w http.ResponseWriter, r *http.Request) {
	lcs, err := h.serv.LightCones(r.Context())
	if err != nil {
		api.WriteError(w, r, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, converter.ToLightCones(lcs))
}

func (h *Handler) LightCone(w http.ResponseWriter, r *http.Request) {
	lc, err := h.serv.LightCone(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		api.WriteError(w, r, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, converter.ToLightCone(lc))
}
