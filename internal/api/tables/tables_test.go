package tables

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/xtding233/starrail-backend/internal/api/dto"
	"github.com/xtding233/starrail-backend/internal/apperr"
	"github.com/xtding233/starrail-backend/internal/hsr"
)

type fakeTables struct {
	level int
}

var seele = hsr.Character{ID: "1102", Name: "Seele", Rarity: 5, Path: "The Hunt", Element: "Quantum"}

func (f *fakeTables) Characters(context.Context) (map[string]hsr.Character, error) {
	return map[string]hsr.Character{"1102": seele, "1001": {ID: "1001", Name: "March 7th"}}, nil
}

func (f *fakeTables) Character(_ context.Context, id string) (hsr.Character, error) {
	if id != seele.ID {
		return hsr.Character{}, apperr.NotFound("character " + id)
	}
	return seele, nil
}

func (f *fakeTables) CharacterSkills(_ context.Context, id string, level int) ([]hsr.SkillView, error) {
	f.level = level
	v, err := hsr.Skill{ID: "110201", Name: "Thwack", Description: "#1[i]% of ATK", Params: [][]float64{{0.5}, {0.6}}}.View(level)
	if err != nil {
		return nil, err
	}
	return []hsr.SkillView{v}, nil
}

func (f *fakeTables) LightCones(context.Context) (map[string]hsr.LightCone, error) {
	return map[string]hsr.LightCone{}, nil
}

func (f *fakeTables) LightCone(_ context.Context, id string) (hsr.LightCone, error) {
	return hsr.LightCone{}, apperr.NotFound("light cone " + id)
}

func router(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/characters", h.Characters)
	r.Get("/characters/{id}", h.Character)
	r.Get("/characters/{id}/skills", h.CharacterSkills)
	r.Get("/light_cones/{id}", h.LightCone)
	return r
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestCharacters(t *testing.T) {
	r := router(NewHandler(HandlerDeps{Serv: &fakeTables{}}))

	rec := get(t, r, "/characters")
	var list []dto.Character
	if err := json.NewDecoder(rec.Body).Decode(&list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list) != 2 || list[0].ID != "1001" {
		t.Fatalf("characters should be ordered by id: %+v", list)
	}

	rec = get(t, r, "/characters/1102")
	var c dto.Character
	if err := json.NewDecoder(rec.Body).Decode(&c); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if c.Name != "Seele" || c.Path != "The Hunt" {
		t.Fatalf("unexpected character %+v", c)
	}

	if rec := get(t, r, "/characters/42"); rec.Code != http.StatusNotFound {
		t.Fatalf("missing character: status %d", rec.Code)
	}
	if rec := get(t, r, "/light_cones/42"); rec.Code != http.StatusNotFound {
		t.Fatalf("missing light cone: status %d", rec.Code)
	}
}

func TestCharacterSkillsLevel(t *testing.T) {
	svc := &fakeTables{}
	r := router(NewHandler(HandlerDeps{Serv: svc}))

	rec := get(t, r, "/characters/1102/skills?level=2")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	var skills []dto.Skill
	if err := json.NewDecoder(rec.Body).Decode(&skills); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if svc.level != 2 || skills[0].Level != 2 || skills[0].Description.Params[0] != "60%" {
		t.Fatalf("unexpected skills %+v", skills)
	}

	get(t, r, "/characters/1102/skills")
	if svc.level != defaultLevel {
		t.Fatalf("default level = %d", svc.level)
	}

	for _, q := range []string{"abc", "0"} {
		if rec := get(t, r, "/characters/1102/skills?level="+q); rec.Code != http.StatusBadRequest {
			t.Errorf("level %q: status %d", q, rec.Code)
		}
	}
}
