package hsr

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/xtding233/starrail-backend/internal/apperr"
	"github.com/xtding233/starrail-backend/internal/datasource"
)

// every test serves the same text map, so the process-wide map stays consistent
var fixtures = map[string]string{
	"/dim/TextMap/TextMapEN.json": `{
		"-100": "Frigid Cold Arrow",
		"200": "Deals Ice DMG equal to #1[i]% of March 7th's ATK to a single enemy.",
		"300": "Single Target",
		"400": "Arrows",
		"500": "Deals minor Ice DMG.",
		"600": "Season of Fertility",
		"700": "Increases the wearer's Max HP by #1[f1]%.",
		"800": "Arrows of the hunt",
		"not-a-hash": "skipped"
	}`,
	"/mar/index_new/en/characters.json": `{
		"1001": {"id": "1001", "name": "March 7th", "rarity": 4, "path": "Knight", "element": "Ice",
			"max_sp": 120, "skills": ["100101", "100199"], "icon": "icon/character/1001.png"},
		"1102": {"id": "1102", "name": "Seele", "rarity": 5, "path": "Rogue", "element": "Quantum",
			"max_sp": 120, "skills": [], "icon": "icon/character/1102.png"}
	}`,
	"/dim/ExcelOutput/AvatarSkillConfig.json": `{
		"100101": {
			"2": {"SkillID": 100101, "Level": 2, "SkillName": {"Hash": 999}, "ParamList": [{"Value": 0.6}]},
			"1": {"SkillID": 100101, "Level": 1, "SkillName": {"Hash": -100}, "SkillDesc": {"Hash": 200},
				"SimpleSkillDesc": {"Hash": 500}, "SkillTag": {"Hash": 300}, "MaxLevel": 9,
				"AttackType": "Normal", "SkillTriggerKey": "Skill01", "ParamList": [{"Value": 0.5}]}
		}
	}`,
	"/dim/ExcelOutput/EquipmentConfig.json": `{
		"20000": {"EquipmentID": 20000, "EquipmentName": {"Hash": 400}, "EquipmentDesc": {"Hash": 800},
			"Rarity": "CombatPowerLightconeRarity3", "AvatarBaseType": "Rogue", "MaxRank": 5, "SkillID": 20000}
	}`,
	"/dim/ExcelOutput/EquipmentSkillConfig.json": `[
		{"SkillID": 20000, "Level": 1, "SkillName": {"Hash": 600}, "SkillDesc": {"Hash": 700}, "ParamList": [{"Value": 0.12}]},
		{"SkillID": 20000, "Level": 2, "SkillName": {"Hash": 600}, "SkillDesc": {"Hash": 700}, "ParamList": [{"Value": 0.15}]}
	]`,
}

func newTestRepo(t *testing.T) (*Repository, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		body, ok := fixtures[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	repo := NewRepository(datasource.NewHTTPFetcher(time.Second, 0), Options{
		DataDir:          t.TempDir(),
		DimbreathBaseURL: srv.URL + "/dim/",
		Mar7thBaseURL:    srv.URL + "/mar",
	})
	return repo, &calls
}

func TestCharacter(t *testing.T) {
	repo, calls := newTestRepo(t)
	ctx := context.Background()

	c, err := repo.Character(ctx, "1001")
	if err != nil {
		t.Fatal(err)
	}
	if c.Name != "March 7th" || c.Rarity != 4 || len(c.SkillIDs) != 2 {
		t.Fatalf("character = %+v", c)
	}
	if _, err := repo.Character(ctx, "9999"); apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("want not found, got %v", err)
	}
	if calls.Load() != 1 {
		t.Fatalf("upstream calls = %d, want 1", calls.Load())
	}
}

func TestCharacterSkills(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	views, err := repo.CharacterSkills(ctx, "1001", 1)
	if err != nil {
		t.Fatal(err)
	}
	// 100199 is not in the dump and is skipped
	if len(views) != 1 {
		t.Fatalf("views = %d, want 1", len(views))
	}
	v := views[0]
	if v.Name != "Frigid Cold Arrow" || v.Tag != "Single Target" || v.MaxLevel != 9 {
		t.Fatalf("skill = %+v", v.Skill)
	}
	if v.SimpleDescription != "Deals minor Ice DMG." {
		t.Fatalf("simple description = %q", v.SimpleDescription)
	}
	if len(v.Levels) != 2 || v.Levels[0] != 1 || v.Params[1][0] != 0.6 {
		t.Fatalf("levels merged wrong: %v %v", v.Levels, v.Params)
	}
	if got := v.Rendered.String(); !strings.Contains(got, "equal to 50% of") {
		t.Fatalf("rendered = %q", got)
	}

	// past the last level the top level is used
	views, err = repo.CharacterSkills(ctx, "1001", 12)
	if err != nil {
		t.Fatal(err)
	}
	if views[0].Level != 2 || views[0].Values[0] != 0.6 {
		t.Fatalf("clamped view = level %d values %v", views[0].Level, views[0].Values)
	}

	if _, err := repo.CharacterSkills(ctx, "1001", 0); apperr.KindOf(err) != apperr.KindParseData {
		t.Fatalf("level 0: want parse data error, got %v", err)
	}
}

func TestLightCones(t *testing.T) {
	repo, _ := newTestRepo(t)
	lc, err := repo.LightCone(context.Background(), "20000")
	if err != nil {
		t.Fatal(err)
	}
	if lc.Name != "Arrows" || lc.Rarity != 3 || lc.Path != "The Hunt" || lc.MaxRank != 5 {
		t.Fatalf("light cone = %+v", lc)
	}
	if lc.Skill == nil || len(lc.Skill.Params) != 2 || lc.Skill.Name != "Season of Fertility" {
		t.Fatalf("skill = %+v", lc.Skill)
	}
	v, err := lc.Skill.View(2)
	if err != nil {
		t.Fatal(err)
	}
	if got := v.Rendered.String(); got != "Increases the wearer's Max HP by 15.0%." {
		t.Fatalf("rendered = %q", got)
	}
	if _, err := repo.LightCone(context.Background(), "1"); apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("want not found, got %v", err)
	}
}

func TestUpstreamMissingIsServerSide(t *testing.T) {
	repo, _ := newTestRepo(t)
	repo.opts.Mar7thBaseURL += "/gone"
	if _, err := repo.Characters(context.Background()); apperr.KindOf(err) != apperr.KindServerSide {
		t.Fatalf("want server side error, got %v", err)
	}
}

func TestConvertTextMapSkipsBadKeys(t *testing.T) {
	m, err := convertTextMap(map[string]string{"-5": "a", "x": "b"})
	if err != nil {
		t.Fatal(err)
	}
	if len(m) != 1 || m[-5] != "a" {
		t.Fatalf("text map = %v", m)
	}
}

func TestSortedIDs(t *testing.T) {
	got := SortedIDs(map[string]int{"1102": 0, "8001": 0, "1001": 0, "21000": 0})
	want := []string{"1001", "1102", "8001", "21000"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("SortedIDs = %v", got)
		}
	}
}
