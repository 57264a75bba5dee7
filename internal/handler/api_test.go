package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/yuqie6/lifemirror/internal/ai"
	"github.com/yuqie6/lifemirror/internal/bootstrap"
	"github.com/yuqie6/lifemirror/internal/content"
	"github.com/yuqie6/lifemirror/internal/eventbus"
	"github.com/yuqie6/lifemirror/internal/ledger"
	"github.com/yuqie6/lifemirror/internal/pkg/config"
	"github.com/yuqie6/lifemirror/internal/repository"
	"github.com/yuqie6/lifemirror/internal/service"
	"github.com/yuqie6/lifemirror/internal/storage"
)

// newTestAPI 用内存存储拼一个完整的 core，不碰磁盘和网络
func newTestAPI(t *testing.T) *API {
	t.Helper()

	registry, err := content.NewRegistry("")
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	core := &bootstrap.Core{
		Cfg:      config.Default(),
		DB:       &repository.Database{SchemaVersion: 1},
		Store:    storage.NewMemoryStore(),
		Hub:      eventbus.NewHub(),
		Registry: registry,
	}
	core.Clients.DeepSeek = ai.NewDeepSeekClient(&ai.DeepSeekConfig{})

	core.Services.Tracker = service.NewTrackerService(ledger.New(core.Store), registry, core.Hub)
	core.Services.Journals = service.NewJournalService(core.Store, core.Cfg.Retention, core.Hub)
	core.Services.Dashboard = service.NewDashboardService(core.Services.Tracker, core.Services.Journals, registry)
	core.Services.Advisor = service.NewAdvisorService(ai.NewAdvisor(core.Clients.DeepSeek), core.Services.Tracker)

	return NewAPI(core)
}

func doJSON(t *testing.T, fn http.HandlerFunc, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	fn(rec, req)

	out := map[string]any{}
	if rec.Body.Len() > 0 && strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		_ = json.Unmarshal(rec.Body.Bytes(), &out)
	}
	return rec, out
}

func TestHandleHealth(t *testing.T) {
	api := newTestAPI(t)
	rec, out := doJSON(t, api.HandleHealth, http.MethodGet, "/health", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if out["ok"] != true {
		t.Errorf("body = %v", out)
	}
}

func TestHandleStatus(t *testing.T) {
	api := newTestAPI(t)
	rec, out := doJSON(t, api.HandleStatus, http.MethodGet, "/api/status", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	storageBlock, _ := out["storage"].(map[string]any)
	if storageBlock["schema_version"] != float64(1) {
		t.Errorf("storage = %v", storageBlock)
	}
	contentBlock, _ := out["content"].(map[string]any)
	if contentBlock["calculators"] == float64(0) {
		t.Error("内置目录应该有工具条目")
	}
}

func TestHandleCalcBMI(t *testing.T) {
	api := newTestAPI(t)
	rec, out := doJSON(t, api.HandleCalcBMI, http.MethodPost, "/api/calc/bmi",
		`{"height_cm":170,"weight_kg":70}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if out["bmi"] != 24.2 || out["category"] != "Normal weight" {
		t.Errorf("body = %v", out)
	}

	// 成功的计算应计入账本
	if n := api.core.Services.Tracker.Stats(t.Context()).TotalCalculatorUses; n != 1 {
		t.Errorf("TotalCalculatorUses = %d, 期望 1", n)
	}
}

func TestHandleCalcBMIInvalid(t *testing.T) {
	api := newTestAPI(t)

	rec, _ := doJSON(t, api.HandleCalcBMI, http.MethodPost, "/api/calc/bmi",
		`{"height_cm":0,"weight_kg":70}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, 期望 400", rec.Code)
	}

	rec, _ = doJSON(t, api.HandleCalcBMI, http.MethodPost, "/api/calc/bmi",
		`{"height_cm":170,"weight_kg":70,"extra":1}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("未知字段 status = %d, 期望 400", rec.Code)
	}

	if n := api.core.Services.Tracker.Stats(t.Context()).TotalCalculatorUses; n != 0 {
		t.Errorf("失败的计算不应计数, TotalCalculatorUses = %d", n)
	}
}

func TestHandleCalcBMR(t *testing.T) {
	api := newTestAPI(t)
	rec, out := doJSON(t, api.HandleCalcBMR, http.MethodPost, "/api/calc/bmr",
		`{"gender":"male","age":30,"height_cm":170,"weight_kg":70,"activity_level":"sedentary"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if out["bmr"] != float64(1618) || out["tdee"] != float64(1942) {
		t.Errorf("body = %v", out)
	}
}

func TestHandleCalcWHR(t *testing.T) {
	api := newTestAPI(t)
	rec, out := doJSON(t, api.HandleCalcWHR, http.MethodPost, "/api/calc/whr",
		`{"gender":"male","waist_cm":80,"hip_cm":100}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if out["whr"] != 0.8 || out["risk"] != "Low Risk" {
		t.Errorf("body = %v", out)
	}
}

func TestHandleQuizComplete(t *testing.T) {
	api := newTestAPI(t)
	rec, out := doJSON(t, api.HandleQuizComplete, http.MethodPost, "/api/quiz/complete",
		`{"name":"yoga-basics","correct_count":8,"total_count":10}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if out["score"] != float64(80) || out["max_score"] != float64(100) {
		t.Errorf("body = %v", out)
	}

	rec, out = doJSON(t, api.HandleStats, http.MethodGet, "/api/stats", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("stats status = %d", rec.Code)
	}
	if out["total_quiz_attempts"] != float64(1) {
		t.Errorf("stats = %v", out)
	}
}

func TestHandleJournalFlow(t *testing.T) {
	api := newTestAPI(t)

	// 追加
	rec, out := doJSON(t, api.HandleJournal, http.MethodPost, "/api/journal/mood",
		`{"mood":"calm","note":"午后"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("append status = %d, body = %s", rec.Code, rec.Body.String())
	}
	id, _ := out["id"].(string)
	if id == "" {
		t.Fatalf("body = %v", out)
	}

	// 列表
	req := httptest.NewRequest(http.MethodGet, "/api/journal/mood", nil)
	lrec := httptest.NewRecorder()
	api.HandleJournal(lrec, req)
	if lrec.Code != http.StatusOK {
		t.Fatalf("list status = %d", lrec.Code)
	}
	var entries []map[string]any
	if err := json.Unmarshal(lrec.Body.Bytes(), &entries); err != nil {
		t.Fatalf("解析列表失败: %v", err)
	}
	if len(entries) != 1 || entries[0]["id"] != id {
		t.Errorf("entries = %v", entries)
	}

	// 删除
	rec, out = doJSON(t, api.HandleJournal, http.MethodDelete, "/api/journal/mood?id="+id, "")
	if rec.Code != http.StatusOK || out["removed"] != true {
		t.Errorf("remove status = %d, body = %v", rec.Code, out)
	}

	// 清空
	rec, out = doJSON(t, api.HandleJournal, http.MethodPost, "/api/journal/mood/clear", "")
	if rec.Code != http.StatusOK || out["cleared"] != true {
		t.Errorf("clear status = %d, body = %v", rec.Code, out)
	}
}

func TestHandleJournalUnknownFeature(t *testing.T) {
	api := newTestAPI(t)
	rec, _ := doJSON(t, api.HandleJournal, http.MethodGet, "/api/journal/dreams", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, 期望 404", rec.Code)
	}
}

func TestHandleJournalInvalidPayload(t *testing.T) {
	api := newTestAPI(t)
	rec, _ := doJSON(t, api.HandleJournal, http.MethodPost, "/api/journal/sleep",
		`{"hours":30}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, 期望 400", rec.Code)
	}
}

func TestHandleHydration(t *testing.T) {
	api := newTestAPI(t)

	rec, out := doJSON(t, api.HandleHydration, http.MethodGet, "/api/hydration", "")
	if rec.Code != http.StatusOK || out["intake"] != float64(0) || out["goal"] != float64(8) {
		t.Fatalf("初始状态 status = %d, body = %v", rec.Code, out)
	}

	rec, out = doJSON(t, api.HandleHydrationDrink, http.MethodPost, "/api/hydration/drink", "")
	if rec.Code != http.StatusOK || out["intake"] != float64(1) {
		t.Errorf("drink body = %v", out)
	}

	rec, out = doJSON(t, api.HandleHydrationGoal, http.MethodPut, "/api/hydration/goal", `{"goal":12}`)
	if rec.Code != http.StatusOK || out["goal"] != float64(12) {
		t.Errorf("goal body = %v", out)
	}

	rec, _ = doJSON(t, api.HandleHydrationGoal, http.MethodPut, "/api/hydration/goal", `{"goal":0}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("非法目标 status = %d, 期望 400", rec.Code)
	}
}

func TestHandleChecklist(t *testing.T) {
	api := newTestAPI(t)

	rec, out := doJSON(t, api.HandleChecklist, http.MethodPut, "/api/checklist",
		`{"done":["wake-early","oil-pulling"]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	done, _ := out["done"].([]any)
	if len(done) != 2 {
		t.Errorf("body = %v", out)
	}

	rec, out = doJSON(t, api.HandleChecklist, http.MethodGet, "/api/checklist", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	done, _ = out["done"].([]any)
	if len(done) != 2 {
		t.Errorf("body = %v", out)
	}
}

func TestHandleDashboard(t *testing.T) {
	api := newTestAPI(t)
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	rec := httptest.NewRecorder()
	api.HandleDashboard(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var cards []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &cards); err != nil {
		t.Fatalf("解析卡片失败: %v", err)
	}
	if len(cards) != 13 {
		t.Errorf("卡片数量 = %d, 期望 13", len(cards))
	}
}

func TestHandleRecommendationsNotConfigured(t *testing.T) {
	api := newTestAPI(t)
	rec, out := doJSON(t, api.HandleRecommendations, http.MethodPost, "/api/ai/recommendations",
		`{"symptoms":"最近入睡困难"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, 期望 400", rec.Code)
	}
	if out["code"] != "ai_not_configured" {
		t.Errorf("body = %v", out)
	}
}

func TestHandleKoshaPlanInvalidPrakriti(t *testing.T) {
	api := newTestAPI(t)
	api.core.Cfg.AI.DeepSeek.APIKey = "test-key"
	api.core.Clients.DeepSeek = ai.NewDeepSeekClient(&ai.DeepSeekConfig{APIKey: "test-key"})

	rec, _ := doJSON(t, api.HandleKoshaPlan, http.MethodPost, "/api/ai/kosha-plan",
		`{"prakriti":"earth"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, 期望 400", rec.Code)
	}
}

func TestHandleContent(t *testing.T) {
	api := newTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/api/content/calculators", nil)
	rec := httptest.NewRecorder()
	api.HandleContentCalculators(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var calcs []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &calcs); err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if len(calcs) == 0 {
		t.Error("内置目录应该有工具")
	}
}
