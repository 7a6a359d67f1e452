package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"literacy_edu_backend/internal/repository"
	"literacy_edu_backend/internal/service"
	"literacy_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	readingSvc := service.NewReadingService(repository.NewPassageRepository())
	writingSvc := service.NewWritingService(repository.NewPromptRepository(), service.NewHeuristicBackend())

	reading := NewReadingController(readingSvc)
	writing := NewWritingController(writingSvc)
	curriculum := NewCurriculumController()
	health := NewHealthController(false)

	r := gin.New()
	api := r.Group("/api")
	{
		api.GET("/health", health.HealthCheck)
		api.GET("/reading/passages", reading.ListPassages)
		api.GET("/reading/passages/:id", reading.GetPassage)
		api.POST("/reading/submit", reading.SubmitReading)
		api.GET("/writing/prompts", writing.ListPrompts)
		api.GET("/writing/prompts/:id", writing.GetPrompt)
		api.POST("/writing/submit", writing.SubmitWriting)
		api.GET("/writing/framework", writing.GetFramework)
		api.GET("/writing/rubric", writing.GetRubric)
		api.GET("/writing/self-check", writing.GetSelfCheck)
		api.GET("/curriculum/achievement-levels", curriculum.GetAchievementLevels)
	}
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, util.Response) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var envelope util.Response
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("%s %s: invalid envelope: %v", method, path, err)
	}
	return w, envelope
}

func TestGetEndpoints(t *testing.T) {
	r := testRouter()

	paths := []string{
		"/api/health",
		"/api/reading/passages",
		"/api/reading/passages/fiction_1",
		"/api/writing/prompts",
		"/api/writing/prompts/narrative_1",
		"/api/writing/framework",
		"/api/writing/rubric",
		"/api/writing/self-check",
		"/api/curriculum/achievement-levels",
	}

	for _, path := range paths {
		w, envelope := doRequest(t, r, http.MethodGet, path, nil)
		if w.Code != http.StatusOK {
			t.Errorf("GET %s status = %d", path, w.Code)
		}
		if envelope.Code != http.StatusOK || envelope.Message != "success" {
			t.Errorf("GET %s envelope = %d %q", path, envelope.Code, envelope.Message)
		}
		if envelope.Data == nil {
			t.Errorf("GET %s has no data", path)
		}
	}
}

func TestGetPassageStripsAnswers(t *testing.T) {
	r := testRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/reading/passages/fiction_1", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	if bytes.Contains(w.Body.Bytes(), []byte(`"correct"`)) {
		t.Error("student passage leaks answer key")
	}
	if bytes.Contains(w.Body.Bytes(), []byte(`"explanation"`)) {
		t.Error("student passage leaks explanations")
	}
}

func TestNotFoundResponses(t *testing.T) {
	r := testRouter()

	for _, path := range []string{"/api/reading/passages/ghost", "/api/writing/prompts/ghost"} {
		w, envelope := doRequest(t, r, http.MethodGet, path, nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("GET %s status = %d, want 404", path, w.Code)
		}
		if envelope.Code != http.StatusNotFound {
			t.Errorf("GET %s envelope code = %d", path, envelope.Code)
		}
	}
}

func TestSubmitReading(t *testing.T) {
	r := testRouter()

	t.Run("valid submission", func(t *testing.T) {
		w, envelope := doRequest(t, r, http.MethodPost, "/api/reading/submit", ReadingSubmission{
			PassageID: "fiction_1",
			Answers:   map[string]interface{}{"q1": 0},
		})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}

		data, ok := envelope.Data.(map[string]interface{})
		if !ok {
			t.Fatalf("data = %T", envelope.Data)
		}
		if data["passage_id"] != "fiction_1" {
			t.Errorf("passage_id = %v", data["passage_id"])
		}
		if _, ok := data["achievement_level"]; !ok {
			t.Error("result missing achievement_level")
		}
	})

	t.Run("missing passage id", func(t *testing.T) {
		w, _ := doRequest(t, r, http.MethodPost, "/api/reading/submit", map[string]interface{}{
			"answers": map[string]interface{}{},
		})
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("unknown passage", func(t *testing.T) {
		w, _ := doRequest(t, r, http.MethodPost, "/api/reading/submit", ReadingSubmission{PassageID: "ghost"})
		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", w.Code)
		}
	})
}

func TestSubmitWriting(t *testing.T) {
	r := testRouter()

	t.Run("valid submission", func(t *testing.T) {
		w, envelope := doRequest(t, r, http.MethodPost, "/api/writing/submit", WritingSubmission{
			PromptID: "narrative_1",
			Response: "My story begins here. It has a few sentences.\n\nAnd a second paragraph.",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}

		data, ok := envelope.Data.(map[string]interface{})
		if !ok {
			t.Fatalf("data = %T", envelope.Data)
		}
		if data["ai_powered"] != false {
			t.Errorf("ai_powered = %v with heuristic backend", data["ai_powered"])
		}
		if _, ok := data["evaluation"]; !ok {
			t.Error("result missing evaluation")
		}
	})

	t.Run("missing prompt id", func(t *testing.T) {
		w, _ := doRequest(t, r, http.MethodPost, "/api/writing/submit", map[string]interface{}{
			"response": "text",
		})
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("unknown prompt", func(t *testing.T) {
		w, _ := doRequest(t, r, http.MethodPost, "/api/writing/submit", WritingSubmission{PromptID: "ghost"})
		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", w.Code)
		}
	})
}

func TestHealthReportsBackend(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for _, tt := range []struct {
		aiConfigured bool
		want         string
	}{
		{false, "heuristic"},
		{true, "remote_model"},
	} {
		r := gin.New()
		r.GET("/api/health", NewHealthController(tt.aiConfigured).HealthCheck)

		_, envelope := doRequest(t, r, http.MethodGet, "/api/health", nil)
		data := envelope.Data.(map[string]interface{})
		components := data["components"].(map[string]interface{})
		if components["writing_evaluator"] != tt.want {
			t.Errorf("aiConfigured=%v: writing_evaluator = %v, want %s", tt.aiConfigured, components["writing_evaluator"], tt.want)
		}
	}
}
