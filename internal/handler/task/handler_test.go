package task

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	taskModel "github.com/LavanyaChowdam23/Text-Summarization-and-Paraphrasing/internal/model/task"
)

func setupRouter() *chi.Mux {
	handler := New(taskModel.NewMemoryStore(taskModel.Seed()))

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func TestListTasksReturnsSeededProfiles(t *testing.T) {
	r := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var profiles []taskModel.Profile
	if err := json.NewDecoder(resp.Body).Decode(&profiles); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(profiles) != 2 {
		t.Fatalf("expected 2 profiles, got %d", len(profiles))
	}
}

func TestListTasksSummarizeCarriesOptions(t *testing.T) {
	r := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	var profiles []taskModel.Profile
	if err := json.NewDecoder(resp.Body).Decode(&profiles); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	var summarize *taskModel.Profile
	for i := range profiles {
		if profiles[i].ID == taskModel.OperationSummarize {
			summarize = &profiles[i]
		}
	}
	if summarize == nil {
		t.Fatal("expected a summarize profile")
	}
	if len(summarize.Methods) != 2 || len(summarize.Lengths) != 3 {
		t.Fatalf("expected 2 methods and 3 lengths, got %d and %d", len(summarize.Methods), len(summarize.Lengths))
	}
	if summarize.DefaultMethod != taskModel.DefaultMethod || summarize.DefaultLength != taskModel.DefaultLength {
		t.Fatalf("unexpected defaults: %s/%s", summarize.DefaultMethod, summarize.DefaultLength)
	}
}

func TestGetTaskByID(t *testing.T) {
	r := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/tasks/paraphrase", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var profile taskModel.Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if profile.ID != taskModel.OperationParaphrase {
		t.Fatalf("expected paraphrase profile, got %s", profile.ID)
	}
	if profile.OutputFile != "AI_paraphrase.txt" {
		t.Fatalf("unexpected output file: %s", profile.OutputFile)
	}
}

func TestGetTaskUnknownID(t *testing.T) {
	r := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/tasks/translate", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}
