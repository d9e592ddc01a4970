package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"cast-match/internal/config"
	"cast-match/internal/delivery/http/middleware"
	"cast-match/internal/delivery/http/routes"
	"cast-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type semanticResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type scoredOpeningItem struct {
	Title       string `json:"title"`
	ProjectCity string `json:"project_city"`
	MatchScore  int    `json:"match_score"`
}

type rankData struct {
	Results []scoredOpeningItem `json:"results"`
}

func newTestApp(t *testing.T, cfg config.Config) *fiber.App {
	t.Helper()

	app := fiber.New(fiber.Config{})
	app.Use(middleware.NewErrorMiddleware(zap.NewNop()).Middleware())

	matchUC := usecase.NewMatchingUsecase(nil, 0)
	searchUC := usecase.NewSearchUsecase(nil)
	routes.NewRegistry(cfg, matchUC, searchUC).Register(app)

	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any, headers map[string]string) semanticResponse {
	t.Helper()

	b, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var sr semanticResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sr))
	return sr
}

func rankPayload() map[string]any {
	candidate := map[string]any{
		"category":   "acteur",
		"city":       "Paris (75)",
		"experience": "confirme",
		"gender":     "femme",
		"age":        30,
	}
	goodOpening := map[string]any{
		"title":      "Acteur principal",
		"category":   "acteur",
		"gender":     "femme",
		"age_min":    25,
		"age_max":    40,
		"experience": "intermediaire",
	}
	blockedOpening := map[string]any{
		"title":    "Acteur secondaire",
		"category": "acteur",
		"gender":   "homme",
	}
	return map[string]any{
		"candidate": candidate,
		"openings": []map[string]any{
			{"opening": blockedOpening, "project": map[string]any{"city": "Paris"}},
			{"opening": goodOpening, "project": map[string]any{"city": "Paris"}},
		},
	}
}

func TestRankEndpoint(t *testing.T) {
	app := newTestApp(t, config.Config{})

	sr := postJSON(t, app, "/api/v1/match/rank", rankPayload(), nil)
	require.Equal(t, 200, sr.Status)
	require.Equal(t, "ok", sr.Message)

	var data rankData
	require.NoError(t, json.Unmarshal(sr.Data, &data))
	require.Len(t, data.Results, 2)

	assert.Equal(t, "Acteur principal", data.Results[0].Title)
	assert.Equal(t, 73, data.Results[0].MatchScore)
	assert.Equal(t, "Paris", data.Results[0].ProjectCity)

	assert.Equal(t, "Acteur secondaire", data.Results[1].Title)
	assert.Equal(t, 0, data.Results[1].MatchScore)
}

func TestScoreEndpoint(t *testing.T) {
	app := newTestApp(t, config.Config{})

	payload := map[string]any{
		"candidate": rankPayload()["candidate"],
		"opening": map[string]any{
			"title":      "Acteur principal",
			"category":   "acteur",
			"gender":     "femme",
			"age_min":    25,
			"age_max":    40,
			"experience": "intermediaire",
		},
		"project": map[string]any{"city": "Paris"},
	}

	sr := postJSON(t, app, "/api/v1/match/score", payload, nil)
	require.Equal(t, 200, sr.Status)

	var data struct {
		MatchScore int `json:"match_score"`
	}
	require.NoError(t, json.Unmarshal(sr.Data, &data))
	assert.Equal(t, 73, data.MatchScore)
}

func TestScoreEndpoint_ValidationError(t *testing.T) {
	app := newTestApp(t, config.Config{})

	payload := map[string]any{
		"candidate": map[string]any{"category": "acteur"},
		"opening":   map[string]any{"category": "acteur"},
		"project":   map[string]any{"city": "Paris"},
	}

	sr := postJSON(t, app, "/api/v1/match/score", payload, nil)
	assert.Equal(t, fiber.StatusUnprocessableEntity, sr.Status)
}

func TestSearchEndpoint(t *testing.T) {
	app := newTestApp(t, config.Config{})

	payload := map[string]any{
		"query":  "paris",
		"fields": []string{"name"},
		"records": []map[string]any{
			{"name": "Lyon"},
			{"name": "Paris"},
		},
	}

	sr := postJSON(t, app, "/api/v1/search", payload, nil)
	require.Equal(t, 200, sr.Status)

	var data struct {
		Results []map[string]any `json:"results"`
	}
	require.NoError(t, json.Unmarshal(sr.Data, &data))
	require.Len(t, data.Results, 1)
	assert.Equal(t, "Paris", data.Results[0]["name"])
}

func TestSearchEndpoint_BlankQueryKeepsOrder(t *testing.T) {
	app := newTestApp(t, config.Config{})

	payload := map[string]any{
		"query":  "  ",
		"fields": []string{"name"},
		"records": []map[string]any{
			{"name": "Lyon"},
			{"name": "Paris"},
		},
	}

	sr := postJSON(t, app, "/api/v1/search", payload, nil)
	require.Equal(t, 200, sr.Status)

	var data struct {
		Results []map[string]any `json:"results"`
	}
	require.NoError(t, json.Unmarshal(sr.Data, &data))
	require.Len(t, data.Results, 2)
	assert.Equal(t, "Lyon", data.Results[0]["name"])
	assert.Equal(t, "Paris", data.Results[1]["name"])
}

func TestAuthGuard(t *testing.T) {
	cfg := config.Config{}
	cfg.Auth.AccessSecret = "test-secret"
	app := newTestApp(t, cfg)

	sr := postJSON(t, app, "/api/v1/match/rank", rankPayload(), nil)
	assert.Equal(t, fiber.StatusUnauthorized, sr.Status)

	claims := jwtlib.RegisteredClaims{
		Subject:   "candidate-1",
		ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	sr = postJSON(t, app, "/api/v1/match/rank", rankPayload(), map[string]string{
		"Authorization": "Bearer " + token,
	})
	assert.Equal(t, 200, sr.Status)
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(t, config.Config{})

	req := httptest.NewRequest("GET", "/health", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var sr semanticResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sr))
	assert.Equal(t, 200, sr.Status)
	assert.Equal(t, "ok", sr.Message)
}
