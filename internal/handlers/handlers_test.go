package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/IoneseiGabriel/DavaQuiz/internal/middleware"
	"github.com/IoneseiGabriel/DavaQuiz/internal/ratelimit"
	"github.com/IoneseiGabriel/DavaQuiz/internal/services"
	"github.com/IoneseiGabriel/DavaQuiz/internal/testhelpers"
	"github.com/IoneseiGabriel/DavaQuiz/internal/ws"

	"github.com/gin-gonic/gin"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDB(t)
	hub := ws.NewHub(nil)
	limiter := ratelimit.New(3, 15*time.Minute, 15*time.Minute, nil)

	authService := services.NewAuthService(db, "test-secret", time.Hour, limiter)
	gameService := services.NewGameService(db, hub)

	authHandler := NewAuthHandler(authService)
	gameHandler := NewGameHandler(gameService)
	questionHandler := NewQuestionHandler(gameService)

	r := gin.New()
	r.POST("/api/auth/register", authHandler.Register)
	r.POST("/api/auth/login", authHandler.Login)
	r.GET("/api/games", gameHandler.ListGames)

	authed := r.Group("/api", middleware.JWTAuth(authService))
	authed.POST("/games", gameHandler.CreateGame)
	authed.PATCH("/games/:id", gameHandler.UpdateGameMetadata)
	authed.POST("/games/:id/questions", questionHandler.CreateQuestion)

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, clientIP, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = clientIP + ":51234"
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerHost(t *testing.T, r *gin.Engine, username string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "10.0.0.1", "", gin.H{
		"username": username,
		"password": "password123",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register returned %d: %s", w.Code, w.Body.String())
	}
	var resp AuthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding register response: %v", err)
	}
	return resp.Token
}

func validGameBody() gin.H {
	return gin.H{
		"title":         "Capitals",
		"description":   "Guess the capital",
		"questionCount": 1,
		"questions": []gin.H{
			{
				"text":               "Capital of France?",
				"options":            []string{"Paris", "Lyon"},
				"correctOptionIndex": 0,
				"imageUrl":           "http://localhost:8080/api/images/a.png",
			},
		},
	}
}

func TestLoginEndpoint_RateLimited(t *testing.T) {
	r := setupRouter(t)
	registerHost(t, r, "host1")
	ip := "10.0.0.4"

	for i := 0; i < 3; i++ {
		w := doJSON(t, r, http.MethodPost, "/api/auth/login", ip, "", gin.H{
			"username": "host1",
			"password": "wrong",
		})
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("attempt %d returned %d, want 401", i, w.Code)
		}
	}

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", ip, "", gin.H{
		"username": "host1",
		"password": "password123",
	})
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("blocked login returned %d, want 429", w.Code)
	}
	if w.Header().Get("Retry-After") != "900" {
		t.Errorf("Retry-After = %q, want %q", w.Header().Get("Retry-After"), "900")
	}

	// A different IP still logs in.
	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "10.0.0.5", "", gin.H{
		"username": "host1",
		"password": "password123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login from unrelated IP returned %d, want 200", w.Code)
	}
}

func TestCreateGameEndpoint_RequiresToken(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/games", "10.0.0.1", "", validGameBody())
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated create returned %d, want 401", w.Code)
	}

	token := registerHost(t, r, "host1")
	w = doJSON(t, r, http.MethodPost, "/api/games", "10.0.0.1", token, validGameBody())
	if w.Code != http.StatusCreated {
		t.Fatalf("authenticated create returned %d: %s", w.Code, w.Body.String())
	}
}

func TestListGamesEndpoint(t *testing.T) {
	r := setupRouter(t)
	token := registerHost(t, r, "host1")

	body := validGameBody()
	body["status"] = "PUBLISHED"
	if w := doJSON(t, r, http.MethodPost, "/api/games", "10.0.0.1", token, body); w.Code != http.StatusCreated {
		t.Fatalf("seeding game returned %d: %s", w.Code, w.Body.String())
	}

	w := doJSON(t, r, http.MethodGet, "/api/games?status=published", "10.0.0.1", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list returned %d: %s", w.Code, w.Body.String())
	}
	var page services.GamePage
	if err := json.Unmarshal(w.Body.Bytes(), &page); err != nil {
		t.Fatalf("decoding page: %v", err)
	}
	if page.TotalElements != 1 {
		t.Errorf("totalElements = %d, want 1", page.TotalElements)
	}

	// Unknown filter field and out-of-range page map to 400 and 404.
	if w := doJSON(t, r, http.MethodGet, "/api/games?owner=1", "10.0.0.1", "", nil); w.Code != http.StatusBadRequest {
		t.Errorf("unknown filter returned %d, want 400", w.Code)
	}
	if w := doJSON(t, r, http.MethodGet, "/api/games?page=9", "10.0.0.1", "", nil); w.Code != http.StatusNotFound {
		t.Errorf("out-of-range page returned %d, want 404", w.Code)
	}
}

func TestUpdateGameEndpoint_ForeignGameHidden(t *testing.T) {
	r := setupRouter(t)
	owner := registerHost(t, r, "owner")
	other := registerHost(t, r, "other")

	w := doJSON(t, r, http.MethodPost, "/api/games", "10.0.0.1", owner, validGameBody())
	if w.Code != http.StatusCreated {
		t.Fatalf("create returned %d: %s", w.Code, w.Body.String())
	}
	var created struct {
		ID uint `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decoding created game: %v", err)
	}

	path := fmt.Sprintf("/api/games/%d", created.ID)
	patch := gin.H{"title": "Renamed"}

	if w := doJSON(t, r, http.MethodPatch, path, "10.0.0.1", other, patch); w.Code != http.StatusNotFound {
		t.Errorf("foreign patch returned %d, want 404", w.Code)
	}
	if w := doJSON(t, r, http.MethodPatch, path, "10.0.0.1", owner, patch); w.Code != http.StatusOK {
		t.Errorf("owner patch returned %d: %s", w.Code, w.Body.String())
	}
}

func TestAddQuestionEndpoint_ForeignCallerForbidden(t *testing.T) {
	r := setupRouter(t)
	owner := registerHost(t, r, "owner")
	other := registerHost(t, r, "other")

	w := doJSON(t, r, http.MethodPost, "/api/games", "10.0.0.1", owner, validGameBody())
	if w.Code != http.StatusCreated {
		t.Fatalf("create returned %d: %s", w.Code, w.Body.String())
	}
	var created struct {
		ID uint `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decoding created game: %v", err)
	}

	question := gin.H{
		"text":               "Capital of Spain?",
		"options":            []string{"Madrid", "Barcelona"},
		"correctOptionIndex": 0,
		"imageUrl":           "http://localhost:8080/api/images/b.png",
	}
	path := fmt.Sprintf("/api/games/%d/questions", created.ID)

	if w := doJSON(t, r, http.MethodPost, path, "10.0.0.1", other, question); w.Code != http.StatusForbidden {
		t.Errorf("foreign add question returned %d, want 403", w.Code)
	}
	if w := doJSON(t, r, http.MethodPost, path, "10.0.0.1", owner, question); w.Code != http.StatusCreated {
		t.Errorf("owner add question returned %d: %s", w.Code, w.Body.String())
	}
}
