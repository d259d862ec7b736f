package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/minidungeon/minidungeon/game/engine"
	"github.com/minidungeon/minidungeon/game/service"
)

// MockGameService implements service.GameService for testing
type MockGameService struct {
	CreateSessionFunc func(ctx context.Context, configName string) (*service.SessionInfo, error)
	GetSessionFunc    func(ctx context.Context, sessionID string) (*service.SessionInfo, error)
	ListSessionsFunc  func(ctx context.Context) ([]*service.SessionInfo, error)
	DeleteSessionFunc func(ctx context.Context, sessionID string) error

	MoveFunc         func(ctx context.Context, sessionID, direction string) (*service.MoveResult, error)
	ActivateBombFunc func(ctx context.Context, sessionID string) (*service.BombResult, error)
	RestartFunc      func(ctx context.Context, sessionID string, difficulty int) (*engine.GameState, error)

	GetGameStateFunc func(ctx context.Context, sessionID string) (*engine.GameState, error)
	LeaderboardFunc  func(ctx context.Context, sessionID string) ([]engine.ScoreEntry, error)

	SaveGameFunc func(ctx context.Context, sessionID string) error
	LoadGameFunc func(ctx context.Context, sessionID string) (*engine.GameState, error)

	ListConfigsFunc func(ctx context.Context) ([]*service.ConfigInfo, error)
	LoadConfigFunc  func(ctx context.Context, configName string) (*engine.GameConfig, error)
	SaveConfigFunc  func(ctx context.Context, configName string, config *engine.GameConfig) error
}

func (m *MockGameService) CreateSession(ctx context.Context, configName string) (*service.SessionInfo, error) {
	if m.CreateSessionFunc != nil {
		return m.CreateSessionFunc(ctx, configName)
	}
	return &service.SessionInfo{
		ID:         "ab12",
		ConfigName: configName,
		CreatedAt:  time.Now(),
		GameState:  &engine.GameState{Status: engine.StatusPlaying},
	}, nil
}

func (m *MockGameService) GetSession(ctx context.Context, sessionID string) (*service.SessionInfo, error) {
	if m.GetSessionFunc != nil {
		return m.GetSessionFunc(ctx, sessionID)
	}
	return &service.SessionInfo{
		ID:         sessionID,
		ConfigName: "classic",
		CreatedAt:  time.Now(),
		GameState:  &engine.GameState{Status: engine.StatusPlaying},
	}, nil
}

func (m *MockGameService) ListSessions(ctx context.Context) ([]*service.SessionInfo, error) {
	if m.ListSessionsFunc != nil {
		return m.ListSessionsFunc(ctx)
	}
	return []*service.SessionInfo{}, nil
}

func (m *MockGameService) DeleteSession(ctx context.Context, sessionID string) error {
	if m.DeleteSessionFunc != nil {
		return m.DeleteSessionFunc(ctx, sessionID)
	}
	return nil
}

func (m *MockGameService) Move(ctx context.Context, sessionID, direction string) (*service.MoveResult, error) {
	if m.MoveFunc != nil {
		return m.MoveFunc(ctx, sessionID, direction)
	}
	return &service.MoveResult{
		Success:   true,
		GameState: &engine.GameState{Status: engine.StatusPlaying},
	}, nil
}

func (m *MockGameService) ActivateBomb(ctx context.Context, sessionID string) (*service.BombResult, error) {
	if m.ActivateBombFunc != nil {
		return m.ActivateBombFunc(ctx, sessionID)
	}
	return &service.BombResult{
		Success:   true,
		GameState: &engine.GameState{Status: engine.StatusPlaying},
	}, nil
}

func (m *MockGameService) Restart(ctx context.Context, sessionID string, difficulty int) (*engine.GameState, error) {
	if m.RestartFunc != nil {
		return m.RestartFunc(ctx, sessionID, difficulty)
	}
	return &engine.GameState{Status: engine.StatusPlaying}, nil
}

func (m *MockGameService) GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error) {
	if m.GetGameStateFunc != nil {
		return m.GetGameStateFunc(ctx, sessionID)
	}
	return &engine.GameState{Status: engine.StatusPlaying}, nil
}

func (m *MockGameService) Leaderboard(ctx context.Context, sessionID string) ([]engine.ScoreEntry, error) {
	if m.LeaderboardFunc != nil {
		return m.LeaderboardFunc(ctx, sessionID)
	}
	return []engine.ScoreEntry{}, nil
}

func (m *MockGameService) SaveGame(ctx context.Context, sessionID string) error {
	if m.SaveGameFunc != nil {
		return m.SaveGameFunc(ctx, sessionID)
	}
	return nil
}

func (m *MockGameService) LoadGame(ctx context.Context, sessionID string) (*engine.GameState, error) {
	if m.LoadGameFunc != nil {
		return m.LoadGameFunc(ctx, sessionID)
	}
	return &engine.GameState{Status: engine.StatusPlaying}, nil
}

func (m *MockGameService) ListConfigs(ctx context.Context) ([]*service.ConfigInfo, error) {
	if m.ListConfigsFunc != nil {
		return m.ListConfigsFunc(ctx)
	}
	return []*service.ConfigInfo{}, nil
}

func (m *MockGameService) LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error) {
	if m.LoadConfigFunc != nil {
		return m.LoadConfigFunc(ctx, configName)
	}
	return engine.DefaultGameConfig(), nil
}

func (m *MockGameService) SaveConfig(ctx context.Context, configName string, config *engine.GameConfig) error {
	if m.SaveConfigFunc != nil {
		return m.SaveConfigFunc(ctx, configName, config)
	}
	return nil
}

func newTestServer(mock *MockGameService) *Server {
	return NewServer(mock, nil)
}

func TestHandleHealth(t *testing.T) {
	server := newTestServer(&MockGameService{})

	req := httptest.NewRequest("GET", "/api/health", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}
}

func TestHandleCreateSession(t *testing.T) {
	server := newTestServer(&MockGameService{})

	body := bytes.NewBufferString(`{"config_id": "easy"}`)
	req := httptest.NewRequest("POST", "/api/sessions", body)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d", rec.Code)
	}

	var info service.SessionInfo
	if err := json.NewDecoder(rec.Body).Decode(&info); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if info.ConfigName != "easy" {
		t.Errorf("Expected config name easy, got %q", info.ConfigName)
	}
}

func TestHandleCreateSessionError(t *testing.T) {
	server := newTestServer(&MockGameService{
		CreateSessionFunc: func(ctx context.Context, configName string) (*service.SessionInfo, error) {
			return nil, errors.New("config 'bogus' not found")
		},
	})

	body := bytes.NewBufferString(`{"config_id": "bogus"}`)
	req := httptest.NewRequest("POST", "/api/sessions", body)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", rec.Code)
	}
}

func TestHandleGetSession(t *testing.T) {
	server := newTestServer(&MockGameService{})

	req := httptest.NewRequest("GET", "/api/sessions/ab12", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var info service.SessionInfo
	if err := json.NewDecoder(rec.Body).Decode(&info); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if info.ID != "ab12" {
		t.Errorf("Expected session ab12, got %q", info.ID)
	}
}

func TestHandleGetSessionNotFound(t *testing.T) {
	server := newTestServer(&MockGameService{
		GetSessionFunc: func(ctx context.Context, sessionID string) (*service.SessionInfo, error) {
			return nil, errors.New("session not found")
		},
	})

	req := httptest.NewRequest("GET", "/api/sessions/none", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
}

func TestHandleListSessionsSorted(t *testing.T) {
	now := time.Now()
	server := newTestServer(&MockGameService{
		ListSessionsFunc: func(ctx context.Context) ([]*service.SessionInfo, error) {
			return []*service.SessionInfo{
				{ID: "old1", LastAccessedAt: now.Add(-time.Hour)},
				{ID: "new1", LastAccessedAt: now},
			}, nil
		},
	})

	req := httptest.NewRequest("GET", "/api/sessions?limit=1", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var resp struct {
		Count    int                    `json:"count"`
		Sessions []*service.SessionInfo `json:"sessions"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Count != 1 {
		t.Fatalf("Expected 1 session after limit, got %d", resp.Count)
	}
	if resp.Sessions[0].ID != "new1" {
		t.Errorf("Expected most recently accessed session first, got %q", resp.Sessions[0].ID)
	}
}

func TestHandleMove(t *testing.T) {
	var gotDirection string
	server := newTestServer(&MockGameService{
		MoveFunc: func(ctx context.Context, sessionID, direction string) (*service.MoveResult, error) {
			gotDirection = direction
			return &service.MoveResult{
				Success:   true,
				GameState: &engine.GameState{Status: engine.StatusPlaying, Steps: 1},
				Messages:  []string{"You move up."},
			}, nil
		},
	})

	body := bytes.NewBufferString(`{"direction": "up"}`)
	req := httptest.NewRequest("POST", "/api/sessions/ab12/move", body)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	if gotDirection != "up" {
		t.Errorf("Expected direction up passed to service, got %q", gotDirection)
	}

	var result service.MoveResult
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !result.Success || result.GameState.Steps != 1 {
		t.Errorf("Unexpected move result: %+v", result)
	}
}

func TestHandleMoveBadBody(t *testing.T) {
	server := newTestServer(&MockGameService{})

	req := httptest.NewRequest("POST", "/api/sessions/ab12/move", bytes.NewBufferString("{"))
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestHandleActivateBomb(t *testing.T) {
	server := newTestServer(&MockGameService{
		ActivateBombFunc: func(ctx context.Context, sessionID string) (*service.BombResult, error) {
			return &service.BombResult{
				Success:   true,
				GameState: &engine.GameState{Status: engine.StatusPlaying, Score: 5},
			}, nil
		},
	})

	req := httptest.NewRequest("POST", "/api/sessions/ab12/bomb", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var result service.BombResult
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if result.GameState.Score != 5 {
		t.Errorf("Expected score 5, got %d", result.GameState.Score)
	}
}

func TestHandleRestartPassesDifficulty(t *testing.T) {
	var gotDifficulty int
	server := newTestServer(&MockGameService{
		RestartFunc: func(ctx context.Context, sessionID string, difficulty int) (*engine.GameState, error) {
			gotDifficulty = difficulty
			return &engine.GameState{Status: engine.StatusPlaying, Difficulty: difficulty}, nil
		},
	})

	body := bytes.NewBufferString(`{"difficulty": 5}`)
	req := httptest.NewRequest("POST", "/api/sessions/ab12/restart", body)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	if gotDifficulty != 5 {
		t.Errorf("Expected difficulty 5 passed to service, got %d", gotDifficulty)
	}

	// No body means restart at the config difficulty (-1 sentinel).
	req = httptest.NewRequest("POST", "/api/sessions/ab12/restart", nil)
	rec = httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	if gotDifficulty != -1 {
		t.Errorf("Expected sentinel difficulty -1 without body, got %d", gotDifficulty)
	}
}

func TestHandleSaveAndLoad(t *testing.T) {
	saved := false
	server := newTestServer(&MockGameService{
		SaveGameFunc: func(ctx context.Context, sessionID string) error {
			saved = true
			return nil
		},
	})

	req := httptest.NewRequest("POST", "/api/sessions/ab12/save", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	if !saved {
		t.Error("Expected SaveGame to be called")
	}

	req = httptest.NewRequest("POST", "/api/sessions/ab12/load", nil)
	rec = httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200 for load, got %d", rec.Code)
	}
}

func TestHandleLoadNoSaveFile(t *testing.T) {
	server := newTestServer(&MockGameService{
		LoadGameFunc: func(ctx context.Context, sessionID string) (*engine.GameState, error) {
			return nil, engine.ErrNoSaveFile
		},
	})

	req := httptest.NewRequest("POST", "/api/sessions/ab12/load", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
}

func TestHandleLeaderboard(t *testing.T) {
	server := newTestServer(&MockGameService{
		LeaderboardFunc: func(ctx context.Context, sessionID string) ([]engine.ScoreEntry, error) {
			return []engine.ScoreEntry{
				{Score: 80, Date: time.Now()},
				{Score: 30, Date: time.Now()},
			}, nil
		},
	})

	req := httptest.NewRequest("GET", "/api/sessions/ab12/leaderboard", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var resp struct {
		Count     int                `json:"count"`
		TopScores []engine.ScoreEntry `json:"top_scores"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Count != 2 || resp.TopScores[0].Score != 80 {
		t.Errorf("Unexpected leaderboard response: %+v", resp)
	}
}

func TestHandleConfigs(t *testing.T) {
	server := newTestServer(&MockGameService{
		ListConfigsFunc: func(ctx context.Context) ([]*service.ConfigInfo, error) {
			return []*service.ConfigInfo{{ConfigID: "classic", Rows: 20, Cols: 20}}, nil
		},
	})

	req := httptest.NewRequest("GET", "/api/configs", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var configs []*service.ConfigInfo
	if err := json.NewDecoder(rec.Body).Decode(&configs); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(configs) != 1 || configs[0].ConfigID != "classic" {
		t.Errorf("Unexpected configs: %+v", configs)
	}
}

func TestHandleGetConfig(t *testing.T) {
	server := newTestServer(&MockGameService{})

	req := httptest.NewRequest("GET", "/api/configs/classic.json", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var config engine.GameConfig
	if err := json.NewDecoder(rec.Body).Decode(&config); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if config.Rows != 20 {
		t.Errorf("Expected default config, got %+v", config)
	}
}

func TestHandleCreateConfig(t *testing.T) {
	var savedName string
	server := newTestServer(&MockGameService{
		SaveConfigFunc: func(ctx context.Context, configName string, config *engine.GameConfig) error {
			savedName = configName
			return nil
		},
	})

	payload, _ := json.Marshal(engine.DefaultGameConfig())
	req := httptest.NewRequest("POST", "/api/configs", bytes.NewBuffer(payload))
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d", rec.Code)
	}
	if savedName != "classic" {
		t.Errorf("Expected config name classic, got %q", savedName)
	}
}

func TestHandleCreateConfigMissingName(t *testing.T) {
	server := newTestServer(&MockGameService{})

	req := httptest.NewRequest("POST", "/api/configs", bytes.NewBufferString(`{"rows": 20}`))
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestHandleWebSocketMissingSession(t *testing.T) {
	server := newTestServer(&MockGameService{})

	req := httptest.NewRequest("GET", "/ws", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}
