package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appbrowse "github.com/pankecas/backend/internal/application/browse"
	"github.com/pankecas/backend/internal/application/ordering"
	"github.com/pankecas/backend/internal/infrastructure/config"
	"github.com/pankecas/backend/internal/infrastructure/handoff"
	"github.com/pankecas/backend/internal/infrastructure/menu"
	"github.com/pankecas/backend/internal/infrastructure/persistence"
	"github.com/pankecas/backend/internal/infrastructure/tracking"
	"github.com/pankecas/backend/internal/interfaces/http/dto"
	"github.com/pankecas/backend/internal/interfaces/http/middleware"
	"github.com/pankecas/backend/internal/interfaces/http/router"
)

const testMenu = `{
  "categories": [
    {"id": "todos", "display_name": "Todos"},
    {"id": "salgadas", "display_name": "Salgadas"},
    {"id": "doces", "display_name": "Doces"}
  ],
  "items": [
    {"id": 1, "name": "Pankeca Clássica", "price": 18.00, "category": "salgadas"},
    {"id": 2, "name": "Pankeca de Chocolate", "price": 15.50, "category": "doces"}
  ]
}`

type testServer struct {
	engine *gin.Engine
	sink   *tracking.MemorySink
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()

	cat, err := menu.Parse([]byte(testMenu))
	require.NoError(t, err)

	carts := persistence.NewMemoryCartRepository()
	states := persistence.NewMemoryBrowseRepository()
	sink := tracking.NewMemorySink()
	dispatcher := tracking.NewDispatcher(sink, nil, nil, zap.NewNop())
	scheduler := handoff.NewScheduler(handoff.OpenerFunc(func(string) error { return nil }), 800*time.Millisecond, zap.NewNop())
	t.Cleanup(scheduler.Shutdown)

	observer := config.ObserverConfig{TopOffsetPx: 128, BottomExcludedPercent: 65}

	engine := gin.New()
	engine.Use(middleware.Session(middleware.SessionConfig{CookieName: "cardapio_session", MaxAge: 3600}))

	router.NewRouter(engine).
		Register(NewMenuHandler(appbrowse.NewService(cat, states, observer, zap.NewNop()))).
		Register(NewCartHandler(ordering.NewCartService(carts, cat, dispatcher, zap.NewNop()))).
		Register(NewOrderHandler(ordering.NewCheckoutService(carts, dispatcher, scheduler, "5527999999154", zap.NewNop()))).
		Register(NewTrackingHandler(sink)).
		Register(NewSystemHandler()).
		Setup()

	return &testServer{engine: engine, sink: sink}
}

// do performs a JSON request against the versioned API. A non-empty
// session is sent as the session cookie so sequential calls can share
// one cart.
func (s *testServer) do(t *testing.T, method, path, session string, body any) (*httptest.ResponseRecorder, dto.Response) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, "/api/v1"+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if session != "" {
		req.AddCookie(&http.Cookie{Name: "cardapio_session", Value: session})
	}

	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	var resp dto.Response
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func dataMap(t *testing.T, resp dto.Response) map[string]interface{} {
	t.Helper()
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "response data is not an object: %v", resp.Data)
	return data
}
