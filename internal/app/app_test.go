package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teranga_match/internal/config"
	"teranga_match/internal/testutil"
)

const (
	adminEmail    = "admin@teranga.sn"
	adminPassword = "admin-pass"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newApp(t *testing.T) *App {
	t.Helper()
	return newAppWithUploads(t, t.TempDir())
}

func newAppWithUploads(t *testing.T, uploadDir string) *App {
	t.Helper()
	cfg := config.Config{
		JWTSecret:      "test-secret",
		JWTTTL:         time.Hour,
		UploadDir:      uploadDir,
		AllowedOrigins: []string{"*"},
	}
	a, err := New(cfg, testutil.NewDB(t), io.Discard)
	require.NoError(t, err)
	t.Cleanup(a.Hub.Close)

	a.SeedAdmin(context.Background(), adminEmail, adminPassword)
	return a
}

func do(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func tokenFrom(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decode[map[string]string](t, w)["token"]
}

func register(t *testing.T, h http.Handler, email, role string) string {
	t.Helper()
	return tokenFrom(t, do(t, h, http.MethodPost, "/api/auth/register", "",
		gin.H{"email": email, "password": "secret123", "role": role}))
}

func login(t *testing.T, h http.Handler, email, password string) string {
	t.Helper()
	return tokenFrom(t, do(t, h, http.MethodPost, "/api/auth/login", "",
		gin.H{"email": email, "password": password}))
}

func me(t *testing.T, h http.Handler, token string) map[string]any {
	t.Helper()
	w := do(t, h, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decode[map[string]any](t, w)
}

func idOf(m map[string]any) uint {
	return uint(m["id"].(float64))
}

func TestHealth(t *testing.T) {
	a := newApp(t)
	w := do(t, a.Handler, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestSeedAdmin(t *testing.T) {
	a := newApp(t)
	hook := logtest.NewGlobal()
	defer hook.Reset()

	a.SeedAdmin(context.Background(), "", "")
	require.NotNil(t, hook.LastEntry())
	assert.Contains(t, hook.LastEntry().Message, "admin seed disabled")

	a.SeedAdmin(context.Background(), adminEmail, adminPassword)
	assert.Equal(t, "admin account already exists", hook.LastEntry().Message)
	assert.Equal(t, adminEmail, hook.LastEntry().Data["email"])

	a.SeedAdmin(context.Background(), "second@teranga.sn", "pw")
	assert.Equal(t, "admin account created", hook.LastEntry().Message)
}

func TestAuthFlow(t *testing.T) {
	a := newApp(t)
	h := a.Handler

	token := register(t, h, "Awa@Example.com", "")
	profile := me(t, h, token)
	assert.Equal(t, "awa@example.com", profile["email"])
	assert.Equal(t, "VISITOR", profile["role"])
	assert.NotContains(t, profile, "passwordHash")

	t.Run("duplicate email", func(t *testing.T) {
		w := do(t, h, http.MethodPost, "/api/auth/register", "",
			gin.H{"email": "awa@example.com", "password": "x"})
		assert.Equal(t, http.StatusConflict, w.Code)
	})
	t.Run("admin self-registration", func(t *testing.T) {
		w := do(t, h, http.MethodPost, "/api/auth/register", "",
			gin.H{"email": "eve@example.com", "password": "x", "role": "ADMIN"})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
	t.Run("unknown role", func(t *testing.T) {
		w := do(t, h, http.MethodPost, "/api/auth/register", "",
			gin.H{"email": "eve@example.com", "password": "x", "role": "PILOT"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
	t.Run("wrong password", func(t *testing.T) {
		w := do(t, h, http.MethodPost, "/api/auth/login", "",
			gin.H{"email": "awa@example.com", "password": "nope"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
	t.Run("login sets last login", func(t *testing.T) {
		tok := login(t, h, "awa@example.com", "secret123")
		assert.NotEmpty(t, me(t, h, tok)["lastLogin"])
	})
	t.Run("missing token", func(t *testing.T) {
		w := do(t, h, http.MethodGet, "/api/auth/me", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAdminUsers(t *testing.T) {
	a := newApp(t)
	h := a.Handler
	admin := login(t, h, adminEmail, adminPassword)
	visitor := register(t, h, "moussa@example.com", "VISITOR")

	w := do(t, h, http.MethodGet, "/api/admin/users", visitor, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(t, h, http.MethodPost, "/api/admin/users", admin,
		gin.H{"email": "fatou@example.com", "password": "pw", "role": "guide"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[map[string]any](t, w)
	assert.Equal(t, "GUIDE", created["role"])
	id := idOf(created)

	w = do(t, h, http.MethodPut, fmt.Sprintf("/api/admin/users/%d/role", id), admin, gin.H{"role": "Organizer"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "ORGANIZER", decode[map[string]any](t, w)["role"])

	w = do(t, h, http.MethodGet, "/api/admin/users", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]map[string]any](t, w), 3)

	w = do(t, h, http.MethodDelete, fmt.Sprintf("/api/admin/users/%d", id), admin, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = do(t, h, http.MethodGet, fmt.Sprintf("/api/admin/users/%d", id), admin, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = do(t, h, http.MethodDelete, fmt.Sprintf("/api/admin/users/%d", id), admin, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func multipartArticle(t *testing.T, fields map[string]string, imageName string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if imageName != "" {
		fw, err := mw.CreateFormFile("image", imageName)
		require.NoError(t, err)
		_, err = fw.Write([]byte("fake-png"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return body, mw.FormDataContentType()
}

func TestArticles(t *testing.T) {
	a := newApp(t)
	h := a.Handler
	admin := login(t, h, adminEmail, adminPassword)

	body, ct := multipartArticle(t, map[string]string{
		"title":    "Gorée, mémoire vive",
		"excerpt":  "Une île et son histoire",
		"category": "Histoire",
	}, "my photo.png")
	req := httptest.NewRequest(http.MethodPost, "/api/articles", body)
	req.Header.Set("Content-Type", ct)
	req.Header.Set("Authorization", "Bearer "+admin)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	article := decode[map[string]any](t, w)
	assert.Equal(t, "3 min", article["readTime"])
	image, _ := article["image"].(string)
	require.True(t, strings.HasPrefix(image, "/uploads/articles/"), image)
	assert.True(t, strings.HasSuffix(image, "_my_photo.png"), image)

	w = do(t, h, http.MethodGet, image, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "fake-png", w.Body.String())

	w = do(t, h, http.MethodGet, "/api/articles?search=GORÉE", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]map[string]any](t, w), 1)

	w = do(t, h, http.MethodGet, "/api/articles?category=histoire", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]map[string]any](t, w), 1)

	visitor := register(t, h, "reader@example.com", "")
	body, ct = multipartArticle(t, map[string]string{"title": "nope"}, "")
	req = httptest.NewRequest(http.MethodPost, "/api/articles", body)
	req.Header.Set("Content-Type", ct)
	req.Header.Set("Authorization", "Bearer "+visitor)
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	path := fmt.Sprintf("/api/articles/%d", idOf(article))
	assert.Equal(t, http.StatusNoContent, do(t, h, http.MethodDelete, path, admin, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, path, "", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodDelete, path, admin, nil).Code)
}

func TestArticleUpdate_MissingArticleStoresNoImage(t *testing.T) {
	uploads := t.TempDir()
	a := newAppWithUploads(t, uploads)
	admin := login(t, a.Handler, adminEmail, adminPassword)

	body, ct := multipartArticle(t, map[string]string{"title": "Ghost"}, "ghost.png")
	req := httptest.NewRequest(http.MethodPut, "/api/articles/999", body)
	req.Header.Set("Content-Type", ct)
	req.Header.Set("Authorization", "Bearer "+admin)
	w := httptest.NewRecorder()
	a.Handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	entries, err := os.ReadDir(filepath.Join(uploads, "articles"))
	if !os.IsNotExist(err) {
		require.NoError(t, err)
		assert.Empty(t, entries)
	}
}

func TestEventPayloadHidesEmails(t *testing.T) {
	a := newApp(t)
	h := a.Handler
	organizer := register(t, h, "org.private@example.com", "ORGANIZER")
	fan := register(t, h, "fan.private@example.com", "")

	w := do(t, h, http.MethodPost, "/api/events", organizer, gin.H{"title": "Festival de Saint-Louis"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	path := fmt.Sprintf("/api/events/%d", idOf(decode[map[string]any](t, w)))
	require.Equal(t, http.StatusOK, do(t, h, http.MethodPost, path+"/participants", fan, nil).Code)

	for _, p := range []string{path, "/api/events"} {
		w = do(t, h, http.MethodGet, p, "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "private@example.com")
	}
	event := decode[map[string]any](t, do(t, h, http.MethodGet, path, "", nil))
	participants := event["participants"].([]any)
	require.Len(t, participants, 1)
	assert.Equal(t, float64(idOf(me(t, h, fan))), participants[0].(map[string]any)["id"])
	assert.Equal(t, float64(idOf(me(t, h, organizer))), event["organizer"].(map[string]any)["id"])
}

func TestEvents(t *testing.T) {
	a := newApp(t)
	h := a.Handler
	organizer := register(t, h, "org@example.com", "ORGANIZER")
	other := register(t, h, "org2@example.com", "ORGANIZER")
	visitor := register(t, h, "fan@example.com", "")
	fan2 := register(t, h, "fan2@example.com", "")

	w := do(t, h, http.MethodPost, "/api/events", visitor, gin.H{"title": "x"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(t, h, http.MethodPost, "/api/events", organizer, gin.H{
		"title":         "Lutte: Modou Lo vs Siteu",
		"type":          "Lutte",
		"location":      "Arène nationale, Pikine",
		"startDateTime": "2026-11-01T16:00",
		"capacity":      1,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	event := decode[map[string]any](t, w)
	assert.Equal(t, "UPCOMING", event["status"])
	path := fmt.Sprintf("/api/events/%d", idOf(event))

	w = do(t, h, http.MethodGet, "/api/events/type/lutte", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]map[string]any](t, w), 1)

	w = do(t, h, http.MethodPut, path, other, gin.H{"title": "hijack"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(t, h, http.MethodPost, path+"/participants", visitor, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.EqualValues(t, 1, decode[map[string]any](t, w)["registered"])

	w = do(t, h, http.MethodPost, path+"/participants", visitor, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decode[map[string]any](t, w)["registered"])

	w = do(t, h, http.MethodPost, path+"/participants", fan2, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, h, http.MethodDelete, path+"/participants", visitor, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, decode[map[string]any](t, w)["registered"])

	assert.Equal(t, http.StatusNoContent, do(t, h, http.MethodDelete, path, organizer, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, path, "", nil).Code)
}

func TestLiveScoreWebSocket(t *testing.T) {
	a := newApp(t)
	srv := httptest.NewServer(a.Handler)
	defer srv.Close()
	organizer := register(t, a.Handler, "live@example.com", "ORGANIZER")

	w := do(t, a.Handler, http.MethodPost, "/api/events", organizer, gin.H{
		"title":    "ASC Jaraaf vs Casa Sports",
		"type":     "football",
		"liveData": gin.H{"homeTeam": "Jaraaf", "awayTeam": "Casa", "score": "0-0"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id := idOf(decode[map[string]any](t, w))

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + fmt.Sprintf("/ws/events/%d/live", id)
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	var snapshot struct {
		EventID  uint              `json:"eventId"`
		LiveData map[string]string `json:"liveData"`
	}
	require.NoError(t, conn.ReadJSON(&snapshot))
	assert.Equal(t, id, snapshot.EventID)
	assert.Equal(t, "0-0", snapshot.LiveData["score"])

	require.Eventually(t, func() bool { return a.Hub.Subscribers(id) == 1 }, time.Second, 10*time.Millisecond)

	w = do(t, a.Handler, http.MethodPut, fmt.Sprintf("/api/events/%d/live", id), organizer,
		gin.H{"homeTeam": "Jaraaf", "awayTeam": "Casa", "score": "1-0"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, true, decode[map[string]any](t, w)["live"])

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var update struct {
		EventID  uint              `json:"eventId"`
		LiveData map[string]string `json:"liveData"`
	}
	require.NoError(t, conn.ReadJSON(&update))
	assert.Equal(t, id, update.EventID)
	assert.Equal(t, "1-0", update.LiveData["score"])

	_, _, err = websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws/events/999/live", nil)
	assert.Error(t, err)
}

func TestPlacesGeoJSONAndNear(t *testing.T) {
	a := newApp(t)
	h := a.Handler
	admin := login(t, h, adminEmail, adminPassword)

	for _, p := range []gin.H{
		{"name": "Monument de la Renaissance", "type": "MONUMENT", "latitude": 14.7222, "longitude": -17.4950},
		{"name": "Marché Sandaga", "type": "market", "latitude": 14.6708, "longitude": -17.4382},
		{"name": "Lac Rose", "address": "Niaga"},
	} {
		w := do(t, h, http.MethodPost, "/api/places", admin, p)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w := do(t, h, http.MethodGet, "/api/places/geojson", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var fc struct {
		Type     string `json:"type"`
		Features []struct {
			Geometry struct {
				Type        string    `json:"type"`
				Coordinates []float64 `json:"coordinates"`
			} `json:"geometry"`
			Properties map[string]any `json:"properties"`
		} `json:"features"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fc))
	assert.Equal(t, "FeatureCollection", fc.Type)
	require.Len(t, fc.Features, 2)
	assert.Equal(t, "Point", fc.Features[0].Geometry.Type)
	assert.InDeltaSlice(t, []float64{-17.4950, 14.7222}, fc.Features[0].Geometry.Coordinates, 1e-9)

	w = do(t, h, http.MethodGet, "/api/places/near?lat=14.7222&lng=-17.4950&radius=2000", "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	near := decode[[]map[string]any](t, w)
	require.Len(t, near, 1)
	assert.Equal(t, "Monument de la Renaissance", near[0]["name"])

	w = do(t, h, http.MethodGet, "/api/places?address=niaga", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]map[string]any](t, w), 1)

	w = do(t, h, http.MethodPost, "/api/places", admin, gin.H{"name": "Half", "latitude": 14.0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookingLifecycle(t *testing.T) {
	a := newApp(t)
	h := a.Handler
	guideTok := register(t, h, "guide@example.com", "GUIDE")
	visitorTok := register(t, h, "tourist@example.com", "")
	guideID := idOf(me(t, h, guideTok))

	w := do(t, h, http.MethodPost, "/api/guides", guideTok, gin.H{
		"specialties": []string{"histoire", "gastronomie"},
		"hourlyRate":  15000,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(t, h, http.MethodPost, "/api/bookings", visitorTok, gin.H{
		"guideId":       guideID,
		"startDateTime": "2026-12-01T09:00:00Z",
		"endDateTime":   "2026-12-01T11:00:00Z",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	booking := decode[map[string]any](t, w)
	assert.Equal(t, "PENDING", booking["status"])
	assert.EqualValues(t, 30000, booking["price"])
	path := fmt.Sprintf("/api/bookings/%d", idOf(booking))

	w = do(t, h, http.MethodPost, "/api/bookings", visitorTok, gin.H{
		"guideId":       guideID,
		"startDateTime": "2026-12-01T11:00:00Z",
		"endDateTime":   "2026-12-01T09:00:00Z",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, h, http.MethodGet, "/api/bookings/guide", guideTok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]map[string]any](t, w), 1)

	w = do(t, h, http.MethodPut, path+"/status", visitorTok, gin.H{"status": "CONFIRMED"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(t, h, http.MethodPut, path+"/status", guideTok, gin.H{"status": "confirmed"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "CONFIRMED", decode[map[string]any](t, w)["status"])

	w = do(t, h, http.MethodGet, "/api/bookings", visitorTok, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(t, h, http.MethodPut, path+"/status", visitorTok, gin.H{"status": "CANCELLED"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "CANCELLED", decode[map[string]any](t, w)["status"])
}

func TestMediaModeration(t *testing.T) {
	a := newApp(t)
	h := a.Handler
	admin := login(t, h, adminEmail, adminPassword)
	local := register(t, h, "photo@example.com", "LOCAL")

	w := do(t, h, http.MethodPost, "/api/media", local, gin.H{
		"url":         "https://cdn.example.com/goree.jpg",
		"relatedType": "place",
		"relatedId":   1,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	m := decode[map[string]any](t, w)
	assert.Equal(t, "PENDING", m["status"])
	assert.Equal(t, "IMAGE", m["type"])

	w = do(t, h, http.MethodGet, "/api/media?relatedType=PLACE&relatedId=1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[[]map[string]any](t, w))

	w = do(t, h, http.MethodGet, "/api/media/moderation", local, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(t, h, http.MethodGet, "/api/media/moderation", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]map[string]any](t, w), 1)

	w = do(t, h, http.MethodPut, fmt.Sprintf("/api/media/%d/status", idOf(m)), admin, gin.H{"status": "APPROVED"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(t, h, http.MethodGet, "/api/media?relatedType=PLACE&relatedId=1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]map[string]any](t, w), 1)
}

func TestCORSPreflight(t *testing.T) {
	a := newApp(t)
	req := httptest.NewRequest(http.MethodOptions, "/api/events", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	a.Handler.ServeHTTP(w, req)
	assert.Contains(t, []string{"*", "http://localhost:5173"}, w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}
