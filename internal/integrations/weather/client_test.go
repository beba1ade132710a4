package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/villa-booking-service/pkg/logger"
)

const sampleResponse = `{
	"name": "Gapyeong",
	"dt": 1754000000,
	"weather": [{"main": "Clear", "description": "맑음", "icon": "01d"}],
	"main": {"temp": 27.5, "feels_like": 29.1, "humidity": 60},
	"wind": {"speed": 2.4}
}`

func TestClient_GetCurrent(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "/data/2.5/weather", r.URL.Path)
		assert.Equal(t, "secret", r.URL.Query().Get("appid"))
		assert.Equal(t, "37.8", r.URL.Query().Get("lat"))
		_, _ = w.Write([]byte(sampleResponse))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, APIKey: "secret", Lat: 37.8, Lon: 127.5, Timeout: time.Second}, nil, logger.NewNop())

	cur, err := c.GetCurrent(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "Gapyeong", cur.Location)
	assert.Equal(t, "Clear", cur.Condition)
	assert.InDelta(t, 27.5, cur.TempC, 0.001)
	assert.Equal(t, 60, cur.Humidity)
}

func TestClient_GetCurrent_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, Timeout: time.Second}, nil, logger.NewNop())

	_, err := c.GetCurrent(context.Background())

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestClient_GetCurrent_ServedFromCache(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("API must not be called on cache hit")
	}))
	defer srv.Close()

	db, mock := redismock.NewClientMock()
	mock.ExpectGet(cacheKey).SetVal(`{"location":"Gapyeong","condition":"Rain","tempC":18}`)

	c := NewClient(Config{BaseURL: srv.URL, Timeout: time.Second, CacheTTL: time.Minute}, NewRedisCache(db), logger.NewNop())

	cur, err := c.GetCurrent(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Rain", cur.Condition)
	assert.NoError(t, mock.ExpectationsWereMet())
}
