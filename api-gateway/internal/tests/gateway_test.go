package tests

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tiedan-noodle/api-gateway/internal/gateway"
	"tiedan-noodle/api-gateway/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func upstreamResponse(status int, body string) *http.Response {
	resp := &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
	resp.Header.Set("Content-Type", "application/json")
	return resp
}

func TestGateway_HealthCheck(t *testing.T) {
	gw := gateway.NewGateway(gateway.Config{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	gw.SetupRoutes().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var body map[string]string
	json.NewDecoder(rr.Body).Decode(&body)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "api-gateway", body["service"])
}

func TestGateway_RouteHandler(t *testing.T) {
	tests := []struct {
		name        string
		method      string
		path        string
		body        string
		expectedURL string
		upstream    *http.Response
	}{
		{
			name:        "menu goes to shop",
			method:      http.MethodGet,
			path:        "/api/menu?category=noodles",
			expectedURL: "http://shop-svc/api/menu?category=noodles",
			upstream:    upstreamResponse(http.StatusOK, `[{"id":"noodle-1"}]`),
		},
		{
			name:        "order submission goes to shop",
			method:      http.MethodPost,
			path:        "/api/orders",
			body:        `{"session_id":"s1"}`,
			expectedURL: "http://shop-svc/api/orders",
			upstream:    upstreamResponse(http.StatusCreated, `{"success":true}`),
		},
		{
			name:        "stats go to stats",
			method:      http.MethodGet,
			path:        "/api/stats/popular?period=all",
			expectedURL: "http://stats-svc/api/stats/popular?period=all",
			upstream:    upstreamResponse(http.StatusOK, `[]`),
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockClient := mocks.NewHTTPClient(t)
			gw := gateway.NewGateway(gateway.Config{
				ShopSvcURL:  "http://shop-svc",
				StatsSvcURL: "http://stats-svc/",
			}, mockClient)

			mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
				return req.Method == testCase.method && req.URL.String() == testCase.expectedURL
			})).Return(testCase.upstream, nil).Once()

			req := httptest.NewRequest(testCase.method, testCase.path, strings.NewReader(testCase.body))
			rr := httptest.NewRecorder()

			gw.RouteHandler(rr, req)

			assert.Equal(t, testCase.upstream.StatusCode, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		})
	}
}

func TestGateway_RouteHandler_ForwardsBodyAndHeaders(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(gateway.Config{ShopSvcURL: "http://shop-svc"}, mockClient)

	var forwarded []byte
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		if forwarded == nil {
			forwarded, _ = io.ReadAll(req.Body)
		}
		return string(forwarded) == `{"item_id":"noodle-1"}` &&
			req.Header.Get("Content-Type") == "application/json" &&
			req.Header.Get("Connection") == ""
	})).Return(upstreamResponse(http.StatusOK, `{"item_count":1}`), nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/cart/s1/items", strings.NewReader(`{"item_id":"noodle-1"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Connection", "keep-alive")
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"item_count":1}`, rr.Body.String())
}

func TestGateway_RouteHandler_NotAPI(t *testing.T) {
	gw := gateway.NewGateway(gateway.Config{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/index.html", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGateway_RouteHandler_ProxyError(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(gateway.Config{
		ShopSvcURL: "http://invalid",
	}, mockClient)

	mockClient.On("Do", mock.Anything).Return(nil, errors.New("connection failed")).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/store", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusBadGateway, rr.Code)
	assert.Contains(t, rr.Body.String(), "Upstream service unavailable")
}
