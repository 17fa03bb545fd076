package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"go.uber.org/zap"

	api "github.com/stadium3d/stadium-api/pkg/api/http"
)

func newTestHandler() http.Handler {
	s := api.NewServer(&api.Config{
		Port: 8000,
		AllowedOrigins: []string{
			"http://localhost:3000",
			"http://localhost:3006",
			"http://localhost:8080",
		},
		Logger: zap.NewNop(),
	})
	return s.Handler()
}

func doRequest(h http.Handler, method, target string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, http.NoBody)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRootEndpoint(t *testing.T) {
	Convey("Given the stadium API server", t, func() {
		h := newTestHandler()

		Convey("GET / returns operational service info", func() {
			w := doRequest(h, http.MethodGet, "/", nil)

			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Header().Get("Content-Type"), ShouldContainSubstring, "application/json")

			var info api.RootInfo
			So(json.Unmarshal(w.Body.Bytes(), &info), ShouldBeNil)
			So(info.Message, ShouldEqual, "3D Stadium Website API")
			So(info.Version, ShouldNotBeEmpty)
			So(info.Status, ShouldEqual, "operational")
		})

		Convey("POST / is rejected with 405", func() {
			w := doRequest(h, http.MethodPost, "/", nil)

			So(w.Code, ShouldEqual, http.StatusMethodNotAllowed)
		})

		Convey("an unknown path returns 404", func() {
			w := doRequest(h, http.MethodGet, "/nope", nil)

			So(w.Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestHealthEndpoint(t *testing.T) {
	Convey("Given the stadium API server", t, func() {
		h := newTestHandler()

		Convey("GET /health reports healthy with service and version", func() {
			w := doRequest(h, http.MethodGet, "/health", nil)

			So(w.Code, ShouldEqual, http.StatusOK)

			var status api.HealthStatus
			So(json.Unmarshal(w.Body.Bytes(), &status), ShouldBeNil)
			So(status.Status, ShouldEqual, "healthy")
			So(status.Service, ShouldEqual, api.ServiceName)
			So(status.Version, ShouldEqual, api.Version)
		})

		Convey("HEAD /health returns 200 with an empty body", func() {
			w := doRequest(h, http.MethodHead, "/health", nil)

			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.Len(), ShouldEqual, 0)
		})
	})
}

func TestStadiumInfoEndpoint(t *testing.T) {
	Convey("Given the stadium API server", t, func() {
		h := newTestHandler()

		Convey("GET /api/stadium/info returns the stadium payload", func() {
			w := doRequest(h, http.MethodGet, "/api/stadium/info", nil)

			So(w.Code, ShouldEqual, http.StatusOK)

			var info api.StadiumInfo
			So(json.Unmarshal(w.Body.Bytes(), &info), ShouldBeNil)
			So(info.Name, ShouldEqual, "Interactive Football Stadium")
			So(info.Type, ShouldEqual, "football")
			So(info.Capacity, ShouldEqual, 50000)
			So(len(info.Features), ShouldEqual, 5)
			So(info.Features, ShouldContain, "3D visualization")
			So(info.Features, ShouldContain, "Interactive camera controls")
		})

		Convey("unknown query parameters are ignored", func() {
			plain := doRequest(h, http.MethodGet, "/api/stadium/info", nil)
			withParam := doRequest(h, http.MethodGet, "/api/stadium/info?invalid=param", nil)

			So(withParam.Code, ShouldEqual, http.StatusOK)
			So(withParam.Body.String(), ShouldEqual, plain.Body.String())
		})
	})
}

func TestCORS(t *testing.T) {
	Convey("Given the stadium API server", t, func() {
		h := newTestHandler()

		Convey("an allow-listed origin gets reflected CORS headers", func() {
			w := doRequest(h, http.MethodGet, "/", map[string]string{
				"Origin": "http://localhost:3006",
			})

			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Header().Get("Access-Control-Allow-Origin"), ShouldEqual, "http://localhost:3006")
			So(w.Header().Get("Access-Control-Allow-Credentials"), ShouldEqual, "true")
			So(w.Header().Get("Vary"), ShouldContainSubstring, "Origin")
		})

		Convey("preflight from an allow-listed origin succeeds", func() {
			w := doRequest(h, http.MethodOptions, "/", map[string]string{
				"Origin":                         "http://localhost:3006",
				"Access-Control-Request-Method":  "GET",
				"Access-Control-Request-Headers": "Content-Type",
			})

			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Header().Get("Access-Control-Allow-Origin"), ShouldEqual, "http://localhost:3006")
		})

		Convey("an unknown origin is served without CORS headers", func() {
			w := doRequest(h, http.MethodGet, "/", map[string]string{
				"Origin": "http://malicious-site.com",
			})

			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Header().Get("Access-Control-Allow-Origin"), ShouldBeEmpty)
		})
	})
}

func TestDocsEndpoints(t *testing.T) {
	Convey("Given the stadium API server", t, func() {
		h := newTestHandler()

		Convey("GET /docs serves the Swagger UI page", func() {
			w := doRequest(h, http.MethodGet, "/docs", nil)

			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Header().Get("Content-Type"), ShouldContainSubstring, "text/html")
			So(w.Body.String(), ShouldContainSubstring, "swagger-ui")
		})

		Convey("GET /redoc serves the ReDoc page", func() {
			w := doRequest(h, http.MethodGet, "/redoc", nil)

			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Header().Get("Content-Type"), ShouldContainSubstring, "text/html")
			So(w.Body.String(), ShouldContainSubstring, "redoc-container")
		})

		Convey("GET /openapi.json serves the API schema", func() {
			w := doRequest(h, http.MethodGet, "/openapi.json", nil)

			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Header().Get("Content-Type"), ShouldContainSubstring, "application/json")

			var doc map[string]interface{}
			So(json.Unmarshal(w.Body.Bytes(), &doc), ShouldBeNil)
			So(doc, ShouldContainKey, "openapi")
			So(doc, ShouldContainKey, "info")
			So(doc, ShouldContainKey, "paths")
		})
	})
}

func TestMetricsEndpoint(t *testing.T) {
	Convey("Given the stadium API server", t, func() {
		h := newTestHandler()

		Convey("GET /metrics serves the Prometheus exposition", func() {
			w := doRequest(h, http.MethodGet, "/metrics", nil)

			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.Len(), ShouldBeGreaterThan, 0)
		})
	})
}
