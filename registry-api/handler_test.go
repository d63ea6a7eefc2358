package registryapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"

	"github.com/margined-protocol/mrgnd-perpetuals/logger"
	"github.com/margined-protocol/mrgnd-perpetuals/metrics"
	"github.com/margined-protocol/mrgnd-perpetuals/registry"
)

type HandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	reg    *prometheus.Registry
}

func (s *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	r, err := registry.Default()
	s.Require().NoError(err)

	s.reg = prometheus.NewRegistry()
	h := NewHandler(r, logger.NewMockLogger(), metrics.NewPromIndicators(s.reg))
	s.router = NewRouter(h, s.reg)
}

func (s *HandlerTestSuite) get(path string) (*httptest.ResponseRecorder, Response) {
	req, err := http.NewRequest(http.MethodGet, path, nil)
	s.Require().NoError(err)

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var resp Response
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func (s *HandlerTestSuite) TestListEnvironments() {
	w, resp := s.get("/environments")
	s.Equal(http.StatusOK, w.Code)
	s.Equal(0, resp.Code)
	s.Equal([]interface{}{"juno_testnet", "local", "osmo_testnet"}, resp.Data)
}

func (s *HandlerTestSuite) TestGetEnvironment() {
	w, _ := s.get("/environments/local")
	s.Equal(http.StatusOK, w.Code)

	var body struct {
		Data registry.Config `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal("1200000000000", body.Data.VammInitMsg.QuoteAssetReserve)
	s.Equal("ETH", body.Data.VammInitMsg.BaseAsset)
	s.Nil(body.Data.EngineInitMsg.FeePool)
	s.Contains(w.Body.String(), `"initialAssets":[]`)
}

func (s *HandlerTestSuite) TestGetEnvironment_NotFound() {
	w, resp := s.get("/environments/nonexistent")
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal(ErrNotFound.Code, resp.Code)
	s.Equal(`config not found: "nonexistent"`, resp.Data)
}

func (s *HandlerTestSuite) TestValidate() {
	w, resp := s.get("/environments/juno_testnet/validate?stage=template")
	s.Equal(http.StatusOK, w.Code)
	s.Equal(map[string]interface{}{"valid": true, "stage": "template"}, resp.Data)

	w, resp = s.get("/environments/juno_testnet/validate")
	s.Equal(http.StatusUnprocessableEntity, w.Code)
	s.Equal(ErrInvalid.Code, resp.Code)
	s.Len(resp.Data, 5)
	s.Contains(w.Body.String(), `"field":"engineInitMsg.fee_pool"`)

	w, _ = s.get("/environments/juno_testnet/validate?stage=final")
	s.Equal(http.StatusBadRequest, w.Code)

	w, _ = s.get("/environments/nonexistent/validate?stage=template")
	s.Equal(http.StatusNotFound, w.Code)

	w, _ = s.get("/environments/local/validate?stage=template&prefix=juno")
	s.Equal(http.StatusOK, w.Code)

	w, _ = s.get("/environments/local/validate?stage=template&prefix=Juno!")
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestMetrics() {
	s.get("/environments/local")
	s.get("/environments/nonexistent")

	w, _ := s.get("/metrics")
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `mrgnd_registry_lookups_total{environment="local",result="found"} 1`)
	s.Contains(w.Body.String(), `mrgnd_registry_lookups_total{environment="unknown",result="not_found"} 1`)
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func TestServe_Shutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	errChan := Serve(ctx, "127.0.0.1:0", http.NotFoundHandler(), logger.NewMockLogger())
	cancel()

	select {
	case err, ok := <-errChan:
		if ok && err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
