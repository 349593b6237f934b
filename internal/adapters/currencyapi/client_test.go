package currencyapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/currency_converter/internal/adapters/currencyapi"
	"github.com/SscSPs/currency_converter/internal/apperrors"
	"github.com/SscSPs/currency_converter/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ClientTestSuite struct {
	suite.Suite
	server  *httptest.Server
	handler http.HandlerFunc
	lastReq *http.Request
	client  *currencyapi.Client
}

func (suite *ClientTestSuite) SetupTest() {
	suite.handler = nil
	suite.lastReq = nil
	suite.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		suite.lastReq = r
		suite.handler(w, r)
	}))
	suite.client = currencyapi.NewClient(suite.server.URL+"/v3/latest", "secret-key", 2*time.Second)
}

func (suite *ClientTestSuite) TearDownTest() {
	suite.server.Close()
}

func (suite *ClientTestSuite) respond(status int, body string) {
	suite.handler = func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func (suite *ClientTestSuite) TestLatestRate_Success() {
	suite.respond(http.StatusOK, `{
		"meta": {"last_updated_at": "2022-11-20T23:59:59Z"},
		"data": {"GBP": {"code": "GBP", "value": 0.841409}}
	}`)

	rate, err := suite.client.LatestRate(context.Background(), domain.USD, domain.GBP)

	suite.Require().NoError(err)
	suite.True(decimal.RequireFromString("0.841409").Equal(rate), "got %s", rate)

	suite.Require().NotNil(suite.lastReq)
	suite.Equal(http.MethodGet, suite.lastReq.Method)
	suite.Equal("/v3/latest", suite.lastReq.URL.Path)
	q := suite.lastReq.URL.Query()
	suite.Equal("secret-key", q.Get("apikey"))
	suite.Equal("USD", q.Get("base_currency"))
	suite.Equal("GBP", q.Get("currencies"))
}

func (suite *ClientTestSuite) TestLatestRate_NonOKStatus() {
	suite.respond(http.StatusUnauthorized, `{"message": "Invalid authentication credentials"}`)

	_, err := suite.client.LatestRate(context.Background(), domain.USD, domain.GBP)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUpstream)
	suite.Contains(err.Error(), "401")
	suite.Contains(err.Error(), "Invalid authentication credentials")
}

func (suite *ClientTestSuite) TestLatestRate_MalformedBody() {
	suite.respond(http.StatusOK, `{"data": [`)

	_, err := suite.client.LatestRate(context.Background(), domain.EUR, domain.USD)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUpstream)
}

func (suite *ClientTestSuite) TestLatestRate_MissingCurrency() {
	suite.respond(http.StatusOK, `{"data": {"EUR": {"code": "EUR", "value": 0.9}}}`)

	_, err := suite.client.LatestRate(context.Background(), domain.USD, domain.GBP)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUpstream)
	suite.Contains(err.Error(), "GBP")
}

func (suite *ClientTestSuite) TestLatestRate_IncompleteEntry() {
	tests := []struct {
		name string
		body string
	}{
		{name: "value missing", body: `{"data": {"GBP": {"code": "GBP"}}}`},
		{name: "value null", body: `{"data": {"GBP": {"code": "GBP", "value": null}}}`},
		{name: "entry null", body: `{"data": {"GBP": null}}`},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.respond(http.StatusOK, tt.body)

			rate, err := suite.client.LatestRate(context.Background(), domain.USD, domain.GBP)

			suite.Require().Error(err)
			suite.ErrorIs(err, apperrors.ErrUpstream)
			suite.True(rate.IsZero())
			suite.Contains(err.Error(), "GBP")
		})
	}
}

func (suite *ClientTestSuite) TestLatestRate_Unreachable() {
	suite.server.Close()

	_, err := suite.client.LatestRate(context.Background(), domain.USD, domain.GBP)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUpstream)
	suite.False(strings.Contains(err.Error(), "secret-key"), "api key leaked into error: %v", err)
}

func (suite *ClientTestSuite) TestLatestRate_CanceledContext() {
	suite.respond(http.StatusOK, `{"data": {"GBP": {"code": "GBP", "value": 0.8}}}`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := suite.client.LatestRate(ctx, domain.USD, domain.GBP)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUpstream)
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}
