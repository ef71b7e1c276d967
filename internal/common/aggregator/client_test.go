package aggregator_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ledgerlink/go-consent-report/internal/common"
	"github.com/ledgerlink/go-consent-report/internal/common/aggregator"
	mockIDGenerator "github.com/ledgerlink/go-consent-report/internal/common/idgenerator/mock"
	"github.com/ledgerlink/go-consent-report/internal/common/log"
	"github.com/ledgerlink/go-consent-report/internal/config"
	"github.com/ledgerlink/go-consent-report/internal/models"
)

func TestMain(m *testing.M) {
	log.InitForTest()
	os.Exit(m.Run())
}

func newTestClient(t *testing.T, handler http.Handler) aggregator.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	mockCtrl := gomock.NewController(t)
	idgen := mockIDGenerator.NewMockGenerator(mockCtrl)
	idgen.EXPECT().Generate().Return("corr-test-1").AnyTimes()

	return aggregator.New(config.AggregatorConfig{
		ConsentBaseURL:    server.URL,
		AccountingBaseURL: server.URL,
		APIKey:            "test-api-key",
		Timeout:           5 * time.Second,
	}, idgen, nil)
}

func TestClient_CreateConsent(t *testing.T) {
	t.Run("extracts the consent id from the location header", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/v1/consents", r.URL.Path)
			assert.Equal(t, "test-api-key", r.Header.Get("x-api-key"))
			assert.Equal(t, "corr-test-1", r.Header.Get("x-correlation-id"))

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "my-company", body["name"])

			w.Header().Set("Location", "https://upstream.test/api/v1/consents/consent-abc")
			w.WriteHeader(http.StatusCreated)
		}))

		consentID, err := client.CreateConsent(context.Background(), "my-company")
		require.NoError(t, err)
		assert.Equal(t, "consent-abc", consentID)
	})

	t.Run("missing location header", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
		}))

		_, err := client.CreateConsent(context.Background(), "my-company")
		assert.ErrorIs(t, err, common.ErrMissingLocation)
	})

	t.Run("upstream failure becomes a status error", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"message":"invalid key"}`))
		}))

		_, err := client.CreateConsent(context.Background(), "my-company")

		var statusErr *aggregator.StatusError
		require.True(t, errors.As(err, &statusErr))
		assert.Equal(t, http.StatusForbidden, statusErr.StatusCode)
		assert.Contains(t, statusErr.Body, "invalid key")
	})
}

func TestClient_GetConsent(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/consents/consent-abc", r.URL.Path)
		w.Write([]byte(`{"id":"consent-abc","name":"my-company","status":1,"source":"fortnox"}`))
	}))

	consent, raw, err := client.GetConsent(context.Background(), "consent-abc")
	require.NoError(t, err)
	assert.Equal(t, "consent-abc", consent.ID)
	assert.Equal(t, "fortnox", consent.Source)
	assert.Equal(t, 1, consent.Status)
	assert.JSONEq(t, `{"id":"consent-abc","name":"my-company","status":1,"source":"fortnox"}`, string(raw))
}

func TestClient_GenerateOTC(t *testing.T) {
	t.Run("returns the code", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/v1/consents/consent-abc/otc", r.URL.Path)
			w.Write([]byte(`{"code":"a1b2c3"}`))
		}))

		code, err := client.GenerateOTC(context.Background(), "consent-abc")
		require.NoError(t, err)
		assert.Equal(t, "a1b2c3", code)
	})

	t.Run("empty code", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		}))

		_, err := client.GenerateOTC(context.Background(), "consent-abc")
		assert.ErrorIs(t, err, common.ErrMissingOTCCode)
	})
}

func TestClient_GetCompanyInformation(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/consents/consent-abc/companyinformation", r.URL.Path)
		w.Write([]byte(`{"name":"Acme AB","organizationNumber":"556000-0000"}`))
	}))

	raw, err := client.GetCompanyInformation(context.Background(), "consent-abc")
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Acme AB","organizationNumber":"556000-0000"}`, string(raw))
}

func TestClient_GetAccountingPeriods(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []models.AccountingPeriod
	}{
		{
			name: "bare array",
			body: `[{"startDate":"2024-01-01","endDate":"2024-12-31"}]`,
			want: []models.AccountingPeriod{{StartDate: "2024-01-01", EndDate: "2024-12-31"}},
		},
		{
			name: "data envelope",
			body: `{"data":[{"startDate":"2024-01-01","endDate":"2024-12-31"}]}`,
			want: []models.AccountingPeriod{{StartDate: "2024-01-01", EndDate: "2024-12-31"}},
		},
		{
			name: "periods envelope",
			body: `{"periods":[{"startDate":"2023-01-01","endDate":"2023-12-31"}]}`,
			want: []models.AccountingPeriod{{StartDate: "2023-01-01", EndDate: "2023-12-31"}},
		},
		{
			name: "unknown envelope degrades to empty",
			body: `{"something":"else"}`,
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/v1/consents/consent-abc/accountingperiods", r.URL.Path)
				w.Write([]byte(tt.body))
			}))

			periods, raw, err := client.GetAccountingPeriods(context.Background(), "consent-abc")
			require.NoError(t, err)
			assert.Equal(t, tt.want, periods)
			assert.Equal(t, tt.body, string(raw))
		})
	}
}

func TestClient_GetIncomeStatement(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/consents/consent-abc/incomestatement", r.URL.Path)
		assert.Equal(t, "2024-01-01", r.URL.Query().Get("StartDate"))
		assert.Equal(t, "2024-12-31", r.URL.Query().Get("EndDate"))
		assert.Equal(t, "3", r.URL.Query().Get("Level"))
		w.Write([]byte(`{"categories":[{"descriptions":[{"languageId":"SWE","text":"Intäkter"}]}],"profitLossBalance":{"baseCurrencies":[{"baseAmount":100}]}}`))
	}))

	statement, raw, err := client.GetIncomeStatement(context.Background(), "consent-abc", "2024-01-01", "2024-12-31", 3)
	require.NoError(t, err)
	require.Len(t, statement.Categories, 1)
	assert.Equal(t, "Intäkter", statement.Categories[0].Descriptions[0].Text)
	require.NotNil(t, statement.ProfitLossBalance)
	assert.NotEmpty(t, raw)
}

func TestClient_GetIncomeStatement_EscapesQueryValues(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2024-01-01&Level=9", r.URL.Query().Get("StartDate"))
		assert.Equal(t, "2024 12 31", r.URL.Query().Get("EndDate"))
		assert.Equal(t, "2", r.URL.Query().Get("Level"))
		w.Write([]byte(`{"categories":[]}`))
	}))

	_, _, err := client.GetIncomeStatement(context.Background(), "consent-abc", "2024-01-01&Level=9", "2024 12 31", 2)
	require.NoError(t, err)
}
