package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/jordanlanch/repcoach/config"
	"github.com/jordanlanch/repcoach/pkg/ai/llm"
	"github.com/jordanlanch/repcoach/pkg/courseplans"
	"github.com/jordanlanch/repcoach/pkg/customers"
	"github.com/jordanlanch/repcoach/pkg/dashboard"
	"github.com/jordanlanch/repcoach/pkg/database"
	"github.com/jordanlanch/repcoach/pkg/intelligence"
	"github.com/jordanlanch/repcoach/pkg/interactions"
	"github.com/jordanlanch/repcoach/pkg/logger"
	"github.com/jordanlanch/repcoach/pkg/metrics"
	"github.com/jordanlanch/repcoach/pkg/models"
	"github.com/jordanlanch/repcoach/pkg/reports"
	"github.com/jordanlanch/repcoach/pkg/schedules"
	"github.com/jordanlanch/repcoach/pkg/users"
)

// testEnv wires every service against one in-memory database and a fake LLM
type testEnv struct {
	t            *testing.T
	db           *database.Client
	llm          *llm.FakeClient
	coach        *intelligence.Coach
	metrics      *metrics.Metrics
	cfg          *config.Config
	users        *users.Service
	customers    *customers.Service
	schedules    *schedules.Service
	interactions *interactions.Service
	plans        *courseplans.Service
	reports      *reports.Service
	dashboard    *dashboard.Service
	e            *echo.Echo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := database.NewTestClient(t)
	fake := llm.NewFakeClient()
	m := metrics.NewWithRegistry(prometheus.NewRegistry())
	coach := intelligence.NewCoach(fake, fake, logger.Discard(), m)

	return &testEnv{
		t:            t,
		db:           db,
		llm:          fake,
		coach:        coach,
		metrics:      m,
		cfg:          &config.Config{JWTSecret: "test-secret", JWTExpirationHours: 1},
		users:        users.NewService(db),
		customers:    customers.NewService(db, nil, logger.Discard()),
		schedules:    schedules.NewService(db),
		interactions: interactions.NewService(db, coach, logger.Discard()),
		plans:        courseplans.NewService(db, coach),
		reports:      reports.NewService(db, coach, reports.Options{Metrics: m, Logger: logger.Discard()}),
		dashboard:    dashboard.NewService(db, time.UTC),
		e:            echo.New(),
	}
}

// reply queues canned LLM replies
func (env *testEnv) reply(replies ...string) {
	env.llm.Replies = replies
}

// call runs handler for owner. params alternate name, value.
func (env *testEnv) call(handler echo.HandlerFunc, method, target, body, owner string, params ...string) *httptest.ResponseRecorder {
	env.t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := env.e.NewContext(req, rec)
	if owner != "" {
		c.Set("user_id", owner)
	}
	if len(params) > 0 {
		var names, values []string
		for i := 0; i+1 < len(params); i += 2 {
			names = append(names, params[i])
			values = append(values, params[i+1])
		}
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}

	require.NoError(env.t, handler(c))
	return rec
}

// callWith runs handler with arbitrary context values, as set by middleware
func (env *testEnv) callWith(handler echo.HandlerFunc, method, target, body string, values map[string]any) *httptest.ResponseRecorder {
	env.t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := env.e.NewContext(req, rec)
	for k, v := range values {
		c.Set(k, v)
	}
	require.NoError(env.t, handler(c))
	return rec
}

func (env *testEnv) customer(owner, name string) *models.Customer {
	env.t.Helper()
	c, err := env.customers.Create(context.Background(), owner, models.CreateCustomerRequest{Name: name})
	require.NoError(env.t, err)
	return c
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[models.ErrorResponse](t, rec).Error
}
