package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordanlanch/repcoach/pkg/models"
)

func TestInteractionHandler_CreateAndPromoteStep(t *testing.T) {
	env := newTestEnv(t)
	h := NewInteractionHandler(env.interactions, nil)
	customer := env.customer("owner-1", "王总")

	env.reply("```json\n" + analysisFor("已发送报价单") + "\n```")
	rec := env.call(h.Create, http.MethodPost, "/api/v1/interactions",
		`{"input":"和王总沟通了报价","customer_id":"`+customer.ID+`","date":"2024-03-12"}`, "owner-1")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	it := decode[models.Interaction](t, rec)
	require.Len(t, it.Intelligence.NextSteps, 1)
	step := it.Intelligence.NextSteps[0]
	require.NotEmpty(t, step.ID)

	rec = env.call(h.PromoteStep, http.MethodPost, "/", "", "owner-1", "id", it.ID, "stepId", step.ID)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	sched := decode[models.Schedule](t, rec)
	assert.Equal(t, "发送报价", sched.Title)
	assert.Equal(t, "2024-03-18", sched.Date)
	require.NotNil(t, sched.CustomerID)
	assert.Equal(t, customer.ID, *sched.CustomerID)

	rec = env.call(h.PromoteStep, http.MethodPost, "/", "", "owner-1", "id", it.ID, "stepId", step.ID)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, sched.ID, decode[models.Schedule](t, rec).ID)

	rec = env.call(h.PromoteStep, http.MethodPost, "/", "", "owner-1", "id", it.ID, "stepId", "nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.call(h.List, http.MethodGet, "/api/v1/interactions?customer_id="+customer.ID, "", "owner-1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, decode[models.InteractionListResponse](t, rec).Total)
}

func TestInteractionHandler_UpstreamFailure(t *testing.T) {
	env := newTestEnv(t)
	h := NewInteractionHandler(env.interactions, nil)

	env.llm.Err = errors.New("connection reset")
	rec := env.call(h.Create, http.MethodPost, "/api/v1/interactions", `{"input":"hello"}`, "owner-1")
	require.Equal(t, http.StatusBadGateway, rec.Code)
	resp := decode[models.ErrorResponse](t, rec)
	assert.Equal(t, "upstream_error", resp.Error)
	assert.True(t, resp.Retryable)

	rec = env.call(h.List, http.MethodGet, "/api/v1/interactions", "", "owner-1")
	assert.Equal(t, 0, decode[models.InteractionListResponse](t, rec).Total)
}

func TestInteractionHandler_Promote(t *testing.T) {
	env := newTestEnv(t)
	h := NewInteractionHandler(env.interactions, nil)

	env.reply(analysisFor("初步接触"))
	rec := env.call(h.Create, http.MethodPost, "/api/v1/interactions",
		`{"input":"展会上认识了王总","date":"2024-03-01"}`, "owner-1")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	it := decode[models.Interaction](t, rec)
	assert.Nil(t, it.CustomerID)

	rec = env.call(h.Promote, http.MethodPost, "/", "", "owner-1", "id", it.ID)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	resp := decode[models.PromoteInteractionResponse](t, rec)
	assert.Equal(t, "王总", resp.Customer.Name)
	require.NotNil(t, resp.Interaction.CustomerID)
	assert.Equal(t, resp.Customer.ID, *resp.Interaction.CustomerID)

	rec = env.call(h.Promote, http.MethodPost, "/", "", "owner-1", "id", it.ID)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = env.call(h.Delete, http.MethodDelete, "/", "", "owner-2", "id", it.ID)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	rec = env.call(h.Delete, http.MethodDelete, "/", "", "owner-1", "id", it.ID)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestInteractionHandler_ReplaceNextSteps(t *testing.T) {
	env := newTestEnv(t)
	h := NewInteractionHandler(env.interactions, nil)

	env.reply(analysisFor("需求确认"))
	rec := env.call(h.Create, http.MethodPost, "/api/v1/interactions", `{"input":"x","date":"2024-03-01"}`, "owner-1")
	require.Equal(t, http.StatusCreated, rec.Code)
	it := decode[models.Interaction](t, rec)

	rec = env.call(h.ReplaceNextSteps, http.MethodPut, "/",
		`{"next_steps":[{"action":"安排演示","priority":"low"}]}`, "owner-1", "id", it.ID)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	steps := decode[models.Interaction](t, rec).Intelligence.NextSteps
	require.Len(t, steps, 1)
	assert.NotEmpty(t, steps[0].ID)

	rec = env.call(h.ReplaceNextSteps, http.MethodPut, "/",
		`{"next_steps":[{"action":"x","priority":"urgent"}]}`, "owner-1", "id", it.ID)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
