package docs

import (
	"encoding/json"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

type swaggerDoc struct {
	Swagger     string                                `json:"swagger"`
	BasePath    string                                `json:"basePath"`
	Info        map[string]any                        `json:"info"`
	Paths       map[string]map[string]json.RawMessage `json:"paths"`
	Definitions map[string]json.RawMessage            `json:"definitions"`
}

func readDoc(t *testing.T) (string, swaggerDoc) {
	t.Helper()
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc swaggerDoc
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	return raw, doc
}

func TestSwaggerDoc_Registered(t *testing.T) {
	_, doc := readDoc(t)

	assert.Equal(t, "2.0", doc.Swagger)
	assert.Equal(t, "/api/v1", doc.BasePath)
	assert.Equal(t, "RepCoach API", doc.Info["title"])
}

func TestSwaggerDoc_Routes(t *testing.T) {
	_, doc := readDoc(t)

	routes := []struct{ method, path string }{
		{"post", "/auth/register"},
		{"get", "/customers"},
		{"post", "/customers"},
		{"get", "/customers/{id}"},
		{"patch", "/customers/{id}"},
		{"delete", "/customers/{id}"},
		{"post", "/customers/{id}/restore"},
		{"put", "/interactions/{id}/next-steps"},
		{"post", "/interactions/{id}/next-steps/{stepId}/schedule"},
		{"post", "/schedules/{id}/toggle"},
		{"post", "/course-plans/generate"},
		{"post", "/ai/roleplay"},
		{"post", "/ai/roleplay/score"},
		{"post", "/ai/keywords"},
		{"post", "/ai/report"},
		{"get", "/dashboard"},
		{"get", "/dashboard/funnel"},
		{"get", "/exports/{file}"},
		{"get", "/users/me"},
		{"patch", "/users/me"},
	}
	for _, r := range routes {
		ops, ok := doc.Paths[r.path]
		require.True(t, ok, "missing path %s", r.path)
		assert.Contains(t, ops, r.method, "%s %s", r.method, r.path)
	}
}

func TestSwaggerDoc_RefsResolve(t *testing.T) {
	raw, doc := readDoc(t)

	refs := regexp.MustCompile(`"#/definitions/([^"]+)"`).FindAllStringSubmatch(raw, -1)
	require.NotEmpty(t, refs)
	for _, ref := range refs {
		assert.Contains(t, doc.Definitions, ref[1])
	}
	assert.Contains(t, doc.Definitions, "models.ErrorResponse")
	assert.Contains(t, doc.Definitions, "models.NextStep")
}
