package intelligence

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/alexanderramin/ventureos/internal/domain"
	"github.com/alexanderramin/ventureos/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ventureMockClient struct {
	response string
	err      error
	calls    int
	lastReq  llm.GenerateRequest
}

func (m *ventureMockClient) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	m.calls++
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return &llm.GenerateResponse{Text: m.response, Model: "llama3.2"}, nil
}

func (m *ventureMockClient) Available(_ context.Context) bool { return m.err == nil }

const pawPathJSON = `{
  "config": {
    "projectName": "PawPath",
    "tagline": "Walks on demand",
    "brandColors": {"primary": "#39ff14", "secondary": "#00b3ff", "background": "#05080a"},
    "pricingModel": {"type": "Commission", "basePrice": 15, "premiumMultiplier": 3, "currencySymbol": "$"},
    "databaseSchema": {"tables": [{"name": "users", "columns": ["id", "email"]}, {"name": "walks", "columns": ["id", "dog_id"]}]},
    "featureFlags": {"mvp": ["Booking"], "v2": ["GPS replay"]}
  },
  "strategy": {"problemStatement": "p", "solutionDescription": "s", "monetizationStrategy": "m"},
  "deck": {
    "slide4BusinessModel": {"title": "Model", "points": ["15% per walk"], "projectedRevenueYear1": "$1.2M"},
    "slide7TheAsk": {"amount": "$500k", "equity": "10%", "runwayMonths": 18, "useOfFunds": ["Growth"]}
  }
}`

func TestVentureService_Generate_ParsesRecord(t *testing.T) {
	client := &ventureMockClient{response: "```json\n" + pawPathJSON + "\n```"}
	svc := NewVentureService(client)

	data, err := svc.Generate(context.Background(), "  dog walking app  ")
	require.NoError(t, err)
	require.NotNil(t, data)

	assert.Equal(t, "PawPath", data.Config.ProjectName)
	assert.Equal(t, domain.PricingCommission, data.Config.PricingModel.Type)
	assert.Len(t, data.Config.DatabaseSchema.Tables, 2)
	assert.Equal(t, []string{"Growth"}, data.Deck.Slide7TheAsk.UseOfFunds)

	assert.Equal(t, 1, client.calls)
	assert.Equal(t, llm.TaskVenture, client.lastReq.Task)
	assert.True(t, client.lastReq.JSONMode)
	assert.Contains(t, client.lastReq.UserPrompt, "dog walking app")
	assert.NotContains(t, client.lastReq.UserPrompt, "  dog")
}

func TestVentureService_Generate_NormalizesPartialRecord(t *testing.T) {
	client := &ventureMockClient{response: `{"config":{"projectName":"Sparse"}}`}
	data, err := NewVentureService(client).Generate(context.Background(), "anything")
	require.NoError(t, err)

	assert.Equal(t, "Sparse", data.Config.ProjectName)
	assert.Equal(t, domain.PricingSubscription, data.Config.PricingModel.Type)
	assert.NotNil(t, data.Config.DatabaseSchema.Tables)
	assert.NotNil(t, data.Config.FeatureFlags.MVP)
	assert.Equal(t, 18, data.Deck.Slide7TheAsk.RunwayMonths)
}

func TestVentureService_Generate_EmptyIdea(t *testing.T) {
	client := &ventureMockClient{response: pawPathJSON}
	_, err := NewVentureService(client).Generate(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrEmptyIdea)
	assert.Equal(t, 0, client.calls)
}

func TestVentureService_Generate_TransportErrorWrapped(t *testing.T) {
	client := &ventureMockClient{err: llm.ErrOllamaUnavailable}
	_, err := NewVentureService(client).Generate(context.Background(), "dog walking app")
	assert.ErrorIs(t, err, llm.ErrOllamaUnavailable)
	assert.Equal(t, 1, client.calls)
}

func TestVentureService_Generate_RejectsSchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "Sorry, I can't do that."},
		{"missing config", `{"strategy":{}}`},
		{"empty name", `{"config":{"projectName":""}}`},
		{"unknown pricing", `{"config":{"projectName":"X","pricingModel":{"type":"Barter"}}}`},
		{"negative price", `{"config":{"projectName":"X","pricingModel":{"basePrice":-1}}}`},
		{"table without name", `{"config":{"projectName":"X","databaseSchema":{"tables":[{"columns":["id"]}]}}}`},
		{"wrong type", `{"config":{"projectName":"X","featureFlags":{"mvp":"everything"}}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &ventureMockClient{response: tt.body}
			_, err := NewVentureService(client).Generate(context.Background(), "idea")
			assert.ErrorIs(t, err, llm.ErrInvalidOutput)
		})
	}
}

func TestValidateVentureJSON_AcceptsPlaceholderShape(t *testing.T) {
	data := domain.Placeholder()
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	assert.NoError(t, ValidateVentureJSON(string(raw)))
}

func TestValidateVentureJSON_ListsEveryViolation(t *testing.T) {
	err := ValidateVentureJSON(`{"config":{"projectName":"","pricingModel":{"type":"Barter"}}}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "projectName")
	assert.Contains(t, err.Error(), "type")
}

func TestNewReachableVentureService_UsesLLMWhenAvailable(t *testing.T) {
	client := &ventureMockClient{response: pawPathJSON}
	svc := NewReachableVentureService(context.Background(), client, nil)

	data, err := svc.Generate(context.Background(), "dog walking app")
	require.NoError(t, err)
	assert.Equal(t, "PawPath", data.Config.ProjectName)
	assert.Equal(t, 1, client.calls)
}

func TestNewReachableVentureService_FallsBackWhenUnavailable(t *testing.T) {
	client := &ventureMockClient{err: llm.ErrOllamaUnavailable}
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	svc := NewReachableVentureService(context.Background(), client, logger)
	assert.IsType(t, fallbackVentureService{}, svc)
	assert.Contains(t, logs.String(), "llm_unavailable")

	data, err := svc.Generate(context.Background(), "dog walking app")
	require.NoError(t, err)
	assert.NotEmpty(t, data.Config.ProjectName)
	assert.Zero(t, client.calls)
}
