package intelligence

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alexanderramin/ventureos/internal/domain"
	"github.com/alexanderramin/ventureos/internal/llm"
)

// VentureService turns a startup idea into a complete venture record.
type VentureService interface {
	// Generate makes exactly one attempt. Retries, if any, belong to the transport.
	Generate(ctx context.Context, idea string) (*domain.VentureData, error)
}

type ventureService struct {
	client llm.LLMClient
}

// NewVentureService creates a VentureService backed by an LLM client.
func NewVentureService(client llm.LLMClient) VentureService {
	return &ventureService{client: client}
}

func (s *ventureService) Generate(ctx context.Context, idea string) (*domain.VentureData, error) {
	idea, err := domain.NormalizeIdea(idea)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskVenture,
		SystemPrompt: ventureSystemPrompt,
		UserPrompt:   buildVenturePrompt(idea),
		JSONMode:     true,
	})
	if err != nil {
		return nil, fmt.Errorf("llm venture generation failed: %w", err)
	}

	obj, err := llm.ExtractJSONObject(resp.Text)
	if err != nil {
		return nil, err
	}
	if err := ValidateVentureJSON(obj); err != nil {
		return nil, err
	}

	data, err := llm.ExtractJSON[domain.VentureData](obj, validateVentureData)
	if err != nil {
		return nil, fmt.Errorf("failed to extract venture: %w", err)
	}
	data.Normalize()
	return &data, nil
}

func validateVentureData(v domain.VentureData) error {
	v.Normalize()
	return v.Validate()
}

// NewReachableVentureService probes the LLM server once and returns the
// LLM-backed service if it answers. An unreachable server falls back to the
// offline generator so the app still produces a venture.
func NewReachableVentureService(ctx context.Context, client llm.LLMClient, logger *slog.Logger) VentureService {
	if client.Available(ctx) {
		return NewVentureService(client)
	}
	if logger != nil {
		logger.Warn("llm_unavailable", "fallback", "offline")
	}
	return NewFallbackVentureService()
}
