package service

import (
	"context"

	"github.com/sashabaranov/go-openai"

	"github.com/goalaura/goalaura-backend/internal/infrastructure/llm"
)

// fakeClient scripts the model responses per call site.
type fakeClient struct {
	generate func(llm.Request) (string, error)
	withTool func(llm.Request, llm.ToolRunner) (string, error)
}

func (f *fakeClient) Generate(_ context.Context, req llm.Request) (string, error) {
	return f.generate(req)
}

func (f *fakeClient) GenerateWithTool(_ context.Context, req llm.Request, _ openai.Tool, run llm.ToolRunner) (string, error) {
	return f.withTool(req, run)
}
