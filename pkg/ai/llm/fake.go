package llm

import (
	"context"
	"errors"
	"sync"
)

// FakeClient is an in-memory LLMClient and Transcriber for tests. Replies
// are returned in order; the last one repeats once the queue is drained.
type FakeClient struct {
	mu         sync.Mutex
	Replies    []string
	Err        error
	Transcript string
	Requests   []ChatRequest
}

// NewFakeClient returns a fake that answers with the given replies
func NewFakeClient(replies ...string) *FakeClient {
	return &FakeClient{Replies: replies}
}

// Chat records the request and returns the next canned reply
func (f *FakeClient) Chat(_ context.Context, req ChatRequest) (*ChatResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Requests = append(f.Requests, req)
	if f.Err != nil {
		return nil, f.Err
	}
	if len(f.Replies) == 0 {
		return nil, errors.New("fake client has no replies")
	}
	reply := f.Replies[0]
	if len(f.Replies) > 1 {
		f.Replies = f.Replies[1:]
	}
	return &ChatResponse{Message: reply, TokensUsed: len(reply), FinishReason: "stop"}, nil
}

// Complete implements LLMClient
func (f *FakeClient) Complete(ctx context.Context, prompt string, systemPrompt ...string) (string, error) {
	resp, err := f.Chat(ctx, ChatRequest{Messages: completeMessages(prompt, systemPrompt)})
	if err != nil {
		return "", err
	}
	return resp.Message, nil
}

// Transcribe implements Transcriber
func (f *FakeClient) Transcribe(_ context.Context, _ []byte, _ string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return "", f.Err
	}
	return f.Transcript, nil
}

// Calls returns how many chat requests were made
func (f *FakeClient) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Requests)
}

// LastRequest returns the most recent chat request
func (f *FakeClient) LastRequest() ChatRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.Requests) == 0 {
		return ChatRequest{}
	}
	return f.Requests[len(f.Requests)-1]
}
