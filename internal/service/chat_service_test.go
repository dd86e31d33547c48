package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrsameer/rag-with-gemini/internal/constant"
	"github.com/mrsameer/rag-with-gemini/internal/entity"
	"github.com/mrsameer/rag-with-gemini/internal/pkg/apperror"
	"github.com/mrsameer/rag-with-gemini/internal/repository/memory"
	"github.com/mrsameer/rag-with-gemini/pkg/genai"
)

type fakeGenerator struct {
	lastModel string
	lastReq   *genai.GenerateContentRequest
	response  *genai.GenerateContentResponse
	err       error
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, model string, req *genai.GenerateContentRequest) (*genai.GenerateContentResponse, error) {
	f.lastModel = model
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []genai.Candidate{
			{Content: &genai.Content{Parts: []genai.Part{{Text: text}}}},
		},
	}
}

func newTestChatService(gen *fakeGenerator) (IChatService, *memory.SessionRepository) {
	fake := newFakeFileSearchAPI()
	repo := memory.NewSessionRepository()
	storeSvc := NewStoreService(fake, repo, nopLogger{}, "", "default-store")
	return NewChatService(gen, storeSvc, repo, nopLogger{}, "gemini-2.5-flash"), repo
}

func TestAskAppendsBothTurns(t *testing.T) {
	gen := &fakeGenerator{response: textResponse("Paris is the capital of France.")}
	svc, repo := newTestChatService(gen)
	session := &entity.Session{Id: "s-1"}
	repo.Save(session)

	answer, err := svc.Ask(context.Background(), session, "What is the capital of France?", false)
	require.NoError(t, err)
	assert.Equal(t, "Paris is the capital of France.", answer.Text)

	require.Len(t, session.Messages, 2)
	assert.Equal(t, constant.ChatMessageRoleUser, session.Messages[0].Role)
	assert.Equal(t, "What is the capital of France?", session.Messages[0].Content)
	assert.Equal(t, constant.ChatMessageRoleModel, session.Messages[1].Role)
	assert.Equal(t, "Paris is the capital of France.", session.Messages[1].Content)
}

func TestAskAttachesExactlyOneTool(t *testing.T) {
	gen := &fakeGenerator{response: textResponse("ok")}
	svc, repo := newTestChatService(gen)
	session := &entity.Session{Id: "s-1"}
	repo.Save(session)

	_, err := svc.Ask(context.Background(), session, "query", false)
	require.NoError(t, err)
	require.Len(t, gen.lastReq.Tools, 1)
	assert.NotNil(t, gen.lastReq.Tools[0].FileSearch)
	assert.Nil(t, gen.lastReq.Tools[0].GoogleSearch)
	assert.Equal(t, []string{session.ActiveStore}, gen.lastReq.Tools[0].FileSearch.FileSearchStoreNames)

	_, err = svc.Ask(context.Background(), session, "query", true)
	require.NoError(t, err)
	require.Len(t, gen.lastReq.Tools, 1)
	assert.Nil(t, gen.lastReq.Tools[0].FileSearch)
	assert.NotNil(t, gen.lastReq.Tools[0].GoogleSearch)
}

func TestAskEmptyAnswerFallback(t *testing.T) {
	gen := &fakeGenerator{response: &genai.GenerateContentResponse{}}
	svc, repo := newTestChatService(gen)
	session := &entity.Session{Id: "s-1"}
	repo.Save(session)

	answer, err := svc.Ask(context.Background(), session, "anything", false)
	require.NoError(t, err)
	assert.Equal(t, constant.EmptyAnswerFallback, answer.Text)

	// The fallback text is what lands in the transcript.
	require.Len(t, session.Messages, 2)
	assert.Equal(t, constant.EmptyAnswerFallback, session.Messages[1].Content)
}

func TestAskGenerationFailure(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("model overloaded")}
	svc, repo := newTestChatService(gen)
	session := &entity.Session{Id: "s-1"}
	repo.Save(session)

	_, err := svc.Ask(context.Background(), session, "anything", false)
	require.Error(t, err)
	assert.Equal(t, apperror.KindGenerationFailed, apperror.KindOf(err))
	assert.Empty(t, session.Messages, "a failed turn must not touch the transcript")
}

func TestAskEmptyQuery(t *testing.T) {
	gen := &fakeGenerator{response: textResponse("ok")}
	svc, repo := newTestChatService(gen)
	session := &entity.Session{Id: "s-1"}
	repo.Save(session)

	_, err := svc.Ask(context.Background(), session, "   ", false)
	require.Error(t, err)
	assert.Equal(t, apperror.KindInvalidArgument, apperror.KindOf(err))
}

func TestClearHistory(t *testing.T) {
	gen := &fakeGenerator{response: textResponse("ok")}
	svc, repo := newTestChatService(gen)
	session := &entity.Session{Id: "s-1"}
	repo.Save(session)

	_, err := svc.Ask(context.Background(), session, "q", false)
	require.NoError(t, err)
	require.NotEmpty(t, svc.History(context.Background(), session))

	require.NoError(t, svc.ClearHistory(context.Background(), session))
	assert.Empty(t, svc.History(context.Background(), session))
}
