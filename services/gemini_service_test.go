package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

type fakeModel struct {
	resp     *llms.ContentResponse
	err      error
	gotParts []llms.ContentPart
}

func (f *fakeModel) GenerateContent(_ context.Context, messages []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	if len(messages) > 0 {
		f.gotParts = messages[0].Parts
	}
	return f.resp, f.err
}

func (f *fakeModel) Call(_ context.Context, _ string, _ ...llms.CallOption) (string, error) {
	panic("single-prompt calls go through GenerateContent")
}

func modelReply(text string) *llms.ContentResponse {
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: text}}}
}

func TestEstimateActivityKcal(t *testing.T) {
	fake := &fakeModel{resp: modelReply("320")}
	s := &GeminiService{llm: fake}

	kcal, err := s.EstimateActivityKcal(context.Background(), "ran 5 km", "Age: 30, Weight: 75 kg")
	require.NoError(t, err)
	assert.Equal(t, 320, kcal)

	// The activity and the profile context both reach the model.
	require.Len(t, fake.gotParts, 1)
	prompt := fake.gotParts[0].(llms.TextContent).Text
	assert.Contains(t, prompt, "Activity: ran 5 km (Age: 30, Weight: 75 kg)")
}

func TestEstimateActivityKcalWithoutProfile(t *testing.T) {
	fake := &fakeModel{resp: modelReply("120")}
	s := &GeminiService{llm: fake}

	kcal, err := s.EstimateActivityKcal(context.Background(), "yoga", "")
	require.NoError(t, err)
	assert.Equal(t, 120, kcal)

	prompt := fake.gotParts[0].(llms.TextContent).Text
	assert.Contains(t, prompt, "Activity: yoga")
	assert.NotContains(t, prompt, "(")
}

func TestEstimateActivityKcalTrimsWhitespace(t *testing.T) {
	s := &GeminiService{llm: &fakeModel{resp: modelReply("\n 320 \n")}}

	kcal, err := s.EstimateActivityKcal(context.Background(), "ran", "")
	require.NoError(t, err)
	assert.Equal(t, 320, kcal)
}

func TestEstimateActivityKcalRejectsNonInteger(t *testing.T) {
	for _, reply := range []string{"320 kcal", "-5", "three hundred", "3.5", ""} {
		s := &GeminiService{llm: &fakeModel{resp: modelReply(reply)}}
		_, err := s.EstimateActivityKcal(context.Background(), "ran", "")
		assert.ErrorIs(t, err, ErrInvalidModelOutput, "reply %q", reply)
	}
}

func TestEstimateActivityKcalModelFailure(t *testing.T) {
	s := &GeminiService{llm: &fakeModel{err: context.DeadlineExceeded}}

	_, err := s.EstimateActivityKcal(context.Background(), "ran", "")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidModelOutput)
}

func TestExtractFoodItemsParsesReply(t *testing.T) {
	fake := &fakeModel{resp: modelReply("['Pizza', 'Sushi']")}
	s := &GeminiService{llm: fake}

	image := []byte{0xFF, 0xD8, 0xFF}
	items, err := s.ExtractFoodItems(context.Background(), image, "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, []string{"Pizza", "Sushi"}, items)

	// Prompt text plus the raw image bytes travel in one message.
	require.Len(t, fake.gotParts, 2)
	bin := fake.gotParts[1].(llms.BinaryContent)
	assert.Equal(t, "image/jpeg", bin.MIMEType)
	assert.Equal(t, image, bin.Data)
}

func TestExtractFoodItemsEmptyList(t *testing.T) {
	s := &GeminiService{llm: &fakeModel{resp: modelReply("[]")}}

	items, err := s.ExtractFoodItems(context.Background(), []byte{1}, "image/png")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestExtractFoodItemsMalformedReply(t *testing.T) {
	s := &GeminiService{llm: &fakeModel{resp: modelReply("It looks like a pizza")}}

	_, err := s.ExtractFoodItems(context.Background(), []byte{1}, "image/png")
	assert.ErrorIs(t, err, ErrMalformedModelOutput)
}

func TestExtractFoodItemsNoChoices(t *testing.T) {
	s := &GeminiService{llm: &fakeModel{resp: &llms.ContentResponse{}}}

	_, err := s.ExtractFoodItems(context.Background(), []byte{1}, "image/png")
	assert.ErrorIs(t, err, ErrMalformedModelOutput)
}

func TestIsDigits(t *testing.T) {
	assert.True(t, isDigits("0"))
	assert.True(t, isDigits("320"))
	assert.False(t, isDigits(""))
	assert.False(t, isDigits("-5"))
	assert.False(t, isDigits("3.5"))
	assert.False(t, isDigits("32 "))
}
