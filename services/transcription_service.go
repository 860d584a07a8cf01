package services

import (
	"context"
	"fmt"
	"os"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
)

// TranscriptionService wraps the AssemblyAI client.
type TranscriptionService struct {
	client *aai.Client
}

func NewTranscriptionService(apiKey string) *TranscriptionService {
	return &TranscriptionService{client: aai.NewClient(apiKey)}
}

// TranscribeFile uploads the saved audio artifact and waits for the
// transcript. Any provider failure, including an "error" transcript
// status, comes back wrapped in ErrTranscription.
func (s *TranscriptionService) TranscribeFile(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening audio file: %w", err)
	}
	defer f.Close()

	params := &aai.TranscriptOptionalParams{
		SpeechModel: aai.SpeechModelBest,
	}
	transcript, err := s.client.Transcripts.TranscribeFromReader(ctx, f, params)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTranscription, err)
	}
	if transcript.Status == aai.TranscriptStatusError {
		detail := ""
		if transcript.Error != nil {
			detail = *transcript.Error
		}
		return "", fmt.Errorf("%w: %s", ErrTranscription, detail)
	}
	if transcript.Text == nil {
		return "", fmt.Errorf("%w: empty transcript", ErrTranscription)
	}
	return *transcript.Text, nil
}
