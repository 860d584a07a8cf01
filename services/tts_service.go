package services

import (
	"context"
	"fmt"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
)

// TTSService wraps the Cloud Text-to-Speech client.
type TTSService struct {
	client *texttospeech.Client
}

func NewTTSService(ctx context.Context) (*TTSService, error) {
	client, err := texttospeech.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("initializing text-to-speech client: %w", err)
	}
	return &TTSService{client: client}, nil
}

// Synthesize renders the text as MP3 audio with the en-US neutral voice.
func (s *TTSService) Synthesize(ctx context.Context, text string) ([]byte, error) {
	req := &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: "en-US",
			SsmlGender:   texttospeechpb.SsmlVoiceGender_NEUTRAL,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
		},
	}

	resp, err := s.client.SynthesizeSpeech(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("synthesizing speech: %w", err)
	}
	return resp.AudioContent, nil
}

func (s *TTSService) Close() error {
	return s.client.Close()
}
