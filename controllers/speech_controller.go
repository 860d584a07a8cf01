package controllers

import (
	"encoding/base64"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SpeechController struct {
	synthesizer SpeechSynthesizer
	logger      *zap.SugaredLogger
}

func NewSpeechController(synthesizer SpeechSynthesizer, logger *zap.SugaredLogger) *SpeechController {
	return &SpeechController{synthesizer: synthesizer, logger: logger}
}

// POST /read-recipe  {text}
// Synthesizes the text as MP3 audio and returns it base64-encoded.
func (sc *SpeechController) ReadRecipe(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Text == "" {
		c.String(http.StatusBadRequest, "No text provided")
		return
	}

	audio, err := sc.synthesizer.Synthesize(c.Request.Context(), req.Text)
	if err != nil {
		sc.logger.Errorw("speech synthesis failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"audio_base64": base64.StdEncoding.EncodeToString(audio),
	})
}
