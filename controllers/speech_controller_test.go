package controllers_test

import (
	"encoding/base64"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRecipe(t *testing.T) {
	d := newTestDeps()
	d.synthesizer.audio = []byte("mp3 bytes")
	r := newTestRouter(d)

	w := postJSON(r, "/read-recipe", `{"text": "Preheat the oven to 220 degrees."}`)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("mp3 bytes")), body["audio_base64"])
}

func TestReadRecipeMissingText(t *testing.T) {
	r := newTestRouter(newTestDeps())

	w := postJSON(r, "/read-recipe", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No text provided", w.Body.String())
}

func TestReadRecipeSynthesisFailure(t *testing.T) {
	d := newTestDeps()
	d.synthesizer.err = errProvider
	r := newTestRouter(d)

	w := postJSON(r, "/read-recipe", `{"text": "hello"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
