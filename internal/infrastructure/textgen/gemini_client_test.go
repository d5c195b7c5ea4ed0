package textgen

import (
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
)

func TestTextOf(t *testing.T) {
	assert.Equal(t, "", textOf(nil))
	assert.Equal(t, "", textOf(&genai.GenerateContentResponse{}))

	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: nil},
			{Content: &genai.Content{Parts: []genai.Part{genai.Text("  ")}}},
			{Content: &genai.Content{Parts: []genai.Part{
				genai.Text("Plomero con 10 años "),
				genai.Blob{MIMEType: "image/png"},
				genai.Text("de experiencia.\n"),
			}}},
		},
	}
	assert.Equal(t, "Plomero con 10 años de experiencia.", textOf(resp))
}
