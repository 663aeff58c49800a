package flows

import (
	"bytes"
	"text/template"

	"github.com/harentsoaR/swasth-api/internal/services"
)

type AnalyzeSymptomsInput struct {
	Symptoms string `json:"symptoms" validate:"required,min=10"`
}

type AnalyzeSymptomsOutput struct {
	PossibleConditions string `json:"possibleConditions" validate:"required"`
}

var analyzeSymptomsPrompt = template.Must(template.New("analyzeSymptoms").Parse(
	`You are a medical triage assistant. Based on the symptoms below, list the possible conditions they could point to, most likely first, with one short line on each. Say when the symptoms call for urgent care. Do not give a diagnosis or prescribe medication.

Symptoms: {{.Symptoms}}`))

func NewAnalyzeSymptoms(model Model) *Flow[AnalyzeSymptomsInput, AnalyzeSymptomsOutput] {
	return &Flow[AnalyzeSymptomsInput, AnalyzeSymptomsOutput]{
		Name:  "analyzeSymptomsFlow",
		model: model,
		schema: objectSchema(map[string]*services.GeminiSchema{
			"possibleConditions": stringSchema("Possible conditions matching the symptoms."),
		}, "possibleConditions"),
		prompt: func(in AnalyzeSymptomsInput) ([]services.GeminiPart, error) {
			return renderText(analyzeSymptomsPrompt, in)
		},
	}
}

func renderText(tmpl *template.Template, data any) ([]services.GeminiPart, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return []services.GeminiPart{{Text: buf.String()}}, nil
}
