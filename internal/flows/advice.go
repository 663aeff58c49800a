package flows

import (
	"strings"
	"text/template"

	"github.com/harentsoaR/swasth-api/internal/services"
)

// MedicalDisclaimer accompanies every piece of advice.
const MedicalDisclaimer = "This information is not a substitute for professional medical advice. Always consult with a qualified healthcare provider for any questions you may have regarding your health."

type MedicalAdviceInput struct {
	Symptoms string `json:"symptoms" validate:"required"`
}

type MedicalAdviceOutput struct {
	Advice     string `json:"advice" validate:"required"`
	Disclaimer string `json:"disclaimer" validate:"required"`
}

var medicalAdvicePrompt = template.Must(template.New("medicalAdvice").Parse(
	`You are a healthcare assistant. Suggest possible conditions for the following symptoms:

Symptoms: {{.Symptoms}}

Do not give a diagnosis or prescribe medication. Include the following disclaimer in your response:

"{{.Disclaimer}}"`))

func NewMedicalAdvice(model Model) *Flow[MedicalAdviceInput, MedicalAdviceOutput] {
	return &Flow[MedicalAdviceInput, MedicalAdviceOutput]{
		Name:  "suggestMedicalAdviceFlow",
		model: model,
		schema: objectSchema(map[string]*services.GeminiSchema{
			"advice":     stringSchema("Possible medical advice based on the provided symptoms."),
			"disclaimer": stringSchema("A disclaimer informing the user that the advice is not a substitute for professional medical consultation."),
		}, "advice", "disclaimer"),
		prompt: func(in MedicalAdviceInput) ([]services.GeminiPart, error) {
			return renderText(medicalAdvicePrompt, struct {
				Symptoms   string
				Disclaimer string
			}{in.Symptoms, MedicalDisclaimer})
		},
		fill: func(out *MedicalAdviceOutput) {
			if strings.TrimSpace(out.Disclaimer) == "" {
				out.Disclaimer = MedicalDisclaimer
			}
		},
	}
}
