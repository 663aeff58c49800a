package flows

import (
	"encoding/base64"
	"errors"
	"strings"

	"github.com/harentsoaR/swasth-api/internal/services"
)

type ExtractPrescriptionTextInput struct {
	// ImageDataURI is a photo of a prescription: data:<mimetype>;base64,<data>
	ImageDataURI string `json:"imageDataUri" validate:"required"`
}

type ExtractPrescriptionTextOutput struct {
	ExtractedText string `json:"extractedText" validate:"required"`
}

const extractPrescriptionPrompt = "You are an OCR tool specialized in reading medical prescriptions. Extract all the text you can from the following image."

var errBadDataURI = errors.New("imageDataUri must be a base64 data URI with a MIME type")

// ParseDataURI splits a base64 data URI into its MIME type and payload.
func ParseDataURI(uri string) (mimeType, data string, err error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return "", "", errBadDataURI
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", "", errBadDataURI
	}
	params, ok := strings.CutSuffix(meta, ";base64")
	if !ok {
		return "", "", errBadDataURI
	}
	// Parameters such as charset are dropped; Gemini wants a bare type.
	mimeType, _, _ = strings.Cut(params, ";")
	if mimeType == "" || !strings.Contains(mimeType, "/") {
		return "", "", errBadDataURI
	}
	if payload == "" {
		return "", "", errBadDataURI
	}
	if _, err := base64.StdEncoding.DecodeString(payload); err != nil {
		return "", "", errBadDataURI
	}
	return mimeType, payload, nil
}

func NewExtractPrescriptionText(model Model) *Flow[ExtractPrescriptionTextInput, ExtractPrescriptionTextOutput] {
	return &Flow[ExtractPrescriptionTextInput, ExtractPrescriptionTextOutput]{
		Name:  "extractPrescriptionTextFlow",
		model: model,
		schema: objectSchema(map[string]*services.GeminiSchema{
			"extractedText": stringSchema("The extracted text from the prescription."),
		}, "extractedText"),
		prompt: func(in ExtractPrescriptionTextInput) ([]services.GeminiPart, error) {
			mimeType, data, err := ParseDataURI(in.ImageDataURI)
			if err != nil {
				return nil, err
			}
			return []services.GeminiPart{
				{Text: extractPrescriptionPrompt + "\n\nPhoto:"},
				{InlineData: &services.GeminiInlineData{MIMEType: mimeType, Data: data}},
			}, nil
		},
	}
}
