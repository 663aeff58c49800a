// Package flows wraps single calls to the language model. Each flow checks
// its typed input, renders a fixed prompt, asks the model for JSON matching
// the output schema and checks the decoded output before returning it.
package flows

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/harentsoaR/swasth-api/internal/services"
)

var (
	ErrInvalidInput  = errors.New("invalid flow input")
	ErrInvalidOutput = errors.New("model output did not match the expected shape")
)

// Model is the language model a flow talks to.
type Model interface {
	GenerateJSON(ctx context.Context, parts []services.GeminiPart, schema *services.GeminiSchema) ([]byte, error)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Flow is a named request/response wrapper around one model call.
type Flow[In, Out any] struct {
	Name   string
	model  Model
	schema *services.GeminiSchema
	prompt func(In) ([]services.GeminiPart, error)
	// fill may patch optional output fields before validation.
	fill func(*Out)
}

// Run executes the flow.
func (f *Flow[In, Out]) Run(ctx context.Context, in In) (*Out, error) {
	if err := validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, describe(err))
	}

	parts, err := f.prompt(in)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	raw, err := f.model.GenerateJSON(ctx, parts, f.schema)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.Name, err)
	}

	var out Out
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", f.Name, ErrInvalidOutput, err)
	}
	if f.fill != nil {
		f.fill(&out)
	}
	if err := validate.Struct(out); err != nil {
		return nil, fmt.Errorf("%s: %w: %s", f.Name, ErrInvalidOutput, describe(err))
	}
	return &out, nil
}

// describe turns validator errors into a short message naming the fields.
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msg := ""
	for i, fe := range verrs {
		if i > 0 {
			msg += "; "
		}
		switch fe.Tag() {
		case "required":
			msg += fe.Field() + " is required"
		case "min":
			msg += fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
		case "max":
			msg += fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
		default:
			msg += fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
		}
	}
	return msg
}

func stringSchema(description string) *services.GeminiSchema {
	return &services.GeminiSchema{Type: "STRING", Description: description}
}

func objectSchema(properties map[string]*services.GeminiSchema, required ...string) *services.GeminiSchema {
	return &services.GeminiSchema{Type: "OBJECT", Properties: properties, Required: required}
}
