// schema.go
//
// Multi-step job application form state service.
// JSON-Schema validation of request bodies against embedded schemas.

package validation

import (
	"fmt"

	"github.com/hireflow/formstate/data"
	"github.com/hireflow/formstate/internal/types"
	"github.com/xeipuuv/gojsonschema"
)

// Step bounds for the wizard: personal info, job interest, notifications,
// confirmation.
const (
	MinStep = 1
	MaxStep = 4
)

var (
	saveStateSchema  = mustCompile(data.SchemaSaveState)
	updateStepSchema = mustCompile(data.SchemaUpdateStep)
	submitSchema     = mustCompile(data.SchemaSubmit)
	roleSearchSchema = mustCompile(data.SchemaRoleSearch)
)

func mustCompile(src string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("embedded schema does not compile: %v", err))
	}
	return schema
}

func validate(schema *gojsonschema.Schema, body []byte) error {
	result, err := schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return types.NewValidationError("malformed request body")
	}

	if !result.Valid() {
		details := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			details[i] = desc.String()
		}
		return types.NewValidationError("request validation failed", details...)
	}

	return nil
}

// ValidateSaveState checks a save-state body against its schema.
func ValidateSaveState(body []byte) error {
	return validate(saveStateSchema, body)
}

// ValidateUpdateStep checks an update-step body against its schema.
func ValidateUpdateStep(body []byte) error {
	return validate(updateStepSchema, body)
}

// ValidateSubmit checks a submit body against its schema.
func ValidateSubmit(body []byte) error {
	return validate(submitSchema, body)
}

// ValidateRoleSearch checks a role-search body against its schema.
func ValidateRoleSearch(body []byte) error {
	return validate(roleSearchSchema, body)
}

// CheckStep rejects step numbers outside the wizard range.
func CheckStep(step int) error {
	if step < MinStep || step > MaxStep {
		return types.NewValidationError(
			fmt.Sprintf("currentStep must be between %d and %d", MinStep, MaxStep))
	}
	return nil
}

// CheckSessionID rejects an empty session identifier.
func CheckSessionID(sessionID string) error {
	if sessionID == "" {
		return types.NewValidationError("sessionId is required")
	}
	return nil
}
