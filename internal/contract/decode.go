package contract

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/kaptinlin/jsonrepair"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/intent_result.json
var intentResultSchemaJSON string

//go:embed schemas/reminder_resolution.json
var reminderResolutionSchemaJSON string

var (
	intentResultSchema       = jsonschema.MustCompileString("intent_result.json", intentResultSchemaJSON)
	reminderResolutionSchema = jsonschema.MustCompileString("reminder_resolution.json", reminderResolutionSchemaJSON)
)

// DecodeIntentResult parses a collaborator response into an IntentResult.
// Malformed JSON gets one repair attempt; anything that still fails the
// schema is an error, which callers treat as "collaborator unavailable".
func DecodeIntentResult(raw string) (IntentResult, error) {
	data, probe, err := repairAndProbe(raw)
	if err != nil {
		return IntentResult{}, err
	}
	if err := intentResultSchema.Validate(probe); err != nil {
		return IntentResult{}, fmt.Errorf("intent result violates contract: %w", err)
	}
	var res IntentResult
	if err := json.Unmarshal(data, &res); err != nil {
		return IntentResult{}, err
	}
	res.Normalize()
	return res, nil
}

// DecodeReminderResolution parses a collaborator reply-resolution response.
func DecodeReminderResolution(raw string) (ReminderResolution, error) {
	data, probe, err := repairAndProbe(raw)
	if err != nil {
		return ReminderResolution{}, err
	}
	if err := reminderResolutionSchema.Validate(probe); err != nil {
		return ReminderResolution{}, fmt.Errorf("reminder resolution violates contract: %w", err)
	}
	var res ReminderResolution
	if err := json.Unmarshal(data, &res); err != nil {
		return ReminderResolution{}, err
	}
	return res, nil
}

// repairAndProbe unmarshals raw into a generic value for schema validation,
// running the payload through jsonrepair when it is not valid JSON. Models
// occasionally emit trailing commas or fenced blocks; repairing is cheaper
// than a retry round-trip.
func repairAndProbe(raw string) ([]byte, any, error) {
	data := []byte(raw)
	var probe any
	err := json.Unmarshal(data, &probe)
	if err == nil {
		return data, probe, nil
	}
	fixed, repairErr := jsonrepair.JSONRepair(raw)
	if repairErr != nil {
		return nil, nil, fmt.Errorf("response is not JSON: %w", err)
	}
	data = []byte(fixed)
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, nil, fmt.Errorf("response is not JSON after repair: %w", err)
	}
	return data, probe, nil
}
