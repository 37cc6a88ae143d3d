package contract

import (
	"encoding/json"
	"fmt"
)

// ActionType says which payload an action carries.
type ActionType string

const (
	ActionCreateProfile  ActionType = "create_profile"
	ActionUpdateProfile  ActionType = "update_profile"
	ActionCreateReminder ActionType = "create_reminder"
	ActionScheduleText   ActionType = "schedule_text"
)

// Action is one unit of downstream work. Exactly one of Profile, Reminder or
// Text is set, matching Type; on the wire the payload travels under "data".
type Action struct {
	Type     ActionType
	Profile  *ExtractedProfile
	Reminder *ReminderData
	Text     *TextData
}

type actionWire struct {
	Type ActionType      `json:"type"`
	Data json.RawMessage `json:"data"`
}

func (a Action) MarshalJSON() ([]byte, error) {
	var data any
	switch a.Type {
	case ActionCreateProfile, ActionUpdateProfile:
		data = a.Profile
	case ActionCreateReminder:
		data = a.Reminder
	case ActionScheduleText:
		data = a.Text
	default:
		return nil, fmt.Errorf("unknown action type %q", a.Type)
	}
	return json.Marshal(struct {
		Type ActionType `json:"type"`
		Data any        `json:"data"`
	}{Type: a.Type, Data: data})
}

func (a *Action) UnmarshalJSON(data []byte) error {
	var wire actionWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	*a = Action{Type: wire.Type}
	switch wire.Type {
	case ActionCreateProfile, ActionUpdateProfile:
		profile := &ExtractedProfile{}
		if err := unmarshalPayload(wire.Data, profile); err != nil {
			return err
		}
		profile.Normalize()
		a.Profile = profile
	case ActionCreateReminder:
		reminder := &ReminderData{}
		if err := unmarshalPayload(wire.Data, reminder); err != nil {
			return err
		}
		a.Reminder = reminder
	case ActionScheduleText:
		text := &TextData{}
		if err := unmarshalPayload(wire.Data, text); err != nil {
			return err
		}
		a.Text = text
	default:
		return fmt.Errorf("unknown action type %q", wire.Type)
	}
	return nil
}

func unmarshalPayload(raw json.RawMessage, dst any) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return json.Unmarshal(raw, dst)
}
