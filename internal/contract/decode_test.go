package contract

import (
	"encoding/json"
	"testing"
)

func TestDecodeIntentResultValid(t *testing.T) {
	raw := `{
		"intent": "create_profile",
		"confidence": 0.9,
		"actions": [{"type": "create_profile", "data": {"name": "Sarah", "relationship": "friend"}}],
		"response": "Saved Sarah as a friend."
	}`
	res, err := DecodeIntentResult(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Intent != IntentCreateProfile {
		t.Fatalf("unexpected intent %q", res.Intent)
	}
	if len(res.Actions) != 1 || res.Actions[0].Profile == nil {
		t.Fatalf("expected one profile action, got %+v", res.Actions)
	}
	profile := res.Actions[0].Profile
	if profile.Name != "Sarah" || profile.Relationship != RelFriend {
		t.Fatalf("unexpected profile %+v", profile)
	}
	if profile.Kids == nil || profile.Likes == nil || profile.Tags == nil {
		t.Fatalf("list fields must be normalized to empty, got %+v", profile)
	}
}

func TestDecodeIntentResultRepairsLooseJSON(t *testing.T) {
	raw := `{
		"intent": "clarify",
		"confidence": 0.4,
		"actions": [],
		"response": "Which Sarah do you mean?",
		"clarification": "Which Sarah do you mean?",
	}`
	res, err := DecodeIntentResult(raw)
	if err != nil {
		t.Fatalf("trailing comma should be repaired, got: %v", err)
	}
	if res.Intent != IntentClarify || res.Clarification == "" {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestDecodeIntentResultRejectsUnknownIntent(t *testing.T) {
	raw := `{"intent": "order_pizza", "confidence": 0.9, "actions": [], "response": "ok"}`
	if _, err := DecodeIntentResult(raw); err == nil {
		t.Fatalf("expected a contract violation")
	}
}

func TestDecodeIntentResultRejectsProse(t *testing.T) {
	if _, err := DecodeIntentResult("I am sorry, I cannot help with that."); err == nil {
		t.Fatalf("expected an error for a non-JSON response")
	}
}

func TestDecodeReminderResolutionValid(t *testing.T) {
	raw := `{
		"action": "create",
		"title": "Call mom",
		"description": "Ask about the surgery",
		"type": "health",
		"scheduledFor": "2024-06-02T12:00:00Z",
		"response": "Done, I'll remind you."
	}`
	res, err := DecodeReminderResolution(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Action != ReplyCreate || res.Title != "Call mom" || res.Type != ReminderHealth {
		t.Fatalf("unexpected resolution %+v", res)
	}
}

func TestDecodeReminderResolutionRejectsUnknownAction(t *testing.T) {
	raw := `{"action": "snooze", "response": "ok"}`
	if _, err := DecodeReminderResolution(raw); err == nil {
		t.Fatalf("expected a contract violation")
	}
}

func TestActionRoundTrip(t *testing.T) {
	in := Action{
		Type: ActionCreateReminder,
		Reminder: &ReminderData{
			Title:        "Follow up",
			ReminderType: ReminderGeneral,
			ScheduledFor: "2024-06-08T12:00:00Z",
		},
	}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out Action
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Type != ActionCreateReminder || out.Reminder == nil || out.Reminder.Title != "Follow up" {
		t.Fatalf("round trip mangled the action: %+v", out)
	}
}

func TestActionNullPayload(t *testing.T) {
	var a Action
	if err := json.Unmarshal([]byte(`{"type": "create_profile", "data": null}`), &a); err != nil {
		t.Fatalf("null payload must decode: %v", err)
	}
	if a.Profile == nil || a.Profile.Name != UnknownName {
		t.Fatalf("expected a normalized empty profile, got %+v", a.Profile)
	}
}

func TestActionUnknownType(t *testing.T) {
	var a Action
	if err := json.Unmarshal([]byte(`{"type": "launch_rocket", "data": {}}`), &a); err == nil {
		t.Fatalf("expected an error for an unknown action type")
	}
}
