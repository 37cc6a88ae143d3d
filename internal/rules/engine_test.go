package rules

import (
	"context"
	"testing"
	"time"

	"rapport/internal/contract"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func fixedEngine() *Engine {
	engine := NewEngine()
	engine.Now = func() time.Time { return fixedNow }
	return engine
}

func TestProcessInteractionFixedShape(t *testing.T) {
	engine := fixedEngine()
	inputs := []string{
		"Remind me to call mom next week",
		"Schedule a text to Sarah tomorrow saying Happy birthday!",
		"I met Sarah at the gym yesterday",
		"",
	}
	for _, input := range inputs {
		res, err := engine.ProcessInteraction(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", input, err)
		}
		if res.Confidence != Confidence {
			t.Fatalf("expected confidence %v for %q, got %v", Confidence, input, res.Confidence)
		}
		if len(res.Actions) != 1 {
			t.Fatalf("expected exactly one action for %q, got %d", input, len(res.Actions))
		}
		if res.Clarification != "" {
			t.Fatalf("deterministic path must never clarify, got %q", res.Clarification)
		}
		if res.Response == "" {
			t.Fatalf("expected an acknowledgment for %q", input)
		}
	}
}

func TestProcessInteractionReminder(t *testing.T) {
	res, _ := fixedEngine().ProcessInteraction(context.Background(), "Remind me to call mom next week")
	if res.Intent != contract.IntentCreateReminder {
		t.Fatalf("expected create_reminder, got %q", res.Intent)
	}
	action := res.Actions[0]
	if action.Type != contract.ActionCreateReminder || action.Reminder == nil {
		t.Fatalf("expected a reminder action, got %+v", action)
	}
	if action.Reminder.Title != "Follow up reminder" {
		t.Fatalf("unexpected title %q", action.Reminder.Title)
	}
	if action.Reminder.ReminderType != contract.ReminderGeneral {
		t.Fatalf("unexpected type %q", action.Reminder.ReminderType)
	}
	if action.Reminder.ScheduledFor != "2024-06-08T12:00:00Z" {
		t.Fatalf("expected now+7d, got %q", action.Reminder.ScheduledFor)
	}
	if action.Reminder.ProfileID != nil {
		t.Fatalf("profileId must be absent")
	}
}

func TestProcessInteractionScheduleText(t *testing.T) {
	res, _ := fixedEngine().ProcessInteraction(context.Background(), "Schedule a text to Sarah tomorrow saying Happy birthday!")
	if res.Intent != contract.IntentScheduleText {
		t.Fatalf("expected schedule_text, got %q", res.Intent)
	}
	action := res.Actions[0]
	if action.Type != contract.ActionScheduleText || action.Text == nil {
		t.Fatalf("expected a text action, got %+v", action)
	}
	if action.Text.PhoneNumber == "" || action.Text.Message == "" {
		t.Fatalf("expected placeholder payload, got %+v", action.Text)
	}
	if action.Text.ScheduledFor != "2024-06-02T12:00:00Z" {
		t.Fatalf("expected now+1d, got %q", action.Text.ScheduledFor)
	}
}

func TestReminderBeatsText(t *testing.T) {
	res, _ := fixedEngine().ProcessInteraction(context.Background(), "Send a reminder text")
	if res.Intent != contract.IntentCreateReminder {
		t.Fatalf("reminder keyword must win, got %q", res.Intent)
	}
}

func TestProcessInteractionProfile(t *testing.T) {
	input := "I met Sarah at the gym yesterday"
	res, _ := fixedEngine().ProcessInteraction(context.Background(), input)
	if res.Intent != contract.IntentCreateProfile {
		t.Fatalf("expected create_profile, got %q", res.Intent)
	}
	action := res.Actions[0]
	if action.Type != contract.ActionCreateProfile || action.Profile == nil {
		t.Fatalf("expected a profile action, got %+v", action)
	}
	if action.Profile.Name != "Sarah" {
		t.Fatalf("expected Sarah, got %q", action.Profile.Name)
	}
	if action.Profile.Relationship != contract.RelAcquaintance {
		t.Fatalf("expected acquaintance, got %q", action.Profile.Relationship)
	}
	if action.Profile.Notes != input {
		t.Fatalf("notes must carry the raw input")
	}
}

func TestResolveReminderResponseCancel(t *testing.T) {
	res, _ := fixedEngine().ResolveReminderResponse(context.Background(), "no thanks", contract.ReminderContext{})
	if res.Action != contract.ReplyCancel {
		t.Fatalf("expected cancel, got %q", res.Action)
	}
	if res.Title != "" || res.Description != "" || res.Type != "" || res.ScheduledFor != "" {
		t.Fatalf("cancel must leave reminder fields absent, got %+v", res)
	}
	if res.Response == "" {
		t.Fatalf("expected an acknowledgment")
	}
}

func TestResolveReminderResponseNegationContraction(t *testing.T) {
	res, _ := fixedEngine().ResolveReminderResponse(context.Background(), "don't bother", contract.ReminderContext{})
	if res.Action != contract.ReplyCancel {
		t.Fatalf("expected cancel, got %q", res.Action)
	}
}

func TestResolveReminderResponseCreateFromSuggestion(t *testing.T) {
	rc := contract.ReminderContext{SuggestedReminder: &contract.SuggestedReminder{
		Title:       "Call mom",
		Description: "She mentioned surgery",
		Type:        contract.ReminderHealth,
	}}
	res, _ := fixedEngine().ResolveReminderResponse(context.Background(), "sounds good", rc)
	if res.Action != contract.ReplyCreate {
		t.Fatalf("expected create, got %q", res.Action)
	}
	if res.Title != "Call mom" || res.Description != "She mentioned surgery" || res.Type != contract.ReminderHealth {
		t.Fatalf("expected suggestion fields, got %+v", res)
	}
	if res.ScheduledFor != "2024-06-02T12:00:00Z" {
		t.Fatalf("expected now+1d, got %q", res.ScheduledFor)
	}
}

func TestResolveReminderResponseDefaults(t *testing.T) {
	res, _ := fixedEngine().ResolveReminderResponse(context.Background(), "sure", contract.ReminderContext{})
	if res.Action != contract.ReplyCreate {
		t.Fatalf("expected create, got %q", res.Action)
	}
	if res.Title != "Follow up" || res.Description != "Check in" || res.Type != contract.ReminderGeneral {
		t.Fatalf("expected defaults, got %+v", res)
	}
}
