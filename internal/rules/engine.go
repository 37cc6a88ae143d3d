// Package rules is the deterministic fallback for the language-model
// collaborator: the same structured contract, produced from keyword
// dispatch and pattern extraction alone, with no network dependency. It is
// the universal recovery path, so nothing in it can fail.
package rules

import (
	"context"
	"strings"
	"time"

	"rapport/internal/contract"
	"rapport/internal/extract"
)

// Confidence is fixed for every deterministic result.
const Confidence = 0.85

// Default payloads for the reminder and text branches. These branches do
// not mine the input for a custom title or time; only the collaborator
// attempts that.
const (
	defaultReminderTitle = "Follow up reminder"
	defaultReminderDesc  = "Check in with contact"
	placeholderPhone     = "555-0123"
	placeholderMessage   = "Hey! How are you?"

	replyTitleDefault = "Follow up"
	replyDescDefault  = "Check in"
)

// Engine is stateless apart from its clock, which is injected so tests can
// pin it. Safe for concurrent use.
type Engine struct {
	Now func() time.Time
}

func NewEngine() *Engine {
	return &Engine{Now: time.Now}
}

func (e *Engine) Name() string  { return "rules" }
func (e *Engine) Model() string { return "deterministic-v1" }

func (e *Engine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

func stamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// ProcessInteraction classifies an utterance and emits exactly one action.
// Dispatch is fixed-priority keyword matching, not scoring: reminders beat
// texts beat profile capture. The clarify and multi_action intents exist in
// the contract but are reachable only through the collaborator; this engine
// never produces them.
func (e *Engine) ProcessInteraction(_ context.Context, text string) (contract.IntentResult, error) {
	lower := strings.ToLower(text)
	now := e.now()

	switch {
	// "reminder" matches through its "remind" prefix.
	case strings.Contains(lower, "remind"):
		return contract.IntentResult{
			Intent:     contract.IntentCreateReminder,
			Confidence: Confidence,
			Actions: []contract.Action{{
				Type: contract.ActionCreateReminder,
				Reminder: &contract.ReminderData{
					Title:        defaultReminderTitle,
					Description:  defaultReminderDesc,
					ReminderType: contract.ReminderGeneral,
					ScheduledFor: stamp(now.Add(7 * 24 * time.Hour)),
				},
			}},
			Response: "I'll set a reminder to follow up in a week.",
		}, nil

	case strings.Contains(lower, "text") || strings.Contains(lower, "message") || strings.Contains(lower, "send"):
		return contract.IntentResult{
			Intent:     contract.IntentScheduleText,
			Confidence: Confidence,
			Actions: []contract.Action{{
				Type: contract.ActionScheduleText,
				Text: &contract.TextData{
					PhoneNumber:  placeholderPhone,
					Message:      placeholderMessage,
					ScheduledFor: stamp(now.Add(24 * time.Hour)),
				},
			}},
			Response: "I'll schedule that text for tomorrow.",
		}, nil

	default:
		profile := extract.Profile(text, now)
		return contract.IntentResult{
			Intent:     contract.IntentCreateProfile,
			Confidence: Confidence,
			Actions: []contract.Action{{
				Type:    contract.ActionCreateProfile,
				Profile: &profile,
			}},
			Response: "Got it. I've saved what you shared as a new contact.",
		}, nil
	}
}

// ResolveReminderResponse interprets a free-text reply to a previously
// suggested reminder. Declines cancel; anything else confirms, taking the
// suggestion's fields when present. The clarify outcome is collaborator
// territory, same as above.
func (e *Engine) ResolveReminderResponse(_ context.Context, text string, rc contract.ReminderContext) (contract.ReminderResolution, error) {
	lower := strings.ToLower(text)
	if strings.Contains(lower, "no") || strings.Contains(lower, "cancel") || strings.Contains(lower, "don't") {
		return contract.ReminderResolution{
			Action:   contract.ReplyCancel,
			Response: "No problem! I won't create a reminder for this contact.",
		}, nil
	}

	res := contract.ReminderResolution{
		Action:       contract.ReplyCreate,
		Title:        replyTitleDefault,
		Description:  replyDescDefault,
		Type:         contract.ReminderGeneral,
		ScheduledFor: stamp(e.now().Add(24 * time.Hour)),
		Response:     "I'll create that reminder for you!",
	}
	if suggested := rc.SuggestedReminder; suggested != nil {
		if suggested.Title != "" {
			res.Title = suggested.Title
		}
		if suggested.Description != "" {
			res.Description = suggested.Description
		}
		if suggested.Type != "" {
			res.Type = suggested.Type
		}
	}
	return res, nil
}
