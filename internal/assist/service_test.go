package assist

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"rapport/internal/contract"
)

type fakeProvider struct {
	result contract.IntentResult
	reply  contract.ReminderResolution
	err    error
	calls  int
}

func (f *fakeProvider) ProcessInteraction(context.Context, string) (contract.IntentResult, error) {
	f.calls++
	return f.result, f.err
}

func (f *fakeProvider) ResolveReminderResponse(context.Context, string, contract.ReminderContext) (contract.ReminderResolution, error) {
	f.calls++
	return f.reply, f.err
}

func (f *fakeProvider) Name() string  { return "fake" }
func (f *fakeProvider) Model() string { return "fake-1" }

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestInterpretPrefersCollaborator(t *testing.T) {
	fake := &fakeProvider{result: contract.IntentResult{
		Intent:     contract.IntentClarify,
		Confidence: 0.5,
		Actions:    []contract.Action{},
		Response:   "Which Sarah?",
	}}
	svc := NewService(fake, nil, quietLogger())
	res := svc.Interpret(context.Background(), "update Sarah")
	if fake.calls != 1 {
		t.Fatalf("collaborator was not consulted")
	}
	if res.Intent != contract.IntentClarify {
		t.Fatalf("expected the collaborator's result, got %q", res.Intent)
	}
}

func TestInterpretFallsBackOnError(t *testing.T) {
	fake := &fakeProvider{err: errors.New("connection refused")}
	svc := NewService(fake, nil, quietLogger())
	res := svc.Interpret(context.Background(), "I met Sarah at the gym yesterday")
	if fake.calls != 1 {
		t.Fatalf("collaborator was not consulted")
	}
	if res.Intent != contract.IntentCreateProfile {
		t.Fatalf("expected the rules engine result, got %q", res.Intent)
	}
	if len(res.Actions) != 1 || res.Actions[0].Profile == nil || res.Actions[0].Profile.Name != "Sarah" {
		t.Fatalf("fallback result is not from the rules engine: %+v", res.Actions)
	}
}

func TestInterpretRulesOnly(t *testing.T) {
	svc := NewService(nil, nil, quietLogger())
	res := svc.Interpret(context.Background(), "Remind me to call mom")
	if res.Intent != contract.IntentCreateReminder {
		t.Fatalf("expected create_reminder, got %q", res.Intent)
	}
}

func TestResolveReminderReplyFallsBackOnError(t *testing.T) {
	fake := &fakeProvider{err: errors.New("timeout")}
	svc := NewService(fake, nil, quietLogger())
	res := svc.ResolveReminderReply(context.Background(), "no thanks", contract.ReminderContext{})
	if res.Action != contract.ReplyCancel {
		t.Fatalf("expected the rules engine cancel, got %q", res.Action)
	}
}

func TestProviderName(t *testing.T) {
	if got := NewService(nil, nil, quietLogger()).Provider(); got != "rules" {
		t.Fatalf("expected rules, got %q", got)
	}
	if got := NewService(&fakeProvider{}, nil, quietLogger()).Provider(); got != "fake" {
		t.Fatalf("expected fake, got %q", got)
	}
}
