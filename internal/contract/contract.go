// Package contract defines the result shapes shared by the deterministic
// understanding engine and the external language-model collaborator. Both
// sides must emit these exact structures; the collaborator's raw JSON is
// additionally checked against embedded schemas before it is trusted.
package contract

// Intent is the high-level category of work a user's utterance requests.
type Intent string

const (
	IntentCreateProfile  Intent = "create_profile"
	IntentUpdateProfile  Intent = "update_profile"
	IntentCreateReminder Intent = "create_reminder"
	IntentScheduleText   Intent = "schedule_text"
	IntentMultiAction    Intent = "multi_action"
	IntentClarify        Intent = "clarify"
)

// Relationship categories for an extracted profile.
const (
	RelFamily       = "family"
	RelFriend       = "friend"
	RelPartner      = "partner"
	RelCoworker     = "coworker"
	RelNeighbor     = "neighbor"
	RelAcquaintance = "acquaintance"
)

// Reminder type taxonomy.
const (
	ReminderGeneral     = "general"
	ReminderHealth      = "health"
	ReminderCelebration = "celebration"
	ReminderCareer      = "career"
	ReminderLifeEvent   = "life_event"
)

// UnknownName is the placeholder used when no name pattern matches.
const UnknownName = "Unknown Person"

// ExtractedProfile is the candidate contact data derived from one utterance.
// Every list field is always present, never nil.
type ExtractedProfile struct {
	Name            string   `json:"name"`
	Age             *int     `json:"age,omitempty"`
	Phone           string   `json:"phone,omitempty"`
	Email           string   `json:"email,omitempty"`
	Job             string   `json:"job,omitempty"`
	Relationship    string   `json:"relationship"`
	Kids            []string `json:"kids"`
	Siblings        []string `json:"siblings"`
	Likes           []string `json:"likes"`
	Dislikes        []string `json:"dislikes"`
	Interests       []string `json:"interests"`
	Tags            []string `json:"tags"`
	Notes           string   `json:"notes"`
	LastContactDate string   `json:"lastContactDate"`
	IsNew           bool     `json:"isNew"`
}

// Normalize fills the defaults a well-formed profile must carry. Collaborator
// responses frequently omit empty lists; the contract requires them present.
func (p *ExtractedProfile) Normalize() {
	if p.Name == "" {
		p.Name = UnknownName
	}
	if p.Relationship == "" {
		p.Relationship = RelAcquaintance
	}
	p.Kids = nonNil(p.Kids)
	p.Siblings = nonNil(p.Siblings)
	p.Likes = nonNil(p.Likes)
	p.Dislikes = nonNil(p.Dislikes)
	p.Interests = nonNil(p.Interests)
	p.Tags = nonNil(p.Tags)
}

func nonNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}

// ReminderData is the payload of a create_reminder action.
type ReminderData struct {
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	ReminderType string `json:"reminderType"`
	ScheduledFor string `json:"scheduledFor"`
	ProfileID    *int64 `json:"profileId,omitempty"`
}

// TextData is the payload of a schedule_text action.
type TextData struct {
	PhoneNumber  string `json:"phoneNumber"`
	Message      string `json:"message"`
	ScheduledFor string `json:"scheduledFor"`
	ProfileID    *int64 `json:"profileId,omitempty"`
}

// IntentResult is the top-level output of intent classification.
type IntentResult struct {
	Intent        Intent   `json:"intent"`
	Confidence    float64  `json:"confidence"`
	Actions       []Action `json:"actions"`
	Response      string   `json:"response"`
	Clarification string   `json:"clarification,omitempty"`
}

// Normalize enforces the list invariants on a result and all its actions.
func (r *IntentResult) Normalize() {
	if r.Actions == nil {
		r.Actions = []Action{}
	}
	for i := range r.Actions {
		if r.Actions[i].Profile != nil {
			r.Actions[i].Profile.Normalize()
		}
	}
}

// SuggestedReminder is the reminder previously offered to the user.
type SuggestedReminder struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type,omitempty"`
}

// ReminderContext carries the suggestion a free-text reply refers to.
type ReminderContext struct {
	SuggestedReminder *SuggestedReminder `json:"suggestedReminder,omitempty"`
}

// Reminder reply outcomes.
const (
	ReplyCreate  = "create"
	ReplyCancel  = "cancel"
	ReplyClarify = "clarify"
)

// ReminderResolution is the outcome of interpreting a reply to a suggested
// reminder.
type ReminderResolution struct {
	Action       string `json:"action"`
	Title        string `json:"title,omitempty"`
	Description  string `json:"description,omitempty"`
	Type         string `json:"type,omitempty"`
	ScheduledFor string `json:"scheduledFor,omitempty"`
	Response     string `json:"response"`
}
