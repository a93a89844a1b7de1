package core

import (
	"time"
)

// Step enumerates the dialog states a user can be in.
type Step string

const (
	StepNone               Step = ""
	StepOnboarding         Step = "onboarding"
	StepRetest             Step = "retest"
	StepWaitingForFood     Step = "waiting_for_food"
	StepWaitingForCalories Step = "waiting_for_calories"
	StepWaitingForWater    Step = "waiting_for_water_manual"
	StepWaitingForWeight   Step = "waiting_for_weight"
	StepWaitingForSteps    Step = "waiting_for_steps"
	StepWaitingForActivity Step = "waiting_for_activity"
	StepWaitingForTimezone Step = "waiting_for_timezone"
	StepDone               Step = "done"
)

// SessionMeta contains per-user dialog state.
type SessionMeta struct {
	UserID     string            `json:"user_id"`
	Step       Step              `json:"step"`
	Answers    map[string]string `json:"answers,omitempty"`
	UpdatedAt  time.Time         `json:"updated_at"`
	MessageNum int               `json:"message_num"`
}

// SessionStats contains session statistics.
type SessionStats struct {
	TotalSessions   int32     `json:"total_sessions"`
	ActiveUsers     int       `json:"active_users"`
	LastCleanupTime time.Time `json:"last_cleanup_time"`
	CleanedSessions int       `json:"cleaned_sessions"`
}

// SessionCache is the per-user dialog state store. Setters report false
// when a new session would exceed the total session cap.
type SessionCache interface {
	GetStep(userID string) Step
	SetStep(userID string, step Step) bool
	GetAnswer(userID, key string) (string, bool)
	SetAnswer(userID, key, value string) bool
	Clear(userID string)
	GetStats() SessionStats
	CleanExpiredSessions() int
}
