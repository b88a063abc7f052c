package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	GoalDaily   = "daily"
	GoalWeekly  = "weekly"
	GoalMonthly = "monthly"

	GoalActive    = "active"
	GoalCompleted = "completed"
)

type Goal struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Title     string    `json:"title"`
	Target    float64   `json:"target"`
	Current   float64   `json:"current"`
	Unit      string    `json:"unit"`
	Period    string    `json:"period"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (g *Goal) Clone() *Goal {
	c := *g
	return &c
}

// Progress is the user's accumulated experience and coins. Level is derived
// from XP and never stored.
type Progress struct {
	UserID    uuid.UUID `json:"-"`
	XP        int       `json:"xp"`
	Coins     int       `json:"coins"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	RewardSession = "session"
	RewardTask    = "task"
)

// Reward is granted at most once per (Source, RefID).
type Reward struct {
	Source string
	RefID  uuid.UUID
	XP     int
	Coins  int
}

type RewardResult struct {
	XP          int      `json:"xp"`
	Level       int      `json:"level"`
	LevelUp     bool     `json:"level_up"`
	XPEarned    int      `json:"xp_earned"`
	CoinsEarned int      `json:"coins_earned"`
	NewBadges   []string `json:"new_badges"`
}

type Badge struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Criteria    string `json:"criteria"`
}

const (
	BadgeFirstTask   = "first_task"
	BadgeTaskMaster  = "task_master"
	BadgeFocusNovice = "focus_novice"
	BadgeDeepWorker  = "deep_worker"
	BadgeEarlyBird   = "early_bird"
	BadgeStreakWeek  = "streak_week"
)

// Badges is the catalog, in display order.
var Badges = []Badge{
	{Code: BadgeFirstTask, Name: "First Step", Description: "Complete your first task", Icon: "🎯", Criteria: "Complete 1 task"},
	{Code: BadgeTaskMaster, Name: "Task Master", Description: "Complete 100 tasks", Icon: "⚔️", Criteria: "Complete 100 tasks"},
	{Code: BadgeFocusNovice, Name: "Focus Novice", Description: "Complete your first focus session", Icon: "🧘", Criteria: "Complete 1 session"},
	{Code: BadgeDeepWorker, Name: "Deep Worker", Description: "Accumulate 10 hours of focus time", Icon: "🧠", Criteria: "10 hours of focus"},
	{Code: BadgeEarlyBird, Name: "Early Bird", Description: "Complete a session before 8 AM", Icon: "🌅", Criteria: "Session ends between 4 and 8 AM"},
	{Code: BadgeStreakWeek, Name: "Consistency King", Description: "Reach a 7 day streak", Icon: "🔥", Criteria: "7 day habit streak"},
}

type EarnedBadge struct {
	Code     string    `json:"code"`
	EarnedAt time.Time `json:"earned_at"`
}

type BadgeStatus struct {
	Badge
	Earned   bool       `json:"earned"`
	EarnedAt *time.Time `json:"earned_at,omitempty"`
}

type GamificationStats struct {
	XP           int `json:"xp"`
	Level        int `json:"level"`
	Coins        int `json:"coins"`
	Streak       int `json:"streak"`
	Progress     int `json:"progress"`
	NextLevelXP  int `json:"next_level_xp"`
	BadgesEarned int `json:"badges_earned"`
}
