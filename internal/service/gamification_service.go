package service

import (
	"context"
	"errors"
	"log"
	"math"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/studyos/internal/error_values"
	"github.com/limbo/studyos/internal/repository"
	"github.com/limbo/studyos/pkg/entity"
	"github.com/limbo/studyos/pkg/keylock"
)

const (
	xpPerLevelStep     = 100
	levelUpCoins       = 100
	xpPerSessionMinute = 10
	minutesPerCoin     = 5
	maxSessionCoins    = 50
	taskXP             = 50
	taskCoins          = 10

	taskMasterCount   = 100
	deepWorkSeconds   = 10 * 3600
	streakBadgeDays   = 7
	earlyBirdFromHour = 4
	earlyBirdToHour   = 8
)

// Level is floor(sqrt(xp/100)) + 1, so level L starts at 100*(L-1)^2 XP.
func Level(xp int) int {
	if xp < 0 {
		return 1
	}
	return int(math.Sqrt(float64(xp)/xpPerLevelStep)) + 1
}

// LevelStartXP is the XP at which level begins.
func LevelStartXP(level int) int {
	if level <= 1 {
		return 0
	}
	return xpPerLevelStep * (level - 1) * (level - 1)
}

// SessionReward pays 10 XP per whole minute and one coin per five minutes,
// capped at 50 coins.
func SessionReward(session *entity.StudySession) entity.Reward {
	minutes := session.DurationSeconds / 60
	return entity.Reward{
		Source: entity.RewardSession,
		RefID:  session.ID,
		XP:     minutes * xpPerSessionMinute,
		Coins:  min(maxSessionCoins, minutes/minutesPerCoin),
	}
}

func TaskReward(task *entity.Task) entity.Reward {
	return entity.Reward{
		Source: entity.RewardTask,
		RefID:  task.ID,
		XP:     taskXP,
		Coins:  taskCoins,
	}
}

type GamificationRepos struct {
	Rewards  repository.GamificationRepositoryI
	Tasks    repository.TasksRepositoryI
	Sessions repository.StudySessionsRepositoryI
	Habits   repository.HabitsRepositoryI
}

type GamificationService struct {
	repo     repository.GamificationRepositoryI
	tasks    repository.TasksRepositoryI
	sessions repository.StudySessionsRepositoryI
	habits   repository.HabitsRepositoryI
	locks    *keylock.Striped
	opts     options
}

func NewGamificationService(repos GamificationRepos, opts ...Option) *GamificationService {
	if repos.Rewards == nil || repos.Tasks == nil || repos.Sessions == nil || repos.Habits == nil {
		log.Fatal("on gamification service provided nil repos")
	}
	o := buildOptions(opts)
	return &GamificationService{
		repo:     repos.Rewards,
		tasks:    repos.Tasks,
		sessions: repos.Sessions,
		habits:   repos.Habits,
		locks:    o.locks,
		opts:     o,
	}
}

func (gs *GamificationService) Award(ctx context.Context, uid uuid.UUID, reward entity.Reward) (*entity.RewardResult, error) {
	unlock := gs.locks.Lock("progress:" + uid.String())
	defer unlock()

	progress, err := gs.repo.GetProgress(ctx, uid)
	if err != nil {
		return nil, errors.New("gamification repository error: " + err.Error())
	}
	res := &entity.RewardResult{
		XP:        progress.XP,
		Level:     Level(progress.XP),
		NewBadges: []string{},
	}
	added, err := gs.repo.AddRewardEvent(ctx, uid, reward.Source, reward.RefID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("gamification repository error: " + err.Error())
	}
	if !added {
		return res, nil
	}

	progress.XP += max(reward.XP, 0)
	coins := max(reward.Coins, 0)
	if level := Level(progress.XP); level > res.Level {
		coins += levelUpCoins * (level - res.Level)
		res.LevelUp = true
		res.Level = level
	}
	progress.Coins += coins
	if err = gs.repo.SaveProgress(ctx, progress); err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("gamification repository error: " + err.Error())
	}
	res.XP = progress.XP
	res.XPEarned = max(reward.XP, 0)
	res.CoinsEarned = coins

	res.NewBadges, err = gs.checkBadges(ctx, uid)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// badgeFacts holds what the badge criteria are evaluated on.
type badgeFacts struct {
	completedTasks    int
	completedSessions int
	focusSeconds      int
	lastSessionEnd    *time.Time
	bestStreak        int
}

func (f *badgeFacts) qualifies(code string, loc *time.Location) bool {
	switch code {
	case entity.BadgeFirstTask:
		return f.completedTasks >= 1
	case entity.BadgeTaskMaster:
		return f.completedTasks >= taskMasterCount
	case entity.BadgeFocusNovice:
		return f.completedSessions >= 1
	case entity.BadgeDeepWorker:
		return f.focusSeconds >= deepWorkSeconds
	case entity.BadgeEarlyBird:
		if f.lastSessionEnd == nil {
			return false
		}
		hour := f.lastSessionEnd.In(loc).Hour()
		return hour >= earlyBirdFromHour && hour < earlyBirdToHour
	case entity.BadgeStreakWeek:
		return f.bestStreak >= streakBadgeDays
	}
	return false
}

func (gs *GamificationService) collectFacts(ctx context.Context, uid uuid.UUID) (*badgeFacts, error) {
	var facts badgeFacts
	tasks, err := gs.tasks.GetByUserID(ctx, uid, entity.TaskFilter{Status: entity.TaskStatusCompleted})
	if err != nil {
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	facts.completedTasks = len(tasks)

	now := gs.opts.now()
	// the period is half open; include sessions started this instant
	sessions, err := gs.sessions.GetByUserAndPeriod(ctx, uid, time.Time{}, now.Add(time.Second))
	if err != nil {
		return nil, errors.New("sessions repository error: " + err.Error())
	}
	for _, s := range sessions {
		if s.Status != entity.SessionCompleted {
			continue
		}
		facts.completedSessions++
		facts.focusSeconds += s.DurationSeconds
		if s.EndTime != nil && (facts.lastSessionEnd == nil || s.EndTime.After(*facts.lastSessionEnd)) {
			facts.lastSessionEnd = s.EndTime
		}
	}

	habits, err := gs.habits.GetByUserID(ctx, uid, maxHabitsScanned, 0)
	if err != nil {
		return nil, errors.New("habits repository error: " + err.Error())
	}
	today := entity.DateOf(now)
	for _, h := range habits {
		facts.bestStreak = max(facts.bestStreak, liveStreak(h, today))
	}
	return &facts, nil
}

// checkBadges awards every catalog badge whose criteria now hold and returns
// the names of the newly earned ones.
func (gs *GamificationService) checkBadges(ctx context.Context, uid uuid.UUID) ([]string, error) {
	earned, err := gs.repo.GetBadges(ctx, uid)
	if err != nil {
		return nil, errors.New("gamification repository error: " + err.Error())
	}
	have := make(map[string]bool, len(earned))
	for _, b := range earned {
		have[b.Code] = true
	}
	facts, err := gs.collectFacts(ctx, uid)
	if err != nil {
		return nil, err
	}
	loc := gs.opts.now().Location()
	names := make([]string, 0)
	for _, badge := range entity.Badges {
		if have[badge.Code] || !facts.qualifies(badge.Code, loc) {
			continue
		}
		added, err := gs.repo.AddBadge(ctx, uid, badge.Code)
		if err != nil {
			return nil, errors.New("gamification repository error: " + err.Error())
		}
		if added {
			names = append(names, badge.Name)
		}
	}
	return names, nil
}

func (gs *GamificationService) GetStats(ctx context.Context, uid uuid.UUID) (*entity.GamificationStats, error) {
	progress, err := gs.repo.GetProgress(ctx, uid)
	if err != nil {
		return nil, errors.New("gamification repository error: " + err.Error())
	}
	earned, err := gs.repo.GetBadges(ctx, uid)
	if err != nil {
		return nil, errors.New("gamification repository error: " + err.Error())
	}
	habits, err := gs.habits.GetByUserID(ctx, uid, maxHabitsScanned, 0)
	if err != nil {
		return nil, errors.New("habits repository error: " + err.Error())
	}
	level := Level(progress.XP)
	start, next := LevelStartXP(level), LevelStartXP(level+1)
	stats := &entity.GamificationStats{
		XP:           progress.XP,
		Level:        level,
		Coins:        progress.Coins,
		Progress:     min(100, (progress.XP-start)*100/(next-start)),
		NextLevelXP:  next,
		BadgesEarned: len(earned),
	}
	today := gs.opts.today()
	for _, h := range habits {
		stats.Streak = max(stats.Streak, liveStreak(h, today))
	}
	return stats, nil
}

func (gs *GamificationService) GetBadges(ctx context.Context, uid uuid.UUID) ([]entity.BadgeStatus, error) {
	earned, err := gs.repo.GetBadges(ctx, uid)
	if err != nil {
		return nil, errors.New("gamification repository error: " + err.Error())
	}
	at := make(map[string]time.Time, len(earned))
	for _, b := range earned {
		at[b.Code] = b.EarnedAt
	}
	statuses := make([]entity.BadgeStatus, 0, len(entity.Badges))
	for _, badge := range entity.Badges {
		status := entity.BadgeStatus{Badge: badge}
		if t, ok := at[badge.Code]; ok {
			status.Earned = true
			status.EarnedAt = &t
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}
