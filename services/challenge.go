package services

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"github.com/kali-linux-uz/academy_api/model"
	"github.com/kali-linux-uz/academy_api/shared"
)

// DailyChallengeService allocates one challenge per calendar day, picked
// deterministically from the date so every load of the same day agrees, and
// tracks completion through the progress store. Rotation happens at midnight.
type DailyChallengeService struct {
	context.DefaultService

	kvSvc       *KeyValueService
	contentSvc  *ContentService
	progressSvc *ProgressService

	mu   sync.Mutex
	cron *cron.Cron

	// now is swappable for tests.
	now func() time.Time
}

const CHALLENGE_SVC = "challenge_svc"

func (svc *DailyChallengeService) Id() string {
	return CHALLENGE_SVC
}

func (svc *DailyChallengeService) Configure(ctx *context.Context) error {
	svc.now = time.Now
	return svc.DefaultService.Configure(ctx)
}

func (svc *DailyChallengeService) Start() error {
	svc.kvSvc = svc.Service(KV_SVC).(*KeyValueService)
	svc.contentSvc = svc.Service(CONTENT_SVC).(*ContentService)
	svc.progressSvc = svc.Service(PROGRESS_SVC).(*ProgressService)

	// Allocate today's challenge up front so the first request never races
	// the rotation schedule.
	if _, err := svc.TodayChallenge(); err != nil {
		return err
	}

	svc.cron = cron.New()
	if _, err := svc.cron.AddFunc("0 0 * * *", svc.rotate); err != nil {
		return err
	}
	svc.cron.Start()

	return nil
}

func (svc *DailyChallengeService) Shutdown() {
	if svc.cron != nil {
		svc.cron.Stop()
	}
}

func (svc *DailyChallengeService) rotate() {
	if _, err := svc.TodayChallenge(); err != nil {
		log.WithField("error", err.Error()).Error("Failed to rotate daily challenge")
	}
}

func (svc *DailyChallengeService) todayString() string {
	return svc.now().Format("2006-01-02")
}

// TodayChallenge returns the challenge allocated for today, allocating one if
// the stored record is stale or absent.
func (svc *DailyChallengeService) TodayChallenge() (*model.Challenge, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	return svc.todayChallengeLocked()
}

func (svc *DailyChallengeService) todayChallengeLocked() (*model.Challenge, error) {
	today := svc.todayString()
	state := svc.progressSvc.Snapshot().DailyChallengeState

	if state.Date == today && state.ChallengeID != "" {
		return svc.contentSvc.GetChallenge(state.ChallengeID)
	}

	challenge := svc.allocate(today)
	svc.progressSvc.UpdateDailyChallengeState(today, false, challenge.ID)
	return challenge, nil
}

// allocate picks deterministically from the pool of challenges not yet used,
// seeding on the digits of the date. Once the whole pool has been used the
// full list becomes eligible again.
func (svc *DailyChallengeService) allocate(today string) *model.Challenge {
	all := svc.contentSvc.GetChallenges()
	usedIDs := KVGet(svc.kvSvc, shared.KeyUsedChallengeIDs, []string{})

	used := make(map[string]bool, len(usedIDs))
	for _, id := range usedIDs {
		used[id] = true
	}

	pool := make([]model.Challenge, 0, len(all))
	for _, c := range all {
		if !used[c.ID] {
			pool = append(pool, c)
		}
	}
	if len(pool) == 0 {
		pool = all
	}

	seed := 0
	for _, part := range strings.Split(today, "-") {
		if n, err := strconv.Atoi(part); err == nil {
			seed += n
		}
	}
	selected := pool[seed%len(pool)]

	if !used[selected.ID] {
		KVSet(svc.kvSvc, shared.KeyUsedChallengeIDs, append(usedIDs, selected.ID))
	}

	log.WithFields(log.Fields{"date": today, "challenge_id": selected.ID}).Info("Daily challenge allocated")
	return &selected
}

// IsCompletedToday reports whether the current daily challenge is done.
func (svc *DailyChallengeService) IsCompletedToday() bool {
	state := svc.progressSvc.Snapshot().DailyChallengeState
	return state.Completed && state.Date == svc.todayString()
}

// Complete marks today's challenge done, grants its XP and extends the
// streak. Re-completion on the same day is a no-op.
func (svc *DailyChallengeService) Complete() (*model.Challenge, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	challenge, err := svc.todayChallengeLocked()
	if err != nil {
		return nil, err
	}

	today := svc.todayString()
	state := svc.progressSvc.Snapshot().DailyChallengeState
	if state.Completed && state.Date == today {
		return challenge, nil
	}

	svc.progressSvc.AddXp(challenge.XP, fmt.Sprintf("Daily Challenge: %s", challenge.Title), "")
	svc.progressSvc.UpdateDailyChallengeState(today, true, challenge.ID)
	svc.progressSvc.TouchStreak(today)
	dailyChallengesCompletedTotal.Inc()

	return challenge, nil
}
