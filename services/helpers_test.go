package services

import (
	"time"

	"github.com/kali-linux-uz/academy_api/model"
	"github.com/kali-linux-uz/academy_api/shared"
)

func newTestKV() *KeyValueService {
	return &KeyValueService{
		backendName: "memory",
		backend:     newMemoryBackend(),
		prefix:      shared.StoragePrefix,
	}
}

func newTestContent() *ContentService {
	svc := &ContentService{}
	svc.load()
	return svc
}

func newTestProgress(kv *KeyValueService, content *ContentService) *ProgressService {
	svc := &ProgressService{
		kvSvc:      kv,
		contentSvc: content,
		listeners:  make(map[int]func(model.AppState)),
	}
	svc.loadState()
	return svc
}

func newTestChallenge(kv *KeyValueService, content *ContentService, progress *ProgressService, day string) *DailyChallengeService {
	fixed, _ := time.Parse("2006-01-02", day)
	return &DailyChallengeService{
		kvSvc:       kv,
		contentSvc:  content,
		progressSvc: progress,
		now:         func() time.Time { return fixed },
	}
}

func newTestTerminal(content *ContentService, progress *ProgressService, challenge *DailyChallengeService) *TerminalService {
	return &TerminalService{
		contentSvc:   content,
		progressSvc:  progress,
		challengeSvc: challenge,
	}
}
