package service

import (
	"context"
	"encoding/json"
	"time"

	"studyquest_backend/internal/repository"
	"studyquest_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	leaderboardCacheKey = "leaderboard:v1"
	leaderboardCacheTTL = 60 * time.Second
)

type LeaderboardService struct {
	XpRepo   *repository.XpRepository
	UserRepo *repository.UserRepository
	Redis    *redis.Client
}

func NewLeaderboardService(xpRepo *repository.XpRepository, userRepo *repository.UserRepository, rdb *redis.Client) *LeaderboardService {
	return &LeaderboardService{XpRepo: xpRepo, UserRepo: userRepo, Redis: rdb}
}

type LeaderboardEntry struct {
	StudentID string `json:"studentId"`
	Name      string `json:"name"`
	TotalXp   int    `json:"totalXp"`
	Rank      int    `json:"rank"`
}

// GetLeaderboard ranks students by total XP (always a derived sum over
// the ledger). Results are cached in Redis for a short TTL; cache
// failures fall through to the database.
func (s *LeaderboardService) GetLeaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	if s.Redis != nil {
		cached, err := s.Redis.Get(ctx, leaderboardCacheKey).Bytes()
		if err == nil {
			var entries []LeaderboardEntry
			if json.Unmarshal(cached, &entries) == nil {
				return entries, nil
			}
		} else if err != redis.Nil {
			logger.Log.Warn("leaderboard cache read failed", zap.Error(err))
		}
	}

	totals, err := s.XpRepo.Totals()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(totals))
	for i, t := range totals {
		ids[i] = t.StudentID
	}
	names := make(map[string]string, len(ids))
	if profiles, err := s.UserRepo.ListStudentProfiles(ids); err != nil {
		logger.Log.Warn("leaderboard profiles unavailable", zap.Error(err))
	} else {
		for _, p := range profiles {
			names[p.ID] = p.FullName
		}
	}

	entries := make([]LeaderboardEntry, len(totals))
	for i, t := range totals {
		name := names[t.StudentID]
		if name == "" {
			name = "Anonymous"
		}
		entries[i] = LeaderboardEntry{
			StudentID: t.StudentID,
			Name:      name,
			TotalXp:   t.TotalXp,
			Rank:      i + 1,
		}
	}

	if s.Redis != nil {
		if payload, err := json.Marshal(entries); err == nil {
			if err := s.Redis.Set(ctx, leaderboardCacheKey, payload, leaderboardCacheTTL).Err(); err != nil {
				logger.Log.Warn("leaderboard cache write failed", zap.Error(err))
			}
		}
	}
	return entries, nil
}
