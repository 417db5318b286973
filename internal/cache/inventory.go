package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix         = "user:%d"
	CatchKeyPrefix        = "catch:%d"
	CatchListKeyPrefix    = "catches:public:%d:%d"
	SpotCandidatesPrefix  = "spots:recent:%d"
	SpotCandidatesPattern = "spots:recent:*"
	CatchListKeyPattern   = "catches:public:*"
)

const (
	UserTTL      = 5 * time.Minute
	CatchTTL     = 30 * time.Minute
	CatchListTTL = 1 * time.Minute
	SpotListTTL  = 2 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func CatchKey(catchID uint) string {
	return fmt.Sprintf(CatchKeyPrefix, catchID)
}

// CatchListKey keys the anonymous public feed by limit and offset. Feeds seen
// through an authenticated viewer carry per-viewer liked flags and are never
// cached.
func CatchListKey(limit, offset int) string {
	return fmt.Sprintf(CatchListKeyPrefix, limit, offset)
}

// SpotCandidatesKey keys the recent public spot window by candidate limit.
func SpotCandidatesKey(limit int) string {
	return fmt.Sprintf(SpotCandidatesPrefix, limit)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidateCatch(ctx context.Context, catchID uint) {
	Invalidate(ctx, CatchKey(catchID))
}

// InvalidateCatchList drops every cached page of the public feed.
func InvalidateCatchList(ctx context.Context) {
	if client == nil {
		return
	}
	iter := client.Scan(ctx, 0, CatchListKeyPattern, 0).Iterator()
	for iter.Next(ctx) {
		client.Del(ctx, iter.Val())
	}
}

// InvalidateSpotCandidates drops every cached recent spot window.
func InvalidateSpotCandidates(ctx context.Context) {
	if client == nil {
		return
	}
	iter := client.Scan(ctx, 0, SpotCandidatesPattern, 0).Iterator()
	for iter.Next(ctx) {
		client.Del(ctx, iter.Val())
	}
}
