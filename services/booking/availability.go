package booking

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	profileRepo "velora/database/repository/profile"
	"velora/models"
	"velora/utils"
)

const policyCachePrefix = "availability:"

// AvailabilityResolver reads a master's booking policy, with an optional
// short-lived Redis cache in front of the profile read.
type AvailabilityResolver struct {
	Profiles profileRepo.ProfileRepository
	Cache    *redis.Client
	CacheTTL time.Duration
}

// Resolve returns the master's availability policy. A failed profile read
// fails open: the permissive policy is returned so a transient read error
// on this secondary check can never block a legitimate booking. Every
// fail-open occurrence is logged so a degraded profile store shows up in
// the logs rather than as silently skipped off-day checks.
func (r *AvailabilityResolver) Resolve(ctx context.Context, masterUID string) *models.AvailabilityPolicy {
	logger := utils.GetLogger()

	if policy := r.fromCache(ctx, masterUID); policy != nil {
		return policy
	}

	policy, err := r.Profiles.GetAvailability(ctx, masterUID)
	if err != nil {
		logger.Warn("availability read failed, failing open",
			zap.String("masterUid", masterUID), zap.Error(err))
		return models.PermissiveAvailability()
	}

	r.toCache(ctx, masterUID, policy)
	return policy
}

type cachedPolicy struct {
	AllowBookings bool                 `json:"allowBookings"`
	OffDays       []string             `json:"offDays,omitempty"`
	WorkingHours  *models.WorkingHours `json:"workingHours,omitempty"`
}

func (r *AvailabilityResolver) fromCache(ctx context.Context, masterUID string) *models.AvailabilityPolicy {
	if r.Cache == nil || r.CacheTTL <= 0 {
		return nil
	}
	raw, err := r.Cache.Get(ctx, policyCachePrefix+masterUID).Result()
	if err != nil {
		if err != redis.Nil {
			utils.GetLogger().Warn("availability cache read failed", zap.Error(err))
		}
		return nil
	}
	var cp cachedPolicy
	if err := json.Unmarshal([]byte(raw), &cp); err != nil {
		return nil
	}
	policy := &models.AvailabilityPolicy{
		AllowBookings: cp.AllowBookings,
		WorkingHours:  cp.WorkingHours,
	}
	if len(cp.OffDays) > 0 {
		policy.OffDays = make(map[string]struct{}, len(cp.OffDays))
		for _, d := range cp.OffDays {
			policy.OffDays[d] = struct{}{}
		}
	}
	return policy
}

func (r *AvailabilityResolver) toCache(ctx context.Context, masterUID string, policy *models.AvailabilityPolicy) {
	if r.Cache == nil || r.CacheTTL <= 0 {
		return
	}
	cp := cachedPolicy{
		AllowBookings: policy.AllowBookings,
		WorkingHours:  policy.WorkingHours,
	}
	for d := range policy.OffDays {
		cp.OffDays = append(cp.OffDays, d)
	}
	raw, err := json.Marshal(cp)
	if err != nil {
		return
	}
	if err := r.Cache.Set(ctx, policyCachePrefix+masterUID, raw, r.CacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("availability cache write failed", zap.Error(err))
	}
}
