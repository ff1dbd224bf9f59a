package program

import (
	"context"
	"time"

	"github.com/superteam-academy/academy-server/pkg/academy/data/config"
	"github.com/superteam-academy/academy-server/pkg/academy/data/learner"
	"github.com/superteam-academy/academy-server/pkg/academy/data/reward"
)

// dayNumber converts a timestamp to the day counter used for daily XP
// bookkeeping.
func dayNumber(ts time.Time) uint16 {
	return uint16(ts.Unix() / 86400)
}

// grantXpUnderDailyCap rolls the daily window forward when the day has
// advanced, then credits as much of amount as the remaining daily budget
// allows. The credited amount is returned and excess is discarded. A
// nonzero grant against an exhausted budget fails outright.
func grantXpUnderDailyCap(cfg *config.Record, profile *learner.Record, now time.Time, amount uint32) (uint32, error) {
	today := dayNumber(now)
	if today > profile.LastXpDay {
		profile.XpEarnedToday = 0
		profile.LastXpDay = today
	}

	if amount == 0 {
		return 0, nil
	}

	if profile.XpEarnedToday >= cfg.MaxDailyXp {
		return 0, ErrDailyXpLimitExceeded
	}

	remaining := cfg.MaxDailyXp - profile.XpEarnedToday
	credited := amount
	if credited > remaining {
		credited = remaining
	}
	profile.XpEarnedToday += credited

	return credited, nil
}

// appendReward records a credited XP grant in the season ledger. Zero
// grants (fully clamped) leave no entry.
func (p *Program) appendReward(ctx context.Context, destination string, kind reward.Kind, amount uint64, cfg *config.Record, courseId *string) error {
	if amount == 0 {
		return nil
	}

	return p.data.CreateRewardEntry(ctx, &reward.Record{
		Destination: destination,
		Kind:        kind,
		Amount:      amount,

		Season: cfg.CurrentSeason,
		Mint:   cfg.CurrentMint,

		CourseId: courseId,

		CreatedAt: p.clock(),
	})
}
