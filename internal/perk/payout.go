package perk

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/GrimArmory_Go/internal/domain"
	"github.com/osse101/GrimArmory_Go/internal/logger"
	"github.com/osse101/GrimArmory_Go/internal/metrics"
)

// Payout runs one perk payout. Failing to load perks or members aborts the
// run before any credit; a failed credit is recorded and the loop moves on.
// Cancelling ctx stops the run between members, keeping credits already made.
func (s *service) Payout(ctx context.Context, roster MemberSource) (*domain.PayoutReport, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgPayoutStarted)

	perks, err := s.repo.ListPerks(ctx)
	if err != nil {
		metrics.PayoutRuns.WithLabelValues(metrics.ResultAborted).Inc()
		log.Error(LogMsgPayoutAborted, "error", err)
		return nil, fmt.Errorf(ErrMsgLoadPerksFailed, err)
	}
	report := &domain.PayoutReport{}
	if len(perks) == 0 {
		metrics.PayoutRuns.WithLabelValues(metrics.ResultSuccess).Inc()
		metrics.PayoutLastSuccess.SetToCurrentTime()
		log.Info(LogMsgPayoutNoPerks)
		return report, nil
	}

	members, err := roster.Members(ctx)
	if err != nil {
		metrics.PayoutRuns.WithLabelValues(metrics.ResultAborted).Inc()
		log.Error(LogMsgPayoutAborted, "error", err)
		return nil, fmt.Errorf(ErrMsgLoadMembersFailed, err)
	}

	started := time.Now()
	for _, member := range members {
		if ctx.Err() != nil {
			report.Cancelled = true
			break
		}
		report.MembersScanned++

		earned, names := earnings(member, perks)
		if earned <= 0 {
			continue
		}
		if _, err := s.ledger.CreditFrom(ctx, member.UserID, earned, metrics.SourcePerk); err != nil {
			report.Failures = append(report.Failures, domain.PayoutFailure{UserID: member.UserID, Error: err.Error()})
			metrics.PayoutFailures.Inc()
			log.Warn(LogMsgMemberCreditFailed, "user_id", member.UserID, "amount", earned, "error", err)
			continue
		}
		report.Credited = append(report.Credited, domain.PayoutCredit{UserID: member.UserID, Amount: earned, Perks: names})
		metrics.PayoutMembersCredited.Inc()
	}

	if report.Cancelled {
		metrics.PayoutRuns.WithLabelValues(metrics.ResultCancelled).Inc()
		log.Warn(LogMsgPayoutCancelled, "scanned", report.MembersScanned, "credited", len(report.Credited))
		return report, nil
	}
	metrics.PayoutRuns.WithLabelValues(metrics.ResultSuccess).Inc()
	metrics.PayoutLastSuccess.SetToCurrentTime()
	log.Info(LogMsgPayoutCompleted,
		"scanned", report.MembersScanned,
		"credited", len(report.Credited),
		"total", report.TotalCredited(),
		"failed", len(report.Failures),
		"duration", time.Since(started))
	return report, nil
}

// earnings sums the bonuses of every perk whose role the member holds
func earnings(member domain.Member, perks []domain.Perk) (int64, []string) {
	var (
		total int64
		names []string
	)
	for _, p := range perks {
		if member.HasRole(p.RoleID) {
			total += p.Bonus
			names = append(names, p.PerkName)
		}
	}
	return total, names
}
