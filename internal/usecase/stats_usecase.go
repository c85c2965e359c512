package usecase

import (
	"context"
	"math"
	"sort"
	"time"

	"laporkota/internal/domain/entity"
	"laporkota/internal/domain/repository"
)

type StatsUseCase struct {
	complaintRepo repository.ComplaintRepository
}

func NewStatsUseCase(complaintRepo repository.ComplaintRepository) *StatsUseCase {
	return &StatsUseCase{
		complaintRepo: complaintRepo,
	}
}

type TypeBreakdown struct {
	Count   int `json:"count"`
	Percent int `json:"percent"`
}

// Summary is a derived snapshot, recomputed on demand and never persisted.
type Summary struct {
	Total          int                      `json:"total"`
	Pending        int                      `json:"pending"`
	InProgress     int                      `json:"in_progress"`
	Resolved       int                      `json:"resolved"`
	ByType         map[string]TypeBreakdown `json:"by_type"`
	ByPriority     map[string]int           `json:"by_priority"`
	Today          int                      `json:"today"`
	ThisWeek       int                      `json:"this_week"`
	ThisMonth      int                      `json:"this_month"`
	ResolutionRate int                      `json:"resolution_rate"`
}

// Summarize accumulates the dashboard figures in a single pass. Time windows
// follow the mobile dashboards: today starts at local midnight, the week is
// a rolling 7 days, the month starts on the 1st of the current calendar
// month.
func Summarize(complaints []*entity.Complaint, now time.Time) *Summary {
	summary := &Summary{
		ByType:     make(map[string]TypeBreakdown),
		ByPriority: make(map[string]int),
	}

	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekStart := now.Add(-7 * 24 * time.Hour)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	typeCounts := make(map[string]int)

	for _, c := range complaints {
		summary.Total++

		switch c.Status {
		case entity.StatusPending:
			summary.Pending++
		case entity.StatusInProgress:
			summary.InProgress++
		case entity.StatusResolved:
			summary.Resolved++
		}

		typeCounts[c.Type]++
		summary.ByPriority[c.Priority]++

		if !c.CreatedAt.IsZero() {
			created := c.CreatedAt.In(now.Location())
			if !created.Before(todayStart) {
				summary.Today++
			}
			if !created.Before(weekStart) {
				summary.ThisWeek++
			}
			if !created.Before(monthStart) {
				summary.ThisMonth++
			}
		}
	}

	for t, count := range typeCounts {
		summary.ByType[t] = TypeBreakdown{
			Count:   count,
			Percent: roundPercent(count, summary.Total),
		}
	}

	// 0 on an empty set, never a division fault.
	summary.ResolutionRate = roundPercent(summary.Resolved, summary.Total)

	return summary
}

func roundPercent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// Recent returns the n most recently created complaints, newest first,
// independent of the aggregate counts.
func Recent(complaints []*entity.Complaint, n int) []*entity.Complaint {
	sorted := make([]*entity.Complaint, len(complaints))
	copy(sorted, complaints)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	if n > 0 && n < len(sorted) {
		sorted = sorted[:n]
	}

	return sorted
}

// Dashboard fetches all complaints visible to the caller (admins: all, users:
// owned) and recomputes the summary. Correct as of the read it was computed
// from; no other consistency guarantee.
func (uc *StatsUseCase) Dashboard(ctx context.Context, userID string, recentN int) (*Summary, []*entity.Complaint, error) {
	filter := make(map[string]interface{})
	if userID != "" {
		filter["userId"] = userID
	}

	complaints, _, err := uc.complaintRepo.List(ctx, filter, "", 0, 0)
	if err != nil {
		return nil, nil, err
	}

	return Summarize(complaints, time.Now()), Recent(complaints, recentN), nil
}
