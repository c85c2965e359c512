package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laporkota/internal/domain/entity"
)

func complaintAt(status, complaintType, priority string, createdAt time.Time) *entity.Complaint {
	return &entity.Complaint{
		Status:    status,
		Type:      complaintType,
		Priority:  priority,
		CreatedAt: createdAt,
	}
}

func TestSummarizeEmptySet(t *testing.T) {
	summary := Summarize(nil, time.Now())

	assert.Equal(t, 0, summary.Total)
	assert.Equal(t, 0, summary.ResolutionRate)
	assert.Empty(t, summary.ByType)
	assert.Empty(t, summary.ByPriority)
}

func TestSummarizeStatusCountsAndResolutionRate(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	created := now.Add(-48 * time.Hour)

	var complaints []*entity.Complaint
	for i := 0; i < 4; i++ {
		complaints = append(complaints, complaintAt(entity.StatusResolved, "road", entity.PriorityHigh, created))
	}
	for i := 0; i < 3; i++ {
		complaints = append(complaints, complaintAt(entity.StatusPending, "waste", entity.PriorityMedium, created))
	}
	for i := 0; i < 3; i++ {
		complaints = append(complaints, complaintAt(entity.StatusInProgress, "water", entity.PriorityLow, created))
	}

	summary := Summarize(complaints, now)

	assert.Equal(t, 10, summary.Total)
	assert.Equal(t, 4, summary.Resolved)
	assert.Equal(t, 3, summary.Pending)
	assert.Equal(t, 3, summary.InProgress)
	assert.Equal(t, 40, summary.ResolutionRate)

	assert.Equal(t, TypeBreakdown{Count: 4, Percent: 40}, summary.ByType["road"])
	assert.Equal(t, TypeBreakdown{Count: 3, Percent: 30}, summary.ByType["waste"])
	assert.Equal(t, 4, summary.ByPriority[entity.PriorityHigh])
	assert.Equal(t, 3, summary.ByPriority[entity.PriorityMedium])
	assert.Equal(t, 3, summary.ByPriority[entity.PriorityLow])
}

func TestSummarizeTimeWindows(t *testing.T) {
	// Monday 10 March 2025, 12:00 local.
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	complaints := []*entity.Complaint{
		// This morning: counts in all three windows.
		complaintAt(entity.StatusPending, "road", entity.PriorityLow, time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)),
		// Yesterday: week and month, not today.
		complaintAt(entity.StatusPending, "road", entity.PriorityLow, time.Date(2025, 3, 9, 8, 0, 0, 0, time.UTC)),
		// 8 days ago: month only, outside the rolling week.
		complaintAt(entity.StatusPending, "road", entity.PriorityLow, time.Date(2025, 3, 2, 8, 0, 0, 0, time.UTC)),
		// Last month: none of the windows.
		complaintAt(entity.StatusPending, "road", entity.PriorityLow, time.Date(2025, 2, 20, 8, 0, 0, 0, time.UTC)),
	}

	summary := Summarize(complaints, now)

	assert.Equal(t, 1, summary.Today)
	assert.Equal(t, 2, summary.ThisWeek)
	assert.Equal(t, 3, summary.ThisMonth)
	assert.Equal(t, 4, summary.Total)
}

func TestSummarizeSkipsWindowsForZeroTimestamps(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	summary := Summarize([]*entity.Complaint{
		complaintAt(entity.StatusPending, "road", entity.PriorityLow, time.Time{}),
	}, now)

	assert.Equal(t, 1, summary.Total)
	assert.Equal(t, 0, summary.Today)
	assert.Equal(t, 0, summary.ThisWeek)
	assert.Equal(t, 0, summary.ThisMonth)
}

func TestSummarizeResolutionRateRounds(t *testing.T) {
	now := time.Now()

	complaints := []*entity.Complaint{
		complaintAt(entity.StatusResolved, "road", entity.PriorityLow, now),
		complaintAt(entity.StatusPending, "road", entity.PriorityLow, now),
		complaintAt(entity.StatusPending, "road", entity.PriorityLow, now),
	}

	// 1/3 rounds to 33.
	assert.Equal(t, 33, Summarize(complaints, now).ResolutionRate)

	complaints = append(complaints, complaintAt(entity.StatusResolved, "road", entity.PriorityLow, now))
	// 2/4 is exactly 50.
	assert.Equal(t, 50, Summarize(complaints, now).ResolutionRate)
}

func TestRecentReturnsNewestFirst(t *testing.T) {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	complaints := []*entity.Complaint{
		{ID: "oldest", CreatedAt: base},
		{ID: "newest", CreatedAt: base.Add(48 * time.Hour)},
		{ID: "middle", CreatedAt: base.Add(24 * time.Hour)},
	}

	recent := Recent(complaints, 2)

	require.Len(t, recent, 2)
	assert.Equal(t, "newest", recent[0].ID)
	assert.Equal(t, "middle", recent[1].ID)

	// Input order is left alone.
	assert.Equal(t, "oldest", complaints[0].ID)
}

func TestRecentWithFewerThanN(t *testing.T) {
	complaints := []*entity.Complaint{
		{ID: "only", CreatedAt: time.Now()},
	}

	recent := Recent(complaints, 5)
	require.Len(t, recent, 1)
	assert.Equal(t, "only", recent[0].ID)
}
