package services

import (
	"sync"
	"testing"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelForPoints(t *testing.T) {
	tests := []struct {
		points int
		level  int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{249, 2},
		{250, 3},
		{500, 4},
		{1000, 5},
		{2000, 6},
		{4000, 7},
		{8000, 8},
		{16000, 9},
		{50000, 9},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.level, LevelForPoints(tt.points), "points=%d", tt.points)
	}

	// non-decreasing over a dense scan
	prev := LevelForPoints(0)
	for p := 1; p <= 20000; p += 7 {
		l := LevelForPoints(p)
		require.GreaterOrEqual(t, l, prev, "level dropped at %d points", p)
		prev = l
	}
}

func TestAdjustAppliesDeltaAndCounter(t *testing.T) {
	e := newEnv()

	stats, err := e.reputation.Adjust(1, ReasonAlertCreated)
	require.NoError(t, err)
	assert.Equal(t, 10, stats.ReputationPoints)
	assert.Equal(t, 1, stats.AlertsCreated)
	require.NotNil(t, stats.LastAlertAt)

	stats, err = e.reputation.Adjust(1, ReasonUpvoteReceived)
	require.NoError(t, err)
	assert.Equal(t, 15, stats.ReputationPoints)
	assert.Equal(t, 1, stats.UpvotesReceived)
}

func TestAdjustFloorsAtZero(t *testing.T) {
	e := newEnv()
	e.stats.seed(models.UserStatistics{UserID: 7, ReputationPoints: 2})

	stats, err := e.reputation.Adjust(7, ReasonDownvoteReceived)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.ReputationPoints, "points never go negative")
	assert.Equal(t, 1, stats.DownvotesReceived, "counter still moves")
}

func TestAdjustReportFiledCountsWithoutPoints(t *testing.T) {
	e := newEnv()

	stats, err := e.reputation.Adjust(3, ReasonReportFiled)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.ReputationPoints)
	assert.Equal(t, 1, stats.ReportsSubmitted)
}

func TestAdjustUnknownReason(t *testing.T) {
	e := newEnv()
	_, err := e.reputation.Adjust(1, AdjustReason("BOGUS"))
	require.Error(t, err)
}

func TestAdjustLevelUpNotifiesOnce(t *testing.T) {
	e := newEnv()
	e.stats.seed(models.UserStatistics{UserID: 9, ReputationPoints: 95})

	// 95 + 10 = 105, crosses the level 2 threshold
	stats, err := e.reputation.Adjust(9, ReasonAlertCreated)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Level)

	milestones := e.notifications.ofType(models.NotifReputationMilestone)
	require.Len(t, milestones, 1)
	assert.Equal(t, uint(9), milestones[0].UserID)

	// another gain inside level 2 announces nothing new
	_, err = e.reputation.Adjust(9, ReasonCommentPosted)
	require.NoError(t, err)
	assert.Len(t, e.notifications.ofType(models.NotifReputationMilestone), 1)
}

func TestAdjustConcurrentSameUser(t *testing.T) {
	e := newEnv()

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			reason := ReasonAlertCreated
			if i%2 == 1 {
				reason = ReasonUpvoteReceived
			}
			_, err := e.reputation.Adjust(42, reason)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	// 25 alerts at +10 and 25 upvotes at +5, nothing lost
	final := e.stats.get(42)
	assert.Equal(t, 25*10+25*5, final.ReputationPoints)
	assert.Equal(t, 25, final.AlertsCreated)
	assert.Equal(t, 25, final.UpvotesReceived)
	assert.Equal(t, LevelForPoints(final.ReputationPoints), final.Level)
}

func TestHandleEventRoutesToRecipients(t *testing.T) {
	e := newEnv()

	author := uint(1)
	voter := uint(2)
	alert := e.seedAlert(models.Alert{UserID: author, Title: "Pothole"})

	e.reputation.HandleEvent(AlertCreated{Alert: alert})
	e.reputation.HandleEvent(UpvoteReceived{Alert: alert, RecipientID: author})
	e.reputation.HandleEvent(CommentPosted{Comment: &models.Comment{AlertID: alert.ID, UserID: voter}, AuthorID: voter})

	assert.Equal(t, 15, e.stats.get(author).ReputationPoints)
	assert.Equal(t, 2, e.stats.get(voter).ReputationPoints)
}
