package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/krishna-dhulipalla/OutreachOps/models"
)

// chicagoTime 构造参考时区的时间点
func chicagoTime(year int, month time.Month, day, hour int) time.Time {
	return time.Date(year, month, day, hour, 0, 0, 0, chicagoLocation)
}

func TestComputeWeekWindow(t *testing.T) {
	now := time.Date(2025, 6, 4, 12, 0, 0, 0, time.UTC)

	t.Run("周中任意一天回退到周一", func(t *testing.T) {
		// 2025-06-05是周四
		window := ComputeWeekWindow("2025-06-05", now)
		assert.Equal(t, "2025-06-02", window.Monday.Format(dayKeyLayout))
	})

	t.Run("周一本身保持不变", func(t *testing.T) {
		window := ComputeWeekWindow("2025-06-02", now)
		assert.Equal(t, "2025-06-02", window.Monday.Format(dayKeyLayout))
	})

	t.Run("周日归入同一周", func(t *testing.T) {
		window := ComputeWeekWindow("2025-06-08", now)
		assert.Equal(t, "2025-06-02", window.Monday.Format(dayKeyLayout))
	})

	t.Run("缺失参数取今天所在周", func(t *testing.T) {
		window := ComputeWeekWindow("", now)
		assert.Equal(t, "2025-06-02", window.Monday.Format(dayKeyLayout))
	})

	t.Run("无法解析时取今天所在周", func(t *testing.T) {
		window := ComputeWeekWindow("not-a-date", now)
		assert.Equal(t, "2025-06-02", window.Monday.Format(dayKeyLayout))
	})

	t.Run("UTC边界按本地时区换算", func(t *testing.T) {
		// 夏令时期间芝加哥为UTC-5
		window := ComputeWeekWindow("2025-06-02", now)
		assert.True(t, window.StartUTC.Equal(time.Date(2025, 6, 2, 5, 0, 0, 0, time.UTC)))
		assert.True(t, window.EndUTC.Equal(time.Date(2025, 6, 9, 5, 0, 0, 0, time.UTC)))
	})
}

func TestWeekWindowDayKeys(t *testing.T) {
	window := ComputeWeekWindow("2025-06-02", time.Now())
	keys := window.DayKeys()

	assert.Equal(t, []string{
		"2025-06-02", "2025-06-03", "2025-06-04", "2025-06-05",
		"2025-06-06", "2025-06-07", "2025-06-08",
	}, keys)
}

func TestBuildWeeklyAnalytics(t *testing.T) {
	window := ComputeWeekWindow("2025-06-02", time.Now())

	touchpoints := []models.Touchpoint{
		// p1: 周一外发，周四收到回复（D+3）
		{PersonId: "p1", Date: chicagoTime(2025, 6, 2, 9), Channel: "email", Outcome: "sent"},
		{PersonId: "p1", Date: chicagoTime(2025, 6, 5, 14), Channel: "email", Outcome: "replied"},

		// p2: 周一和周三各外发一次，周四回复应归因到更近的周三
		{PersonId: "p2", Date: chicagoTime(2025, 6, 2, 9), Channel: "LinkedIn DM", Outcome: "sent"},
		{PersonId: "p2", Date: chicagoTime(2025, 6, 4, 10), Channel: "LinkedIn DM", Outcome: "sent"},
		{PersonId: "p2", Date: chicagoTime(2025, 6, 5, 11), Channel: "LinkedIn DM", Outcome: "replied"},

		// p3: 周五收到招聘者InMail，同时计入回复数和InMail数
		{PersonId: "p3", Date: chicagoTime(2025, 6, 6, 8), Channel: "InMail", Outcome: "replied"},
	}

	resp := BuildWeeklyAnalytics(window, touchpoints)

	assert.Equal(t, "2025-06-02", resp.WeekStart)
	assert.Len(t, resp.Days, 7)

	monday := resp.Days[0]
	assert.Equal(t, 2, monday.SentOutbound)
	assert.Equal(t, 1, monday.RepliesAttributedToSentDay)
	assert.Equal(t, 0.5, monday.ResponseRateBySentDay)

	wednesday := resp.Days[2]
	assert.Equal(t, 1, wednesday.SentOutbound)
	assert.Equal(t, 1, wednesday.RepliesAttributedToSentDay)
	assert.Equal(t, 1.0, wednesday.ResponseRateBySentDay)

	thursday := resp.Days[3]
	assert.Equal(t, 2, thursday.RepliesInbound)
	assert.Equal(t, 0, thursday.RecruiterInmailInbound)

	friday := resp.Days[4]
	assert.Equal(t, 1, friday.RepliesInbound)
	assert.Equal(t, 1, friday.RecruiterInmailInbound)
	// 当天没有外发，响应率恒为0
	assert.Equal(t, 0.0, friday.ResponseRateBySentDay)
}

func TestBuildWeeklyAnalyticsAttributionWindow(t *testing.T) {
	window := ComputeWeekWindow("2025-06-02", time.Now())

	touchpoints := []models.Touchpoint{
		{PersonId: "p1", Date: chicagoTime(2025, 6, 2, 9), Channel: "email", Outcome: "sent"},
		// 8天后的回复超出归因窗口
		{PersonId: "p1", Date: chicagoTime(2025, 6, 10, 10), Channel: "email", Outcome: "replied"},
	}

	resp := BuildWeeklyAnalytics(window, touchpoints)

	monday := resp.Days[0]
	assert.Equal(t, 1, monday.SentOutbound)
	assert.Equal(t, 0, monday.RepliesAttributedToSentDay)
	assert.Equal(t, 0.0, monday.ResponseRateBySentDay)

	// 窗口外的本地日不参与回复计数
	for _, day := range resp.Days {
		assert.Equal(t, 0, day.RepliesInbound)
	}
}

func TestBuildWeeklyAnalyticsReplyBeforeSend(t *testing.T) {
	window := ComputeWeekWindow("2025-06-02", time.Now())

	touchpoints := []models.Touchpoint{
		// 回复发生在外发之前，无法归因
		{PersonId: "p1", Date: chicagoTime(2025, 6, 3, 9), Channel: "email", Outcome: "replied"},
		{PersonId: "p1", Date: chicagoTime(2025, 6, 4, 9), Channel: "email", Outcome: "sent"},
	}

	resp := BuildWeeklyAnalytics(window, touchpoints)

	tuesday := resp.Days[1]
	assert.Equal(t, 1, tuesday.RepliesInbound)

	wednesday := resp.Days[2]
	assert.Equal(t, 1, wednesday.SentOutbound)
	assert.Equal(t, 0, wednesday.RepliesAttributedToSentDay)
}

func TestBuildWeeklyAnalyticsEmpty(t *testing.T) {
	window := ComputeWeekWindow("2025-06-02", time.Now())

	resp := BuildWeeklyAnalytics(window, nil)

	assert.Len(t, resp.Days, 7)
	for _, day := range resp.Days {
		assert.Zero(t, day.SentOutbound)
		assert.Zero(t, day.RepliesInbound)
		assert.Zero(t, day.RecruiterInmailInbound)
		assert.Zero(t, day.RepliesAttributedToSentDay)
		assert.Equal(t, 0.0, day.ResponseRateBySentDay)
	}
}

func TestBuildWeeklyAnalyticsInfersMissingDirection(t *testing.T) {
	window := ComputeWeekWindow("2025-06-02", time.Now())

	// direction缺失时根据outcome推断，不影响统计
	touchpoints := []models.Touchpoint{
		{PersonId: "p1", Date: chicagoTime(2025, 6, 2, 9), Channel: "email", Outcome: "sent", Direction: ""},
		{PersonId: "p1", Date: chicagoTime(2025, 6, 3, 9), Channel: "email", Outcome: "replied", Direction: ""},
	}

	resp := BuildWeeklyAnalytics(window, touchpoints)

	assert.Equal(t, 1, resp.Days[0].SentOutbound)
	assert.Equal(t, 1, resp.Days[1].RepliesInbound)
	assert.Equal(t, 1, resp.Days[0].RepliesAttributedToSentDay)
	assert.Equal(t, 1.0, resp.Days[0].ResponseRateBySentDay)
}
