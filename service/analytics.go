package service

import (
	"sort"
	"strings"
	"time"

	"github.com/krishna-dhulipalla/OutreachOps/models"
)

// 周报统计的参考时区，固定为America/Chicago（本版本不可配置）
var chicagoLocation = mustLoadChicago()

// 回复归因窗口：回复距离最近一次发送超过7天则不归因
const attributionWindow = 7 * 24 * time.Hour

const dayKeyLayout = "2006-01-02"

func mustLoadChicago() *time.Location {
	loc, err := time.LoadLocation("America/Chicago")
	if err != nil {
		panic(err)
	}
	return loc
}

// WeekWindow 周一开始的7天统计窗口
type WeekWindow struct {
	Monday   time.Time // 周一零点（参考时区本地时间）
	StartUTC time.Time // 窗口起点（含）
	EndUTC   time.Time // 窗口终点（不含）
}

// ComputeWeekWindow 计算统计窗口
// weekStart可以是目标周的任意一天（YYYY-MM-DD），一律回退到该周周一；
// 为空或无法解析时取参考时区的"今天"所在周
func ComputeWeekWindow(weekStart string, now time.Time) WeekWindow {
	local := now.In(chicagoLocation)
	day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, chicagoLocation)

	if weekStart != "" {
		if parsed, err := time.ParseInLocation(dayKeyLayout, weekStart, chicagoLocation); err == nil {
			day = parsed
		}
	}

	// 回退到本周一（周一=0）
	offset := (int(day.Weekday()) + 6) % 7
	monday := day.AddDate(0, 0, -offset)
	end := monday.AddDate(0, 0, 7)

	return WeekWindow{
		Monday:   monday,
		StartUTC: monday.UTC(),
		EndUTC:   end.UTC(),
	}
}

// DayKeys 窗口内7个本地日历日（周一..周日）
func (w WeekWindow) DayKeys() []string {
	keys := make([]string, 7)
	for i := 0; i < 7; i++ {
		keys[i] = w.Monday.AddDate(0, 0, i).Format(dayKeyLayout)
	}
	return keys
}

// outboundSend 一次外发记录，归因时按时间序查找
type outboundSend struct {
	at  time.Time
	day string
}

func isReplyOutcome(token string) bool {
	return token == "replied" || token == "reply"
}

// BuildWeeklyAnalytics 聚合窗口内触点的每日统计
// 纯计算不读库，方向一律现场经InferDirection推断，不信任存储值
func BuildWeeklyAnalytics(window WeekWindow, touchpoints []models.Touchpoint) models.WeeklyAnalyticsResponse {
	dayKeys := window.DayKeys()

	inWindow := make(map[string]bool, len(dayKeys))
	for _, key := range dayKeys {
		inWindow[key] = true
	}

	sentOutbound := make(map[string]int)
	repliesInbound := make(map[string]int)
	recruiterInmail := make(map[string]int)
	attributed := make(map[string]int)

	// 第一遍：按本地日计数，并按联系人收集外发记录
	sendsByPerson := make(map[string][]outboundSend)
	for _, tp := range touchpoints {
		day := tp.Date.In(chicagoLocation).Format(dayKeyLayout)
		if !inWindow[day] {
			// 时区边界兜底，窗口外的本地日直接跳过
			continue
		}

		direction := InferDirection(tp.Direction, tp.Outcome)
		outcome := NormalizeToken(tp.Outcome)
		channel := NormalizeToken(tp.Channel)

		if direction == models.DirectionOutbound && outcome == "sent" {
			sentOutbound[day]++
			sendsByPerson[tp.PersonId] = append(sendsByPerson[tp.PersonId], outboundSend{at: tp.Date, day: day})
		}

		if direction == models.DirectionInbound && isReplyOutcome(outcome) {
			repliesInbound[day]++
		}

		// InMail计数独立于回复计数，同一触点可以两者都命中
		if direction == models.DirectionInbound && strings.Contains(channel, "inmail") {
			recruiterInmail[day]++
		}
	}

	for _, sends := range sendsByPerson {
		sort.Slice(sends, func(i, j int) bool {
			return sends[i].at.Before(sends[j].at)
		})
	}

	// 第二遍：把回复归因到此前最近一次外发的那一天
	for _, tp := range touchpoints {
		direction := InferDirection(tp.Direction, tp.Outcome)
		outcome := NormalizeToken(tp.Outcome)
		if direction != models.DirectionInbound || !isReplyOutcome(outcome) {
			continue
		}

		sends := sendsByPerson[tp.PersonId]
		if len(sends) == 0 {
			continue
		}

		replyAt := tp.Date
		// 最近的一条at <= replyAt的外发，而不是最早那条
		idx := sort.Search(len(sends), func(i int) bool {
			return sends[i].at.After(replyAt)
		}) - 1
		if idx < 0 {
			continue
		}
		if replyAt.Sub(sends[idx].at) > attributionWindow {
			continue
		}

		attributed[sends[idx].day]++
	}

	days := make([]models.DailyOutreachStats, 0, 7)
	for _, key := range dayKeys {
		rate := 0.0
		if sentOutbound[key] > 0 {
			rate = float64(attributed[key]) / float64(sentOutbound[key])
		}
		days = append(days, models.DailyOutreachStats{
			Date:                       key,
			SentOutbound:               sentOutbound[key],
			RepliesInbound:             repliesInbound[key],
			RecruiterInmailInbound:     recruiterInmail[key],
			RepliesAttributedToSentDay: attributed[key],
			ResponseRateBySentDay:      rate,
		})
	}

	return models.WeeklyAnalyticsResponse{
		WeekStart: window.Monday.Format(dayKeyLayout),
		Days:      days,
	}
}
