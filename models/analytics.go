package models

// DailyOutreachStats 每日外联统计
type DailyOutreachStats struct {
	Date                       string  `json:"date"` // YYYY-MM-DD（America/Chicago本地日）
	SentOutbound               int     `json:"sent_outbound"`
	RepliesInbound             int     `json:"replies_inbound"`
	RecruiterInmailInbound     int     `json:"recruiter_inmail_inbound"`
	RepliesAttributedToSentDay int     `json:"replies_attributed_to_sent_day"`
	ResponseRateBySentDay      float64 `json:"response_rate_by_sent_day"`
}

// WeeklyAnalyticsResponse 周报响应，days固定7条，周一开始
type WeeklyAnalyticsResponse struct {
	WeekStart string               `json:"week_start"`
	Days      []DailyOutreachStats `json:"days"`
}
