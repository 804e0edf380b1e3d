package service

import (
	"context"
	"time"

	"github.com/krishna-dhulipalla/OutreachOps/repository"
	"github.com/krishna-dhulipalla/OutreachOps/utils"
)

// ScheduleDailyTaskAt 每天指定时间执行任务
func ScheduleDailyTaskAt(hour, min, sec int, task func()) {
	go func() {
		for {
			now := time.Now()
			next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, sec, 0, now.Location())
			if now.After(next) {
				next = next.Add(24 * time.Hour)
			}
			duration := next.Sub(now)
			time.Sleep(duration)
			task()
		}
	}()
}

// RunStatusReconciliation 执行一轮方向回填+状态对账
// 失败只记录日志不中断服务：整个过程幂等，下次启动或定时任务会自然重试
func RunStatusReconciliation() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db := repository.GetDatabase()

	backfilled, err := BackfillTouchpointDirections(ctx, db)
	if err != nil {
		utils.LogError(err, map[string]interface{}{"stage": "backfill"}, "触点方向回填失败")
		return
	}

	updated, err := ReconcilePeopleStatuses(ctx, db)
	if err != nil {
		utils.LogError(err, map[string]interface{}{"stage": "reconcile"}, "联系人状态对账失败")
		return
	}

	utils.LogInfo(map[string]interface{}{
		"backfilledDirections": backfilled,
		"updatedPeople":        updated,
	}, "状态对账任务完成")
}
