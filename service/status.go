package service

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/krishna-dhulipalla/OutreachOps/models"
	"github.com/krishna-dhulipalla/OutreachOps/repository"
	"github.com/krishna-dhulipalla/OutreachOps/utils"
)

// NormalizeToken 归一化自由文本token：去空白并转小写，空值返回""
func NormalizeToken(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// OutcomeIsClosed 判断触点结局是否表示关系已关闭
// outcome是多年手工录入的自由文本，必须容忍前缀/子串变体
func OutcomeIsClosed(outcome string) bool {
	token := NormalizeToken(outcome)
	if token == "" {
		return false
	}
	if token == "closed" {
		return true
	}
	if token == "not_interested" || token == "not interested" {
		return true
	}
	if strings.HasPrefix(token, "closed") {
		return true
	}
	if strings.Contains(token, "not interested") {
		return true
	}
	return false
}

// NormalizeDirection 归一化方向值；空输入返回""表示缺失
// 无法识别的非空token原样放行，不做强校验
func NormalizeDirection(value string) string {
	token := NormalizeToken(value)
	switch token {
	case "":
		return ""
	case "outbound", "out":
		return models.DirectionOutbound
	case "inbound", "in":
		return models.DirectionInbound
	case "other", "unknown":
		return models.DirectionOther
	}
	return token
}

// InferDirection 计算触点的有效方向，是方向判定的唯一入口
// 存储值优先，缺失时根据outcome回退推断
func InferDirection(direction, outcome string) string {
	if normalized := NormalizeDirection(direction); normalized != "" {
		return normalized
	}

	switch NormalizeToken(outcome) {
	case "sent":
		return models.DirectionOutbound
	case "replied", "reply":
		return models.DirectionInbound
	}
	return models.DirectionOther
}

// ClosedPersonIDSet 计算存在"关闭"结局触点的联系人ID集合
func ClosedPersonIDSet(touchpoints []models.Touchpoint) map[string]bool {
	closedSet := make(map[string]bool)
	for _, tp := range touchpoints {
		if OutcomeIsClosed(tp.Outcome) {
			closedSet[tp.PersonId] = true
		}
	}
	return closedSet
}

// ReconcilePlan 状态对账计划
type ReconcilePlan struct {
	PeopleToClose    []primitive.ObjectID // 需要置为closed的联系人
	FollowUpsToClose []primitive.ObjectID // 需要关闭的open跟进任务
	UpdatedCount     int                  // 状态发生变化的联系人数
}

// PlanReconciliation 对内存快照做一次纯计算的对账规划
// 规则：
//   - 有关闭触点且未关闭的联系人 → 关闭，连带关闭其所有open任务，计入变更数
//   - 已关闭的联系人（无论原因）→ 无条件补关其所有open任务，不计入变更数
//   - 只向"更关闭"方向收敛，绝不重新打开
func PlanReconciliation(people []models.Person, touchpoints []models.Touchpoint, followUps []models.FollowUp) ReconcilePlan {
	closedSet := ClosedPersonIDSet(touchpoints)

	openFollowUps := make(map[string][]primitive.ObjectID)
	for _, fu := range followUps {
		if NormalizeToken(fu.Status) == models.FollowUpStatusOpen {
			openFollowUps[fu.PersonId] = append(openFollowUps[fu.PersonId], fu.ID)
		}
	}

	var plan ReconcilePlan
	for _, person := range people {
		personId := person.ID.Hex()
		shouldBeClosed := closedSet[personId]
		isClosed := NormalizeToken(person.Status) == models.PersonStatusClosed

		if shouldBeClosed && !isClosed {
			plan.PeopleToClose = append(plan.PeopleToClose, person.ID)
			plan.FollowUpsToClose = append(plan.FollowUpsToClose, openFollowUps[personId]...)
			plan.UpdatedCount++
			continue
		}

		if isClosed {
			plan.FollowUpsToClose = append(plan.FollowUpsToClose, openFollowUps[personId]...)
		}
	}

	return plan
}

// ReconcilePeopleStatuses 全量对账联系人状态，返回状态变化的联系人数
// 幂等，可在启动时和定时任务中反复执行
func ReconcilePeopleStatuses(ctx context.Context, db *mongo.Database) (int, error) {
	var people []models.Person
	if err := loadAll(ctx, db.Collection(repository.PeopleCollection), &people); err != nil {
		return 0, err
	}

	var touchpoints []models.Touchpoint
	if err := loadAll(ctx, db.Collection(repository.TouchpointsCollection), &touchpoints); err != nil {
		return 0, err
	}

	var followUps []models.FollowUp
	if err := loadAll(ctx, db.Collection(repository.FollowUpsCollection), &followUps); err != nil {
		return 0, err
	}

	plan := PlanReconciliation(people, touchpoints, followUps)

	if len(plan.PeopleToClose) > 0 {
		_, err := db.Collection(repository.PeopleCollection).UpdateMany(
			ctx,
			bson.M{"_id": bson.M{"$in": plan.PeopleToClose}},
			bson.M{"$set": bson.M{"status": models.PersonStatusClosed}},
		)
		if err != nil {
			return 0, err
		}
	}

	if len(plan.FollowUpsToClose) > 0 {
		_, err := db.Collection(repository.FollowUpsCollection).UpdateMany(
			ctx,
			bson.M{"_id": bson.M{"$in": plan.FollowUpsToClose}},
			bson.M{"$set": bson.M{"status": models.FollowUpStatusClosed}},
		)
		if err != nil {
			return 0, err
		}
	}

	if plan.UpdatedCount > 0 {
		utils.LogInfo(map[string]interface{}{
			"closedPeople":    len(plan.PeopleToClose),
			"closedFollowUps": len(plan.FollowUpsToClose),
		}, "联系人状态对账完成")
	}

	return plan.UpdatedCount, nil
}

// BackfillTouchpointDirections 回填触点direction字段，返回更新条数
// 必须在依赖方向统计的逻辑之前执行过至少一次
func BackfillTouchpointDirections(ctx context.Context, db *mongo.Database) (int, error) {
	collection := db.Collection(repository.TouchpointsCollection)

	var touchpoints []models.Touchpoint
	if err := loadAll(ctx, collection, &touchpoints); err != nil {
		return 0, err
	}

	updated := 0
	for _, tp := range touchpoints {
		desired := InferDirection(tp.Direction, tp.Outcome)
		if NormalizeDirection(tp.Direction) == desired {
			continue
		}

		_, err := collection.UpdateByID(ctx, tp.ID, bson.M{"$set": bson.M{"direction": desired}})
		if err != nil {
			return updated, err
		}
		updated++
	}

	return updated, nil
}

// loadAll 读取集合全量快照（个人级数据量，全量扫描足够）
func loadAll(ctx context.Context, collection *mongo.Collection, results interface{}) error {
	cursor, err := collection.Find(ctx, bson.M{})
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	return cursor.All(ctx, results)
}
