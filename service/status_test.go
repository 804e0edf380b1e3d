package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/krishna-dhulipalla/OutreachOps/models"
)

func TestOutcomeIsClosed(t *testing.T) {
	cases := []struct {
		outcome string
		want    bool
	}{
		{"closed", true},
		{"  CLOSED  ", true},
		{"Closed - no response", true},
		{"closed: went with another offer", true},
		{"not_interested", true},
		{"not interested", true},
		{"Not Interested, thanks", true},
		{"said they were not interested right now", true},
		{"", false},
		{"sent", false},
		{"replied", false},
		{"close", false},
		{"ghosted", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, OutcomeIsClosed(tc.outcome), "outcome=%q", tc.outcome)
	}
}

func TestNormalizeDirection(t *testing.T) {
	cases := []struct {
		value string
		want  string
	}{
		{"outbound", models.DirectionOutbound},
		{"out", models.DirectionOutbound},
		{" OUT ", models.DirectionOutbound},
		{"inbound", models.DirectionInbound},
		{"in", models.DirectionInbound},
		{"other", models.DirectionOther},
		{"unknown", models.DirectionOther},
		{"", ""},
		{"   ", ""},
		// 无法识别的token原样放行
		{"sideways", "sideways"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeDirection(tc.value), "value=%q", tc.value)
	}
}

func TestInferDirection(t *testing.T) {
	// 存储值优先于outcome推断
	assert.Equal(t, models.DirectionOutbound, InferDirection("OUT", "replied"))
	assert.Equal(t, models.DirectionInbound, InferDirection("in", "sent"))

	// 缺失时根据outcome回退
	assert.Equal(t, models.DirectionOutbound, InferDirection("", "sent"))
	assert.Equal(t, models.DirectionInbound, InferDirection("", "Replied"))
	assert.Equal(t, models.DirectionInbound, InferDirection("", "reply"))

	// 都无法判断时归为other
	assert.Equal(t, models.DirectionOther, InferDirection("", ""))
	assert.Equal(t, models.DirectionOther, InferDirection("", "ghosted"))
}

func TestClosedPersonIDSet(t *testing.T) {
	touchpoints := []models.Touchpoint{
		{PersonId: "a", Outcome: "sent"},
		{PersonId: "a", Outcome: "Closed - no response"},
		{PersonId: "b", Outcome: "replied"},
	}

	closedSet := ClosedPersonIDSet(touchpoints)
	assert.True(t, closedSet["a"])
	assert.False(t, closedSet["b"])
}

// 构造测试数据：一个有关闭触点的open联系人、一个已关闭但还挂着open任务的联系人、
// 一个正常的open联系人
func buildReconcileFixture() ([]models.Person, []models.Touchpoint, []models.FollowUp) {
	personA := primitive.NewObjectID() // open，有关闭触点
	personB := primitive.NewObjectID() // 已关闭，但还有open任务
	personC := primitive.NewObjectID() // open，无关闭触点

	people := []models.Person{
		{ID: personA, Name: "A", Status: models.PersonStatusOpen},
		{ID: personB, Name: "B", Status: models.PersonStatusClosed},
		{ID: personC, Name: "C", Status: models.PersonStatusOpen},
	}

	now := time.Now()
	touchpoints := []models.Touchpoint{
		{ID: primitive.NewObjectID(), PersonId: personA.Hex(), Date: now, Outcome: "sent"},
		{ID: primitive.NewObjectID(), PersonId: personA.Hex(), Date: now, Outcome: "Not Interested, thanks"},
		{ID: primitive.NewObjectID(), PersonId: personC.Hex(), Date: now, Outcome: "replied"},
	}

	followUps := []models.FollowUp{
		{ID: primitive.NewObjectID(), PersonId: personA.Hex(), Status: models.FollowUpStatusOpen},
		{ID: primitive.NewObjectID(), PersonId: personA.Hex(), Status: models.FollowUpStatusOpen},
		{ID: primitive.NewObjectID(), PersonId: personA.Hex(), Status: models.FollowUpStatusDone},
		{ID: primitive.NewObjectID(), PersonId: personB.Hex(), Status: models.FollowUpStatusOpen},
		{ID: primitive.NewObjectID(), PersonId: personC.Hex(), Status: models.FollowUpStatusOpen},
	}

	return people, touchpoints, followUps
}

func TestPlanReconciliation(t *testing.T) {
	people, touchpoints, followUps := buildReconcileFixture()

	plan := PlanReconciliation(people, touchpoints, followUps)

	// 只有A状态发生变化
	assert.Equal(t, 1, plan.UpdatedCount)
	assert.Len(t, plan.PeopleToClose, 1)
	assert.Equal(t, people[0].ID, plan.PeopleToClose[0])

	// A的2个open任务级联关闭，B的open任务无条件补关，C不受影响
	assert.Len(t, plan.FollowUpsToClose, 3)
	assert.Contains(t, plan.FollowUpsToClose, followUps[0].ID)
	assert.Contains(t, plan.FollowUpsToClose, followUps[1].ID)
	assert.Contains(t, plan.FollowUpsToClose, followUps[3].ID)
	assert.NotContains(t, plan.FollowUpsToClose, followUps[2].ID)
	assert.NotContains(t, plan.FollowUpsToClose, followUps[4].ID)
}

func TestPlanReconciliationNeverReopens(t *testing.T) {
	// 已关闭的联系人即使没有关闭触点也保持关闭
	closedPerson := primitive.NewObjectID()
	people := []models.Person{
		{ID: closedPerson, Status: models.PersonStatusClosed},
	}
	touchpoints := []models.Touchpoint{
		{PersonId: closedPerson.Hex(), Outcome: "replied"},
	}

	plan := PlanReconciliation(people, touchpoints, nil)
	assert.Empty(t, plan.PeopleToClose)
	assert.Zero(t, plan.UpdatedCount)
}

func TestPlanReconciliationIdempotent(t *testing.T) {
	people, touchpoints, followUps := buildReconcileFixture()

	plan := PlanReconciliation(people, touchpoints, followUps)
	assert.Equal(t, 1, plan.UpdatedCount)

	// 在内存中模拟应用计划
	peopleToClose := make(map[primitive.ObjectID]bool)
	for _, id := range plan.PeopleToClose {
		peopleToClose[id] = true
	}
	for i := range people {
		if peopleToClose[people[i].ID] {
			people[i].Status = models.PersonStatusClosed
		}
	}

	followUpsToClose := make(map[primitive.ObjectID]bool)
	for _, id := range plan.FollowUpsToClose {
		followUpsToClose[id] = true
	}
	for i := range followUps {
		if followUpsToClose[followUps[i].ID] {
			followUps[i].Status = models.FollowUpStatusClosed
		}
	}

	// 再次规划应该收敛到零变更
	again := PlanReconciliation(people, touchpoints, followUps)
	assert.Zero(t, again.UpdatedCount)
	assert.Empty(t, again.PeopleToClose)
	assert.Empty(t, again.FollowUpsToClose)
}
