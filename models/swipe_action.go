package models

// SwipeAction is one like/skip decision, recorded append-only.
// TargetKey is "<targetUserId>#<createdAt>" so every swipe on the same target
// gets its own item instead of overwriting the previous one.
type SwipeAction struct {
	UserID       string `dynamodbav:"userId" json:"userId"`
	TargetKey    string `dynamodbav:"targetKey" json:"-"`
	TargetUserID string `dynamodbav:"targetUserId" json:"targetUserId"`
	Action       string `dynamodbav:"action" json:"action"`
	CreatedAt    string `dynamodbav:"createdAt" json:"createdAt"`
}

// NewSwipeAction builds a swipe record with its composite sort key filled in
func NewSwipeAction(userID, targetUserID, action string) *SwipeAction {
	createdAt := NowTimestamp()
	return &SwipeAction{
		UserID:       userID,
		TargetKey:    targetUserID + "#" + createdAt,
		TargetUserID: targetUserID,
		Action:       action,
		CreatedAt:    createdAt,
	}
}

// SwipeActionsTable is the DynamoDB table name for swipe actions
const SwipeActionsTable = "SwipeActions"
