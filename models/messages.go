package models

type Message struct {
	MatchID   string `dynamodbav:"matchId" json:"matchId"`
	MessageID string `dynamodbav:"messageId" json:"id"`
	SenderID  string `dynamodbav:"senderId" json:"senderId"`
	Content   string `dynamodbav:"content" json:"content"`
	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"`
	Read      bool   `dynamodbav:"read" json:"read"`
}

// MessagesTable is the DynamoDB table name for chat messages
const MessagesTable = "Messages"
