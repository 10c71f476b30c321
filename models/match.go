package models

// Match is a confirmed mutual-like relationship between two profiles.
// PairKey is the lexicographically ordered "a#b" pair of user ids and is the
// uniqueness handle: at most one match may exist per unordered pair.
// LastMessage is a denormalized copy of the newest message, updated inside the
// same transaction that appends the message.
type Match struct {
	MatchID     string   `dynamodbav:"matchId" json:"id"`
	Users       []string `dynamodbav:"users" json:"users"`
	PairKey     string   `dynamodbav:"pairKey" json:"-"`
	CreatedAt   string   `dynamodbav:"createdAt" json:"createdAt"`
	LastMessage *Message `dynamodbav:"lastMessage,omitempty" json:"lastMessage,omitempty"`
}

// PairKeyFor returns the canonical pair key for two user ids
func PairKeyFor(a, b string) string {
	if a < b {
		return a + "#" + b
	}
	return b + "#" + a
}

// HasUser checks whether userID is one of the match's two participants
func (m *Match) HasUser(userID string) bool {
	for _, id := range m.Users {
		if id == userID {
			return true
		}
	}
	return false
}

// OtherUser returns the participant that is not userID
func (m *Match) OtherUser(userID string) string {
	for _, id := range m.Users {
		if id != userID {
			return id
		}
	}
	return ""
}

// ActivityTime is the timestamp the match list sorts by: the last message's
// creation time when one exists, otherwise the match's own creation time.
func (m *Match) ActivityTime() string {
	if m.LastMessage != nil {
		return m.LastMessage.CreatedAt
	}
	return m.CreatedAt
}

// UnreadFor reports whether the match shows an unread indicator for viewerID:
// the last message was sent by the other participant and has not been read yet.
func (m *Match) UnreadFor(viewerID string) bool {
	return m.LastMessage != nil && m.LastMessage.SenderID != viewerID && !m.LastMessage.Read
}

// MatchesTable is the DynamoDB table name for matches
const MatchesTable = "Matches"
