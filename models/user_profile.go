package models

// UserProfile defines the structure for student profiles
type UserProfile struct {
	UserID           string   `dynamodbav:"userId" json:"id"`
	Name             string   `dynamodbav:"name" json:"name"`
	Email            string   `dynamodbav:"email" json:"email"`
	Avatar           string   `dynamodbav:"avatar,omitempty" json:"avatar,omitempty"`
	Major            string   `dynamodbav:"major,omitempty" json:"major,omitempty"`
	Year             string   `dynamodbav:"year,omitempty" json:"year,omitempty"`
	Bio              string   `dynamodbav:"bio,omitempty" json:"bio,omitempty"`
	Strengths        []string `dynamodbav:"strengths,omitempty" json:"strengths"`
	Weaknesses       []string `dynamodbav:"weaknesses,omitempty" json:"weaknesses"`
	StudyPreferences []string `dynamodbav:"studyPreferences,omitempty" json:"studyPreferences"`
	Matches          []string `dynamodbav:"matches,omitempty" json:"matches"`
	ProfileCompleted bool     `dynamodbav:"profileCompleted" json:"profileCompleted"`
	CreatedAt        string   `dynamodbav:"createdAt" json:"createdAt"`
}

// HasMatched checks whether userID is already in the profile's denormalized matches list
func (p *UserProfile) HasMatched(userID string) bool {
	for _, id := range p.Matches {
		if id == userID {
			return true
		}
	}
	return false
}

// UserProfilesTable is the DynamoDB table name for user profiles
const UserProfilesTable = "UserProfiles"
