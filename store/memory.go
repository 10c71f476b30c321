package store

import (
	"context"
	"sort"
	"sync"

	"studymates_server/models"
)

// MemoryStore is an in-memory Store used by tests and by demo mode. A single
// mutex covers every operation, which also gives CommitMatch and AppendMessage
// their required atomicity.
type MemoryStore struct {
	mu       sync.Mutex
	profiles map[string]*models.UserProfile
	order    []string
	swipes   []models.SwipeAction
	matches  map[string]*models.Match
	pairs    map[string]string
	messages map[string][]*models.Message
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		profiles: make(map[string]*models.UserProfile),
		matches:  make(map[string]*models.Match),
		pairs:    make(map[string]string),
		messages: make(map[string][]*models.Message),
	}
}

func copyProfile(p *models.UserProfile) *models.UserProfile {
	cp := *p
	cp.Strengths = append([]string(nil), p.Strengths...)
	cp.Weaknesses = append([]string(nil), p.Weaknesses...)
	cp.StudyPreferences = append([]string(nil), p.StudyPreferences...)
	cp.Matches = append([]string(nil), p.Matches...)
	return &cp
}

func copyMatch(m *models.Match) *models.Match {
	cp := *m
	cp.Users = append([]string(nil), m.Users...)
	if m.LastMessage != nil {
		lm := *m.LastMessage
		cp.LastMessage = &lm
	}
	return &cp
}

func (s *MemoryStore) PutProfile(_ context.Context, profile *models.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.profiles[profile.UserID]; !exists {
		s.order = append(s.order, profile.UserID)
	}
	s.profiles[profile.UserID] = copyProfile(profile)
	return nil
}

func (s *MemoryStore) GetProfile(_ context.Context, userID string) (*models.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile, ok := s.profiles[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return copyProfile(profile), nil
}

func (s *MemoryStore) ListProfiles(_ context.Context) ([]models.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profiles := make([]models.UserProfile, 0, len(s.order))
	for _, id := range s.order {
		profiles = append(profiles, *copyProfile(s.profiles[id]))
	}
	return profiles, nil
}

func (s *MemoryStore) PutSwipe(_ context.Context, swipe *models.SwipeAction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.swipes = append(s.swipes, *swipe)
	return nil
}

func (s *MemoryStore) HasLike(_ context.Context, userID, targetUserID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, swipe := range s.swipes {
		if swipe.UserID == userID && swipe.TargetUserID == targetUserID && swipe.Action == models.ActionLike {
			return true, nil
		}
	}
	return false, nil
}

func (s *MemoryStore) CommitMatch(_ context.Context, swipe *models.SwipeAction, match *models.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.pairs[match.PairKey]; exists {
		return ErrConflict
	}

	profileA, okA := s.profiles[match.Users[0]]
	profileB, okB := s.profiles[match.Users[1]]
	if !okA || !okB {
		return ErrNotFound
	}

	s.swipes = append(s.swipes, *swipe)
	s.matches[match.MatchID] = copyMatch(match)
	s.pairs[match.PairKey] = match.MatchID
	profileA.Matches = append(profileA.Matches, match.Users[1])
	profileB.Matches = append(profileB.Matches, match.Users[0])
	return nil
}

func (s *MemoryStore) GetMatch(_ context.Context, matchID string) (*models.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	match, ok := s.matches[matchID]
	if !ok {
		return nil, ErrNotFound
	}
	return copyMatch(match), nil
}

func (s *MemoryStore) GetMatchByPair(_ context.Context, userA, userB string) (*models.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	matchID, ok := s.pairs[models.PairKeyFor(userA, userB)]
	if !ok {
		return nil, ErrNotFound
	}
	return copyMatch(s.matches[matchID]), nil
}

func (s *MemoryStore) ListMatchesForUser(_ context.Context, userID string) ([]models.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matches []models.Match
	for _, match := range s.matches {
		if match.HasUser(userID) {
			matches = append(matches, *copyMatch(match))
		}
	}
	// map iteration order is random; hand callers something deterministic
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchID < matches[j].MatchID
	})
	return matches, nil
}

func (s *MemoryStore) AppendMessage(_ context.Context, msg *models.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	match, ok := s.matches[msg.MatchID]
	if !ok {
		return ErrNotFound
	}

	cp := *msg
	s.messages[msg.MatchID] = append(s.messages[msg.MatchID], &cp)
	lm := *msg
	match.LastMessage = &lm
	return nil
}

func (s *MemoryStore) ListMessages(_ context.Context, matchID string) ([]models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := s.messages[matchID]
	messages := make([]models.Message, 0, len(stored))
	for _, msg := range stored {
		messages = append(messages, *msg)
	}
	// append order is insertion order, which is the required tie-break
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt < messages[j].CreatedAt
	})
	return messages, nil
}

func (s *MemoryStore) MarkMessagesRead(_ context.Context, matchID, readerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	match, ok := s.matches[matchID]
	if !ok {
		return ErrNotFound
	}

	for _, msg := range s.messages[matchID] {
		if msg.SenderID != readerID && !msg.Read {
			msg.Read = true
		}
	}
	if match.LastMessage != nil && match.LastMessage.SenderID != readerID {
		match.LastMessage.Read = true
	}
	return nil
}
