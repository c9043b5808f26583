package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/Jambi888/snowball-frenzy-site-sub000/internal/battle"
	"github.com/Jambi888/snowball-frenzy-site-sub000/internal/game"
)

// mockRepo backs the service tests with in-memory maps. Reads return
// copies so mutations only stick after UpdatePlayer, mirroring how the
// real repository round-trips through the database.
type mockRepo struct {
	mu         sync.Mutex
	players    map[string]*game.Player
	assistants map[uint][]game.Assistant
	logs       []game.EncounterLog
	states     map[uint][]byte
	nextID     uint
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		players:    make(map[string]*game.Player),
		assistants: make(map[uint][]game.Assistant),
		states:     make(map[uint][]byte),
		nextID:     1,
	}
}

func (m *mockRepo) addPlayer(p *game.Player) *game.Player {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.ID = m.nextID
	m.nextID++
	cp := *p
	m.players[p.PlayerUUID] = &cp
	return p
}

func (m *mockRepo) GetPlayerByUUID(uuid string) (*game.Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.players[uuid]
	if !ok {
		return nil, fmt.Errorf("no player %s", uuid)
	}
	cp := *p
	cp.Assistants = append([]game.Assistant(nil), m.assistants[p.ID]...)
	return &cp, nil
}

func (m *mockRepo) UpdatePlayer(p *game.Player) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *p
	cp.Assistants = nil
	m.players[p.PlayerUUID] = &cp
	return nil
}

func (m *mockRepo) AddAssistant(a *game.Assistant) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.assistants[a.PlayerID] = append(m.assistants[a.PlayerID], *a)
	return nil
}

func (m *mockRepo) RemoveAssistantByUUID(playerID uint, assistantUUID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	roster := m.assistants[playerID]
	for i, a := range roster {
		if a.AssistantUUID == assistantUUID {
			m.assistants[playerID] = append(roster[:i:i], roster[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *mockRepo) ListAssistants(playerID uint) ([]game.Assistant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]game.Assistant(nil), m.assistants[playerID]...), nil
}

func (m *mockRepo) AppendEncounterLog(entry *game.EncounterLog, limit int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logs = append(m.logs, *entry)
	if limit > 0 && len(m.logs) > limit {
		m.logs = m.logs[len(m.logs)-limit:]
	}
	return nil
}

func (m *mockRepo) ListEncounterLog(playerID uint, limit int) ([]game.EncounterLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]game.EncounterLog(nil), m.logs...), nil
}

func (m *mockRepo) SaveEngineState(playerID uint, blob []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states[playerID] = append([]byte(nil), blob...)
	return nil
}

func (m *mockRepo) LoadEngineState(playerID uint) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.states[playerID], nil
}

// manualScheduler queues callbacks until the test fires them.
type manualScheduler struct {
	mu      sync.Mutex
	next    battle.Token
	pending map[battle.Token]manualTimer
}

type manualTimer struct {
	delay time.Duration
	fn    func()
}

func newManualScheduler() *manualScheduler {
	return &manualScheduler{pending: make(map[battle.Token]manualTimer)}
}

func (s *manualScheduler) Schedule(delay time.Duration, fn func()) battle.Token {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	s.pending[s.next] = manualTimer{delay: delay, fn: fn}
	return s.next
}

func (s *manualScheduler) Cancel(token battle.Token) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, token)
}

// fire runs and removes the single soonest pending callback.
func (s *manualScheduler) fire() bool {
	s.mu.Lock()
	var best battle.Token
	var bestDelay time.Duration
	found := false
	for tok, t := range s.pending {
		if !found || t.delay < bestDelay || (t.delay == bestDelay && tok < best) {
			best, bestDelay, found = tok, t.delay, true
		}
	}
	if !found {
		s.mu.Unlock()
		return false
	}
	fn := s.pending[best].fn
	delete(s.pending, best)
	s.mu.Unlock()
	fn()
	return true
}

func (s *manualScheduler) pendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}
