package override

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/evanyans/focus/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	// Set up test time
	s.testNow = time.Date(2026, 1, 7, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) newSession(id string, startTime time.Time) *models.OverrideSession {
	return &models.OverrideSession{
		ID:            id,
		StartTime:     startTime,
		EndTime:       startTime.Add(5 * time.Minute),
		ChallengeType: "math",
		WasUsed:       true,
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndListSessions() {
	session := s.newSession("test-session-id", s.testNow)

	err := s.repo.SaveSession(context.Background(), &SaveSessionInput{
		Session: session,
	})
	s.Require().NoError(err)

	list, err := s.repo.ListSessions(context.Background(), &ListSessionsInput{})
	s.Require().NoError(err)
	s.Require().Len(list.Sessions, 1)

	retrieved := list.Sessions[0]
	s.Equal("test-session-id", retrieved.ID)
	s.Equal("math", retrieved.ChallengeType)
	s.True(retrieved.WasUsed)
	s.Equal(s.testNow.Unix(), retrieved.StartTime.Unix())
	s.Equal(s.testNow.Add(5*time.Minute).Unix(), retrieved.EndTime.Unix())
}

func (s *RedisRepositoryTestSuite) TestListSessionsMostRecentFirst() {
	// Save oldest first to prove ordering comes from the index
	oldest := s.newSession("session-1", s.testNow.Add(-2*time.Hour))
	middle := s.newSession("session-2", s.testNow.Add(-time.Hour))
	newest := s.newSession("session-3", s.testNow)

	for _, session := range []*models.OverrideSession{oldest, middle, newest} {
		err := s.repo.SaveSession(context.Background(), &SaveSessionInput{Session: session})
		s.Require().NoError(err)
	}

	list, err := s.repo.ListSessions(context.Background(), &ListSessionsInput{})
	s.Require().NoError(err)
	s.Require().Len(list.Sessions, 3)
	s.Equal("session-3", list.Sessions[0].ID)
	s.Equal("session-2", list.Sessions[1].ID)
	s.Equal("session-1", list.Sessions[2].ID)
}

func (s *RedisRepositoryTestSuite) TestListSessionsEmpty() {
	list, err := s.repo.ListSessions(context.Background(), &ListSessionsInput{})
	s.Require().NoError(err)
	s.Empty(list.Sessions)
}

func (s *RedisRepositoryTestSuite) TestDeleteAllSessions() {
	for i, startTime := range []time.Time{s.testNow, s.testNow.Add(time.Hour)} {
		session := s.newSession(string(rune('a'+i)), startTime)
		err := s.repo.SaveSession(context.Background(), &SaveSessionInput{Session: session})
		s.Require().NoError(err)
	}

	err := s.repo.DeleteAllSessions(context.Background(), &DeleteAllSessionsInput{})
	s.Require().NoError(err)

	list, err := s.repo.ListSessions(context.Background(), &ListSessionsInput{})
	s.Require().NoError(err)
	s.Empty(list.Sessions)
}
