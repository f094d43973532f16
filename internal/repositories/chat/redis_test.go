package chat_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/bh2e-sheets/internal/entities/bh2e"
	"github.com/KirkDiggler/bh2e-sheets/internal/errors"
	redisclient "github.com/KirkDiggler/bh2e-sheets/internal/redis"
	"github.com/KirkDiggler/bh2e-sheets/internal/repositories/chat"
	"github.com/KirkDiggler/bh2e-sheets/internal/testutils"
)

type RedisChatTestSuite struct {
	suite.Suite
	miniRedis *miniredis.Miniredis
	client    redisclient.Client
	cleanup   func()
	repo      chat.Repository
	ctx       context.Context
}

func TestRedisChatSuite(t *testing.T) {
	suite.Run(t, new(RedisChatTestSuite))
}

func (s *RedisChatTestSuite) SetupTest() {
	s.client, s.miniRedis, s.cleanup = testutils.CreateTestRedisServer(s.T())

	repo, err := chat.NewRedis(&chat.RedisConfig{Client: s.client, LogLimit: 3})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisChatTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisChatTestSuite) message(n int) *bh2e.ChatMessage {
	return &bh2e.ChatMessage{
		ID:      fmt.Sprintf("msg_%d", n),
		Speaker: "Wren Ashdown",
		Content: fmt.Sprintf("message %d", n),
	}
}

func (s *RedisChatTestSuite) TestNewRedis() {
	_, err := chat.NewRedis(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = chat.NewRedis(&chat.RedisConfig{})
	s.True(errors.IsInvalidArgument(err))

	_, err = chat.NewRedis(&chat.RedisConfig{Client: s.client, LogLimit: -1})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisChatTestSuite) TestAppendKeepsOrder() {
	roll := &bh2e.RollRecord{Formula: "1d6", Total: 2, Results: []int{2}}
	first := s.message(1)
	first.Roll = roll

	_, err := s.repo.Append(s.ctx, chat.AppendInput{Message: first})
	s.Require().NoError(err)
	out, err := s.repo.Append(s.ctx, chat.AppendInput{Message: s.message(2)})
	s.Require().NoError(err)
	s.Equal(int64(2), out.Length)

	list, err := s.repo.List(s.ctx, chat.ListInput{})
	s.Require().NoError(err)
	s.Require().Len(list.Messages, 2)
	s.Equal("msg_1", list.Messages[0].ID)
	s.Equal(roll, list.Messages[0].Roll)
	s.Equal("msg_2", list.Messages[1].ID)
	s.Nil(list.Messages[1].Roll)
}

func (s *RedisChatTestSuite) TestAppendTrimsOldest() {
	for i := 1; i <= 5; i++ {
		_, err := s.repo.Append(s.ctx, chat.AppendInput{Message: s.message(i)})
		s.Require().NoError(err)
	}

	list, err := s.repo.List(s.ctx, chat.ListInput{})
	s.Require().NoError(err)
	s.Require().Len(list.Messages, 3)
	s.Equal("msg_3", list.Messages[0].ID)
	s.Equal("msg_5", list.Messages[2].ID)
}

func (s *RedisChatTestSuite) TestListLimit() {
	for i := 1; i <= 3; i++ {
		_, err := s.repo.Append(s.ctx, chat.AppendInput{Message: s.message(i)})
		s.Require().NoError(err)
	}

	list, err := s.repo.List(s.ctx, chat.ListInput{Limit: 2})
	s.Require().NoError(err)
	s.Require().Len(list.Messages, 2)
	s.Equal("msg_2", list.Messages[0].ID)

	_, err = s.repo.List(s.ctx, chat.ListInput{Limit: -1})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisChatTestSuite) TestListSkipsCorruptEntries() {
	_, err := s.repo.Append(s.ctx, chat.AppendInput{Message: s.message(1)})
	s.Require().NoError(err)
	_, err = s.miniRedis.Push(chat.GetKey(), "{not json")
	s.Require().NoError(err)

	list, err := s.repo.List(s.ctx, chat.ListInput{})
	s.Require().NoError(err)
	s.Len(list.Messages, 1)
}

func (s *RedisChatTestSuite) TestAppendValidation() {
	_, err := s.repo.Append(s.ctx, chat.AppendInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Append(s.ctx, chat.AppendInput{Message: &bh2e.ChatMessage{Content: "hi"}})
	s.True(errors.IsInvalidArgument(err))
}
