package messaging

import (
	"context"
	"testing"

	"github.com/KirkDiggler/mixladder/internal/random"
	randomMocks "github.com/KirkDiggler/mixladder/internal/random/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockRandom *randomMocks.MockSource
	service    Service
	ctx        context.Context
}

func (s *MessagingServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRandom = randomMocks.NewMockSource(s.mockCtrl)
	s.ctx = context.Background()

	svc, err := New(&Config{Random: s.mockRandom})
	s.Require().NoError(err)
	s.service = svc
}

func (s *MessagingServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *MessagingServiceTestSuite) TestNew_NilConfig() {
	_, err := New(nil)
	s.Error(err)

	svc, err := New(&Config{})
	s.NoError(err)
	s.NotNil(svc.rand)
}

func (s *MessagingServiceTestSuite) TestGetChillZoneMessage() {
	s.mockRandom.EXPECT().Intn(4).Return(1)

	out, err := s.service.GetChillZoneMessage(s.ctx, &GetChillZoneMessageInput{
		Nicknames: []string{"ana", "topson", "ceb"},
	})
	s.Require().NoError(err)
	s.Equal("Chill zone: ana, topson and ceb. Your lives are safe until next round.", out.Message)
}

func (s *MessagingServiceTestSuite) TestGetChillZoneMessage_Empty() {
	s.mockRandom.EXPECT().Intn(3).Return(2)

	out, err := s.service.GetChillZoneMessage(s.ctx, &GetChillZoneMessageInput{})
	s.Require().NoError(err)
	s.Equal("The chill zone is empty. No excuses this round.", out.Message)
}

func (s *MessagingServiceTestSuite) TestGetLotteryMessage() {
	s.mockRandom.EXPECT().Intn(3).Return(0)

	out, err := s.service.GetLotteryMessage(s.ctx, &GetLotteryMessageInput{WinnerName: "puppey"})
	s.Require().NoError(err)
	s.Contains(out.Message, "puppey")

	_, err = s.service.GetLotteryMessage(s.ctx, &GetLotteryMessageInput{})
	s.Error(err)
}

func (s *MessagingServiceTestSuite) TestGetVictoryMessage() {
	gomock.InOrder(
		s.mockRandom.EXPECT().Intn(4).Return(0),
		s.mockRandom.EXPECT().Intn(3).Return(2),
	)

	out, err := s.service.GetVictoryMessage(s.ctx, &GetVictoryMessageInput{CaptainName: "n0tail"})
	s.Require().NoError(err)
	s.Equal("GG WP!", out.Title)
	s.Equal("The draft diff was real. Congratulations to n0tail.", out.Message)
}

func (s *MessagingServiceTestSuite) TestGetEliminationMessage() {
	out, err := s.service.GetEliminationMessage(s.ctx, &GetEliminationMessageInput{})
	s.Require().NoError(err)
	s.Empty(out.Message)

	s.mockRandom.EXPECT().Intn(3).Return(1)
	out, err = s.service.GetEliminationMessage(s.ctx, &GetEliminationMessageInput{Nicknames: []string{"a", "b"}})
	s.Require().NoError(err)
	s.Equal("No buyback for a and b. The ladder moves on.", out.Message)
}

func (s *MessagingServiceTestSuite) TestNilInput() {
	_, err := s.service.GetChillZoneMessage(s.ctx, nil)
	s.Error(err)
	_, err = s.service.GetLotteryMessage(s.ctx, nil)
	s.Error(err)
	_, err = s.service.GetVictoryMessage(s.ctx, nil)
	s.Error(err)
	_, err = s.service.GetEliminationMessage(s.ctx, nil)
	s.Error(err)
}

func (s *MessagingServiceTestSuite) TestSeededSourceIsDeterministic() {
	a, err := New(&Config{Random: random.New(&random.Config{Seed: 5})})
	s.Require().NoError(err)
	b, err := New(&Config{Random: random.New(&random.Config{Seed: 5})})
	s.Require().NoError(err)

	input := &GetChillZoneMessageInput{Nicknames: []string{"x"}}
	for i := 0; i < 5; i++ {
		outA, err := a.GetChillZoneMessage(s.ctx, input)
		s.Require().NoError(err)
		outB, err := b.GetChillZoneMessage(s.ctx, input)
		s.Require().NoError(err)
		s.Equal(outA.Message, outB.Message)
	}
}

func TestMessagingServiceSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}
