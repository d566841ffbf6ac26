package restriction

import (
	"context"
	"testing"

	"github.com/evanyans/focus/internal/models"
	"github.com/stretchr/testify/suite"
)

type ShieldServiceTestSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *ShieldServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func TestShieldServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ShieldServiceTestSuite))
}

func (s *ShieldServiceTestSuite) TestApplyBlocking() {
	svc := New(&Config{Authorized: true})

	selection := &models.AppSelection{
		AppIDs: []string{"app-1", "app-2"},
	}

	err := svc.ApplyBlocking(s.ctx, &ApplyBlockingInput{Selection: selection})
	s.Require().NoError(err)

	s.True(svc.IsBlocking())
	s.Equal(selection, svc.CurrentSelection())
}

func (s *ShieldServiceTestSuite) TestRemoveBlocking() {
	svc := New(&Config{Authorized: true})

	err := svc.ApplyBlocking(s.ctx, &ApplyBlockingInput{
		Selection: &models.AppSelection{AppIDs: []string{"app-1"}},
	})
	s.Require().NoError(err)

	err = svc.RemoveBlocking(s.ctx)
	s.Require().NoError(err)

	s.False(svc.IsBlocking())
	s.Nil(svc.CurrentSelection())
}

func (s *ShieldServiceTestSuite) TestUnauthorizedApplyIsNoOp() {
	svc := New(&Config{Authorized: false})

	err := svc.ApplyBlocking(s.ctx, &ApplyBlockingInput{
		Selection: &models.AppSelection{AppIDs: []string{"app-1"}},
	})
	s.Require().NoError(err)

	s.False(svc.IsBlocking())
	s.Nil(svc.CurrentSelection())
}

func (s *ShieldServiceTestSuite) TestSetAuthorized() {
	svc := New(nil)
	s.False(svc.IsAuthorized())

	svc.SetAuthorized(true)
	s.True(svc.IsAuthorized())

	err := svc.ApplyBlocking(s.ctx, &ApplyBlockingInput{
		Selection: &models.AppSelection{AppIDs: []string{"app-1"}},
	})
	s.Require().NoError(err)
	s.True(svc.IsBlocking())
}

func (s *ShieldServiceTestSuite) TestApplyBlockingNilInput() {
	svc := New(&Config{Authorized: true})

	err := svc.ApplyBlocking(s.ctx, nil)
	s.Require().NoError(err)

	s.True(svc.IsBlocking())
	s.Nil(svc.CurrentSelection())
}
