package client

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/summarium/internal/config"
	"github.com/MKhiriev/summarium/internal/logger"
	"github.com/MKhiriev/summarium/internal/tui"
	"github.com/MKhiriev/summarium/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedScreens struct {
	logins   []error
	sessions []bool
	loopErr  error

	loginCalls int
	loopCalls  int
}

func (s *scriptedScreens) LoginFlow(context.Context) (models.Token, error) {
	err := s.logins[s.loginCalls]
	s.loginCalls++
	return models.Token{}, err
}

func (s *scriptedScreens) MainLoop(context.Context) (bool, error) {
	if s.loopErr != nil {
		return false, s.loopErr
	}
	logout := s.sessions[s.loopCalls]
	s.loopCalls++
	return logout, nil
}

type countingBackground struct {
	running      bool
	starts, stop int
}

func (b *countingBackground) Run(context.Context) {
	b.running = true
	b.starts++
}

func (b *countingBackground) Stop() {
	b.running = false
	b.stop++
}

type fakeSigner struct {
	calls int
	err   error
}

func (f *fakeSigner) Logout(context.Context) error {
	f.calls++
	return f.err
}

func TestNewApp_RequiresDependencies(t *testing.T) {
	_, err := NewApp(nil, nil, config.ClientWorkers{}, logger.Nop())
	assert.ErrorIs(t, err, errMissingDependency)
}

func TestApp_QuitOnLogin(t *testing.T) {
	screens := &scriptedScreens{logins: []error{tui.ErrUserQuit}}
	bg := &countingBackground{}

	require.NoError(t, newApp(&fakeSigner{}, screens, bg, logger.Nop()).run(context.Background()))
	assert.Zero(t, bg.starts)
}

func TestApp_LogoutReturnsToLogin(t *testing.T) {
	screens := &scriptedScreens{
		logins:   []error{nil, nil},
		sessions: []bool{true, false},
	}
	bg := &countingBackground{}
	signer := &fakeSigner{err: errors.New("offline")}

	require.NoError(t, newApp(signer, screens, bg, logger.Nop()).run(context.Background()))

	assert.Equal(t, 2, screens.loginCalls)
	assert.Equal(t, 1, signer.calls)
	assert.Equal(t, 2, bg.starts)
	assert.Equal(t, 2, bg.stop)
	assert.False(t, bg.running)
}

func TestApp_Errors(t *testing.T) {
	boom := errors.New("boom")

	t.Run("login", func(t *testing.T) {
		screens := &scriptedScreens{logins: []error{boom}}
		err := newApp(&fakeSigner{}, screens, &countingBackground{}, logger.Nop()).run(context.Background())
		assert.ErrorIs(t, err, boom)
	})

	t.Run("main loop stops workers", func(t *testing.T) {
		screens := &scriptedScreens{logins: []error{nil}, loopErr: boom}
		bg := &countingBackground{}
		err := newApp(&fakeSigner{}, screens, bg, logger.Nop()).run(context.Background())
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 1, bg.stop)
	})
}
