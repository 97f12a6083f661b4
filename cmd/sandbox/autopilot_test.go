package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/annel0/tilecraft/internal/game"
)

func TestAutopilotIssuesPlayableCommands(t *testing.T) {
	a := newAutopilot(1)
	kinds := map[game.CommandKind]bool{}
	for i := 0; i < 500; i++ {
		cmd := a.next()
		assert.NotEqual(t, game.CmdQuit, cmd.Kind)
		kinds[cmd.Kind] = true
	}
	assert.True(t, kinds[game.CmdMove])
	assert.True(t, kinds[game.CmdInteract])
	assert.True(t, kinds[game.CmdCraft])
}

func TestAutopilotStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	commands := make(chan game.Command)
	done := make(chan struct{})

	go func() {
		newAutopilot(2).Drive(ctx, commands, time.Millisecond)
		close(done)
	}()
	<-commands
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("автопилот не остановился")
	}
}
