package command

import (
	"context"
	"errors"
	"testing"

	"github.com/Eatkin/reddit-cli/internal/backend"
)

func TestExecuteJoinsTask(t *testing.T) {
	bus := New(nil)
	defer bus.Stop()

	task, cmd := bus.Execute(context.Background(), Request{
		Owner: "post-list#1",
		Kind:  backend.KindFeed,
		Label: "fetch news",
		Work: func(ctx context.Context) (interface{}, error) {
			return "posts", nil
		},
	})
	if task == nil || cmd == nil {
		t.Fatalf("expected task and command")
	}
	msg, ok := cmd().(ResultMsg)
	if !ok {
		t.Fatalf("expected ResultMsg")
	}
	if msg.Result.Data != "posts" || msg.Label != "fetch news" || msg.Result.TaskID != task.ID {
		t.Fatalf("unexpected message %+v", msg)
	}
}

func TestExecuteWithoutWorkIsNil(t *testing.T) {
	bus := New(nil)
	defer bus.Stop()
	if task, cmd := bus.Execute(context.Background(), Request{Owner: "x"}); task != nil || cmd != nil {
		t.Fatalf("expected nil task and command")
	}
}

func TestExecuteObservesOwnerCancellation(t *testing.T) {
	bus := New(backend.NewRunner())
	defer bus.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	_, cmd := bus.Execute(ctx, Request{
		Owner: "post-detail#3",
		Kind:  backend.KindImage,
		Work: func(ctx context.Context) (interface{}, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	})
	cancel()
	msg := cmd().(ResultMsg)
	if !msg.Result.Cancelled || !errors.Is(msg.Result.Err, context.Canceled) {
		t.Fatalf("expected cancelled result, got %+v", msg.Result)
	}
}
