package runtime

import (
	"context"
	"testing"
	"time"
)

func TestAfterPostsMessage(t *testing.T) {
	got := make(chan Message, 1)
	effect := After(time.Millisecond, KeyMsg{Rune: 'a'})

	go effect.Run(context.Background(), func(msg Message) bool {
		got <- msg
		return true
	})

	select {
	case msg := <-got:
		key, ok := msg.(KeyMsg)
		if !ok || key.Rune != 'a' {
			t.Fatalf("posted message = %+v", msg)
		}
	case <-time.After(time.Second):
		t.Fatalf("timed out waiting for delayed message")
	}
}

func TestAfterZeroDelayPostsImmediately(t *testing.T) {
	var got Message
	effect := After(0, KeyMsg{Rune: 'z'})
	effect.Run(context.Background(), func(msg Message) bool {
		got = msg
		return true
	})
	key, ok := got.(KeyMsg)
	if !ok || key.Rune != 'z' {
		t.Fatalf("posted message = %+v", got)
	}
}

func TestAfterRespectsCancel(t *testing.T) {
	got := make(chan Message, 1)
	done := make(chan struct{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	effect := After(time.Hour, KeyMsg{Rune: 'a'})
	go func() {
		effect.Run(ctx, func(msg Message) bool {
			got <- msg
			return true
		})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("effect did not exit on cancel")
	}
	select {
	case msg := <-got:
		t.Fatalf("unexpected message after cancel: %+v", msg)
	default:
	}
}

func TestEveryPostsRepeatedly(t *testing.T) {
	got := make(chan Message, 8)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	effect := Every(time.Millisecond, func(now time.Time) Message {
		return TickMsg{Time: now}
	})
	go effect.Run(ctx, func(msg Message) bool {
		select {
		case got <- msg:
		default:
		}
		return true
	})

	for i := 0; i < 2; i++ {
		select {
		case <-got:
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for tick %d", i)
		}
	}
}

func TestEveryNilMessageSkipsPost(t *testing.T) {
	posted := make(chan struct{}, 1)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	effect := Every(time.Millisecond, func(time.Time) Message { return nil })
	go effect.Run(ctx, func(Message) bool {
		select {
		case posted <- struct{}{}:
		default:
		}
		return true
	})

	select {
	case <-posted:
		t.Fatalf("nil message should not be posted")
	case <-time.After(20 * time.Millisecond):
	}
}
