package notify

import (
	"context"
	"testing"

	"queueup/karaoke-backend/internal/domain"
)

func update(code string) domain.QueueUpdate {
	return domain.QueueUpdate{AccessCode: code, Status: domain.StatusWaiting}
}

func TestHub_SubscribersReceiveOwnSessionOnly(t *testing.T) {
	h := NewHub()
	defer h.Close()

	chA, unsubA := h.Subscribe("AAAAAA")
	defer unsubA()
	chB, unsubB := h.Subscribe("BBBBBB")
	defer unsubB()

	h.Publish(context.Background(), update("AAAAAA"))

	select {
	case got := <-chA:
		if got.AccessCode != "AAAAAA" {
			t.Errorf("expected update for AAAAAA, got %s", got.AccessCode)
		}
	default:
		t.Fatal("subscriber A received nothing")
	}

	select {
	case got := <-chB:
		t.Errorf("subscriber B received update for %s", got.AccessCode)
	default:
	}
}

func TestHub_UnsubscribeClosesChannel(t *testing.T) {
	h := NewHub()
	defer h.Close()

	ch, unsub := h.Subscribe("AAAAAA")
	unsub()

	if _, ok := <-ch; ok {
		t.Error("expected channel closed after unsubscribe")
	}

	// publishing after unsubscribe must not panic
	h.Publish(context.Background(), update("AAAAAA"))
}

func TestHub_UnsubscribeTwiceIsSafe(t *testing.T) {
	h := NewHub()
	defer h.Close()

	_, unsub := h.Subscribe("AAAAAA")
	unsub()
	unsub()
}

func TestHub_FullBufferDropsUpdate(t *testing.T) {
	h := NewHub()
	defer h.Close()

	ch, unsub := h.Subscribe("AAAAAA")
	defer unsub()

	// overflow the subscriber buffer; Publish must never block
	for i := 0; i < 100; i++ {
		h.Publish(context.Background(), update("AAAAAA"))
	}

	received := 0
	for {
		select {
		case <-ch:
			received++
			continue
		default:
		}
		break
	}
	if received == 0 || received > 16 {
		t.Errorf("expected between 1 and 16 buffered updates, got %d", received)
	}
}

func TestHub_CloseClosesAllSubscribers(t *testing.T) {
	h := NewHub()
	chA, _ := h.Subscribe("AAAAAA")
	chB, _ := h.Subscribe("BBBBBB")

	h.Close()
	h.Close() // idempotent

	if _, ok := <-chA; ok {
		t.Error("expected subscriber A channel closed")
	}
	if _, ok := <-chB; ok {
		t.Error("expected subscriber B channel closed")
	}
}

func TestHub_SubscribeAfterCloseYieldsClosedChannel(t *testing.T) {
	h := NewHub()
	h.Close()

	ch, unsub := h.Subscribe("AAAAAA")
	if _, ok := <-ch; ok {
		t.Error("expected closed channel from a closed hub")
	}
	unsub()
	unsub()

	// the late subscriber must not have been registered
	h.Publish(context.Background(), update("AAAAAA"))
}
