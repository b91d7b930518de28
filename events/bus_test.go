package events

import "testing"

func TestSubscribeReceivesTypedPayload(t *testing.T) {
	bus := NewBus()

	var got []PhaseChanged
	Subscribe(bus, func(e PhaseChanged) { got = append(got, e) })

	bus.Publish(PhaseChanged{From: "IDLE", To: "SELECTING_TYPE"})
	bus.Publish(BallStopped{})

	if len(got) != 1 {
		t.Fatalf("got %d events, want 1", len(got))
	}
	if got[0].To != "SELECTING_TYPE" {
		t.Errorf("To = %q, want SELECTING_TYPE", got[0].To)
	}
}

func TestHandlersRunInRegistrationOrder(t *testing.T) {
	bus := NewBus()

	var order []int
	Subscribe(bus, func(BallStopped) { order = append(order, 1) })
	Subscribe(bus, func(BallStopped) { order = append(order, 2) })
	bus.Publish(BallStopped{})

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("order = %v, want [1 2]", order)
	}
	if bus.HandlerCount(EventBallStopped) != 2 {
		t.Errorf("HandlerCount = %d, want 2", bus.HandlerCount(EventBallStopped))
	}
}

func TestNestedPublishDispatchesImmediately(t *testing.T) {
	bus := NewBus()

	var order []string
	Subscribe(bus, func(BallBounced) {
		order = append(order, "bounce")
		bus.Publish(BoostWindowOpened{})
		order = append(order, "bounce-done")
	})
	Subscribe(bus, func(BoostWindowOpened) { order = append(order, "opened") })

	bus.Publish(BallBounced{})

	want := []string{"bounce", "opened", "bounce-done"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %q, want %q", i, order[i], want[i])
		}
	}
}

func TestBoostOutcomeString(t *testing.T) {
	cases := map[BoostOutcome]string{
		BoostPerfect: "perfect",
		BoostPartial: "partial",
		BoostMissed:  "missed",
	}
	for outcome, want := range cases {
		if got := outcome.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", outcome, got, want)
		}
	}
}
