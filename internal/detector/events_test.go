package detector

import (
	"context"
	"phishguard/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHub_FiltersByContext(t *testing.T) {
	h := newHub(4)
	tab1, cancel1 := h.subscribe("tab-1")
	defer cancel1()
	all, cancelAll := h.subscribe("")
	defer cancelAll()

	h.publish(context.Background(), domain.Event{Type: domain.EventVerdict, ContextID: "tab-2"})
	h.publish(context.Background(), domain.Event{Type: domain.EventVerdict, ContextID: "tab-1"})

	require.Equal(t, "tab-1", (<-tab1).ContextID)
	require.Empty(t, tab1)
	require.Equal(t, "tab-2", (<-all).ContextID)
	require.Equal(t, "tab-1", (<-all).ContextID)
}

func TestHub_DropsForSlowSubscriber(t *testing.T) {
	h := newHub(1)
	ch, cancel := h.subscribe("tab-1")
	defer cancel()

	for range 3 {
		h.publish(context.Background(), domain.Event{ContextID: "tab-1"})
	}

	require.Len(t, ch, 1)
}

func TestHub_CancelClosesOnce(t *testing.T) {
	h := newHub(1)
	ch, cancel := h.subscribe("tab-1")

	cancel()
	cancel()

	_, open := <-ch
	require.False(t, open)

	// publishing after cancel must not panic on the closed channel
	h.publish(context.Background(), domain.Event{ContextID: "tab-1"})
}

func TestTracker(t *testing.T) {
	tr := newTracker()

	require.True(t, tr.current("tab-1", "https://a.example/"))

	tr.navigate("tab-1", "https://a.example/")
	require.True(t, tr.current("tab-1", "https://a.example/"))

	tr.navigate("tab-1", "https://b.example/")
	require.False(t, tr.current("tab-1", "https://a.example/"))
	require.True(t, tr.current("tab-1", "https://b.example/"))

	tr.navigate("", "https://c.example/")
	require.True(t, tr.current("", "https://c.example/"))
}
