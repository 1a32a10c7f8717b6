package notify

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotegen/internal/ports"
)

func TestFeed_RecentNewestFirst(t *testing.T) {
	f := NewFeed(time.Minute, 10)
	ctx := context.Background()

	f.Notify(ctx, ports.Notification{Level: ports.LevelInfo, Message: "one"})
	f.Notify(ctx, ports.Notification{Level: ports.LevelSuccess, Message: "two"})
	f.Notify(ctx, ports.Notification{Level: ports.LevelError, Message: "three"})

	got := f.Recent(0)

	require.Len(t, got, 3)
	assert.Equal(t, "three", got[0].Message)
	assert.Equal(t, ports.LevelError, got[0].Level)
	assert.Equal(t, uint64(3), got[0].ID)
	assert.Equal(t, "one", got[2].Message)

	limited := f.Recent(2)
	require.Len(t, limited, 2)
	assert.Equal(t, "two", limited[1].Message)
}

func TestFeed_HistoryBound(t *testing.T) {
	f := NewFeed(time.Minute, 3)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		f.Notify(ctx, ports.Notification{Level: ports.LevelInfo, Message: fmt.Sprintf("m%d", i)})
	}

	got := f.Recent(0)

	require.Len(t, got, 3)
	assert.Equal(t, []string{"m5", "m4", "m3"}, []string{got[0].Message, got[1].Message, got[2].Message})
}

func TestFeed_Expiry(t *testing.T) {
	f := NewFeed(20*time.Millisecond, 10)

	f.Notify(context.Background(), ports.Notification{Level: ports.LevelInfo, Message: "short"})

	require.Eventually(t, func() bool {
		return len(f.Recent(0)) == 0
	}, time.Second, 10*time.Millisecond)
}

func TestFeed_ConcurrentNotify(t *testing.T) {
	f := NewFeed(time.Minute, 1000)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()
			f.Notify(ctx, ports.Notification{Level: ports.LevelInfo, Message: "x"})
		}()
	}

	wg.Wait()

	got := f.Recent(0)
	require.Len(t, got, 50)
	assert.Equal(t, uint64(50), got[0].ID)
}

func TestConsole_Notify(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.Notify(context.Background(), ports.Notification{Level: ports.LevelSuccess, Message: "Quote added successfully!"})
	c.Notify(context.Background(), ports.Notification{Level: "unknown", Message: "fallback"})

	assert.Equal(t, "Quote added successfully!\nfallback\n", buf.String())
}

type countingNotifier struct{ n int }

func (c *countingNotifier) Notify(context.Context, ports.Notification) { c.n++ }

func TestMulti_Notify(t *testing.T) {
	a, b := &countingNotifier{}, &countingNotifier{}

	Multi{a, nil, b}.Notify(context.Background(), ports.Notification{Message: "x"})

	assert.Equal(t, 1, a.n)
	assert.Equal(t, 1, b.n)
}
