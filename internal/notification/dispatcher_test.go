package notification

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slotworks/team-scheduler/internal/models"
)

type fakeMailer struct {
	mu   sync.Mutex
	sent []string
}

func (f *fakeMailer) SendBookingNotification(recipient string, b *models.Booking, tz string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, recipient)
	return nil
}

func (f *fakeMailer) recipients() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.sent...)
}

func TestDispatcher_DeliversOffRequestPath(t *testing.T) {
	mailer := &fakeMailer{}
	d := NewDispatcher(mailer)

	d.Dispatch(Notice{
		Recipient: "contractor@example.com",
		Booking:   &models.Booking{ID: 1},
		Timezone:  "America/New_York",
	})

	require.Eventually(t, func() bool {
		return len(mailer.recipients()) == 1
	}, time.Second, 10*time.Millisecond)

	assert.Equal(t, []string{"contractor@example.com"}, mailer.recipients())
}

func TestDispatcher_SkipsEmptyRecipient(t *testing.T) {
	mailer := &fakeMailer{}
	d := NewDispatcher(mailer)

	d.Dispatch(Notice{Recipient: "", Booking: &models.Booking{ID: 2}})

	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, mailer.recipients())
}

func TestDispatcher_NilIsSafe(t *testing.T) {
	var d *Dispatcher

	assert.NotPanics(t, func() {
		d.Dispatch(Notice{Recipient: "someone@example.com"})
	})
}
