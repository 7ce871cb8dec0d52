package bookings

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Status
		wantErr bool
	}{
		{name: "uppercase", input: "CONFIRMED", want: StatusConfirmed},
		{name: "lowercase is normalized", input: "confirmed", want: StatusConfirmed},
		{name: "mixed case", input: "Cancelled", want: StatusCancelled},
		{name: "surrounding whitespace", input: "  pending ", want: StatusPending},
		{name: "unknown value", input: "APPROVED", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStatus(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnknownStatus))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatusTransitions(t *testing.T) {
	allowed := []struct {
		from Status
		to   Status
	}{
		{StatusPending, StatusConfirmed},
		{StatusPending, StatusDeclined},
		{StatusPending, StatusCancelled},
		{StatusConfirmed, StatusCancelled},
		{StatusConfirmed, StatusCompleted},
	}
	for _, tr := range allowed {
		assert.True(t, tr.from.CanTransitionTo(tr.to), "%s -> %s should be allowed", tr.from, tr.to)
	}

	denied := []struct {
		from Status
		to   Status
	}{
		{StatusPending, StatusCompleted},
		{StatusPending, StatusPending},
		{StatusConfirmed, StatusPending},
		{StatusConfirmed, StatusDeclined},
		{StatusDeclined, StatusPending},
		{StatusCancelled, StatusConfirmed},
		{StatusCompleted, StatusCancelled},
	}
	for _, tr := range denied {
		assert.False(t, tr.from.CanTransitionTo(tr.to), "%s -> %s should be denied", tr.from, tr.to)
	}
}

func TestStatusIsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.True(t, StatusDeclined.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
}
