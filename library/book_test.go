package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBookValidation(t *testing.T) {
	testCases := []struct {
		name             string
		id               int
		total, available int
		wantErr          bool
	}{
		{"valid", 1, 3, 3, false},
		{"valid partial availability", 2, 3, 1, false},
		{"zero copies", 3, 0, 0, false},
		{"zero id", 0, 1, 1, true},
		{"negative id", -4, 1, 1, true},
		{"negative total", 1, -1, 0, true},
		{"negative available", 1, 2, -1, true},
		{"available exceeds total", 1, 2, 3, true},
	}
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBook(tt.id, "Title", "Author", "isbn", tt.total, tt.available)
			if tt.wantErr {
				var verr *ValidationError
				require.ErrorAs(t, err, &verr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.id, b.ID)
			assert.Equal(t, tt.total, b.TotalCopies)
			assert.Equal(t, tt.available, b.AvailableCopies)
		})
	}
}

func TestBookCheckoutDecrementsUntilEmpty(t *testing.T) {
	b, err := NewBook(1, "Clean Code", "Robert C. Martin", "9780132350884", 2, 2)
	require.NoError(t, err)

	require.NoError(t, b.Checkout())
	assert.Equal(t, 1, b.AvailableCopies)
	assert.True(t, b.IsAvailable())

	require.NoError(t, b.Checkout())
	assert.Equal(t, 0, b.AvailableCopies)
	assert.False(t, b.IsAvailable())

	// Empty shelf: checkout fails and counts stay put.
	err = b.Checkout()
	var serr *StateError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, 0, b.AvailableCopies)
	assert.Equal(t, 2, b.TotalCopies)
}

func TestBookReturnCopyGuardsAgainstOverReturn(t *testing.T) {
	b, err := NewBook(1, "Clean Code", "Robert C. Martin", "", 2, 1)
	require.NoError(t, err)

	require.NoError(t, b.ReturnCopy())
	assert.Equal(t, 2, b.AvailableCopies)

	err = b.ReturnCopy()
	var serr *StateError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, 2, b.AvailableCopies)
}

func TestSetTotalCopies(t *testing.T) {
	b, err := NewBook(1, "T", "A", "", 5, 3)
	require.NoError(t, err)

	var verr *ValidationError
	require.ErrorAs(t, b.SetTotalCopies(-1), &verr)
	// Dropping below the available count would orphan checked-out copies.
	require.ErrorAs(t, b.SetTotalCopies(2), &verr)
	assert.Equal(t, 5, b.TotalCopies)

	require.NoError(t, b.SetTotalCopies(3))
	assert.Equal(t, 3, b.TotalCopies)
	require.NoError(t, b.SetTotalCopies(10))
	assert.Equal(t, 10, b.TotalCopies)
}

func TestSetAvailableCopies(t *testing.T) {
	b, err := NewBook(1, "T", "A", "", 5, 3)
	require.NoError(t, err)

	var verr *ValidationError
	require.ErrorAs(t, b.SetAvailableCopies(-1), &verr)
	require.ErrorAs(t, b.SetAvailableCopies(6), &verr)
	assert.Equal(t, 3, b.AvailableCopies)

	require.NoError(t, b.SetAvailableCopies(0))
	assert.False(t, b.IsAvailable())
	require.NoError(t, b.SetAvailableCopies(5))
	assert.Equal(t, 5, b.AvailableCopies)
}
