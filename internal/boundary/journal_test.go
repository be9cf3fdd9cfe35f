package boundary

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournal_KeepsMostRecent(t *testing.T) {
	j := NewJournal(2)
	_, fc := sampleFailure()
	for i := 1; i <= 3; i++ {
		fc.ID = fmt.Sprintf("f-%d", i)
		j.Report(errors.New("boom"), fc)
	}

	require.Equal(t, 2, j.Len())
	got := j.Entries()
	assert.Equal(t, "f-2", got[0].Context.ID)
	assert.Equal(t, "f-3", got[1].Context.ID)
}

func TestJournal_EntriesIsACopy(t *testing.T) {
	j := NewJournal(4)
	err, fc := sampleFailure()
	j.Report(err, fc)

	got := j.Entries()
	got[0].Context.Boundary = "changed"
	assert.Equal(t, "emergency", j.Entries()[0].Context.Boundary)
}

func TestJournal_ZeroLimitKeepsOne(t *testing.T) {
	j := NewJournal(0)
	err, fc := sampleFailure()
	j.Report(err, fc)
	j.Report(err, fc)
	assert.Equal(t, 1, j.Len())
}

func TestJournal_WorksInMultiReporter(t *testing.T) {
	j := NewJournal(8)
	var _ Reporter = j
	err, fc := sampleFailure()
	MultiReporter{j, nil}.Report(err, fc)
	require.Equal(t, 1, j.Len())
	assert.ErrorIs(t, j.Entries()[0].Err, err)
}
