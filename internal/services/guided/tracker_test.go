package guided

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scanhelper/internal/domain"
)

type recordingSink struct {
	mu   sync.Mutex
	recs []domain.ScanRecord
}

func (s *recordingSink) Enqueue(rec domain.ScanRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recs = append(s.recs, rec)
}

func twoItems() []domain.Item {
	return []domain.Item{
		{ItemCode: "IC-1", PartNumber: "1138661", ScansRequired: 2},
		{ItemCode: "IC-2", PartNumber: "1234567", ScansRequired: 1},
	}
}

func TestNewRejectsEmptyManifest(t *testing.T) {
	_, err := New("s", nil, nil)
	assert.ErrorIs(t, err, ErrEmptyManifest)
}

func TestScanAdvancesAndCompletes(t *testing.T) {
	sink := &recordingSink{}
	tr, err := New("session_a", twoItems(), sink)
	require.NoError(t, err)

	res, err := tr.Scan("pid.sick.com/1138661/23400015")
	require.NoError(t, err)
	assert.Equal(t, OutcomeAccepted, res.Outcome)
	assert.Equal(t, 1, res.ScansRemaining)
	assert.Equal(t, 0, res.CurrentIndex)

	res, err = tr.Scan("pid.sick.com/1138661/23400016")
	require.NoError(t, err)
	assert.Equal(t, OutcomeAdvanced, res.Outcome)
	assert.Equal(t, 0, res.ScansRemaining)
	assert.Equal(t, 1, res.CurrentIndex)

	st := tr.State()
	assert.Equal(t, 1, st.Index)
	assert.Equal(t, "1234567", st.Item.PartNumber)
	assert.Equal(t, 1, st.Progress.ScansRemaining)

	res, err = tr.Scan("1234567")
	require.NoError(t, err)
	assert.Equal(t, OutcomeComplete, res.Outcome)
	assert.True(t, tr.State().Complete)

	progress := tr.Progress()
	assert.Equal(t, []string{"23400015", "23400016"}, progress[0].SerialNumbers)
	assert.Equal(t, []string{"1234567"}, progress[1].SerialNumbers)

	require.Len(t, sink.recs, 3)
	assert.Equal(t, "IC-1", sink.recs[0].ItemCode)
	assert.Equal(t, "23400015", sink.recs[0].SerialNumber)
	assert.Equal(t, "session_a", sink.recs[0].Session)
	assert.Equal(t, "IC-2", sink.recs[2].ItemCode)
}

func TestScanMismatchLeavesProgress(t *testing.T) {
	sink := &recordingSink{}
	tr, err := New("s", []domain.Item{{ItemCode: "A", PartNumber: "1234567", ScansRequired: 3}}, sink)
	require.NoError(t, err)

	_, err = tr.Scan("7654321")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMismatch)
	assert.ErrorIs(t, err, &domain.ScanError{Kind: domain.KindMismatch, Reason: domain.ReasonWrongPart})
	assert.Equal(t, 3, tr.State().Progress.ScansRemaining)
	assert.Empty(t, sink.recs)
}

func TestScanUnreadable(t *testing.T) {
	tr, err := New("s", twoItems(), nil)
	require.NoError(t, err)

	for _, in := range []string{"12345", "", "0000000000000000pid.sick.com/"} {
		_, err = tr.Scan(in)
		assert.ErrorIs(t, err, &domain.ScanError{Kind: domain.KindMismatch, Reason: domain.ReasonUnreadable}, in)
	}
	assert.Equal(t, 2, tr.State().Progress.ScansRemaining)
}

func TestSkipBackPreservesProgress(t *testing.T) {
	tr, err := New("s", twoItems(), nil)
	require.NoError(t, err)

	_, err = tr.Scan("pid.sick.com/1138661/23400015")
	require.NoError(t, err)
	before := tr.State()

	st := tr.Skip()
	assert.Equal(t, 1, st.Index)
	st = tr.Back()
	assert.Equal(t, before, st)
	assert.Equal(t, 1, st.Progress.ScansRemaining)
	assert.Equal(t, []string{"23400015"}, st.Progress.SerialNumbers)
}

func TestNavigationBounds(t *testing.T) {
	tr, err := New("s", twoItems(), nil)
	require.NoError(t, err)

	st := tr.Back()
	assert.Equal(t, 0, st.Index)
	assert.False(t, st.CanBack)
	assert.True(t, st.CanSkip)

	tr.Skip()
	st = tr.Skip()
	assert.Equal(t, 1, st.Index)
	assert.False(t, st.CanSkip)
}

func TestScanFinishedItemIsIgnored(t *testing.T) {
	sink := &recordingSink{}
	tr, err := New("s", twoItems(), sink)
	require.NoError(t, err)

	tr.Skip()
	_, err = tr.Scan("1234567")
	require.NoError(t, err)
	require.True(t, tr.State().Complete)

	res, err := tr.Scan("1234567")
	require.NoError(t, err)
	assert.Equal(t, OutcomeIgnored, res.Outcome)
	assert.Len(t, sink.recs, 1)

	// Going back resumes the untouched first item.
	st := tr.Back()
	assert.False(t, st.Complete)
	assert.Equal(t, 2, st.Progress.ScansRemaining)
}

func TestCompleteSurvivesNavigation(t *testing.T) {
	tr, err := New("s", twoItems(), nil)
	require.NoError(t, err)

	for _, code := range []string{"pid.sick.com/1138661/23400015", "pid.sick.com/1138661/23400016", "1234567"} {
		_, err = tr.Scan(code)
		require.NoError(t, err)
	}
	require.True(t, tr.State().Complete)

	st := tr.Back()
	assert.Equal(t, 0, st.Index)
	assert.True(t, st.Complete)

	st = tr.Skip()
	assert.Equal(t, 1, st.Index)
	assert.True(t, st.Complete)

	res, err := tr.Scan("1234567")
	require.NoError(t, err)
	assert.Equal(t, OutcomeIgnored, res.Outcome)
	assert.True(t, tr.State().Complete)
	for _, p := range tr.Progress() {
		assert.Zero(t, p.ScansRemaining)
	}
}

func TestConcurrentScansOnSharedTracker(t *testing.T) {
	tr, err := New("s", []domain.Item{{ItemCode: "A", PartNumber: "1234567", ScansRequired: 50}}, nil)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 80 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = tr.Scan("1234567")
		}()
	}
	wg.Wait()

	p := tr.Progress()[0]
	assert.Equal(t, 0, p.ScansRemaining)
	assert.Len(t, p.SerialNumbers, 50)
}
