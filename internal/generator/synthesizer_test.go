package generator

import (
	"math"
	"strconv"
	"testing"
	"time"

	"order-datagen/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSynth(t *testing.T, seed int64, window Window, mode Mode) (*Synthesizer, Source) {
	t.Helper()
	src := NewStream(seed)
	s, err := NewSynthesizer(BuildVocabulary(src), window, mode)
	require.NoError(t, err)
	return s, src
}

func rows(t *testing.T, s *Synthesizer, src Source, n int) []models.Record {
	t.Helper()
	out := make([]models.Record, 0, n)
	for i := 0; i < n; i++ {
		r, err := s.Row(src, i)
		require.NoError(t, err)
		out = append(out, r)
	}
	return out
}

func parseTS(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339Nano, s)
	require.NoError(t, err, s)
	return ts
}

// round2 rounds the exact binary value of v to cents, ties to even
func round2(t *testing.T, v float64) float64 {
	t.Helper()
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	require.NoError(t, err)
	return r
}

func TestBuildVocabulary(t *testing.T) {
	v := BuildVocabulary(NewStream(42))
	assert.Len(t, v.Suppliers, SupplierCount)
	assert.Len(t, v.Manufacturers, ManufacturerCount)

	again := BuildVocabulary(NewStream(42))
	assert.Equal(t, v, again)
}

func TestRowInvariants(t *testing.T) {
	window := Window{Start: day(2015, 1, 1), End: day(2025, 12, 31)}
	s, src := newSynth(t, 42, window, ModeRecent)
	limit := window.End.Add(PaymentGrace)

	for i, r := range rows(t, s, src, 5000) {
		assert.Equal(t, models.SchemaVersion, r.SchemaVersion)
		assert.Len(t, r.OrderID, 8)
		assert.Regexp(t, `^PRD\d{6}$`, r.ProductID)

		assert.GreaterOrEqual(t, r.Quantity, int64(1))
		assert.LessOrEqual(t, r.Quantity, int64(8))
		assert.GreaterOrEqual(t, r.UnitPrice, 5.0)
		assert.LessOrEqual(t, r.UnitPrice, 800.0)
		assert.Equal(t, r.UnitPrice, math.Round(r.UnitPrice*100)/100)
		assert.Contains(t, discountPool, r.Discount)

		assert.Equal(t, round2(t, float64(r.Quantity)*r.UnitPrice), r.GrossValue, "row %d", i)
		assert.Equal(t, round2(t, r.GrossValue*(1-r.Discount)), r.NetValue, "row %d", i)
		assert.InDelta(t, float64(r.Quantity)*r.UnitPrice, r.GrossValue, 0.005+1e-9)

		ordered := parseTS(t, r.OrderDateTimeUTC)
		paid := parseTS(t, r.PaymentDateTimeUTC)
		assert.False(t, ordered.Before(window.Start))
		assert.False(t, ordered.After(window.End))
		assert.False(t, paid.Before(ordered))
		assert.False(t, paid.After(limit))
		assert.Equal(t, paid.After(ordered), r.IsLate, "row %d", i)

		assert.Contains(t, OrderStatuses, r.Status)
		assert.Contains(t, PaymentMethods, r.PaymentMethod)
		assert.Contains(t, ProductCategories, r.ProductCategory)
		assert.Contains(t, s.vocab.Suppliers, r.SupplierName)
		assert.Contains(t, s.vocab.Manufacturers, r.ManufacturerName)
	}
}

func TestRowOrderIDFollowsIndex(t *testing.T) {
	s, src := newSynth(t, 1, Window{Start: day(2020, 1, 1), End: day(2020, 12, 31)}, ModeUniform)
	r, err := s.Row(src, 1234)
	require.NoError(t, err)
	assert.Equal(t, "P0001234", r.OrderID)
}

func TestJanuaryScenarioIsReproducible(t *testing.T) {
	window := Window{Start: day(2020, 1, 1), End: day(2020, 1, 31)}

	s1, src1 := newSynth(t, 42, window, ModeUniform)
	first := rows(t, s1, src1, 3)
	s2, src2 := newSynth(t, 42, window, ModeUniform)
	second := rows(t, s2, src2, 3)

	require.Equal(t, first, second)
	for _, r := range first {
		ordered := parseTS(t, r.OrderDateTimeUTC)
		assert.Equal(t, 2020, ordered.Year())
		assert.Equal(t, time.January, ordered.Month())
	}
}

func TestDiscountWeights(t *testing.T) {
	s, src := newSynth(t, 9, Window{Start: day(2020, 1, 1), End: day(2021, 1, 1)}, ModeUniform)
	counts := map[float64]int{}
	for _, r := range rows(t, s, src, 6000) {
		counts[r.Discount]++
	}
	// zero has half the mass, each other value a sixth
	assert.InDelta(t, 3000, counts[0], 250)
	assert.InDelta(t, 1000, counts[0.05], 150)
}

func TestNewSynthesizerRejectsBadInput(t *testing.T) {
	vocab := BuildVocabulary(NewStream(1))

	_, err := NewSynthesizer(vocab, Window{Start: day(2021, 1, 1), End: day(2020, 1, 1)}, ModeUniform)
	var rangeErr *models.InvalidRangeError
	assert.ErrorAs(t, err, &rangeErr)

	_, err = NewSynthesizer(vocab, Window{Start: day(2020, 1, 1), End: day(2021, 1, 1)}, Mode("x"))
	assert.ErrorIs(t, err, ErrUnknownMode)

	_, err = NewSynthesizer(&Vocabulary{}, Window{Start: day(2020, 1, 1), End: day(2021, 1, 1)}, ModeUniform)
	assert.Error(t, err)
}

func TestMoney(t *testing.T) {
	assert.Equal(t, 2.67, RoundCents(2.675))
	assert.Equal(t, 0.12, RoundCents(0.125))
	assert.Equal(t, 0.38, RoundCents(0.375))
	assert.Equal(t, 12.35, RoundCents(12.345))
	assert.Equal(t, 246.9, GrossValue(2, 123.45))
	assert.Equal(t, 246.9, NetValue(246.9, 0))
	assert.Equal(t, 739.38, NetValue(778.3, 0.05))
	assert.Equal(t, 44.93, NetValue(47.3, 0.05))
}
