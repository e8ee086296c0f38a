package formula

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(DateLayout, value)
	assert.NoError(t, err)
	return parsed
}

func TestContains_LowersQueryAndWrapsField(t *testing.T) {
	expr := Contains("Guest Name", "Smith")
	assert.Equal(t, "SEARCH('smith', LOWER({Guest Name}))", expr.Formula())
}

func TestContains_EscapesQuote(t *testing.T) {
	expr := Contains("Guest Name", "o'brien")
	assert.Equal(t, `SEARCH('o\'brien', LOWER({Guest Name}))`, expr.Formula())
}

func TestContains_EscapesBackslash(t *testing.T) {
	expr := Contains("Guest Name", `a\b`)
	assert.Equal(t, `SEARCH('a\\b', LOWER({Guest Name}))`, expr.Formula())
}

func TestContains_StripsLineBreaks(t *testing.T) {
	expr := Contains("Guest Name", "smith'), TRUE()\n")
	assert.NotContains(t, expr.Formula(), "\n")
	// The quote stays escaped, so the injected close-paren never leaves the literal.
	assert.Equal(t, `SEARCH('smith\'), true()', LOWER({Guest Name}))`, expr.Formula())
}

func TestSameDay(t *testing.T) {
	expr := SameDay("Check-in", date(t, "2024-06-01"))
	assert.Equal(t, "IS_SAME({Check-in}, '2024-06-01', 'day')", expr.Formula())
}

func TestOverlaps_AddsOneDayEachSide(t *testing.T) {
	expr := Overlaps("Check-in", "Check-out", date(t, "2024-06-01"), date(t, "2024-06-30"))
	assert.Equal(t, "AND(IS_BEFORE({Check-in}, '2024-07-01'), IS_AFTER({Check-out}, '2024-05-31'))", expr.Formula())
}

func TestOverlaps_SingleDayRangeIncludesBoundaries(t *testing.T) {
	expr := Overlaps("Check-in", "Check-out", date(t, "2024-06-01"), date(t, "2024-06-01"))
	// A booking checking in on 2024-06-01 satisfies IS_BEFORE(..., '2024-06-02');
	// one checking out on 2024-06-01 satisfies IS_AFTER(..., '2024-05-31').
	assert.Equal(t, "AND(IS_BEFORE({Check-in}, '2024-06-02'), IS_AFTER({Check-out}, '2024-05-31'))", expr.Formula())
}

func TestOverlaps_CrossesMonthBoundary(t *testing.T) {
	expr := Overlaps("Check-in", "Check-out", date(t, "2024-03-01"), date(t, "2024-03-31"))
	assert.Equal(t, "AND(IS_BEFORE({Check-in}, '2024-04-01'), IS_AFTER({Check-out}, '2024-02-29'))", expr.Formula())
}

func TestOr_ComposesOperands(t *testing.T) {
	expr := Or(Contains("Name", "an"), Contains("Email", "an"))
	assert.Equal(t, "OR(SEARCH('an', LOWER({Name})), SEARCH('an', LOWER({Email})))", expr.Formula())
}

func TestOr_SingleOperandRendersBare(t *testing.T) {
	expr := Or(Contains("Name", "an"))
	assert.Equal(t, "SEARCH('an', LOWER({Name}))", expr.Formula())
}

func TestAnd_EmptyRendersEmptyFormula(t *testing.T) {
	assert.Equal(t, "", And().Formula())
}

func TestAndOr_Nesting(t *testing.T) {
	expr := And(
		Or(Contains("Name", "an"), Contains("Email", "an")),
		SameDay("Check-in", date(t, "2024-06-01")),
	)
	assert.Equal(t,
		"AND(OR(SEARCH('an', LOWER({Name})), SEARCH('an', LOWER({Email}))), IS_SAME({Check-in}, '2024-06-01', 'day'))",
		expr.Formula())
}
