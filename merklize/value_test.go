package merklize

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_Hash(t *testing.T) {
	h := sumHasher{}

	got, err := BoolValue(true).Hash(h)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Int64())

	got, err = BoolValue(false).Hash(h)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.Int64())

	got, err = IntValue(42).Hash(h)
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.Int64())

	got, err = IntValue(-1).Hash(h)
	require.NoError(t, err)
	assert.Equal(t, new(big.Int).Sub(testPrime, big.NewInt(1)), got)

	got, err = StringValue("ab").Hash(h)
	require.NoError(t, err)
	want, _ := h.HashBytes([]byte("ab"))
	assert.Equal(t, want, got)

	ts := time.Date(1958, 7, 17, 0, 0, 0, 0, time.UTC)
	got, err = TimeValue(ts).Hash(h)
	require.NoError(t, err)
	assert.Equal(t, new(big.Int).Add(big.NewInt(ts.UnixNano()), testPrime), got)

	_, err = Value{}.Hash(h)
	assert.True(t, IsKind(err, KindInvalidArgument))
}

func TestValue_HashTimeOutsideUnixNanoRange(t *testing.T) {
	h := sumHasher{}

	future := time.Date(2300, 1, 1, 0, 0, 0, 5, time.UTC)
	want, ok := new(big.Int).SetString("10413792000000000005", 10)
	require.True(t, ok)
	got, err := TimeValue(future).Hash(h)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	past := time.Date(1500, 1, 1, 0, 0, 0, 0, time.UTC)
	want, ok = new(big.Int).SetString("-14831769600000000000", 10)
	require.True(t, ok)
	got, err = TimeValue(past).Hash(h)
	require.NoError(t, err)
	assert.Equal(t, want.Add(want, testPrime), got)

	inRange := time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC)
	got, err = TimeValue(inRange).Hash(h)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(inRange.UnixNano()), got)
}

func TestValue_StringAndKind(t *testing.T) {
	assert.Equal(t, "true", BoolValue(true).String())
	assert.Equal(t, "-7", IntValue(-7).String())
	assert.Equal(t, "x", StringValue("x").String())
	assert.Equal(t, "2020-01-02T03:04:05Z", TimeValue(time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)).String())

	assert.Equal(t, "Bool", ValueBool.String())
	assert.Equal(t, "Time", ValueTime.String())
	assert.Equal(t, "ValueKind(9)", ValueKind(9).String())
	assert.False(t, Value{}.IsValid())
}

func TestValue_TimeNormalisedToUTC(t *testing.T) {
	loc := time.FixedZone("X", 3*3600)
	v := TimeValue(time.Date(2020, 1, 1, 3, 0, 0, 0, loc))
	got, ok := v.Time()
	require.True(t, ok)
	assert.Equal(t, time.UTC, got.Location())
	assert.True(t, v.Equal(TimeValue(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))))
}

func TestPath_Hash(t *testing.T) {
	h := sumHasher{}
	p := MustPath(Label("ab"), Index(2))

	ab, _ := h.HashBytes([]byte("ab"))
	want, _ := h.Hash([]*big.Int{ab, big.NewInt(2)})
	got, err := p.Hash(h)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = Path{}.Hash(h)
	assert.True(t, IsKind(err, KindInvalidArgument))
}

func TestNewPath_Validation(t *testing.T) {
	_, err := NewPath(Index(-1))
	assert.Equal(t, ruleNegIndex, RuleID(err))
	_, err = NewPath(Label(""))
	assert.Equal(t, ruleEmptyLabel, RuleID(err))

	p, err := NewPath(Label(exP), Index(0))
	require.NoError(t, err)
	assert.Equal(t, 2, p.Len())
	assert.Equal(t, "[https://ex.org/p / 0]", p.String())
	assert.Equal(t, -1, p.Segments()[0].Index())
	assert.Equal(t, 0, p.Segments()[1].Index())
}

func TestNewEntry_Validation(t *testing.T) {
	h := sumHasher{}
	p := MustPath(Label(exP))

	_, err := NewEntry(Path{}, IntValue(1), h)
	assert.True(t, IsKind(err, KindInvalidArgument))
	assert.Equal(t, ruleEmptyPath, RuleID(err))

	_, err = NewEntry(p, Value{}, h)
	assert.True(t, IsKind(err, KindInvalidArgument))
	assert.Equal(t, ruleValueKind, RuleID(err))

	_, err = NewEntry(p, IntValue(1), nil)
	assert.Equal(t, ruleNilHasher, RuleID(err))

	e, err := NewEntry(p, IntValue(1), h)
	require.NoError(t, err)
	k, v, err := e.KeyValueHashes()
	require.NoError(t, err)
	wantK, _ := p.Hash(h)
	assert.Equal(t, wantK, k)
	assert.Equal(t, int64(1), v.Int64())
}
