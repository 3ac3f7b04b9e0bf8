package digest

import (
	"fmt"
	"io"
	"regexp"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var lowerHex = regexp.MustCompile(`^[0-9a-f]+$`)

func TestHex_Unsigned(t *testing.T) {
	assert.Equal(t, "0", Hex(uint8(0)))
	assert.Equal(t, "ff", Hex(uint8(0xff)))
	assert.Equal(t, "bb3d", Hex(uint16(0xbb3d)))
	assert.Equal(t, "cbf43926", Hex(uint32(0xCBF43926)))
	assert.Equal(t, "1", Hex(uint64(1)))
	assert.Equal(t, "ffffffffffffffff", Hex(^uint64(0)))
}

func TestHex_Idempotent(t *testing.T) {
	values := []uint64{0, 1, 0xdeadbeef, 0x0123456789abcdef, ^uint64(0)}
	for _, v := range values {
		a, b := Hex(v), Hex(v)
		require.Equal(t, a, b)
		require.Regexp(t, lowerHex, a)
		require.NotContains(t, a, "0x")
	}
}

func TestHex_Uint128(t *testing.T) {
	assert.Equal(t, "0", Hex(Uint128{}))
	assert.Equal(t, "abc", Hex(Uint128{Lo: 0xabc}))
	assert.Equal(t, "10000000000000002", Hex(Uint128{Hi: 1, Lo: 2}))
	assert.Equal(t, "ffffffffffffffffffffffffffffffff", Hex(Uint128{Hi: ^uint64(0), Lo: ^uint64(0)}))
}

func TestUint128_OtherVerbs(t *testing.T) {
	u := Uint128{Hi: 0xa, Lo: 0xb}
	assert.Equal(t, "A000000000000000B", fmt.Sprintf("%X", u))
	assert.Equal(t, "{10 11}", fmt.Sprintf("%v", u))
}

func TestHexResult(t *testing.T) {
	assert.Equal(t, "2a", HexResult(Ok(uint32(42))))
	assert.Equal(t, "2a", HexResult(From(uint32(42), nil)))

	failed := HexResult(From(uint32(42), errors.Wrap(io.ErrUnexpectedEOF, "read key")))
	assert.Equal(t, `*errors.errorString("read key: unexpected EOF")`, failed)
}

func TestResult(t *testing.T) {
	r := Ok(uint64(7))
	require.True(t, r.OK())
	v, err := r.Get()
	require.NoError(t, err)
	require.EqualValues(t, 7, v)

	f := Fail[uint64](io.EOF)
	require.False(t, f.OK())
	_, err = f.Get()
	require.ErrorIs(t, err, io.EOF)
}

func TestPassthrough(t *testing.T) {
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", Passthrough("d41d8cd98f00b204e9800998ecf8427e"))
	assert.Equal(t, "", Passthrough(""))
}

func TestDebug(t *testing.T) {
	assert.Equal(t, "<nil>", Debug(nil))
	assert.Equal(t, `*errors.errorString("EOF")`, Debug(io.EOF))
	assert.Equal(t, `*errors.fundamental("short stream")`, Debug(errors.New("short stream")))
}
