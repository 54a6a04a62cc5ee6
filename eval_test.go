package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLiterals(t *testing.T) {
	t.Run("decimal", func(t *testing.T) {
		res := evaluate("1 2 3")
		require.Equal(t, []int64{1, 2, 3}, res.stack)
		require.Empty(t, res.errMsg)
		require.Equal(t, formatDecimal, res.format)
	})
	t.Run("negative", func(t *testing.T) {
		res := evaluate("-5 +7")
		require.Equal(t, []int64{-5, 7}, res.stack)
		require.Empty(t, res.errMsg)
	})
	t.Run("hex sets format", func(t *testing.T) {
		res := evaluate("0x1f")
		require.Equal(t, []int64{31}, res.stack)
		require.Empty(t, res.errMsg)
		require.Equal(t, formatHex, res.format)
		require.Equal(t, "0x1f ", render(res.stack, res.format))
	})
	t.Run("uppercase hex prefix is not a literal", func(t *testing.T) {
		res := evaluate("0X1F")
		require.Empty(t, res.stack)
		require.Equal(t, "couldn't parse '0X1F'", res.errMsg)
	})
	t.Run("empty input", func(t *testing.T) {
		res := evaluate("")
		require.Empty(t, res.stack)
		require.Empty(t, res.errMsg)
		require.Equal(t, formatDecimal, res.format)
	})
}

func TestBinaryOperators(t *testing.T) {
	t.Run("add", func(t *testing.T) {
		res := evaluate("3 4 p")
		require.Equal(t, []int64{7}, res.stack)
		require.Empty(t, res.errMsg)
		require.Equal(t, formatDecimal, res.format)
	})
	t.Run("add symbol alias", func(t *testing.T) {
		res := evaluate("3 4 +")
		require.Equal(t, []int64{7}, res.stack)
	})
	t.Run("multiply", func(t *testing.T) {
		res := evaluate("3 4 m")
		require.Equal(t, []int64{12}, res.stack)

		res = evaluate("3 4 *")
		require.Equal(t, []int64{12}, res.stack)
	})

	//
	// Operand order: the divide below computes secondFromTop / top
	//

	t.Run("divide order", func(t *testing.T) {
		res := evaluate("10 4 d")
		require.Equal(t, []int64{2}, res.stack)
		require.Empty(t, res.errMsg)
	})
	t.Run("divide truncates toward zero", func(t *testing.T) {
		res := evaluate("-7 2 d")
		require.Equal(t, []int64{-3}, res.stack)
	})
	t.Run("divide by zero is advisory", func(t *testing.T) {
		res := evaluate("4 0 d")
		require.Equal(t, EDIVISIONBYZERO, res.errMsg)
		require.Equal(t, []int64{4, 0}, res.stack)
	})
	t.Run("missing operands", func(t *testing.T) {
		res := evaluate("5 +")
		require.Equal(t, "couldn't parse '+'", res.errMsg)
		require.Equal(t, []int64{5}, res.stack)
	})
	t.Run("only the top two entries are consumed", func(t *testing.T) {
		res := evaluate("1 2 3 p")
		require.Equal(t, []int64{1, 5}, res.stack)
	})
}

func TestIota(t *testing.T) {
	t.Run("ascending sequence", func(t *testing.T) {
		res := evaluate("5 i")
		require.Equal(t, []int64{1, 2, 3, 4, 5}, res.stack)
		require.Empty(t, res.errMsg)
	})
	t.Run("zero count is a silent no-op", func(t *testing.T) {
		res := evaluate("0 i")
		require.Empty(t, res.stack)
		require.Empty(t, res.errMsg)
	})
	t.Run("negative count is a silent no-op", func(t *testing.T) {
		res := evaluate("-3 i")
		require.Empty(t, res.stack)
		require.Empty(t, res.errMsg)
	})
	t.Run("missing operand", func(t *testing.T) {
		res := evaluate("i")
		require.Equal(t, EIOTAOPERAND, res.errMsg)
		require.Empty(t, res.stack)
	})
}

func TestFold(t *testing.T) {
	t.Run("fold add", func(t *testing.T) {
		res := evaluate("1 2 3 /p")
		require.Equal(t, []int64{6}, res.stack)
		require.Empty(t, res.errMsg)
	})
	t.Run("fold multiply", func(t *testing.T) {
		res := evaluate("2 3 4 /m")
		require.Equal(t, []int64{24}, res.stack)
	})
	t.Run("fold divide is left to right", func(t *testing.T) {
		res := evaluate("100 5 2 /d")
		require.Equal(t, []int64{10}, res.stack)
	})
	t.Run("single element folds to itself", func(t *testing.T) {
		res := evaluate("9 /p")
		require.Equal(t, []int64{9}, res.stack)
		require.Empty(t, res.errMsg)
	})
	t.Run("empty stack is advisory", func(t *testing.T) {
		res := evaluate("/p")
		require.Equal(t, EEMPTYFOLD, res.errMsg)
		require.Empty(t, res.stack)
	})
	t.Run("unknown fold operator", func(t *testing.T) {
		res := evaluate("1 2 /z")
		require.Equal(t, EBADFOLDOP, res.errMsg)
		require.Equal(t, []int64{1, 2}, res.stack)
	})
	t.Run("bare slash", func(t *testing.T) {
		res := evaluate("1 2 /")
		require.Equal(t, EBADFOLDOP, res.errMsg)
		require.Equal(t, []int64{1, 2}, res.stack)
	})
	t.Run("divide by zero during fold", func(t *testing.T) {
		res := evaluate("8 0 /d")
		require.Equal(t, EDIVISIONBYZERO, res.errMsg)
		require.Equal(t, []int64{8, 0}, res.stack)
	})
}

func TestModeDirectives(t *testing.T) {
	t.Run("hex directive", func(t *testing.T) {
		res := evaluate(".h 10")
		require.Equal(t, []int64{10}, res.stack)
		require.Equal(t, formatHex, res.format)
		require.Equal(t, "0xa ", render(res.stack, res.format))
	})
	t.Run("final directive wins", func(t *testing.T) {
		res := evaluate(".h 10 .d")
		require.Equal(t, []int64{10}, res.stack)
		require.Equal(t, formatDecimal, res.format)
	})
	t.Run("decimal directive overrides hex literal", func(t *testing.T) {
		res := evaluate("0x2 .d")
		require.Equal(t, []int64{2}, res.stack)
		require.Equal(t, formatDecimal, res.format)
	})
	t.Run("unknown mode is a silent no-op", func(t *testing.T) {
		res := evaluate(".x 1")
		require.Equal(t, []int64{1}, res.stack)
		require.Empty(t, res.errMsg)
		require.Equal(t, formatDecimal, res.format)
	})
}

func TestAdvisoryErrors(t *testing.T) {
	t.Run("unknown token", func(t *testing.T) {
		res := evaluate("foo")
		require.Empty(t, res.stack)
		require.Equal(t, "couldn't parse 'foo'", res.errMsg)
	})
	t.Run("last error wins", func(t *testing.T) {
		res := evaluate("foo bar")
		require.Equal(t, "couldn't parse 'bar'", res.errMsg)
	})
	t.Run("scan continues after an error", func(t *testing.T) {
		res := evaluate("foo 3 4 p")
		require.Equal(t, []int64{7}, res.stack)
		require.Equal(t, "couldn't parse 'foo'", res.errMsg)
	})
	t.Run("non-ASCII tokens are skipped", func(t *testing.T) {
		res := evaluate("1 λ 2")
		require.Equal(t, []int64{1, 2}, res.stack)
		require.Empty(t, res.errMsg)
	})
}
