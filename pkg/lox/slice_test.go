package lox_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"flyerplan/pkg/lox"
)

func TestMap(t *testing.T) {
	rq := require.New(t)

	rq.Equal([]string{"1", "2", "3"}, lox.Map([]int{1, 2, 3}, strconv.Itoa))
	rq.Empty(lox.Map(nil, strconv.Itoa))
}

func TestMapErr(t *testing.T) {
	rq := require.New(t)

	result, err := lox.MapErr([]string{"1", "2"}, strconv.Atoi)
	rq.NoError(err)
	rq.Equal([]int{1, 2}, result)

	_, err = lox.MapErr([]string{"1", "x"}, strconv.Atoi)
	rq.Error(err)
}

func TestFilterAssociate(t *testing.T) {
	rq := require.New(t)

	result := lox.FilterAssociate([]string{"a", "", "b"}, func(s string) (string, bool) {
		return s, s != ""
	})

	rq.Equal(map[string]string{"a": "a", "b": "b"}, result)
}
