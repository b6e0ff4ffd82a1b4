//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package godbfcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestExclusiveLockBlocksAccess(t *testing.T) {
	fixedNow(t)
	data := newHeader(0x03, 23, 6, 15, 0x01)
	fileName := writeFile(t, data)

	f, err := openExclusive(fileName)
	require.NoError(t, err)

	_, err = GetCodepageByte(fileName)
	require.ErrorIs(t, err, ErrUnavailable)
	assert.False(t, IsNotDBF(err))

	err = SetCodepageByte(fileName, CP850)
	require.ErrorIs(t, err, ErrUnavailable)

	require.NoError(t, f.Close())

	cp, err := GetCodepageByte(fileName)
	require.NoError(t, err)
	assert.Equal(t, CP437, cp)
}

func TestSharedOpensCoexist(t *testing.T) {
	fixedNow(t)
	fileName := writeFile(t, newHeader(0x03, 23, 6, 15, 0x01))

	f, err := openShared(fileName)
	require.NoError(t, err)
	defer f.Close()

	cp, err := GetCodepageByte(fileName)
	require.NoError(t, err)
	assert.Equal(t, CP437, cp)

	_, err = openExclusive(fileName)
	require.ErrorIs(t, err, unix.EWOULDBLOCK)

	err = SetCodepageByte(fileName, CP850, DBase3)
	require.ErrorIs(t, err, ErrUnavailable)
	assert.False(t, IsNotDBF(err))
	assert.Equal(t, byte(CP437), getFileBuffer(t, fileName)[codepageOffset])
}
