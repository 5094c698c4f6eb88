package reftool_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gmlangeloh/ipgb/reftool"
)

func TestWriteMatrixThenReadMatrixRoundTrips(t *testing.T) {
	rows := [][]int64{{1, -2, 3}, {0, 0, 5}}

	var buf bytes.Buffer
	require.NoError(t, reftool.WriteMatrix(&buf, rows))

	got, err := reftool.ReadMatrix(&buf)
	require.NoError(t, err)
	if diff := cmp.Diff(rows, got); diff != "" {
		t.Errorf("matrix round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteMatrixEmptyWritesZeroHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, reftool.WriteMatrix(&buf, nil))
	assert.Equal(t, "0 0\n", buf.String())

	got, err := reftool.ReadMatrix(bytes.NewBufferString("0 0\n"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestWriteMatrixRejectsRaggedRows(t *testing.T) {
	var buf bytes.Buffer
	err := reftool.WriteMatrix(&buf, [][]int64{{1, 2}, {3}})
	assert.ErrorIs(t, err, reftool.ErrRowLengthMismatch)
}

func TestReadMatrixRejectsMalformedHeader(t *testing.T) {
	_, err := reftool.ReadMatrix(bytes.NewBufferString("not a header\n"))
	assert.ErrorIs(t, err, reftool.ErrMalformedHeader)
}

func TestReadMatrixRejectsTruncatedBody(t *testing.T) {
	_, err := reftool.ReadMatrix(bytes.NewBufferString("2 1\n5\n"))
	assert.ErrorIs(t, err, reftool.ErrTruncatedMatrix)
}

func TestReadMatrixRejectsShortRow(t *testing.T) {
	_, err := reftool.ReadMatrix(bytes.NewBufferString("1 2\n5\n"))
	assert.ErrorIs(t, err, reftool.ErrRowLengthMismatch)
}

func TestWriteVectorThenReadVectorRoundTrips(t *testing.T) {
	v := []int64{4, -1, 0, 2}

	var buf bytes.Buffer
	require.NoError(t, reftool.WriteVector(&buf, v))

	got, err := reftool.ReadVector(&buf)
	require.NoError(t, err)
	assert.Equal(t, v, got)
}

func TestReadVectorRejectsMultiRowMatrix(t *testing.T) {
	_, err := reftool.ReadVector(bytes.NewBufferString("2 1\n1\n2\n"))
	assert.ErrorIs(t, err, reftool.ErrNotAVector)
}

func TestMatrixFileRoundTripsThroughDisk(t *testing.T) {
	dir := t.TempDir()
	rows := [][]int64{{1, 0}, {0, 1}}

	require.NoError(t, reftool.WriteMatrixFile(dir, "p", reftool.Mar, rows))
	got, err := reftool.ReadMatrixFile(dir, "p", reftool.Mar)
	require.NoError(t, err)
	if diff := cmp.Diff(rows, got); diff != "" {
		t.Errorf("file round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestVectorFileRoundTripsThroughDisk(t *testing.T) {
	dir := t.TempDir()
	v := []int64{7, 8, 9}

	require.NoError(t, reftool.WriteVectorFile(dir, "p", reftool.Zsol, v))
	got, err := reftool.ReadVectorFile(dir, "p", reftool.Zsol)
	require.NoError(t, err)
	assert.Equal(t, v, got)
}

func TestErrFileRoundTripsVerbatimBytes(t *testing.T) {
	dir := t.TempDir()
	payload := []byte("external tool: infeasible\n")

	require.NoError(t, reftool.WriteErrFile(dir, "p", payload))
	got, err := reftool.ReadErrFile(dir, "p")
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestPathRejectsUnknownExtension(t *testing.T) {
	_, err := reftool.Path(t.TempDir(), "p", reftool.Extension(".bogus"))
	assert.ErrorIs(t, err, reftool.ErrUnknownExtension)
}

func TestCleanRemovesEveryKnownExtensionButLeavesOthers(t *testing.T) {
	dir := t.TempDir()
	for _, ext := range reftool.Extensions {
		p, err := reftool.Path(dir, "p", ext)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(p, []byte("x"), 0o644))
	}
	untouched := filepath.Join(dir, "p.keep")
	require.NoError(t, os.WriteFile(untouched, []byte("x"), 0o644))

	require.NoError(t, reftool.Clean(dir, "p"))

	for _, ext := range reftool.Extensions {
		p, err := reftool.Path(dir, "p", ext)
		require.NoError(t, err)
		_, statErr := os.Stat(p)
		assert.True(t, os.IsNotExist(statErr))
	}
	_, statErr := os.Stat(untouched)
	assert.NoError(t, statErr)
}

func TestCleanToleratesAlreadyMissingFiles(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, reftool.Clean(dir, "never-written"))
}
