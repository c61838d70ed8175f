package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestDataCommand(t *testing.T) {
	out, err := runCommand(t, "data")
	require.Nil(t, err)
	assert.Contains(t, out, "2019-01")
	assert.Contains(t, out, "2023-12")
	assert.Contains(t, out, "test")
	assert.Contains(t, out, "Average monthly change: 8.76")
}

func TestNaiveCommand(t *testing.T) {
	dir := t.TempDir()
	out, err := runCommand(t, "naive", "--out", dir)
	require.Nil(t, err)
	assert.Contains(t, out, "naive_mean")
	assert.Contains(t, out, "naive_last_season")

	_, err = os.Stat(filepath.Join(dir, "forecast_graphs", "lab_1", "naive_last.html"))
	assert.Nil(t, err)
	_, err = os.Stat(filepath.Join(dir, "forecast_graphs", "starting_data.html"))
	assert.Nil(t, err)

	out, err = runCommand(t, "naive", "--no-render", "--format", "json")
	require.Nil(t, err)
	assert.Contains(t, out, `"results"`)
}

func TestAnalyzeCommandInvalidFlags(t *testing.T) {
	testData := map[string]struct {
		args []string
		msg  string
	}{
		"bad format": {[]string{"analyze", "--format", "xml"}, "unsupported format"},
		"bad method": {[]string{"analyze", "--method", "arima"}, "unknown smoothing method"},
		"extra args": {[]string{"analyze", "mn"}, "unknown command"},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			_, err := runCommand(t, td.args...)
			require.NotNil(t, err)
			assert.Contains(t, err.Error(), td.msg)
		})
	}
}

func TestAnalyzeCommand(t *testing.T) {
	if testing.Short() {
		t.Skip("full grid search")
	}
	out, err := runCommand(t, "analyze", "--method", "mdm", "--no-render")
	require.Nil(t, err)
	assert.Contains(t, out, "Error analysis for `exponential Md-M` method")
	assert.Contains(t, out, "TRAIN ITERATIONS: 970,299")
}

func TestSelectMethods(t *testing.T) {
	methods, err := selectMethods("ALL")
	require.Nil(t, err)
	assert.Len(t, methods, 2)

	methods, err = selectMethods("mn")
	require.Nil(t, err)
	require.Len(t, methods, 1)
	assert.Equal(t, "M-N", methods[0].Name)
}
