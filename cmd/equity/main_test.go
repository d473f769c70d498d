package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yangrq1018/holdem-equity/texas"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	pterm.DisableColor()
	out, errOut := bytes.NewBuffer(nil), bytes.NewBuffer(nil)
	app := newApp()
	app.Writer = out
	app.ErrWriter = errOut
	err := app.Run(append([]string{"equity"}, args...))
	return out.String(), errOut.String(), err
}

func TestSimulateCommand(t *testing.T) {
	out, _, err := run(t, "--seed", "1", "--workers", "2", "simulate", "--hand", "As Ah", "--trials", "2000")
	require.NoError(t, err)
	assert.Contains(t, out, "Method: monte-carlo (2000 trials)")
	assert.Contains(t, out, "Community Cards: None")
}

func TestSimulateCommandJSON(t *testing.T) {
	args := []string{"--seed", "7", "--workers", "2", "--format", "json", "simulate", "--hand", "Th 9h", "--board", "8h 7c 2d", "-o", "2", "-n", "3000"}
	out, _, err := run(t, args...)
	require.NoError(t, err)

	var got struct {
		Tally  texas.Tally  `json:"tally"`
		Equity texas.Equity `json:"equity"`
		Seed   uint64       `json:"seed"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 3000, got.Tally.Trials())
	assert.Equal(t, uint64(7), got.Seed)
	assert.InDelta(t, 1.0, got.Equity.Sum(), 1e-9)

	again, _, err := run(t, args...)
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestEquityCommandCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "last.msgpack")
	args := []string{"--seed", "3", "--format", "json", "equity", "--hand", "As Kd", "--board", "Qh 9s 4d", "--trials", "1000", "--cache", path}

	out, _, err := run(t, args...)
	require.NoError(t, err)
	var first equityReport
	require.NoError(t, json.Unmarshal([]byte(out), &first))
	assert.False(t, first.Cached)
	assert.Equal(t, texas.MethodMonteCarlo, first.Method)
	assert.Equal(t, "High Card", first.Strength)

	out, _, err = run(t, args...)
	require.NoError(t, err)
	var second equityReport
	require.NoError(t, json.Unmarshal([]byte(out), &second))
	assert.True(t, second.Cached)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Equity, second.Equity)

	// another opponent count is another question
	out, _, err = run(t, append(args, "--opponents", "2")...)
	require.NoError(t, err)
	var third equityReport
	require.NoError(t, json.Unmarshal([]byte(out), &third))
	assert.False(t, third.Cached)
	assert.Equal(t, 2, third.Opponents)
}

func TestEquityCommandExact(t *testing.T) {
	out, _, err := run(t, "--format", "json", "equity", "--hand", "As Ks", "--board", "Qs Js Ts 2h 3d")
	require.NoError(t, err)
	var report equityReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, texas.MethodExact, report.Method)
	assert.Equal(t, 1.0, report.Equity.Win)
	assert.Equal(t, "Royal Flush", report.Strength)
}

func TestExactCommand(t *testing.T) {
	out, _, err := run(t, "exact", "--hand", "2c 3d", "--board", "Ah Kh Qh Jh Th")
	require.NoError(t, err)
	assert.Contains(t, out, "990")
	assert.Contains(t, out, "50.00%")

	_, _, err = run(t, "exact", "--hand", "2c 3d", "--board", "Ah Kh Qh")
	assert.True(t, errors.Is(err, texas.ErrNotApplicable))
}

func TestClassifyCommand(t *testing.T) {
	out, _, err := run(t, "classify", "--hand", "As Ah", "--board", "Ad 7c 2h")
	require.NoError(t, err)
	assert.Contains(t, out, "Hand Strength: Three of a Kind")
	assert.Contains(t, out, "Best Hand: ")

	out, _, err = run(t, "classify", "--hand", "As Ah")
	require.NoError(t, err)
	assert.Contains(t, out, "Hand Strength: insufficient board")
	assert.NotContains(t, out, "Best Hand")
}

func TestHistCommand(t *testing.T) {
	out, _, err := run(t, "--workers", "2", "hist", "--hand", "As Ah", "--board", "Ad 7c 2h")
	require.NoError(t, err)
	assert.Contains(t, out, "Hero hand types")
	assert.Contains(t, out, "Four of a Kind")

	out, _, err = run(t, "--seed", "5", "hist", "--opponent", "--hand", "As Ks", "--board", "Qs Js Ts 2h 3d")
	require.NoError(t, err)
	assert.Contains(t, out, "Opponent hand types")

	_, _, err = run(t, "hist", "--opponent", "--hand", "As Ks", "--board", "Qs Js Ts")
	assert.True(t, errors.Is(err, texas.ErrNotApplicable))
}

func TestHistCommandCompact(t *testing.T) {
	out, _, err := run(t, "hist", "--compact", "--hand", "As Ks", "--board", "Qs Js Ts 2h 3d")
	require.NoError(t, err)
	assert.Equal(t, "Royal Flush: 100.00%, acc: 100.00%\n", out[:strings.Index(out, "\n")+1])
	assert.Contains(t, out, "High Card: 0.00%, acc: 100.00%")
}

func TestVersionAndHelp(t *testing.T) {
	GitCommit = "abc123"
	defer func() { GitCommit = "" }()
	assert.Equal(t, "dev (abc123)", version())

	out, _, err := run(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "EQUITY_TRIALS")
}

func TestPiCommand(t *testing.T) {
	out, _, err := run(t, "--seed", "11", "pi", "-n", "5000")
	require.NoError(t, err)
	assert.Contains(t, out, "Number of Experiments: 5000")
	assert.Contains(t, out, "95% Confidence Interval")

	_, _, err = run(t, "pi", "-n", "0")
	assert.Error(t, err)
}

func TestInputErrors(t *testing.T) {
	_, _, err := run(t, "simulate", "--hand", "As As")
	var dup *texas.DuplicateCardError
	assert.True(t, errors.As(err, &dup))

	_, _, err = run(t, "simulate", "--hand", "As Xx")
	var inputErr *texas.InvalidInputError
	assert.True(t, errors.As(err, &inputErr))

	_, _, err = run(t, "--format", "yaml", "pi")
	assert.Error(t, err)

	_, _, err = run(t, "simulate")
	assert.Error(t, err)
}

func TestGeneratedSeedIsLogged(t *testing.T) {
	t.Setenv("EQUITY_SEED", "0")
	_, errOut, err := run(t, "pi", "-n", "10")
	require.NoError(t, err)
	assert.Contains(t, errOut, "no seed given")
}
