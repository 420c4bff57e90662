package main

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// run executes the CLI against a sqlite file in dir and returns stdout and stderr.
func run(t *testing.T, dir, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd, a := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--store", "sqlite", "--sqlite-path", filepath.Join(dir, "booking.db")}, args...))
	err := execute(cmd, a)
	return out.String(), errOut.String(), err
}

func testDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("BOOKING_LOG_LEVEL", "error")
	return dir
}

func TestEvents_FirstPage(t *testing.T) {
	dir := testDir(t)

	out, _, err := run(t, dir, "", "events")
	require.NoError(t, err)
	assert.Contains(t, out, "Data Science Summit 2025")
	assert.Contains(t, out, "Page 1 / 2")

	out, _, err = run(t, dir, "", "events", "--query", "summit", "--page", "9")
	require.NoError(t, err)
	assert.Contains(t, out, "Page 1 / 1")
}

func TestRegister_StatePersistsAcrossCommands(t *testing.T) {
	dir := testDir(t)

	out, _, err := run(t, dir, "", "register", "row", "6")
	require.NoError(t, err)
	assert.Contains(t, out, "Africahackon Cyber Security Conference")

	out, _, err = run(t, dir, "", "register", "form", "--name", "Amani Otieno", "--student-id", "670797", "--event", "6")
	require.NoError(t, err)
	assert.Contains(t, out, "Thanks Amani Otieno (ID: 670797)")

	out, _, err = run(t, dir, "", "count")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out, "row registrations are not recorded")

	out, _, err = run(t, dir, "", "events", "--query", "africahackon")
	require.NoError(t, err)
	assert.Contains(t, out, " 8 ")
}

func TestRegisterRow_Errors(t *testing.T) {
	dir := testDir(t)

	_, _, err := run(t, dir, "", "register", "row", "5")
	require.Error(t, err)
	assert.Equal(t, "Sorry, Data Science Summit 2025 is fully booked.", err.Error())

	_, _, err = run(t, dir, "", "register", "row", "abc")
	require.Error(t, err)
}

func TestRegisterForm_ReportsEveryField(t *testing.T) {
	dir := testDir(t)

	_, stderr, err := run(t, dir, "", "register", "form", "--name", " ", "--student-id", "12")
	require.Error(t, err)
	assert.Contains(t, stderr, "name: Please enter your full name.")
	assert.Contains(t, stderr, "student_id: Student ID must be exactly six digits")
	assert.Contains(t, stderr, "event_id: Please choose an event.")
}

func TestExport(t *testing.T) {
	dir := testDir(t)
	_, _, err := run(t, dir, "", "register", "form", "--name", "Amani Otieno", "--student-id", "670797", "--event", "7")
	require.NoError(t, err)

	out, _, err := run(t, dir, "", "export", "--out", "-")
	require.NoError(t, err)
	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "booking_id", records[0][0])
	assert.Equal(t, "PACS Employer Breakfast", records[1][4])

	path := filepath.Join(dir, "out.csv")
	_, _, err = run(t, dir, "", "export", "--out", path)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Amani Otieno")

	out, _, err = run(t, dir, "", "export", "--print")
	require.NoError(t, err)
	assert.Contains(t, out, "Total bookings: 1")
}

func TestReset(t *testing.T) {
	dir := testDir(t)
	_, _, err := run(t, dir, "", "register", "form", "--name", "Amani Otieno", "--student-id", "670797", "--event", "7")
	require.NoError(t, err)

	out, _, err := run(t, dir, "n\n", "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "reset cancelled")
	out, _, _ = run(t, dir, "", "count")
	assert.Equal(t, "1\n", out)

	out, _, err = run(t, dir, "", "reset", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "10 events restored")
	out, _, _ = run(t, dir, "", "count")
	assert.Equal(t, "0\n", out)
}

func TestTheme(t *testing.T) {
	dir := testDir(t)

	out, _, err := run(t, dir, "", "theme")
	require.NoError(t, err)
	assert.Equal(t, "light\n", out)

	out, _, err = run(t, dir, "", "theme", "dark")
	require.NoError(t, err)
	assert.Equal(t, "dark\n", out)

	_, _, err = run(t, dir, "", "theme", "sepia")
	require.Error(t, err)
}

func TestUnknownStore(t *testing.T) {
	testDir(t)
	cmd, a := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--store", "redis", "count"})
	require.Error(t, execute(cmd, a))
}

func TestExecute_ClosesStoreWhenCommandFails(t *testing.T) {
	dir := testDir(t)
	cmd, a := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--store", "sqlite", "--sqlite-path", filepath.Join(dir, "booking.db"), "register", "row", "5"})

	require.Error(t, execute(cmd, a))
	assert.Nil(t, a.store)
	assert.Nil(t, a.tracing)

	// The file is free for the next command.
	out, _, err := run(t, dir, "", "count")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)
}
