package handlers

import (
	"context"
	"fmt"
	"testing"
)

func TestShowSum(t *testing.T) {
	deps, stdout, stderr, exitCode := setupTestDeps(t)
	seedMarch(t, deps)

	ShowSum(deps, "202403")

	assertExit(t, exitCode, 0)
	assertContains(t, stdout.String(), "March 2024: 6.5 (2 entries)")
	if stderr.Len() != 0 {
		t.Errorf("expected no warnings, got %q", stderr.String())
	}
}

func TestShowSum_SkipsUnparsableLines(t *testing.T) {
	deps, stdout, stderr, exitCode := setupTestDeps(t)
	seedMarch(t, deps)
	appendRaw(t, deps, "garbage line no delimiter")

	ShowSum(deps, "202403")

	assertExit(t, exitCode, 0)
	assertContains(t, stdout.String(), "March 2024: 6.5 (2 entries)")
	assertContains(t, stderr.String(), "1 unparsable line not counted")
}

func TestShowSum_MissingMonth(t *testing.T) {
	deps, stdout, _, exitCode := setupTestDeps(t)

	ShowSum(deps, "202001")

	assertExit(t, exitCode, 0)
	assertContains(t, stdout.String(), "January 2020: 0.0 (0 entries)")
}

func TestShowSum_InvalidMonth(t *testing.T) {
	deps, _, stderr, exitCode := setupTestDeps(t)

	ShowSum(deps, "202413")

	assertExit(t, exitCode, 1)
	assertContains(t, stderr.String(), "Invalid month '202413'")
}

func TestShowYear(t *testing.T) {
	deps, stdout, _, exitCode := setupTestDeps(t)
	seedMarch(t, deps)
	if _, _, err := deps.Services.Entry.LogAt("2024-11-20 08:00:00", "planning", "1.5"); err != nil {
		t.Fatal(err)
	}

	ShowYear(context.Background(), deps, "2024")

	assertExit(t, exitCode, 0)
	output := stdout.String()
	for _, expected := range []string{"Summary for 2024", "202403", "March", "6.5", "November", "1.5", "Total", "8.0", "3 entries"} {
		assertContains(t, output, expected)
	}
}

func TestShowYear_DefaultsToCurrentYear(t *testing.T) {
	deps, stdout, _, exitCode := setupTestDeps(t)

	ShowYear(context.Background(), deps, "")

	assertExit(t, exitCode, 0)
	year := deps.Services.Entry.CurrentMonth().Year
	assertContains(t, stdout.String(), fmt.Sprintf("Summary for %d", year))
}

func TestShowYear_Errors(t *testing.T) {
	deps, _, stderr, exitCode := setupTestDeps(t)

	ShowYear(context.Background(), deps, "24")

	assertExit(t, exitCode, 1)
	assertContains(t, stderr.String(), "Invalid year '24'")
}

func TestShowYear_Cancelled(t *testing.T) {
	deps, _, stderr, exitCode := setupTestDeps(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ShowYear(ctx, deps, "2024")

	assertExit(t, exitCode, 1)
	assertContains(t, stderr.String(), "context canceled")
}
