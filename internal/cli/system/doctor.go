package system

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/abmoura/vida/internal/cli"
	"github.com/abmoura/vida/internal/constants"
	"github.com/abmoura/vida/internal/keyring"
	"github.com/abmoura/vida/internal/utils"
)

// processListFunc is swapped in tests.
var processListFunc = ps.Processes

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	storeReachable := false

	// Check 1: store reachable and snapshot loads
	session, err := ctx.OpenSession()
	if err != nil {
		fmt.Printf("❌ Storage reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Storage reachable: OK\n")
		storeReachable = true
	}

	// Check 2: snapshot integrity
	if storeReachable {
		if err := checkSnapshotIntegrity(session); err != nil {
			fmt.Printf("❌ Snapshot integrity: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Snapshot integrity: OK\n")
		}
	} else {
		fmt.Printf("⊘ Snapshot integrity: SKIPPED (storage not reachable)\n")
	}

	// Check 3: single running process. Stores are written by one process
	// at a time; a second vida can clobber the snapshot.
	if err := checkSingleProcess(); err != nil {
		fmt.Printf("⚠ Single process: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Single process: OK\n")
	}

	// Check 4: keyring availability (vault and postgres credentials)
	if keyring.IsAvailable() {
		fmt.Printf("✓ OS keyring: OK\n")
	} else {
		fmt.Printf("⚠ OS keyring: WARNING\n")
		fmt.Printf("   keyring unavailable; 'vida vault' and stored DB credentials will not work\n")
	}

	// Check 5: clock sanity
	if err := checkClock(); err != nil {
		fmt.Printf("❌ Clock: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock: OK\n")
	}

	// Check 6: configured timezone resolves
	if storeReachable {
		if utils.ValidateTimezone(session.State.Settings.Timezone) {
			fmt.Printf("✓ Timezone: OK (%s)\n", session.State.Settings.Timezone)
		} else {
			fmt.Printf("❌ Timezone: FAIL\n")
			fmt.Printf("   Error: configured timezone %q does not resolve\n", session.State.Settings.Timezone)
			hasError = true
		}
	} else {
		fmt.Printf("⊘ Timezone: SKIPPED (storage not reachable)\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}
	fmt.Println("All diagnostics passed!")
	return nil
}

func checkSnapshotIntegrity(session *cli.Session) error {
	seen := make(map[string]bool)
	for _, h := range session.Engine.AllHabits() {
		if seen[h.ID] {
			return fmt.Errorf("duplicate habit ID found: %s", h.ID)
		}
		seen[h.ID] = true
		for _, d := range h.CompletedDates {
			if _, err := time.Parse(constants.DateFormat, d); err != nil {
				return fmt.Errorf("habit %s has invalid completion date %q", h.ID, d)
			}
		}
	}
	if events := len(session.State.Insight.Usage.Events); events > constants.MaxUsageEvents {
		return fmt.Errorf("usage log holds %d events, cap is %d", events, constants.MaxUsageEvents)
	}
	return nil
}

func checkSingleProcess() error {
	processes, err := processListFunc()
	if err != nil {
		return fmt.Errorf("failed to list processes: %w", err)
	}

	self := os.Getpid()
	for _, p := range processes {
		if p.Pid() == self {
			continue
		}
		name := strings.TrimSuffix(p.Executable(), ".exe")
		if name == constants.AppName {
			return fmt.Errorf("another vida process is running (pid %d); concurrent writers can corrupt the snapshot", p.Pid())
		}
	}
	return nil
}

func checkClock() error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}
