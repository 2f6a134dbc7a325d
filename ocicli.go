package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"time"

	"github.com/sony/gobreaker"
)

// CommandRunner executes an external command and returns its stdout.
// Tests substitute an in-memory implementation so no process is spawned.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// execRunner runs commands through os/exec.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := bytes.TrimSpace(stderr.Bytes())
		if len(msg) > 0 {
			return nil, fmt.Errorf("%s %v: %w: %s", name, args, err, msg)
		}
		return nil, fmt.Errorf("%s %v: %w", name, args, err)
	}

	return stdout.Bytes(), nil
}

// envelope is the OCI CLI response wrapper. Only the data payload is
// consumed; a missing data key decodes to nil and is treated as empty.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

// ControlPlaneClient is the narrow interface the fetchers consume. It can
// be satisfied by the real CLI client or by an in-memory fake in tests.
type ControlPlaneClient interface {
	ListResources(ctx context.Context, service, resource string, limit int, compartmentID string) (json.RawMessage, error)
	GetResource(ctx context.Context, service, resource, compartmentID string) (json.RawMessage, error)
}

// CLIClient invokes the external OCI CLI and unwraps its JSON envelope.
// Profile selection and credential resolution are entirely the CLI's
// concern; this client only builds argument lists.
type CLIClient struct {
	binary  string
	profile string
	runner  CommandRunner
	breaker *gobreaker.CircuitBreaker
}

// NewCLIClient creates a client for the given binary and profile. A nil
// runner defaults to real process execution.
func NewCLIClient(binary, profile string, runner CommandRunner) *CLIClient {
	if runner == nil {
		runner = execRunner{}
	}

	// Once the external client fails three times in a row (missing binary,
	// broken install, expired session token) the remaining invocations
	// short-circuit instead of spawning more doomed processes. A rejected
	// call degrades to empty exactly like a failed one.
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "oci-cli",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	})

	return &CLIClient{
		binary:  binary,
		profile: profile,
		runner:  runner,
		breaker: breaker,
	}
}

// ListResources runs a bounded list operation, e.g.
// `oci db pluggable-database list --limit 1000 --compartment-id X --profile P`,
// and returns the raw data array.
func (c *CLIClient) ListResources(ctx context.Context, service, resource string, limit int, compartmentID string) (json.RawMessage, error) {
	args := []string{
		service, resource, "list",
		"--limit", strconv.Itoa(limit),
		"--compartment-id", compartmentID,
		"--profile", c.profile,
	}
	return c.invoke(ctx, args)
}

// GetResource runs a single-object get operation, e.g.
// `oci iam compartment get --compartment-id X --profile P`, and returns the
// raw data object.
func (c *CLIClient) GetResource(ctx context.Context, service, resource, compartmentID string) (json.RawMessage, error) {
	args := []string{
		service, resource, "get",
		"--compartment-id", compartmentID,
		"--profile", c.profile,
	}
	return c.invoke(ctx, args)
}

func (c *CLIClient) invoke(ctx context.Context, args []string) (json.RawMessage, error) {
	logger.Debug("Invoking %s %v", c.binary, args)

	out, err := c.breaker.Execute(func() (interface{}, error) {
		return c.runner.Run(ctx, c.binary, args...)
	})
	if err != nil {
		return nil, err
	}

	var env envelope
	if err := json.Unmarshal(out.([]byte), &env); err != nil {
		return nil, fmt.Errorf("unparseable response from %s: %w", c.binary, err)
	}

	return env.Data, nil
}
