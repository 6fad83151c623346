// Package main is the codelab command line: five steps that build up from a
// single Gemini call to the full approval-gated turn loop.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/taeold/gemini-cli-core-codelab/internal/provider"
	"github.com/taeold/gemini-cli-core-codelab/internal/provider/gemini"
)

// Dependencies holds what the commands need from the outside world.
type Dependencies struct {
	In     io.Reader
	Out    io.Writer
	Err    io.Writer
	Getenv func(string) string
	// ClientFactory builds the Gemini client. Tests substitute a mock.
	ClientFactory func(ctx context.Context, apiKey string) (gemini.Client, error)
}

func realClientFactory(ctx context.Context, apiKey string) (gemini.Client, error) {
	client, err := gemini.NewClientFromAPIKey(ctx, apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return client, nil
}

// newClient returns a client for the session or ErrMissingAPIKey.
func (d *Dependencies) newClient(ctx context.Context) (gemini.Client, error) {
	apiKey := d.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, provider.ErrMissingAPIKey
	}
	return d.ClientFactory(ctx, apiKey)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	deps := &Dependencies{
		In:            os.Stdin,
		Out:           os.Stdout,
		Err:           os.Stderr,
		Getenv:        os.Getenv,
		ClientFactory: realClientFactory,
	}
	err := newRootCmd(deps).ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
