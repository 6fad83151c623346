package main

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/taeold/gemini-cli-core-codelab/internal/console"
	"github.com/taeold/gemini-cli-core-codelab/internal/provider"
	"github.com/taeold/gemini-cli-core-codelab/internal/provider/gemini"
	"github.com/taeold/gemini-cli-core-codelab/internal/scheduler"
	"github.com/taeold/gemini-cli-core-codelab/internal/workflow"
	"github.com/taeold/gemini-cli-core-codelab/internal/workflow/loop"
)

func newHelloCmd(deps *Dependencies, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "hello <prompt>",
		Short: "Step 1: send one prompt and print the reply.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, deps, opts)
			if err != nil {
				return err
			}
			client, err := deps.newClient(cmd.Context())
			if err != nil {
				return err
			}

			text, err := gemini.NewGenerator(client, s.cfg.Model).Generate(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(s.out, text)
			return nil
		},
	}
}

func newStreamCmd(deps *Dependencies, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stream <prompt>",
		Short: "Step 2: stream a reply, showing thoughts apart from content.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, deps, opts)
			if err != nil {
				return err
			}
			client, err := deps.newClient(cmd.Context())
			if err != nil {
				return err
			}

			chat := gemini.NewChat(client, s.cfg.Model)
			printer := console.NewStreamPrinter(s.out, false, 0)
			parts := []provider.Part{provider.TextPart(strings.Join(args, " "))}

			var streamErr error
			for frag, err := range chat.SendTurn(cmd.Context(), parts, nil) {
				if err != nil {
					streamErr = err
					break
				}
				if frag.Thought {
					printer.Handle(workflow.ThoughtEvent{Text: frag.Text})
				} else if frag.ToolCall == nil {
					printer.Handle(workflow.TextEvent{Text: frag.Text})
				}
			}
			printer.Handle(workflow.DoneEvent{Rounds: 1, Err: streamErr})
			return streamErr
		},
	}
}

func newToolCmd(deps *Dependencies, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tool <name> <json-args>",
		Short: "Step 3: invoke one tool directly, asking for confirmation when needed.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := newSession(cmd, deps, opts)
			if err != nil {
				return err
			}
			tb, err := newToolbox(s, deps, opts)
			if err != nil {
				return err
			}
			defer tb.Close()

			name := args[0]
			toolArgs := map[string]any{}
			if len(args) == 2 {
				if err := json.Unmarshal([]byte(args[1]), &toolArgs); err != nil {
					return fmt.Errorf("parse arguments for %s: %w", name, err)
				}
			}

			t, req, err := tb.registry.Decode(name, toolArgs)
			if err != nil {
				return err
			}

			if !slices.Contains(s.cfg.Policy.Allow, name) {
				details, err := t.Confirmation(ctx, req)
				if err != nil {
					return err
				}
				if details != nil {
					decision, err := tb.approver.Confirm(ctx, *details)
					if err != nil {
						return err
					}
					if decision == scheduler.Cancel {
						fmt.Fprintf(s.out, "Tool call %s was cancelled by user\n", name)
						return nil
					}
				}
			}

			res, err := t.Execute(ctx, req)
			if err != nil {
				return err
			}
			s.logger.Debug("[codelab] tool finished", "tool", name, "display", res.Display)
			fmt.Fprintln(s.out, strings.TrimRight(res.LLMContent, "\n"))
			return nil
		},
	}
}

func newScheduleCmd(deps *Dependencies, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "schedule <prompt>",
		Short: "Step 4: run one backend round and pass its tool calls through the approval gate.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := newSession(cmd, deps, opts)
			if err != nil {
				return err
			}
			client, err := deps.newClient(ctx)
			if err != nil {
				return err
			}
			tb, err := newToolbox(s, deps, opts)
			if err != nil {
				return err
			}
			defer tb.Close()

			chat := gemini.NewChat(client, s.cfg.Model)
			printer := console.NewStreamPrinter(s.out, false, 0)
			parts := []provider.Part{provider.TextPart(strings.Join(args, " "))}

			var requests []provider.ToolCallRequest
			for frag, err := range chat.SendTurn(ctx, parts, tb.registry.Declarations()) {
				if err != nil {
					return err
				}
				switch {
				case frag.ToolCall != nil:
					requests = append(requests, *frag.ToolCall)
				case frag.Thought:
					printer.Handle(workflow.ThoughtEvent{Text: frag.Text})
				default:
					printer.Handle(workflow.TextEvent{Text: frag.Text})
				}
			}
			printer.Handle(workflow.DoneEvent{Rounds: 1})

			if len(requests) == 0 {
				fmt.Fprintln(s.out, "No tool calls requested.")
				return nil
			}

			calls, err := tb.scheduler.Schedule(ctx, requests)
			if err != nil {
				return err
			}
			for i := range calls {
				fmt.Fprintln(s.out, callSummary(&calls[i]))
			}
			return nil
		},
	}
}

func newAgentCmd(deps *Dependencies, opts *rootOptions) *cobra.Command {
	var markdown bool
	var width int
	cmd := &cobra.Command{
		Use:   "agent <prompt>",
		Short: "Step 5: run the full turn loop until the model answers.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := newSession(cmd, deps, opts)
			if err != nil {
				return err
			}
			client, err := deps.newClient(ctx)
			if err != nil {
				return err
			}
			tb, err := newToolbox(s, deps, opts)
			if err != nil {
				return err
			}
			defer tb.Close()

			printer := console.NewStreamPrinter(s.out, markdown, width)
			chat := gemini.NewChat(client, s.cfg.Model)
			res, err := loop.NewLoop(chat, tb.registry, tb.scheduler, printer.Handle, s.cfg.Workflow.MaxRounds).
				WithLogger(s.logger).
				Run(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}

			fmt.Fprintf(s.out, "(%d round(s))\n", res.Rounds)
			return nil
		},
	}
	cmd.Flags().BoolVar(&markdown, "markdown", false, "Render the final answer as markdown")
	cmd.Flags().IntVar(&width, "width", 100, "Word wrap width for markdown output")
	return cmd
}

// callSummary is one line per terminal call: id, tool, status and outcome.
func callSummary(c *scheduler.CompletedCall) string {
	line := fmt.Sprintf("%s %s %s", c.Request.ID, c.Request.Name, c.Status)
	switch c.Status {
	case scheduler.StatusCompleted:
		if c.Result != nil && c.Result.Display != "" {
			line += ": " + c.Result.Display
		}
	case scheduler.StatusErrored:
		line += ": " + c.Err.Error()
	}
	return line
}
