// Package cli implements the §2/§4.9 non-interactive dispatcher (C10):
// one cobra.Command per cataloged tool, with one flag per resolved
// field, typed by schema.Kind, reached when stdout is not a TTY (§6).
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/readwiseio/readwise-cli/internal/argsconv"
	"github.com/readwiseio/readwise-cli/internal/mcp"
	"github.com/readwiseio/readwise-cli/internal/schema"
	"github.com/readwiseio/readwise-cli/internal/toolerr"
)

// BuildToolCommand builds "tool call <name> --flag=value ..." (§4.9's
// CLI-echo convention) for one cataloged tool.
func BuildToolCommand(tool mcp.ToolDef, fields []schema.Field, svc mcp.Service, timeout time.Duration) *cobra.Command {
	cmd := &cobra.Command{
		Use:   tool.Name,
		Short: tool.Description,
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make(map[string]string, len(fields))
			for _, f := range fields {
				draft, err := readFlag(cmd, f)
				if err != nil {
					return err
				}
				values[f.Name] = draft
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			result, err := svc.CallTool(ctx, tool.Name, argsconv.Build(fields, values))
			if err != nil {
				var terr *toolerr.Error
				if ok := asToolErr(err, &terr); ok {
					return fmt.Errorf("%s", terr.Render())
				}
				return err
			}
			return printResult(cmd, result)
		},
	}

	for _, f := range fields {
		addFlag(cmd, f)
	}
	return cmd
}

func asToolErr(err error, target **toolerr.Error) bool {
	if terr, ok := err.(*toolerr.Error); ok {
		*target = terr
		return true
	}
	return false
}

func addFlag(cmd *cobra.Command, f schema.Field) {
	usage := f.Prop.Description
	if f.Required {
		usage += " (required)"
	}
	switch f.Prop.Kind {
	case schema.KindNumber:
		cmd.Flags().Float64(f.Name, 0, usage)
	case schema.KindBool:
		cmd.Flags().Bool(f.Name, false, usage)
	case schema.KindArrayText, schema.KindArrayEnum:
		cmd.Flags().StringSlice(f.Name, nil, usage)
	case schema.KindArrayObj:
		cmd.Flags().String(f.Name, "", usage+" (JSON array)")
	default:
		cmd.Flags().String(f.Name, "", usage)
	}
}

// readFlag converts a flag's parsed value back into the §3 string-draft
// form argsconv.Build expects, so the CLI dispatcher and the
// interactive form serializer share one conversion path.
func readFlag(cmd *cobra.Command, f schema.Field) (string, error) {
	switch f.Prop.Kind {
	case schema.KindNumber:
		v, err := cmd.Flags().GetFloat64(f.Name)
		if err != nil {
			return "", err
		}
		if v == 0 && !cmd.Flags().Changed(f.Name) {
			return "", nil
		}
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case schema.KindBool:
		v, err := cmd.Flags().GetBool(f.Name)
		if err != nil {
			return "", err
		}
		if !v {
			return "", nil
		}
		return "true", nil
	case schema.KindArrayText, schema.KindArrayEnum:
		v, err := cmd.Flags().GetStringSlice(f.Name)
		if err != nil {
			return "", err
		}
		if len(v) == 0 {
			return "", nil
		}
		draft := ""
		for i, item := range v {
			if i > 0 {
				draft += ", "
			}
			draft += item
		}
		return draft, nil
	default:
		return cmd.Flags().GetString(f.Name)
	}
}

// printResult prints content when present (§6: content is primary) and
// only falls back to structuredContent when content is empty.
func printResult(cmd *cobra.Command, result *mcp.CallResult) error {
	if len(result.Content) == 0 {
		if result.StructuredContent != nil {
			b, err := json.MarshalIndent(result.StructuredContent, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
		}
		return nil
	}
	for _, c := range result.Content {
		fmt.Fprintln(cmd.OutOrStdout(), c.Text)
	}
	return nil
}

// BuildRootCommand assembles "tool call <name>" for every cataloged
// tool (§4.9) under the shared "tool" / "call" nesting the interactive
// Results view's CLI-echo footer also reproduces.
func BuildRootCommand(tools []mcp.ToolDef, svc mcp.Service, timeout time.Duration) *cobra.Command {
	toolCmd := &cobra.Command{Use: "tool", Short: "Inspect and invoke catalog tools non-interactively"}
	callCmd := &cobra.Command{Use: "call", Short: "Invoke a single tool with flag-supplied arguments"}

	for _, t := range tools {
		fields := schema.ResolveTool(t)
		callCmd.AddCommand(BuildToolCommand(t, fields, svc, timeout))
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List every tool in the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, t := range tools {
				fmt.Fprintf(cmd.OutOrStdout(), "%-40s %s\n", t.Name, t.Description)
			}
			return nil
		},
	}

	toolCmd.AddCommand(callCmd, listCmd)
	return toolCmd
}
