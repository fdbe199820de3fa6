package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LynnKirby/charconv"
)

// EncodingInfo describes one supported encoding.
type EncodingInfo struct {
	Name    string   `json:"name"`
	Aliases []string `json:"aliases"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List supported encodings and their labels",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, cmd)
		},
	}
}

func runList(opts *RootOptions, cmd *cobra.Command) error {
	var encodings []EncodingInfo
	for _, name := range charconv.Encodings() {
		encodings = append(encodings, EncodingInfo{
			Name:    name,
			Aliases: charconv.Aliases(name),
		})
	}

	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if out.JSON() {
		return out.Success(encodings)
	}

	var b strings.Builder
	for i, enc := range encodings {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%-10s %s", enc.Name, strings.Join(enc.Aliases, ", "))
	}
	return out.Success(b.String())
}
