package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/viant/structwalk"
	"github.com/viant/structwalk/document"
	"github.com/viant/structwalk/schema"
)

const (
	formatText = "text"
	formatJSON = "json"
)

type waypointLine struct {
	Sequence int         `json:"sequence"`
	Path     string      `json:"path"`
	Label    string      `json:"label,omitempty"`
	Kind     string      `json:"kind"`
	Depth    int         `json:"depth"`
	Index    int         `json:"index"`
	Value    interface{} `json:"value,omitempty"`
}

// NewWalkCmd creates walk command
func NewWalkCmd(config *viper.Viper) *cobra.Command {
	walkCmd := &cobra.Command{
		Use:   "walk [file]",
		Short: "print waypoints of a JSON or YAML document, stdin is read when file is omitted",
		Args:  cobra.MaximumNArgs(1),
		Example: `structwalk walk doc.yaml --strategy postorder
cat doc.json | structwalk walk --strategy bfs --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			if err := config.BindPFlags(cmd.InheritedFlags()); err != nil {
				return err
			}
			return runWalk(cmd, config, args)
		},
	}
	walkCmd.Flags().StringP("strategy", "s", structwalk.StrategyPreOrder.String(), fmt.Sprintf("traversal strategy, one of %v", structwalk.Strategies()))
	walkCmd.Flags().StringP("format", "f", formatText, "output format, text or json")
	walkCmd.Flags().Int("max-depth", -1, "do not discover nodes deeper than max depth, negative means unlimited")
	walkCmd.Flags().Bool("streaming", false, "print waypoints before the whole document is validated")
	return walkCmd
}

func runWalk(cmd *cobra.Command, config *viper.Viper, args []string) error {
	strategy, err := structwalk.ParseStrategy(config.GetString("strategy"))
	if err != nil {
		return err
	}
	format := strings.ToLower(config.GetString("format"))
	if format != formatText && format != formatJSON {
		return fmt.Errorf("unsupported format: %v", format)
	}
	name, data, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	doc, err := document.Decode(name, data)
	if err != nil {
		return err
	}
	aLogger, err := newLogger(config)
	if err != nil {
		return err
	}
	options := []structwalk.Option{
		structwalk.WithAccessor(document.New()),
		structwalk.WithLogger(aLogger),
		structwalk.WithMaxDepth(config.GetInt("max-depth")),
	}
	if config.GetBool("streaming") {
		options = append(options, structwalk.WithStreaming())
	}
	out := cmd.OutOrStdout()
	encoder := json.NewEncoder(out)
	for waypoint, err := range structwalk.Traverse(doc, strategy, options...).All() {
		if err != nil {
			return err
		}
		if format == formatJSON {
			err = encoder.Encode(newWaypointLine(waypoint))
		} else {
			err = writeText(out, waypoint)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func readInput(cmd *cobra.Command, args []string) (string, []byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		return "stdin", data, err
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", nil, err
	}
	return args[0], data, nil
}

func newWaypointLine(waypoint *structwalk.Waypoint) *waypointLine {
	ret := &waypointLine{
		Sequence: waypoint.Sequence(),
		Path:     displayPath(waypoint.Path()),
		Label:    waypoint.Label(),
		Kind:     waypoint.Kind().String(),
		Depth:    waypoint.Depth(),
		Index:    waypoint.Index(),
	}
	if waypoint.Kind() == schema.KindScalar {
		ret.Value = waypoint.Value()
	}
	return ret
}

func writeText(out io.Writer, waypoint *structwalk.Waypoint) error {
	line := fmt.Sprintf("%d\t%v%v\t%v", waypoint.Sequence(), strings.Repeat("  ", waypoint.Depth()), displayPath(waypoint.Path()), waypoint.Kind())
	if waypoint.Kind() == schema.KindScalar {
		line += fmt.Sprintf("\t%v", waypoint.Value())
	}
	_, err := fmt.Fprintln(out, line)
	return err
}

func displayPath(path string) string {
	if path == "" {
		return "$"
	}
	return path
}
