package commands

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"shippinglabel/internal/core/domain/model/action"
	"shippinglabel/internal/core/domain/model/kernel"
	"shippinglabel/internal/core/domain/model/labelstate"
	"shippinglabel/internal/core/domain/services"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

// maxLineSize bounds one log line; init actions carry whole order forms.
const maxLineSize = 4 << 20

type logEntry struct {
	OrderID kernel.OrderID  `json:"orderId"`
	Action  json.RawMessage `json:"action"`
}

func replayCmd() *cobra.Command {
	var (
		file string
		dump bool
	)

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Replay an action log through the reducer and print the final states",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if file != "-" {
				f, err := os.Open(file)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			states, err := Replay(in, services.NewLabelReducer(labelstate.DefaultInitializer{}))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if dump {
				spew.Fdump(out, states)
				return nil
			}

			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(states)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "-", "action log in JSON Lines, - for stdin")
	cmd.Flags().BoolVar(&dump, "dump", false, "print a go-spew dump instead of JSON")
	return cmd
}

// Replay applies every action of the log in r, in order, starting from no
// states at all, and returns the states of the orders the log changed.
func Replay(r io.Reader, reducer *services.LabelReducer) (map[kernel.OrderID]*labelstate.State, error) {
	states := map[kernel.OrderID]*labelstate.State{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}

		var entry logEntry
		if err := json.Unmarshal(raw, &entry); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if err := entry.OrderID.Validate(); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		a, err := action.Decode(entry.Action)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		states = reducer.ReduceOrder(states, entry.OrderID, a)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read action log: %w", err)
	}

	return states, nil
}
