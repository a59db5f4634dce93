package main

import (
	"sort"
	"strings"
	"time"

	"github.com/MixinNetwork/wrapper/nft"
	"github.com/spf13/cobra"
)

var (
	eventsSince string
	eventsLimit int
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List the events emitted by the wrapper, oldest first",
	Args:  cobra.NoArgs,
	RunE:  runEvents,
}

func init() {
	rootCmd.AddCommand(eventsCmd)

	eventsCmd.Flags().StringVar(&eventsSince, "since", "", "only events at or after this RFC3339 time")
	eventsCmd.Flags().IntVar(&eventsLimit, "limit", 100, "maximum number of events to list")
}

type eventView struct {
	ID        string            `json:"id" yaml:"id"`
	Name      string            `json:"name" yaml:"name"`
	Fields    map[string]string `json:"fields" yaml:"fields"`
	CreatedAt time.Time         `json:"created_at" yaml:"created_at"`
}

func runEvents(cmd *cobra.Command, args []string) error {
	var offset time.Time
	if eventsSince != "" {
		ts, err := time.Parse(time.RFC3339, eventsSince)
		if err != nil {
			return err
		}
		offset = ts
	}
	return withWrapper(cmd, func(w *nft.Wrapper) error {
		evts, err := w.Events(offset, eventsLimit)
		if err != nil {
			return err
		}
		views := make([]eventView, len(evts))
		rows := make([][]string, len(evts))
		for i, e := range evts {
			views[i] = eventView{ID: e.ID, Name: e.Name, Fields: e.Fields, CreatedAt: e.CreatedAt}
			rows[i] = []string{e.CreatedAt.Format(time.RFC3339Nano), e.Name, formatFields(e.Fields)}
		}
		return renderList(views, []string{"Time", "Event", "Fields"}, rows)
	})
}

func formatFields(fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + fields[k]
	}
	return strings.Join(parts, " ")
}
