package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/mkale/studyloop/internal/behavior"
	"github.com/mkale/studyloop/internal/runway"
	"github.com/mkale/studyloop/internal/srs"
	"github.com/mkale/studyloop/internal/store"
	"github.com/spf13/cobra"
)

// snapshotVersion is bumped when the persisted state layout changes.
const snapshotVersion = 1

// engine wires the store-backed services together for one CLI invocation:
// state is restored from the latest snapshot, mutated in memory, and saved
// back as a new snapshot on Save.
type engine struct {
	store   *store.Store
	sched   *srs.Scheduler
	tracker *behavior.Tracker
	planner *runway.Planner
}

// openEngine opens the database and restores the latest snapshot.
func openEngine(cmd *cobra.Command) (*engine, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	snap, err := st.SnapshotRepo().Latest(context.Background())
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	var data *store.SnapshotData
	if snap != nil {
		data = &snap.Data
	}

	sched := srs.NewScheduler(data, nil, st.EventRepo())
	tracker := behavior.NewTracker(data, nil, st.EventRepo())

	return &engine{
		store:   st,
		sched:   sched,
		tracker: tracker,
		planner: runway.NewPlanner(sched, nil),
	}, nil
}

// Save persists the current engine state as a new snapshot and prunes
// old ones.
func (e *engine) Save(ctx context.Context) error {
	seq, err := e.store.NextSequence(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	err = e.store.SnapshotRepo().Save(ctx, &store.Snapshot{
		Sequence:  seq,
		Timestamp: time.Now().UTC(),
		Data: store.SnapshotData{
			Version:  snapshotVersion,
			SRS:      e.sched.SnapshotData(),
			Behavior: e.tracker.SnapshotData(),
		},
	})
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return e.store.SnapshotRepo().Prune(ctx, 10)
}

func (e *engine) Close() error {
	return e.store.Close()
}
