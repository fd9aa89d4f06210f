package structwalk

import (
	"iter"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/viant/structwalk/logger"
)

// Iterator lazily yields waypoints of a single traversal run
type Iterator struct {
	root     interface{}
	strategy Strategy
	options  *options
	runID    string
	frontier frontier
	waypoint *Waypoint
	sequence int
	err      error
	started  bool
	done     bool
}

// Next advances to the next waypoint, it returns false once traversal is completed or failed
func (i *Iterator) Next() bool {
	if i.done {
		return false
	}
	if !i.started {
		i.started = true
		if err := i.start(); err != nil {
			return i.fail(err)
		}
	}
	node, err := i.frontier.next()
	if err != nil {
		return i.fail(err)
	}
	if node == nil {
		i.done = true
		i.waypoint = nil
		i.frontier = nil
		i.options.logger.Debug("traversal completed", logger.F("run", i.runID), logger.F("strategy", i.strategy), logger.F("waypoints", i.sequence))
		return false
	}
	i.waypoint = &Waypoint{Node: node, sequence: i.sequence}
	i.sequence++
	return true
}

// Waypoint returns the current waypoint, nil before the first or after the last Next
func (i *Iterator) Waypoint() *Waypoint {
	return i.waypoint
}

// Err returns the error which stopped traversal
func (i *Iterator) Err() error {
	return i.err
}

// RunID returns traversal run identifier used in logs
func (i *Iterator) RunID() string {
	return i.runID
}

// Strategy returns traversal strategy
func (i *Iterator) Strategy() Strategy {
	return i.strategy
}

// All returns a sequence of waypoints, a traversal error is yielded last with nil waypoint
func (i *Iterator) All() iter.Seq2[*Waypoint, error] {
	return func(yield func(*Waypoint, error) bool) {
		for i.Next() {
			if !yield(i.waypoint, nil) {
				return
			}
		}
		if i.err != nil {
			yield(nil, i.err)
		}
	}
}

func (i *Iterator) start() error {
	if !i.strategy.IsValid() {
		return errors.Errorf("unsupported strategy: %v", i.strategy)
	}
	i.options.logger.Debug("traversal started", logger.F("run", i.runID), logger.F("strategy", i.strategy), logger.F("streaming", i.options.streaming))
	expander := &expander{accessor: i.options.accessor, maxDepth: i.options.maxDepth}
	root, err := expander.root(i.root)
	if err != nil {
		return err
	}
	if !i.options.streaming {
		if err = validate(expander, root); err != nil {
			return err
		}
	}
	i.frontier = newFrontier(i.strategy, expander, root)
	return nil
}

// validate drains a pre-order frontier without yielding to detect cycles and schema errors upfront
func validate(expander *expander, root *Node) error {
	check := newFrontier(StrategyPreOrder, expander, root)
	for {
		node, err := check.next()
		if err != nil || node == nil {
			return err
		}
	}
}

func (i *Iterator) fail(err error) bool {
	i.err = err
	i.done = true
	i.waypoint = nil
	i.frontier = nil
	i.options.logger.Warn("traversal failed", logger.F("run", i.runID), logger.F("strategy", i.strategy), logger.F("waypoints", i.sequence), logger.F("error", err))
	return false
}

func newIterator(root interface{}, strategy Strategy, opts []Option) *Iterator {
	return &Iterator{root: root, strategy: strategy, options: newOptions(opts), runID: uuid.New().String()}
}
