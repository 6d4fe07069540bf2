/*
 * MIT License
 *
 * Copyright (c) 2022-2025  Arsene Tochemey Gandote
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package actor

import (
	"context"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
)

// Edge declares the outbound wiring of one actor: where its produced
// messages go and how they are spread across the targets.
//
// DeliverAs, when set, rewrites the tag of every message crossing the edge
// so a producer whose alphabet differs from its consumers' can still feed
// them. An empty DeliverAs forwards messages unchanged.
type Edge struct {
	From      string
	To        []string
	Strategy  RoutingStrategy
	DeliverAs Tag
}

// Topology is a declarative description of a set of actors and the edges
// between them. Spawning a topology closes the wiring gap of standalone
// Spawn: every actor learns its peers' handles before any of them starts
// handling messages, so no early production is lost to a missing edge.
type Topology struct {
	name        string
	definitions []*Definition
	edges       []Edge
}

// NewTopology creates a topology out of the given definitions and edges.
func NewTopology(name string, definitions []*Definition, edges []Edge) *Topology {
	return &Topology{
		name:        name,
		definitions: definitions,
		edges:       edges,
	}
}

// Name returns the topology name.
func (t *Topology) Name() string {
	return t.name
}

// Validate checks the topology for structural soundness: unique actor
// names, no more than one outbound edge per actor, every edge endpoint
// resolving to a declared actor, a single target on point-to-point edges,
// and every translated tag present in all of the receiving actors'
// alphabets.
func (t *Topology) Validate() error {
	if !nameRegex.MatchString(t.name) {
		return fmt.Errorf("%w: invalid topology name=(%s)", ErrInvalidTopology, t.name)
	}
	if len(t.definitions) == 0 {
		return fmt.Errorf("%w: topology=(%s) has no actors", ErrInvalidTopology, t.name)
	}

	byName := make(map[string]*Definition, len(t.definitions))
	for _, definition := range t.definitions {
		if definition == nil {
			return fmt.Errorf("%w: topology=(%s) has a nil definition", ErrInvalidTopology, t.name)
		}
		if err := definition.Validate(); err != nil {
			return err
		}
		if _, ok := byName[definition.Name()]; ok {
			return fmt.Errorf("%w: duplicate actor=(%s) in topology=(%s)", ErrInvalidTopology, definition.Name(), t.name)
		}
		byName[definition.Name()] = definition
	}

	sources := mapset.NewSet[string]()
	for _, edge := range t.edges {
		if _, ok := byName[edge.From]; !ok {
			return fmt.Errorf("%w: edge source=(%s) is not part of topology=(%s)", ErrInvalidTopology, edge.From, t.name)
		}
		if !sources.Add(edge.From) {
			return fmt.Errorf("%w: actor=(%s) has more than one outbound edge in topology=(%s)", ErrInvalidTopology, edge.From, t.name)
		}
		if len(edge.To) == 0 {
			return fmt.Errorf("%w: edge of actor=(%s) has no targets in topology=(%s)", ErrInvalidTopology, edge.From, t.name)
		}
		if edge.Strategy == PointToPointRouting && len(edge.To) > 1 {
			return fmt.Errorf("%w: point-to-point edge of actor=(%s) has %d targets in topology=(%s)", ErrInvalidTopology, edge.From, len(edge.To), t.name)
		}
		for _, target := range edge.To {
			definition, ok := byName[target]
			if !ok {
				return fmt.Errorf("%w: edge target=(%s) is not part of topology=(%s)", ErrInvalidTopology, target, t.name)
			}
			if edge.DeliverAs != "" && !definition.Alphabet().Contains(edge.DeliverAs) {
				return fmt.Errorf("%w: actor=(%s) does not accept tag=(%s) in topology=(%s)", ErrUndeclaredTag, target, edge.DeliverAs, t.name)
			}
		}
	}
	return nil
}

// SpawnTopology creates and wires all actors of the topology, then starts
// them. The sequencing matters: every instance exists and every edge is
// installed before any instance begins handling messages, so the first
// timer firing already finds its downstream handles in place.
//
// On any failure the instances spawned so far are torn down and the error
// of the failing step is returned.
func (x *ActorSystem) SpawnTopology(ctx context.Context, topology *Topology, opts ...SpawnOption) ([]*PID, error) {
	if topology == nil {
		return nil, ErrInvalidTopology
	}
	if err := topology.Validate(); err != nil {
		return nil, err
	}

	// phase one: create every instance in the Created state
	created := make([]*PID, 0, len(topology.definitions))
	byName := make(map[string]*PID, len(topology.definitions))
	rollback := func() {
		for _, pid := range created {
			_ = pid.Stop(ctx)
			x.pids.Delete(pid.Name())
		}
	}
	for _, definition := range topology.definitions {
		pid, err := x.createPID(definition, opts...)
		if err != nil {
			rollback()
			return nil, err
		}
		created = append(created, pid)
		byName[pid.Name()] = pid
	}

	// phase two: install the edges while everything is still quiescent
	for _, edge := range topology.edges {
		targets := make([]*PID, 0, len(edge.To))
		for _, name := range edge.To {
			targets = append(targets, byName[name])
		}
		byName[edge.From].installRoute(newRoute(edge.Strategy, edge.DeliverAs, targets...))
	}

	// phase three: start every instance; timers begin ticking here
	for _, pid := range created {
		if err := x.startPID(ctx, pid); err != nil {
			rollback()
			return nil, err
		}
	}

	x.logger.Infof("topology=(%s) spawned with %d actor(s)", topology.name, len(created))
	return created, nil
}
