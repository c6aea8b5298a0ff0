// SPDX-License-Identifier: MIT

package mcpserver

import (
	"context"
	"slices"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/katalvlaran/sgrams/compare"
	"github.com/katalvlaran/sgrams/report"
	"github.com/katalvlaran/sgrams/trace"
)

// --- Tool input/output types ---

type stepInput struct {
	Index   int    `json:"index" jsonschema:"structure index 0-11"`
	State   int    `json:"state" jsonschema:"current state"`
	Pattern string `json:"pattern,omitempty" jsonschema:"divisor key such as 1/7; primary pattern when omitted"`
}

type stepOutput struct {
	Index   int    `json:"index"`
	Pattern string `json:"pattern"`
	State   int    `json:"state"`
	Result  int    `json:"result"`
}

type traceInput struct {
	Index   int    `json:"index" jsonschema:"structure index 0-11"`
	Start   int    `json:"start" jsonschema:"starting state"`
	Steps   *int   `json:"steps,omitempty" jsonschema:"number of steps (server default when omitted)"`
	Pattern string `json:"pattern,omitempty" jsonschema:"divisor key; primary pattern when omitted"`
	Reverse bool   `json:"reverse,omitempty" jsonschema:"walk backward (inform) instead of forward (resolve)"`
}

type traceOutput struct {
	Index   int    `json:"index"`
	Pattern string `json:"pattern"`
	Reverse bool   `json:"reverse"`
	Path    []int  `json:"path"`
}

type indexInput struct {
	Index int `json:"index" jsonschema:"structure index 0-11"`
}

type lengthGroup struct {
	Length   int      `json:"length"`
	Patterns []string `json:"patterns"`
}

type stateCount struct {
	State int `json:"state"`
	Count int `json:"count"`
}

type analyzeOutput struct {
	Index             int           `json:"index"`
	Symbol            string        `json:"symbol"`
	Primary           string        `json:"primary"`
	PrimarySequence   []int         `json:"primary_sequence"`
	AllStates         []int         `json:"all_states"`
	CycleLengthGroups []lengthGroup `json:"cycle_length_groups"`
	StateDistribution []stateCount  `json:"state_distribution"`
	Singletons        []int         `json:"singletons"`
}

type compareInput struct {
	Indices []int `json:"indices,omitempty" jsonschema:"structure indices; all twelve when omitted"`
}

type denominatorGroup struct {
	Denominator int64            `json:"denominator"`
	Members     []compare.Member `json:"members"`
}

type compareOutput struct {
	Indices             []int              `json:"indices"`
	CommonByDenominator []denominatorGroup `json:"common_by_denominator"`
	GrowthSequence      []string           `json:"growth_sequence"`
}

type routeInput struct {
	Index int `json:"index" jsonschema:"structure index 0-11"`
	From  int `json:"from" jsonschema:"source state"`
	To    int `json:"to" jsonschema:"target state"`
}

type routeMove struct {
	From      int    `json:"from"`
	To        int    `json:"to"`
	Pattern   string `json:"pattern"`
	Namespace string `json:"namespace"`
	Direction string `json:"direction"`
}

type routeOutput struct {
	Index  int         `json:"index"`
	States []int       `json:"states"`
	Moves  []routeMove `json:"moves"`
}

// --- Tool handlers ---

func (s *Server) handleResolve(_ context.Context, _ *sdkmcp.CallToolRequest, in stepInput) (*sdkmcp.CallToolResult, stepOutput, error) {
	key, err := s.key(in.Index, in.Pattern)
	if err != nil {
		return nil, stepOutput{}, err
	}
	next, err := s.eng.Resolve(in.Index, in.State, key)
	if err != nil {
		return nil, stepOutput{}, err
	}

	return nil, stepOutput{Index: in.Index, Pattern: key, State: in.State, Result: next}, nil
}

func (s *Server) handleInform(_ context.Context, _ *sdkmcp.CallToolRequest, in stepInput) (*sdkmcp.CallToolResult, stepOutput, error) {
	key, err := s.key(in.Index, in.Pattern)
	if err != nil {
		return nil, stepOutput{}, err
	}
	prev, err := s.eng.Inform(in.Index, in.State, key)
	if err != nil {
		return nil, stepOutput{}, err
	}

	return nil, stepOutput{Index: in.Index, Pattern: key, State: in.State, Result: prev}, nil
}

func (s *Server) handleTracePath(_ context.Context, _ *sdkmcp.CallToolRequest, in traceInput) (*sdkmcp.CallToolResult, traceOutput, error) {
	steps := s.defaultSteps
	if in.Steps != nil {
		steps = *in.Steps
	}
	if err := trace.CheckSteps(steps, s.maxSteps); err != nil {
		return nil, traceOutput{}, err
	}
	key, err := s.key(in.Index, in.Pattern)
	if err != nil {
		return nil, traceOutput{}, err
	}
	path, err := s.eng.TracePath(in.Index, in.Start, steps, key, in.Reverse)
	if err != nil {
		return nil, traceOutput{}, err
	}

	return nil, traceOutput{Index: in.Index, Pattern: key, Reverse: in.Reverse, Path: path}, nil
}

func (s *Server) handleAnalyze(_ context.Context, _ *sdkmcp.CallToolRequest, in indexInput) (*sdkmcp.CallToolResult, analyzeOutput, error) {
	r, err := s.eng.Analyze(in.Index)
	if err != nil {
		return nil, analyzeOutput{}, err
	}

	out := analyzeOutput{
		Index:           r.Index,
		Symbol:          r.Symbol,
		Primary:         r.Primary.Divisor(),
		PrimarySequence: r.Primary.Sequence(),
		AllStates:       append([]int{}, r.AllStates...),
		Singletons:      append([]int{}, r.Singletons...),
	}
	for _, n := range sortedKeys(r.CycleLengthGroups) {
		out.CycleLengthGroups = append(out.CycleLengthGroups, lengthGroup{Length: n, Patterns: r.CycleLengthGroups[n]})
	}
	for _, v := range sortedKeys(r.StateDistribution) {
		out.StateDistribution = append(out.StateDistribution, stateCount{State: v, Count: r.StateDistribution[v]})
	}

	return nil, out, nil
}

func (s *Server) handleCompare(_ context.Context, _ *sdkmcp.CallToolRequest, in compareInput) (*sdkmcp.CallToolResult, compareOutput, error) {
	r, err := s.eng.Compare(in.Indices...)
	if err != nil {
		return nil, compareOutput{}, err
	}

	out := compareOutput{Indices: r.Indices, GrowthSequence: make([]string, len(r.GrowthSequence))}
	for _, d := range compare.Denominators(r.CommonByDenominator) {
		out.CommonByDenominator = append(out.CommonByDenominator, denominatorGroup{Denominator: d, Members: r.CommonByDenominator[d]})
	}
	for i, c := range r.GrowthSequence {
		out.GrowthSequence[i] = c.String()
	}

	return nil, out, nil
}

func (s *Server) handleRoute(ctx context.Context, _ *sdkmcp.CallToolRequest, in routeInput) (*sdkmcp.CallToolResult, routeOutput, error) {
	r, err := s.eng.Route(ctx, in.Index, in.From, in.To)
	if err != nil {
		return nil, routeOutput{}, err
	}

	out := routeOutput{Index: in.Index, States: r.States, Moves: make([]routeMove, len(r.Moves))}
	for i, m := range r.Moves {
		out.Moves[i] = routeMove{
			From:      m.From,
			To:        m.To,
			Pattern:   m.Ref.Divisor,
			Namespace: m.Ref.Namespace.String(),
			Direction: m.Direction.String(),
		}
	}

	return nil, out, nil
}

func (s *Server) handleShow(_ context.Context, _ *sdkmcp.CallToolRequest, in indexInput) (*sdkmcp.CallToolResult, report.StructureDoc, error) {
	st, err := s.eng.Structure(in.Index)
	if err != nil {
		return nil, report.StructureDoc{}, err
	}

	return nil, report.NewStructureDoc(st), nil
}

// key resolves an omitted pattern to the primary key so the output names
// the pattern actually used.
func (s *Server) key(index int, key string) (string, error) {
	if key != "" {
		return key, nil
	}
	k, err := s.eng.PrimaryKey(index)
	if err != nil {
		s.log.Debug("primary key lookup failed", zap.Int("index", index), zap.Error(err))
		return "", err
	}

	return k, nil
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}
