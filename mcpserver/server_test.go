package mcpserver_test

import (
	"context"
	"encoding/json"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sgrams/engine"
	"github.com/katalvlaran/sgrams/mcpserver"
)

func connect(t *testing.T, opts ...mcpserver.Option) *sdkmcp.ClientSession {
	t.Helper()
	ctx := t.Context()

	eng, err := engine.New()
	require.NoError(t, err)
	srv := mcpserver.NewServer(eng, "test", opts...)

	t1, t2 := sdkmcp.NewInMemoryTransports()
	_, err = srv.MCPServer.Connect(ctx, t1, nil)
	require.NoError(t, err)

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(ctx, t2, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })

	return session
}

// call invokes a tool and decodes its JSON text content into out.
func call(t *testing.T, session *sdkmcp.ClientSession, name string, args map[string]any, out any) {
	t.Helper()
	res, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err)
	require.False(t, res.IsError, "tool %s failed: %s", name, text(res))
	require.NoError(t, json.Unmarshal([]byte(text(res)), out), text(res))
}

// callErr invokes a tool that must fail and returns its message.
func callErr(t *testing.T, session *sdkmcp.ClientSession, name string, args map[string]any) string {
	t.Helper()
	res, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{Name: name, Arguments: args})
	if err != nil {
		return err.Error()
	}
	require.True(t, res.IsError, "expected %s to fail", name)

	return text(res)
}

func text(res *sdkmcp.CallToolResult) string {
	for _, c := range res.Content {
		if tc, ok := c.(*sdkmcp.TextContent); ok {
			return tc.Text
		}
	}

	return ""
}

// TestListTools registers every tool.
func TestListTools(t *testing.T) {
	session := connect(t)
	res, err := session.ListTools(context.Background(), nil)
	require.NoError(t, err)

	var names []string
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{"resolve", "inform", "trace_path", "analyze", "compare", "route", "show"}, names)
}

// TestResolveInform covers both directions and the primary default.
func TestResolveInform(t *testing.T) {
	session := connect(t)

	var out struct {
		Pattern string `json:"pattern"`
		Result  int    `json:"result"`
	}
	call(t, session, "resolve", map[string]any{"index": 3, "state": 1, "pattern": "1/7"}, &out)
	assert.Equal(t, 4, out.Result)

	call(t, session, "inform", map[string]any{"index": 3, "state": 4}, &out)
	assert.Equal(t, "1/7", out.Pattern)
	assert.Equal(t, 1, out.Result)

	msg := callErr(t, session, "resolve", map[string]any{"index": 3, "state": 99, "pattern": "1/7"})
	assert.Contains(t, msg, "99")
	assert.Contains(t, msg, "1/7")

	msg = callErr(t, session, "resolve", map[string]any{"index": 12, "state": 1})
	assert.Contains(t, msg, "out of range")
}

// TestTracePath honours explicit and default steps.
func TestTracePath(t *testing.T) {
	session := connect(t, mcpserver.WithDefaultSteps(2))

	var out struct {
		Path []int `json:"path"`
	}
	call(t, session, "trace_path", map[string]any{"index": 3, "start": 1, "steps": 6, "pattern": "1/7"}, &out)
	assert.Equal(t, []int{1, 4, 2, 8, 5, 7, 1}, out.Path)

	call(t, session, "trace_path", map[string]any{"index": 3, "start": 1, "reverse": true}, &out)
	assert.Equal(t, []int{1, 7, 5}, out.Path)

	msg := callErr(t, session, "trace_path", map[string]any{"index": 3, "start": 1, "steps": -1})
	assert.Contains(t, msg, "non-negative")
}

// TestTracePath_StepLimit rejects oversized requests and keeps serving.
func TestTracePath_StepLimit(t *testing.T) {
	session := connect(t, mcpserver.WithMaxSteps(100))

	msg := callErr(t, session, "trace_path", map[string]any{"index": 3, "start": 1, "steps": 1 << 50, "pattern": "1/7"})
	assert.Contains(t, msg, "exceed limit")

	var out struct {
		Path []int `json:"path"`
	}
	call(t, session, "trace_path", map[string]any{"index": 3, "start": 1, "steps": 100, "pattern": "1/7"}, &out)
	assert.Len(t, out.Path, 101)
}

// TestAnalyze flattens the int-keyed maps into lists.
func TestAnalyze(t *testing.T) {
	session := connect(t)

	var out struct {
		Primary           string `json:"primary"`
		AllStates         []int  `json:"all_states"`
		CycleLengthGroups []struct {
			Length   int      `json:"length"`
			Patterns []string `json:"patterns"`
		} `json:"cycle_length_groups"`
	}
	call(t, session, "analyze", map[string]any{"index": 4}, &out)
	assert.Equal(t, "1/13", out.Primary)
	assert.Len(t, out.AllStates, 15)
	require.Len(t, out.CycleLengthGroups, 2)
	assert.Equal(t, 3, out.CycleLengthGroups[0].Length)
	assert.Equal(t, []string{"1/13", "2/13"}, out.CycleLengthGroups[1].Patterns)
}

// TestCompare defaults to all structures.
func TestCompare(t *testing.T) {
	session := connect(t)

	var out struct {
		Indices        []int    `json:"indices"`
		GrowthSequence []string `json:"growth_sequence"`
	}
	call(t, session, "compare", map[string]any{}, &out)
	assert.Len(t, out.Indices, 12)
	assert.Equal(t, "208012", out.GrowthSequence[11])

	call(t, session, "compare", map[string]any{"indices": []int{5, 2}}, &out)
	assert.Equal(t, []int{2, 5}, out.Indices)
	assert.Equal(t, []string{"5", "132"}, out.GrowthSequence)
}

// TestRouteAndShow covers the remaining tools.
func TestRouteAndShow(t *testing.T) {
	session := connect(t)

	var route struct {
		States []int `json:"states"`
		Moves  []struct {
			Direction string `json:"direction"`
		} `json:"moves"`
	}
	call(t, session, "route", map[string]any{"index": 3, "from": 1, "to": 5}, &route)
	assert.Equal(t, []int{1, 7, 5}, route.States)
	assert.Equal(t, "backward", route.Moves[0].Direction)

	var show struct {
		Symbol   string `json:"symbol"`
		Catalan  string `json:"catalan"`
		Primary  string `json:"primary"`
		Patterns []struct {
			Divisor  string `json:"divisor"`
			Sequence []int  `json:"sequence"`
		} `json:"patterns"`
	}
	call(t, session, "show", map[string]any{"index": 11}, &show)
	assert.Equal(t, "s12", show.Symbol)
	assert.Equal(t, "208012", show.Catalan)
	assert.Equal(t, "1/11", show.Primary)
	assert.Len(t, show.Patterns, 20)
}
