// SPDX-License-Identifier: MIT

// Package mcpserver exposes the engine as Model Context Protocol tools:
// resolve, inform, trace_path, analyze, compare, route and show.
package mcpserver

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/katalvlaran/sgrams/config"
	"github.com/katalvlaran/sgrams/engine"
)

// Name is the MCP implementation name.
const Name = "sgrams"

// Server wraps the MCP SDK server around an Engine.
type Server struct {
	MCPServer *sdkmcp.Server

	eng          *engine.Engine
	log          *zap.Logger
	defaultSteps int
	maxSteps     int
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithDefaultSteps sets the trace length used when a call omits steps.
func WithDefaultSteps(n int) Option {
	return func(s *Server) {
		if n >= 0 {
			s.defaultSteps = n
		}
	}
}

// WithMaxSteps bounds trace_path requests; 0 disables the bound.
func WithMaxSteps(n int) Option {
	return func(s *Server) {
		if n >= 0 {
			s.maxSteps = n
		}
	}
}

// NewServer creates an MCP server with every tool registered.
func NewServer(eng *engine.Engine, version string, opts ...Option) *Server {
	s := &Server{
		MCPServer:    sdkmcp.NewServer(&sdkmcp.Implementation{Name: Name, Version: version}, nil),
		eng:          eng,
		log:          zap.NewNop(),
		defaultSteps: 10,
		maxSteps:     config.DefaultMaxSteps,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.Named("mcp")
	s.registerTools()

	return s
}

// Run serves over stdin/stdout until ctx is done or the client disconnects.
func (s *Server) Run(ctx context.Context) error {
	s.log.Info("serving over stdio")
	if err := s.MCPServer.Run(ctx, &sdkmcp.StdioTransport{}); err != nil {
		return fmt.Errorf("mcpserver: %w", err)
	}

	return nil
}

func (s *Server) registerTools() {
	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "resolve",
		Description: "Step a state one position forward along a pattern of an S-Gram. Omit pattern to use the primary pattern.",
	}, s.handleResolve)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "inform",
		Description: "Step a state one position backward along a pattern of an S-Gram. Omit pattern to use the primary pattern.",
	}, s.handleInform)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "trace_path",
		Description: "Follow a state through a pattern for a number of steps, forward or in reverse.",
	}, s.handleTracePath)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "analyze",
		Description: "Analyze one S-Gram: primary pattern, states, cycle-length groups and state distribution.",
	}, s.handleAnalyze)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "compare",
		Description: "Compare S-Grams: patterns grouped by denominator and the Catalan growth sequence. Omit indices to compare all twelve.",
	}, s.handleCompare)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "route",
		Description: "Find the shortest sequence of resolve/inform moves between two states of one S-Gram.",
	}, s.handleRoute)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "show",
		Description: "Return the full definition of one S-Gram: Catalan number, fraction, formula and every pattern.",
	}, s.handleShow)
}
