// Package mcpserv provides the Model Context Protocol (MCP) server implementation.
package mcpserv

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/reviewlab/revminer/internal/contract"
)

// NewServer initializes and configures the revminer MCP server without
// starting it. This is exposed for unit testing.
func NewServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Review Corpus Miner",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{baseCfg: baseCfg}

	// --- 1. Tool: mine_corpus ---
	s.AddTool(mcp.NewTool("mine_corpus",
		mcp.WithDescription("Mine a code-review JSON corpus into nine normalized tables and return per-table row counts."),
		mcp.WithString("corpus_path", mcp.Description("Path to the corpus root (defaults to the configured corpus).")),
		mcp.WithString("sink", mcp.Description("Output sink (csv, parquet, database). Defaults to 'csv'."), mcp.Enum("csv", "parquet", "database")),
		mcp.WithString("output_dir", mcp.Description("Directory receiving csv/parquet outputs.")),
	), h.handleMineCorpus)

	// --- 2. Tool: inspect_corpus ---
	s.AddTool(mcp.NewTool("inspect_corpus",
		mcp.WithDescription("Summarize a corpus layout (chunks, review documents, patchset side-files) without mining it."),
		mcp.WithString("corpus_path", mcp.Description("Path to the corpus root.")),
	), h.handleInspectCorpus)

	return s
}

// Serve starts the revminer MCP server over stdio.
func Serve(_ context.Context, baseCfg *contract.Config) error {
	s := NewServer(baseCfg)
	return server.ServeStdio(s)
}
