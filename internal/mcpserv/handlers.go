package mcpserv

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/reviewlab/revminer/core"
	"github.com/reviewlab/revminer/internal/contract"
	"github.com/reviewlab/revminer/internal/tabsink"
	"github.com/reviewlab/revminer/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

func (h *toolHandler) handleMineCorpus(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := *h.baseCfg
	if p := request.GetString("corpus_path", ""); p != "" {
		cfg.CorpusDir = p
	}
	if s := request.GetString("sink", ""); s != "" {
		cfg.Sink = schema.SinkMode(s)
	}
	if d := request.GetString("output_dir", ""); d != "" {
		cfg.OutputDir = d
	}
	if _, ok := schema.ValidSinkModes[cfg.Sink]; !ok {
		return mcp.NewToolResultError(fmt.Sprintf("invalid sink: %s", cfg.Sink)), nil
	}

	sink, err := tabsink.New(&cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("opening sink failed: %v", err)), nil
	}
	summary, err := core.ExecuteMine(cfg.CorpusDir, sink, core.NewKeywordClassifier(), slog.Default())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("mining failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(summary, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleInspectCorpus(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	corpusDir := request.GetString("corpus_path", h.baseCfg.CorpusDir)

	stats, err := core.InspectCorpus(corpusDir)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("inspection failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(stats, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
