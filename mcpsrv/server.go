package mcpsrv

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/qyinm/shoptui/config"
	"github.com/qyinm/shoptui/mcpsrv/dto"
	"github.com/qyinm/shoptui/pager"
	"github.com/qyinm/shoptui/types"
)

const maxPageLimit = 100

type catalogPageArgs struct {
	Skip  int `json:"skip,omitempty" jsonschema:"Number of products to skip (offset)"`
	Limit int `json:"limit,omitempty" jsonschema:"Page size, 1-100 (default 10)"`
}

type catalogPageOutput struct {
	Skip     int           `json:"skip"`
	Limit    int           `json:"limit"`
	Total    int           `json:"total"`
	NextSkip int           `json:"next_skip"`
	HasMore  bool          `json:"has_more"`
	Items    []dto.Product `json:"items"`
}

type catalogTabsOutput struct {
	Items []dto.Tab `json:"items"`
}

type ServerOptions struct {
	Logger *log.Logger
}

func NewServer(source types.ProductSource, version string, opts *ServerOptions) *mcp.Server {
	if strings.TrimSpace(version) == "" {
		version = "dev"
	}
	if opts == nil {
		opts = &ServerOptions{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	server := mcp.NewServer(&mcp.Implementation{Name: "shoptui", Version: version}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "catalog_page",
		Description: "Get one page of catalog products by offset.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args catalogPageArgs) (*mcp.CallToolResult, catalogPageOutput, error) {
		return catalogPageHandler(ctx, req, args, source, logger)
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "catalog_tabs",
		Description: "List the catalog tab labels in display order.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, catalogTabsOutput, error) {
		return catalogTabsHandler(ctx, req)
	})

	return server
}

func NewHandler(server *mcp.Server, opts *mcp.StreamableHTTPOptions) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, opts)
}

func StreamableOptions(cfg config.MCPConfig) *mcp.StreamableHTTPOptions {
	return &mcp.StreamableHTTPOptions{
		Stateless:      cfg.Stateless,
		SessionTimeout: cfg.SessionTimeout,
	}
}

func catalogPageHandler(ctx context.Context, _ *mcp.CallToolRequest, args catalogPageArgs, source types.ProductSource, logger *log.Logger) (*mcp.CallToolResult, catalogPageOutput, error) {
	if args.Skip < 0 {
		return errorToolResult("skip must be >= 0"), catalogPageOutput{}, nil
	}
	limit := args.Limit
	if limit == 0 {
		limit = pager.PageSize
	}
	if limit < 1 || limit > maxPageLimit {
		return errorToolResult("limit must be between 1 and 100"), catalogPageOutput{}, nil
	}

	page, err := source.GetProducts(ctx, args.Skip, limit)
	if err != nil {
		logger.Warn("catalog_page failed", "skip", args.Skip, "limit", limit, "err", err)
		return errorToolResult("fetch products failed"), catalogPageOutput{}, nil
	}

	items := page.Products()
	nextSkip := args.Skip + len(items)
	hasMore := len(items) > 0 && nextSkip < page.Total()
	if !hasMore {
		nextSkip = -1
	}

	return nil, catalogPageOutput{
		Skip:     args.Skip,
		Limit:    limit,
		Total:    page.Total(),
		NextSkip: nextSkip,
		HasMore:  hasMore,
		Items:    dto.FromProducts(items),
	}, nil
}

func catalogTabsHandler(_ context.Context, _ *mcp.CallToolRequest) (*mcp.CallToolResult, catalogTabsOutput, error) {
	return nil, catalogTabsOutput{Items: dto.FromTabs(types.AllTabs)}, nil
}

func errorToolResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: msg}},
	}
}
