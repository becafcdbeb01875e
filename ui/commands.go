package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-faster/errors"
	"github.com/qyinm/shoptui/pager"
	"github.com/qyinm/shoptui/types"
)

// Message types for async operations

type pageMsg struct {
	req  pager.Request
	page types.Page
	err  error
}

// fetchPage returns a tea.Cmd that fetches one catalog page asynchronously.
// It always yields a pageMsg, even if the source panics.
func fetchPage(ctx context.Context, source types.ProductSource, req pager.Request) tea.Cmd {
	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				msg = pageMsg{req: req, err: errors.Errorf("load products: %v", r)}
			}
		}()
		page, err := source.GetProducts(ctx, req.Skip, req.Limit)
		return pageMsg{req: req, page: page, err: err}
	}
}
