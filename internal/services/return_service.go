package services

import (
	"context"
	"fmt"

	"salesdash-backend/internal/upstream"
	"salesdash-backend/internal/view"
)

// ReturnService manages the product returns page. Approve and reject are
// resolved into local state only; the listing is not refetched after an
// action.
type ReturnService struct {
	API  *upstream.Client
	list *view.ApprovalList
}

// NewReturnService creates a new return service
func NewReturnService(api *upstream.Client) *ReturnService {
	return &ReturnService{API: api, list: view.NewApprovalList()}
}

func (s *ReturnService) Refresh(ctx context.Context) ([]view.Row, error) {
	returns, err := s.API.FetchReturns(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch returns: %w", err)
	}
	rows, err := view.RowsFrom(returns)
	if err != nil {
		return nil, err
	}
	s.list.SetRows(rows)
	return rows, nil
}

func (s *ReturnService) List() []view.Row {
	return s.list.Rows()
}

// Approve resolves one return. Terminal or already-submitting rows are
// refused before the upstream is called.
func (s *ReturnService) Approve(ctx context.Context, id string) error {
	return s.act(id, "Approved", func() error { return s.API.ApproveReturn(ctx, id) })
}

// Reject resolves one return.
func (s *ReturnService) Reject(ctx context.Context, id string) error {
	return s.act(id, "Rejected", func() error { return s.API.RejectReturn(ctx, id) })
}

func (s *ReturnService) act(id, status string, call func() error) error {
	if err := s.list.Begin(id); err != nil {
		return err
	}
	if err := call(); err != nil {
		s.list.Fail(id)
		return fmt.Errorf("return %s: %w", id, err)
	}
	s.list.Resolve(id, status)
	return nil
}
