package search

import (
	"context"

	"github.com/muhammadheryan/wa-crm/application/filter"
	"github.com/muhammadheryan/wa-crm/constant"
	"github.com/muhammadheryan/wa-crm/model"
	"github.com/muhammadheryan/wa-crm/repository/predicate"
	"golang.org/x/sync/errgroup"
)

// plan is a fully checked search: compiled predicate with scope applied,
// resolved sort and normalized paging.
type plan struct {
	entity *filter.Entity
	where  *predicate.Predicate
	sortBy string
	order  constant.SortOrder
	page   int
	limit  int
}

func (p plan) offset() int {
	return (p.page - 1) * p.limit
}

type executor interface {
	execute(ctx context.Context, p plan) (*model.SearchResult, error)
}

type tableRepository[T any] interface {
	FindMany(ctx context.Context, where *predicate.Predicate, order predicate.Order, offset, limit int) ([]T, error)
	Count(ctx context.Context, where *predicate.Predicate) (int64, error)
}

type distinctRepository interface {
	Distinct(ctx context.Context, column string, where *predicate.Predicate, limit int) ([]string, error)
}

// tableExecutor serves entities backed by their own table. Count and page are
// read concurrently over the same predicate; rows inserted between the two
// reads can make total and data disagree by that many rows.
type tableExecutor[T any] struct {
	repo tableRepository[T]
}

func (e *tableExecutor[T]) execute(ctx context.Context, p plan) (*model.SearchResult, error) {
	order, err := predicate.OrderFor(p.entity.Name, p.sortBy, p.order)
	if err != nil {
		return nil, err
	}

	var (
		total int64
		rows  []T
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := e.repo.Count(gctx, p.where)
		if err != nil {
			return err
		}
		total = n
		return nil
	})
	g.Go(func() error {
		r, err := e.repo.FindMany(gctx, p.where, order, p.offset(), p.limit)
		if err != nil {
			return err
		}
		rows = r
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if rows == nil {
		rows = []T{}
	}
	return newResult(rows, total, p.page, p.limit), nil
}

func newResult(data any, total int64, page, limit int) *model.SearchResult {
	return &model.SearchResult{
		Data:       data,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}
}

func totalPages(total int64, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
