package search

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/muhammadheryan/wa-crm/constant"
	"github.com/muhammadheryan/wa-crm/model"
	customerrepo "github.com/muhammadheryan/wa-crm/repository/customer"
	userrepo "github.com/muhammadheryan/wa-crm/repository/user"
	"golang.org/x/sync/errgroup"
)

// profileFetchLimit bounds concurrent owner lookups for one page.
const profileFetchLimit = 8

// customerExecutor derives customers from grouped message rows. Grouping
// materializes the whole candidate set, so sorting and paging happen here.
type customerExecutor struct {
	customerRepo customerrepo.CustomerRepository
	userRepo     userrepo.UserRepository
}

func (e *customerExecutor) execute(ctx context.Context, p plan) (*model.SearchResult, error) {
	groups, err := e.customerRepo.GroupBy(ctx, p.where)
	if err != nil {
		return nil, err
	}

	sortCustomers(groups, p.sortBy, p.order)

	total := len(groups)
	start := min(p.offset(), total)
	end := min(start+p.limit, total)
	page := groups[start:end]

	profiles, err := e.profiles(ctx, page)
	if err != nil {
		return nil, err
	}

	rows := make([]model.Customer, 0, len(page))
	for _, g := range page {
		rows = append(rows, model.Customer{
			Name:         g.CustomerName,
			Phone:        g.CustomerPhone,
			UserID:       g.UserID,
			MessageCount: g.MessageCount,
			UnreadCount:  g.UnreadCount,
			LastActivity: g.LastActivity,
			// nil when the owner row is gone; the customer is still listed
			User: profiles[g.UserID],
		})
	}

	return newResult(rows, int64(total), p.page, p.limit), nil
}

// profiles looks up each distinct owner of page once, concurrently.
func (e *customerExecutor) profiles(ctx context.Context, page []model.CustomerAggregate) (map[uint64]*model.UserProfile, error) {
	out := make(map[uint64]*model.UserProfile, len(page))
	if len(page) == 0 {
		return out, nil
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(profileFetchLimit)

	seen := make(map[uint64]struct{}, len(page))
	for _, row := range page {
		if _, ok := seen[row.UserID]; ok {
			continue
		}
		seen[row.UserID] = struct{}{}

		ownerID := row.UserID
		g.Go(func() error {
			profile, err := e.userRepo.GetProfile(gctx, ownerID)
			if err != nil {
				return err
			}
			mu.Lock()
			out[ownerID] = profile
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// sortCustomers orders groups by field, then by phone, name and owner so that
// paging is stable across identical requests.
func sortCustomers(groups []model.CustomerAggregate, field string, order constant.SortOrder) {
	primary := func(a, b model.CustomerAggregate) int {
		switch field {
		case constant.CustomerCountField:
			return cmp.Compare(a.MessageCount, b.MessageCount)
		case "name":
			return cmp.Compare(a.CustomerName, b.CustomerName)
		case "phone":
			return cmp.Compare(a.CustomerPhone, b.CustomerPhone)
		case "userId":
			return cmp.Compare(a.UserID, b.UserID)
		}
		return a.LastActivity.Compare(b.LastActivity)
	}

	slices.SortFunc(groups, func(a, b model.CustomerAggregate) int {
		c := primary(a, b)
		if order == constant.SortDesc {
			c = -c
		}
		if c != 0 {
			return c
		}
		return cmp.Or(
			cmp.Compare(a.CustomerPhone, b.CustomerPhone),
			cmp.Compare(a.CustomerName, b.CustomerName),
			cmp.Compare(a.UserID, b.UserID),
		)
	})
}
