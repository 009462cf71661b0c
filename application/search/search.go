package search

import (
	"context"
	goerrors "errors"

	"github.com/muhammadheryan/wa-crm/application/filter"
	"github.com/muhammadheryan/wa-crm/application/scope"
	"github.com/muhammadheryan/wa-crm/cmd/config"
	"github.com/muhammadheryan/wa-crm/constant"
	"github.com/muhammadheryan/wa-crm/model"
	customerrepo "github.com/muhammadheryan/wa-crm/repository/customer"
	messagerepo "github.com/muhammadheryan/wa-crm/repository/message"
	paymentrepo "github.com/muhammadheryan/wa-crm/repository/payment"
	"github.com/muhammadheryan/wa-crm/repository/predicate"
	subscriptionrepo "github.com/muhammadheryan/wa-crm/repository/subscription"
	userrepo "github.com/muhammadheryan/wa-crm/repository/user"
	"github.com/muhammadheryan/wa-crm/utils/errors"
	"github.com/muhammadheryan/wa-crm/utils/logger"
	"go.uber.org/zap"
)

// SearchApp is the single entry point for filter based search.
type SearchApp interface {
	Search(ctx context.Context, caller model.Caller, req *model.SearchRequest) (*model.SearchResult, error)
	QuickSearch(ctx context.Context, caller model.Caller, req *model.QuickSearchRequest) (*model.SearchResult, error)
	Suggestions(ctx context.Context, caller model.Caller, req *model.SuggestionRequest) (*model.SuggestionResponse, error)
	Fields(entity constant.SearchEntity) (*model.EntityFields, error)
}

type searchAppImpl struct {
	config    *config.Config
	executors map[constant.SearchEntity]executor
	distinct  map[constant.SearchEntity]distinctRepository
}

func NewSearchApp(
	config *config.Config,
	messageRepo messagerepo.MessageRepository,
	customerRepo customerrepo.CustomerRepository,
	paymentRepo paymentrepo.PaymentRepository,
	subscriptionRepo subscriptionrepo.SubscriptionRepository,
	userRepo userrepo.UserRepository,
) SearchApp {
	return &searchAppImpl{
		config: config,
		executors: map[constant.SearchEntity]executor{
			constant.EntityMessages:      &tableExecutor[model.Message]{repo: messageRepo},
			constant.EntityPayments:      &tableExecutor[model.Payment]{repo: paymentRepo},
			constant.EntitySubscriptions: &tableExecutor[model.Subscription]{repo: subscriptionRepo},
			constant.EntityCustomers:     &customerExecutor{customerRepo: customerRepo, userRepo: userRepo},
		},
		// customers live on the message table
		distinct: map[constant.SearchEntity]distinctRepository{
			constant.EntityMessages:      messageRepo,
			constant.EntityCustomers:     messageRepo,
			constant.EntityPayments:      paymentRepo,
			constant.EntitySubscriptions: subscriptionRepo,
		},
	}
}

func (s *searchAppImpl) Search(ctx context.Context, caller model.Caller, req *model.SearchRequest) (*model.SearchResult, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	p, err := s.plan(caller, req.Entity, req.Filters, req.SortBy, req.SortOrder, req.Page, req.Limit)
	if err != nil {
		return nil, err
	}

	res, err := s.executors[p.entity.Name].execute(ctx, p)
	if err != nil {
		return nil, s.failure(ctx, "[Search]", err)
	}
	return res, nil
}

func (s *searchAppImpl) Fields(entity constant.SearchEntity) (*model.EntityFields, error) {
	fields, ok := filter.Fields(entity)
	if !ok {
		return nil, errors.SetCustomErrorDetail(constant.ErrUnsupportedEntity, string(entity))
	}
	return fields, nil
}

// plan runs every check that needs no I/O: entity, grammar, scope, compile.
// The ownership constraint is appended after the caller's own clauses.
func (s *searchAppImpl) plan(caller model.Caller, entity constant.SearchEntity, filters []model.FilterClause, sortBy, sortOrder string, page, limit int) (plan, error) {
	e, ok := filter.Lookup(entity)
	if !ok {
		// USERS is known but never searchable; let the scoper refuse it first.
		if _, err := scope.Resolve(caller, entity); err != nil {
			return plan{}, err
		}
		return plan{}, errors.SetCustomErrorDetail(constant.ErrUnsupportedEntity, string(entity))
	}

	clauses, err := filter.Validate(entity, filters)
	if err != nil {
		return plan{}, clauseError(err)
	}

	sc, err := scope.Resolve(caller, entity)
	if err != nil {
		return plan{}, err
	}

	where, err := predicate.Compile(entity, clauses)
	if err != nil {
		logger.Error("[Search] err predicate.Compile", zap.String("error", err.Error()))
		return plan{}, errors.SetCustomError(constant.ErrInternal)
	}
	if sc.Restricted {
		col, ok := predicate.Column(entity, e.OwnerField())
		if !ok {
			logger.Error("[Search] owner column missing", zap.String("entity", string(entity)))
			return plan{}, errors.SetCustomError(constant.ErrInternal)
		}
		where.Scope(col, sc.OwnerID)
	}

	order := constant.SortDesc
	if sortOrder != "" {
		order = constant.ParseSortOrder(sortOrder)
	}

	page, limit = normalizePage(page, limit)
	return plan{
		entity: e,
		where:  where,
		sortBy: e.SortField(sortBy),
		order:  order,
		page:   page,
		limit:  limit,
	}, nil
}

func (s *searchAppImpl) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.config == nil || s.config.Search.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.config.Search.Timeout)
}

// failure maps an executor error to what the caller sees. Storage causes are
// logged and never returned.
func (s *searchAppImpl) failure(ctx context.Context, method string, err error) error {
	var ce errors.CustomError
	if goerrors.As(err, &ce) {
		return ce
	}
	if goerrors.Is(err, context.DeadlineExceeded) || goerrors.Is(ctx.Err(), context.DeadlineExceeded) {
		logger.Warn(method+" timeout", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrTimeout)
	}
	logger.Error(method+" err execute", zap.String("error", err.Error()))
	return errors.SetCustomError(constant.ErrInternal)
}

func clauseError(err error) error {
	var ce *filter.ClauseError
	if goerrors.As(err, &ce) {
		return errors.SetCustomErrorDetail(ce.Kind, ce.Error())
	}
	logger.Error("[Search] err filter.Validate", zap.String("error", err.Error()))
	return errors.SetCustomError(constant.ErrInternal)
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = constant.DefaultPage
	}
	if limit <= 0 {
		limit = constant.DefaultLimit
	}
	if limit > constant.MaxLimit {
		limit = constant.MaxLimit
	}
	return page, limit
}
