package savedsearch

import (
	"context"
	"encoding/json"
	goerrors "errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"
	"github.com/muhammadheryan/wa-crm/application/filter"
	"github.com/muhammadheryan/wa-crm/application/scope"
	"github.com/muhammadheryan/wa-crm/application/search"
	"github.com/muhammadheryan/wa-crm/constant"
	"github.com/muhammadheryan/wa-crm/model"
	savedsearchrepo "github.com/muhammadheryan/wa-crm/repository/savedsearch"
	txrepo "github.com/muhammadheryan/wa-crm/repository/tx"
	"github.com/muhammadheryan/wa-crm/thirdparty/rabbitmq"
	"github.com/muhammadheryan/wa-crm/utils/errors"
	"github.com/muhammadheryan/wa-crm/utils/logger"
	"go.uber.org/zap"
)

type SavedSearchApp interface {
	Create(ctx context.Context, caller model.Caller, req *model.CreateSavedSearchRequest) (*model.SavedSearch, error)
	List(ctx context.Context, caller model.Caller, entity constant.SearchEntity) (*model.SavedSearchListResponse, error)
	Get(ctx context.Context, caller model.Caller, id string) (*model.SavedSearch, error)
	Update(ctx context.Context, caller model.Caller, id string, req *model.UpdateSavedSearchRequest) (*model.SavedSearch, error)
	Delete(ctx context.Context, caller model.Caller, id string) error
	Execute(ctx context.Context, caller model.Caller, id string, req *model.ExecuteSavedSearchRequest) (*model.SearchResult, error)
}

// EventPublisher receives saved search changes after they commit.
type EventPublisher interface {
	PublishSavedSearchEvent(msg rabbitmq.SavedSearchEvent) error
}

type savedSearchAppImpl struct {
	txRepo          txrepo.TxRepository
	savedSearchRepo savedsearchrepo.SavedSearchRepository
	searchApp       search.SearchApp
	publisher       EventPublisher
}

// NewSavedSearchApp builds the store. publisher may be nil.
func NewSavedSearchApp(txRepo txrepo.TxRepository, savedSearchRepo savedsearchrepo.SavedSearchRepository, searchApp search.SearchApp, publisher EventPublisher) SavedSearchApp {
	return &savedSearchAppImpl{
		txRepo:          txRepo,
		savedSearchRepo: savedSearchRepo,
		searchApp:       searchApp,
		publisher:       publisher,
	}
}

// Create inserts a saved search. When it is the new default, clearing the
// previous default and inserting happen in one transaction with the
// (user, entity) rows locked, so concurrent creates cannot leave two defaults.
func (s *savedSearchAppImpl) Create(ctx context.Context, caller model.Caller, req *model.CreateSavedSearchRequest) (*model.SavedSearch, error) {
	if _, err := scope.Resolve(caller, req.Entity); err != nil {
		return nil, err
	}
	if _, ok := filter.Lookup(req.Entity); !ok {
		return nil, errors.SetCustomErrorDetail(constant.ErrUnsupportedEntity, string(req.Entity))
	}

	filters, err := encodeFilters(req.Entity, req.Filters)
	if err != nil {
		return nil, err
	}

	entity := &model.SavedSearchEntity{
		ID:          uuid.NewString(),
		UserID:      caller.UserID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Entity:      req.Entity,
		Filters:     filters,
		IsDefault:   req.IsDefault,
		CreatedAt:   time.Now().UTC(),
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreateSavedSearch] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	if entity.IsDefault {
		if err := s.savedSearchRepo.LockScopeTx(ctx, tx, entity.UserID, entity.Entity); err != nil {
			logger.Error("[CreateSavedSearch] lock scope", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if err := s.savedSearchRepo.ClearDefaultsTx(ctx, tx, entity.UserID, entity.Entity, entity.ID); err != nil {
			logger.Error("[CreateSavedSearch] clear defaults", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	if err := s.savedSearchRepo.InsertTx(ctx, tx, entity); err != nil {
		logger.Error("[CreateSavedSearch] insert", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreateSavedSearch] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.publish(rabbitmq.SavedSearchCreated, entity)
	return toSavedSearch(entity)
}

func (s *savedSearchAppImpl) List(ctx context.Context, caller model.Caller, entity constant.SearchEntity) (*model.SavedSearchListResponse, error) {
	if entity != "" {
		if _, ok := filter.Lookup(entity); !ok {
			return nil, errors.SetCustomErrorDetail(constant.ErrUnsupportedEntity, string(entity))
		}
	}

	rows, err := s.savedSearchRepo.List(ctx, &model.SavedSearchFilter{UserID: caller.UserID, Entity: entity})
	if err != nil {
		logger.Error("[ListSavedSearch] err savedSearchRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	items := make([]model.SavedSearch, 0, len(rows))
	for i := range rows {
		item, err := toSavedSearch(&rows[i])
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return &model.SavedSearchListResponse{Items: items}, nil
}

// Get returns NotFound both for missing ids and for ids owned by someone else.
func (s *savedSearchAppImpl) Get(ctx context.Context, caller model.Caller, id string) (*model.SavedSearch, error) {
	entity, err := s.load(ctx, "[GetSavedSearch]", caller, id)
	if err != nil {
		return nil, err
	}
	return toSavedSearch(entity)
}

func (s *savedSearchAppImpl) Update(ctx context.Context, caller model.Caller, id string, req *model.UpdateSavedSearchRequest) (*model.SavedSearch, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[UpdateSavedSearch] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	entity, err := s.savedSearchRepo.GetForUpdateTx(ctx, tx, id, caller.UserID)
	if err != nil {
		logger.Error("[UpdateSavedSearch] get for update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, errors.SetCustomErrorDetail(constant.ErrInvalidRequest, "name cannot be empty")
		}
		entity.Name = name
	}
	if req.Description != nil {
		entity.Description = req.Description
	}
	if req.Filters != nil {
		filters, err := encodeFilters(entity.Entity, *req.Filters)
		if err != nil {
			return nil, err
		}
		entity.Filters = filters
	}
	if req.IsDefault != nil {
		if *req.IsDefault && !entity.IsDefault {
			if err := s.savedSearchRepo.LockScopeTx(ctx, tx, entity.UserID, entity.Entity); err != nil {
				logger.Error("[UpdateSavedSearch] lock scope", zap.String("error", err.Error()))
				return nil, errors.SetCustomError(constant.ErrInternal)
			}
			if err := s.savedSearchRepo.ClearDefaultsTx(ctx, tx, entity.UserID, entity.Entity, entity.ID); err != nil {
				logger.Error("[UpdateSavedSearch] clear defaults", zap.String("error", err.Error()))
				return nil, errors.SetCustomError(constant.ErrInternal)
			}
		}
		entity.IsDefault = *req.IsDefault
	}

	now := time.Now().UTC()
	entity.UpdatedAt = &now
	if err := s.savedSearchRepo.UpdateTx(ctx, tx, entity); err != nil {
		logger.Error("[UpdateSavedSearch] update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[UpdateSavedSearch] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.publish(rabbitmq.SavedSearchUpdated, entity)
	return toSavedSearch(entity)
}

func (s *savedSearchAppImpl) Delete(ctx context.Context, caller model.Caller, id string) error {
	entity, err := s.load(ctx, "[DeleteSavedSearch]", caller, id)
	if err != nil {
		return err
	}

	deleted, err := s.savedSearchRepo.Delete(ctx, id, caller.UserID)
	if err != nil {
		logger.Error("[DeleteSavedSearch] err savedSearchRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !deleted {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	s.publish(rabbitmq.SavedSearchDeleted, entity)
	return nil
}

// Execute runs the stored filters under the caller's current scope, not the
// scope at creation time. Paging and sort come from req.
func (s *savedSearchAppImpl) Execute(ctx context.Context, caller model.Caller, id string, req *model.ExecuteSavedSearchRequest) (*model.SearchResult, error) {
	entity, err := s.load(ctx, "[ExecuteSavedSearch]", caller, id)
	if err != nil {
		return nil, err
	}
	saved, err := toSavedSearch(entity)
	if err != nil {
		return nil, err
	}

	if req == nil {
		req = &model.ExecuteSavedSearchRequest{}
	}
	return s.searchApp.Search(ctx, caller, &model.SearchRequest{
		Entity:    saved.Entity,
		Filters:   saved.Filters,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
		Page:      req.Page,
		Limit:     req.Limit,
	})
}

func (s *savedSearchAppImpl) load(ctx context.Context, method string, caller model.Caller, id string) (*model.SavedSearchEntity, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	entity, err := s.savedSearchRepo.Get(ctx, id, caller.UserID)
	if err != nil {
		logger.Error(method+" err savedSearchRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return entity, nil
}

func (s *savedSearchAppImpl) publish(action rabbitmq.SavedSearchAction, entity *model.SavedSearchEntity) {
	if s.publisher == nil {
		return
	}
	msg := rabbitmq.SavedSearchEvent{
		Action:     action,
		ID:         entity.ID,
		UserID:     entity.UserID,
		Entity:     entity.Entity,
		IsDefault:  entity.IsDefault,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.PublishSavedSearchEvent(msg); err != nil {
		logger.Error("[SavedSearch] publish event", zap.String("action", string(action)), zap.String("error", err.Error()))
	}
}

// encodeFilters validates clauses against entity and serializes the
// normalized form. An empty list is stored as [] rather than null.
func encodeFilters(entity constant.SearchEntity, clauses []model.FilterClause) (types.JSONText, error) {
	normalized, err := filter.Validate(entity, clauses)
	if err != nil {
		var ce *filter.ClauseError
		if goerrors.As(err, &ce) {
			return nil, errors.SetCustomErrorDetail(ce.Kind, ce.Error())
		}
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	raw, err := json.Marshal(normalized)
	if err != nil {
		logger.Error("[SavedSearch] marshal filters", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return types.JSONText(raw), nil
}

func toSavedSearch(entity *model.SavedSearchEntity) (*model.SavedSearch, error) {
	filters := []model.FilterClause{}
	if len(entity.Filters) > 0 {
		if err := json.Unmarshal(entity.Filters, &filters); err != nil {
			logger.Error("[SavedSearch] unmarshal filters", zap.String("id", entity.ID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if filters == nil {
			filters = []model.FilterClause{}
		}
	}

	return &model.SavedSearch{
		ID:          entity.ID,
		UserID:      entity.UserID,
		Name:        entity.Name,
		Description: entity.Description,
		Entity:      entity.Entity,
		Filters:     filters,
		IsDefault:   entity.IsDefault,
		CreatedAt:   entity.CreatedAt,
		UpdatedAt:   entity.UpdatedAt,
	}, nil
}
