package search

import (
	"context"
	"strings"

	"github.com/muhammadheryan/wa-crm/application/filter"
	"github.com/muhammadheryan/wa-crm/constant"
	"github.com/muhammadheryan/wa-crm/model"
	"github.com/muhammadheryan/wa-crm/repository/predicate"
	"github.com/muhammadheryan/wa-crm/utils/errors"
	"github.com/muhammadheryan/wa-crm/utils/logger"
	"go.uber.org/zap"
)

// QuickSearch turns free text into filters and runs them through Search.
// field "all" (or empty) matches any of the entity's quick search fields.
func (s *searchAppImpl) QuickSearch(ctx context.Context, caller model.Caller, req *model.QuickSearchRequest) (*model.SearchResult, error) {
	return s.Search(ctx, caller, &model.SearchRequest{
		Entity:  req.Entity,
		Filters: quickFilters(req.Entity, req.Field, req.Query),
		Page:    req.Page,
		Limit:   req.Limit,
	})
}

func quickFilters(entity constant.SearchEntity, field, query string) []model.FilterClause {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	field = strings.TrimSpace(field)
	if field != "" && !strings.EqualFold(field, constant.QuickSearchAll) {
		return []model.FilterClause{{Field: field, Operator: constant.OpContains, Value: query}}
	}

	e, ok := filter.Lookup(entity)
	if !ok {
		return nil
	}
	members := make([]model.FilterClause, 0, len(e.QuickFields))
	for _, f := range e.QuickFields {
		members = append(members, model.FilterClause{Field: f, Operator: constant.OpContains, Value: query})
	}
	if len(members) == 1 {
		return members
	}
	return []model.FilterClause{{Or: members}}
}

// Suggestions returns up to ten distinct values of a string or enum field that
// contain the partial query. The caller's scope applies as in Search.
func (s *searchAppImpl) Suggestions(ctx context.Context, caller model.Caller, req *model.SuggestionRequest) (*model.SuggestionResponse, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	e, ok := filter.Lookup(req.Entity)
	if !ok {
		_, err := s.plan(caller, req.Entity, nil, "", "", 1, constant.MaxSuggestions)
		return nil, err
	}
	f, ok := e.Field(req.Field)
	if !ok {
		return nil, errors.SetCustomErrorDetail(constant.ErrInvalidField, req.Field)
	}

	query := strings.TrimSpace(req.Query)
	resp := &model.SuggestionResponse{Entity: req.Entity, Field: req.Field, Suggestions: []string{}}

	switch f.Type {
	case constant.FieldEnum:
		// enum members are known up front; only the caller's scope check remains
		if _, err := s.plan(caller, req.Entity, nil, "", "", 1, constant.MaxSuggestions); err != nil {
			return nil, err
		}
		for _, v := range f.EnumValues {
			if len(resp.Suggestions) == constant.MaxSuggestions {
				break
			}
			if strings.Contains(strings.ToLower(v), strings.ToLower(query)) {
				resp.Suggestions = append(resp.Suggestions, v)
			}
		}
		return resp, nil
	case constant.FieldString:
	default:
		return nil, errors.SetCustomErrorDetail(constant.ErrIncompatibleOperator, req.Field+" does not support suggestions")
	}

	var filters []model.FilterClause
	if query != "" {
		filters = []model.FilterClause{{Field: req.Field, Operator: constant.OpContains, Value: query}}
	}
	p, err := s.plan(caller, req.Entity, filters, "", "", 1, constant.MaxSuggestions)
	if err != nil {
		return nil, err
	}

	col, ok := predicate.Column(req.Entity, req.Field)
	if !ok {
		logger.Error("[Suggestions] column missing", zap.String("entity", string(req.Entity)), zap.String("field", req.Field))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	values, err := s.distinct[req.Entity].Distinct(ctx, col, p.where, constant.MaxSuggestions)
	if err != nil {
		return nil, s.failure(ctx, "[Suggestions]", err)
	}
	resp.Suggestions = append(resp.Suggestions, values...)
	return resp, nil
}
