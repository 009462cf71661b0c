package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/wa-crm/application/identity"
	"github.com/muhammadheryan/wa-crm/application/savedsearch"
	"github.com/muhammadheryan/wa-crm/application/search"
	"github.com/muhammadheryan/wa-crm/constant"
	"github.com/muhammadheryan/wa-crm/model"
	utilsContext "github.com/muhammadheryan/wa-crm/utils/context"
	"github.com/muhammadheryan/wa-crm/utils/errors"
	validatorx "github.com/muhammadheryan/wa-crm/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	IdentityApp    identity.IdentityApp
	SearchApp      search.SearchApp
	SavedSearchApp savedsearch.SavedSearchApp
}

func NewTransport(internalAPIKey string, identityApp identity.IdentityApp, searchApp search.SearchApp, savedSearchApp savedsearch.SavedSearchApp) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		IdentityApp:    identityApp,
		SearchApp:      searchApp,
		SavedSearchApp: savedSearchApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// search routes
	mux.HandleFunc("/search", rh.Search).Methods(http.MethodPost)
	mux.HandleFunc("/search/quick", rh.QuickSearch).Methods(http.MethodGet)
	mux.HandleFunc("/search/fields/{entity}", rh.Fields).Methods(http.MethodGet)
	mux.HandleFunc("/search/suggestions", rh.Suggestions).Methods(http.MethodGet)

	// saved search routes
	mux.HandleFunc("/search/saved", rh.CreateSavedSearch).Methods(http.MethodPost)
	mux.HandleFunc("/search/saved", rh.ListSavedSearch).Methods(http.MethodGet)
	mux.HandleFunc("/search/saved/{id}", rh.GetSavedSearch).Methods(http.MethodGet)
	mux.HandleFunc("/search/saved/{id}", rh.UpdateSavedSearch).Methods(http.MethodPatch)
	mux.HandleFunc("/search/saved/{id}", rh.DeleteSavedSearch).Methods(http.MethodDelete)
	mux.HandleFunc("/search/saved/{id}/execute", rh.ExecuteSavedSearch).Methods(http.MethodPost)

	// internal routes
	internal := mux.PathPrefix("/internal/v1").Subrouter()
	internal.HandleFunc("/users/{id}/role-cache/invalidate", rh.InvalidateRoleCache).Methods(http.MethodPost)
	internal.Use(InternalMiddleware(internalAPIKey))

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(identityApp))

	return mux
}

// Search handler
// @Summary Search records
// @Description Search one entity with a list of typed filter clauses
// @Tags Search
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.SearchRequest true "Search Request"
// @Success 200 {object} model.SearchResult
// @Failure 400 {object} model.ErrorResponse
// @Failure 403 {object} model.ErrorResponse
// @Failure 504 {object} model.ErrorResponse
// @Router /search [post]
func (s *RestHandler) Search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := utilsContext.GetCaller(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomErrorDetail(constant.ErrInvalidRequest, "malformed json body"))
		return
	}
	req.Entity = constant.ParseEntity(string(req.Entity))

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomErrorDetail(constant.ErrInvalidRequest, err.Error()))
		return
	}

	res, err := s.SearchApp.Search(ctx, caller, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// QuickSearch handler
// @Summary Quick search
// @Description Free text search over one field or all quick search fields of an entity
// @Tags Search
// @Produce json
// @Security BearerAuth
// @Param entity query string true "Entity"
// @Param q query string false "Free text"
// @Param field query string false "Field name or all"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} model.SearchResult
// @Failure 400 {object} model.ErrorResponse
// @Router /search/quick [get]
func (s *RestHandler) QuickSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := utilsContext.GetCaller(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	q := r.URL.Query()
	page, limit, err := pageParams(r)
	if err != nil {
		writeError(w, err)
		return
	}

	req := model.QuickSearchRequest{
		Entity: constant.ParseEntity(q.Get("entity")),
		Query:  q.Get("q"),
		Field:  q.Get("field"),
		Page:   page,
		Limit:  limit,
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomErrorDetail(constant.ErrInvalidRequest, err.Error()))
		return
	}

	res, err := s.SearchApp.QuickSearch(ctx, caller, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Fields handler
// @Summary Entity fields
// @Description Filterable fields, their operators and sort keys for building a filter UI
// @Tags Search
// @Produce json
// @Security BearerAuth
// @Param entity path string true "Entity"
// @Success 200 {object} model.EntityFields
// @Failure 400 {object} model.ErrorResponse
// @Router /search/fields/{entity} [get]
func (s *RestHandler) Fields(w http.ResponseWriter, r *http.Request) {
	entity := constant.ParseEntity(mux.Vars(r)["entity"])

	res, err := s.SearchApp.Fields(entity)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Suggestions handler
// @Summary Autocomplete suggestions
// @Description Up to 10 distinct values of a field containing the query
// @Tags Search
// @Produce json
// @Security BearerAuth
// @Param entity query string true "Entity"
// @Param field query string true "Field"
// @Param query query string false "Partial value"
// @Success 200 {object} model.SuggestionResponse
// @Failure 400 {object} model.ErrorResponse
// @Router /search/suggestions [get]
func (s *RestHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := utilsContext.GetCaller(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	q := r.URL.Query()
	req := model.SuggestionRequest{
		Entity: constant.ParseEntity(q.Get("entity")),
		Field:  q.Get("field"),
		Query:  q.Get("query"),
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomErrorDetail(constant.ErrInvalidRequest, err.Error()))
		return
	}

	res, err := s.SearchApp.Suggestions(ctx, caller, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CreateSavedSearch handler
// @Summary Create saved search
// @Description Persist a named filter set; isDefault replaces the caller's current default for the entity
// @Tags SavedSearch
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateSavedSearchRequest true "Saved Search"
// @Success 200 {object} model.SavedSearch
// @Failure 400 {object} model.ErrorResponse
// @Router /search/saved [post]
func (s *RestHandler) CreateSavedSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := utilsContext.GetCaller(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.CreateSavedSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomErrorDetail(constant.ErrInvalidRequest, "malformed json body"))
		return
	}
	req.Entity = constant.ParseEntity(string(req.Entity))

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomErrorDetail(constant.ErrInvalidRequest, err.Error()))
		return
	}

	res, err := s.SavedSearchApp.Create(ctx, caller, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListSavedSearch handler
// @Summary List saved searches
// @Tags SavedSearch
// @Produce json
// @Security BearerAuth
// @Param entity query string false "Entity"
// @Success 200 {object} model.SavedSearchListResponse
// @Router /search/saved [get]
func (s *RestHandler) ListSavedSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := utilsContext.GetCaller(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var entity constant.SearchEntity
	if v := r.URL.Query().Get("entity"); v != "" {
		entity = constant.ParseEntity(v)
	}

	res, err := s.SavedSearchApp.List(ctx, caller, entity)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetSavedSearch handler
// @Summary Get saved search
// @Tags SavedSearch
// @Produce json
// @Security BearerAuth
// @Param id path string true "Saved search id"
// @Success 200 {object} model.SavedSearch
// @Failure 404 {object} model.ErrorResponse
// @Router /search/saved/{id} [get]
func (s *RestHandler) GetSavedSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := utilsContext.GetCaller(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.SavedSearchApp.Get(ctx, caller, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateSavedSearch handler
// @Summary Update saved search
// @Description Patch name, description, filters or isDefault; omitted fields are unchanged
// @Tags SavedSearch
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Saved search id"
// @Param request body model.UpdateSavedSearchRequest true "Patch"
// @Success 200 {object} model.SavedSearch
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /search/saved/{id} [patch]
func (s *RestHandler) UpdateSavedSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := utilsContext.GetCaller(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.UpdateSavedSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomErrorDetail(constant.ErrInvalidRequest, "malformed json body"))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomErrorDetail(constant.ErrInvalidRequest, err.Error()))
		return
	}

	res, err := s.SavedSearchApp.Update(ctx, caller, mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DeleteSavedSearch handler
// @Summary Delete saved search
// @Tags SavedSearch
// @Produce json
// @Security BearerAuth
// @Param id path string true "Saved search id"
// @Success 200 {object} model.DeleteResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /search/saved/{id} [delete]
func (s *RestHandler) DeleteSavedSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := utilsContext.GetCaller(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	id := mux.Vars(r)["id"]
	if err := s.SavedSearchApp.Delete(ctx, caller, id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, model.DeleteResponse{ID: id, Deleted: true})
}

// ExecuteSavedSearch handler
// @Summary Execute saved search
// @Description Run the stored filters with the caller's current scope and optional paging and sort overrides
// @Tags SavedSearch
// @Produce json
// @Security BearerAuth
// @Param id path string true "Saved search id"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Param sortBy query string false "Sort field"
// @Param sortOrder query string false "asc or desc"
// @Success 200 {object} model.SearchResult
// @Failure 404 {object} model.ErrorResponse
// @Router /search/saved/{id}/execute [post]
func (s *RestHandler) ExecuteSavedSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := utilsContext.GetCaller(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	page, limit, err := pageParams(r)
	if err != nil {
		writeError(w, err)
		return
	}
	q := r.URL.Query()
	req := model.ExecuteSavedSearchRequest{
		Page:      page,
		Limit:     limit,
		SortBy:    q.Get("sortBy"),
		SortOrder: q.Get("sortOrder"),
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomErrorDetail(constant.ErrInvalidRequest, err.Error()))
		return
	}

	res, err := s.SavedSearchApp.Execute(ctx, caller, mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// InvalidateRoleCache handler, called by the role change consumer.
func (s *RestHandler) InvalidateRoleCache(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.IdentityApp.InvalidateRole(r.Context(), userID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, struct {
		UserID uint64 `json:"userId"`
	}{UserID: userID})
}

// pageParams reads optional page and limit query params.
func pageParams(r *http.Request) (int, int, error) {
	q := r.URL.Query()
	var page, limit int
	var err error
	if v := q.Get("page"); v != "" {
		if page, err = strconv.Atoi(v); err != nil {
			return 0, 0, errors.SetCustomErrorDetail(constant.ErrInvalidRequest, "page must be an integer")
		}
	}
	if v := q.Get("limit"); v != "" {
		if limit, err = strconv.Atoi(v); err != nil {
			return 0, 0, errors.SetCustomErrorDetail(constant.ErrInvalidRequest, "limit must be an integer")
		}
	}
	return page, limit, nil
}
