package search_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/muhammadheryan/wa-crm/application/search"
	"github.com/muhammadheryan/wa-crm/cmd/config"
	"github.com/muhammadheryan/wa-crm/constant"
	customermocks "github.com/muhammadheryan/wa-crm/mocks/repository/customer"
	messagemocks "github.com/muhammadheryan/wa-crm/mocks/repository/message"
	paymentmocks "github.com/muhammadheryan/wa-crm/mocks/repository/payment"
	subscriptionmocks "github.com/muhammadheryan/wa-crm/mocks/repository/subscription"
	usermocks "github.com/muhammadheryan/wa-crm/mocks/repository/user"
	"github.com/muhammadheryan/wa-crm/model"
	"github.com/muhammadheryan/wa-crm/repository/predicate"
	cerr "github.com/muhammadheryan/wa-crm/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	admin   = model.Caller{UserID: 1, Role: constant.RoleAdmin}
	manager = model.Caller{UserID: 2, Role: constant.RoleManager}
	client  = model.Caller{UserID: 7, Role: constant.RoleClient}
)

type fields struct {
	messageRepo      *messagemocks.MessageRepository
	customerRepo     *customermocks.CustomerRepository
	paymentRepo      *paymentmocks.PaymentRepository
	subscriptionRepo *subscriptionmocks.SubscriptionRepository
	userRepo         *usermocks.UserRepository
}

func newFields(t *testing.T) fields {
	return fields{
		messageRepo:      messagemocks.NewMessageRepository(t),
		customerRepo:     customermocks.NewCustomerRepository(t),
		paymentRepo:      paymentmocks.NewPaymentRepository(t),
		subscriptionRepo: subscriptionmocks.NewSubscriptionRepository(t),
		userRepo:         usermocks.NewUserRepository(t),
	}
}

func (f fields) app(cfg *config.Config) search.SearchApp {
	if cfg == nil {
		cfg = &config.Config{Search: config.SearchConfig{Timeout: time.Second}}
	}
	return search.NewSearchApp(cfg, f.messageRepo, f.customerRepo, f.paymentRepo, f.subscriptionRepo, f.userRepo)
}

// whereIs matches a predicate by its rendered WHERE clause and args.
func whereIs(want string, args ...any) interface{} {
	return mock.MatchedBy(func(p *predicate.Predicate) bool {
		w, a := p.Where()
		return w == want && reflect.DeepEqual(a, args)
	})
}

func assertErrType(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[want] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[want])
	}
}

func TestSearchApp_Search(t *testing.T) {
	ts := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	payments := []model.Payment{
		{ID: 1, UserID: 3, Amount: 100, Currency: "TRY", Status: "COMPLETED", PaymentDate: ts},
		{ID: 2, UserID: 4, Amount: 500, Currency: "TRY", Status: "COMPLETED", PaymentDate: ts},
	}

	tests := []struct {
		name     string
		caller   model.Caller
		req      *model.SearchRequest
		mockCall func(f fields)
		want     *model.SearchResult
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:   "success: between on amount includes both bounds",
			caller: admin,
			req: &model.SearchRequest{
				Entity:  constant.EntityPayments,
				Filters: []model.FilterClause{{Field: "amount", Operator: constant.OpBetween, Value: []any{100, 500}}},
			},
			mockCall: func(f fields) {
				where := whereIs(" WHERE (p.amount >= ? AND p.amount <= ?)", 100.0, 500.0)
				f.paymentRepo.On("Count", mock.Anything, where).Return(int64(2), nil).Once()
				f.paymentRepo.On("FindMany", mock.Anything, where, predicate.Order{Column: "p.payment_date", Desc: true}, 0, 20).
					Return(payments, nil).Once()
			},
			want: &model.SearchResult{Data: payments, Total: 2, Page: 1, Limit: 20, TotalPages: 1},
		},
		{
			name:   "success: client scope is ANDed after a userId filter",
			caller: client,
			req: &model.SearchRequest{
				Entity:  constant.EntityMessages,
				Filters: []model.FilterClause{{Field: "userId", Operator: constant.OpEquals, Value: 99}},
			},
			mockCall: func(f fields) {
				where := whereIs(" WHERE m.user_id = ? AND m.user_id = ?", 99.0, uint64(7))
				f.messageRepo.On("Count", mock.Anything, where).Return(int64(0), nil).Once()
				f.messageRepo.On("FindMany", mock.Anything, where, predicate.Order{Column: "m.timestamp", Desc: true}, 0, 20).
					Return(nil, nil).Once()
			},
			want: &model.SearchResult{Data: []model.Message{}, Total: 0, Page: 1, Limit: 20, TotalPages: 0},
		},
		{
			name:   "success: page past the end returns empty data",
			caller: manager,
			req:    &model.SearchRequest{Entity: constant.EntitySubscriptions, Page: 6, Limit: 10},
			mockCall: func(f fields) {
				f.subscriptionRepo.On("Count", mock.Anything, whereIs("")).Return(int64(47), nil).Once()
				f.subscriptionRepo.On("FindMany", mock.Anything, whereIs(""), predicate.Order{Column: "s.start_date", Desc: true}, 50, 10).
					Return([]model.Subscription{}, nil).Once()
			},
			want: &model.SearchResult{Data: []model.Subscription{}, Total: 47, Page: 6, Limit: 10, TotalPages: 5},
		},
		{
			name:   "success: limit clamped, explicit ascending sort",
			caller: admin,
			req:    &model.SearchRequest{Entity: constant.EntityPayments, SortBy: "amount", SortOrder: "ASC", Page: -3, Limit: 500},
			mockCall: func(f fields) {
				f.paymentRepo.On("Count", mock.Anything, whereIs("")).Return(int64(0), nil).Once()
				f.paymentRepo.On("FindMany", mock.Anything, whereIs(""), predicate.Order{Column: "p.amount"}, 0, 100).
					Return([]model.Payment{}, nil).Once()
			},
			want: &model.SearchResult{Data: []model.Payment{}, Total: 0, Page: 1, Limit: 100, TotalPages: 0},
		},
		{
			name:   "success: unknown sort key falls back to default",
			caller: admin,
			req:    &model.SearchRequest{Entity: constant.EntityMessages, SortBy: "password", Limit: 5},
			mockCall: func(f fields) {
				f.messageRepo.On("Count", mock.Anything, whereIs("")).Return(int64(0), nil).Once()
				f.messageRepo.On("FindMany", mock.Anything, whereIs(""), predicate.Order{Column: "m.timestamp", Desc: true}, 0, 5).
					Return([]model.Message{}, nil).Once()
			},
			want: &model.SearchResult{Data: []model.Message{}, Total: 0, Page: 1, Limit: 5, TotalPages: 0},
		},
		{
			name:   "error: unknown field fails the whole request",
			caller: admin,
			req: &model.SearchRequest{
				Entity: constant.EntityMessages,
				Filters: []model.FilterClause{
					{Field: "customerName", Operator: constant.OpContains, Value: "a"},
					{Field: "password", Operator: constant.OpEquals, Value: "x"},
				},
			},
			wantErr: true,
			errCode: constant.ErrInvalidField,
		},
		{
			name:   "error: incompatible operator",
			caller: admin,
			req: &model.SearchRequest{
				Entity:  constant.EntityPayments,
				Filters: []model.FilterClause{{Field: "amount", Operator: constant.OpContains, Value: "1"}},
			},
			wantErr: true,
			errCode: constant.ErrIncompatibleOperator,
		},
		{
			name:   "error: malformed between",
			caller: admin,
			req: &model.SearchRequest{
				Entity:  constant.EntityPayments,
				Filters: []model.FilterClause{{Field: "amount", Operator: constant.OpBetween, Value: []any{100}}},
			},
			wantErr: true,
			errCode: constant.ErrMalformedValue,
		},
		{
			name:    "error: unknown entity",
			caller:  admin,
			req:     &model.SearchRequest{Entity: "INVOICES"},
			wantErr: true,
			errCode: constant.ErrUnsupportedEntity,
		},
		{
			name:    "error: users refused for client",
			caller:  client,
			req:     &model.SearchRequest{Entity: constant.EntityUsers},
			wantErr: true,
			errCode: constant.ErrForbidden,
		},
		{
			name:    "error: users not searchable even for admin",
			caller:  admin,
			req:     &model.SearchRequest{Entity: constant.EntityUsers},
			wantErr: true,
			errCode: constant.ErrUnsupportedEntity,
		},
		{
			name:    "error: unknown role",
			caller:  model.Caller{UserID: 9, Role: "GUEST"},
			req:     &model.SearchRequest{Entity: constant.EntityMessages},
			wantErr: true,
			errCode: constant.ErrForbidden,
		},
		{
			name:   "error: storage failure is internal",
			caller: admin,
			req:    &model.SearchRequest{Entity: constant.EntityMessages},
			mockCall: func(f fields) {
				f.messageRepo.On("Count", mock.Anything, mock.Anything).Return(int64(0), errors.New("Error 1146: Table 'message' doesn't exist")).Once()
				f.messageRepo.On("FindMany", mock.Anything, mock.Anything, mock.Anything, 0, 20).Return(nil, context.Canceled).Maybe()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			got, err := f.app(nil).Search(context.Background(), tt.caller, tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Search() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrType(t, err, tt.errCode)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSearchApp_Search_Timeout(t *testing.T) {
	f := newFields(t)
	block := func(ctx context.Context, _ *predicate.Predicate) (int64, error) {
		<-ctx.Done()
		return 0, ctx.Err()
	}
	blockRows := func(ctx context.Context, _ *predicate.Predicate, _ predicate.Order, _, _ int) ([]model.Message, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	f.messageRepo.On("Count", mock.Anything, mock.Anything).Return(block).Once()
	f.messageRepo.On("FindMany", mock.Anything, mock.Anything, mock.Anything, 0, 20).Return(blockRows).Once()

	app := f.app(&config.Config{Search: config.SearchConfig{Timeout: 20 * time.Millisecond}})
	_, err := app.Search(context.Background(), admin, &model.SearchRequest{Entity: constant.EntityMessages})
	require.Error(t, err)
	assertErrType(t, err, constant.ErrTimeout)
}

func TestSearchApp_Search_Idempotent(t *testing.T) {
	f := newFields(t)
	rows := []model.Message{
		{ID: 2, UserID: 7, CustomerName: "Ahmet", Timestamp: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{ID: 1, UserID: 7, CustomerName: "Ayse", Timestamp: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)},
	}
	f.messageRepo.On("Count", mock.Anything, mock.Anything).Return(int64(2), nil).Twice()
	f.messageRepo.On("FindMany", mock.Anything, mock.Anything, mock.Anything, 0, 20).Return(rows, nil).Twice()

	app := f.app(nil)
	req := &model.SearchRequest{Entity: constant.EntityMessages}
	first, err := app.Search(context.Background(), client, req)
	require.NoError(t, err)
	second, err := app.Search(context.Background(), client, req)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSearchApp_Customers(t *testing.T) {
	last := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	company := "Acme"
	owner := &model.UserProfile{ID: 7, Name: "Owner", Company: &company, Email: "owner@acme.test"}

	t.Run("success: five messages collapse into one customer", func(t *testing.T) {
		f := newFields(t)
		f.customerRepo.On("GroupBy", mock.Anything, whereIs(" WHERE m.user_id = ?", uint64(7))).
			Return([]model.CustomerAggregate{{
				CustomerPhone: "+905551234567",
				CustomerName:  "Ahmet",
				UserID:        7,
				MessageCount:  5,
				UnreadCount:   3,
				LastActivity:  last,
			}}, nil).Once()
		f.userRepo.On("GetProfile", mock.Anything, uint64(7)).Return(owner, nil).Once()

		got, err := f.app(nil).Search(context.Background(), client, &model.SearchRequest{Entity: constant.EntityCustomers})
		require.NoError(t, err)
		assert.Equal(t, &model.SearchResult{
			Data: []model.Customer{{
				Name:         "Ahmet",
				Phone:        "+905551234567",
				UserID:       7,
				MessageCount: 5,
				UnreadCount:  3,
				LastActivity: last,
				User:         owner,
			}},
			Total:      1,
			Page:       1,
			Limit:      20,
			TotalPages: 1,
		}, got)
	})

	t.Run("success: sort by messageCount, page in memory, missing owner kept", func(t *testing.T) {
		f := newFields(t)
		f.customerRepo.On("GroupBy", mock.Anything, whereIs("")).
			Return([]model.CustomerAggregate{
				{CustomerPhone: "+901", CustomerName: "A", UserID: 1, MessageCount: 2, LastActivity: last},
				{CustomerPhone: "+902", CustomerName: "B", UserID: 2, MessageCount: 9, LastActivity: last},
				{CustomerPhone: "+903", CustomerName: "C", UserID: 2, MessageCount: 5, LastActivity: last},
			}, nil).Once()
		f.userRepo.On("GetProfile", mock.Anything, uint64(2)).Return(nil, nil).Once()

		got, err := f.app(nil).Search(context.Background(), manager, &model.SearchRequest{
			Entity: constant.EntityCustomers,
			SortBy: constant.CustomerCountField,
			Limit:  2,
		})
		require.NoError(t, err)
		rows := got.Data.([]model.Customer)
		require.Len(t, rows, 2)
		assert.Equal(t, int64(9), rows[0].MessageCount)
		assert.Equal(t, int64(5), rows[1].MessageCount)
		assert.Nil(t, rows[0].User)
		assert.Equal(t, int64(3), got.Total)
		assert.Equal(t, 2, got.TotalPages)
	})

	t.Run("success: pages add up to total", func(t *testing.T) {
		f := newFields(t)
		groups := make([]model.CustomerAggregate, 23)
		for i := range groups {
			groups[i] = model.CustomerAggregate{
				CustomerPhone: "+90" + string(rune('a'+i)),
				CustomerName:  "N",
				UserID:        7,
				MessageCount:  1,
				LastActivity:  last.Add(time.Duration(i%4) * time.Hour),
			}
		}
		f.customerRepo.On("GroupBy", mock.Anything, mock.Anything).
			Return(func(context.Context, *predicate.Predicate) ([]model.CustomerAggregate, error) {
				out := make([]model.CustomerAggregate, len(groups))
				copy(out, groups)
				return out, nil
			})
		f.userRepo.On("GetProfile", mock.Anything, uint64(7)).Return(owner, nil)

		app := f.app(nil)
		seen := map[string]bool{}
		var sum int
		for page := 1; page <= 3; page++ {
			got, err := app.Search(context.Background(), client, &model.SearchRequest{Entity: constant.EntityCustomers, Page: page, Limit: 10})
			require.NoError(t, err)
			rows := got.Data.([]model.Customer)
			assert.LessOrEqual(t, len(rows), 10)
			assert.Equal(t, 3, got.TotalPages)
			for _, r := range rows {
				assert.False(t, seen[r.Phone], "row %s repeated across pages", r.Phone)
				seen[r.Phone] = true
			}
			sum += len(rows)
		}
		assert.Equal(t, 23, sum)
	})

	t.Run("error: owner lookup fails", func(t *testing.T) {
		f := newFields(t)
		f.customerRepo.On("GroupBy", mock.Anything, mock.Anything).
			Return([]model.CustomerAggregate{{CustomerPhone: "+901", UserID: 1, LastActivity: last}}, nil).Once()
		f.userRepo.On("GetProfile", mock.Anything, uint64(1)).Return(nil, errors.New("db down")).Once()

		_, err := f.app(nil).Search(context.Background(), admin, &model.SearchRequest{Entity: constant.EntityCustomers})
		assertErrType(t, err, constant.ErrInternal)
	})
}

func TestSearchApp_QuickSearch(t *testing.T) {
	tests := []struct {
		name     string
		caller   model.Caller
		req      *model.QuickSearchRequest
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:   "success: all fields are ORed",
			caller: admin,
			req:    &model.QuickSearchRequest{Entity: constant.EntityMessages, Query: "Ahmet", Field: "all"},
			mockCall: func(f fields) {
				where := whereIs(" WHERE (LOWER(m.message_content) LIKE ? OR LOWER(m.customer_name) LIKE ? OR LOWER(m.customer_phone) LIKE ?)",
					"%ahmet%", "%ahmet%", "%ahmet%")
				f.messageRepo.On("Count", mock.Anything, where).Return(int64(0), nil).Once()
				f.messageRepo.On("FindMany", mock.Anything, where, mock.Anything, 0, 20).Return([]model.Message{}, nil).Once()
			},
		},
		{
			name:   "success: named field on customers",
			caller: client,
			req:    &model.QuickSearchRequest{Entity: constant.EntityCustomers, Query: " 555 ", Field: "phone", Limit: 5},
			mockCall: func(f fields) {
				f.customerRepo.On("GroupBy", mock.Anything, whereIs(" WHERE LOWER(m.customer_phone) LIKE ? AND m.user_id = ?", "%555%", uint64(7))).
					Return(nil, nil).Once()
			},
		},
		{
			name:   "success: empty query means no filters",
			caller: admin,
			req:    &model.QuickSearchRequest{Entity: constant.EntitySubscriptions},
			mockCall: func(f fields) {
				f.subscriptionRepo.On("Count", mock.Anything, whereIs("")).Return(int64(0), nil).Once()
				f.subscriptionRepo.On("FindMany", mock.Anything, whereIs(""), mock.Anything, 0, 20).Return([]model.Subscription{}, nil).Once()
			},
		},
		{
			name:    "error: contains on a number field",
			caller:  admin,
			req:     &model.QuickSearchRequest{Entity: constant.EntityPayments, Query: "10", Field: "amount"},
			wantErr: true,
			errCode: constant.ErrIncompatibleOperator,
		},
		{
			name:    "error: unknown entity",
			caller:  admin,
			req:     &model.QuickSearchRequest{Entity: "INVOICES", Query: "x"},
			wantErr: true,
			errCode: constant.ErrUnsupportedEntity,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			got, err := f.app(nil).QuickSearch(context.Background(), tt.caller, tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("QuickSearch() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrType(t, err, tt.errCode)
				return
			}
			assert.NotNil(t, got.Data)
		})
	}
}

func TestSearchApp_Suggestions(t *testing.T) {
	tests := []struct {
		name     string
		caller   model.Caller
		req      *model.SuggestionRequest
		mockCall func(f fields)
		want     []string
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:   "success: customer names within client scope",
			caller: client,
			req:    &model.SuggestionRequest{Entity: constant.EntityCustomers, Field: "name", Query: "ah"},
			mockCall: func(f fields) {
				f.messageRepo.On("Distinct", mock.Anything, "m.customer_name",
					whereIs(" WHERE LOWER(m.customer_name) LIKE ? AND m.user_id = ?", "%ah%", uint64(7)), 10).
					Return([]string{"Ahmad", "Ahmet"}, nil).Once()
			},
			want: []string{"Ahmad", "Ahmet"},
		},
		{
			name:   "success: empty query lists values",
			caller: admin,
			req:    &model.SuggestionRequest{Entity: constant.EntitySubscriptions, Field: "plan"},
			mockCall: func(f fields) {
				f.subscriptionRepo.On("Distinct", mock.Anything, "s.plan", whereIs(""), 10).Return(nil, nil).Once()
			},
			want: []string{},
		},
		{
			name:   "success: enum values need no storage",
			caller: admin,
			req:    &model.SuggestionRequest{Entity: constant.EntityPayments, Field: "currency", Query: "u"},
			want:   []string{"USD", "EUR"},
		},
		{
			name:    "error: number field",
			caller:  admin,
			req:     &model.SuggestionRequest{Entity: constant.EntityPayments, Field: "amount", Query: "1"},
			wantErr: true,
			errCode: constant.ErrIncompatibleOperator,
		},
		{
			name:    "error: unknown field",
			caller:  admin,
			req:     &model.SuggestionRequest{Entity: constant.EntityPayments, Field: "secret"},
			wantErr: true,
			errCode: constant.ErrInvalidField,
		},
		{
			name:    "error: users refused for client",
			caller:  client,
			req:     &model.SuggestionRequest{Entity: constant.EntityUsers, Field: "email"},
			wantErr: true,
			errCode: constant.ErrForbidden,
		},
		{
			name:   "error: storage failure",
			caller: admin,
			req:    &model.SuggestionRequest{Entity: constant.EntityMessages, Field: "customerPhone", Query: "+90"},
			mockCall: func(f fields) {
				f.messageRepo.On("Distinct", mock.Anything, "m.customer_phone", mock.Anything, 10).Return(nil, errors.New("db down")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			got, err := f.app(nil).Suggestions(context.Background(), tt.caller, tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Suggestions() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrType(t, err, tt.errCode)
				return
			}
			assert.Equal(t, tt.want, got.Suggestions)
			assert.Equal(t, tt.req.Field, got.Field)
		})
	}
}

func TestSearchApp_Fields(t *testing.T) {
	app := newFields(t).app(nil)

	got, err := app.Fields(constant.EntityCustomers)
	require.NoError(t, err)
	assert.Equal(t, "lastActivity", got.DefaultSort)
	assert.Contains(t, got.SortOnly, constant.CustomerCountField)

	_, err = app.Fields(constant.EntityUsers)
	assertErrType(t, err, constant.ErrUnsupportedEntity)
}
