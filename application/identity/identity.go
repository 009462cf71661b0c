package identity

import (
	"context"
	goerrors "errors"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
	"github.com/muhammadheryan/wa-crm/cmd/config"
	"github.com/muhammadheryan/wa-crm/constant"
	"github.com/muhammadheryan/wa-crm/model"
	redisrepo "github.com/muhammadheryan/wa-crm/repository/redis"
	userrepo "github.com/muhammadheryan/wa-crm/repository/user"
	"github.com/muhammadheryan/wa-crm/utils/errors"
	"github.com/muhammadheryan/wa-crm/utils/logger"
	"go.uber.org/zap"
)

// IdentityApp turns a bearer token into the caller the search engine scopes by.
// Tokens are issued elsewhere; this only verifies them.
type IdentityApp interface {
	Resolve(ctx context.Context, token string) (model.Caller, error)
	InvalidateRole(ctx context.Context, userID uint64) error
}

type identityAppImpl struct {
	config    *config.Config
	userRepo  userrepo.UserRepository
	redisRepo redisrepo.Repository
}

func NewIdentityApp(config *config.Config, userRepo userrepo.UserRepository, redisRepo redisrepo.Repository) IdentityApp {
	return &identityAppImpl{
		config:    config,
		userRepo:  userRepo,
		redisRepo: redisRepo,
	}
}

func (s *identityAppImpl) Resolve(ctx context.Context, tokenString string) (model.Caller, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return model.Caller{}, errors.SetCustomErrorDetail(constant.ErrUnauthorize, "invalid token")
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return model.Caller{}, errors.SetCustomErrorDetail(constant.ErrUnauthorize, "invalid claims")
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || userID == 0 {
		return model.Caller{}, errors.SetCustomErrorDetail(constant.ErrUnauthorize, "invalid subject")
	}
	if claims.ID == "" {
		return model.Caller{}, errors.SetCustomErrorDetail(constant.ErrUnauthorize, "token missing jti")
	}

	sessionUserID, err := s.redisRepo.GetSession(ctx, claims.ID)
	if err != nil {
		if !goerrors.Is(err, redisrepo.ErrCacheMiss) {
			logger.Error("[Resolve] err redisRepo.GetSession", zap.String("error", err.Error()))
		}
		return model.Caller{}, errors.SetCustomErrorDetail(constant.ErrUnauthorize, "session expired")
	}
	if sessionUserID != userID {
		return model.Caller{}, errors.SetCustomErrorDetail(constant.ErrUnauthorize, "session mismatch")
	}

	role, err := s.role(ctx, userID)
	if err != nil {
		return model.Caller{}, err
	}

	return model.Caller{UserID: userID, Role: role}, nil
}

// role reads the cached role, falling back to the user table on a miss.
func (s *identityAppImpl) role(ctx context.Context, userID uint64) (constant.Role, error) {
	role, err := s.redisRepo.GetRole(ctx, userID)
	if err == nil && role.Valid() {
		return role, nil
	}
	if err != nil && !goerrors.Is(err, redisrepo.ErrCacheMiss) {
		logger.Warn("[Resolve] err redisRepo.GetRole", zap.String("error", err.Error()))
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[Resolve] err userRepo.Get", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return "", errors.SetCustomErrorDetail(constant.ErrUnauthorize, "unknown user")
	}
	if !user.Role.Valid() {
		return "", errors.SetCustomErrorDetail(constant.ErrForbidden, "unknown role")
	}

	if err := s.redisRepo.SetRole(ctx, userID, user.Role, s.config.Auth.RoleCacheTTL); err != nil {
		logger.Warn("[Resolve] err redisRepo.SetRole", zap.String("error", err.Error()))
	}
	return user.Role, nil
}

func (s *identityAppImpl) InvalidateRole(ctx context.Context, userID uint64) error {
	if userID == 0 {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err := s.redisRepo.DeleteRole(ctx, userID); err != nil {
		logger.Error("[InvalidateRole] err redisRepo.DeleteRole", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	logger.Info("[InvalidateRole] role cache dropped", zap.Uint64("user_id", userID))
	return nil
}
