package service

import (
	"context"
	"errors"
	"time"

	"mediadex/config"
	"mediadex/internal/core"
	"mediadex/internal/database/mongodb/repository"
	"mediadex/internal/dto"
	cErr "mediadex/internal/pkg/error"
	"mediadex/internal/telemetry"
	"mediadex/utils/token"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const sessionTTL = 24 * time.Hour

// SessionService issues and verifies the bearer tokens the transport bridge
// attaches to every command, and redeems invitation tokens on the way in.
type SessionService struct {
	trace      *telemetry.Trace
	logger     *zap.Logger
	conf       *config.Configuration
	tenantRepo *repository.TenantRepository
	grantRepo  *repository.GrantRepository
	lease      *LeaseService
}

func NewSessionService(
	trace *telemetry.Trace,
	logger *zap.Logger,
	conf *config.Configuration,
	tenantRepo *repository.TenantRepository,
	grantRepo *repository.GrantRepository,
	lease *LeaseService,
) *SessionService {
	return &SessionService{
		trace:      trace,
		logger:     logger,
		conf:       conf,
		tenantRepo: tenantRepo,
		grantRepo:  grantRepo,
		lease:      lease,
	}
}

// StartSession resolves the actor's role, optionally redeems an invitation
// token into an access grant, and returns a signed session token. A payload
// that is not an invitation token at all is ignored; a broken or unknown one
// is rejected.
func (s *SessionService) StartSession(ctx context.Context, startDto *dto.StartSessionDto) (_ *dto.SessionResponseDto, returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	granted := false
	if startDto.Token != "" && token.IsAccess(startDto.Token) {
		tenantID, err := token.ParseAccess(startDto.Token)
		if err != nil {
			returnedError = cErr.InvalidToken("malformed invitation token")
			return nil, returnedError
		}
		if _, err := s.tenantRepo.GetByID(ctx, tenantID); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				returnedError = cErr.InvalidToken("invitation token names no tenant")
				return nil, returnedError
			}
			returnedError = cErr.DatabaseError("database StartSession error")
			return nil, returnedError
		}
		if err := s.grantRepo.Create(ctx, startDto.ActorID, tenantID); err != nil {
			returnedError = cErr.DatabaseError("database StartSession error")
			return nil, returnedError
		}
		granted = true
	}

	role, _, err := s.resolveRole(ctx, startDto.ActorID)
	if err != nil {
		return nil, err
	}

	signed, err := s.issue(startDto.ActorID, role)
	if err != nil {
		returnedError = cErr.InternalServer("sign session token failed")
		return nil, returnedError
	}

	s.trace.ApplyTraceAttributes(span, core.TraceAuthMeta{
		ActorID: startDto.ActorID,
		Role:    string(role),
		Status:  "issued",
	})
	return &dto.SessionResponseDto{Token: signed, Role: string(role), Granted: granted}, nil
}

// VerifySession parses and validates a bearer token.
func (s *SessionService) VerifySession(tokenString string) (*core.SessionClaims, error) {
	claims := &core.SessionClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, cErr.InvalidSession("unexpected signing method")
		}
		return []byte(s.conf.App.SecretKey), nil
	})
	if err != nil || !parsed.Valid {
		return nil, cErr.InvalidSession("session token invalid or expired")
	}
	return claims, nil
}

// WhoAmI reports the actor's resolved role and current lease classification.
func (s *SessionService) WhoAmI(ctx context.Context, actorID int64) (_ *dto.WhoAmIResponseDto, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	role, status, err := s.resolveRole(ctx, actorID)
	if err != nil {
		return nil, err
	}
	return &dto.WhoAmIResponseDto{
		ActorID:     actorID,
		Role:        string(role),
		LeaseStatus: string(status),
	}, nil
}

func (s *SessionService) resolveRole(ctx context.Context, actorID int64) (core.Role, core.LeaseStatus, error) {
	status, _, err := s.lease.CheckLease(ctx, actorID)
	if err != nil {
		return "", "", err
	}
	if actorID != 0 && actorID == s.conf.Catalog.SuperuserID {
		return core.RoleSuperuser, status, nil
	}
	if status == core.LeaseActive {
		return core.RoleTenant, status, nil
	}
	return core.RoleUser, status, nil
}

func (s *SessionService) issue(actorID int64, role core.Role) (string, error) {
	now := time.Now().UTC()
	claims := &core.SessionClaims{
		ActorID: actorID,
		Role:    role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.conf.App.Name,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.conf.App.SecretKey))
}
