package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	apperrors "github.com/spec-kit/shopping-service/pkg/util"
)

// Rejection messages produced by the guard chain.
const (
	MsgDatabaseUnavailable = "Failed to connect to database"
	MsgNoCredentials       = "No auth credentials"
	MsgNoBearer            = "No Bearer token"
	MsgInvalidToken        = "Invalid JWT token"
	MsgAdminRequired       = "Admin access required"
)

// OutcomeKind tags a guard Outcome.
type OutcomeKind int

const (
	// OutcomeSuccess carries a resolved principal.
	OutcomeSuccess OutcomeKind = iota
	// OutcomeFailure carries a structured rejection.
	OutcomeFailure
	// OutcomeForward means the guard does not apply and another route may handle the request.
	OutcomeForward
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeFailure:
		return "failure"
	case OutcomeForward:
		return "forward"
	}
	return "unknown"
}

// Outcome is the result of resolving a guard.
type Outcome[T any] struct {
	Kind      OutcomeKind
	Value     T
	Rejection *apperrors.DomainError
}

func success[T any](v T) Outcome[T] {
	return Outcome[T]{Kind: OutcomeSuccess, Value: v}
}

func failure[T any](err *apperrors.DomainError) Outcome[T] {
	return Outcome[T]{Kind: OutcomeFailure, Rejection: err}
}

// carry re-types a non-success outcome so it propagates unchanged.
func carry[T, U any](o Outcome[U]) Outcome[T] {
	return Outcome[T]{Kind: o.Kind, Rejection: o.Rejection}
}

// Guards resolves the public, user and admin principals of inbound requests.
type Guards struct {
	provisioner Provisioner
	logger      *zap.Logger
}

// NewGuards constructs the guard chain.
func NewGuards(provisioner Provisioner, logger *zap.Logger) *Guards {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Guards{provisioner: provisioner, logger: logger}
}

// ResolvePublic provisions request state.
func (g *Guards) ResolvePublic(c *fiber.Ctx) Outcome[*PublicPrincipal] {
	state, err := g.provisioner.Provision(c.UserContext())
	switch {
	case errors.Is(err, ErrStateUnavailable):
		return Outcome[*PublicPrincipal]{Kind: OutcomeForward}
	case err != nil:
		g.logger.Warn("request state provisioning failed", zap.String("path", c.Path()), zap.Error(err))
		return failure[*PublicPrincipal](apperrors.NewServiceUnavailable(MsgDatabaseUnavailable, err))
	}
	return success(&PublicPrincipal{state: state})
}

// ResolveUser resolves the public principal, then verifies the bearer access token.
func (g *Guards) ResolveUser(c *fiber.Ctx) Outcome[*UserPrincipal] {
	public := g.ResolvePublic(c)
	if public.Kind != OutcomeSuccess {
		return carry[*UserPrincipal](public)
	}

	reject := func(message string) Outcome[*UserPrincipal] {
		public.Value.State().Release()
		g.logger.Debug("request rejected", zap.String("path", c.Path()), zap.String("reason", message))
		return failure[*UserPrincipal](apperrors.NewUnauthorized(message))
	}

	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return reject(MsgNoCredentials)
	}
	token, ok := ExtractBearer(header)
	if !ok {
		return reject(MsgNoBearer)
	}
	claims, ok := public.Value.State().Tokens.VerifyAccess(token)
	if !ok {
		return reject(MsgInvalidToken)
	}

	return success(&UserPrincipal{Public: public.Value, claims: claims})
}

// ResolveAdmin resolves the user principal, then requires the admin flag of its verified claims.
func (g *Guards) ResolveAdmin(c *fiber.Ctx) Outcome[*AdminPrincipal] {
	user := g.ResolveUser(c)
	if user.Kind != OutcomeSuccess {
		return carry[*AdminPrincipal](user)
	}

	if !user.Value.Claims().IsAdmin {
		user.Value.State().Release()
		g.logger.Debug("admin access denied",
			zap.String("path", c.Path()),
			zap.Int32("user_id", user.Value.Claims().UserID),
		)
		return failure[*AdminPrincipal](apperrors.NewForbidden(MsgAdminRequired))
	}

	return success(&AdminPrincipal{User: user.Value})
}

type principal interface {
	State() *State
}

// Public wraps a handler that needs request state but no credential.
func (g *Guards) Public(next func(*fiber.Ctx, *PublicPrincipal) error) fiber.Handler {
	return handle(g.ResolvePublic, next)
}

// User wraps a handler that requires a valid access token.
func (g *Guards) User(next func(*fiber.Ctx, *UserPrincipal) error) fiber.Handler {
	return handle(g.ResolveUser, next)
}

// Admin wraps a handler that requires a valid admin access token.
func (g *Guards) Admin(next func(*fiber.Ctx, *AdminPrincipal) error) fiber.Handler {
	return handle(g.ResolveAdmin, next)
}

func handle[P principal](resolve func(*fiber.Ctx) Outcome[P], next func(*fiber.Ctx, P) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		outcome := resolve(c)
		switch outcome.Kind {
		case OutcomeSuccess:
			defer outcome.Value.State().Release()
			return next(c, outcome.Value)
		case OutcomeForward:
			return c.Next()
		default:
			return outcome.Rejection
		}
	}
}
