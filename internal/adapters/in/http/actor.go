package http

import (
	"strings"

	"fleetledger/internal/core/domain/model/actor"
	"fleetledger/internal/core/domain/model/kernel"
	"fleetledger/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Headers carrying the already-authenticated acting party. Authentication
// itself happens upstream; this adapter only parses the resolved role and
// permission set.
const (
	headerActorRole        = "X-Actor-Role"
	headerActorPermissions = "X-Actor-Permissions"
)

// actorFromRequest builds the acting party from request headers.
// The role header is mandatory; permissions arrive as a comma-separated list
// of permission names and may be empty.
func actorFromRequest(ctx echo.Context) (actor.Actor, error) {
	roleHeader := ctx.Request().Header.Get(headerActorRole)
	if roleHeader == "" {
		return actor.Actor{}, errs.NewValueIsRequiredError(headerActorRole)
	}

	role, err := actor.RoleFromString(roleHeader)
	if err != nil {
		return actor.Actor{}, err
	}

	var permissions actor.Permission
	permHeader := ctx.Request().Header.Get(headerActorPermissions)
	if permHeader != "" {
		for _, name := range strings.Split(permHeader, ",") {
			p, parseErr := actor.PermissionFromString(strings.TrimSpace(name))
			if parseErr != nil {
				return actor.Actor{}, parseErr
			}
			permissions |= p
		}
	}

	return actor.NewActor(role, permissions)
}

// parseUUID parses an identifier arriving in a path parameter or request
// body, classifying malformed input as a client error.
func parseUUID(paramName, value string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(value)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return id, nil
}
