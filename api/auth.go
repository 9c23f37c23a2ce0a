package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/FunnyShadow/pterodactyl-files/config"
)

type responseError struct {
	Error string `json:"error"`
}

// AuthHandler returns a HandlerFunc that checks request authentication
// permission is a permission string describing the required permission to access the route
// An empty permission marks the route as public.
func AuthHandler(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if permission == "" {
			return
		}

		split := strings.Split(c.Request.Header.Get("Authorization"), " ")

		var authorizationToken string
		if len(split) == 2 {
			authorizationToken = split[1]
		}

		if authorizationToken == "" {
			log.Debug("Token missing in request.")
			c.AbortWithStatusJSON(http.StatusBadRequest, responseError{"Missing required Authorization header."})
			return
		}

		if !config.ContainsAuthKey(authorizationToken) {
			log.WithField("permission", permission).Debug("Auth: Rejected request with an unknown key.")
			c.AbortWithStatusJSON(http.StatusForbidden, responseError{"You do not have permission to perform this action."})
			return
		}
	}
}
