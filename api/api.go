package api

import (
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/FunnyShadow/pterodactyl-files/config"
)

// InternalAPI is the egg distribution API panels import eggs from.
type InternalAPI struct {
	router *gin.Engine
	eggs   *index
}

// NewAPI creates the API with its routes registered. The egg library is read
// from the configured eggs directory.
func NewAPI() *InternalAPI {
	router := gin.New()
	router.Use(gin.Recovery())

	api := &InternalAPI{
		router: router,
		eggs:   newIndex(viper.GetString(config.EggsPath)),
	}
	api.RegisterRoutes()

	return api
}

// Listen loads the egg library and serves the API on the configured address,
// blocking for the lifetime of the server.
func (api *InternalAPI) Listen() error {
	if err := api.eggs.reload(); err != nil {
		return err
	}

	listen := viper.GetString(config.APIListen)
	log.WithField("listen", listen).Info("Serving egg library.")
	return api.router.Run(listen)
}
