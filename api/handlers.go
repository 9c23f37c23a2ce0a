package api

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/FunnyShadow/pterodactyl-files/constants"
	"github.com/FunnyShadow/pterodactyl-files/convert"
)

func (api *InternalAPI) handleGetIndex(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    "pterodactyl-files",
		"version": constants.Version,
	})
}

func (api *InternalAPI) handleGetEggs(c *gin.Context) {
	c.JSON(http.StatusOK, api.eggs.list())
}

// handleGetEgg serves a single egg. YAML sources are converted to panel
// importable JSON on the fly; ?format=yaml returns the YAML rendition instead.
func (api *InternalAPI) handleGetEgg(c *gin.Context) {
	e := api.eggs.get(c.Param("egg"))
	if e == nil {
		c.JSON(http.StatusNotFound, responseError{"No egg with that name is known."})
		return
	}

	raw, err := os.ReadFile(e.path)
	if err != nil {
		log.WithField("egg", e.File).WithError(err).Error("Failed to read an indexed egg from the disk.")
		c.JSON(http.StatusInternalServerError, responseError{"Failed to read the egg from disk."})
		return
	}

	switch c.Query("format") {
	case "", "json":
		out := raw
		if e.Format != formatJSON {
			if out, err = convert.ToJSON(raw); err != nil {
				log.WithField("egg", e.File).WithError(err).Error("Failed to convert an egg for serving.")
				c.JSON(http.StatusInternalServerError, responseError{"Failed to convert the egg to JSON."})
				return
			}
		}
		c.Data(http.StatusOK, "application/json", out)
	case "yaml":
		out := raw
		if e.Format == formatJSON {
			if out, err = convert.ToYAML(raw); err != nil {
				log.WithField("egg", e.File).WithError(err).Error("Failed to convert an egg for serving.")
				c.JSON(http.StatusInternalServerError, responseError{"Failed to convert the egg to YAML."})
				return
			}
		}
		c.Data(http.StatusOK, "application/x-yaml", out)
	default:
		c.JSON(http.StatusBadRequest, responseError{"Unknown format, expected json or yaml."})
	}
}

func (api *InternalAPI) handlePostReload(c *gin.Context) {
	if err := api.eggs.reload(); err != nil {
		log.WithError(err).Error("Failed to reload the egg library.")
		c.JSON(http.StatusInternalServerError, responseError{"Failed to reload the egg library."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"eggs": len(api.eggs.list())})
}
