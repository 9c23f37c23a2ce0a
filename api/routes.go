package api

func (api *InternalAPI) RegisterRoutes() {
	// Register routes for v1 of the API. Egg documents are public data, so
	// reads carry no permission; mutating the library requires a key.
	v1 := api.router.Group("/v1")
	{
		v1.GET("/", AuthHandler(""), api.handleGetIndex)
		v1.GET("/eggs", AuthHandler(""), api.handleGetEggs)
		v1.GET("/eggs/:egg", AuthHandler(""), api.handleGetEgg)

		v1.POST("/eggs/reload", AuthHandler("e:reload"), api.handlePostReload)
	}
}
