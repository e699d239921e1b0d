package routes

import (
	"github.com/czdsgnr/roubenky/services"

	"github.com/kataras/iris/v12"
)

// GetContent serves the website-content document merged over the defaults.
// Every public page reads from this one endpoint.
func GetContent(ctx iris.Context) {
	ctx.JSON(iris.Map{
		"success": true,
		"data":    services.LoadContent(),
	})
}
