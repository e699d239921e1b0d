package routes

import (
	"net/http"

	"github.com/czdsgnr/roubenky/services"
	"github.com/czdsgnr/roubenky/utils"

	"github.com/kataras/iris/v12"
)

// PUT /api/admin/content
// Merges a partial content document into the stored one. Sending only the
// edited section is enough; untouched sections survive.
func AdminUpdateContent(ctx iris.Context) {
	var patch map[string]interface{}
	if err := ctx.ReadJSON(&patch); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}
	if len(patch) == 0 {
		utils.JSONError(ctx, http.StatusUnprocessableEntity, "invalid_payload", "empty content patch")
		return
	}

	merged, err := services.SaveContentPatch(patch)
	if err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	utils.Audit(ctx, "content.update", "content", 0, nil, patch)

	ctx.JSON(iris.Map{"success": true, "data": merged})
}
