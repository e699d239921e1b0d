package routes

import (
	"log"
	"net/http"

	"github.com/czdsgnr/roubenky/models"
	"github.com/czdsgnr/roubenky/storage"
	"github.com/czdsgnr/roubenky/utils"

	"github.com/google/uuid"
	"github.com/kataras/iris/v12"
)

// Image library routes for the admin panel. The binaries live in
// Cloudinary; each upload also writes an ImageAsset row so listing and
// deleting never needs the Cloudinary admin API.

type UploadImageInput struct {
	FileName string `json:"fileName" validate:"required,max=256"`
	Data     string `json:"data" validate:"required"` // data URL or bare base64
}

// POST /api/admin/images
func AdminUploadImage(ctx iris.Context) {
	adminID, _ := ctx.Values().Get("adminID").(uint)

	var input UploadImageInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	result, err := storage.UploadBase64Image(input.Data, uuid.NewString())
	if err != nil {
		log.Println("❌ Image upload failed:", err)
		utils.JSONError(ctx, http.StatusBadGateway, "upload_failed", "image upload failed, try again")
		return
	}

	asset := models.ImageAsset{
		PublicID:   result.PublicID,
		URL:        result.URL,
		FileName:   input.FileName,
		Bytes:      result.Bytes,
		UploadedBy: adminID,
	}
	if err := storage.DB.Create(&asset).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	utils.Audit(ctx, "image.upload", "image", asset.ID, nil, asset)

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(iris.Map{"success": true, "data": asset})
}

// GET /api/admin/images
func AdminListImages(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	perPage := ctx.URLParamIntDefault("per_page", 50)
	if perPage <= 0 || perPage > 200 {
		perPage = 50
	}

	q := storage.DB.Model(&models.ImageAsset{})

	var total int64
	q.Count(&total)

	var items []models.ImageAsset
	if err := q.Offset((page - 1) * perPage).Limit(perPage).Order("created_at DESC").Find(&items).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	utils.JSONPage(ctx, items, page, perPage, total)
}

// DELETE /api/admin/images/:id
func AdminDeleteImage(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	var asset models.ImageAsset
	if err := storage.DB.First(&asset, id).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "image not found")
		return
	}

	if err := storage.DeleteImage(asset.PublicID); err != nil {
		log.Println("❌ Cloudinary delete failed:", err)
		utils.JSONError(ctx, http.StatusBadGateway, "delete_failed", "image delete failed, try again")
		return
	}

	if err := storage.DB.Delete(&asset).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	utils.Audit(ctx, "image.delete", "image", asset.ID, asset, nil)

	ctx.JSON(iris.Map{"success": true})
}
