package routes

import (
	"strings"

	"github.com/czdsgnr/roubenky/models"
	"github.com/czdsgnr/roubenky/storage"
	"github.com/czdsgnr/roubenky/utils"

	"github.com/kataras/iris/v12"
	"golang.org/x/crypto/bcrypt"
)

type AdminLoginInput struct {
	Email    string `json:"email" validate:"required,max=256,email"`
	Password string `json:"password" validate:"required,max=256"`
}

// AdminLogin authenticates a back-office account and returns a token pair.
func AdminLogin(ctx iris.Context) {
	var input AdminLoginInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	errorMsg := "Invalid email or password."

	var admin models.AdminUser
	if err := storage.DB.Where("email = ?", strings.ToLower(input.Email)).First(&admin).Error; err != nil {
		utils.CreateError(iris.StatusUnauthorized, "Credentials Error", errorMsg, ctx)
		return
	}

	if passwordErr := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(input.Password)); passwordErr != nil {
		utils.CreateError(iris.StatusUnauthorized, "Credentials Error", errorMsg, ctx)
		return
	}

	tokenPair, tokenErr := utils.CreateTokenPair(admin)
	if tokenErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{
		"ID":           admin.ID,
		"email":        admin.Email,
		"role":         admin.Role,
		"accessToken":  string(tokenPair.AccessToken),
		"refreshToken": string(tokenPair.RefreshToken),
	})
}
