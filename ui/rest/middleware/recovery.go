package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	pkgError "github.com/ezdiharweb/agency-api/pkg/error"
	"github.com/ezdiharweb/agency-api/pkg/utils"
)

func Recovery() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		defer func() {
			err := recover()
			if err != nil {
				logrus.Errorf("Panic recovered in middleware: %v", err)

				var genErr pkgError.GenericError = pkgError.InternalServerError(fmt.Sprintf("%v", err))
				if typedErr, isTypedError := err.(pkgError.GenericError); isTypedError {
					genErr = typedErr
				}

				res := utils.ResponseData{
					Status:  genErr.StatusCode(),
					Code:    genErr.ErrCode(),
					Message: genErr.Error(),
				}
				_ = ctx.Status(res.Status).JSON(res)
			}
		}()

		return ctx.Next()
	}
}
