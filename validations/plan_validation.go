package validations

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	pkgError "github.com/ezdiharweb/agency-api/pkg/error"
	domainSocial "github.com/ezdiharweb/agency-api/social/domain"
)

func ValidateCreatePlan(ctx context.Context, request domainSocial.CreatePlanRequest) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.ProfileID, validation.Required),
		validation.Field(&request.Year, validation.Required, validation.Min(2000)),
		validation.Field(&request.Month, validation.Required, validation.Min(1), validation.Max(12)),
		validation.Field(&request.ScheduleType, validation.Required, validation.In("MWF", "TU_TH_SA")),
	)

	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return nil
}

func ValidateProfile(ctx context.Context, request domainSocial.ProfileRequest) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.ClientID, validation.Required),
	)

	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return nil
}

func ValidateCreatePost(ctx context.Context, request domainSocial.CreatePostRequest) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.PlanID, validation.Required),
		validation.Field(&request.Date, validation.Required, validation.Date("2006-01-02")),
	)

	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return nil
}
