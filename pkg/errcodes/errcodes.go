package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError  failure.ErrorCode = "InternalServerError"
	TimeoutExceeded      failure.ErrorCode = "TimeoutExceeded"
	ValidationError      failure.ErrorCode = "ValidationError"
	UpstreamUnavailable  failure.ErrorCode = "UpstreamUnavailable"
	UpstreamMalformed    failure.ErrorCode = "UpstreamMalformed"
	NoFlyersFound        failure.ErrorCode = "NoFlyersFound"   // Postal code resolves to zero flyers
	NoGroceryFlyers      failure.ErrorCode = "NoGroceryFlyers" // Flyers exist, none tagged Groceries
	ExportFailed         failure.ErrorCode = "ExportFailed"
	RecipeNotFound       failure.ErrorCode = "RecipeNotFound"
	PlanGenerationFailed failure.ErrorCode = "PlanGenerationFailed"
	EmailDeliveryFailed  failure.ErrorCode = "EmailDeliveryFailed"
)
