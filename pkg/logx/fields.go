package logx

const (
	FieldAppName      = "app-name"
	FieldAppVersion   = "app-version"
	FieldCategory     = "category"
	FieldDealCount    = "deal-count"
	FieldDurationMs   = "duration-ms"
	FieldError        = "error"
	FieldFlyerID      = "flyer-id"
	FieldHTTPRequest  = "http-request"
	FieldHTTPResponse = "http-response"
	FieldMerchant     = "merchant"
	FieldPage         = "page"
	FieldPostalCode   = "postal-code"
	FieldRequestBody  = "request-body"
	FieldRequestID    = "request-id"
	FieldResponseBody = "response-body"
	FieldURL          = "url"
)
