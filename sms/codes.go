package sms

// Vendor error codes returned in Response.Error.Code or SendStatus.Code.
const (
	CodeOK = "Ok"

	CodeSignatureIncorrectOrUnapproved = "FailedOperation.SignatureIncorrectOrUnapproved"
	CodeTemplateIncorrectOrUnapproved  = "FailedOperation.TemplateIncorrectOrUnapproved"
	CodeInsufficientBalance            = "FailedOperation.InsufficientBalanceInSmsPackage"
	CodeSmsSdkAppIDVerifyFail          = "UnauthorizedOperation.SmsSdkAppIdVerifyFail"
	CodeIncorrectPhoneNumber           = "InvalidParameterValue.IncorrectPhoneNumber"
	CodePhoneNumberCountLimit          = "LimitExceeded.PhoneNumberCountLimit"
	CodeDeliveryFrequencyLimit         = "LimitExceeded.DeliveryFrequencyLimit"
	CodeTimeout                        = "InternalError.Timeout"
	CodeRequestTimeException           = "InternalError.RequestTimeException"

	// Common API codes.
	CodeAuthFailureSignatureFailure = "AuthFailure.SignatureFailure"
	CodeAuthFailureSignatureExpire  = "AuthFailure.SignatureExpire"
	CodeAuthFailureSecretIDNotFound = "AuthFailure.SecretIdNotFound"
)

var statusDescriptions = map[string]string{
	CodeOK:                             "Success",
	CodeIncorrectPhoneNumber:           "Invalid phone number format",
	CodeSignatureIncorrectOrUnapproved: "Signature incorrect or unapproved",
	CodeTemplateIncorrectOrUnapproved:  "Template incorrect or unapproved",
	CodeInsufficientBalance:            "Insufficient balance",
	CodePhoneNumberCountLimit:          "Phone number count limit exceeded",
	CodeDeliveryFrequencyLimit:         "Delivery frequency limit exceeded",
}
