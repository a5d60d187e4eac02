package sms

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/forestrie/go-tc3sms/sdkerr"
)

// MaxPhoneNumbers is the largest PhoneNumberSet a single SendSms accepts.
const MaxPhoneNumbers = 200

// SendSmsRequest is the SendSms payload. Phone numbers use E.164 form,
// e.g. +8613800000000.
type SendSmsRequest struct {
	PhoneNumberSet []string `json:"PhoneNumberSet"`
	SmsSdkAppID    string   `json:"SmsSdkAppId"`
	TemplateID     string   `json:"TemplateId"`

	// SignName is required for mainland China messages.
	SignName         string   `json:"SignName,omitempty"`
	TemplateParamSet []string `json:"TemplateParamSet,omitempty"`
	ExtendCode       string   `json:"ExtendCode,omitempty"`

	// SessionContext is echoed back unchanged in each SendStatus.
	SessionContext string `json:"SessionContext,omitempty"`

	// SenderID is used by international messages with a dedicated sender.
	SenderID string `json:"SenderId,omitempty"`
}

// NewSendSmsRequest builds a domestic request.
func NewSendSmsRequest(phoneNumbers []string, appID, templateID, signName string, params []string) *SendSmsRequest {
	return &SendSmsRequest{
		PhoneNumberSet:   phoneNumbers,
		SmsSdkAppID:      appID,
		TemplateID:       templateID,
		SignName:         signName,
		TemplateParamSet: nonEmpty(params),
	}
}

// NewInternationalSendSmsRequest builds a request without a signature.
func NewInternationalSendSmsRequest(phoneNumbers []string, appID, templateID string, params []string) *SendSmsRequest {
	return &SendSmsRequest{
		PhoneNumberSet:   phoneNumbers,
		SmsSdkAppID:      appID,
		TemplateID:       templateID,
		TemplateParamSet: nonEmpty(params),
	}
}

func nonEmpty(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return s
}

// Validate reports every problem with the request as one configuration
// error. Numbers without a +, 86 or 0086 prefix must be 11-digit domestic
// numbers.
func (r *SendSmsRequest) Validate() error {
	var result *multierror.Error
	switch n := len(r.PhoneNumberSet); {
	case n == 0:
		result = multierror.Append(result, fmt.Errorf("phone number set is empty"))
	case n > MaxPhoneNumbers:
		result = multierror.Append(result, fmt.Errorf("phone number set has %d numbers, at most %d allowed", n, MaxPhoneNumbers))
	}
	if r.SmsSdkAppID == "" {
		result = multierror.Append(result, fmt.Errorf("SmsSdkAppId is empty"))
	}
	if r.TemplateID == "" {
		result = multierror.Append(result, fmt.Errorf("TemplateId is empty"))
	}
	for _, phone := range r.PhoneNumberSet {
		if !validPhoneNumber(phone) {
			result = multierror.Append(result, fmt.Errorf("invalid phone number %q", phone))
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return sdkerr.NewConfiguration("invalid SendSms request", err)
	}
	return nil
}

func validPhoneNumber(phone string) bool {
	if phone == "" {
		return false
	}
	if strings.HasPrefix(phone, "+") || strings.HasPrefix(phone, "0086") || strings.HasPrefix(phone, "86") {
		return true
	}
	return len(phone) == 11
}

// SendStatus is the delivery result for one phone number.
type SendStatus struct {
	SerialNo       string `json:"SerialNo"`
	PhoneNumber    string `json:"PhoneNumber"`
	Fee            int    `json:"Fee"`
	SessionContext string `json:"SessionContext"`
	Code           string `json:"Code"`
	Message        string `json:"Message"`
	IsoCode        string `json:"IsoCode"`
}

func (s SendStatus) IsSuccess() bool {
	return s.Code == CodeOK
}

// Description returns a short English description of Code.
func (s SendStatus) Description() string {
	if d, ok := statusDescriptions[s.Code]; ok {
		return d
	}
	return "Unknown status"
}

// SendSmsResponse is the SendSms result.
type SendSmsResponse struct {
	SendStatusSet []SendStatus `json:"SendStatusSet"`
	RequestID     string       `json:"RequestId"`
}

// AllSucceeded reports whether every number was accepted.
func (r *SendSmsResponse) AllSucceeded() bool {
	for _, s := range r.SendStatusSet {
		if !s.IsSuccess() {
			return false
		}
	}
	return true
}

func (r *SendSmsResponse) SuccessCount() int {
	n := 0
	for _, s := range r.SendStatusSet {
		if s.IsSuccess() {
			n++
		}
	}
	return n
}

func (r *SendSmsResponse) FailedCount() int {
	return len(r.SendStatusSet) - r.SuccessCount()
}

// FailedNumbers maps each rejected phone number to the vendor message.
func (r *SendSmsResponse) FailedNumbers() map[string]string {
	failed := make(map[string]string)
	for _, s := range r.SendStatusSet {
		if !s.IsSuccess() {
			failed[s.PhoneNumber] = s.Message
		}
	}
	return failed
}

// SuccessfulNumbers returns accepted numbers in response order.
func (r *SendSmsResponse) SuccessfulNumbers() []string {
	var numbers []string
	for _, s := range r.SendStatusSet {
		if s.IsSuccess() {
			numbers = append(numbers, s.PhoneNumber)
		}
	}
	return numbers
}

// PhoneStatus returns the status for phone, if the response has one.
func (r *SendSmsResponse) PhoneStatus(phone string) (SendStatus, bool) {
	for _, s := range r.SendStatusSet {
		if s.PhoneNumber == phone {
			return s, true
		}
	}
	return SendStatus{}, false
}

// PhoneSucceeded reports whether phone was accepted. Unknown numbers were
// not.
func (r *SendSmsResponse) PhoneSucceeded(phone string) bool {
	s, ok := r.PhoneStatus(phone)
	return ok && s.IsSuccess()
}

// TotalFee sums the billable message count.
func (r *SendSmsResponse) TotalFee() int {
	total := 0
	for _, s := range r.SendStatusSet {
		total += s.Fee
	}
	return total
}
