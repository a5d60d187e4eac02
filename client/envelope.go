package client

import (
	"encoding/json"

	"github.com/forestrie/go-tc3sms/sdkerr"
)

// envelope is the wrapper around every API response:
//
//	{"Response": {"RequestId": "...", ...}}
//	{"Response": {"RequestId": "...", "Error": {"Code": "...", "Message": "..."}}}
type envelope struct {
	Response json.RawMessage `json:"Response"`
}

type commonResponse struct {
	RequestID string    `json:"RequestId"`
	Error     *apiError `json:"Error"`
}

type apiError struct {
	Code    string `json:"Code"`
	Message string `json:"Message"`
}

// DecodeResponse decodes body into T. The common wrapper is decoded first;
// a vendor error inside it is returned as an API error, and a body without
// a Response object is a parse error. The request id is returned whenever
// the server produced one.
func DecodeResponse[T any](body []byte) (*T, string, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, "", sdkerr.NewParse("malformed response body", err)
	}
	if len(env.Response) == 0 || string(env.Response) == "null" {
		return nil, "", sdkerr.NewParse("response has no Response object", nil)
	}

	var common commonResponse
	if err := json.Unmarshal(env.Response, &common); err != nil {
		return nil, "", sdkerr.NewParse("malformed Response object", err)
	}
	if common.Error != nil {
		return nil, common.RequestID, sdkerr.NewAPI(common.Error.Code, common.Error.Message, common.RequestID)
	}

	result := new(T)
	if err := json.Unmarshal(env.Response, result); err != nil {
		e := sdkerr.NewParse("response does not match the expected shape", err)
		e.RequestID = common.RequestID
		return nil, common.RequestID, e
	}
	return result, common.RequestID, nil
}
