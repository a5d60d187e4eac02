package signer_test

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/forestrie/go-tc3sms/credentials"
	"github.com/forestrie/go-tc3sms/signer"
)

func ExampleSigner_SignHTTP() {
	body := []byte(`{"Limit": 1, "Filters": [{"Values": ["\u672a\u547d\u540d"], "Name": "instance-name"}]}`)
	req, _ := http.NewRequest(http.MethodPost, "https://cvm.tencentcloudapi.com/", bytes.NewReader(body))
	req.Header.Set(signer.ContentTypeHeader, signer.ContentTypeJSON)

	s, err := signer.NewSigner(signer.Config{
		Credential: credentials.New("AKIDz8krbsJ5yKBZQpn74WFkmLPx3*******", "Gu5t9xGARNpq86cd98joQYCN3*******", ""),
		Service:    "cvm",
	})
	if err != nil {
		panic(err)
	}
	// Use time.Now() outside of examples.
	if err := s.SignHTTP(req, body, time.Unix(1551113065, 0)); err != nil {
		panic(err)
	}

	fmt.Println(req.Header.Get(signer.TimestampHeader))
	fmt.Println(req.Header.Get(signer.AuthorizationHeader))

	// Output:
	// 1551113065
	// TC3-HMAC-SHA256 Credential=AKIDz8krbsJ5yKBZQpn74WFkmLPx3*******/2019-02-25/cvm/tc3_request, SignedHeaders=content-type;host, Signature=2230eefd229f582d8b1b891af7107b91597240707d778ab3738f756258d7652c
}
