package oidc_test

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"testing"

	"github.com/BerryBytes/ssoctl/internal/sso/oidc"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"
	"github.com/stretchr/testify/assert"
)

func clientFault(code string) error {
	return &smithy.GenericAPIError{Code: code, Message: "rejected", Fault: smithy.FaultClient}
}

func TestErrorClassification(t *testing.T) {
	serverFault := &smithy.GenericAPIError{Code: "InternalServerException", Message: "oops", Fault: smithy.FaultServer}
	sendErr := &smithyhttp.RequestSendError{Err: errors.New("connection refused")}
	dnsErr := &net.DNSError{Err: "no such host", Name: "oidc.us-east-1.amazonaws.com"}
	responseErr := &awshttp.ResponseError{
		ResponseError: &smithyhttp.ResponseError{
			Response: &smithyhttp.Response{Response: &http.Response{StatusCode: 400}},
			Err:      clientFault("InvalidClientException"),
		},
		RequestID: "req-42",
	}

	tests := []struct {
		name        string
		err         error
		clientFault bool
		network     bool
		code        string
		requestID   string
	}{
		{name: "nil", err: nil},
		{name: "plain error", err: errors.New("plain")},
		{name: "client fault", err: clientFault("InvalidGrantException"), clientFault: true, code: "InvalidGrantException"},
		{name: "wrapped client fault", err: fmt.Errorf("failed to create token: %w", clientFault("ExpiredTokenException")), clientFault: true, code: "ExpiredTokenException"},
		{name: "server fault", err: serverFault, code: "InternalServerException"},
		{name: "send error", err: fmt.Errorf("op: %w", sendErr), network: true},
		{name: "dns error", err: dnsErr, network: true},
		{name: "response error", err: responseErr, clientFault: true, code: "InvalidClientException", requestID: "req-42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.clientFault, oidc.IsClientFault(tt.err))
			assert.Equal(t, tt.network, oidc.IsNetworkError(tt.err))
			assert.Equal(t, tt.code, oidc.ErrorCode(tt.err))
			assert.Equal(t, tt.requestID, oidc.RequestID(tt.err))
		})
	}
}
