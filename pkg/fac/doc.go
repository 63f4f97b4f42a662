// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package fac provides the client for the First Atlantic Commerce XML gateway.

# Client Creation

	client, err := fac.NewClient(&fac.ClientConfig{
	    HTTPSConfig: transport.DefaultHTTPSConfig(),
	    CacheDir:    "transactions",
	})

# Sending Requests

A request pairs an operation with a parameter store. Prepare resolves the
transaction id and computes the signature, after which both can be placed
in the request fields:

	p := params.New().
	    SetFacID("88801234").
	    SetPassword(password).
	    SetAcquirerID("464748").
	    SetTransactionID("ORDER-1001").
	    SetAmountInteger(1500).
	    SetCurrency("USD").
	    SetTestMode(true)

	req := client.NewRequest(message.Authorize, p)
	if err := req.Prepare(); err != nil {
	    return err
	}
	details, err := fac.TransactionDetails(p)
	if err != nil {
	    return err
	}
	result, err := req.Send(ctx, message.Obj(
	    message.E("CardDetails", card),
	    message.E("TransactionDetails", details),
	))

The request is posted to the UAT or production endpoint, selected by the
testMode parameter, with the operation name appended. A status other than
200 yields a *TransportError.

# Responses

Send returns a Result whose concrete type is declared per operation:

	switch r := result.(type) {
	case *fac.AuthorizeResponse:
	    approved := r.IsSuccessful()
	}

Query paths may use the "fac:" prefix to require elements in the platform
namespace:

	code := r.Value("fac:CreditCardTransactionResults/fac:ReasonCode")

# Caching

With the cacheRequest parameter set, the transmitted document is stored as
{Operation}Request_{transactionId}.xml; with cacheTransaction set, the
response is stored as {Operation}Response_{transactionId}.xml. Caching
failures are logged and never fail a send.
*/
package fac
