// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package gofac is a client for the First Atlantic Commerce XML payment
gateway.

# Overview

The gateway accepts XML documents posted over HTTPS, one endpoint per
operation. go-fac builds those documents from an ordered parameter store,
signs authorization-type requests, posts them, and returns a typed response
per operation. Exchanged documents can be kept for audit on disk or in
MongoDB GridFS.

# Package Structure

	github.com/sirosfoundation/go-fac/pkg/fac         - Client, request pipeline and typed responses
	github.com/sirosfoundation/go-fac/pkg/params      - Parameter store and typed accessors
	github.com/sirosfoundation/go-fac/pkg/signature   - Request signature and amount formatting
	github.com/sirosfoundation/go-fac/pkg/message     - Operations, request fields and XML encoding
	github.com/sirosfoundation/go-fac/pkg/threeds     - 3-D Secure authentication data
	github.com/sirosfoundation/go-fac/pkg/transport   - HTTPS transport with TLS 1.2/1.3 and retries
	github.com/sirosfoundation/go-fac/pkg/cache       - Document cache (filesystem, memory)
	github.com/sirosfoundation/go-fac/pkg/cache/mongodb - GridFS document cache
	github.com/sirosfoundation/go-fac/pkg/gatewaytest - In-process fake gateway

# Quick Start

	client, err := fac.NewClient(&fac.ClientConfig{})

	p := params.New().
	    SetFacID(merchantID).
	    SetPassword(password).
	    SetAcquirerID(acquirerID).
	    SetTransactionID("ORDER-1001").
	    SetAmountInteger(1500).
	    SetCurrency("USD").
	    SetTestMode(true)

	result, err := client.Send(ctx, message.Authorize, p, func(p *params.Parameters) message.Field {
	    details, _ := fac.TransactionDetails(p)
	    return message.Obj(
	        message.E("CardDetails", card),
	        message.E("TransactionDetails", details),
	    )
	})

See examples/basic for a complete program.
*/
package gofac
