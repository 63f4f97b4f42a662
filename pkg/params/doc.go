// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package params implements the request parameter store.

A [Parameters] value is an insertion-ordered key/value bag addressed by the
symbolic keys declared in this package (credentials, amount, currency, mode
and cache flags, signature, order number settings). The store itself performs
no validation; typed accessors coerce stored values at read time.

# Usage

Setters return the store so calls can be chained:

	p := params.New().
	    SetFacID("88801234").
	    SetPassword("secret").
	    SetAcquirerID("464748").
	    SetTransactionID("ORDER-1001").
	    SetAmountInteger(1500).
	    SetCurrency("USD")

# Transaction Ids

[Parameters.ResolveTransactionID] returns the transaction id for a send,
generating one from the wall clock when order number auto-generation is
enabled, and applying the order number prefix exactly once.

A Parameters value is not safe for concurrent mutation; use one store per
in-flight request.
*/
package params
