// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package message defines the gateway operations and encodes request documents.

# Operations

Every [Operation] maps to a request root element and a response root
element through a static table:

	Authorize                -> AuthorizeRequest / AuthorizeResponse
	TransactionStatus        -> TransactionStatusRequest / TransactionStatusResponse
	TransactionModification  -> TransactionModificationRequest / TransactionModificationResponse
	Tokenize                 -> TokenizeRequest / TokenizeResponse
	Authorize3DS             -> Authorize3DSRequest / Authorize3DSResponse
	HostedPagePreprocess     -> HostedPagePreprocessRequest / HostedPagePreprocessResponse
	HostedPageResults        -> string (raw body) / HostedPageResultsResponse

Authorize, Authorize3DS and HostedPagePreprocess require a signature.
Looking up an undeclared operation panics.

# Fields

Request content is a [Field]: a [Scalar], an ordered [Object] or a
[RawBody]. Objects are encoded depth-first in insertion order:

	fields := message.Obj(
	    message.S("AcquirerId", "464748"),
	    message.E("TransactionDetails", message.Obj(
	        message.S("Amount", "000000001500"),
	        message.S("Currency", "840"),
	    )),
	)
	doc, err := message.Encode(message.Authorize, fields)

# Namespaces

Every document root declares:

	xmlns     = "http://schemas.firstatlanticcommerce.com/gateway/data"
	xmlns:xsd = "http://www.w3.org/2001/XMLSchema"
	xmlns:xsi = "http://www.w3.org/2001/XMLSchema-instance"

Text values are escaped by the XML writer only; callers are responsible for
anything beyond that.
*/
package message
