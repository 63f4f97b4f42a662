// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package transport implements the HTTPS transport used to reach the gateway.

The [Transport] interface is the only thing the request pipeline depends on,
so tests and callers with their own HTTP stack can supply an implementation.
[HTTPSClient] is the default.

# TLS Configuration

The client negotiates TLS 1.2 or 1.3:

	config := transport.DefaultHTTPSConfig()
	// MinTLSVersion: TLS 1.2
	// MaxTLSVersion: TLS 1.3

# Client Usage

	client := transport.NewHTTPSClient(&transport.HTTPSConfig{
	    MinTLSVersion: transport.TLS12,
	    Timeout:       30 * time.Second,
	})

	resp, err := client.Post(ctx, "https://gateway.example.com/PGServiceXML/Authorize", doc, "text/html")

Post returns an error only when no HTTP response was received. A response
with any status code is returned as-is; interpreting the status is up to
the caller.

# Retries

When MaxRetries is positive, connection-level failures are retried with a
constant RetryInterval between attempts. A response carrying an error
status is never retried, and a cancelled context stops retrying at once.
*/
package transport
