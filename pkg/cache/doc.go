// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package cache keeps audit copies of the documents exchanged with the gateway.

A [Writer] names each artifact after the operation and the transaction id
and hands it to a [Store]:

	AuthorizeRequest_ORDER-1001.xml
	AuthorizeResponse_ORDER-1001.xml

Caching is best-effort. A store that fails to save is logged and otherwise
ignored, so a full disk or a missing directory never fails a transaction.

# Stores

[DirStore] writes files into a local directory, creating it on first use.
[MemoryStore] keeps artifacts in memory and is mostly useful in tests. The
mongodb sub-package stores artifacts in a GridFS bucket.

Two sends reusing the same transaction id overwrite each other's artifacts.
*/
package cache
