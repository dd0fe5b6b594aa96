package checkpoint

/*

# Cache snapshots

This package moves a cache's observable state in and out of portable bytes:
the capacity plus the entries, oldest to newest. Where the bytes live is the
caller's business; the package stops at []byte and io.Reader/io.Writer.

The wire format is deterministic CBOR with integer keys, led by a magic and
version pair that decode checks before touching anything else. Decoding
rebuilds through the public cache operations, so a decoded cache carries the
same content and the same eviction order as the one encoded, with recency
indices renumbered densely from the bottom.

For sources that can fail per record, the Restorer consumes a fallible
sequence and rebuilds a cache under an explicit policy: skip bad records and
keep going, or abort on the first one. Either way the outcome is logged.

*/
