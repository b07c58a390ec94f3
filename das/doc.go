/*
Package das performs data availability sampling of dispersed blobs.

A batch of blobs is described by its metadata (see package batch), which is
read from a key-value node. Every blob is a grid of field elements whose rows
are committed to with KZG. The rows of all blobs of a batch are packed into
storage segments by batch.AllocateRows, so the location of any row can be
recomputed from the metadata alone.

The Sampler picks random cells of a blob, downloads the segments holding
their rows from storage nodes and checks every cell against its row
commitment. The blob is considered available only if every sampled cell
verifies. Results of completed samples are kept in a datastore.
*/
package das
