/*
Package batch describes dispersed batches and where their rows live.

A batch is published to the KV layer as a KVBatchInfo: a header carrying the
data root that storage nodes address the batch's segments by, followed by the
ordered geometry of every blob in the batch. Nothing else about the layout is
transmitted. AllocateRows recomputes, from the geometry alone, the segment and
byte offset of every row chunk, so every participant lands on the same layout.
*/
package batch
