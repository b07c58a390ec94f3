/*
Package segment fetches flow segments from storage nodes.

A segment is the unit storage nodes serve: up to batch.EntriesPerSegment
entries of batch.EntrySize bytes, returned together with a merkle proof that
ties the segment to the data root of the file it belongs to. Downloader
fetches a list of segments of one file from an ordered set of storage
endpoints, validating every segment it receives and retrying failed fetches,
and returns their raw bytes in request order.
*/
package segment
