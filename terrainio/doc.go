// Package terrainio loads terrain descriptions from .terrain files into
// terrain.Terrain values, rejecting malformed data before a Terrain is
// ever constructed.
//
// Format:
//
//	A .terrain (or cached .data) file is line-oriented:
//
//	  line 1          "local", or a URL to fetch the real data from
//	  lines 2-3       row count, column count (one positive integer each)
//	  line 4          number of water sources (positive integer)
//	  next N entries  source coordinates; a "row col" pair on one line,
//	                  or row and col split across two lines
//	  remainder       rows×cols whitespace-separated elevations, row-major
//
// Remote terrains:
//
//	When line 1 is a URL, the body is fetched over HTTP into a download
//	cache keyed by the SHA-1 of the URL: <hex>.key records the URL,
//	<hex>.data holds the fetched body. Subsequent loads hit the cache if
//	the key file still names the same URL.
//
// Errors:
//
//   - ErrBadValue: a dimension, count, or elevation that the format cannot
//     accept (non-positive sizes, unparsable numbers, non-finite heights).
//   - ErrSourceOutOfRange: a source coordinate outside the declared grid.
//   - ErrTruncated: the file ended before all declared data was read.
//   - ErrRemoteTerrain: Parse was handed a remote terrain; only a Loader
//     can follow the URL.
//
// All validation failures surface to the caller with a descriptive reason;
// nothing is silently repaired. The flood engine therefore never sees a
// partially-invalid Terrain.
package terrainio
