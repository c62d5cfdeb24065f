// Package header provides the structured model of HTTP/1.1 header fields
// defined by RFC 2616 and their wire rendering.
//
// # Overview
//
// Field values are plain Go values: [Tokens] for case-insensitive token sets
// (Connection, Trailer, Accept-Ranges), [Params] for insertion-ordered parameter
// maps, [AcceptList] and [AcceptListWithParams] for quality-valued lists,
// [ETag], [Version], [MediaType], [ContentRange] and so on. They are grouped the
// way RFC 2616 groups header fields: [GeneralHeaders] (§4.5), [RequestHeaders] (§5.3),
// [ResponseHeaders] (§6.2) and [EntityHeaders] (§7.1).
//
// Nothing is validated on construction. Combinations that make no sense on the
// wire, for example Content-Length together with a chunked Transfer-Encoding, are
// the caller's responsibility.
//
// # Absent fields
//
// Every field has an explicit absent state: an empty slice, a zero [time.Time],
// a nil pointer or a zero struct. Absent fields are skipped by rendering.
// Use [Ptr] to fill pointer fields:
//
//	ent := header.EntityHeaders{ContentLength: header.Ptr[uint64](42)}
//
// # Rendering
//
// Each group implements RenderTo and String. Fields are written one per line as
// "Name: value\r\n" in the declaration order of the group struct. List values are
// joined with ", ", parameters are appended as ";name=value" with the value quoted
// only when it is not a bare token (see [Quote]), and dates use the RFC 1123 format.
// The output is deterministic for a given value.
//
// # Content negotiation
//
// [AcceptList] and [AcceptListWithParams] implement the RFC 2616 §3.9 / §14
// quality-value rules:
//
//	te := header.AcceptListWithParams{{Value: "gzip", Q: header.Q(1000)}, {Value: "br", Q: header.Q(500)}}
//	best := te.Preferred(header.AcceptListWithParams{{Value: "br"}, {Value: "gzip"}}) // gzip
//
// A value listed by name always beats one that only the "*" entry covers,
// whatever their quality values. Quality decides between equally specific matches.
//
// [ChallengeList.IsAcceptable] checks whether an authentication scheme was offered.
package header
