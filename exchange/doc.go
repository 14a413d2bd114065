// Package exchange converts between combinatorial path states and
// documents that describe a loop by floating boundary parameters.
//
// A Document lists edges whose ends are (side, t) pairs, where t in (0,1)
// is the glued, directed parameter of the side's identification class.
// Import replays a Document through the path state machine: points within
// Tolerance of each other are the same point, each edge must start at the
// current point, and an edge ending on an existing point closes the loop.
// Export writes t = (pos+0.5)/n for every endpoint.
//
// Documents are encoded as YAML (gopkg.in/yaml.v3) or JSON. ToYAML/ToJSON
// validate before encoding; FromYAML/FromJSON/Decode validate after
// decoding.
//
// Errors:
//
//   - *ValidationError        malformed document field; Validate combines
//                             every one Issues reports
//   - ErrPointNotFound        an edge start is not the current point
//   - ErrMalformed            edges that cannot describe a path
//   - path errors             rejected moves, wrapped with the edge index
package exchange
