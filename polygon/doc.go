// Package polygon generates the vertices of regular polygons inscribed
// in the unit circle, used as the fixed boundary geometry of a chaos game.
//
// What:
//
//   - Generate(vertexCount) returns vertexCount points on the unit circle,
//     in counter-clockwise order starting from (0, 1).
//   - Coordinates of rotated vertices are rounded to 2 decimal places —
//     a deliberate precision limit kept for cross-implementation output
//     parity. Vertex 0 is stored exact.
//
// Why:
//
//   - Chaos-game boundaries: every engine run contracts toward these vertices.
//   - Plot overlays: renderers draw the polygon outline around the point cloud.
//
// Complexity:
//
//   - Generate: O(n) time, O(n) memory.
//
// Errors:
//
//   - ErrTooFewVertices: vertexCount < 3 cannot form a polygon.
package polygon
