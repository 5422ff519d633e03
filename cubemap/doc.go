// Package cubemap maps rectpack handles onto a cube texture.
//
// [Layout] turns a handle into the origin, extent and data layout of a
// region upload, with the face index as the array layer. [Preview] keeps a
// CPU copy of every face so allocations can be inspected or saved as an
// image without a GPU device.
package cubemap
