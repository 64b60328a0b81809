// Package encoder is the boundary to the external video encoder.
//
// The engine treats encoding as opaque: it streams finished RGBA
// frames into a Session and receives a container blob back, or an
// error and no artifact at all. FFmpeg shells out to an ffmpeg binary;
// Memory collects frames in-process for tests.
package encoder
