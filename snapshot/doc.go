// Package snapshot turns isovox bitmaps into images for viewing and saving.
//
// It crops a viewport out of a bitmap, upscales it for display, draws text
// captions, and encodes the result as PNG, BMP, TIFF or animated GIF.
package snapshot
